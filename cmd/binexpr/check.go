package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	binexperrors "treemath/binexpr/pkg/binexp/errors"
	"treemath/binexpr/pkg/binexp/parser"
	"treemath/binexpr/pkg/binexp/simplify"
	"treemath/binexpr/pkg/cli"
)

var checkFlags struct {
	file   string
	dir    string
	format string
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate expression files",
	Long: `Validate files of prefix expressions for parse and simplification errors.

Every non-blank, non-comment line is parsed and simplified. Lines that fail
to parse, or that hit an undefined operation during constant folding (such
as division by zero), are reported with their line numbers.

Examples:
  # Check a single file
  binexpr check --file exprs.txt

  # Check all .txt files in a directory
  binexpr check --dir expressions/

  # JSON output for CI/CD
  binexpr check --dir expressions/ --format json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(&checkFlags.file, "file", "f", "", "expression file to validate")
	checkCmd.Flags().StringVarP(&checkFlags.dir, "dir", "d", "", "directory of expression files (*.txt)")
	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

// CheckResult is the validation outcome for a single file.
type CheckResult struct {
	File        string       `json:"file"`
	Valid       bool         `json:"valid"`
	Expressions int          `json:"expressions"`
	Errors      []CheckError `json:"errors,omitempty"`
}

// CheckError is one invalid expression within a file.
type CheckError struct {
	Line       int    `json:"line"`
	Expression string `json:"expression"`
	Type       string `json:"type"`
	Message    string `json:"message"`
}

type checkResultSet []CheckResult

func (rs checkResultSet) MarshalTextOutput() string {
	var sb strings.Builder
	for _, r := range rs {
		if r.Valid {
			sb.WriteString(fmt.Sprintf("%s: OK (%d expressions)\n", r.File, r.Expressions))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %d error(s)\n", r.File, len(r.Errors)))
		for _, e := range r.Errors {
			sb.WriteString(fmt.Sprintf("  line %d: %s: %s\n",
				e.Line, e.Expression, strings.ReplaceAll(e.Message, "\n", " ")))
		}
	}
	return sb.String()
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	format, err := cli.ParseFormat(checkFlags.format)
	if err != nil {
		return cli.NewUsageError("%v", err)
	}

	files, err := collectCheckFiles()
	if err != nil {
		return err
	}

	p := parser.NewParser().
		WithMaxDepth(cfg.Expressions.MaxDepth).
		WithAnyOperator(cfg.Expressions.AllowAnyOperator)
	simplifier := simplify.NewSimplifier().
		WithConstantFolding(cfg.Expressions.ConstantFolding)

	results := make(checkResultSet, 0, len(files))
	failed := 0
	for _, file := range files {
		result := checkFile(p, simplifier, file)
		if !result.Valid {
			failed++
		}
		results = append(results, result)
	}

	if err := cli.NewFormatter(format).FormatTo(os.Stdout, results); err != nil {
		return err
	}

	if failed > 0 {
		return &cli.InputError{Failed: failed, Total: len(results)}
	}
	return nil
}

func collectCheckFiles() ([]string, error) {
	if checkFlags.file == "" && checkFlags.dir == "" {
		return nil, cli.NewUsageError("either --file or --dir must be specified")
	}

	var files []string
	if checkFlags.file != "" {
		files = append(files, checkFlags.file)
	}
	if checkFlags.dir != "" {
		matches, err := filepath.Glob(filepath.Join(checkFlags.dir, "*.txt"))
		if err != nil {
			return nil, fmt.Errorf("failed to list expression files: %w", err)
		}
		files = append(files, matches...)
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("no expression files found")
	}
	return files, nil
}

func checkFile(p *parser.Parser, simplifier *simplify.Simplifier, path string) CheckResult {
	result := CheckResult{File: path}

	lines, err := readExpressionFile(path)
	if err != nil {
		result.Errors = append(result.Errors, CheckError{
			Type:    string(binexperrors.ErrorTypeIO),
			Message: err.Error(),
		})
		return result
	}

	result.Expressions = len(lines)
	for _, line := range lines {
		if err := checkExpression(p, simplifier, line.Text); err != nil {
			result.Errors = append(result.Errors, CheckError{
				Line:       line.Number,
				Expression: line.Text,
				Type:       string(binexperrors.TypeOf(err)),
				Message:    err.Error(),
			})
		}
	}

	result.Valid = len(result.Errors) == 0
	return result
}

func checkExpression(p *parser.Parser, simplifier *simplify.Simplifier, input string) error {
	tree, err := p.ParseString(input)
	if err != nil {
		return err
	}
	_, err = simplifier.Simplify(tree)
	return err
}
