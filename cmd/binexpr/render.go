package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"treemath/binexpr/pkg/binexp/parser"
	"treemath/binexpr/pkg/binexp/render"
	"treemath/binexpr/pkg/cli"
)

var renderFlags struct {
	file     string
	notation string
	format   string
	tree     bool
}

var renderCmd = &cobra.Command{
	Use:   "render [expression...]",
	Short: "Render prefix expressions without simplifying",
	Long: `Parse prefix expressions and render them in another notation, or as an
indented tree dump, without applying any rewrite rules.

Examples:
  # Convert to fully parenthesized infix
  binexpr render --notation infix "+ 1 * 2 3"

  # Show the tree structure
  binexpr render --tree "+ 1 * 2 3"`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderFlags.file, "file", "f", "", "file of expressions, one per line")
	renderCmd.Flags().StringVarP(&renderFlags.notation, "notation", "n", "", "output notation: prefix, infix, postfix")
	renderCmd.Flags().StringVar(&renderFlags.format, "format", "", "output format: text, json")
	renderCmd.Flags().BoolVar(&renderFlags.tree, "tree", false, "print an indented tree dump instead")
}

// RenderResult is the outcome of rendering one expression.
type RenderResult struct {
	Input    string `json:"input"`
	Notation string `json:"notation,omitempty"`
	Rendered string `json:"rendered,omitempty"`
	Valid    bool   `json:"valid"`
	Error    string `json:"error,omitempty"`
}

type renderResultSet []RenderResult

func (rs renderResultSet) MarshalTextOutput() string {
	var sb strings.Builder
	for _, r := range rs {
		if r.Valid {
			sb.WriteString(r.Rendered)
		} else {
			sb.WriteString(fmt.Sprintf("error: %s", strings.ReplaceAll(r.Error, "\n", " ")))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	notation, format, err := resolveOutputFlags(cfg, renderFlags.notation, renderFlags.format)
	if err != nil {
		return err
	}

	lines, err := collectInput(args, renderFlags.file)
	if err != nil {
		return err
	}

	p := parser.NewParser().
		WithMaxDepth(cfg.Expressions.MaxDepth).
		WithAnyOperator(cfg.Expressions.AllowAnyOperator)

	results := make(renderResultSet, 0, len(lines))
	for _, line := range lines {
		result := RenderResult{Input: line.Text}

		tree, err := p.ParseString(line.Text)
		if err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}

		if renderFlags.tree {
			result.Rendered = render.Dump(tree)
		} else {
			result.Notation = string(notation)
			rendered, err := render.Render(tree, notation)
			if err != nil {
				result.Error = err.Error()
				results = append(results, result)
				continue
			}
			result.Rendered = rendered
		}

		result.Valid = true
		results = append(results, result)
	}

	if err := cli.NewFormatter(format).FormatTo(os.Stdout, results); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if !r.Valid {
			failed++
		}
	}
	if failed > 0 {
		return &cli.InputError{Failed: failed, Total: len(results)}
	}
	return nil
}
