package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"treemath/binexpr/pkg/binexp/parser"
	"treemath/binexpr/pkg/binexp/render"
	"treemath/binexpr/pkg/binexp/simplify"
	"treemath/binexpr/pkg/cli"
	"treemath/binexpr/pkg/config"
	"treemath/binexpr/pkg/history"
	"treemath/binexpr/pkg/watch"
)

var simplifyFlags struct {
	file     string
	notation string
	noFold   bool
	watch    bool
	format   string
}

var simplifyCmd = &cobra.Command{
	Use:   "simplify [expression...]",
	Short: "Simplify prefix expressions",
	Long: `Simplify prefix expressions with algebraic rewrite rules.

Expressions are read from the arguments, from a file (one per line, blank
lines and # comments skipped), or from stdin when neither is given.

Examples:
  # Simplify a single expression
  binexpr simplify "* 1 + 0 5"

  # Disable constant folding, render as infix
  binexpr simplify --no-fold --notation infix "+ 1 + 2 0"

  # Process a file and re-process it on every save
  binexpr simplify --file exprs.txt --watch

  # JSON output for scripting
  binexpr simplify --format json "+ 1 2" "/ 8 2"`,
	RunE: runSimplify,
}

func init() {
	rootCmd.AddCommand(simplifyCmd)

	simplifyCmd.Flags().StringVarP(&simplifyFlags.file, "file", "f", "", "file of expressions, one per line")
	simplifyCmd.Flags().StringVarP(&simplifyFlags.notation, "notation", "n", "", "output notation: prefix, infix, postfix")
	simplifyCmd.Flags().BoolVar(&simplifyFlags.noFold, "no-fold", false, "disable constant folding")
	simplifyCmd.Flags().BoolVarP(&simplifyFlags.watch, "watch", "w", false, "re-process the file on every change (requires --file)")
	simplifyCmd.Flags().StringVar(&simplifyFlags.format, "format", "", "output format: text, json")
}

// ExpressionResult is the outcome of simplifying one expression.
type ExpressionResult struct {
	Input        string   `json:"input"`
	Simplified   string   `json:"simplified,omitempty"`
	Notation     string   `json:"notation"`
	NodesBefore  int      `json:"nodes_before,omitempty"`
	NodesAfter   int      `json:"nodes_after,omitempty"`
	RulesApplied []string `json:"rules_applied,omitempty"`
	Valid        bool     `json:"valid"`
	Error        string   `json:"error,omitempty"`
}

// resultSet renders one line per expression in text mode: the simplified
// form for valid inputs, an error line for invalid ones.
type resultSet []ExpressionResult

func (rs resultSet) MarshalTextOutput() string {
	var sb strings.Builder
	for _, r := range rs {
		if r.Valid {
			sb.WriteString(r.Simplified)
		} else {
			sb.WriteString(fmt.Sprintf("error: %s", strings.ReplaceAll(r.Error, "\n", " ")))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runSimplify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg); err != nil {
		return err
	}

	notation, format, err := resolveOutputFlags(cfg, simplifyFlags.notation, simplifyFlags.format)
	if err != nil {
		return err
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(&cfg.History)
		if err != nil {
			return err
		}
		defer store.Close()
	}

	proc := &processor{
		parser: parser.NewParser().
			WithMaxDepth(cfg.Expressions.MaxDepth).
			WithAnyOperator(cfg.Expressions.AllowAnyOperator),
		fold:     cfg.Expressions.ConstantFolding && !simplifyFlags.noFold,
		notation: notation,
		store:    store,
	}

	if simplifyFlags.watch {
		return runWatch(proc, format)
	}

	lines, err := collectInput(args, simplifyFlags.file)
	if err != nil {
		return err
	}

	results := proc.processAll(lines)
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, results); err != nil {
		return err
	}

	return results.toInputError()
}

// processor holds the parse and simplify settings for one command run.
type processor struct {
	parser   *parser.Parser
	fold     bool
	notation render.Notation
	store    *history.Store
}

func (p *processor) processAll(lines []expressionLine) resultSet {
	results := make(resultSet, 0, len(lines))
	for _, line := range lines {
		results = append(results, p.process(line.Text))
	}
	return results
}

func (p *processor) process(input string) ExpressionResult {
	result := ExpressionResult{Input: input, Notation: string(p.notation)}

	tree, err := p.parser.ParseString(input)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	var rules []string
	simplifier := simplify.NewSimplifier().
		WithConstantFolding(p.fold).
		WithRuleObserver(func(rule simplify.Rule) {
			rules = append(rules, string(rule))
		})

	start := time.Now()
	simplified, err := simplifier.Simplify(tree)
	elapsed := time.Since(start)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	rendered, err := render.Render(simplified, p.notation)
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Valid = true
	result.Simplified = rendered
	result.NodesBefore = tree.Size()
	result.NodesAfter = simplified.Size()
	result.RulesApplied = rules

	if p.store != nil {
		rec := &history.Record{
			Source:       "cli",
			Input:        input,
			Simplified:   render.Prefix(simplified),
			InputNodes:   tree.Size(),
			OutputNodes:  simplified.Size(),
			Folding:      p.fold,
			RulesApplied: len(rules),
			Duration:     elapsed,
		}
		if err := p.store.Append(context.Background(), rec); err != nil {
			slog.Error("failed to record history", "error", err)
		}
	}

	return result
}

func (rs resultSet) toInputError() error {
	failed := 0
	for _, r := range rs {
		if !r.Valid {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return &cli.InputError{Failed: failed, Total: len(rs)}
}

// runWatch processes the file once, then re-processes it after every
// debounced change until interrupted.
func runWatch(proc *processor, format cli.OutputFormat) error {
	if simplifyFlags.file == "" {
		return cli.NewUsageError("--watch requires --file")
	}

	formatter := cli.NewFormatter(format)
	processOnce := func() error {
		lines, err := readExpressionFile(simplifyFlags.file)
		if err != nil {
			return err
		}
		return formatter.FormatTo(os.Stdout, proc.processAll(lines))
	}

	if err := processOnce(); err != nil {
		return err
	}

	w, err := watch.New(simplifyFlags.file, watch.DefaultDebounceInterval, slog.Default())
	if err != nil {
		return err
	}

	ctx, cancel := cli.SetupSignalHandler()
	defer cancel()

	return w.Watch(ctx, processOnce)
}

// collectInput gathers expressions from the arguments, a file, or stdin.
func collectInput(args []string, file string) ([]expressionLine, error) {
	if len(args) > 0 && file != "" {
		return nil, cli.NewUsageError("cannot combine expression arguments with --file")
	}

	if len(args) > 0 {
		lines := make([]expressionLine, 0, len(args))
		for i, arg := range args {
			lines = append(lines, expressionLine{Number: i + 1, Text: arg})
		}
		return lines, nil
	}

	if file != "" {
		return readExpressionFile(file)
	}

	return readExpressionLines(os.Stdin)
}

// resolveOutputFlags merges the notation and format flags with the
// configured defaults.
func resolveOutputFlags(cfg *config.Config, notationFlag, formatFlag string) (render.Notation, cli.OutputFormat, error) {
	name := notationFlag
	if name == "" {
		name = cfg.Output.Notation
	}
	notation, err := render.ParseNotation(name)
	if err != nil {
		return "", "", cli.NewUsageError("%v", err)
	}

	raw := formatFlag
	if raw == "" {
		raw = cfg.Output.Format
	}
	format, err := cli.ParseFormat(raw)
	if err != nil {
		return "", "", cli.NewUsageError("%v", err)
	}

	return notation, format, nil
}
