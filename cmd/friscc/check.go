package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/friscc/friscc/internal/semantic"
	"github.com/friscc/friscc/internal/tree"
)

// newCheckCmd wires `friscc check`: run SemanticAnalyzer over an indented
// parse-tree dump, reporting success or the fixed diagnostic (SPEC_FULL.md
// §B.1).
func newCheckCmd(logger *slog.Logger, setExit func(int)) *cobra.Command {
	var hints bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "run semantic analysis over a parse-tree dump",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := runSemanticAnalysis(cmd.InOrStdin(), hints, cmd.ErrOrStderr())
			if err != nil {
				setExit(ExitIOError)
				return err
			}
			if result.violation != nil {
				setExit(ExitSemanticError)
				fmt.Fprintln(cmd.OutOrStdout(), result.violation.Error())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().BoolVar(&hints, "hints", false, "emit \"did you mean\" hints to stderr on unresolved identifiers")
	return cmd
}

// analysisResult is the outcome of a completed (non-IO-erroring) semantic
// analysis run: either the root typed by a nil violation, or the first
// violation encountered by the walk or by one of the two whole-program
// checks.
type analysisResult struct {
	root      *tree.Branch
	global    *semantic.Scope
	violation error
}

// runSemanticAnalysis parses root from r, then runs SemanticAnalyzer plus
// the two whole-program checks (spec.md §4.3). The returned error is
// non-nil only when the parse-tree dump itself was malformed — an I/O-level
// failure distinct from a semantic violation, which is carried in the
// returned analysisResult instead.
func runSemanticAnalysis(r io.Reader, hints bool, stderr io.Writer) (analysisResult, error) {
	root, err := tree.Parse(r)
	if err != nil {
		return analysisResult{}, err
	}

	a := semantic.NewAnalyzer()
	if hints {
		a.Hints = stderr
	}

	if err := a.Analyze(root); err != nil {
		return analysisResult{root: root, global: a.Global, violation: err}, nil
	}
	if err := semantic.CheckMain(a.Global); err != nil {
		return analysisResult{root: root, global: a.Global, violation: err}, nil
	}
	if err := semantic.CheckFunctionDefinitions(a.Global, a.Global); err != nil {
		return analysisResult{root: root, global: a.Global, violation: err}, nil
	}
	return analysisResult{root: root, global: a.Global}, nil
}
