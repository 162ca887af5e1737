package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/friscc/friscc/internal/codegen"
)

// newCodegenCmd wires `friscc codegen`: run semantic analysis then code
// generation over a parse-tree dump, emitting FRISC assembly to stdout
// (SPEC_FULL.md §B.1).
func newCodegenCmd(logger *slog.Logger, setExit func(int)) *cobra.Command {
	var hints bool

	cmd := &cobra.Command{
		Use:   "codegen",
		Short: "type-check and emit FRISC assembly for a parse-tree dump",
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
			codegen.Generate(cmd.OutOrStdout(), result.root, result.global)
			return nil
		},
	}

	cmd.Flags().BoolVar(&hints, "hints", false, "emit \"did you mean\" hints to stderr on unresolved identifiers")
	return cmd
}
