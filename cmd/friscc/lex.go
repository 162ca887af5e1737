package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/friscc/friscc/internal/lexruntime"
)

// newLexCmd wires `friscc lex`: run the longest-match lexical analysis loop
// over a compiled table and a source file (SPEC_FULL.md §B.1).
func newLexCmd(logger *slog.Logger, setExit func(int)) *cobra.Command {
	var tablePath, inputPath string

	cmd := &cobra.Command{
		Use:   "lex",
		Short: "tokenize source against a compiled lex table",
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := readTable(tablePath)
			if err != nil {
				setExit(exitCodeFor(err))
				return err
			}

			in := cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					setExit(ExitIOError)
					return err
				}
				defer f.Close()
				in = f
			}
			source, err := readAll(in)
			if err != nil {
				setExit(ExitIOError)
				return err
			}

			analyzer := lexruntime.NewAnalyzer(table, logger)
			if err := analyzer.Run(source, cmd.OutOrStdout(), cmd.ErrOrStderr()); err != nil {
				setExit(ExitIOError)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&tablePath, "table", "enfa.txt", "serialized lex table")
	cmd.Flags().StringVar(&inputPath, "input", "", "source file (default: stdin)")
	return cmd
}
