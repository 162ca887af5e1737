package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/friscc/friscc/internal/codegen"
	"github.com/friscc/friscc/internal/config"
	watchpkg "github.com/friscc/friscc/internal/watch"
)

// newWatchCmd wires `friscc watch`: rerun check+codegen on a parse-tree
// file every time it changes (SPEC_FULL.md §C "ambient-stack addition").
// cfg supplies the default --debounce when the flag is left unset and a
// --config file set one (SPEC_FULL.md §B.3).
func newWatchCmd(logger *slog.Logger, cfg *config.Config, setExit func(int)) *cobra.Command {
	var treePath, outPath string
	var debounce time.Duration
	var hints bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "recompile a parse-tree file on every change",
		RunE: func(cmd *cobra.Command, args []string) error {
			if treePath == "" {
				setExit(ExitInvalidArguments)
				return fmt.Errorf("watch: --tree is required")
			}
			if !cmd.Flags().Changed("debounce") && cfg.WatchDebounce > 0 {
				debounce = cfg.WatchDebounce
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigCh
				cancel()
			}()

			run := func() {
				f, err := os.Open(treePath)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "watch:", err)
					return
				}
				defer f.Close()

				result, err := runSemanticAnalysis(f, hints, cmd.ErrOrStderr())
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "watch:", err)
					return
				}
				if result.violation != nil {
					fmt.Fprintln(cmd.OutOrStdout(), result.violation.Error())
					return
				}

				out := cmd.OutOrStdout()
				if outPath != "" {
					of, err := os.Create(outPath)
					if err != nil {
						fmt.Fprintln(cmd.ErrOrStderr(), "watch:", err)
						return
					}
					defer of.Close()
					out = of
				}
				codegen.Generate(out, result.root, result.global)
			}

			if err := watchpkg.Run(ctx, treePath, debounce, logger, run); err != nil {
				setExit(ExitIOError)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&treePath, "tree", "", "parse-tree dump file to watch (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "assembly output path (default: stdout)")
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "debounce interval between change and rebuild")
	cmd.Flags().BoolVar(&hints, "hints", false, "emit \"did you mean\" hints to stderr on unresolved identifiers")
	return cmd
}
