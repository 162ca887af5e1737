// Command friscc drives the four-stage pipeline: a regex-spec compiler
// (lexgen), a lexical-analysis runtime (lex), a semantic analyzer (check),
// and a code generator (codegen) targeting FRISC assembly, plus pipeline
// conveniences (build, watch) layered over them (SPEC_FULL.md §B.1).
//
// Grounded on the teacher's cli/main.go: a single cobra root command,
// persistent flags shared across subcommands, explicit exit-code handling
// after rootCmd.Execute() rather than relying on cobra's own os.Exit.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/friscc/friscc/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		debug      bool
		configPath string
		logLevel   = new(slog.LevelVar)
		cfg        = config.Default()
	)

	rootCmd := &cobra.Command{
		Use:           "friscc",
		Short:         "FRISCC: lex-spec compiler, lexer, semantic analyzer and code generator for the FRISC teaching target",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logLevel.Set(slog.LevelDebug)
			}
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				loaded.ResolvePath(configPath)
				*cfg = *loaded
			}
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "pipeline config file (friscc.yaml or friscc.json)")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	exitCode := ExitSuccess
	setExit := func(code int) { exitCode = code }

	rootCmd.AddCommand(
		newLexgenCmd(logger, cfg, setExit),
		newLexCmd(logger, setExit),
		newCheckCmd(logger, setExit),
		newCodegenCmd(logger, setExit),
		newBuildCmd(logger, setExit),
		newWatchCmd(logger, cfg, setExit),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if exitCode == ExitSuccess {
			exitCode = ExitInvalidArguments
		}
	}
	return exitCode
}
