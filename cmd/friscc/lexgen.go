package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/friscc/friscc/internal/config"
	"github.com/friscc/friscc/internal/regexcompiler"
	"github.com/friscc/friscc/internal/tablecache"
)

// newLexgenCmd wires `friscc lexgen`: compile a lex-spec into a serialized
// table (SPEC_FULL.md §B.1). cfg supplies the default --cache-dir when the
// flag is left unset and a --config file set one (SPEC_FULL.md §B.3).
func newLexgenCmd(logger *slog.Logger, cfg *config.Config, setExit func(int)) *cobra.Command {
	var specPath, outPath, cacheDir string

	cmd := &cobra.Command{
		Use:   "lexgen",
		Short: "compile a lex-spec into a serialized lex table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("cache-dir") && cfg.CacheDir != "" {
				cacheDir = cfg.CacheDir
			}
			in := cmd.InOrStdin()
			if specPath != "" {
				f, err := os.Open(specPath)
				if err != nil {
					setExit(ExitIOError)
					return err
				}
				defer f.Close()
				in = f
			}

			specBytes, err := readAll(in)
			if err != nil {
				setExit(ExitIOError)
				return err
			}

			var cache *tablecache.Cache
			var key string
			if cacheDir != "" {
				cache, err = tablecache.Open(cacheDir)
				if err != nil {
					setExit(exitCodeFor(err))
					return err
				}
				key = tablecache.Key(specBytes)
				if table, ok, err := cache.Lookup(key); err != nil {
					setExit(exitCodeFor(err))
					return err
				} else if ok {
					logger.Debug("lexgen: cache hit", "key", key)
					return writeTable(outPath, table)
				}
			}

			spec, err := regexcompiler.ParseSpec(bytesReader(specBytes))
			if err != nil {
				setExit(ExitIOError)
				return err
			}
			table := regexcompiler.Compile(spec)

			if cache != nil {
				if err := cache.Store(key, table); err != nil {
					setExit(exitCodeFor(err))
					return err
				}
			}

			return writeTable(outPath, table)
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "lex-spec file (default: stdin)")
	cmd.Flags().StringVar(&outPath, "out", "enfa.txt", "serialized table output path")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "compiled-table cache directory (opt-in)")
	return cmd
}
