// Package config loads the optional, purely non-functional pipeline
// configuration file (SPEC_FULL.md §B.3): the table cache directory, the
// watch debounce, and whether CLI output is colorized. None of these
// knobs change lexical/semantic/codegen semantics — the core pipeline stays
// config-free per spec.md §5's "no hidden shared mutable state".
//
// Grounded on the teacher's core/types.ValidationConfig (a plain struct with
// a Default constructor) and core/types/validation.go's jsonschema.Compiler
// usage, adapted from runtime parameter schemas to a static document schema.
package config

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaFS embed.FS

// Config carries the ambient, non-semantic knobs a friscc invocation may
// load from friscc.yaml/friscc.json.
type Config struct {
	CacheDir         string        `yaml:"cacheDir" json:"cacheDir"`
	WatchDebounce    time.Duration `yaml:"-" json:"-"`
	WatchDebounceRaw string        `yaml:"watchDebounce" json:"watchDebounce"`
	Color            bool          `yaml:"color" json:"color"`
}

// Default returns the configuration used when no --config file is given.
func Default() *Config {
	return &Config{
		CacheDir:         ".friscc-cache",
		WatchDebounce:    200 * time.Millisecond,
		WatchDebounceRaw: "200ms",
		Color:            true,
	}
}

// Load reads and validates the config file at path, which may be YAML or
// JSON (disambiguated by extension, defaulting to YAML). It validates the
// raw document against the embedded JSON Schema before unmarshaling into
// Config, so a malformed field is reported before it can silently zero-value
// its way into the pipeline.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	var doc any
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		// jsonschema validates against native Go values produced by
		// encoding/json unmarshaling (map[string]interface{}, float64, ...);
		// round-trip through JSON so a YAML-sourced document matches that shape.
		normalized, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if err := json.Unmarshal(normalized, &doc); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if err := validate(doc); err != nil {
		return nil, fmt.Errorf("config: schema validation failed: %w", err)
	}

	cfg := Default()
	if strings.HasSuffix(path, ".json") {
		if err := json.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
	}

	if cfg.WatchDebounceRaw != "" {
		d, err := time.ParseDuration(cfg.WatchDebounceRaw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid watchDebounce %q: %w", cfg.WatchDebounceRaw, err)
		}
		cfg.WatchDebounce = d
	}
	return cfg, nil
}

func validate(doc any) error {
	schemaBytes, err := schemaFS.ReadFile("schema.json")
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource("schema://friscc-config.json", strings.NewReader(string(schemaBytes))); err != nil {
		return err
	}
	schema, err := compiler.Compile("schema://friscc-config.json")
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}

// ResolvePath makes CacheDir absolute relative to the config file's own
// directory, so a relative cacheDir is predictable regardless of the
// invoking shell's working directory.
func (c *Config) ResolvePath(configPath string) {
	if configPath == "" || filepath.IsAbs(c.CacheDir) {
		return
	}
	c.CacheDir = filepath.Join(filepath.Dir(configPath), c.CacheDir)
}
