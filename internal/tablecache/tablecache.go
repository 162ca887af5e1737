// Package tablecache is an additive, opt-in cache layer over L1-Gen's
// serialized lex table (SPEC_FULL.md §C): friscc lexgen can skip
// reconstructing a Table whose source lex-spec bytes have not changed. The
// textual enfa.txt format (lextable.WriteText/ReadText) remains the
// canonical, spec-mandated interchange format between L1-Gen and L1-Run;
// CBOR here is only ever read back by tablecache itself, never by
// lexruntime directly.
//
// Grounded on core/planfmt.Writer's "hash the canonical encoding, use the
// hash as the identity" pattern and canonical.go's cbor.CanonicalEncOptions
// deterministic encoding, adapted from a plan-contract hash to a
// content-addressed cache key.
package tablecache

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"golang.org/x/crypto/blake2b"

	"github.com/friscc/friscc/internal/diagnostics"
	"github.com/friscc/friscc/internal/lextable"
)

// Key returns the cache key for specBytes: the hex-encoded BLAKE2b-256 digest
// of the raw lex-spec text (SPEC_FULL.md §C).
func Key(specBytes []byte) string {
	sum := blake2b.Sum256(specBytes)
	return hex.EncodeToString(sum[:])
}

// Cache reads and writes compiled lextable.Tables under dir, one file per
// cache key.
type Cache struct {
	dir string
}

// Open returns a Cache rooted at dir, creating it if necessary.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, diagnostics.NewInternalError("tablecache", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) path(key string) string {
	return filepath.Join(c.dir, key+".cbor")
}

// Lookup returns the cached table for key, or ok=false if absent.
func (c *Cache) Lookup(key string) (*lextable.Table, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, diagnostics.NewInternalError("tablecache", err)
	}

	var t lextable.Table
	if err := cbor.Unmarshal(data, &t); err != nil {
		return nil, false, diagnostics.NewInternalError("tablecache", fmt.Errorf("malformed cache entry %s: %w", key, err))
	}
	return &t, true, nil
}

// Store writes t to the cache under key, using CBOR's canonical encoding so
// repeated Store calls for an unchanged table produce byte-identical files.
func (c *Cache) Store(key string, t *lextable.Table) error {
	encMode, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return diagnostics.NewInternalError("tablecache", err)
	}
	data, err := encMode.Marshal(t)
	if err != nil {
		return diagnostics.NewInternalError("tablecache", err)
	}
	if err := os.WriteFile(c.path(key), data, 0o644); err != nil {
		return diagnostics.NewInternalError("tablecache", err)
	}
	return nil
}
