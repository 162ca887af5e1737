package tablecache

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friscc/friscc/internal/lextable"
)

func TestKeyIsDeterministicAndContentAddressed(t *testing.T) {
	a := Key([]byte("spec one"))
	b := Key([]byte("spec one"))
	c := Key([]byte("spec two"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64) // hex-encoded 32-byte BLAKE2b-256 digest
}

func sampleTable() *lextable.Table {
	n := lextable.NewNFA()
	s0 := n.NewState()
	s1 := n.NewState()
	n.AddEdge(s0, 'a', s1)
	return &lextable.Table{
		StartingState: "START",
		States:        []string{"START"},
		Rules: map[string][]lextable.Rule{
			"START": {{NFA: n, Action: lextable.Action{UnitToAdd: "IDENT"}}},
		},
	}
}

func TestCacheStoreThenLookupRoundTrips(t *testing.T) {
	cache, err := Open(t.TempDir())
	require.NoError(t, err)

	key := Key([]byte("a*"))
	require.NoError(t, cache.Store(key, sampleTable()))

	got, ok, err := cache.Lookup(key)
	require.NoError(t, err)
	require.True(t, ok)

	if diff := cmp.Diff(sampleTable(), got); diff != "" {
		t.Errorf("Lookup after Store mismatch (-want +got):\n%s", diff)
	}
}

func TestCacheLookupMissReturnsFalse(t *testing.T) {
	cache, err := Open(t.TempDir())
	require.NoError(t, err)

	_, ok, err := cache.Lookup(Key([]byte("never stored")))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCacheStoreIsDeterministicAcrossCalls(t *testing.T) {
	dir := t.TempDir()
	cache, err := Open(dir)
	require.NoError(t, err)

	key := Key([]byte("a*"))
	require.NoError(t, cache.Store(key, sampleTable()))
	first, _, err := cache.Lookup(key)
	require.NoError(t, err)

	require.NoError(t, cache.Store(key, sampleTable()))
	second, _, err := cache.Lookup(key)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Store is not deterministic across calls (-first +second):\n%s", diff)
	}
}
