package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friscc/friscc/internal/lextable"
)

func TestReadAllReadsFullReader(t *testing.T) {
	got, err := readAll(strings.NewReader("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(got))
}

func TestBytesReaderRoundTrip(t *testing.T) {
	got, err := readAll(bytesReader([]byte("roundtrip")))
	require.NoError(t, err)
	assert.Equal(t, "roundtrip", string(got))
}

func TestWriteTableThenReadTableRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enfa.txt")

	n := lextable.NewNFA()
	n.NewState()
	n.NewState()
	table := &lextable.Table{
		StartingState: "START",
		States:        []string{"START"},
		Rules: map[string][]lextable.Rule{
			"START": {{NFA: n, Action: lextable.Action{UnitToAdd: "IDENT"}}},
		},
	}

	require.NoError(t, writeTable(path, table))

	got, err := readTable(path)
	require.NoError(t, err)
	assert.Equal(t, "START", got.StartingState)
	require.Len(t, got.Rules["START"], 1)
	assert.Equal(t, "IDENT", got.Rules["START"][0].Action.UnitToAdd)
}

func TestReadTableMissingFileIsInternalError(t *testing.T) {
	_, err := readTable(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
	assert.Equal(t, ExitInternalError, exitCodeFor(err))
}
