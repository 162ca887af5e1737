package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRunCallsRunImmediatelyThenOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.txt")
	require.NoError(t, os.WriteFile(path, []byte("<root>\n"), 0o644))

	calls := make(chan struct{}, 8)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, path, 10*time.Millisecond, nil, func() {
			calls <- struct{}{}
		})
	}()

	// The initial, unconditional call.
	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the initial run")
	}

	require.NoError(t, os.WriteFile(path, []byte("<root>\n<child>\n"), 0o644))

	select {
	case <-calls:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for the post-write run")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

func TestRunReturnsErrorForMissingPath(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := Run(ctx, filepath.Join(t.TempDir(), "does-not-exist"), time.Millisecond, nil, func() {})
	require.Error(t, err)
}
