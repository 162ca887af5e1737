package semantic

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/friscc/friscc/internal/tree"
)

func TestSuggestIdentifierNilHintsIsNoop(t *testing.T) {
	a := NewAnalyzer()
	a.Global.Define("counter", tree.Object{Base: tree.INT})
	// Must not panic with a nil Hints writer.
	a.suggestIdentifier(a.Global, "countr")
}

func TestSuggestIdentifierWritesClosestCandidate(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnalyzer()
	a.Hints = &buf
	a.Global.Define("counter", tree.Object{Base: tree.INT})
	a.Global.Define("total", tree.Object{Base: tree.INT})

	a.suggestIdentifier(a.Global, "countr")
	assert.Equal(t, "did you mean \"counter\"?\n", buf.String())
}

func TestSuggestIdentifierNoCandidatesIsSilent(t *testing.T) {
	var buf bytes.Buffer
	a := NewAnalyzer()
	a.Hints = &buf

	a.suggestIdentifier(a.Global, "anything")
	assert.Empty(t, buf.String())
}
