package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friscc/friscc/internal/semantic"
	"github.com/friscc/friscc/internal/tree"
)

func TestFrameOffsetGlobalOwner(t *testing.T) {
	global := semantic.NewScope(nil)
	global.Define("g", tree.Object{Base: tree.INT})

	off, isGlobal := frameOffset(global, "g")
	assert.True(t, isGlobal)
	assert.Equal(t, 0, off)
}

func TestFrameOffsetLocalOwnerNoSpill(t *testing.T) {
	global := semantic.NewScope(nil)
	fn := global.Child()
	fn.Define("a", tree.Object{Base: tree.INT})
	fn.Define("b", tree.Object{Base: tree.INT})

	off, isGlobal := frameOffset(fn, "b")
	assert.False(t, isGlobal)
	assert.Equal(t, 1, off)
}

func TestFrameOffsetAddsParentSpill(t *testing.T) {
	global := semantic.NewScope(nil)
	fn := global.Child()
	fn.Define("a", tree.Object{Base: tree.INT})
	fn.Define("b", tree.Object{Base: tree.INT})
	block := fn.Child()
	block.Define("c", tree.Object{Base: tree.INT})

	off, isGlobal := frameOffset(block, "a")
	assert.False(t, isGlobal)
	assert.Equal(t, 1, off) // 0 (a's own index) + 1 (block's own Names spilled first)
}

func TestIdentifierNameDescendsSingleChildChain(t *testing.T) {
	leaf := &tree.Leaf{Symbol: "IDN", Line: "1", Data: "x"}
	wrapped := &tree.Branch{Symbol: "<postfiks_izraz>", Children: []tree.Node{leaf}}
	outer := &tree.Branch{Symbol: "<unarni_izraz>", Children: []tree.Node{wrapped}}

	name, ok := identifierName(outer)
	require.True(t, ok)
	assert.Equal(t, "x", name)
}

func TestIdentifierNameRejectsMultiChildOrNonIdentifier(t *testing.T) {
	num := &tree.Leaf{Symbol: "BROJ", Line: "1", Data: "1"}
	wrapped := &tree.Branch{Symbol: "<primarni_izraz>", Children: []tree.Node{num}}

	_, ok := identifierName(wrapped)
	assert.False(t, ok)

	multi := &tree.Branch{Symbol: "<aditivni_izraz>", Children: []tree.Node{wrapped, wrapped}}
	_, ok = identifierName(multi)
	assert.False(t, ok)
}
