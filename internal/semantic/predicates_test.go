package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/friscc/friscc/internal/tree"
)

func TestCanImplicitScalarWidening(t *testing.T) {
	assert.True(t, CanImplicit(tree.Object{Base: tree.CHAR}, tree.Object{Base: tree.INT}))
	assert.True(t, CanImplicit(tree.Object{Base: tree.INT}, tree.Object{Base: tree.INT}))
	assert.False(t, CanImplicit(tree.Object{Base: tree.INT}, tree.Object{Base: tree.CHAR}))
}

func TestCanImplicitRejectsFunctionTarget(t *testing.T) {
	assert.False(t, CanImplicit(tree.Object{Base: tree.INT}, tree.Object{IsFunction: true}))
}

func TestCanImplicitArrayDecay(t *testing.T) {
	from := tree.Object{Base: tree.CHAR, Array: true}
	to := tree.Object{Base: tree.INT, Array: true}
	assert.True(t, CanImplicit(from, to))

	constFrom := tree.Object{Base: tree.CHAR, Array: true, Const: true}
	assert.False(t, CanImplicit(constFrom, to))
}

func TestCanExplicitAllowsNarrowing(t *testing.T) {
	assert.True(t, CanExplicit(tree.Object{Base: tree.INT}, tree.Object{Base: tree.CHAR}))
	assert.True(t, CanExplicit(tree.Object{Base: tree.CHAR}, tree.Object{Base: tree.INT}))
}

func TestIsLValue(t *testing.T) {
	assert.True(t, IsLValue(tree.Object{Base: tree.INT}))
	assert.False(t, IsLValue(tree.Object{Base: tree.INT, Const: true}))
	assert.False(t, IsLValue(tree.Object{Base: tree.INT, Array: true}))
	assert.False(t, IsLValue(tree.Object{IsFunction: true}))
}

func TestIsValidInt(t *testing.T) {
	assert.True(t, IsValidInt("42", false))
	assert.True(t, IsValidInt("42", true))
	assert.True(t, IsValidInt("0x2A", false))
	assert.False(t, IsValidInt("not-a-number", false))
	assert.False(t, IsValidInt("99999999999999999999", false))
}

func TestIsValidChar(t *testing.T) {
	assert.True(t, IsValidChar("'a'"))
	assert.True(t, IsValidChar(`'\n'`))
	assert.False(t, IsValidChar(`'\x'`))
	assert.False(t, IsValidChar("'ab'"))
	assert.False(t, IsValidChar("'"))
}

func TestIsValidCharArray(t *testing.T) {
	assert.Equal(t, 5, IsValidCharArray(`"hello"`))
	assert.Equal(t, 2, IsValidCharArray(`"\n\t"`))
	assert.Equal(t, -1, IsValidCharArray(`"\x"`))
	assert.Equal(t, -1, IsValidCharArray(`"\"`))
}

func TestIsValidArraySize(t *testing.T) {
	assert.True(t, IsValidArraySize("1"))
	assert.True(t, IsValidArraySize("1024"))
	assert.False(t, IsValidArraySize("0"))
	assert.False(t, IsValidArraySize("1025"))
	assert.False(t, IsValidArraySize("abc"))
}
