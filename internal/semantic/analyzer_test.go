package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friscc/friscc/internal/tree"
)

func numberExpr(data string) *tree.Branch {
	return &tree.Branch{
		Symbol:   "<primarni_izraz>",
		Children: []tree.Node{&tree.Leaf{Symbol: "BROJ", Line: "1", Data: data}},
	}
}

func TestResolvePrimaryExprNumberLiteral(t *testing.T) {
	a := NewAnalyzer()
	branch := numberExpr("42")
	a.resolve(branch, a.Global, false)

	assert.Equal(t, tree.INT, branch.Type.Base)
	assert.False(t, branch.LValue)
}

func TestResolvePrimaryExprInvalidNumberFails(t *testing.T) {
	a := NewAnalyzer()
	branch := numberExpr("not-a-number")

	require.Panics(t, func() { a.resolve(branch, a.Global, false) })
}

func TestResolvePrimaryExprUnresolvedIdentifierFails(t *testing.T) {
	a := NewAnalyzer()
	branch := &tree.Branch{
		Symbol:   "<primarni_izraz>",
		Children: []tree.Node{&tree.Leaf{Symbol: "IDN", Line: "1", Data: "missing"}},
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		_, ok := r.(*Violation)
		assert.True(t, ok)
	}()
	a.resolve(branch, a.Global, false)
}

func TestResolvePrimaryExprKnownIdentifier(t *testing.T) {
	a := NewAnalyzer()
	a.Global.Define("x", tree.Object{Base: tree.INT})
	branch := &tree.Branch{
		Symbol:   "<primarni_izraz>",
		Children: []tree.Node{&tree.Leaf{Symbol: "IDN", Line: "1", Data: "x"}},
	}
	a.resolve(branch, a.Global, false)

	assert.Equal(t, tree.INT, branch.Type.Base)
	assert.True(t, branch.LValue)
}

func TestAnalyzeTopLevelAdditiveExpressionTypeChecks(t *testing.T) {
	a := NewAnalyzer()
	root := &tree.Branch{
		Symbol: "<aditivni_izraz>",
		Children: []tree.Node{
			numberExpr("1"),
			&tree.Leaf{Symbol: "PLUS", Line: "1", Data: "+"},
			numberExpr("2"),
		},
	}

	err := a.Analyze(root)
	require.NoError(t, err)
	assert.Equal(t, tree.INT, root.Type.Base)
}

func TestAnalyzeReturnsFirstViolation(t *testing.T) {
	a := NewAnalyzer()
	root := &tree.Branch{
		Symbol: "<aditivni_izraz>",
		Children: []tree.Node{
			numberExpr("1"),
			&tree.Leaf{Symbol: "PLUS", Line: "1", Data: "+"},
			numberExpr("not-a-number"),
		},
	}

	err := a.Analyze(root)
	require.Error(t, err)
	var v *Violation
	require.ErrorAs(t, err, &v)
	assert.Contains(t, v.Production, "<aditivni_izraz> ::=")
}

func TestSpecifikatorTipaSetsBase(t *testing.T) {
	a := NewAnalyzer()
	branch := &tree.Branch{
		Symbol:   "<specifikator_tipa>",
		Children: []tree.Node{&tree.Leaf{Symbol: "KR_CHAR", Line: "1", Data: "char"}},
	}
	a.resolve(branch, a.Global, false)
	assert.Equal(t, tree.CHAR, branch.Type.Base)
}
