package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseNestedBranches(t *testing.T) {
	const dump = "<program>\n" +
		" <naredba>\n" +
		"  IDN 3 x\n" +
		"  ZNAK_JEDNAKO 3 =\n" +
		"  BROJ 3 1\n"

	root, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	require.Equal(t, "<program>", root.Symbol)
	require.Len(t, root.Children, 1)

	naredba, ok := root.Children[0].(*Branch)
	require.True(t, ok)
	assert.Equal(t, "<naredba>", naredba.Symbol)
	require.Len(t, naredba.Children, 3)

	idn, ok := naredba.Children[0].(*Leaf)
	require.True(t, ok)
	assert.Equal(t, "IDN", idn.Symbol)
	assert.Equal(t, "3", idn.Line)
	assert.Equal(t, "x", idn.Data)
}

func TestParseSiblingBranchesAtSameDepth(t *testing.T) {
	const dump = "<program>\n" +
		" <a>\n" +
		"  IDN 1 x\n" +
		" <b>\n" +
		"  IDN 2 y\n"

	root, err := Parse(strings.NewReader(dump))
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	a := root.Children[0].(*Branch)
	b := root.Children[1].(*Branch)
	assert.Equal(t, "<a>", a.Symbol)
	assert.Equal(t, "<b>", b.Symbol)
}

func TestParseEmptyInputIsError(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseMalformedLeafIsError(t *testing.T) {
	const dump = "<program>\n" +
		" IDN\n"
	_, err := Parse(strings.NewReader(dump))
	assert.Error(t, err)
}

func TestFormatProduction(t *testing.T) {
	branch := &Branch{
		Symbol: "<naredba_pridruzivanja>",
		Children: []Node{
			&Leaf{Symbol: "IDN", Line: "3", Data: "x"},
			&Leaf{Symbol: "ZNAK_JEDNAKO", Line: "3", Data: "="},
			&Branch{Symbol: "<izraz>"},
		},
	}
	got := FormatProduction(branch)
	assert.Equal(t, "<naredba_pridruzivanja> ::= IDN(3,x) ZNAK_JEDNAKO(3,=) <izraz>", got)
}

func TestParseBaseRoundTrip(t *testing.T) {
	for _, b := range []Base{CHAR, INT, VOID} {
		assert.Equal(t, b, ParseBase(b.String()))
	}
	assert.Equal(t, NONE, ParseBase("garbage"))
}
