package codegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friscc/friscc/internal/semantic"
	"github.com/friscc/friscc/internal/tree"
)

// TestGenerateEmptyMainFunction exercises the full Generate entry point over
// a minimal "int main(void) {}" tree: fixed prologue, a bare function label,
// no locals and no parameters to move.
func TestGenerateEmptyMainFunction(t *testing.T) {
	global := semantic.NewScope(nil)
	global.Define("main", tree.Object{IsFunction: true, Base: tree.INT})
	global.Child() // main's empty body scope, appended in analyzer visitation order

	body := &tree.Branch{
		Symbol: "<slozena_naredba>",
		Children: []tree.Node{
			&tree.Leaf{Symbol: "L_VIOTVORENA", Line: "1", Data: "{"},
			&tree.Branch{Symbol: "<lista_naredbi>"},
			&tree.Leaf{Symbol: "L_VZATVORENA", Line: "1", Data: "}"},
		},
	}
	funcDef := &tree.Branch{
		Symbol: "<definicija_funkcije>",
		Children: []tree.Node{
			&tree.Branch{Symbol: "<ime_tipa>"},
			&tree.Leaf{Symbol: "IDN", Line: "1", Data: "main"},
			&tree.Leaf{Symbol: "L_ZOTVORENA", Line: "1", Data: "("},
			&tree.Leaf{Symbol: "KR_VOID", Line: "1", Data: "void"},
			&tree.Leaf{Symbol: "L_ZZATVORENA", Line: "1", Data: ")"},
			body,
		},
	}
	root := &tree.Branch{
		Symbol: "<prijevodna_jedinica>",
		Children: []tree.Node{
			&tree.Branch{Symbol: "<vanjska_deklaracija>", Children: []tree.Node{funcDef}},
		},
	}

	var buf bytes.Buffer
	Generate(&buf, root, global)

	want := "\tMOVE 40000, R7\n" +
		"\tCALL F_main\n" +
		"\tHALT\n" +
		"\nF_main\n"
	assert.Equal(t, want, buf.String())
}

func TestMoveParametersCopiesEachCallerSlot(t *testing.T) {
	global := semantic.NewScope(nil)
	fn := global.Child()
	fn.Define("a", tree.Object{Base: tree.INT})
	fn.Define("b", tree.Object{Base: tree.INT})

	var buf bytes.Buffer
	g := &Generator{w: &buf}
	g.moveParameters(fn, 2)

	want := "\tLOAD R1, (R7+16)\n" +
		"\tSTORE R1, (R7+0)\n" +
		"\tLOAD R1, (R7+12)\n" +
		"\tSTORE R1, (R7+4)\n"
	assert.Equal(t, want, buf.String())
}

func TestCursorChildAdvancesThroughScopeChildrenInOrder(t *testing.T) {
	global := semantic.NewScope(nil)
	first := global.Child()
	second := global.Child()

	c := &cursor{scope: global}
	require.Same(t, first, c.child().scope)
	require.Same(t, second, c.child().scope)
}

func TestChildSymbolHandlesBothNodeKinds(t *testing.T) {
	assert.Equal(t, "IDN", childSymbol(&tree.Leaf{Symbol: "IDN"}))
	assert.Equal(t, "<izraz>", childSymbol(&tree.Branch{Symbol: "<izraz>"}))
}

func TestLabelCounterIsMonotone(t *testing.T) {
	g := &Generator{}
	assert.Equal(t, 0, g.label(1))
	assert.Equal(t, 1, g.label(2))
	assert.Equal(t, 3, g.label(1))
}

func TestJLabelFormatsAllocatedNumber(t *testing.T) {
	g := &Generator{}
	assert.Equal(t, "J_0", g.jlabel())
	assert.Equal(t, "J_1", g.jlabel())
}
