// Package codegen implements CodeGen (L4): a second walk over the tree
// SemanticAnalyzer already typed, emitting FRISC assembly under the frame
// and calling convention fixed by spec.md §4.4.
//
// The walk is grounded on original_source/L4/main.cpp generateCodeRecursive,
// translated production by production; several productions were left as
// empty stubs in the original (multiplicative operators, assignment,
// loops, break/continue) and are completed here from spec.md's "Expression
// lowering"/"Branching" rules plus the pattern already established by the
// productions the original did implement (see DESIGN.md).
package codegen

import (
	"fmt"
	"io"

	"github.com/friscc/friscc/internal/semantic"
	"github.com/friscc/friscc/internal/tree"
)

// cursor pairs a scope-tree position with a cursor into its children: the
// generator visits <slozena_naredba> nodes in exactly the same left-to-right
// order the analyzer appended their scopes in, so a running per-scope index
// reproduces the original's "search currentScope->children by name or
// visited flag" without needing either — a simplification the dual-walk
// symmetry between L3 and L4 makes safe (see DESIGN.md).
type cursor struct {
	scope *semantic.Scope
	next  int
}

func (c *cursor) child() *cursor {
	s := c.scope.Children[c.next]
	c.next++
	return &cursor{scope: s}
}

type loopContext struct {
	continueLabel string
	breakLabel    string
	depth         int // g.scopeDepth at loop entry, for break/continue unwinding
}

// Generator holds the small amount of ambient state the original's globals
// carried (spec.md §5 "buffers"): a pending unary minus, the name of the
// global/local declarator about to be initialized, a global initializer's
// folded constant, the function currently being entered, and bookkeeping
// counters for the stack discipline and label numbering.
type Generator struct {
	w      io.Writer
	global *semantic.Scope

	minusBuffer       bool
	idnName           string
	globalValue       string
	functionName      string
	numberOfArguments int
	labelCounter      int
	buffersOnStack    int
	scopeDepth        int // words reserved by every currently-open SUB'd scope
	loopStack         []loopContext
}

// Generate emits the fixed prologue, then the program, to w (spec.md §4.4
// "Prologue"). global is the root of the scope tree SemanticAnalyzer built
// for root; codegen never re-derives types, it only consumes them.
func Generate(w io.Writer, root *tree.Branch, global *semantic.Scope) {
	fmt.Fprint(w, "\tMOVE 40000, R7\n")
	fmt.Fprint(w, "\tCALL F_main\n")
	fmt.Fprint(w, "\tHALT\n")

	g := &Generator{w: w, global: global}
	g.emit(root, &cursor{scope: global})
}

func (g *Generator) emitf(format string, args ...any) {
	fmt.Fprintf(g.w, format, args...)
}

func (g *Generator) pushReg(reg string) {
	g.emitf("\tPUSH %s\n", reg)
	g.buffersOnStack++
}

func (g *Generator) popReg(reg string) {
	g.emitf("\tPOP %s\n", reg)
	g.buffersOnStack--
}

// label allocates n consecutive monotone label numbers and returns the
// first (spec.md §4.4 "Label counter is monotone").
func (g *Generator) label(n int) int {
	first := g.labelCounter
	g.labelCounter += n
	return first
}

func branchChild(b *tree.Branch, i int) *tree.Branch {
	return b.Children[i].(*tree.Branch)
}

func leafChild(b *tree.Branch, i int) *tree.Leaf {
	return b.Children[i].(*tree.Leaf)
}

// childSymbol reads a child node's grammar symbol regardless of whether it
// is a Branch or a Leaf (tree.Node keeps that distinction private to the
// tree package).
func childSymbol(n tree.Node) string {
	switch v := n.(type) {
	case *tree.Leaf:
		return v.Symbol
	case *tree.Branch:
		return v.Symbol
	}
	return ""
}

// emit is the production dispatcher, mirroring semantic.Analyzer.resolve's
// shape but lowering to assembly instead of annotating types.
func (g *Generator) emit(branch *tree.Branch, cur *cursor) {
	switch branch.Symbol {
	case "<primarni_izraz>":
		g.emitPrimaryExpr(branch, cur)
	case "<postfiks_izraz>":
		g.emitPostfixExpr(branch, cur)
	case "<lista_argumenata>":
		g.emitArgumentList(branch, cur)
	case "<unarni_izraz>":
		g.emitUnaryExpr(branch, cur)
	case "<unarni_operator>":
		g.emitUnaryOperator(branch)
	case "<cast_izraz>":
		g.emitPassThroughOrNothing(branch, cur)
	case "<ime_tipa>":
		g.emitPassThroughOrNothing(branch, cur)
	case "<specifikator_tipa>":
		// Empty: the type name carries no runtime representation.
	case "<multiplikativni_izraz>":
		g.emitMultiplicative(branch, cur)
	case "<aditivni_izraz>":
		g.emitAdditive(branch, cur)
	case "<odnosni_izraz>":
		g.emitRelational(branch, cur)
	case "<jednakosni_izraz>":
		g.emitEquality(branch, cur)
	case "<bin_i_izraz>":
		g.emitBitwise(branch, cur, "AND")
	case "<bin_xili_izraz>":
		g.emitBitwise(branch, cur, "XOR")
	case "<bin_ili_izraz>":
		g.emitBitwise(branch, cur, "OR")
	case "<log_i_izraz>":
		g.emitShortCircuit(branch, cur, true)
	case "<log_ili_izraz>":
		g.emitShortCircuit(branch, cur, false)
	case "<izraz_pridruzivanja>":
		g.emitAssignmentExpr(branch, cur)
	case "<izraz>":
		g.emitCommaExpr(branch, cur)
	case "<slozena_naredba>":
		g.emitCompoundStatement(branch, cur)
	case "<lista_naredbi>":
		g.emitPassThroughOrNothing(branch, cur)
	case "<naredba>":
		g.emit(branchChild(branch, 0), cur)
	case "<izraz_naredba>":
		g.emitExprStatement(branch, cur)
	case "<naredba_grananja>":
		g.emitIfStatement(branch, cur)
	case "<naredba_petlje>":
		g.emitLoopStatement(branch, cur)
	case "<naredba_skoka>":
		g.emitJumpStatement(branch, cur)
	case "<prijevodna_jedinica>":
		g.emitPassThroughOrNothing(branch, cur)
	case "<vanjska_deklaracija>":
		g.emit(branchChild(branch, 0), cur)
	case "<definicija_funkcije>":
		g.emitFunctionDefinition(branch, cur)
	case "<lista_parametara>", "<deklaracija_parametra>":
		// No runtime representation: parameter slots are wired up from the
		// function's Object.Parameters in emitCompoundStatement.
	case "<lista_deklaracija>":
		g.emitPassThroughOrNothing(branch, cur)
	case "<deklaracija>":
		g.emit(branchChild(branch, 0), cur)
		g.emit(branchChild(branch, 1), cur)
	case "<lista_init_deklaratora>":
		g.emitPassThroughOrNothing(branch, cur)
	case "<init_deklarator>":
		g.emitInitDeclarator(branch, cur)
	case "<izravni_deklarator>":
		g.emitDirectDeclarator(branch, cur)
	case "<inicijalizator>":
		g.emitInitializer(branch, cur)
	case "<lista_izraza_pridruzivanja>":
		g.emitPassThroughOrNothing(branch, cur)
	}
}

// emitPassThroughOrNothing handles every production whose only codegen
// obligation is "recurse into each branch child in order" (case 1: a single
// child; case N: every child in turn) — original_source/L4/main.cpp repeats
// this shape for <postfiks_izraz> wrappers, <lista_naredbi>, <prijevodna_jedinica>,
// and friends.
func (g *Generator) emitPassThroughOrNothing(branch *tree.Branch, cur *cursor) {
	for _, child := range branch.Children {
		if b, ok := child.(*tree.Branch); ok {
			g.emit(b, cur)
		}
	}
}
