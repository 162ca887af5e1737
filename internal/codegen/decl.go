package codegen

import "github.com/friscc/friscc/internal/tree"

// emitFunctionDefinition lowers <definicija_funkcije>: stash the function
// name so emitCompoundStatement recognizes the body as a frame-owning
// scope, then recurse into the return-type specifier, optional parameter
// list (no runtime representation), and body in source order
// (original_source/L4/main.cpp's <definicija_funkcije> case).
func (g *Generator) emitFunctionDefinition(branch *tree.Branch, cur *cursor) {
	name := leafChild(branch, 1).Data
	g.functionName = name

	g.emit(branchChild(branch, 0), cur)
	if _, isParamList := branch.Children[3].(*tree.Branch); isParamList {
		g.emit(branchChild(branch, 3), cur)
	}
	g.emit(branchChild(branch, 5), cur)
}

// emitInitDeclarator lowers <init_deklarator>: an uninitialized declarator
// emits a zeroed global label (locals need nothing — their slot is already
// reserved by the enclosing SUB and is undefined until assigned, matching
// C's "declared but not initialized" semantics); an initialized declarator
// evaluates the initializer and either folds it into a global DW or stores
// it to the declarator's local slot (spec.md §4.4 "Globals & initializers").
func (g *Generator) emitInitDeclarator(branch *tree.Branch, cur *cursor) {
	switch len(branch.Children) {
	case 1:
		g.emit(branchChild(branch, 0), cur)
		if cur.scope.Parent == nil {
			g.emitf("\nG_%s\tDW %%D 0\n", g.idnName)
			g.idnName = ""
		}

	case 3:
		g.emit(branchChild(branch, 0), cur)
		g.emit(branchChild(branch, 2), cur)

		if cur.scope.Parent == nil {
			num := parseDecimalWithSign(g.globalValue, &g.minusBuffer)
			g.emitf("\nG_%s\tDW %%D %d\n", g.idnName, num)
			g.idnName = ""
			return
		}

		g.popReg("R1")
		off, _ := frameOffset(cur.scope, g.idnName)
		g.emitf("\tSTORE R1, (R7+%d)\n", 4*off)
	}
}

func (g *Generator) emitDirectDeclarator(branch *tree.Branch, cur *cursor) {
	switch len(branch.Children) {
	case 1:
		g.idnName = leafChild(branch, 0).Data
	case 4:
		// Array declarator: no codegen in this target (see DESIGN.md).
	}
}

func (g *Generator) emitInitializer(branch *tree.Branch, cur *cursor) {
	switch len(branch.Children) {
	case 1:
		g.emit(branchChild(branch, 0), cur)
	case 3:
		g.emit(branchChild(branch, 1), cur)
	}
}
