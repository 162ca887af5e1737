package codegen

import (
	"fmt"

	"github.com/friscc/friscc/internal/semantic"
	"github.com/friscc/friscc/internal/tree"
)

// emitCompoundStatement lowers <slozena_naredba>: every compound statement
// owns a scope, consumed here via cur.child() in the same left-to-right
// order SemanticAnalyzer appended it (see cursor's doc comment). A
// function's own top-level body additionally prints its label and moves
// arguments from their caller-pushed slots into local slots
// (original_source/L4/main.cpp's <slozena_naredba> case).
func (g *Generator) emitCompoundStatement(branch *tree.Branch, cur *cursor) {
	child := cur.child()
	n := len(child.scope.Names)

	isFunctionBody := g.functionName != ""
	if isFunctionBody {
		name := g.functionName
		g.functionName = ""
		g.emitf("\nF_%s\n", name)
		if n > 0 {
			g.emitf("\tSUB R7, %%D %d, R7\n", 4*n)
		}
		g.moveParameters(child.scope, len(g.global.Table[name].Parameters))
	} else if n > 0 {
		g.emitf("\tSUB R7, %%D %d, R7\n", 4*n)
	}
	g.scopeDepth += n

	switch len(branch.Children) {
	case 3:
		g.emit(branchChild(branch, 1), child)
	case 4:
		g.emit(branchChild(branch, 1), child)
		g.emit(branchChild(branch, 2), child)
	}

	// A function body's SUB is undone by its RET's frame unwind, not here
	// (original_source/L4/main.cpp's needToClear flag): falling off the end
	// of a function without a return is undefined, matching the source.
	if !isFunctionBody && n > 0 {
		g.emitf("\tADD R7, %%D %d, R7\n", 4*n)
	}
	g.scopeDepth -= n
}

// moveParameters copies each of a function's paramCount arguments from its
// caller-pushed slot into its local slot. scope.Names lists parameters
// before any block-local declaration (they are Define'd first in
// semantic.resolveCompoundStatement), so parameter i's local slot is
// simply word i — original_source/L4/main.cpp recovers the same index by
// searching scope->table for each paramName in turn; that search is
// redundant once Names is known declaration-ordered (see DESIGN.md).
func (g *Generator) moveParameters(scope *semantic.Scope, paramCount int) {
	total := len(scope.Names)
	for i := 0; i < paramCount; i++ {
		callerOffset := 4 * (total + paramCount - i)
		localOffset := 4 * i
		g.emitf("\tLOAD R1, (R7+%d)\n", callerOffset)
		g.emitf("\tSTORE R1, (R7+%d)\n", localOffset)
	}
}

func (g *Generator) emitExprStatement(branch *tree.Branch, cur *cursor) {
	if len(branch.Children) == 1 {
		return // bare ";"
	}
	g.emit(branchChild(branch, 0), cur)
	g.popReg("R1") // statement context: the expression's value is unused
}

// genLoopTest generates an <izraz_naredba> used as a loop's controlling
// condition. An empty one (bare ";", C's "for(;;)" idiom) means "always
// true"; codegen must not route it through emitExprStatement's generic
// discard-the-value handling, since the condition's truth value is exactly
// what the caller needs left on the stack.
func (g *Generator) genLoopTest(branch *tree.Branch, cur *cursor) {
	if len(branch.Children) == 1 {
		g.emitf("\tMOVE %%D 1, R1\n")
		g.pushReg("R1")
		return
	}
	g.emit(branchChild(branch, 0), cur)
}

func (g *Generator) emitIfStatement(branch *tree.Branch, cur *cursor) {
	g.emit(branchChild(branch, 2), cur)
	g.popReg("R1")
	g.emitf("\tCMP R1, %%D 0\n")

	switch len(branch.Children) {
	case 5:
		joinLabel := g.label(1)
		g.emitf("\tJP_Z J_%d\n", joinLabel)
		g.emit(branchChild(branch, 4), cur)
		g.emitf("J_%d\n", joinLabel)

	case 7:
		elseLabel := g.label(2)
		endLabel := elseLabel + 1
		g.emitf("\tJP_Z J_%d\n", elseLabel)
		g.emit(branchChild(branch, 4), cur)
		g.emitf("\tJP J_%d\n", endLabel)
		g.emitf("J_%d\n", elseLabel)
		g.emit(branchChild(branch, 6), cur)
		g.emitf("J_%d\n", endLabel)
	}
}

// emitLoopStatement lowers <naredba_petlje> (while/for), left as an empty
// stub in original_source/L4/main.cpp. Child indices mirror
// semantic.Analyzer.resolveLoopStatement exactly, so the two walks agree on
// the grammar's shape (see DESIGN.md).
func (g *Generator) emitLoopStatement(branch *tree.Branch, cur *cursor) {
	switch len(branch.Children) {
	case 5: // while ( <izraz> ) <naredba>
		startLabel, endLabel := g.jlabel(), g.jlabel()
		g.emitf("%s\n", startLabel)
		g.emit(branchChild(branch, 2), cur)
		g.popReg("R1")
		g.emitf("\tCMP R1, %%D 0\n")
		g.emitf("\tJP_Z %s\n", endLabel)
		g.runLoopBody(branchChild(branch, 4), cur, startLabel, endLabel)
		g.emitf("\tJP %s\n", startLabel)
		g.emitf("%s\n", endLabel)

	case 6: // for ( <izraz_naredba:init> <izraz_naredba:cond> ) <naredba>
		g.emit(branchChild(branch, 2), cur)
		startLabel, endLabel := g.jlabel(), g.jlabel()
		g.emitf("%s\n", startLabel)
		g.genLoopTest(branchChild(branch, 3), cur)
		g.popReg("R1")
		g.emitf("\tCMP R1, %%D 0\n")
		g.emitf("\tJP_Z %s\n", endLabel)
		g.runLoopBody(branchChild(branch, 5), cur, startLabel, endLabel)
		g.emitf("\tJP %s\n", startLabel)
		g.emitf("%s\n", endLabel)

	case 7: // for ( <izraz_naredba:init> <izraz_naredba:cond> <izraz:step> ) <naredba>
		g.emit(branchChild(branch, 2), cur)
		startLabel, stepLabel, endLabel := g.jlabel(), g.jlabel(), g.jlabel()
		g.emitf("%s\n", startLabel)
		g.genLoopTest(branchChild(branch, 3), cur)
		g.popReg("R1")
		g.emitf("\tCMP R1, %%D 0\n")
		g.emitf("\tJP_Z %s\n", endLabel)
		// continue targets the step, not the condition test: "continue" in
		// a C-style for loop must still run the increment.
		g.runLoopBody(branchChild(branch, 6), cur, stepLabel, endLabel)
		g.emitf("%s\n", stepLabel)
		g.emit(branchChild(branch, 4), cur)
		g.popReg("R1") // the step is an expression statement: discard its value
		g.emitf("\tJP %s\n", startLabel)
		g.emitf("%s\n", endLabel)
	}
}

// jlabel allocates one fresh "J_n" label text (spec.md §4.4 "Label counter
// is monotone").
func (g *Generator) jlabel() string {
	n := g.label(1)
	return fmt.Sprintf("J_%d", n)
}

// runLoopBody generates a loop's body statement with continueLabel and
// breakLabel in scope for any <naredba_skoka> it contains, and records the
// current scope depth so break/continue can unwind exactly the frame space
// opened since loop entry (spec.md §4.4 frame layout; see DESIGN.md —
// break/continue unwinding has no original_source counterpart since the
// original left loop codegen entirely unimplemented).
func (g *Generator) runLoopBody(body *tree.Branch, cur *cursor, continueLabel, breakLabel string) {
	g.loopStack = append(g.loopStack, loopContext{
		continueLabel: continueLabel,
		breakLabel:    breakLabel,
		depth:         g.scopeDepth,
	})
	g.emit(body, cur)
	g.loopStack = g.loopStack[:len(g.loopStack)-1]
}

func (g *Generator) currentLoop() loopContext {
	return g.loopStack[len(g.loopStack)-1]
}

// unwindToLoop frees the frame space opened by every scope entered since
// the nearest enclosing loop's body started, so a break/continue's direct
// jump leaves R7 exactly where the loop's own bookkeeping expects it.
func (g *Generator) unwindToLoop() {
	clear := g.scopeDepth - g.currentLoop().depth
	if clear > 0 {
		g.emitf("\tADD R7, %%D %d, R7\n", 4*clear)
	}
}

func (g *Generator) emitJumpStatement(branch *tree.Branch, cur *cursor) {
	switch len(branch.Children) {
	case 2:
		switch leafChild(branch, 0).Symbol {
		case "KR_BREAK":
			g.unwindToLoop()
			g.emitf("\tJP %s\n", g.currentLoop().breakLabel)
		case "KR_CONTINUE":
			g.unwindToLoop()
			g.emitf("\tJP %s\n", g.currentLoop().continueLabel)
		case "KR_RETURN":
			if g.scopeDepth > 0 {
				g.emitf("\tADD R7, %%D %d, R7\n", 4*g.scopeDepth)
			}
			g.emitf("\tRET\n")
		}

	case 3: // "return <izraz> ;"
		g.emit(branchChild(branch, 1), cur)
		g.popReg("R6")
		if g.scopeDepth > 0 {
			g.emitf("\tADD R7, %%D %d, R7\n", 4*g.scopeDepth)
		}
		g.emitf("\tRET\n")
	}
}
