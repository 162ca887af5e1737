package semantic

import (
	"io"

	"github.com/friscc/friscc/internal/tree"
)

// Analyzer walks a parse tree once, building the scope tree and annotating
// every node's Type/NType/LValue/Amount/Arguments fields in place (spec.md
// §4.3). Its buffer fields carry the small amount of inherited state the
// grammar's productions pass to a later sibling or descendant rather than
// returning synthesized: a pending unary minus, and a function's return
// type/parameter list/parameter names on their way from the declarator to
// the compound-statement scope that owns them.
type Analyzer struct {
	Global *Scope

	// Hints, when non-nil, receives non-normative "did you mean" stderr
	// output on an unresolved identifier (see suggestIdentifier in hints.go).
	Hints io.Writer

	minusBuffer        bool
	paramsBuffer       []tree.Object
	paramNamesBuffer   []string
	functionTypeBuffer tree.Base
}

// NewAnalyzer returns an Analyzer with a fresh, empty global scope.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Global: NewScope(nil)}
}

// Analyze walks root, returning the first semantic Violation encountered,
// or nil if the whole tree type-checks (spec.md §4.3). It does not run the
// two whole-program checks; call CheckMain and CheckFunctionDefinitions
// after a nil return.
func (a *Analyzer) Analyze(root *tree.Branch) (err error) {
	defer func() {
		if r := recover(); r != nil {
			v, ok := r.(*Violation)
			if !ok {
				panic(r)
			}
			err = v
		}
	}()
	a.resolve(root, a.Global, false)
	return nil
}

func branchChild(b *tree.Branch, i int) *tree.Branch {
	return b.Children[i].(*tree.Branch)
}

func leafChild(b *tree.Branch, i int) *tree.Leaf {
	return b.Children[i].(*tree.Leaf)
}

// resolve is the production dispatcher: one case per nonterminal in the
// fixed grammar, mirroring original_source/L3/main.cpp resolveTree exactly,
// translated from exit(0)-on-error to fail(branch) (spec.md §4.3).
func (a *Analyzer) resolve(branch *tree.Branch, scope *Scope, inLoop bool) {
	switch branch.Symbol {

	case "<primarni_izraz>":
		a.resolvePrimaryExpr(branch, scope, inLoop)

	case "<postfiks_izraz>":
		a.resolvePostfixExpr(branch, scope, inLoop)

	case "<lista_argumenata>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Arguments = append(branch.Arguments, c0.Type)
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			a.resolve(c0, scope, inLoop)
			a.resolve(c2, scope, inLoop)
			branch.Arguments = append(append([]tree.Object{}, c0.Arguments...), c2.Type)
		}

	case "<unarni_izraz>":
		castTo := tree.Object{Base: tree.INT}
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
			branch.LValue = c0.LValue
		case 2:
			c1 := branchChild(branch, 1)
			if c1.Symbol == "<unarni_izraz>" {
				a.resolve(c1, scope, inLoop)
				if !IsLValue(c1.Type) || !CanImplicit(c1.Type, castTo) {
					fail(branch)
				}
				branch.Type = castTo
				branch.LValue = false
			} else {
				c0 := branchChild(branch, 0)
				a.resolve(c0, scope, inLoop)
				a.resolve(c1, scope, inLoop)
				if !CanImplicit(c1.Type, castTo) {
					fail(branch)
				}
				branch.Type = castTo
				branch.LValue = false
			}
		}

	case "<unarni_operator>":
		c0 := leafChild(branch, 0)
		if c0.Symbol == "MINUS" {
			a.minusBuffer = true
		}

	case "<cast_izraz>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
			branch.LValue = c0.LValue
		case 4:
			c1 := branchChild(branch, 1)
			c3 := branchChild(branch, 3)
			a.resolve(c1, scope, inLoop)
			a.resolve(c3, scope, inLoop)
			if !CanExplicit(c3.Type, c1.Type) {
				fail(branch)
			}
			branch.Type = c1.Type
			branch.LValue = false
		}

	case "<ime_tipa>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
		case 2:
			c1 := branchChild(branch, 1)
			a.resolve(c1, scope, inLoop)
			if c1.Type.Base == tree.VOID {
				fail(branch)
			}
			ret := c1.Type
			ret.Const = true
			branch.Type = ret
		}

	case "<specifikator_tipa>":
		c0 := leafChild(branch, 0)
		obj := tree.Object{}
		switch c0.Symbol {
		case "KR_VOID":
			obj.Base = tree.VOID
		case "KR_CHAR":
			obj.Base = tree.CHAR
		default:
			obj.Base = tree.INT
		}
		branch.Type = obj

	case "<multiplikativni_izraz>", "<aditivni_izraz>", "<odnosni_izraz>",
		"<jednakosni_izraz>", "<bin_i_izraz>", "<bin_xili_izraz>",
		"<bin_ili_izraz>", "<log_i_izraz>", "<log_ili_izraz>":
		castTo := tree.Object{Base: tree.INT}
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
			branch.LValue = c0.LValue
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			a.resolve(c0, scope, inLoop)
			if !CanImplicit(c0.Type, castTo) {
				fail(branch)
			}
			a.resolve(c2, scope, inLoop)
			if !CanImplicit(c2.Type, castTo) {
				fail(branch)
			}
			branch.Type = castTo
			branch.LValue = false
		}

	case "<izraz_pridruzivanja>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
			branch.LValue = c0.LValue
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			a.resolve(c0, scope, inLoop)
			if !c0.LValue {
				fail(branch)
			}
			a.resolve(c2, scope, inLoop)
			if !CanImplicit(c2.Type, c0.Type) {
				fail(branch)
			}
			branch.Type = c0.Type
			branch.LValue = false
		}

	case "<izraz>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
			branch.LValue = c0.LValue
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			a.resolve(c0, scope, inLoop)
			a.resolve(c2, scope, inLoop)
			branch.Type = c2.Type
			branch.LValue = false
		}

	case "<slozena_naredba>":
		a.resolveCompoundStatement(branch, scope, inLoop)

	case "<lista_naredbi>":
		for _, child := range branch.Children {
			a.resolve(child.(*tree.Branch), scope, inLoop)
		}

	case "<naredba>":
		a.resolve(branchChild(branch, 0), scope, inLoop)

	case "<izraz_naredba>":
		switch len(branch.Children) {
		case 1:
			branch.Type = tree.Object{Base: tree.INT}
		case 2:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Type = c0.Type
		}

	case "<naredba_grananja>":
		num := tree.Object{Base: tree.INT}
		switch len(branch.Children) {
		case 5:
			c2 := branchChild(branch, 2)
			c4 := branchChild(branch, 4)
			a.resolve(c2, scope, inLoop)
			if !CanImplicit(c2.Type, num) {
				fail(branch)
			}
			a.resolve(c4, scope, inLoop)
		case 7:
			c2 := branchChild(branch, 2)
			c4 := branchChild(branch, 4)
			c6 := branchChild(branch, 6)
			a.resolve(c2, scope, inLoop)
			if !CanImplicit(c2.Type, num) {
				fail(branch)
			}
			a.resolve(c4, scope, inLoop)
			a.resolve(c6, scope, inLoop)
		}

	case "<naredba_petlje>":
		a.resolveLoopStatement(branch, scope, inLoop)

	case "<naredba_skoka>":
		a.resolveJumpStatement(branch, scope, inLoop)

	case "<prijevodna_jedinica>":
		for _, child := range branch.Children {
			a.resolve(child.(*tree.Branch), scope, inLoop)
		}

	case "<vanjska_deklaracija>":
		a.resolve(branchChild(branch, 0), scope, inLoop)

	case "<definicija_funkcije>":
		a.resolveFunctionDefinition(branch, scope, inLoop)

	case "<lista_parametara>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Arguments = append(branch.Arguments, c0.Type)
			branch.ArgumentNames = append([]string{}, c0.ArgumentNames...)
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			a.resolve(c0, scope, inLoop)
			a.resolve(c2, scope, inLoop)
			for _, name := range branch.ArgumentNames {
				if name == c2.ArgumentNames[0] {
					fail(branch)
				}
			}
			branch.Arguments = append(append([]tree.Object{}, c0.Arguments...), c2.Type)
			branch.ArgumentNames = append(append([]string{}, c0.ArgumentNames...), c2.ArgumentNames[0])
		}

	case "<deklaracija_parametra>":
		switch len(branch.Children) {
		case 2:
			c0 := branchChild(branch, 0)
			c1 := leafChild(branch, 1)
			a.resolve(c0, scope, inLoop)
			if c0.Type.Base == tree.VOID {
				fail(branch)
			}
			branch.Type = c0.Type
			branch.ArgumentNames = append(branch.ArgumentNames, c1.Data)
		case 4:
			c0 := branchChild(branch, 0)
			c1 := leafChild(branch, 1)
			a.resolve(c0, scope, inLoop)
			if c0.Type.Base == tree.VOID {
				fail(branch)
			}
			obj := c0.Type
			obj.Array = true
			branch.Type = obj
			branch.ArgumentNames = append(branch.ArgumentNames, c1.Data)
		}

	case "<lista_deklaracija>":
		for _, child := range branch.Children {
			a.resolve(child.(*tree.Branch), scope, inLoop)
		}

	case "<deklaracija>":
		c0 := branchChild(branch, 0)
		c1 := branchChild(branch, 1)
		a.resolve(c0, scope, inLoop)
		c1.NType = c0.Type
		a.resolve(c1, scope, inLoop)

	case "<lista_init_deklaratora>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			c0.NType = branch.NType
			a.resolve(c0, scope, inLoop)
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			c0.NType = branch.NType
			a.resolve(c0, scope, inLoop)
			c2.NType = branch.NType
			a.resolve(c2, scope, inLoop)
		}

	case "<init_deklarator>":
		a.resolveInitDeclarator(branch, scope, inLoop)

	case "<izravni_deklarator>":
		a.resolveDirectDeclarator(branch, scope, inLoop)

	case "<inicijalizator>":
		a.resolveInitializer(branch, scope, inLoop)

	case "<lista_izraza_pridruzivanja>":
		switch len(branch.Children) {
		case 1:
			c0 := branchChild(branch, 0)
			a.resolve(c0, scope, inLoop)
			branch.Arguments = append(branch.Arguments, c0.Type)
			branch.Amount = 1
		case 3:
			c0 := branchChild(branch, 0)
			c2 := branchChild(branch, 2)
			a.resolve(c0, scope, inLoop)
			a.resolve(c2, scope, inLoop)
			branch.Arguments = append(branch.Arguments, c2.Type)
			branch.Amount = c0.Amount + 1
		}
	}
}
