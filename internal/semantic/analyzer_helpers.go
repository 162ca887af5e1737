package semantic

import (
	"strconv"

	"github.com/friscc/friscc/internal/tree"
)

func (a *Analyzer) resolvePrimaryExpr(branch *tree.Branch, scope *Scope, inLoop bool) {
	switch len(branch.Children) {
	case 1:
		c0 := leafChild(branch, 0)
		switch c0.Symbol {
		case "IDN":
			obj, owner, exists := scope.Lookup(c0.Data)
			if !exists {
				a.suggestIdentifier(scope, c0.Data)
				fail(branch)
			}
			if !obj.IsFunction {
				branch.Type = obj
			} else {
				branch.Type = tree.Object{
					IsFunction:  true,
					Base:        tree.NONE,
					PostfixName: c0.Data,
					ReturnType:  obj.Base,
					Parameters:  obj.Parameters,
				}
			}
			branch.LValue = IsLValue(owner.Table[c0.Data])
		case "BROJ":
			if !IsValidInt(c0.Data, a.minusBuffer) {
				fail(branch)
			}
			a.minusBuffer = false
			branch.Type = tree.Object{Base: tree.INT}
			branch.LValue = false
		case "ZNAK":
			if !IsValidChar(c0.Data) {
				fail(branch)
			}
			branch.Type = tree.Object{Base: tree.CHAR}
			branch.LValue = false
		case "NIZ_ZNAKOVA":
			n := IsValidCharArray(c0.Data)
			if n == -1 {
				fail(branch)
			}
			branch.Amount = n
			branch.Type = tree.Object{Base: tree.CHAR, Const: true, Array: true}
			branch.LValue = false
		}
	case 3:
		c1 := branchChild(branch, 1)
		a.resolve(c1, scope, inLoop)
		branch.Type = c1.Type
		branch.LValue = c1.LValue
	}
}

func (a *Analyzer) resolvePostfixExpr(branch *tree.Branch, scope *Scope, inLoop bool) {
	retNum := tree.Object{Base: tree.INT}
	switch len(branch.Children) {
	case 1:
		c0 := branchChild(branch, 0)
		a.resolve(c0, scope, inLoop)
		branch.Type = c0.Type
		branch.LValue = c0.LValue

	case 2:
		c0 := branchChild(branch, 0)
		a.resolve(c0, scope, inLoop)
		if !c0.LValue || !CanImplicit(c0.Type, retNum) {
			fail(branch)
		}
		branch.Type = retNum
		branch.Type.PostfixName = c0.Type.PostfixName
		branch.LValue = false

	case 3: // function call with no arguments
		c0 := branchChild(branch, 0)
		a.resolve(c0, scope, inLoop)
		if !c0.Type.IsFunction || len(c0.Type.Parameters) != 0 {
			fail(branch)
		}
		if c0.Type.PostfixName == "" {
			fail(branch)
		}
		for s := scope; s != nil; s = s.Parent {
			if fn, ok := s.Table[c0.Type.PostfixName]; ok {
				if !fn.IsFunction || len(fn.Parameters) != 0 {
					fail(branch)
				}
				break
			}
		}
		retNum.Base = c0.Type.ReturnType
		branch.Type = retNum

	case 4:
		a.resolvePostfixExprFour(branch, scope, inLoop, retNum)
	}
}

func (a *Analyzer) resolvePostfixExprFour(branch *tree.Branch, scope *Scope, inLoop bool, retNum tree.Object) {
	c0 := branchChild(branch, 0)
	c2 := branchChild(branch, 2)

	if c2.Symbol == "<izraz>" { // array subscript
		a.resolve(c0, scope, inLoop)
		if c0.Type.IsFunction || !c0.Type.Array {
			fail(branch)
		}
		a.resolve(c2, scope, inLoop)
		castTo := tree.Object{Base: tree.INT}
		if !CanImplicit(c2.Type, castTo) {
			fail(branch)
		}
		ret := c0.Type
		ret.Array = false
		branch.Type = ret
		branch.Type.PostfixName = c0.Type.PostfixName
		branch.LValue = !ret.Const
		return
	}

	// function call with arguments
	a.resolve(c0, scope, inLoop)
	a.resolve(c2, scope, inLoop)
	if !c0.Type.IsFunction {
		fail(branch)
	}
	args := c2.Arguments
	params := c0.Type.Parameters
	if len(args) != len(params) {
		fail(branch)
	}
	for i := range args {
		if !CanImplicit(args[i], params[i]) {
			fail(branch)
		}
	}
	retNum.Base = c0.Type.ReturnType
	branch.Type = retNum
	branch.Type.PostfixName = c0.Type.PostfixName
	branch.LValue = false
}

func (a *Analyzer) resolveCompoundStatement(branch *tree.Branch, scope *Scope, inLoop bool) {
	child := scope.Child()
	if a.functionTypeBuffer != tree.NONE {
		child.Function = a.functionTypeBuffer
		a.functionTypeBuffer = tree.NONE
	}
	if len(a.paramsBuffer) != 0 {
		for i, name := range a.paramNamesBuffer {
			if _, exists := child.Table[name]; exists {
				fail(branch)
			}
			child.Define(name, a.paramsBuffer[i])
		}
		a.paramsBuffer = nil
		a.paramNamesBuffer = nil
	}

	switch len(branch.Children) {
	case 3:
		a.resolve(branchChild(branch, 1), child, inLoop)
	case 4:
		a.resolve(branchChild(branch, 1), child, inLoop)
		a.resolve(branchChild(branch, 2), child, inLoop)
	}
}

func (a *Analyzer) resolveLoopStatement(branch *tree.Branch, scope *Scope, inLoop bool) {
	num := tree.Object{Base: tree.INT}
	switch len(branch.Children) {
	case 5: // while (expr) stmt
		c2 := branchChild(branch, 2)
		c4 := branchChild(branch, 4)
		a.resolve(c2, scope, inLoop)
		if !CanImplicit(c2.Type, num) {
			fail(branch)
		}
		a.resolve(c4, scope, true)

	case 6: // for (; expr ;) stmt
		c2 := branchChild(branch, 2)
		c3 := branchChild(branch, 3)
		c5 := branchChild(branch, 5)
		a.resolve(c2, scope, inLoop)
		a.resolve(c3, scope, inLoop)
		if !CanImplicit(c3.Type, num) {
			fail(branch)
		}
		a.resolve(c5, scope, true)

	case 7: // for (init; expr; step) stmt
		c2 := branchChild(branch, 2)
		c3 := branchChild(branch, 3)
		c4 := branchChild(branch, 4)
		c6 := branchChild(branch, 6)
		a.resolve(c2, scope, inLoop)
		a.resolve(c3, scope, inLoop)
		if !CanImplicit(c3.Type, num) {
			fail(branch)
		}
		a.resolve(c4, scope, inLoop)
		a.resolve(c6, scope, true)
	}
}

func (a *Analyzer) resolveJumpStatement(branch *tree.Branch, scope *Scope, inLoop bool) {
	switch len(branch.Children) {
	case 2: // "break ;" / "continue ;" / "return ;"
		if branch.Children[0].(*tree.Leaf).Symbol != "KR_RETURN" {
			if !inLoop {
				fail(branch)
			}
			return
		}
		fn, ok := scope.EnclosingFunction()
		if !ok || fn.Function != tree.VOID {
			fail(branch)
		}

	case 3: // "return expr ;"
		c1 := branchChild(branch, 1)
		a.resolve(c1, scope, inLoop)
		fn, ok := scope.EnclosingFunction()
		if !ok || (fn.Function != tree.CHAR && fn.Function != tree.INT) {
			fail(branch)
		}
		if !CanImplicit(c1.Type, tree.Object{Base: fn.Function}) {
			fail(branch)
		}
	}
}

// resolveFunctionDefinition checks and records a function definition's
// signature in the global scope regardless of which scope is being walked
// (spec.md §4.3 "<definicija_funkcije>"): function definitions only ever
// appear at the top level of the grammar, so scope is already the global
// scope whenever this runs, but original_source/L3/main.cpp writes into its
// separate global table explicitly, and this keeps that same intent clear.
func (a *Analyzer) resolveFunctionDefinition(branch *tree.Branch, scope *Scope, inLoop bool) {
	c0 := branchChild(branch, 0)
	c1 := leafChild(branch, 1)
	c5 := branchChild(branch, 5)

	leaf3, isVoidParam := branch.Children[3].(*tree.Leaf)
	if isVoidParam && leaf3.Symbol == "KR_VOID" {
		a.resolve(c0, scope, inLoop)
		if (c0.Type.Base == tree.INT || c0.Type.Base == tree.CHAR) && !c0.Type.Array && c0.Type.Const {
			fail(branch)
		}

		if existing, exists := a.Global.Table[c1.Data]; exists {
			if existing.IsFunction && existing.IsDefined {
				fail(branch)
			}
			if !existing.IsFunction || existing.Base != c0.Type.Base || len(existing.Parameters) != 0 {
				fail(branch)
			}
			existing.IsDefined = true
			a.Global.Table[c1.Data] = existing
		} else {
			a.Global.Define(c1.Data, tree.Object{IsFunction: true, Base: c0.Type.Base, IsDefined: true})
		}
		a.functionTypeBuffer = c0.Type.Base
		a.resolve(c5, scope, inLoop)
		return
	}

	c3 := branchChild(branch, 3)
	a.resolve(c0, scope, inLoop)
	if c0.Type.Const {
		fail(branch)
	}

	if existing, exists := a.Global.Table[c1.Data]; exists {
		if existing.IsFunction && existing.IsDefined {
			fail(branch)
		}
		a.resolve(c3, scope, inLoop)
		if !existing.IsFunction || existing.Base != c0.Type.Base || len(existing.Parameters) != len(c3.Arguments) {
			fail(branch)
		}
		for i := range existing.Parameters {
			if existing.Parameters[i].Base != c3.Arguments[i].Base {
				fail(branch)
			}
		}
		existing.IsDefined = true
		a.Global.Table[c1.Data] = existing
	} else {
		a.resolve(c3, scope, inLoop)
		a.Global.Define(c1.Data, tree.Object{
			IsFunction: true,
			Base:       c0.Type.Base,
			IsDefined:  true,
			Parameters: c3.Arguments,
		})
	}

	a.functionTypeBuffer = c0.Type.Base
	a.paramsBuffer = c3.Arguments
	a.paramNamesBuffer = c3.ArgumentNames
	a.resolve(c5, scope, inLoop)
}

func (a *Analyzer) resolveInitDeclarator(branch *tree.Branch, scope *Scope, inLoop bool) {
	switch len(branch.Children) {
	case 1:
		c0 := branchChild(branch, 0)
		c0.NType = branch.NType
		a.resolve(c0, scope, inLoop)
		if c0.Type.Const {
			fail(branch)
		}

	case 3:
		c0 := branchChild(branch, 0)
		c2 := branchChild(branch, 2)
		c0.NType = branch.NType
		a.resolve(c0, scope, inLoop)
		a.resolve(c2, scope, inLoop)

		switch {
		case (c0.Type.Base == tree.INT || c0.Type.Base == tree.CHAR) && !c0.Type.Array:
			target := c0.Type
			target.Const = false
			if !CanImplicit(c2.Type, target) {
				fail(branch)
			}
		case (c0.Type.Base == tree.INT || c0.Type.Base == tree.CHAR) && c0.Type.Array:
			if c2.Amount > c0.Amount {
				fail(branch)
			}
			target := c0.Type
			target.Const = false
			target.Array = false
			for _, elem := range c2.Arguments {
				if !CanImplicit(elem, target) {
					fail(branch)
				}
			}
		}
	}
}

func (a *Analyzer) resolveDirectDeclarator(branch *tree.Branch, scope *Scope, inLoop bool) {
	switch len(branch.Children) {
	case 1:
		c0 := leafChild(branch, 0)
		if branch.NType.Base == tree.VOID {
			fail(branch)
		}
		if _, exists := scope.Table[c0.Data]; exists {
			fail(branch)
		}
		scope.Define(c0.Data, branch.NType)
		branch.Type = branch.NType

	case 4:
		a.resolveDirectDeclaratorFour(branch, scope, inLoop)
	}
}

func (a *Analyzer) resolveDirectDeclaratorFour(branch *tree.Branch, scope *Scope, inLoop bool) {
	c0 := leafChild(branch, 0)

	switch branch.Children[2].(type) {
	case *tree.Leaf:
		c2 := leafChild(branch, 2)
		if c2.Symbol == "BROJ" {
			if branch.NType.Base == tree.VOID {
				fail(branch)
			}
			if _, exists := scope.Table[c0.Data]; exists {
				fail(branch)
			}
			if !IsValidArraySize(c2.Data) {
				fail(branch)
			}
			obj := branch.NType
			obj.Array = true
			scope.Define(c0.Data, obj)
			branch.Type = obj
			n, _ := strconv.Atoi(c2.Data)
			branch.Amount = n
			return
		}
		// KR_VOID: function declarator with no parameters
		if existing, exists := scope.Table[c0.Data]; exists {
			if !existing.IsFunction || len(existing.Parameters) != 0 || existing.Base != branch.NType.Base {
				fail(branch)
			}
		} else {
			scope.Define(c0.Data, tree.Object{IsFunction: true, Base: branch.NType.Base})
		}
		branch.Type = tree.Object{IsFunction: true, Base: branch.NType.Base}

	case *tree.Branch:
		c2 := branchChild(branch, 2)
		a.resolve(c2, scope, inLoop)
		if existing, exists := scope.Table[c0.Data]; exists {
			if !existing.IsFunction || len(existing.Parameters) != len(c2.Arguments) || existing.Base != branch.NType.Base {
				fail(branch)
			}
			for i := range existing.Parameters {
				if existing.Parameters[i].Base != c2.Arguments[i].Base {
					fail(branch)
				}
			}
		} else {
			scope.Define(c0.Data, tree.Object{IsFunction: true, Base: branch.NType.Base, Parameters: c2.Arguments})
		}
		branch.Type = tree.Object{IsFunction: true, Base: branch.NType.Base, Parameters: c2.Arguments}
	}
}

func (a *Analyzer) resolveInitializer(branch *tree.Branch, scope *Scope, inLoop bool) {
	switch len(branch.Children) {
	case 1:
		c0 := branchChild(branch, 0)
		a.resolve(c0, scope, inLoop)

		// Walk down the left spine of single-child wrapper productions to
		// find whether this initializer ultimately is a string literal, in
		// which case the declarator's array bound is implicit (spec.md §4.3
		// "<inicijalizator>", grounded on original's prev/last walk).
		prev := c0
		for len(prev.Children) == 1 {
			next, ok := prev.Children[0].(*tree.Branch)
			if !ok {
				break
			}
			prev = next
		}
		if last, ok := prev.Children[0].(*tree.Leaf); ok && last.Symbol == "NIZ_ZNAKOVA" {
			branch.Amount = prev.Amount + 1
			charArray := make([]tree.Object, branch.Amount)
			for i := range charArray {
				charArray[i] = tree.Object{Base: tree.CHAR}
			}
			branch.Arguments = charArray
		} else {
			branch.Type = c0.Type
		}

	case 3:
		c1 := branchChild(branch, 1)
		a.resolve(c1, scope, inLoop)
		branch.Amount = c1.Amount
		branch.Arguments = c1.Arguments
	}
}
