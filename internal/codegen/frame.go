package codegen

import (
	"github.com/friscc/friscc/internal/semantic"
	"github.com/friscc/friscc/internal/tree"
)

// frameOffset locates name in scope or one of its ancestors, returning its
// word index relative to the scope that owns it plus the combined size of
// every narrower (nested) scope between scope and the owner — the
// "parent_spill" term from spec.md §4.4's frame-offset formula. A global
// owner reports isGlobal=true and an offset of 0 (globals are addressed by
// label, not by frame offset).
//
// Grounded on original_source/L4/main.cpp's repeated
// `scopeCheck->table.find/parent.lock()` walk in <primarni_izraz> and
// <init_deklarator>; since semantic.Scope.Names is declaration-ordered
// (see scope.go), the position of name within the owning scope's Names is
// already the index the original recovered by iterating its std::map.
func frameOffset(scope *semantic.Scope, name string) (offset int, isGlobal bool) {
	spill := 0
	for s := scope; s != nil; s = s.Parent {
		for i, n := range s.Names {
			if n == name {
				if s.Parent == nil {
					return 0, true
				}
				return i + spill, false
			}
		}
		spill += len(s.Names)
	}
	// Unreachable: SemanticAnalyzer guarantees every reference resolves.
	return 0, false
}

// identifierName descends the left spine of single-child expression
// productions down to a bare IDN leaf, recovering the name an assignment's
// left-hand <postfiks_izraz> designates (spec.md §4.4 only specifies
// scalar-identifier assignment targets; array/pointer lvalues are not
// covered — see DESIGN.md).
func identifierName(branch *tree.Branch) (string, bool) {
	for {
		if len(branch.Children) != 1 {
			return "", false
		}
		switch child := branch.Children[0].(type) {
		case *tree.Leaf:
			if child.Symbol != "IDN" {
				return "", false
			}
			return child.Data, true
		case *tree.Branch:
			branch = child
		}
	}
}
