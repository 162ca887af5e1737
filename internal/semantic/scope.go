// Package semantic implements SemanticAnalyzer (L3): walking a parse tree,
// building a lexically-scoped symbol table, and type-checking every
// production against the fixed grammar (spec.md §4.3).
package semantic

import "github.com/friscc/friscc/internal/tree"

// Scope is one lexical block: a symbol table plus, for a function body, the
// return type that governs its `return` statements (spec.md §3.6).
//
// Names records declaration order alongside Table: CodeGen's frame-offset
// arithmetic needs a deterministic walk order, and Go's map iteration order
// is not it — a deliberate fix over the original's reliance on incidental
// map-iteration order (see DESIGN.md).
type Scope struct {
	Table    map[string]tree.Object
	Names    []string
	Function tree.Base
	Parent   *Scope
	Children []*Scope
}

// NewScope allocates an empty scope nested under parent (nil for the global
// scope).
func NewScope(parent *Scope) *Scope {
	return &Scope{Table: map[string]tree.Object{}, Parent: parent}
}

// Child appends and returns a fresh scope nested under s.
func (s *Scope) Child() *Scope {
	c := NewScope(s)
	s.Children = append(s.Children, c)
	return c
}

// Define inserts or overwrites name in s's own table, recording first-seen
// order in Names.
func (s *Scope) Define(name string, obj tree.Object) {
	if _, exists := s.Table[name]; !exists {
		s.Names = append(s.Names, name)
	}
	s.Table[name] = obj
}

// Lookup walks s and its ancestors outward, returning the nearest
// definition of name.
func (s *Scope) Lookup(name string) (tree.Object, *Scope, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if obj, ok := cur.Table[name]; ok {
			return obj, cur, true
		}
	}
	return tree.Object{}, nil, false
}

// EnclosingFunction walks s and its ancestors outward for the nearest scope
// whose Function is a real return type (spec.md §4.3 "<naredba_skoka>"):
// `return` statements resolve against the innermost enclosing function, not
// necessarily the immediate parent block.
func (s *Scope) EnclosingFunction() (*Scope, bool) {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur.Function != tree.NONE {
			return cur, true
		}
	}
	return nil, false
}
