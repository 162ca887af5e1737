package semantic

import "github.com/friscc/friscc/internal/tree"

// Violation is the first semantic rule broken while walking the tree
// (spec.md §4.3, §7): analysis stops at the first one found, so there is
// ever only one.
type Violation struct {
	Production string // tree.FormatProduction(branch): "LHS ::= S1 S2 ..."
}

func (v *Violation) Error() string { return v.Production }

// fail aborts the current walk by panicking with a *Violation; Analyze's
// top-level recover turns it back into a returned error. This mirrors the
// original analyzer's unconditional process exit on the first violation,
// which can originate many stack frames below the entry point.
func fail(branch *tree.Branch) {
	panic(&Violation{Production: tree.FormatProduction(branch)})
}

// GlobalViolation is raised by the two whole-program checks that run after
// the tree walk succeeds (spec.md §4.3 "global checks"): unlike a
// production Violation, these report a fixed marker instead of a
// production line.
type GlobalViolation struct {
	Marker string // "main" or "funkcija"
}

func (v *GlobalViolation) Error() string { return v.Marker }
