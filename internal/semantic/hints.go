package semantic

import (
	"fmt"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Hints, when set on an Analyzer, receives a non-normative "did you mean"
// suggestion whenever an identifier fails to resolve (spec.md §6 pairs with
// the ambient-stack addition described in SPEC_FULL.md Part C). It never
// affects the mandated stdout diagnostic format or the returned Violation;
// a nil Hints is a silent no-op.
func (a *Analyzer) suggestIdentifier(scope *Scope, name string) {
	if a.Hints == nil {
		return
	}
	var candidates []string
	for s := scope; s != nil; s = s.Parent {
		candidates = append(candidates, s.Names...)
	}
	best := fuzzy.RankFind(name, candidates)
	if len(best) == 0 {
		return
	}
	closest := best[0]
	for _, r := range best {
		if r.Distance < closest.Distance {
			closest = r
		}
	}
	fmt.Fprintf(a.Hints, "did you mean %q?\n", closest.Target)
}
