package regexcompiler

import (
	"fmt"

	"github.com/friscc/friscc/internal/lextable"
)

// Transform builds the (start, accept) fragment for reg, a byte sequence
// already passed through ConvertOperators and ExpandDefinitions, via
// Thompson-style composition (spec.md §4.1 "Thompson construction").
//
// Grounded on original_source/L1/analizator/../generator.cpp `transform`: a
// fresh NFA gets its start/accept states allocated before any recursive
// descent, so the outermost call to Transform on a freshly built NFA always
// yields (0, 1) — the invariant the rest of the pipeline relies on.
func Transform(n *lextable.NFA, reg []byte) (start, accept int) {
	if parts := splitTopLevelAlt(reg); parts != nil {
		left := n.NewState()
		right := n.NewState()
		for _, part := range parts {
			s, e := Transform(n, part)
			n.AddEdge(left, Epsilon, s)
			n.AddEdge(e, Epsilon, right)
		}
		return left, right
	}

	left := n.NewState()
	right := n.NewState()
	last := left
	i := 0
	for i < len(reg) {
		var a, b int
		if reg[i] == opLParen {
			j := matchingParen(reg, i)
			a, b = Transform(n, reg[i+1:j])
			i = j + 1
		} else {
			a = n.NewState()
			b = n.NewState()
			n.AddEdge(a, reg[i], b)
			i++
		}

		if i < len(reg) && reg[i] == opStar {
			x, y := a, b
			a = n.NewState()
			b = n.NewState()
			n.AddEdge(a, Epsilon, x)
			n.AddEdge(y, Epsilon, b)
			n.AddEdge(a, Epsilon, b)
			n.AddEdge(y, Epsilon, x)
			i++
		}

		n.AddEdge(last, Epsilon, a)
		last = b
	}
	n.AddEdge(last, Epsilon, right)
	return left, right
}

// splitTopLevelAlt splits reg at every `|` at parenthesis-depth 0. It
// returns nil (not a one-element slice) when no top-level `|` exists, so
// callers can tell "alternation of one" from "no alternation at all" apart,
// matching the original's parts.size() > 0 guard.
func splitTopLevelAlt(reg []byte) [][]byte {
	depth := 0
	start := 0
	var parts [][]byte
	for i, b := range reg {
		switch b {
		case opLParen:
			depth++
		case opRParen:
			depth--
		case opAlt:
			if depth == 0 {
				parts = append(parts, reg[start:i])
				start = i + 1
			}
		}
	}
	if parts == nil {
		return nil
	}
	return append(parts, reg[start:])
}

func matchingParen(reg []byte, open int) int {
	depth := 1
	for j := open + 1; j < len(reg); j++ {
		switch reg[j] {
		case opLParen:
			depth++
		case opRParen:
			depth--
			if depth == 0 {
				return j
			}
		}
	}
	panic(fmt.Sprintf("regexcompiler: unbalanced parenthesis at %d", open))
}
