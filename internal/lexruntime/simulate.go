// Package lexruntime implements L1-Run: loading a compiled lex table and
// running the longest-match, rule-priority, mode-switching lexical analyzer
// over a source buffer (spec.md §4.2).
package lexruntime

import "github.com/friscc/friscc/internal/lextable"

// simulator holds the two alternating bitsets and the epsilon-closure stack
// reused across every simulate call for one rule, avoiding a fresh
// allocation per step (spec.md §4.2 "Model").
type simulator struct {
	x, y  []bool
	stack []int
}

func newSimulator(n *lextable.NFA) *simulator {
	return &simulator{
		x: make([]bool, len(n.States)),
		y: make([]bool, len(n.States)),
	}
}

func (s *simulator) reset() {
	for i := range s.x {
		s.x[i] = false
	}
	for i := range s.y {
		s.y[i] = false
	}
	s.stack = s.stack[:0]
}

// closure pushes every state reachable from the currently-true entries of
// dst via epsilon edges into dst, using s.stack to drive the search.
func (s *simulator) closure(n *lextable.NFA, dst []bool) {
	for i, live := range dst {
		if live {
			s.stack = append(s.stack, i)
		}
	}
	for len(s.stack) > 0 {
		top := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		for _, next := range n.States[top][lextable.Epsilon] {
			if !dst[next] {
				dst[next] = true
				s.stack = append(s.stack, next)
			}
		}
	}
}

// acceptedLength runs n against input starting at pos, returning the length
// of the longest prefix that lands the automaton in its accept state (state
// 1), or 0 if it never does (spec.md §4.2 "Simulation").
func acceptedLength(s *simulator, n *lextable.NFA, input []byte, pos int) int {
	s.reset()
	s.x[0] = true
	s.closure(n, s.x)

	best := 0
	cursor := pos
	for cursor < len(input) {
		if !anyTrue(s.x) {
			break
		}
		b := input[cursor]
		for i, live := range s.x {
			if !live {
				continue
			}
			for _, next := range n.States[i][b] {
				s.y[next] = true
			}
		}
		s.closure(n, s.y)
		cursor++

		for i := range s.x {
			s.x[i] = false
		}
		s.x, s.y = s.y, s.x

		if len(s.x) > 1 && s.x[1] {
			best = cursor - pos
		}
	}
	return best
}

func anyTrue(bits []bool) bool {
	for _, b := range bits {
		if b {
			return true
		}
	}
	return false
}
