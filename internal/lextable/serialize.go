package lextable

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteText serializes t to the on-disk table format (spec.md §4.1
// "Serialization"): the starting state, then every lex state in declaration
// order. Each rule serializes as a brace-delimited block of states: a
// state's number, then either a blank line (no outgoing edges — every
// automaton has at least one such state, its accept) or its one transition
// group (input byte, then the space-separated destination list). The block
// closes with `}` followed by the four action fields; a dash line separates
// lex states.
//
// Every transition input byte is written as a decimal integer rather than
// the raw byte original_source/L1/generator.cpp emits: a literal source byte
// rewritten onto this table (e.g. the whitespace byte \n is rewritten to by
// ConvertOperators) would otherwise land inside the line-oriented text
// itself and desynchronize bufio.Scanner's line splitting. See DESIGN.md for
// this deviation.
//
// A state is only ever expected to carry one transition group: Thompson
// construction (regexcompiler.Transform) gives a state either a single
// literal-byte edge or one or more epsilon edges collapsed onto the single
// reserved Epsilon key, never both. WriteText reports an error if that
// invariant is violated rather than silently dropping a group the format
// has no room for.
func WriteText(w io.Writer, t *Table) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, t.StartingState)
	for _, state := range t.States {
		fmt.Fprintln(bw, state)
		for _, rule := range t.Rules[state] {
			fmt.Fprintln(bw, "{")
			if err := writeNFA(bw, rule.NFA); err != nil {
				return err
			}
			writeAction(bw, rule.Action)
		}
		fmt.Fprintln(bw, "-")
	}

	return bw.Flush()
}

func writeAction(bw *bufio.Writer, a Action) {
	fmt.Fprintln(bw, a.UnitToAdd)
	if a.NewLine {
		fmt.Fprintln(bw, 1)
	} else {
		fmt.Fprintln(bw, 0)
	}
	fmt.Fprintln(bw, a.EnterState)
	fmt.Fprintln(bw, a.GoBack)
}

func writeNFA(bw *bufio.Writer, n *NFA) error {
	for i, edges := range n.States {
		fmt.Fprintln(bw, i)
		switch len(edges) {
		case 0:
			fmt.Fprintln(bw)
		case 1:
			for b, dests := range edges {
				fmt.Fprintln(bw, int(b))
				for j, s := range dests {
					if j > 0 {
						fmt.Fprint(bw, " ")
					}
					fmt.Fprint(bw, s)
				}
				fmt.Fprintln(bw)
			}
		default:
			return fmt.Errorf("lextable: state %d has %d distinct transition bytes, enfa.txt can represent only one (see regexcompiler.Transform's single-group invariant)", i, len(edges))
		}
	}
	fmt.Fprintln(bw, "}")
	return nil
}

// ReadText deserializes a table previously written by WriteText.
func ReadText(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	rd := &textReader{sc: sc}

	t := &Table{
		StartingState: rd.line(),
		Rules:         map[string][]Rule{},
	}
	if err := rd.err(); err != nil {
		return nil, err
	}

	for {
		state, ok := rd.lineOK()
		if !ok {
			break
		}
		t.States = append(t.States, state)

		var rules []Rule
		for {
			marker, ok := rd.lineOK()
			if !ok {
				return nil, fmt.Errorf("lextable: unexpected end of table in lex state %q", state)
			}
			if marker == "-" {
				break
			}
			if marker != "{" {
				return nil, fmt.Errorf("lextable: expected '{' or '-' in lex state %q, got %q", state, marker)
			}
			nfa := readNFA(rd)
			action := readAction(rd)
			if err := rd.err(); err != nil {
				return nil, err
			}
			rules = append(rules, Rule{NFA: nfa, Action: action})
		}
		t.Rules[state] = rules
	}

	if err := rd.err(); err != nil {
		return nil, err
	}
	return t, nil
}

func readAction(rd *textReader) Action {
	var a Action
	a.UnitToAdd = rd.line()
	a.NewLine = rd.int() != 0
	a.EnterState = rd.line()
	a.GoBack = rd.int()
	return a
}

func readNFA(rd *textReader) *NFA {
	n := NewNFA()
	for {
		marker := rd.line()
		if rd.err() != nil {
			return n
		}
		if marker == "}" {
			return n
		}

		want, err := strconv.Atoi(marker)
		if err != nil {
			rd.fail(fmt.Errorf("lextable: expected a state number or '}', got %q: %w", marker, err))
			return n
		}
		s := n.NewState()
		if s != want {
			rd.fail(fmt.Errorf("lextable: states must be numbered sequentially: expected %d, got %d", s, want))
			return n
		}

		edgeLine := rd.line()
		if rd.err() != nil {
			return n
		}
		if edgeLine == "" {
			continue // no outgoing edges
		}

		input, err := strconv.Atoi(edgeLine)
		if err != nil {
			rd.fail(fmt.Errorf("lextable: malformed transition input %q: %w", edgeLine, err))
			return n
		}
		destLine := rd.line()
		if rd.err() != nil {
			return n
		}
		for _, f := range strings.Fields(destLine) {
			next, err := strconv.Atoi(f)
			if err != nil {
				rd.fail(fmt.Errorf("lextable: malformed next-state %q: %w", f, err))
				return n
			}
			n.AddEdge(s, byte(input), next)
		}
	}
}

// textReader wraps a bufio.Scanner with line/int readers that latch the
// first error they hit so callers can defer error checking to the end of a
// parse instead of threading it through every helper call.
type textReader struct {
	sc       *bufio.Scanner
	firstErr error
}

// line reads a line that must exist: unlike lineOK, a clean EOF here is
// itself an error rather than a legitimate stopping point.
func (r *textReader) line() string {
	s, ok := r.lineOK()
	if !ok && r.firstErr == nil {
		r.firstErr = fmt.Errorf("lextable: unexpected end of table")
	}
	return s
}

// lineOK reports false on EOF or a scanner error (which it latches); true
// with the read line otherwise.
func (r *textReader) lineOK() (string, bool) {
	if r.firstErr != nil {
		return "", false
	}
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			r.firstErr = err
		}
		return "", false
	}
	return r.sc.Text(), true
}

func (r *textReader) int() int {
	s := r.line()
	if r.firstErr != nil {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		r.fail(fmt.Errorf("lextable: expected integer, got %q: %w", s, err))
		return 0
	}
	return n
}

func (r *textReader) fail(err error) {
	if r.firstErr == nil {
		r.firstErr = err
	}
}

func (r *textReader) err() error {
	return r.firstErr
}
