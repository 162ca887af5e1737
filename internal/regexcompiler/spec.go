package regexcompiler

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/friscc/friscc/internal/lextable"
)

// RawRule is one `<State>regex { ... }` block after operator rewriting and
// definition expansion, before Thompson construction.
type RawRule struct {
	State  string
	Regex  []byte
	Action lextable.Action
}

// Spec is a fully parsed, not-yet-compiled lex-spec: named definitions have
// already been folded into every regex and rule, but no NFA exists yet.
type Spec struct {
	StartingState string
	States        []string
	Units         []string
	Rules         []RawRule
}

// ParseSpec reads the four-section lex-spec stdin format (spec.md §6,
// grounded on original_source/L1/generator.cpp's main): named-definition
// lines until the first line starting with '%', that '%'-prefixed line
// naming the lex states in declaration order, a second line naming the
// lexical unit names, then one `<State>regex` rule block per rule.
func ParseSpec(r io.Reader) (*Spec, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("regexcompiler: empty lex spec")
	}
	line, err := stripVersionPragma(sc.Text(), func() (string, bool) {
		ok := sc.Scan()
		return sc.Text(), ok
	})
	if err != nil {
		return nil, err
	}

	definitions := map[string][]byte{}
	for len(line) == 0 || line[0] != '%' {
		open := strings.IndexByte(line, '{')
		closeAt := strings.IndexByte(line, '}')
		if open < 0 || closeAt < 0 || closeAt < open {
			return nil, fmt.Errorf("regexcompiler: malformed definition line %q", line)
		}
		name := line[open+1 : closeAt]
		value := line[closeAt+2:]

		encoded := ConvertOperators(value)
		encoded = ExpandDefinitions(encoded, definitions)
		definitions[name] = encoded

		if !sc.Scan() {
			return nil, fmt.Errorf("regexcompiler: unexpected end of spec before state list")
		}
		line = sc.Text()
	}

	states := fieldsAfterMarker(line)
	if len(states) == 0 {
		return nil, fmt.Errorf("regexcompiler: empty lex-state list")
	}

	if !sc.Scan() {
		return nil, fmt.Errorf("regexcompiler: unexpected end of spec before unit list")
	}
	units := fieldsAfterMarker(sc.Text())

	var rules []RawRule
	for sc.Scan() {
		line = sc.Text()
		if line == "" {
			continue
		}
		if line[0] != '<' {
			return nil, fmt.Errorf("regexcompiler: expected rule header, got %q", line)
		}
		end := strings.IndexByte(line, '>')
		if end < 0 {
			return nil, fmt.Errorf("regexcompiler: malformed rule header %q", line)
		}
		state := line[1:end]

		encoded := ConvertOperators(line[end+1:])
		encoded = ExpandDefinitions(encoded, definitions)

		if !sc.Scan() || sc.Text() != "{" {
			return nil, fmt.Errorf("regexcompiler: expected '{' opening rule body for state %q", state)
		}
		if !sc.Scan() {
			return nil, fmt.Errorf("regexcompiler: unexpected end of spec reading unit for state %q", state)
		}
		action := lextable.Action{UnitToAdd: sc.Text()}

		for sc.Scan() {
			body := sc.Text()
			if body == "}" {
				break
			}
			switch {
			case body == "NOVI_REDAK":
				action.NewLine = true
			case strings.HasPrefix(body, "UDJI_U_STANJE"):
				action.EnterState = strings.TrimSpace(body[len("UDJI_U_STANJE"):])
			case strings.HasPrefix(body, "VRATI_SE"):
				n, err := strconv.Atoi(strings.TrimSpace(body[len("VRATI_SE"):]))
				if err != nil {
					return nil, fmt.Errorf("regexcompiler: invalid VRATI_SE operand in %q: %w", body, err)
				}
				action.GoBack = n
			}
		}

		rules = append(rules, RawRule{State: state, Regex: encoded, Action: action})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return &Spec{StartingState: states[0], States: states, Units: units, Rules: rules}, nil
}

// fieldsAfterMarker splits a "% a b c" style line on whitespace and drops
// the leading marker token.
func fieldsAfterMarker(line string) []string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return fields[1:]
}

// Compile runs Thompson construction over every rule in spec, grouping the
// resulting automata by lex state in declaration order (spec.md §3.2):
// within a state, rule order is preserved from the spec so it doubles as
// the priority order the runtime arbitrates length ties with.
func Compile(spec *Spec) *lextable.Table {
	table := &lextable.Table{
		StartingState: spec.StartingState,
		States:        append([]string{}, spec.States...),
		Rules:         make(map[string][]lextable.Rule, len(spec.States)),
	}
	for _, raw := range spec.Rules {
		n := lextable.NewNFA()
		Transform(n, raw.Regex)
		table.Rules[raw.State] = append(table.Rules[raw.State], lextable.Rule{NFA: n, Action: raw.Action})
	}
	return table
}
