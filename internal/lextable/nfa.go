// Package lextable holds the data model shared by L1-Gen (internal/regexcompiler,
// which builds it) and L1-Run (internal/lexruntime, which simulates and
// deserializes it): the epsilon-NFA, the per-rule action, and the lex table
// itself, plus the table's on-disk text serialization (spec.md §3.1, §3.2).
package lextable

// Epsilon is the reserved transition byte for epsilon edges (spec.md §3.1).
// It must not collide with any literal source byte, so it lies outside the
// byte range that ConvertOperators produces for literal source bytes:
// regexcompiler reserves 0xF0-0xF6 for
// structural operators and epsilon; lexruntime never sees a raw source byte
// in that range because the alphabet these lex-specs describe is ASCII
// source text.
const Epsilon byte = 0xF6

// NFA is an epsilon-NFA: state set is dense integers 0..len(States)-1,
// state 0 is the unique start of the automaton that owns it, state 1 is the
// unique accept.
type NFA struct {
	States []map[byte][]int
}

// NewNFA returns an empty automaton with no states.
func NewNFA() *NFA {
	return &NFA{}
}

// NewState appends a fresh state with no outgoing edges and returns its number.
func (n *NFA) NewState() int {
	n.States = append(n.States, map[byte][]int{})
	return len(n.States) - 1
}

// AddEdge adds a transition from `from` to `to` on input byte `on` (use
// Epsilon for a no-input edge).
func (n *NFA) AddEdge(from int, on byte, to int) {
	n.States[from][on] = append(n.States[from][on], to)
}

// Action is the four-field action a rule fires on a successful match
// (spec.md §3.1 "Rule").
type Action struct {
	UnitToAdd  string // "-" means consume but emit nothing
	NewLine    bool
	EnterState string // empty means "stay in the current lex state"
	GoBack     int    // 0 means "consume the full match"
}

// Rule pairs one rule's compiled automaton with its action. The rule's
// lex-state and source regex live in the enclosing Table/spec, not here.
type Rule struct {
	NFA    *NFA
	Action Action
}

// Table is the compiled, ordered mapping lex_state -> rules (spec.md §3.2).
// States lists lex-state names in declaration order: order within a state
// encodes rule priority (earlier wins on a length tie), and the Table's own
// State order is kept explicit (rather than relying on map iteration) so
// serialization is deterministic.
type Table struct {
	StartingState string
	States        []string
	Rules         map[string][]Rule
}
