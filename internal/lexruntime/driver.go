package lexruntime

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/friscc/friscc/internal/lextable"
)

// Token is one emitted lexical unit: its name, the 1-based source line it
// started on, and its exact lexeme (spec.md §3.3, §6).
type Token struct {
	Unit   string
	Line   int
	Lexeme string
}

// Analyzer runs the longest-match, rule-priority, mode-switching lexical
// analysis loop over a compiled lex table (spec.md §4.2).
type Analyzer struct {
	table  *lextable.Table
	logger *slog.Logger
	sims   map[string][]*simulator
}

// NewAnalyzer prepares a reusable per-rule simulator for every rule in
// table, keyed by lex state, so Run never allocates a fresh bitset pair
// mid-scan.
func NewAnalyzer(table *lextable.Table, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sims := make(map[string][]*simulator, len(table.States))
	for _, state := range table.States {
		rules := table.Rules[state]
		ss := make([]*simulator, len(rules))
		for i, rule := range rules {
			ss[i] = newSimulator(rule.NFA)
		}
		sims[state] = ss
	}
	return &Analyzer{table: table, logger: logger, sims: sims}
}

// Run scans input, writing one "UNIT line lexeme" line to tokens per
// non-suppressed match and one raw offending byte to diagnostics per
// unrecognized position (spec.md §6 "Token stream"). It never returns early
// on a lexical error: L1-Run is the one stage with recovery, skipping one
// byte and continuing (spec.md §4.4 "Error model").
func (a *Analyzer) Run(input []byte, tokens, diagnostics io.Writer) error {
	state := a.table.StartingState
	line := 1
	cursor := 0

	for cursor < len(input) {
		bestLen := 0
		bestRule := -1
		rules := a.table.Rules[state]
		for i, rule := range rules {
			n := acceptedLength(a.sims[state][i], rule.NFA, input, cursor)
			if n > bestLen {
				bestLen = n
				bestRule = i
			}
		}

		if bestRule < 0 {
			a.logger.Debug("lexruntime: no rule matched, recovering", "state", state, "line", line, "byte", input[cursor])
			if _, err := diagnostics.Write(input[cursor : cursor+1]); err != nil {
				return err
			}
			cursor++
			continue
		}

		action := rules[bestRule].Action
		lexeme := input[cursor : cursor+bestLen]
		if action.GoBack > 0 {
			lexeme = input[cursor : cursor+action.GoBack]
		}

		if action.UnitToAdd != "-" {
			if _, err := fmt.Fprintf(tokens, "%s %d %s\n", action.UnitToAdd, line, lexeme); err != nil {
				return err
			}
		}

		if action.GoBack > 0 {
			cursor += action.GoBack
		} else {
			cursor += bestLen
		}
		if action.NewLine {
			line++
		}
		if action.EnterState != "" {
			a.logger.Debug("lexruntime: state switch", "from", state, "to", action.EnterState, "line", line)
			state = action.EnterState
		}
	}

	return nil
}
