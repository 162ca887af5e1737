// Package regexcompiler implements L1-Gen: compiling a lex-spec's regular
// expressions into per-rule epsilon-NFAs and serializing them to the on-disk
// table format consumed by internal/lexruntime.
package regexcompiler

import "github.com/friscc/friscc/internal/lextable"

// Reserved single-byte encoding for the structural regex operators, chosen
// outside the printable ASCII range so the rest of the pipeline can treat a
// rewritten regex as a flat, unambiguous byte sequence (spec.md §4.1
// "Operator rewriting"). The rewritten form of `$` is lextable.Epsilon,
// shared with the NFA's epsilon-edge marker (spec.md §3.1).
const (
	opLParen byte = 0xF0 + iota
	opRParen
	opLBrace
	opRBrace
	opAlt
	opStar
)

// Epsilon is the rewritten byte for the `$` operator.
const Epsilon = lextable.Epsilon

func isStructuralOperator(b byte) bool {
	switch b {
	case '(', ')', '{', '}', '|', '*', '$':
		return true
	default:
		return false
	}
}

func rewrittenOperator(b byte) byte {
	switch b {
	case '(':
		return opLParen
	case ')':
		return opRParen
	case '{':
		return opLBrace
	case '}':
		return opRBrace
	case '|':
		return opAlt
	case '*':
		return opStar
	case '$':
		return Epsilon
	default:
		return b
	}
}
