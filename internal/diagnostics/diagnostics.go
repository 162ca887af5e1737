// Package diagnostics defines the three concrete error kinds spec.md §7
// distinguishes (lexical, semantic, internal), each a distinct Go type so
// cmd/friscc can dispatch on kind with errors.As to choose an exit code
// (SPEC_FULL.md §B.4), in the style of the teacher's
// runtime/parser/errors.go ParseError/BracketTracker split by ErrorType.
package diagnostics

import "fmt"

// LexicalError reports one unrecognized input byte (spec.md §4.2 "Error
// model"). L1-Run itself always recovers from this by skipping the byte and
// continuing and never returns a LexicalError; the type exists for callers
// that want to turn that recovered condition into a hard failure, and
// cmd/friscc maps it to ExitLexicalError.
type LexicalError struct {
	Byte  byte
	Line  int
	State string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error: unrecognized byte %q at line %d (state %s)", e.Byte, e.Line, e.State)
}

// SemanticError wraps the exact "LHS ::= S1 S2 ..." production text or the
// "main"/"funkcija" marker spec.md §4.3/§7 mandates as the sole diagnostic
// payload. Production is printed verbatim: callers must not reformat it.
type SemanticError struct {
	Production string
}

func (e *SemanticError) Error() string { return e.Production }

// InternalError wraps a malformed lex table or parse tree — input that
// violates the data model spec.md §3 assumes is already valid (a well-formed
// table, a well-formed tree) rather than a lexical or semantic rule
// violation. Grounded on lextable.ReadText's io/strconv error wrapping:
// InternalError adds the dispatch-by-type hook cmd/friscc needs on top of
// that same "%w"-wrapped message.
type InternalError struct {
	Stage string // "lextable", "tree", ...
	Err   error
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error (%s): %v", e.Stage, e.Err)
}

func (e *InternalError) Unwrap() error { return e.Err }

// NewInternalError wraps err, recording which stage detected the
// malformed input.
func NewInternalError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &InternalError{Stage: stage, Err: err}
}
