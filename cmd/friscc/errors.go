package main

import (
	"errors"

	"github.com/friscc/friscc/internal/diagnostics"
	"github.com/friscc/friscc/internal/semantic"
)

// exitCodeFor maps a pipeline error to the exit code convention in
// exitcodes.go. A *semantic.Violation or *semantic.GlobalViolation maps to
// ExitSemanticError directly, the same code a diagnostics.SemanticError
// gets; the other diagnostics types each map to their own code
// (SPEC_FULL.md §B.4).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var violation *semantic.Violation
	var globalViolation *semantic.GlobalViolation
	if errors.As(err, &violation) || errors.As(err, &globalViolation) {
		return ExitSemanticError
	}

	var lexErr *diagnostics.LexicalError
	if errors.As(err, &lexErr) {
		return ExitLexicalError
	}

	var semErr *diagnostics.SemanticError
	if errors.As(err, &semErr) {
		return ExitSemanticError
	}

	var internalErr *diagnostics.InternalError
	if errors.As(err, &internalErr) {
		return ExitInternalError
	}

	return ExitIOError
}
