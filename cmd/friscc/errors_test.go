package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/friscc/friscc/internal/diagnostics"
	"github.com/friscc/friscc/internal/semantic"
)

func TestExitCodeForNilIsSuccess(t *testing.T) {
	assert.Equal(t, ExitSuccess, exitCodeFor(nil))
}

func TestExitCodeForSemanticViolation(t *testing.T) {
	assert.Equal(t, ExitSemanticError, exitCodeFor(&semantic.Violation{Production: "<izraz> ::= BROJ(1,1)"}))
}

func TestExitCodeForGlobalViolation(t *testing.T) {
	assert.Equal(t, ExitSemanticError, exitCodeFor(&semantic.GlobalViolation{Marker: "main"}))
}

func TestExitCodeForLexicalError(t *testing.T) {
	assert.Equal(t, ExitLexicalError, exitCodeFor(&diagnostics.LexicalError{Byte: '?', Line: 1, State: "START"}))
}

func TestExitCodeForDiagnosticsSemanticError(t *testing.T) {
	assert.Equal(t, ExitSemanticError, exitCodeFor(&diagnostics.SemanticError{Production: "x"}))
}

func TestExitCodeForInternalError(t *testing.T) {
	assert.Equal(t, ExitInternalError, exitCodeFor(diagnostics.NewInternalError("stage", errors.New("boom"))))
}

func TestExitCodeForUnknownErrorIsIOError(t *testing.T) {
	assert.Equal(t, ExitIOError, exitCodeFor(errors.New("plain")))
}
