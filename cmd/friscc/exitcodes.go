package main

// Exit codes, named constants rather than bare magic numbers, in the style
// of the teacher's cmd/devcmd/main.go ExitSuccess/ExitInvalidArguments/...
// block. Resolves spec.md §9 Open Question (c): every semantic violation,
// whether raised mid-walk by L3 or by one of its two whole-program checks,
// uses the single ExitSemanticError code rather than a distinct one per
// check.
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitLexicalError     = 3
	ExitSemanticError    = 4
	ExitInternalError    = 5
)
