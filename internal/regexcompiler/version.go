package regexcompiler

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// SupportedSpecVersion is the newest lex-spec pragma version this compiler
// understands. A spec declaring a newer major version is rejected outright
// rather than silently misparsed.
const SupportedSpecVersion = "v1.0"

const pragmaPrefix = "%frisc"

// stripVersionPragma consumes an optional leading `%frisc X.Y` pragma line.
// Its absence means "1.0" (spec.md §6); when present, its major version
// must not exceed SupportedSpecVersion's. line is the first line already
// read from the spec; it returns the line that should be treated as the
// first line of the definitions section (either line itself, unchanged, or
// the line that followed the consumed pragma).
func stripVersionPragma(line string, next func() (string, bool)) (string, error) {
	if !strings.HasPrefix(line, pragmaPrefix) {
		return line, nil
	}

	raw := strings.TrimSpace(strings.TrimPrefix(line, pragmaPrefix))
	declared := "v" + raw
	if !semver.IsValid(declared) {
		return "", fmt.Errorf("regexcompiler: malformed %%frisc version pragma %q", line)
	}
	if semver.Compare(semver.Major(declared), semver.Major(SupportedSpecVersion)) > 0 {
		return "", fmt.Errorf("regexcompiler: lex-spec declares %%frisc %s, newer than the %s this compiler supports", raw, strings.TrimPrefix(SupportedSpecVersion, "v"))
	}

	nextLine, ok := next()
	if !ok {
		return "", fmt.Errorf("regexcompiler: unexpected end of spec after %%frisc pragma")
	}
	return nextLine, nil
}
