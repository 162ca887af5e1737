package regexcompiler

import "bytes"

// ExpandDefinitions splices the already-expanded body of every `{name}`
// occurrence in encoded (itself already converted via ConvertOperators,
// so `{`/`}` appear as opLBrace/opRBrace) into encoded, wrapped in
// parentheses, repeating until no nested reference remains.
//
// Because named definitions are introduced in source order and a later
// definition never references one not yet seen, every definitions[name]
// entry is already fully expanded by the time it is looked up here, so this
// terminates after splicing each occurrence once (spec.md §4.1
// "Named-definition expansion").
func ExpandDefinitions(encoded []byte, definitions map[string][]byte) []byte {
	for {
		idx := bytes.IndexByte(encoded, opLBrace)
		if idx < 0 {
			return encoded
		}
		end := bytes.IndexByte(encoded[idx+1:], opRBrace)
		if end < 0 {
			return encoded
		}
		end += idx + 1
		name := string(encoded[idx+1 : end])

		body := definitions[name]
		replacement := make([]byte, 0, len(body)+2)
		replacement = append(replacement, opLParen)
		replacement = append(replacement, body...)
		replacement = append(replacement, opRParen)

		rest := append([]byte{}, encoded[end+1:]...)
		encoded = append(encoded[:idx], replacement...)
		encoded = append(encoded, rest...)
	}
}
