package regexcompiler

// ConvertOperators rewrites a raw regex source line into the private byte
// alphabet: \n, \t and \_ expand to the actual newline/tab/space bytes, a
// backslash preceding any other structural operator drops the backslash and
// keeps the operator literal, and every remaining unescaped structural
// operator is replaced by its reserved byte (spec.md §4.1 "Operator
// rewriting"). The table serializer (internal/lextable) integer-encodes
// every transition byte, so a literal 0x0A here never collides with the
// text table's line framing the way it would in a raw-byte encoding.
//
// Grounded on original_source/L1/generator.cpp convertOperators, which walks
// the string once tracking backslash parity; this keeps that single-pass
// shape rather than a regex-based rewrite.
func ConvertOperators(s string) []byte {
	out := make([]byte, 0, len(s))
	i := 0
	for i < len(s) {
		c := s[i]
		if c == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				out = append(out, '\n')
				i += 2
				continue
			case 't':
				out = append(out, '\t')
				i += 2
				continue
			case '_':
				out = append(out, ' ')
				i += 2
				continue
			default:
				// Escaped structural operator (or a bare backslash before
				// anything else): drop the backslash, keep the literal byte.
				out = append(out, s[i+1])
				i += 2
				continue
			}
		}
		if isStructuralOperator(c) {
			out = append(out, rewrittenOperator(c))
		} else {
			out = append(out, c)
		}
		i++
	}
	return out
}
