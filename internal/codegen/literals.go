package codegen

import "strconv"

// parseDecimalWithSign parses s (already validated by SemanticAnalyzer) and
// applies and clears a pending unary minus, mirroring
// original_source/L4/main.cpp's repeated "if (minusBuffer) { num = -num;
// minusBuffer = false; }" snippet.
func parseDecimalWithSign(s string, minusBuffer *bool) int {
	num, _ := strconv.Atoi(s)
	if *minusBuffer {
		num = -num
		*minusBuffer = false
	}
	return num
}

// charLiteralValue recovers a ZNAK lexeme's numeric byte value as a decimal
// string, the same shortcut original_source/L4/main.cpp's global-initializer
// arm uses via `to_string((int)data[1])` — the escape-decoding table lives
// in semantic.IsValidChar/isValidSpecial; by codegen time the lexeme is
// already known valid, so only the common 'X' case and the handful of
// named escapes need decoding here.
func charLiteralValue(data string) string {
	if len(data) == 3 {
		return strconv.Itoa(int(data[1]))
	}
	// 4-byte form: 'X where X is one of \t \n \0 \' \" \\
	var b byte
	switch data[2] {
	case 't':
		b = '\t'
	case 'n':
		b = '\n'
	case '0':
		b = 0
	case '\'':
		b = '\''
	case '"':
		b = '"'
	case '\\':
		b = '\\'
	}
	return strconv.Itoa(int(b))
}
