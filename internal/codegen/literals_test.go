package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimalWithSign(t *testing.T) {
	minus := false
	assert.Equal(t, 42, parseDecimalWithSign("42", &minus))

	minus = true
	assert.Equal(t, -42, parseDecimalWithSign("42", &minus))
	assert.False(t, minus)
}

func TestCharLiteralValuePlainChar(t *testing.T) {
	assert.Equal(t, "97", charLiteralValue("'a'"))
}

func TestCharLiteralValueEscapes(t *testing.T) {
	assert.Equal(t, "10", charLiteralValue(`'\n'`))
	assert.Equal(t, "9", charLiteralValue(`'\t'`))
	assert.Equal(t, "0", charLiteralValue(`'\0'`))
	assert.Equal(t, "39", charLiteralValue(`'\''`))
	assert.Equal(t, "34", charLiteralValue(`'\"'`))
	assert.Equal(t, "92", charLiteralValue(`'\\'`))
}
