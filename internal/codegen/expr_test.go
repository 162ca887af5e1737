package codegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/friscc/friscc/internal/semantic"
)

func TestEmitImmediateSmallValue(t *testing.T) {
	var buf bytes.Buffer
	g := &Generator{w: &buf}
	g.emitImmediate(42)
	assert.Equal(t, "\tMOVE %D 42, R1\n", buf.String())
}

func TestEmitImmediateLargeValueSplitsIntoTwoHalves(t *testing.T) {
	var buf bytes.Buffer
	g := &Generator{w: &buf}
	g.emitImmediate(0x12345678)

	want := "\tMOVE %D 4660, R1\n" +
		"\tSHL R1, %D 16, R1\n" +
		"\tMOVE %D 22136, R2\n" +
		"\tOR R1, R2, R1\n"
	assert.Equal(t, want, buf.String())
}

func TestEmitNumberLiteralInLocalScopePushesRegister(t *testing.T) {
	var buf bytes.Buffer
	global := semantic.NewScope(nil)
	fn := global.Child()

	g := &Generator{w: &buf}
	g.emitNumberLiteral(&cursor{scope: fn}, "7")

	want := "\tMOVE %D 7, R1\n\tPUSH R1\n"
	assert.Equal(t, want, buf.String())
	assert.Equal(t, 1, g.buffersOnStack)
}

func TestEmitNumberLiteralInGlobalScopeBuffersValue(t *testing.T) {
	var buf bytes.Buffer
	global := semantic.NewScope(nil)

	g := &Generator{w: &buf}
	g.emitNumberLiteral(&cursor{scope: global}, "7")

	assert.Empty(t, buf.String())
	assert.Equal(t, "7", g.globalValue)
}

func TestEmitNumberLiteralAppliesPendingMinus(t *testing.T) {
	var buf bytes.Buffer
	global := semantic.NewScope(nil)
	fn := global.Child()

	g := &Generator{w: &buf, minusBuffer: true}
	g.emitNumberLiteral(&cursor{scope: fn}, "7")

	// -7 falls outside emitImmediate's small-positive fast path, so it is
	// materialized via the two-half split rather than a literal "-7".
	assert.NotEmpty(t, buf.String())
	assert.False(t, g.minusBuffer)
}
