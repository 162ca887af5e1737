package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friscc/friscc/internal/tree"
)

func TestFailPanicsWithViolation(t *testing.T) {
	branch := &tree.Branch{
		Symbol: "<izraz>",
		Children: []tree.Node{
			&tree.Leaf{Symbol: "BROJ", Line: "1", Data: "1"},
		},
	}

	defer func() {
		r := recover()
		require.NotNil(t, r)
		v, ok := r.(*Violation)
		require.True(t, ok)
		assert.Equal(t, "<izraz> ::= BROJ(1,1)", v.Production)
	}()
	fail(branch)
}

func TestViolationErrorReturnsProduction(t *testing.T) {
	v := &Violation{Production: "<naredba> ::= BROJ(1,1)"}
	assert.Equal(t, "<naredba> ::= BROJ(1,1)", v.Error())
}

func TestGlobalViolationErrorReturnsMarker(t *testing.T) {
	v := &GlobalViolation{Marker: "main"}
	assert.Equal(t, "main", v.Error())
}
