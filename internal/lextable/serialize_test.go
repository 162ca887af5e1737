package lextable

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	n := NewNFA()
	a := n.NewState() // 0
	b := n.NewState() // 1
	n.AddEdge(a, 'x', b)
	n.AddEdge(b, Epsilon, a)

	return &Table{
		StartingState: "START",
		States:        []string{"START", "MORE"},
		Rules: map[string][]Rule{
			"START": {{NFA: n, Action: Action{UnitToAdd: "IDENT", GoBack: 1}}},
			"MORE":  {{NFA: NewNFA(), Action: Action{UnitToAdd: "-", NewLine: true, EnterState: "START"}}},
		},
	}
}

func TestWriteTextThenReadTextRoundTrips(t *testing.T) {
	want := sampleTable()

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, want))

	got, err := ReadText(&buf)
	require.NoError(t, err)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ReadText(WriteText(want)) mismatch (-want +got):\n%s", diff)
	}
}

func TestReadTextRejectsTruncatedInput(t *testing.T) {
	// a lex state whose rule block never reaches its closing "-".
	_, err := ReadText(strings.NewReader("START\nSTART\n{\n0\n\n}\nIDENT\n0\n\n0\n"))
	assert.Error(t, err)
}

func TestReadTextRejectsUnknownRuleMarker(t *testing.T) {
	// a rule block must open with "{" or close the lex state with "-".
	_, err := ReadText(strings.NewReader("START\nSTART\nnotamarker\n"))
	assert.Error(t, err)
}

func TestReadTextRejectsNonSequentialStateNumbers(t *testing.T) {
	// the format self-describes each state's number; a gap is malformed.
	malformed := "START\nSTART\n{\n0\n\n2\n\n}\nIDENT\n0\n\n0\n-\n"
	_, err := ReadText(strings.NewReader(malformed))
	assert.Error(t, err)
}

func TestReadTextRejectsMalformedTransition(t *testing.T) {
	// a single-rule table whose NFA has a malformed transition input token.
	malformed := "START\nSTART\n{\n0\nbad\n"
	_, err := ReadText(strings.NewReader(malformed))
	assert.Error(t, err)
}

func TestWriteTextRejectsTooManyTransitionGroups(t *testing.T) {
	// WriteText must refuse to serialize a state with more than one
	// distinct transition byte: the text format has no room for it.
	n := NewNFA()
	s := n.NewState()
	n.NewState()
	n.AddEdge(s, 'a', 1)
	n.AddEdge(s, 'b', 1)

	table := &Table{
		StartingState: "START",
		States:        []string{"START"},
		Rules:         map[string][]Rule{"START": {{NFA: n, Action: Action{UnitToAdd: "X"}}}},
	}

	var buf bytes.Buffer
	assert.Error(t, WriteText(&buf, table))
}

func TestNFANewStateAndAddEdge(t *testing.T) {
	n := NewNFA()
	s0 := n.NewState()
	s1 := n.NewState()
	assert.Equal(t, 0, s0)
	assert.Equal(t, 1, s1)

	n.AddEdge(s0, 'a', s1)
	n.AddEdge(s0, 'a', s1)
	assert.Equal(t, []int{1, 1}, n.States[0]['a'])
}
