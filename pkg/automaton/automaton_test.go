/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automaton_test.go
Description: Tests for the automaton kind table and the JSON/YAML description reader.
*/

package automaton_test

import (
	"testing"

	"github.com/kleascm/chomsky-classifier/pkg/automaton"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dfaJSON = `{
  "type": "AFD",
  "states": ["q0","q1"],
  "alphabet": ["a","b"],
  "start": "q0",
  "accepting": ["q1"],
  "transitions": {
    "q0": {"a": "q1", "b": "q0"},
    "q1": {"a": "q1", "b": "q0"}
  }
}`

const pdaYAML = `
type: pda
states: [p, q]
alphabet: [a, b]
start: p
accepting: [q]
transitions:
  p:
    a: p
    b: q
`

func TestClassifyKindTags(t *testing.T) {
	tests := []struct {
		tag      string
		kind     automaton.Kind
		expected grammar.Type
	}{
		{"AFD", automaton.KindFinite, grammar.Type3},
		{"afn", automaton.KindFinite, grammar.Type3},
		{"DFA", automaton.KindFinite, grammar.Type3},
		{" nfa ", automaton.KindFinite, grammar.Type3},
		{"AP", automaton.KindPushdown, grammar.Type2},
		{"pda", automaton.KindPushdown, grammar.Type2},
		{"MT", automaton.KindTuring, grammar.Type0},
		{"tm", automaton.KindTuring, grammar.Type0},
		{"Turing", automaton.KindTuring, grammar.Type0},
		{"LBA", automaton.KindUnknown, grammar.Type0},
		{"", automaton.KindUnknown, grammar.Type0},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.kind, automaton.ParseKind(tt.tag))
			typ, expl := automaton.ClassifyKind(tt.tag)
			assert.Equal(t, tt.expected, typ)
			assert.NotEmpty(t, expl)
		})
	}
}

func TestUnknownKindExplains(t *testing.T) {
	typ, expl := automaton.Classify(&automaton.Automaton{Type: "quantum"})
	assert.Equal(t, grammar.Type0, typ)
	assert.Contains(t, expl, "Unrecognized")
	assert.Contains(t, expl, "type 0")
}

func TestParseJSON(t *testing.T) {
	a, err := automaton.Parse([]byte(dfaJSON), automaton.FormatAuto)
	require.NoError(t, err)

	assert.Equal(t, automaton.KindFinite, a.Kind())
	assert.Equal(t, []string{"q0", "q1"}, a.States)
	assert.Equal(t, "q1", a.Transitions["q0"]["a"])

	typ, _ := automaton.Classify(a)
	assert.Equal(t, grammar.Type3, typ)
}

func TestParseYAML(t *testing.T) {
	a, err := automaton.Parse([]byte(pdaYAML), automaton.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, automaton.KindPushdown, a.Kind())
	assert.Equal(t, "q", a.Transitions["p"]["b"])

	explicit, err := automaton.Parse([]byte(pdaYAML), automaton.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, a, explicit)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"broken json":   `{"type": "AFD",`,
		"empty":         ``,
		"blank":         "  \n ",
		"json array":    `["AFD"]`,
		"scalar yaml":   `just some words`,
		"unclosed yaml": "type: [AFD",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := automaton.Parse([]byte(input), automaton.FormatAuto)
			assert.ErrorIs(t, err, automaton.ErrInvalidAutomaton)
		})
	}
}

const nfaJSON = `{
  "type": "AFN",
  "states": ["q0", "q1"],
  "alphabet": ["a"],
  "start": "q0",
  "accepting": ["q1"],
  "transitions": {"q0": {"a": ["q0", "q1"]}}
}`

const pdaJSON = `{
  "type": "AP",
  "states": ["p", "q"],
  "start": "p",
  "accepting": ["q"],
  "transitions": {
    "p": {"a": {"to": "p", "pop": "Z", "push": "AZ"}, "b": [{"to": "q", "pop": "A"}]}
  }
}`

func TestParseNondeterministicTransitions(t *testing.T) {
	a, err := automaton.Parse([]byte(nfaJSON), automaton.FormatAuto)
	require.NoError(t, err)

	typ, _ := automaton.Classify(a)
	assert.Equal(t, grammar.Type3, typ)
	assert.NoError(t, automaton.Validate(a))
	assert.Equal(t, []automaton.Transition{
		{From: "q0", Symbol: "a", To: "q0"},
		{From: "q0", Symbol: "a", To: "q1"},
	}, a.Edges())
}

func TestParseObjectTransitions(t *testing.T) {
	a, err := automaton.Parse([]byte(pdaJSON), automaton.FormatAuto)
	require.NoError(t, err)

	typ, _ := automaton.Classify(a)
	assert.Equal(t, grammar.Type2, typ)
	assert.NoError(t, automaton.Validate(a))
	assert.Equal(t, []automaton.Transition{
		{From: "p", Symbol: "a", To: "p", Note: "pop=Z push=AZ"},
		{From: "p", Symbol: "b", To: "q", Note: "pop=A"},
	}, a.Edges())
}

func TestParseClassifiesInconsistentAutomata(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected grammar.Type
	}{
		{"undeclared start", `{"type": "AFD", "states": ["q0"], "start": "q9"}`, grammar.Type3},
		{"undeclared accepting", `{"type": "AFD", "states": ["q0"], "accepting": ["q1"]}`, grammar.Type3},
		{"undeclared source", `{"type": "AFD", "states": ["q0"], "transitions": {"x": {"a": "q0"}}}`, grammar.Type3},
		{"undeclared target", `{"type": "AFN", "states": ["q0"], "transitions": {"q0": {"a": ["q0", "q7"]}}}`, grammar.Type3},
		{"empty state name", `{"type": "PDA", "states": ["q0", ""]}`, grammar.Type2},
		{"transitions as a list", `{"type": "PDA", "transitions": [["p", "a", "q"]]}`, grammar.Type2},
		{"states as an object", `{"type": "TM", "states": {"q0": true}}`, grammar.Type0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := automaton.Parse([]byte(tt.input), automaton.FormatJSON)
			require.NoError(t, err)

			typ, _ := automaton.Classify(a)
			assert.Equal(t, tt.expected, typ)
			assert.ErrorIs(t, automaton.Validate(a), automaton.ErrInvalidAutomaton)
		})
	}
}

func TestParseTypeTagIndependently(t *testing.T) {
	a, err := automaton.Parse([]byte(`{"type": "pda", "alphabet": {"not": "a list"}}`), automaton.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "pda", a.Type)
	assert.Equal(t, automaton.KindPushdown, a.Kind())

	empty, err := automaton.Parse([]byte(`{}`), automaton.FormatJSON)
	require.NoError(t, err)
	typ, _ := automaton.Classify(empty)
	assert.Equal(t, grammar.Type0, typ)

	nested, err := automaton.Parse([]byte(`{"type": {"kind": "AFD"}}`), automaton.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, automaton.KindUnknown, nested.Kind())
}

func TestParseWithoutStructure(t *testing.T) {
	a, err := automaton.Parse([]byte(`{"type": "TM"}`), automaton.FormatJSON)
	require.NoError(t, err)
	typ, _ := automaton.Classify(a)
	assert.Equal(t, grammar.Type0, typ)
}

func TestParseFormat(t *testing.T) {
	f, err := automaton.ParseFormat("YML")
	require.NoError(t, err)
	assert.Equal(t, automaton.FormatYAML, f)

	f, err = automaton.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, automaton.FormatAuto, f)

	_, err = automaton.ParseFormat("xml")
	assert.Error(t, err)
}
