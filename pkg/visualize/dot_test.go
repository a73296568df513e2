/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot_test.go
Description: Tests for the Graphviz DOT rendering of grammars and automata.
*/

package visualize_test

import (
	"strings"
	"testing"

	"github.com/kleascm/chomsky-classifier/pkg/automaton"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/visualize"
	"github.com/stretchr/testify/assert"
)

func TestGrammarDOT(t *testing.T) {
	g := grammar.Parse("S -> aA | ε\nA -> bS | b").Grammar
	dot := visualize.GrammarDOT(g)

	assert.True(t, strings.HasPrefix(dot, "digraph grammar {"))
	assert.Contains(t, dot, `"S" [label="S", shape=doublecircle];`)
	assert.Contains(t, dot, `"A" [label="A", shape=circle];`)
	assert.Contains(t, dot, `"S" -> "A" [label="aA"];`)
	assert.Contains(t, dot, `"A" -> "S" [label="bS"];`)
	// Terminal-only right-hand sides produce no edges.
	assert.Equal(t, 2, strings.Count(dot, " -> "))
}

func TestGrammarDOTIsDeterministic(t *testing.T) {
	g := grammar.Parse("S -> AB | BA\nA -> a\nB -> b").Grammar
	assert.Equal(t, visualize.GrammarDOT(g), visualize.GrammarDOT(g))
}

func TestAutomatonDOT(t *testing.T) {
	a := &automaton.Automaton{
		Type:      "AFD",
		States:    []string{"q0", "q1"},
		Start:     "q0",
		Accepting: []string{"q1"},
		Transitions: map[string]map[string]interface{}{
			"q0": {"a": "q1", "b": "q0"},
			"q1": {"a": "q1", "b": "q0"},
		},
	}
	dot := visualize.AutomatonDOT(a)

	assert.Contains(t, dot, `"q1" [label="q1", shape=doublecircle];`)
	assert.Contains(t, dot, `"__start" -> "q0";`)
	assert.Contains(t, dot, `"q0" -> "q1" [label="a"];`)
	assert.Equal(t, dot, visualize.AutomatonDOT(a))

	first := strings.Index(dot, `"q0" -> "q0"`)
	second := strings.Index(dot, `"q1" -> "q0"`)
	assert.Less(t, first, second)
}

func TestAutomatonDOTMultipleTargets(t *testing.T) {
	a, err := automaton.Parse([]byte(`{
	  "type": "AFN",
	  "states": ["q0", "q1"],
	  "accepting": ["q1"],
	  "transitions": {"q0": {"a": ["q0", "q1"]}}
	}`), automaton.FormatJSON)
	assert.NoError(t, err)

	dot := visualize.AutomatonDOT(a)
	assert.Contains(t, dot, `"q0" -> "q0" [label="a"];`)
	assert.Contains(t, dot, `"q0" -> "q1" [label="a"];`)
}

func TestAutomatonDOTObjectTargets(t *testing.T) {
	a, err := automaton.Parse([]byte(`
type: PDA
states: [p, q]
transitions:
  p:
    a: {to: p, pop: Z, push: AZ}
    b: {pop: A}
`), automaton.FormatYAML)
	assert.NoError(t, err)

	dot := visualize.AutomatonDOT(a)
	assert.Contains(t, dot, `"p" -> "p" [label="a / pop=Z push=AZ"];`)
	// A target with no destination state is not drawn.
	assert.Equal(t, 1, strings.Count(dot, `"p" -> `))
}
