/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: dot.go
Description: Graphviz DOT rendering for grammars and automata. Grammars are drawn as the
graph of nonterminals that can produce one another; automata as their transition graphs.
Output is sorted so the same input always yields the same text.
*/

package visualize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/chomsky-classifier/pkg/automaton"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
)

type edge struct {
	from, to, label string
}

// GrammarDOT draws one node per nonterminal, with the start symbol as a double
// circle, and an edge A -> B labelled with the right-hand side for every
// nonterminal B occurring in a right-hand side of A.
func GrammarDOT(g *grammar.Grammar) string {
	var b strings.Builder
	b.WriteString("digraph grammar {\n")
	b.WriteString("  rankdir=LR;\n")

	for _, nt := range g.Nonterminals() {
		shape := "circle"
		if nt == g.Start() {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  %s [label=%s, shape=%s];\n", quote(nt), quote(nt), shape)
	}

	var edges []edge
	seen := make(map[edge]bool)
	for _, p := range g.Productions() {
		label := p.RHS
		if label == "" {
			label = grammar.Epsilon
		}
		for _, r := range p.RHS {
			if !grammar.IsNonterminal(r) {
				continue
			}
			e := edge{from: p.LHS, to: string(r), label: label}
			if !seen[e] {
				seen[e] = true
				edges = append(edges, e)
			}
		}
	}
	writeEdges(&b, edges)

	b.WriteString("}\n")
	return b.String()
}

// AutomatonDOT draws the states (accepting ones as double circles), an
// invisible start point and every labelled transition. A nondeterministic
// transition gets one edge per target; object targets carry their stack or
// tape operations in the label. Targets without a state are not drawn.
func AutomatonDOT(a *automaton.Automaton) string {
	var b strings.Builder
	b.WriteString("digraph automaton {\n")
	b.WriteString("  rankdir=LR;\n")

	accepting := make(map[string]bool, len(a.Accepting))
	for _, s := range a.Accepting {
		accepting[s] = true
	}
	for _, s := range a.States {
		shape := "circle"
		if accepting[s] {
			shape = "doublecircle"
		}
		fmt.Fprintf(&b, "  %s [label=%s, shape=%s];\n", quote(s), quote(s), shape)
	}

	if a.Start != "" {
		b.WriteString("  \"__start\" [label=\"\", shape=point];\n")
		fmt.Fprintf(&b, "  \"__start\" -> %s;\n", quote(a.Start))
	}

	var edges []edge
	for _, t := range a.Edges() {
		if t.To == "" {
			continue
		}
		label := t.Symbol
		if t.Note != "" {
			label += " / " + t.Note
		}
		edges = append(edges, edge{from: t.From, to: t.To, label: label})
	}
	writeEdges(&b, edges)

	b.WriteString("}\n")
	return b.String()
}

func writeEdges(b *strings.Builder, edges []edge) {
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		if edges[i].to != edges[j].to {
			return edges[i].to < edges[j].to
		}
		return edges[i].label < edges[j].label
	})
	for _, e := range edges {
		fmt.Fprintf(b, "  %s -> %s [label=%s];\n", quote(e.from), quote(e.to), quote(e.label))
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
