/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: grammar.go
Description: Grammar model for the Chomsky classifier. Defines symbols, productions and
the read-only Grammar value shared by the parser, the structural predicates, the
hierarchy classifier and the bounded derivation generator.
*/

package grammar

import (
	"sort"
	"strings"
	"unicode"
)

// Epsilon is the display form of the empty right-hand side.
const Epsilon = "ε"

// DefaultStart is used when a grammar has no productions to take a start symbol from.
const DefaultStart = "S"

// IsNonterminal reports whether r is a nonterminal symbol (an uppercase letter).
func IsNonterminal(r rune) bool {
	return unicode.IsUpper(r)
}

// IsTerminal reports whether r is a terminal symbol (a lowercase letter or a digit).
func IsTerminal(r rune) bool {
	return unicode.IsLower(r) || unicode.IsDigit(r)
}

// Production is a single rewriting rule LHS -> RHS. An empty RHS is epsilon.
type Production struct {
	LHS string `json:"lhs"`
	RHS string `json:"rhs"`
}

// IsEpsilon reports whether the production derives the empty string.
func (p Production) IsEpsilon() bool {
	return p.RHS == ""
}

// String renders the production with the canonical arrow.
func (p Production) String() string {
	rhs := p.RHS
	if rhs == "" {
		rhs = Epsilon
	}
	return p.LHS + " -> " + rhs
}

// Grammar is an immutable formal grammar over single-character symbols.
type Grammar struct {
	start        string
	nonterminals []string
	terminals    []string
	productions  []Production
}

// NewGrammar builds a Grammar and derives its symbol sets from the productions.
// An empty start falls back to the first production's left-hand side.
func NewGrammar(start string, productions []Production) *Grammar {
	prods := make([]Production, len(productions))
	copy(prods, productions)

	if start == "" {
		start = DefaultStart
		if len(prods) > 0 {
			start = prods[0].LHS
		}
	}

	nonterminals := make(map[string]struct{})
	terminals := make(map[string]struct{})
	for _, p := range prods {
		for _, r := range p.LHS {
			if IsNonterminal(r) {
				nonterminals[string(r)] = struct{}{}
			}
		}
		for _, r := range p.RHS {
			switch {
			case IsNonterminal(r):
				nonterminals[string(r)] = struct{}{}
			case IsTerminal(r):
				terminals[string(r)] = struct{}{}
			}
		}
	}

	return &Grammar{
		start:        start,
		nonterminals: sortedKeys(nonterminals),
		terminals:    sortedKeys(terminals),
		productions:  prods,
	}
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// Nonterminals returns the sorted nonterminal symbols.
func (g *Grammar) Nonterminals() []string {
	return append([]string(nil), g.nonterminals...)
}

// Terminals returns the sorted terminal symbols.
func (g *Grammar) Terminals() []string {
	return append([]string(nil), g.terminals...)
}

// Productions returns the productions in source order.
func (g *Grammar) Productions() []Production {
	return append([]Production(nil), g.productions...)
}

// Len returns the number of productions.
func (g *Grammar) Len() int {
	return len(g.productions)
}

// IsEmpty reports whether the grammar has no productions at all.
func (g *Grammar) IsEmpty() bool {
	return len(g.productions) == 0
}

// ProductionsFor returns every production whose left-hand side is exactly lhs,
// in source order.
func (g *Grammar) ProductionsFor(lhs string) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.LHS == lhs {
			out = append(out, p)
		}
	}
	return out
}

// Unreachable returns the nonterminals that never occur in a sentential form
// derived from the start symbol. Productions with multi-symbol left-hand sides
// are treated as reachable once every symbol of their left-hand side is.
func (g *Grammar) Unreachable() []string {
	reached := make(map[rune]bool)
	for _, r := range g.start {
		reached[r] = true
	}

	for changed := true; changed; {
		changed = false
		for _, p := range g.productions {
			if !allReached(p.LHS, reached) {
				continue
			}
			for _, r := range p.RHS {
				if !reached[r] {
					reached[r] = true
					changed = true
				}
			}
		}
	}

	var out []string
	for _, nt := range g.nonterminals {
		if !reached[[]rune(nt)[0]] {
			out = append(out, nt)
		}
	}
	return out
}

// String renders the grammar one production group per line, in first-seen order.
func (g *Grammar) String() string {
	var order []string
	groups := make(map[string][]string)
	for _, p := range g.productions {
		if _, ok := groups[p.LHS]; !ok {
			order = append(order, p.LHS)
		}
		rhs := p.RHS
		if rhs == "" {
			rhs = Epsilon
		}
		groups[p.LHS] = append(groups[p.LHS], rhs)
	}

	var b strings.Builder
	for i, lhs := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(lhs)
		b.WriteString(" -> ")
		b.WriteString(strings.Join(groups[lhs], " | "))
	}
	return b.String()
}

func allReached(s string, reached map[rune]bool) bool {
	for _, r := range s {
		if !reached[r] {
			return false
		}
	}
	return true
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
