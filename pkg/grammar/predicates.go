/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: predicates.go
Description: Structural predicates over a Grammar: strict right-linear regularity,
context-freedom and length-non-decreasing context-sensitivity. Each predicate is total
and only inspects the shape of the productions.
*/

package grammar

import (
	"fmt"
	"unicode/utf8"
)

// Violation names the first production that breaks a predicate and why.
type Violation struct {
	Production Production `json:"production"`
	Reason     string     `json:"reason"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Production, v.Reason)
}

// IsRegular reports whether every production is in strict right-linear form:
// A -> ε, A -> w or A -> wB with w a (possibly empty) string of terminals.
func IsRegular(g *Grammar) bool {
	_, ok := regularViolation(g)
	return ok
}

// IsContextFree reports whether every left-hand side is a single nonterminal.
func IsContextFree(g *Grammar) bool {
	_, ok := contextFreeViolation(g)
	return ok
}

// IsContextSensitive reports whether no production shrinks the sentential form,
// allowing S -> ε for the start symbol S.
func IsContextSensitive(g *Grammar) bool {
	_, ok := contextSensitiveViolation(g)
	return ok
}

func isSingleNonterminal(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && IsNonterminal(r)
}

func regularViolation(g *Grammar) (Violation, bool) {
	for _, p := range g.productions {
		if !isSingleNonterminal(p.LHS) {
			return Violation{p, "left-hand side is not a single nonterminal"}, false
		}
		if p.RHS == "" {
			continue
		}

		runes := []rune(p.RHS)
		last := len(runes) - 1
		for i, r := range runes {
			switch {
			case IsTerminal(r):
			case IsNonterminal(r) && i == last:
			case IsNonterminal(r):
				return Violation{p, fmt.Sprintf("nonterminal %c is not the last symbol", r)}, false
			default:
				return Violation{p, fmt.Sprintf("%q is not a terminal symbol", r)}, false
			}
		}
	}
	return Violation{}, true
}

func contextFreeViolation(g *Grammar) (Violation, bool) {
	for _, p := range g.productions {
		if !isSingleNonterminal(p.LHS) {
			return Violation{p, "left-hand side is not a single nonterminal"}, false
		}
	}
	return Violation{}, true
}

func contextSensitiveViolation(g *Grammar) (Violation, bool) {
	for _, p := range g.productions {
		if p.LHS == g.start && p.RHS == "" {
			continue
		}
		lhsLen := utf8.RuneCountInString(p.LHS)
		rhsLen := utf8.RuneCountInString(p.RHS)
		if rhsLen < lhsLen {
			return Violation{p, fmt.Sprintf("|rhs| = %d is shorter than |lhs| = %d", rhsLen, lhsLen)}, false
		}
	}
	return Violation{}, true
}
