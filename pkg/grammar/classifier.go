/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classifier.go
Description: Chomsky hierarchy classifier. Runs the structural predicates from the most
restrictive type to the least restrictive one and returns the first type that matches,
together with the step-by-step explanation trace that led to it.
*/

package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is a level of the Chomsky hierarchy. Higher values are more restrictive.
type Type int

const (
	Type0 Type = iota // unrestricted / recursively enumerable
	Type1             // context-sensitive
	Type2             // context-free
	Type3             // regular
)

// AllTypes lists the hierarchy from the most to the least restrictive level.
var AllTypes = []Type{Type3, Type2, Type1, Type0}

var typeNames = map[Type]string{
	Type0: "Recursively Enumerable",
	Type1: "Context-Sensitive",
	Type2: "Context-Free",
	Type3: "Regular",
}

// Name returns the language class name, e.g. "Context-Free".
func (t Type) Name() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// String returns the full label, e.g. "Type 2 - Context-Free".
func (t Type) String() string {
	return fmt.Sprintf("Type %d - %s", int(t), t.Name())
}

// Valid reports whether t is one of Type0..Type3.
func (t Type) Valid() bool {
	return t >= Type0 && t <= Type3
}

// ParseType accepts "2", "type 2", "type2" or a class name such as "context-free",
// "cfg" or "regular".
func ParseType(s string) (Type, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.TrimSpace(strings.TrimPrefix(norm, "type"))

	if n, err := strconv.Atoi(norm); err == nil {
		if t := Type(n); t.Valid() {
			return t, nil
		}
		return 0, fmt.Errorf("type %d is outside the Chomsky hierarchy (0-3)", n)
	}

	switch norm {
	case "regular", "reg":
		return Type3, nil
	case "context-free", "contextfree", "cf", "cfg":
		return Type2, nil
	case "context-sensitive", "contextsensitive", "cs", "csg":
		return Type1, nil
	case "unrestricted", "recursively enumerable", "re":
		return Type0, nil
	}
	return 0, fmt.Errorf("unknown grammar type %q", s)
}

// Classification is the classifier's verdict and the reasoning behind it.
type Classification struct {
	Type         Type     `json:"type"`
	Label        string   `json:"label"`
	Explanations []string `json:"explanations"`
}

// Classify places g in the Chomsky hierarchy. It always reports the most
// restrictive type whose predicate holds and never fails: Type 0 is the fallback.
func Classify(g *Grammar) Classification {
	var trace []string
	done := func(t Type) Classification {
		return Classification{Type: t, Label: t.String(), Explanations: trace}
	}

	v, ok := regularViolation(g)
	if ok {
		trace = append(trace,
			"Every production has a single nonterminal on the left and, on the right, "+
				"either ε, only terminals, or terminals followed by one nonterminal in the last position "+
				"(right-linear form A → aB, A → a, A → ε). The grammar is Regular (Type 3).")
		return done(Type3)
	}
	trace = append(trace, fmt.Sprintf(
		"Not every production is right-linear (A → aB, A → a or A → ε); %s. It cannot be Type 3.", v))

	v, ok = contextFreeViolation(g)
	if ok {
		trace = append(trace,
			"Every production has exactly one nonterminal on the left-hand side (A → β). "+
				"The grammar is at least Context-Free (Type 2).")
		if IsContextSensitive(g) {
			trace = append(trace,
				"Every production also satisfies |α| ≤ |β|, so it is context-sensitive (Type 1) as well, "+
					"but the hierarchy reports the most restrictive level that holds: Type 2.")
		}
		return done(Type2)
	}
	trace = append(trace, fmt.Sprintf(
		"At least one left-hand side is not a single nonterminal; %s. It is not Type 2.", v))

	v, ok = contextSensitiveViolation(g)
	if ok {
		trace = append(trace,
			"Every production satisfies |α| ≤ |β| (the right-hand side is never shorter than the left-hand side). "+
				"The grammar is Context-Sensitive (Type 1).")
		return done(Type1)
	}

	trace = append(trace, fmt.Sprintf(
		"Some production is length-decreasing, violating |α| ≤ |β|; %s. "+
			"The grammar is Recursively Enumerable (Type 0).", v))
	return done(Type0)
}
