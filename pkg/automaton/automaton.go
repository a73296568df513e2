/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automaton.go
Description: Automaton descriptions and their place in the Chomsky hierarchy. The declared
kind tag is mapped through a closed enumeration and a static table; states and transitions
are only carried for visualisation.
*/

package automaton

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
)

// Kind is the closed set of automaton families the classifier understands.
type Kind int

const (
	KindUnknown Kind = iota
	KindFinite
	KindPushdown
	KindTuring
)

func (k Kind) String() string {
	switch k {
	case KindFinite:
		return "finite automaton"
	case KindPushdown:
		return "pushdown automaton"
	case KindTuring:
		return "Turing machine"
	default:
		return "unknown"
	}
}

// kindTags maps every accepted spelling (upper case) to its kind.
var kindTags = map[string]Kind{
	"AFD":    KindFinite,
	"AFN":    KindFinite,
	"DFA":    KindFinite,
	"NFA":    KindFinite,
	"AP":     KindPushdown,
	"PDA":    KindPushdown,
	"MT":     KindTuring,
	"TM":     KindTuring,
	"TURING": KindTuring,
}

type mapping struct {
	Type        grammar.Type
	Explanation string
}

var kindTable = map[Kind]mapping{
	KindFinite: {
		Type:        grammar.Type3,
		Explanation: "A finite automaton (DFA/NFA) recognises regular languages, so it is Type 3.",
	},
	KindPushdown: {
		Type:        grammar.Type2,
		Explanation: "A pushdown automaton (PDA) recognises context-free languages, so it is Type 2.",
	},
	KindTuring: {
		Type:        grammar.Type0,
		Explanation: "A Turing machine recognises recursively enumerable languages, so it is Type 0.",
	},
	KindUnknown: {
		Type:        grammar.Type0,
		Explanation: "Unrecognized automaton type, defaulting to type 0 (Turing machine).",
	},
}

// ParseKind maps a declared type tag to a Kind, ignoring case and surrounding space.
// Unrecognised tags map to KindUnknown.
func ParseKind(tag string) Kind {
	return kindTags[strings.ToUpper(strings.TrimSpace(tag))]
}

// Automaton is a declared automaton. Only Type drives classification.
//
// Transition targets are kept as decoded: a state name for deterministic
// machines, a list of states for nondeterministic ones, or an object such as
// {"to": "q1", "pop": "Z", "push": "AZ"} for pushdown and Turing machines.
type Automaton struct {
	Type        string                            `json:"type" yaml:"type" mapstructure:"type"`
	States      []string                          `json:"states,omitempty" yaml:"states" mapstructure:"states" validate:"dive,required"`
	Alphabet    []string                          `json:"alphabet,omitempty" yaml:"alphabet" mapstructure:"alphabet" validate:"dive,required"`
	Start       string                            `json:"start,omitempty" yaml:"start" mapstructure:"start"`
	Accepting   []string                          `json:"accepting,omitempty" yaml:"accepting" mapstructure:"accepting" validate:"dive,required"`
	Transitions map[string]map[string]interface{} `json:"transitions,omitempty" yaml:"transitions" mapstructure:"transitions"`

	// decodeErr holds structure that could not be read; it is reported by Validate.
	decodeErr error
}

// Transition is one drawn edge of an automaton. Note carries the non-state
// parts of an object target, such as stack or tape operations.
type Transition struct {
	From   string
	Symbol string
	To     string
	Note   string
}

// targetKeys are the object fields read as the destination state, in order.
var targetKeys = []string{"to", "target", "next", "state"}

// Edges flattens the transition table into one Transition per destination,
// sorted by source, symbol and destination.
func (a *Automaton) Edges() []Transition {
	var edges []Transition
	for src, trans := range a.Transitions {
		for symbol, dst := range trans {
			for _, t := range targets(dst) {
				t.From, t.Symbol = src, symbol
				edges = append(edges, t)
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].Symbol != edges[j].Symbol {
			return edges[i].Symbol < edges[j].Symbol
		}
		if edges[i].To != edges[j].To {
			return edges[i].To < edges[j].To
		}
		return edges[i].Note < edges[j].Note
	})
	return edges
}

func targets(v interface{}) []Transition {
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		return []Transition{{To: t}}
	case []interface{}:
		var out []Transition
		for _, item := range t {
			out = append(out, targets(item)...)
		}
		return out
	case map[string]interface{}:
		return []Transition{objectTarget(t)}
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = val
		}
		return []Transition{objectTarget(m)}
	default:
		return []Transition{{To: fmt.Sprint(t)}}
	}
}

func objectTarget(m map[string]interface{}) Transition {
	var tr Transition
	used := ""
	for _, k := range targetKeys {
		if v, ok := m[k]; ok && v != nil {
			tr.To = fmt.Sprint(v)
			used = k
			break
		}
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		if k != used {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, m[k]))
	}
	tr.Note = strings.Join(parts, " ")
	return tr
}

// Kind returns the automaton's parsed kind.
func (a *Automaton) Kind() Kind {
	return ParseKind(a.Type)
}

// Classify returns the hierarchy type recognised by the automaton's declared kind
// and a one-line justification. It never fails.
func Classify(a *Automaton) (grammar.Type, string) {
	m := kindTable[a.Kind()]
	return m.Type, m.Explanation
}

// ClassifyKind is Classify for a bare kind tag.
func ClassifyKind(tag string) (grammar.Type, string) {
	m := kindTable[ParseKind(tag)]
	return m.Type, m.Explanation
}
