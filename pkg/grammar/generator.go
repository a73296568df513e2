/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Bounded derivation generator. Explores leftmost derivations from the start
symbol breadth-first under caller-supplied length and step bounds, collecting the terminal
strings it reaches. The result under-approximates the language: a missing string proves
nothing about membership.
*/

package grammar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"
	"github.com/emirpasic/gods/sets/treeset"
)

// lengthSlack lets sentential forms grow a little past MaxLen before being
// pruned, so that epsilon productions can still shrink them back.
const lengthSlack = 2

// Bounds limits a derivation search.
type Bounds struct {
	MaxLen   int `json:"max_len" mapstructure:"max_len" validate:"gte=1,lte=64"`
	MaxSteps int `json:"max_steps" mapstructure:"max_steps" validate:"gte=1,lte=64"`
	// MaxQueue caps the number of sentential forms expanded; reaching it marks
	// the result as truncated.
	MaxQueue int `json:"max_queue" mapstructure:"max_queue" validate:"gte=1"`
}

// DefaultBounds returns the bounds used by the interactive tool.
func DefaultBounds() Bounds {
	return Bounds{MaxLen: 5, MaxSteps: 6, MaxQueue: 100000}
}

func (b Bounds) String() string {
	return fmt.Sprintf("max_len=%d max_steps=%d max_queue=%d", b.MaxLen, b.MaxSteps, b.MaxQueue)
}

// Derivations is the outcome of a bounded generation run.
type Derivations struct {
	Strings   []string `json:"strings"`
	Truncated bool     `json:"truncated"`
	Expanded  int      `json:"expanded"`
	Bounds    Bounds   `json:"bounds"`
}

// Contains reports whether s was generated.
func (d *Derivations) Contains(s string) bool {
	for _, x := range d.Strings {
		if x == s {
			return true
		}
	}
	return false
}

type sententialForm struct {
	form  string
	steps int
}

// Generate returns the distinct terminal strings of length 1..MaxLen derivable
// from the start symbol in at most MaxSteps leftmost rewriting steps. The empty
// string is never reported. A non-positive MaxQueue disables the expansion cap.
func Generate(g *Grammar, bounds Bounds) *Derivations {
	result := treeset.NewWithStringComparator()
	seen := hashset.New()
	queue := linkedlistqueue.New()

	out := &Derivations{Bounds: bounds}
	queue.Enqueue(sententialForm{form: g.start, steps: 0})
	seen.Add(g.start)

	for !queue.Empty() {
		item, _ := queue.Dequeue()
		cur := item.(sententialForm)

		idx, nt := leftmostNonterminal(cur.form)
		if idx < 0 {
			if n := utf8.RuneCountInString(cur.form); n > 0 && n <= bounds.MaxLen {
				result.Add(cur.form)
			}
			continue
		}
		if utf8.RuneCountInString(cur.form) > bounds.MaxLen+lengthSlack {
			continue
		}
		if cur.steps >= bounds.MaxSteps {
			continue
		}
		// Past the cap, forms already queued are still drained so their
		// terminal strings are kept.
		if bounds.MaxQueue > 0 && out.Expanded >= bounds.MaxQueue {
			out.Truncated = true
			continue
		}
		out.Expanded++

		prefix, suffix := cur.form[:idx], cur.form[idx+len(nt):]
		for _, p := range g.ProductionsFor(nt) {
			next := prefix + p.RHS + suffix
			if seen.Contains(next) {
				continue
			}
			seen.Add(next)
			queue.Enqueue(sententialForm{form: next, steps: cur.steps + 1})
		}
	}

	for _, v := range result.Values() {
		out.Strings = append(out.Strings, v.(string))
	}
	return out
}

// leftmostNonterminal returns the byte index and text of the first nonterminal
// in form, or -1 when form is a terminal string.
func leftmostNonterminal(form string) (int, string) {
	i := strings.IndexFunc(form, IsNonterminal)
	if i < 0 {
		return -1, ""
	}
	_, size := utf8.DecodeRuneInString(form[i:])
	return i, form[i : i+size]
}
