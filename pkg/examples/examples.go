/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: examples.go
Description: Fixed bank of example grammars keyed by hierarchy type, with selection driven
by a caller-supplied random source so that results are reproducible under a seed.
*/

package examples

import (
	"math/rand"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
)

// Example is a grammar text together with the type the classifier assigns to it.
type Example struct {
	Label grammar.Type `json:"label"`
	Name  string       `json:"name"`
	Text  string       `json:"text"`
}

// bank labels always agree with grammar.Classify. The "single nonterminal lhs" and
// "doubling" entries were once shipped as Type 1 and Type 0 examples; both have
// single-nonterminal left-hand sides and are context-free.
var bank = []Example{
	{grammar.Type3, "a or b strings", "S -> aS | bS | a | b"},
	{grammar.Type3, "ends in abb", "S -> aS | bS | aA\nA -> bB\nB -> bC\nC -> ε"},
	{grammar.Type2, "balanced a^n b^n", "S -> aSb | ab"},
	{grammar.Type2, "single nonterminal lhs", "S -> aSB\nS -> ab\nB -> b"},
	{grammar.Type2, "doubling", "S -> aSb | SS | ε"},
	{grammar.Type1, "a^n b^n c^n", "S -> aSBC | abC\nCB -> BC\nbB -> bb\nbC -> bc\ncC -> cc"},
	{grammar.Type1, "context swap", "S -> aAb\naA -> aab\nAb -> Abb"},
	{grammar.Type0, "erasing context", "S -> AB\nAB -> a\nA -> a\nB -> b"},
	{grammar.Type0, "context deletion", "S -> aSb | aAb\naA -> b"},
}

// All returns a copy of the whole bank.
func All() []Example {
	return append([]Example(nil), bank...)
}

// ByType returns the examples labelled t, in bank order.
func ByType(t grammar.Type) []Example {
	var out []Example
	for _, e := range bank {
		if e.Label == t {
			out = append(out, e)
		}
	}
	return out
}

// Random picks an example of type t using rng. When no example carries that
// label the whole bank is used instead.
func Random(rng *rand.Rand, t grammar.Type) Example {
	candidates := ByType(t)
	if len(candidates) == 0 {
		candidates = bank
	}
	return candidates[rng.Intn(len(candidates))]
}
