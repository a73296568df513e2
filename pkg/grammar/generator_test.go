/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator_test.go
Description: Tests for the bounded derivation generator and the heuristic grammar
comparator: bounds, epsilon exclusion, truncation and comparison symmetry.
*/

package grammar_test

import (
	"bytes"
	"testing"
	"unicode/utf8"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bounds(maxLen, maxSteps int) grammar.Bounds {
	return grammar.Bounds{MaxLen: maxLen, MaxSteps: maxSteps, MaxQueue: 100000}
}

func TestGenerateBalanced(t *testing.T) {
	d := grammar.Generate(parse(t, "S -> aSb | ab"), grammar.DefaultBounds())
	assert.Equal(t, []string{"aabb", "ab"}, d.Strings)
	assert.False(t, d.Truncated)
	assert.True(t, d.Contains("aabb"))
	assert.False(t, d.Contains("aaabbb"))
}

func TestGenerateRespectsMaxLen(t *testing.T) {
	d := grammar.Generate(parse(t, "S -> aS | bS | a | b"), bounds(2, 6))
	assert.Equal(t, []string{"a", "aa", "ab", "b", "ba", "bb"}, d.Strings)

	for _, s := range grammar.Generate(parse(t, "S -> aSb | SS | ε"), bounds(4, 8)).Strings {
		assert.LessOrEqual(t, utf8.RuneCountInString(s), 4, s)
	}
}

func TestGenerateNeverEmitsEmptyString(t *testing.T) {
	d := grammar.Generate(parse(t, "S -> aS | ε"), bounds(3, 6))
	assert.Equal(t, []string{"a", "aa", "aaa"}, d.Strings)
	assert.False(t, d.Contains(""))
}

func TestGenerateRespectsMaxSteps(t *testing.T) {
	d := grammar.Generate(parse(t, "S -> aS | a"), bounds(10, 3))
	assert.Equal(t, []string{"a", "aa", "aaa"}, d.Strings)
}

func TestGenerateUsesLeftmostNonterminal(t *testing.T) {
	// Only A is ever rewritten first, so B must wait for A to disappear.
	d := grammar.Generate(parse(t, "S -> AB\nA -> a\nB -> b"), bounds(5, 3))
	assert.Equal(t, []string{"ab"}, d.Strings)
}

func TestGenerateTruncates(t *testing.T) {
	g := parse(t, "S -> SS | a")
	d := grammar.Generate(g, grammar.Bounds{MaxLen: 5, MaxSteps: 6, MaxQueue: 3})
	assert.True(t, d.Truncated)
	assert.Equal(t, 3, d.Expanded)

	full := grammar.Generate(g, bounds(5, 6))
	assert.False(t, full.Truncated)
	assert.Subset(t, full.Strings, d.Strings)
}

func TestGenerateDoesNotMutateGrammar(t *testing.T) {
	g := parse(t, "S -> aSb | ab")
	before := g.Productions()
	grammar.Generate(g, grammar.DefaultBounds())
	assert.Equal(t, before, g.Productions())
}

func TestCompareEquivalentWithinBounds(t *testing.T) {
	g1 := parse(t, "S -> aSb | ab")
	g2 := parse(t, "S -> aA\nA -> Sb | b")

	cmp := grammar.Compare(g1, g2, grammar.DefaultBounds())
	assert.True(t, cmp.Equivalent)
	assert.Empty(t, cmp.Only1)
	assert.Empty(t, cmp.Only2)
	assert.Equal(t, []string{"aabb", "ab"}, cmp.Common)
	assert.Equal(t, 5, cmp.MaxLen)
}

func TestCompareDifferences(t *testing.T) {
	g1 := parse(t, "S -> aSb | ab")
	g2 := parse(t, "S -> aS | bS | a | b")

	cmp := grammar.Compare(g1, g2, bounds(2, 6))
	assert.False(t, cmp.Equivalent)
	assert.Empty(t, cmp.Only1)
	assert.Equal(t, []string{"a", "aa", "b", "ba", "bb"}, cmp.Only2)
	assert.Equal(t, []string{"ab"}, cmp.Common)
}

func TestCompareIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"S -> aSb | ab", "S -> aS | bS | a | b"},
		{"S -> aSb | SS | ε", "S -> aS | b"},
		{"S -> AB\nAB -> a\nA -> a\nB -> b", "S -> a | b"},
	}
	for _, p := range pairs {
		a, b := parse(t, p[0]), parse(t, p[1])
		ab := grammar.Compare(a, b, grammar.DefaultBounds())
		ba := grammar.Compare(b, a, grammar.DefaultBounds())
		assert.Equal(t, ab.Only1, ba.Only2)
		assert.Equal(t, ab.Only2, ba.Only1)
		assert.Equal(t, ab.Common, ba.Common)
		assert.Equal(t, ab.Equivalent, ba.Equivalent)
	}
}

func TestCompareWithItself(t *testing.T) {
	for _, text := range []string{
		"S -> aSb | ab",
		"S -> aSb | SS | ε",
		"S -> aSBC | abC\nCB -> BC\nbB -> bb\nbC -> bc\ncC -> cc",
	} {
		g := parse(t, text)
		cmp := grammar.Compare(g, g, grammar.DefaultBounds())
		assert.True(t, cmp.Equivalent, text)
		assert.Empty(t, cmp.Only1)
		assert.Empty(t, cmp.Only2)
	}
}

func TestComparatorLogsTruncation(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	c := grammar.NewComparator(grammar.Bounds{MaxLen: 5, MaxSteps: 6, MaxQueue: 2})
	c.SetLogger(logger)

	g := parse(t, "S -> SS | a")
	cmp := c.Compare(g, g)
	require.NotNil(t, cmp)
	assert.True(t, cmp.Truncated)
	assert.Contains(t, buf.String(), "Derivation search truncated")
	assert.Equal(t, 2, c.Bounds().MaxQueue)
}

func TestGenerateKeepsQueuedStringsWhenTruncated(t *testing.T) {
	// After S is expanded the queue holds aS, a and b; the cap stops aS only.
	d := grammar.Generate(parse(t, "S -> aS | a | b"), grammar.Bounds{MaxLen: 5, MaxSteps: 6, MaxQueue: 1})
	assert.True(t, d.Truncated)
	assert.Equal(t, 1, d.Expanded)
	assert.Equal(t, []string{"a", "b"}, d.Strings)
}

func TestComparatorNilLoggerFallsBack(t *testing.T) {
	c := grammar.NewComparator(grammar.Bounds{MaxLen: 5, MaxSteps: 6, MaxQueue: 2})
	c.SetLogger(nil)

	g := parse(t, "S -> SS | a")
	assert.NotPanics(t, func() {
		cmp := c.Compare(g, g)
		assert.True(t, cmp.Truncated)
	})
}
