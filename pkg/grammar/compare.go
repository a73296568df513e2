/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: Heuristic grammar comparator. Generates bounded derivation sets for two grammars
and reports the strings unique to each and the strings they share. Language equivalence is
undecidable in general, so an "equivalent" verdict only means no difference was found within
the bounds.
*/

package grammar

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/sirupsen/logrus"
)

// Comparison is the outcome of comparing two grammars within shared bounds.
type Comparison struct {
	// Equivalent is true when neither grammar generated a string the other did not.
	// It is a bounded observation, not a proof of language equivalence.
	Equivalent bool     `json:"equivalent"`
	Only1      []string `json:"only1"`
	Only2      []string `json:"only2"`
	Common     []string `json:"common"`
	MaxLen     int      `json:"max_len"`
	MaxSteps   int      `json:"max_steps"`
	// Truncated is set when either generation hit the expansion cap, in which
	// case the sets may be missing strings that are within the bounds.
	Truncated bool `json:"truncated"`
}

// Comparator compares grammars under fixed bounds.
type Comparator struct {
	bounds Bounds
	logger *logrus.Logger
}

// NewComparator creates a comparator with the given bounds.
func NewComparator(bounds Bounds) *Comparator {
	return &Comparator{
		bounds: bounds,
		logger: logrus.StandardLogger(),
	}
}

// SetLogger sets the logger used to report truncated generations. A nil
// logger restores the logrus standard logger.
func (c *Comparator) SetLogger(logger *logrus.Logger) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	c.logger = logger
}

// Bounds returns the comparator's bounds.
func (c *Comparator) Bounds() Bounds {
	return c.bounds
}

// Compare generates both derivation sets and diffs them.
func (c *Comparator) Compare(g1, g2 *Grammar) *Comparison {
	d1 := Generate(g1, c.bounds)
	d2 := Generate(g2, c.bounds)

	for i, d := range []*Derivations{d1, d2} {
		fields := logrus.Fields{
			"grammar":  i + 1,
			"strings":  len(d.Strings),
			"expanded": d.Expanded,
		}
		if d.Truncated {
			c.logger.WithFields(fields).Warn("Derivation search truncated")
		} else {
			c.logger.WithFields(fields).Debug("Derivation search finished")
		}
	}

	return diff(d1, d2)
}

// Compare is a convenience wrapper around a Comparator with the given bounds.
func Compare(g1, g2 *Grammar, bounds Bounds) *Comparison {
	d1 := Generate(g1, bounds)
	d2 := Generate(g2, bounds)
	return diff(d1, d2)
}

func diff(d1, d2 *Derivations) *Comparison {
	set1 := treeset.NewWithStringComparator()
	for _, s := range d1.Strings {
		set1.Add(s)
	}
	set2 := treeset.NewWithStringComparator()
	for _, s := range d2.Strings {
		set2.Add(s)
	}

	cmp := &Comparison{
		Only1:     []string{},
		Only2:     []string{},
		Common:    []string{},
		MaxLen:    d1.Bounds.MaxLen,
		MaxSteps:  d1.Bounds.MaxSteps,
		Truncated: d1.Truncated || d2.Truncated,
	}

	for _, v := range set1.Values() {
		s := v.(string)
		if set2.Contains(s) {
			cmp.Common = append(cmp.Common, s)
		} else {
			cmp.Only1 = append(cmp.Only1, s)
		}
	}
	for _, v := range set2.Values() {
		if s := v.(string); !set1.Contains(s) {
			cmp.Only2 = append(cmp.Only2, s)
		}
	}

	cmp.Equivalent = len(cmp.Only1) == 0 && len(cmp.Only2) == 0
	return cmp
}
