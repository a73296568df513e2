/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: parser.go
Description: Lenient text parser for grammars written one production per line. Malformed
lines are skipped and reported as diagnostics so callers can pick lenient or strict
handling without the parser deciding for them.
*/

package grammar

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Arrow is the canonical production arrow every other arrow spelling is normalised to.
const Arrow = "->"

// ErrNoProductions is returned by strict parsing when the text yields no productions.
var ErrNoProductions = errors.New("grammar has no productions")

var arrowReplacer = strings.NewReplacer("→", Arrow, "⇒", Arrow, "⟶", Arrow)

var epsilonTokens = map[string]bool{
	"ε":       true,
	"epsilon": true,
	"EPS":     true,
	"lambda":  true,
	"λ":       true,
}

// DiagnosticKind classifies a problem found on a single input line.
type DiagnosticKind string

const (
	DiagMissingArrow  DiagnosticKind = "missing-arrow"
	DiagEmptyLHS      DiagnosticKind = "empty-lhs"
	DiagUnknownSymbol DiagnosticKind = "unknown-symbol"
)

// Diagnostic describes a line the parser skipped or could only partly understand.
type Diagnostic struct {
	Line    int            `json:"line"`
	Text    string         `json:"text"`
	Kind    DiagnosticKind `json:"kind"`
	Message string         `json:"message"`
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s (%q)", d.Line, d.Message, d.Text)
}

// ParseError aggregates the diagnostics of a strict parse.
type ParseError struct {
	Diagnostics []Diagnostic
}

func (e *ParseError) Error() string {
	parts := make([]string, 0, len(e.Diagnostics))
	for _, d := range e.Diagnostics {
		parts = append(parts, d.String())
	}
	return "malformed grammar: " + strings.Join(parts, "; ")
}

// ParseResult is the outcome of a lenient parse.
type ParseResult struct {
	Grammar     *Grammar     `json:"-"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

// Err returns nil for a clean parse, a *ParseError when any line was skipped
// or flagged, and ErrNoProductions when nothing could be parsed.
func (r *ParseResult) Err() error {
	if len(r.Diagnostics) > 0 {
		return &ParseError{Diagnostics: r.Diagnostics}
	}
	if r.Grammar.IsEmpty() {
		return ErrNoProductions
	}
	return nil
}

// Skipped returns the diagnostics for lines that contributed no productions.
func (r *ParseResult) Skipped() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Kind != DiagUnknownSymbol {
			out = append(out, d)
		}
	}
	return out
}

// Parse reads grammar text such as
//
//	S -> aSb | ab
//	A -> aA | ε
//
// Blank lines and lines starting with '#' are ignored. Lines without an arrow
// or with an empty left-hand side are skipped and recorded as diagnostics.
// Parse never fails; use ParseResult.Err or ParseStrict for strict handling.
func Parse(text string) *ParseResult {
	var (
		productions []Production
		diags       []Diagnostic
	)

	for i, raw := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		line = arrowReplacer.Replace(line)
		left, right, ok := strings.Cut(line, Arrow)
		if !ok {
			diags = append(diags, Diagnostic{Line: lineNo, Text: line, Kind: DiagMissingArrow, Message: "no production arrow"})
			continue
		}

		lhs := stripSpace(left)
		if lhs == "" {
			diags = append(diags, Diagnostic{Line: lineNo, Text: line, Kind: DiagEmptyLHS, Message: "empty left-hand side"})
			continue
		}

		for _, alt := range strings.Split(right, "|") {
			alt = strings.TrimSpace(alt)
			rhs := ""
			if !epsilonTokens[alt] {
				rhs = stripSpace(alt)
			}
			productions = append(productions, Production{LHS: lhs, RHS: rhs})
		}

		if bad := unknownSymbols(lhs, right); bad != "" {
			diags = append(diags, Diagnostic{
				Line:    lineNo,
				Text:    line,
				Kind:    DiagUnknownSymbol,
				Message: fmt.Sprintf("symbols %q are neither terminals nor nonterminals", bad),
			})
		}
	}

	return &ParseResult{
		Grammar:     NewGrammar("", productions),
		Diagnostics: diags,
	}
}

// ParseStrict parses text and fails on any diagnostic or on an empty grammar.
func ParseStrict(text string) (*Grammar, error) {
	res := Parse(text)
	if err := res.Err(); err != nil {
		return nil, err
	}
	return res.Grammar, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// unknownSymbols returns the distinct characters of a production line that are
// neither terminals, nonterminals, separators nor part of an epsilon token.
func unknownSymbols(lhs, rhs string) string {
	var b strings.Builder
	seen := make(map[rune]bool)
	scan := func(s string) {
		for _, r := range s {
			if IsNonterminal(r) || IsTerminal(r) || unicode.IsSpace(r) || seen[r] {
				continue
			}
			seen[r] = true
			b.WriteRune(r)
		}
	}

	scan(lhs)
	for _, alt := range strings.Split(rhs, "|") {
		if !epsilonTokens[strings.TrimSpace(alt)] {
			scan(alt)
		}
	}
	return b.String()
}
