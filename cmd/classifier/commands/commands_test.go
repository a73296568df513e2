/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: commands_test.go
Description: Tests for command helpers and commands: grammar input collection, the quiz
loop, comparison output, automaton classification and report generation.
*/

package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kleascm/chomsky-classifier/pkg/examples"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/logging"
	"github.com/kleascm/chomsky-classifier/pkg/reporting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCommand(stdin string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("grammar", "", "")
	cmd.SetIn(strings.NewReader(stdin))
	return cmd
}

func TestCollectGrammarInputs(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "g.txt")
	require.NoError(t, os.WriteFile(path, []byte("S -> aS | a"), 0644))

	t.Run("stdin when nothing is given", func(t *testing.T) {
		inputs, err := collectGrammarInputs(newTestCommand("S -> ab"), nil)
		require.NoError(t, err)
		require.Len(t, inputs, 1)
		assert.Equal(t, grammarInput{Source: "stdin", Text: "S -> ab"}, inputs[0])
	})

	t.Run("inline and files", func(t *testing.T) {
		cmd := newTestCommand("")
		require.NoError(t, cmd.Flags().Set("grammar", "S -> aA; A -> b"))
		inputs, err := collectGrammarInputs(cmd, []string{path})
		require.NoError(t, err)
		require.Len(t, inputs, 2)
		assert.Equal(t, "S -> aA\n A -> b", inputs[0].Text)
		assert.Equal(t, path, inputs[1].Source)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := collectGrammarInputs(newTestCommand(""), []string{filepath.Join(dir, "nope")})
		assert.Error(t, err)
	})
}

func TestParseInputStrict(t *testing.T) {
	logger, err := logging.NewLogger(&logging.LoggerConfig{Level: logging.LogLevelError, Format: logging.LogFormatText})
	require.NoError(t, err)

	in := grammarInput{Source: "g", Text: "S -> aS | a\nbroken"}
	g, diags, err := parseInput(in, false, logger)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Len())
	assert.Len(t, diags, 1)

	_, _, err = parseInput(in, true, logger)
	var perr *grammar.ParseError
	assert.ErrorAs(t, err, &perr)

	_, _, err = parseInput(grammarInput{Source: "empty", Text: ""}, true, logger)
	assert.ErrorIs(t, err, grammar.ErrNoProductions)
}

func TestRunQuiz(t *testing.T) {
	const seed = 11
	preview := rand.New(rand.NewSource(seed))
	first := examples.NewQuestion(preview)
	second := examples.NewQuestion(preview)

	wrong := grammar.Type0
	if second.Answer == grammar.Type0 {
		wrong = grammar.Type3
	}
	input := fmt.Sprintf("%d\nnot-a-type\n%d\n", int(first.Answer), int(wrong))

	var out bytes.Buffer
	session := runQuiz(strings.NewReader(input), &out, rand.New(rand.NewSource(seed)), 0)

	assert.Equal(t, examples.Session{Asked: 2, Correct: 1}, session)
	assert.Contains(t, out.String(), "Correct!")
	assert.Contains(t, out.String(), "Your answer:")
	assert.Contains(t, out.String(), "Score: 1/2")
}

func TestRunQuizStopsAfterRounds(t *testing.T) {
	var out bytes.Buffer
	session := runQuiz(strings.NewReader("3\n3\n3\n3\n"), &out, rand.New(rand.NewSource(1)), 2)
	assert.Equal(t, 2, session.Asked)
}

func TestRunQuizQuit(t *testing.T) {
	var out bytes.Buffer
	session := runQuiz(strings.NewReader("q\n"), &out, rand.New(rand.NewSource(1)), 0)
	assert.Zero(t, session.Asked)
	assert.Contains(t, out.String(), "Score: 0/0")
}

func TestPrintComparison(t *testing.T) {
	g1 := grammar.Parse("S -> aSb | ab").Grammar
	g2 := grammar.Parse("S -> ab").Grammar
	c := grammar.Compare(g1, g2, grammar.DefaultBounds())

	var out bytes.Buffer
	printComparison(&out, "one", "two", c)
	text := out.String()
	assert.Contains(t, text, "aabb")
	assert.Contains(t, text, "different strings")
	assert.NotContains(t, text, "truncated")

	out.Reset()
	printComparison(&out, "one", "one", grammar.Compare(g1, g1, grammar.DefaultBounds()))
	assert.Contains(t, out.String(), "appear equivalent")
}

func TestSummaryNotes(t *testing.T) {
	res := grammar.Parse("S -> a\nA -> b\noops")
	notes := summaryNotes(res.Grammar, res.Diagnostics)
	assert.Contains(t, notes, "1 diagnostic(s)")
	assert.Contains(t, notes, "unreachable: A")
	assert.Equal(t, "empty", summaryNotes(grammar.Parse("").Grammar, nil))
}

// useConfig sets keys on the global configuration for the length of a test
func useConfig(t *testing.T, values map[string]interface{}) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("log.level", "error")
	for k, v := range values {
		viper.Set(k, v)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func newAutomatonCommand() (*cobra.Command, *bytes.Buffer) {
	cmd := &cobra.Command{Use: "automaton"}
	cmd.Flags().String("format", "auto", "")
	cmd.Flags().String("kind", "", "")
	cmd.Flags().Bool("dot", false, "")
	var out bytes.Buffer
	cmd.SetOut(&out)
	return cmd, &out
}

func TestRunAutomatonNondeterministic(t *testing.T) {
	useConfig(t, nil)
	path := writeFile(t, t.TempDir(), "nfa.json", `{
	  "type": "AFN",
	  "states": ["q0", "q1"],
	  "start": "q0",
	  "accepting": ["q1"],
	  "transitions": {"q0": {"a": ["q0", "q1"]}}
	}`)

	cmd, out := newAutomatonCommand()
	require.NoError(t, cmd.Flags().Set("dot", "true"))
	require.NoError(t, RunAutomaton(cmd, []string{path}))

	text := out.String()
	assert.Contains(t, text, grammar.Type3.String())
	assert.Contains(t, text, `"q0" -> "q0" [label="a"];`)
	assert.Contains(t, text, `"q0" -> "q1" [label="a"];`)
	assert.NotContains(t, text, "not declared")
}

func TestRunAutomatonInconsistentStillClassifies(t *testing.T) {
	useConfig(t, nil)
	path := writeFile(t, t.TempDir(), "pda.yaml", `
type: PDA
states: [p]
accepting: [q]
transitions:
  p:
    a: {to: p, push: A}
`)

	cmd, out := newAutomatonCommand()
	require.NoError(t, RunAutomaton(cmd, []string{path}))

	text := out.String()
	assert.Contains(t, text, grammar.Type2.String())
	assert.Contains(t, text, `accepting state "q" is not declared`)
}

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "report"}
	cmd.Flags().String("grammar-file", "", "")
	cmd.Flags().String("compare-with", "", "")
	cmd.Flags().Bool("pdf", false, "")
	cmd.SetOut(&bytes.Buffer{})
	return cmd
}

func TestRunReportParsesComparisonGrammar(t *testing.T) {
	dir := t.TempDir()
	primary := writeFile(t, dir, "main.txt", "S -> aSb | ab")
	other := writeFile(t, dir, "other.txt", "S -> ab\nbroken line")
	outputDir := filepath.Join(dir, "reports")

	t.Run("strict rejects a malformed comparison grammar", func(t *testing.T) {
		useConfig(t, map[string]interface{}{"report.output_dir": outputDir, "strict": true})
		cmd := newReportCommand()
		require.NoError(t, cmd.Flags().Set("compare-with", other))

		err := RunReport(cmd, []string{primary})
		var perr *grammar.ParseError
		assert.ErrorAs(t, err, &perr)
		assert.Contains(t, err.Error(), other)
		assert.NoFileExists(t, filepath.Join(outputDir, reporting.JSONFile))
	})

	t.Run("lenient mode compares the parsed grammars", func(t *testing.T) {
		useConfig(t, map[string]interface{}{"report.output_dir": outputDir})
		cmd := newReportCommand()
		require.NoError(t, cmd.Flags().Set("compare-with", other))
		require.NoError(t, RunReport(cmd, []string{primary}))

		raw, err := os.ReadFile(filepath.Join(outputDir, reporting.JSONFile))
		require.NoError(t, err)
		var data reporting.ReportData
		require.NoError(t, json.Unmarshal(raw, &data))
		require.NotNil(t, data.Comparison)
		assert.Equal(t, []string{"aabb"}, data.Comparison.Result.Only1)
		assert.Equal(t, []string{"ab"}, data.Comparison.Result.Common)
	})
}
