/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: classify.go
Description: CLI command that places grammars in the Chomsky hierarchy. A single grammar is
printed with the classifier's reasoning; several grammars are summarised in a table.
*/

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/logging"
	"github.com/kleascm/chomsky-classifier/pkg/utils"
	"github.com/kleascm/chomsky-classifier/pkg/visualize"
	"github.com/spf13/cobra"
)

// classificationRecord is what --save-dir stores for each grammar
type classificationRecord struct {
	Source         string                 `json:"source"`
	Grammar        string                 `json:"grammar"`
	Classification grammar.Classification `json:"classification"`
	Diagnostics    []grammar.Diagnostic   `json:"diagnostics,omitempty"`
}

// RunClassify classifies grammars from files, --grammar or stdin
func RunClassify(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	inputs, err := collectGrammarInputs(cmd, args)
	if err != nil {
		return err
	}

	strict := cfg.Strict
	dot, _ := cmd.Flags().GetBool("dot")
	out := cmd.OutOrStdout()

	var records []classificationRecord

	if len(inputs) == 1 {
		g, diags, err := parseInput(inputs[0], strict, logger)
		if err != nil {
			return err
		}
		c := classifyAndLog(logger, inputs[0].Source, g)
		printClassification(out, inputs[0].Source, g, c, diags)
		if dot {
			fmt.Fprintln(out)
			fmt.Fprint(out, visualize.GrammarDOT(g))
		}
		records = append(records, classificationRecord{inputs[0].Source, g.String(), c, diags})
	} else {
		table := newTable(out, []string{"Source", "Type", "Productions", "Notes"})
		for _, in := range inputs {
			g, diags, err := parseInput(in, strict, logger)
			if err != nil {
				return err
			}
			c := classifyAndLog(logger, in.Source, g)
			table.Append([]string{in.Source, c.Label, strconv.Itoa(g.Len()), summaryNotes(g, diags)})
			records = append(records, classificationRecord{in.Source, g.String(), c, diags})
		}
		table.Render()
	}

	return saveResult(cmd, "classify", records)
}

// saveResult writes result under --save-dir when the flag is set
func saveResult(cmd *cobra.Command, kind string, result interface{}) error {
	dir, _ := cmd.Flags().GetString("save-dir")
	if dir == "" {
		return nil
	}
	path, err := utils.WriteResult(dir, kind, result)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render("💾 Saved "+path))
	return nil
}

func classifyAndLog(logger *logging.Logger, source string, g *grammar.Grammar) grammar.Classification {
	c := grammar.Classify(g)
	logger.LogClassification(source, int(c.Type), c.Label, g.Len(), map[string]interface{}{
		"start":        g.Start(),
		"nonterminals": g.Nonterminals(),
		"terminals":    g.Terminals(),
	})
	return c
}

// printClassification prints one grammar with its classification and reasoning
func printClassification(w io.Writer, source string, g *grammar.Grammar, c grammar.Classification, diags []grammar.Diagnostic) {
	fmt.Fprintln(w, titleStyle.Render("🔍 Grammar: "+source))
	if g.IsEmpty() {
		fmt.Fprintln(w, warningStyle.Render("⚠️  No productions were found."))
	} else {
		fmt.Fprintln(w, codeStyle.Render(g.String()))
	}
	printDiagnostics(w, diags)

	fmt.Fprintf(w, "🎯 %s\n", typeBadge(c.Type, c.Label))
	fmt.Fprintln(w, mutedStyle.Render("Reasoning:"))
	for i, e := range c.Explanations {
		fmt.Fprintf(w, "  %d. %s\n", i+1, e)
	}

	if unreachable := g.Unreachable(); len(unreachable) > 0 {
		fmt.Fprintln(w, warningStyle.Render(fmt.Sprintf("⚠️  Unreachable from %s: %s", g.Start(), strings.Join(unreachable, ", "))))
	}
}

func summaryNotes(g *grammar.Grammar, diags []grammar.Diagnostic) string {
	var notes []string
	if g.IsEmpty() {
		notes = append(notes, "empty")
	}
	if len(diags) > 0 {
		notes = append(notes, fmt.Sprintf("%d diagnostic(s)", len(diags)))
	}
	if unreachable := g.Unreachable(); len(unreachable) > 0 {
		notes = append(notes, "unreachable: "+strings.Join(unreachable, ","))
	}
	return strings.Join(notes, "; ")
}
