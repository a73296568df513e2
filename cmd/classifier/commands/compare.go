/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: compare.go
Description: CLI command that compares the strings two grammars generate within the
configured length and step bounds. The result is a bounded observation, not a proof.
*/

package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/spf13/cobra"
)

// RunCompare compares the bounded languages of two grammar files
func RunCompare(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	var grammars [2]*grammar.Grammar
	for i, path := range args[:2] {
		in, err := readGrammarFile(cmd, path)
		if err != nil {
			return err
		}
		g, _, err := parseInput(in, cfg.Strict, logger)
		if err != nil {
			return err
		}
		grammars[i] = g
	}

	comparator := grammar.NewComparator(cfg.Bounds)
	comparator.SetLogger(logger.GetLogger())
	result := comparator.Compare(grammars[0], grammars[1])

	logger.LogComparison(result.Equivalent, len(result.Only1), len(result.Only2), len(result.Common), result.Truncated, map[string]interface{}{
		"grammar1": args[0],
		"grammar2": args[1],
		"bounds":   cfg.Bounds.String(),
	})

	printComparison(cmd.OutOrStdout(), args[0], args[1], result)
	return saveResult(cmd, "compare", result)
}

func printComparison(w io.Writer, name1, name2 string, c *grammar.Comparison) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("⚖️  Comparing %s and %s", name1, name2)))
	fmt.Fprintln(w, mutedStyle.Render(fmt.Sprintf("strings of length ≤ %d, at most %d derivation steps", c.MaxLen, c.MaxSteps)))

	table := newTable(w, []string{"Set", "Count", "Strings"})
	table.Append([]string{"Only in " + name1, fmt.Sprint(len(c.Only1)), strings.Join(c.Only1, " ")})
	table.Append([]string{"Only in " + name2, fmt.Sprint(len(c.Only2)), strings.Join(c.Only2, " ")})
	table.Append([]string{"Common", fmt.Sprint(len(c.Common)), strings.Join(c.Common, " ")})
	table.Render()

	if c.Equivalent {
		fmt.Fprintln(w, successStyle.Render("✅ The grammars appear equivalent within the bounds."))
	} else {
		fmt.Fprintln(w, errorStyle.Render("❌ The grammars generate different strings within the bounds."))
	}
	if c.Truncated {
		fmt.Fprintln(w, warningStyle.Render("⚠️  The search was truncated; raise --max-queue for a complete check."))
	}
	fmt.Fprintln(w, mutedStyle.Render("This is a heuristic check, not a proof of language equivalence."))
}
