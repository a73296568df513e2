/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automaton.go
Description: CLI command that maps automata (finite, pushdown, Turing) to the language class
they recognise. Accepts a JSON or YAML description, or just a type tag via --kind.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/kleascm/chomsky-classifier/pkg/automaton"
	"github.com/kleascm/chomsky-classifier/pkg/visualize"
	"github.com/spf13/cobra"
)

// RunAutomaton classifies an automaton description file or a bare type tag
func RunAutomaton(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	out := cmd.OutOrStdout()
	kind, _ := cmd.Flags().GetString("kind")

	if len(args) == 0 {
		if kind == "" {
			return fmt.Errorf("an automaton file or --kind is required")
		}
		t, explanation := automaton.ClassifyKind(kind)
		logger.LogAutomaton("--kind", automaton.ParseKind(kind).String(), int(t), nil)
		fmt.Fprintf(out, "🤖 %s\n", titleStyle.Render("Automaton type: "+kind))
		fmt.Fprintf(out, "🎯 %s\n", typeBadge(t, t.String()))
		fmt.Fprintln(out, "  "+explanation)
		return nil
	}

	formatName, _ := cmd.Flags().GetString("format")
	format, err := automaton.ParseFormat(formatName)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read automaton: %w", err)
	}

	a, err := automaton.Parse(data, format)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	t, explanation := automaton.Classify(a)
	logger.LogAutomaton(args[0], a.Kind().String(), int(t), map[string]interface{}{
		"states":   len(a.States),
		"alphabet": a.Alphabet,
	})

	fmt.Fprintf(out, "🤖 %s\n", titleStyle.Render("Automaton: "+args[0]))
	fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("type %s, %d states, start %s", a.Type, len(a.States), a.Start)))
	fmt.Fprintf(out, "🎯 %s\n", typeBadge(t, t.String()))
	fmt.Fprintln(out, "  "+explanation)

	// Structural problems only affect the drawing, never the classification.
	if err := automaton.Validate(a); err != nil {
		logger.Warning("Automaton description is inconsistent", map[string]interface{}{
			"source": args[0],
			"error":  err.Error(),
		})
		fmt.Fprintln(out, warningStyle.Render("⚠️  "+err.Error()))
	}

	if dot, _ := cmd.Flags().GetBool("dot"); dot {
		fmt.Fprintln(out)
		fmt.Fprint(out, visualize.AutomatonDOT(a))
	}
	return nil
}
