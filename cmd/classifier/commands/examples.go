/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: examples.go
Description: CLI commands for the example bank: listing examples, drawing one at random and
the interactive classification quiz.
*/

package commands

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/kleascm/chomsky-classifier/pkg/examples"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/spf13/cobra"
)

// newRand returns a generator seeded with seed, or with the clock when seed is 0
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// RunExamples lists the example bank, or prints one random example with --random
func RunExamples(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	out := cmd.OutOrStdout()
	typeName, _ := cmd.Flags().GetString("type")
	random, _ := cmd.Flags().GetBool("random")
	seed, _ := cmd.Flags().GetInt64("seed")

	list := examples.All()
	var filter grammar.Type
	hasFilter := typeName != ""
	if hasFilter {
		if filter, err = grammar.ParseType(typeName); err != nil {
			return err
		}
		list = examples.ByType(filter)
	}

	if random {
		t := grammar.Type(-1)
		if hasFilter {
			t = filter
		}
		e := examples.Random(newRand(seed), t)
		fmt.Fprintln(out, titleStyle.Render("📚 "+e.Name))
		fmt.Fprintln(out, codeStyle.Render(e.Text))
		fmt.Fprintf(out, "🎯 %s\n", typeBadge(e.Label, e.Label.String()))
		return nil
	}

	table := newTable(out, []string{"Type", "Name", "Grammar"})
	for _, e := range list {
		table.Append([]string{e.Label.String(), e.Name, strings.ReplaceAll(e.Text, "\n", " ; ")})
	}
	table.Render()
	logger.Debug("Listed examples", map[string]interface{}{"count": len(list)})
	return nil
}

// RunQuiz asks the user to classify random grammars from the bank
func RunQuiz(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	rounds, _ := cmd.Flags().GetInt("rounds")
	seed, _ := cmd.Flags().GetInt64("seed")

	session := runQuiz(cmd.InOrStdin(), cmd.OutOrStdout(), newRand(seed), rounds)
	logger.Info("Quiz finished", map[string]interface{}{
		"asked":   session.Asked,
		"correct": session.Correct,
	})
	return nil
}

// runQuiz plays up to rounds questions (0 = until "q" or end of input) and returns the final score
func runQuiz(in io.Reader, out io.Writer, rng *rand.Rand, rounds int) examples.Session {
	reader := bufio.NewReader(in)
	var session examples.Session

	fmt.Fprintln(out, titleStyle.Render("🎓 Chomsky hierarchy quiz"))
	fmt.Fprintln(out, mutedStyle.Render("Answer 0, 1, 2 or 3 (or a name such as \"context-free\"); q quits."))

	for rounds <= 0 || session.Asked < rounds {
		q := examples.NewQuestion(rng)
		fmt.Fprintln(out)
		fmt.Fprintln(out, codeStyle.Render(q.Text))

		answer, ok := askType(reader, out)
		if !ok {
			break
		}

		r := examples.Check(q, answer)
		session = session.Record(r)
		if r.Correct {
			fmt.Fprintln(out, successStyle.Render("✅ "+r.Message))
		} else {
			fmt.Fprintln(out, errorStyle.Render("❌ "+r.Message))
			fmt.Fprintln(out, mutedStyle.Render(r.Hint))
		}
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "📊 Score: %d/%d (%.0f%%)\n", session.Correct, session.Asked, session.Score()*100)
	return session
}

// askType prompts until a valid type is read. It returns false on "q" or end of input.
func askType(reader *bufio.Reader, out io.Writer) (grammar.Type, bool) {
	for {
		fmt.Fprint(out, "Type? ")
		line, err := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" && err != nil {
			return 0, false
		}
		if strings.EqualFold(line, "q") || strings.EqualFold(line, "quit") {
			return 0, false
		}
		t, perr := grammar.ParseType(line)
		if perr == nil {
			return t, true
		}
		fmt.Fprintln(out, warningStyle.Render("⚠️  "+perr.Error()))
		if err != nil {
			return 0, false
		}
	}
}
