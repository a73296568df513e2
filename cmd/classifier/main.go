/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Command-line interface for the Chomsky classifier. Classifies grammars and
automata in the Chomsky hierarchy, compares grammars by bounded derivation, and provides
an example bank, a quiz, Graphviz output and HTML/PDF reports.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kleascm/chomsky-classifier/cmd/classifier/commands"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string
	logMaxFile int

	// Derivation bounds
	maxLen   int
	maxSteps int
	maxQueue int
)

func main() {
	defaults := grammar.DefaultBounds()

	rootCmd := &cobra.Command{
		Use:   "chomsky-classifier",
		Short: "Classify grammars and automata in the Chomsky hierarchy",
		Long: `Chomsky Classifier reads formal grammars written as productions such as
"S -> aSb | ab" and reports the most restrictive Chomsky type they satisfy, with
the reasoning behind the verdict. It can also map automata to language classes
and compare the strings two grammars generate within configurable bounds.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add persistent flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "custom", "Log format (text, json, custom)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log output directory (empty logs to stderr only)")
	rootCmd.PersistentFlags().IntVar(&logMaxFile, "log-max-files", 10, "Maximum number of log files to keep")

	rootCmd.PersistentFlags().IntVar(&maxLen, "max-len", defaults.MaxLen, "Maximum length of generated strings")
	rootCmd.PersistentFlags().IntVar(&maxSteps, "max-steps", defaults.MaxSteps, "Maximum derivation steps")
	rootCmd.PersistentFlags().IntVar(&maxQueue, "max-queue", defaults.MaxQueue, "Maximum sentential forms to expand before truncating")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail on malformed grammar lines instead of skipping them")

	// Bind flags to viper
	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log.output_dir", rootCmd.PersistentFlags().Lookup("log-dir"))
	viper.BindPFlag("log.max_files", rootCmd.PersistentFlags().Lookup("log-max-files"))
	viper.BindPFlag("bounds.max_len", rootCmd.PersistentFlags().Lookup("max-len"))
	viper.BindPFlag("bounds.max_steps", rootCmd.PersistentFlags().Lookup("max-steps"))
	viper.BindPFlag("bounds.max_queue", rootCmd.PersistentFlags().Lookup("max-queue"))
	viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))

	// Add classify command
	classifyCmd := &cobra.Command{
		Use:   "classify [files...]",
		Short: "Classify one or more grammars",
		Long: `Classify grammars read from files, from --grammar or from stdin. A single grammar
is printed with the classifier's step-by-step reasoning; several are summarised in a table.`,
		RunE: commands.RunClassify,
	}
	classifyCmd.Flags().StringP("grammar", "g", "", "Inline grammar; separate productions with ';'")
	classifyCmd.Flags().Bool("dot", false, "Also print the grammar as a Graphviz digraph")
	classifyCmd.Flags().String("save-dir", "", "Save the classifications as JSON under this directory")
	rootCmd.AddCommand(classifyCmd)

	// Add automaton command
	automatonCmd := &cobra.Command{
		Use:   "automaton [file]",
		Short: "Map an automaton to the language class it recognises",
		Long: `Read a JSON or YAML automaton description (type, states, alphabet, start,
accepting, transitions) and report the Chomsky type of the languages it recognises.
Use --kind to classify a type tag such as AFD, PDA or TM without a file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunAutomaton,
	}
	automatonCmd.Flags().String("format", "auto", "Description format (auto, json, yaml)")
	automatonCmd.Flags().String("kind", "", "Classify a bare automaton type tag")
	automatonCmd.Flags().Bool("dot", false, "Also print the transition graph as a Graphviz digraph")
	rootCmd.AddCommand(automatonCmd)

	// Add compare command
	compareCmd := &cobra.Command{
		Use:   "compare <grammar1> <grammar2>",
		Short: "Compare the strings two grammars generate",
		Long: `Generate every string of length up to --max-len that each grammar derives within
--max-steps steps and compare the two sets. This is a bounded heuristic, not a proof
of language equivalence.`,
		Args: cobra.ExactArgs(2),
		RunE: commands.RunCompare,
	}
	compareCmd.Flags().String("save-dir", "", "Save the comparison as JSON under this directory")
	rootCmd.AddCommand(compareCmd)

	// Add examples command
	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "List the example grammars",
		RunE:  commands.RunExamples,
	}
	examplesCmd.Flags().String("type", "", "Only show examples of this type (0-3 or a name)")
	examplesCmd.Flags().Bool("random", false, "Print one random example")
	examplesCmd.Flags().Int64("seed", 0, "Random seed (0 uses the clock)")
	rootCmd.AddCommand(examplesCmd)

	// Add quiz command
	quizCmd := &cobra.Command{
		Use:   "quiz",
		Short: "Practise classifying grammars",
		RunE:  commands.RunQuiz,
	}
	quizCmd.Flags().Int("rounds", 5, "Number of questions (0 asks until you quit)")
	quizCmd.Flags().Int64("seed", 0, "Random seed (0 uses the clock)")
	rootCmd.AddCommand(quizCmd)

	// Add report command
	reportCmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Write an HTML and JSON classification report",
		Long: `Classify a grammar and write report.html and report.json to the output directory.
With --compare-with the report includes a bounded comparison; with --pdf the HTML
report is also printed to PDF using headless Chrome.`,
		Args: cobra.MaximumNArgs(1),
		RunE: commands.RunReport,
	}
	reportCmd.Flags().String("grammar-file", "", "Grammar file (defaults to the argument, then stdin)")
	reportCmd.Flags().String("output-dir", "./reports", "Output directory for report files")
	reportCmd.Flags().String("title", "Chomsky Classification Report", "Report title")
	reportCmd.Flags().String("compare-with", "", "Second grammar file to compare against")
	reportCmd.Flags().Bool("pdf", false, "Also render report.pdf (requires Chrome)")
	viper.BindPFlag("report.output_dir", reportCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("report.title", reportCmd.Flags().Lookup("title"))
	rootCmd.AddCommand(reportCmd)

	// Add graph command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "graph [file]",
		Short: "Print a grammar as a Graphviz digraph",
		Args:  cobra.MaximumNArgs(1),
		RunE:  commands.RunGraph,
	})

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
