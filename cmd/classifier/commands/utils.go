/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the classifier commands. Provides configuration loading,
logging setup, grammar input handling and the terminal styles used by every command.
*/

package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kleascm/chomsky-classifier/pkg/config"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/logging"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2CD7C7"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F4D03F"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#E74C3C"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#718096"))
	codeStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2C4A54")).
			Padding(0, 1)
)

var typeColors = map[grammar.Type]lipgloss.Color{
	grammar.Type3: lipgloss.Color("#38A169"),
	grammar.Type2: lipgloss.Color("#3182CE"),
	grammar.Type1: lipgloss.Color("#D69E2E"),
	grammar.Type0: lipgloss.Color("#E53E3E"),
}

// typeBadge renders a classification label in its level's colour
func typeBadge(t grammar.Type, label string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(typeColors[t]).Render(label)
}

// LoadConfig reads the config file (if any), enables CHOMSKY_ environment
// overrides and returns the validated configuration
func LoadConfig() (*config.Config, error) {
	v := viper.GetViper()
	if err := config.ReadFile(v, v.GetString("config")); err != nil {
		return nil, err
	}
	config.BindEnv(v)

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// SetupLogging creates the logger described by cfg
func SetupLogging(cfg *config.Config) (*logging.Logger, error) {
	logger, err := logging.NewLogger(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}

// setup is the common prologue of every command
func setup() (*config.Config, *logging.Logger, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, err := SetupLogging(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}

// grammarInput is a grammar text and where it came from
type grammarInput struct {
	Source string
	Text   string
}

// inlineGrammar turns a --grammar value into grammar text. Semicolons separate lines.
func inlineGrammar(s string) string {
	return strings.ReplaceAll(s, ";", "\n")
}

// readGrammarFile reads a grammar from path, or from stdin when path is "-"
func readGrammarFile(cmd *cobra.Command, path string) (grammarInput, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return grammarInput{}, fmt.Errorf("failed to read stdin: %w", err)
		}
		return grammarInput{Source: "stdin", Text: string(data)}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return grammarInput{}, fmt.Errorf("failed to read grammar: %w", err)
	}
	return grammarInput{Source: path, Text: string(data)}, nil
}

// collectGrammarInputs gathers grammars from file arguments, the --grammar flag or stdin
func collectGrammarInputs(cmd *cobra.Command, args []string) ([]grammarInput, error) {
	var inputs []grammarInput

	if inline, _ := cmd.Flags().GetString("grammar"); inline != "" {
		inputs = append(inputs, grammarInput{Source: "--grammar", Text: inlineGrammar(inline)})
	}

	for _, path := range args {
		in, err := readGrammarFile(cmd, path)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}

	if len(inputs) == 0 {
		in, err := readGrammarFile(cmd, "-")
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, in)
	}
	return inputs, nil
}

// parseInput parses in, logging diagnostics. In strict mode any diagnostic is an error.
func parseInput(in grammarInput, strict bool, logger *logging.Logger) (*grammar.Grammar, []grammar.Diagnostic, error) {
	result := grammar.Parse(in.Text)
	for _, d := range result.Diagnostics {
		logger.LogDiagnostics(in.Source, d.Line, string(d.Kind), d.Message)
	}

	if strict {
		if err := result.Err(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", in.Source, err)
		}
	}
	return result.Grammar, result.Diagnostics, nil
}

// newTable returns a left-aligned table writing to w
func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

// printDiagnostics lists parser diagnostics as warnings
func printDiagnostics(w io.Writer, diags []grammar.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(w, warningStyle.Render("⚠️  "+d.String()))
	}
}
