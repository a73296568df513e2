/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: HTML and JSON classification reports. A report captures a grammar, its place in
the Chomsky hierarchy with the classifier's reasoning, its productions, a DOT rendering and an
optional bounded comparison against a second grammar.
*/

package reporting

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/visualize"
	"github.com/sirupsen/logrus"
)

const (
	HTMLFile = "report.html"
	JSONFile = "report.json"
)

// Generator writes classification reports into an output directory
type Generator struct {
	outputDir string
	logger    *logrus.Logger
	templates *template.Template
}

// ReportData contains everything rendered into a report
type ReportData struct {
	ID             string                 `json:"id"`
	Title          string                 `json:"title"`
	GeneratedAt    time.Time              `json:"generated_at"`
	GrammarText    string                 `json:"grammar_text"`
	Start          string                 `json:"start"`
	Nonterminals   []string               `json:"nonterminals"`
	Terminals      []string               `json:"terminals"`
	Classification grammar.Classification `json:"classification"`
	Productions    []string               `json:"productions"`
	Diagnostics    []grammar.Diagnostic   `json:"diagnostics,omitempty"`
	DOT            string                 `json:"dot"`
	Notes          []string               `json:"notes,omitempty"`
	Comparison     *ComparisonData        `json:"comparison,omitempty"`

	grammar *grammar.Grammar
}

// ComparisonData is the bounded comparison section of a report
type ComparisonData struct {
	OtherText string              `json:"other_text"`
	Result    *grammar.Comparison `json:"result"`
}

// NewGenerator creates a report generator. A nil logger uses the logrus standard logger.
func NewGenerator(outputDir string, logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Generator{
		outputDir: outputDir,
		logger:    logger,
		templates: template.Must(template.New("report").Funcs(templateFuncs).Parse(reportTemplate)),
	}
}

// OutputDir returns the directory reports are written to
func (g *Generator) OutputDir() string {
	return g.outputDir
}

// NewReportData builds the report for the grammar parsed from text. Lines the parser
// skipped are carried over as diagnostics.
func NewReportData(title, text string) *ReportData {
	return FromParse(title, text, grammar.Parse(text))
}

// FromParse builds the report for an already parsed grammar. text is kept as
// the grammar's source.
func FromParse(title, text string, result *grammar.ParseResult) *ReportData {
	g := result.Grammar

	data := &ReportData{
		ID:             uuid.New().String(),
		Title:          title,
		GeneratedAt:    time.Now(),
		GrammarText:    strings.TrimSpace(text),
		Start:          g.Start(),
		Nonterminals:   g.Nonterminals(),
		Terminals:      g.Terminals(),
		Classification: grammar.Classify(g),
		Diagnostics:    result.Diagnostics,
		DOT:            visualize.GrammarDOT(g),
		grammar:        g,
	}
	for _, p := range g.Productions() {
		data.Productions = append(data.Productions, p.String())
	}

	if g.IsEmpty() {
		data.Notes = append(data.Notes, "The grammar has no productions.")
	}
	if unreachable := g.Unreachable(); len(unreachable) > 0 {
		data.Notes = append(data.Notes, fmt.Sprintf("Unreachable from %s: %s", g.Start(), strings.Join(unreachable, ", ")))
	}
	if len(result.Diagnostics) > 0 {
		data.Notes = append(data.Notes, fmt.Sprintf("%d line(s) were skipped or flagged while parsing.", len(result.Diagnostics)))
	}
	return data
}

// WithComparison attaches a bounded comparison against other, whose source is otherText.
func (d *ReportData) WithComparison(otherText string, other *grammar.Grammar, c *grammar.Comparator) *ReportData {
	self := d.grammar
	if self == nil {
		self = grammar.Parse(d.GrammarText).Grammar
	}
	d.Comparison = &ComparisonData{
		OtherText: strings.TrimSpace(otherText),
		Result:    c.Compare(self, other),
	}
	return d
}

// Generate writes report.html and report.json and returns the HTML path
func (g *Generator) Generate(data *ReportData) (string, error) {
	if data == nil {
		return "", fmt.Errorf("no report data")
	}

	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	htmlPath := filepath.Join(g.outputDir, HTMLFile)
	if err := g.writeHTML(htmlPath, data); err != nil {
		return "", fmt.Errorf("failed to generate html report: %w", err)
	}

	if err := g.writeJSON(filepath.Join(g.outputDir, JSONFile), data); err != nil {
		return "", fmt.Errorf("failed to generate json report: %w", err)
	}

	g.logger.WithFields(logrus.Fields{
		"id":     data.ID,
		"type":   int(data.Classification.Type),
		"output": g.outputDir,
	}).Info("Report generated")
	return htmlPath, nil
}

func (g *Generator) writeHTML(path string, data *ReportData) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := g.templates.Execute(file, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

func (g *Generator) writeJSON(path string, data *ReportData) error {
	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(path, encoded, 0644)
}

var templateFuncs = template.FuncMap{
	"join": strings.Join,
	"formatTime": func(t time.Time) string {
		return t.Format("2006-01-02 15:04:05")
	},
	"typeName": func(t grammar.Type) string {
		return t.Name()
	},
}
