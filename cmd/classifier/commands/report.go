/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: report.go
Description: CLI command that writes an HTML and JSON classification report for a grammar,
optionally with a bounded comparison and a PDF rendering.
*/

package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/kleascm/chomsky-classifier/pkg/grammar"
	"github.com/kleascm/chomsky-classifier/pkg/reporting"
	"github.com/spf13/cobra"
)

const pdfTimeout = time.Minute

// RunReport generates a classification report
func RunReport(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	path, _ := cmd.Flags().GetString("grammar-file")
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		path = "-"
	}

	in, err := readGrammarFile(cmd, path)
	if err != nil {
		return err
	}
	g, diags, err := parseInput(in, cfg.Strict, logger)
	if err != nil {
		return err
	}

	data := reporting.FromParse(cfg.Report.Title, in.Text, &grammar.ParseResult{Grammar: g, Diagnostics: diags})
	logger.LogClassification(in.Source, int(data.Classification.Type), data.Classification.Label, len(data.Productions), map[string]interface{}{
		"report_id": data.ID,
	})

	if other, _ := cmd.Flags().GetString("compare-with"); other != "" {
		otherIn, err := readGrammarFile(cmd, other)
		if err != nil {
			return err
		}
		otherGrammar, _, err := parseInput(otherIn, cfg.Strict, logger)
		if err != nil {
			return err
		}
		comparator := grammar.NewComparator(cfg.Bounds)
		comparator.SetLogger(logger.GetLogger())
		data.WithComparison(otherIn.Text, otherGrammar, comparator)
	}

	generator := reporting.NewGenerator(cfg.Report.OutputDir, logger.GetLogger())
	htmlPath, err := generator.Generate(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, successStyle.Render("📄 Report written to "+htmlPath))
	fmt.Fprintln(out, mutedStyle.Render("   "+filepath.Join(cfg.Report.OutputDir, reporting.JSONFile)))
	fmt.Fprintf(out, "🎯 %s\n", typeBadge(data.Classification.Type, data.Classification.Label))

	if pdf, _ := cmd.Flags().GetBool("pdf"); pdf {
		ctx, cancel := context.WithTimeout(cmd.Context(), pdfTimeout)
		defer cancel()

		pdfPath := filepath.Join(cfg.Report.OutputDir, "report.pdf")
		if err := reporting.RenderPDF(ctx, htmlPath, pdfPath); err != nil {
			logger.Error("Report PDF failed", map[string]interface{}{"path": pdfPath, "error": err.Error()})
			return err
		}
		logger.Info("Report PDF written", map[string]interface{}{"path": pdfPath})
		fmt.Fprintln(out, successStyle.Render("🖨️  PDF written to "+pdfPath))
	}
	return nil
}
