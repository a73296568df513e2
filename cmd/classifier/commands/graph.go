/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: graph.go
Description: CLI command that prints a grammar as a Graphviz digraph.
*/

package commands

import (
	"fmt"

	"github.com/kleascm/chomsky-classifier/pkg/visualize"
	"github.com/spf13/cobra"
)

// RunGraph prints the nonterminal graph of a grammar in DOT format
func RunGraph(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}
	defer logger.Close()

	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	in, err := readGrammarFile(cmd, path)
	if err != nil {
		return err
	}
	g, _, err := parseInput(in, cfg.Strict, logger)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), visualize.GrammarDOT(g))
	return nil
}
