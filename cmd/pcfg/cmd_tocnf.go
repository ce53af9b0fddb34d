package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/svedang/pcfg/cnf"
)

func newToCNFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tocnf <grammar-file>",
		Short: "Normalize a grammar to Chomsky Normal Form and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToCNF(args[0])
		},
	}
	return cmd
}

func runToCNF(path string) error {
	g, err := loadGrammar(path)
	if err != nil {
		return err
	}
	cg, err := cnf.NewNormalizer().Normalize(g)
	if err != nil {
		return err
	}
	for _, b := range cg.Binaries() {
		fmt.Printf("%s  [%g]\n", b, cg.ProbabilityBinary(b))
	}
	for _, t := range cg.Terminals() {
		fmt.Printf("%s  [%g]\n", t, cg.ProbabilityTerminal(t))
	}
	fmt.Printf("%s -> ε  [%g]\n", cg.Start(), cg.EmptyProbability())
	return nil
}
