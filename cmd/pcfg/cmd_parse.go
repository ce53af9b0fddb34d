package main

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/svedang/pcfg"
	"github.com/svedang/pcfg/cnf"
	"github.com/svedang/pcfg/symbol"
)

func newParseCmd() *cobra.Command {
	var useCYK bool
	var dumpForest bool

	cmd := &cobra.Command{
		Use:   "parse <grammar-file> <sentence>",
		Short: "Parse a letter-sentence against a grammar and print its probability",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args[0], args[1], useCYK, dumpForest)
		},
	}
	cmd.Flags().BoolVar(&useCYK, "cyk", false, "use the CYK recognizer instead of Earley (requires a CNF-able grammar)")
	cmd.Flags().BoolVar(&dumpForest, "forest", false, "print the SPPF node count (Earley only)")
	return cmd
}

func runParse(grammarPath, sentence string, useCYK, dumpForest bool) error {
	g, err := loadGrammar(grammarPath)
	if err != nil {
		return err
	}
	s := symbol.FromLetters(sentence)

	var p pcfg.Parser
	if useCYK {
		cg, err := cnf.NewNormalizer().Normalize(g)
		if err != nil {
			return err
		}
		p = pcfg.NewCYKParser(cg)
	} else {
		p = pcfg.NewEarleyParser(g)
	}

	prob := p.ParseProbability(s)
	if prob > 0 {
		pterm.Success.Printf("P(%q) = %g\n", sentence, prob)
	} else {
		pterm.Warning.Printf("%q is not derivable by this grammar\n", sentence)
	}

	if dumpForest && !useCYK {
		f := p.ParseForest(s)
		if f == nil {
			fmt.Println("no forest: sentence has no derivation")
		} else {
			fmt.Printf("forest: %d nodes, root = %s\n", len(f.Nodes()), f.Root())
		}
	}
	return nil
}
