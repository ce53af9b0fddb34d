package main

import (
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/svedang/pcfg"
	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

func newReplCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl <grammar-file>",
		Short: "Load a grammar and interactively parse sentences against it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl(args[0])
		},
	}
	return cmd
}

func runRepl(grammarPath string) error {
	g, err := loadGrammar(grammarPath)
	if err != nil {
		return err
	}
	pterm.Info.Printf("loaded grammar %s, start symbol %s\n", grammarPath, g.Start())

	rl, err := readline.New("pcfg> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	pterm.Info.Println("enter a letter-sentence to parse, or :forest to toggle forest dumps; quit with <ctrl>D")
	p := pcfg.NewEarleyParser(g)
	showForest := false

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on ctrl+D
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			continue
		case line == ":forest":
			showForest = !showForest
			pterm.Info.Printf("forest dumps: %v\n", showForest)
			continue
		}
		evalReplLine(p, g, line, showForest)
	}
	pterm.Info.Println("bye")
	return nil
}

func evalReplLine(p pcfg.Parser, g *grammar.Grammar, line string, showForest bool) {
	s := symbol.FromLetters(line)
	prob := p.ParseProbability(s)
	if prob == 0 {
		pterm.Warning.Printf("%q: no derivation\n", line)
		return
	}
	pterm.Success.Printf("%q: P = %g\n", line, prob)
	if !showForest {
		return
	}
	f := p.ParseForest(s)
	if f == nil {
		return
	}
	pterm.Info.Printf("forest: %d nodes, root = %s\n", len(f.Nodes()), f.Root())
}
