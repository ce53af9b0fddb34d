/*
Command pcfg is a small front-end over the probabilistic grammar core:
normalize a grammar to Chomsky Normal Form, parse a sentence against a
grammar, or drop into an interactive REPL for both.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "pcfg",
		Short: "Normalize and parse probabilistic context-free grammars",
	}

	rootCmd.AddCommand(newToCNFCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
