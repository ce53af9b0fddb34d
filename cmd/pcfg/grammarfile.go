package main

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/svedang/pcfg/grammar"
)

// ErrGrammarFile is returned when a grammar text file can't be parsed.
var ErrGrammarFile = errors.New("malformed grammar file")

// loadGrammar reads a grammar from a tiny line-oriented text format:
//
//	START S
//	S -> X X [2]
//	S -> a [8]
//	X -> X X [2]
//	X -> a [8]
//	S -> [1]
//
// One rule per line, "->" separating LHS from RHS, weight in trailing
// brackets (defaults to 1 if omitted). Symbols beginning with an upper
// case letter are nonterminals, everything else a terminal. A RHS may
// be empty (an epsilon rule). A line "START <name>" pins the grammar's
// start symbol; otherwise it defaults to the first rule's LHS. Blank
// lines and lines starting with "#" are ignored.
func loadGrammar(path string) (*grammar.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening grammar file %s", path)
	}
	defer f.Close()

	b := grammar.NewBuilder(path)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "START ") {
			b.StartSymbol(strings.TrimSpace(line[len("START "):]))
			continue
		}
		if err := parseRule(b, line); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading grammar file %s", path)
	}
	return b.Grammar()
}

func parseRule(b *grammar.Builder, line string) error {
	arrow := strings.Index(line, "->")
	if arrow < 0 {
		return errors.Wrapf(ErrGrammarFile, "missing '->' in line %q", line)
	}
	lhs := strings.TrimSpace(line[:arrow])
	rest := strings.TrimSpace(line[arrow+len("->"):])

	weight := 1.0
	if open := strings.LastIndex(rest, "["); open >= 0 && strings.HasSuffix(rest, "]") {
		wstr := rest[open+1 : len(rest)-1]
		w, err := strconv.ParseFloat(strings.TrimSpace(wstr), 64)
		if err != nil {
			return errors.Wrapf(ErrGrammarFile, "bad weight %q in line %q", wstr, line)
		}
		weight = w
		rest = strings.TrimSpace(rest[:open])
	}

	r := b.LHS(lhs)
	for _, sym := range strings.Fields(rest) {
		if isUpper(sym) {
			r.N(sym)
		} else {
			r.T(sym)
		}
	}
	r.End(weight)
	return nil
}

func isUpper(sym string) bool {
	return sym != "" && sym[0] >= 'A' && sym[0] <= 'Z'
}
