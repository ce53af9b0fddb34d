/*
Package symbol implements the interned vocabulary a probabilistic
grammar is built from: terminals, nonterminals, words and sentences.

Terminals and nonterminals each live in their own process-wide,
append-only table. Two terminals (or two nonterminals) with the same
name are always the same Go value, so callers may compare by pointer
identity rather than by string.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package symbol

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'pcfg.symbol'.
func tracer() tracing.Trace {
	return tracing.Select("pcfg.symbol")
}

// Word is the tagged union of Terminal and Nonterminal; it is the
// element type of a Sentence and the RHS-slot type of a Production.
type Word interface {
	IsTerminal() bool
	String() string
}

// Terminal is an interned atomic token. Equality is by identity.
type Terminal struct {
	name string
}

var _ Word = (*Terminal)(nil)

// IsTerminal is part of the Word interface; always true for *Terminal.
func (t *Terminal) IsTerminal() bool { return true }

func (t *Terminal) String() string { return t.name }

// Name returns the terminal's interned name.
func (t *Terminal) Name() string { return t.name }

// Nonterminal is an interned symbol. Equality is by identity.
type Nonterminal struct {
	name string
}

var _ Word = (*Nonterminal)(nil)

// IsTerminal is part of the Word interface; always false for *Nonterminal.
func (n *Nonterminal) IsTerminal() bool { return false }

func (n *Nonterminal) String() string { return n.name }

// Name returns the nonterminal's interned name.
func (n *Nonterminal) Name() string { return n.name }

var (
	termMutex sync.RWMutex
	terminals = map[string]*Terminal{}

	ntMutex sync.RWMutex
	nonterms = map[string]*Nonterminal{}

	freshMutex sync.Mutex
	freshSeq   uint64
)

// Intern returns the unique *Terminal for name, creating it on first use.
func Intern(name string) *Terminal {
	termMutex.RLock()
	t, ok := terminals[name]
	termMutex.RUnlock()
	if ok {
		return t
	}
	termMutex.Lock()
	defer termMutex.Unlock()
	if t, ok = terminals[name]; ok {
		return t
	}
	t = &Terminal{name: name}
	terminals[name] = t
	tracer().Debugf("interned terminal %q", name)
	return t
}

// InternNonterminal returns the unique *Nonterminal for name, creating it
// on first use.
func InternNonterminal(name string) *Nonterminal {
	ntMutex.RLock()
	n, ok := nonterms[name]
	ntMutex.RUnlock()
	if ok {
		return n
	}
	ntMutex.Lock()
	defer ntMutex.Unlock()
	if n, ok = nonterms[name]; ok {
		return n
	}
	n = &Nonterminal{name: name}
	nonterms[name] = n
	tracer().Debugf("interned nonterminal %q", name)
	return n
}

// Fresh mints a nonterminal guaranteed unused so far in the process,
// derived from hint (e.g. "S" -> "S₀", "S₁", ...). Unlike the CNF
// normalizer's own per-instance counter (see package cnf), this is a
// process-wide convenience for callers outside the normalizer.
func Fresh(hint string) *Nonterminal {
	freshMutex.Lock()
	freshSeq++
	seq := freshSeq
	freshMutex.Unlock()
	return InternNonterminal(fmt.Sprintf("%s#%d", hint, seq))
}

// Sentence is a finite ordered sequence of Words.
type Sentence []Word

// Len returns the number of words in s.
func (s Sentence) Len() int { return len(s) }

// Slice returns the sub-sentence s[i:j].
func (s Sentence) Slice(i, j int) Sentence { return s[i:j] }

func (s Sentence) String() string {
	out := "["
	for i, w := range s {
		if i > 0 {
			out += " "
		}
		out += w.String()
	}
	return out + "]"
}

// FromLetters constructs a Sentence from a string by mapping every rune
// to an interned Terminal named after that single rune. It is a
// convenience boundary, not a tokenizer: grammars whose terminal
// alphabet is not single characters must build Sentences directly.
func FromLetters(s string) Sentence {
	sent := make(Sentence, 0, len(s))
	for _, r := range s {
		sent = append(sent, Intern(string(r)))
	}
	return sent
}
