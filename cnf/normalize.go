package cnf

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/svedang/pcfg/grammar"
	"github.com/svedang/pcfg/symbol"
)

// ErrNotCNF is returned by Normalize's internal sanity check when a
// production survives the pipeline without reaching binary or terminal
// form; this indicates a bug in the normalizer, not a caller error.
var ErrNotCNF = errors.New("cnf: normalization did not reach Chomsky Normal Form")

// Normalizer holds the fresh-name counter used to mint nonterminals
// unused in the input grammar. A Normalizer is not safe for concurrent
// use by multiple goroutines normalizing different grammars at once;
// use one Normalizer per call, or serialize calls.
type Normalizer struct {
	fresh int
}

// NewNormalizer creates a Normalizer with a zeroed fresh-name counter.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

func (n *Normalizer) freshNonterminal(base string) *symbol.Nonterminal {
	n.fresh++
	return symbol.InternNonterminal(fmt.Sprintf("%s~%d", base, n.fresh))
}

// Normalize runs the START/TERM/BIN/DEL/UNIT pipeline over g, returning
// an equivalent CNF grammar.
//
// The DEL step preserves a long-standing approximation in its Nullate
// sub-step: the "with" variant of a nullable occurrence keeps the
// production's full weight rather than discounting it by (1 -
// p_null), while the "without" variant correctly multiplies by
// p_null. This double-counts probability mass on grammars with
// pathological epsilon chains; it is kept for compatibility rather
// than corrected to (1 - p_null).
func (n *Normalizer) Normalize(g *grammar.Grammar) (*Grammar, error) {
	if g.Start() == nil {
		return nil, errors.Wrap(grammar.ErrInvalidGrammar, "cnf: grammar has no start symbol")
	}
	prods := n.start(g)
	s0 := prods[len(prods)-1].LHS // the fresh start production is always appended last by n.start
	prods = n.term(prods)
	prods = n.bin(prods)
	prods, emptyWeight := n.del(prods, s0)
	prods = n.unit(prods)
	return n.finalize(prods, emptyWeight, s0)
}

// start implements the START step: introduce a fresh start symbol S0
// with a single rule S0 -> S of weight 1.
func (n *Normalizer) start(g *grammar.Grammar) []*grammar.Production {
	prods := make([]*grammar.Production, 0, len(g.Productions())+1)
	prods = append(prods, g.Productions()...)
	s0 := n.freshNonterminal("S0")
	prods = append(prods, &grammar.Production{
		LHS:    s0,
		RHS:    symbol.Sentence{g.Start()},
		Weight: 1,
	})
	tracer().Debugf("START: introduced fresh start symbol %v", s0)
	return prods
}

// term implements the TERM step: isolate terminals inside RHS of
// length >= 2 behind fresh, per-terminal-memoized nonterminals.
func (n *Normalizer) term(prods []*grammar.Production) []*grammar.Production {
	memo := make(map[*symbol.Terminal]*symbol.Nonterminal)
	out := make([]*grammar.Production, 0, len(prods))
	var fresh []*grammar.Production
	for _, p := range prods {
		if len(p.RHS) < 2 {
			out = append(out, p)
			continue
		}
		newRHS := make(symbol.Sentence, len(p.RHS))
		changed := false
		for i, w := range p.RHS {
			t, ok := w.(*symbol.Terminal)
			if !ok {
				newRHS[i] = w
				continue
			}
			nt, seen := memo[t]
			if !seen {
				nt = n.freshNonterminal("T_" + t.Name())
				memo[t] = nt
				fresh = append(fresh, &grammar.Production{LHS: nt, RHS: symbol.Sentence{t}, Weight: 1})
			}
			newRHS[i] = nt
			changed = true
		}
		if changed {
			out = append(out, &grammar.Production{LHS: p.LHS, RHS: newRHS, Weight: p.Weight})
		} else {
			out = append(out, p)
		}
	}
	out = append(out, fresh...)
	tracer().Debugf("TERM: isolated %d distinct terminals", len(memo))
	return out
}

// bin implements the BIN step: right-branching binarization of RHS
// with length >= 3.
func (n *Normalizer) bin(prods []*grammar.Production) []*grammar.Production {
	out := make([]*grammar.Production, 0, len(prods))
	for _, p := range prods {
		k := len(p.RHS)
		if k < 3 {
			out = append(out, p)
			continue
		}
		prevLHS := p.LHS
		weight := p.Weight
		for i := 0; i < k-2; i++ {
			f := n.freshNonterminal("F")
			out = append(out, &grammar.Production{LHS: prevLHS, RHS: symbol.Sentence{p.RHS[i], f}, Weight: weight})
			prevLHS = f
			weight = 1
		}
		out = append(out, &grammar.Production{LHS: prevLHS, RHS: symbol.Sentence{p.RHS[k-2], p.RHS[k-1]}, Weight: 1})
	}
	return out
}

// del implements the DEL step: eliminate epsilon rules (except at s0)
// via nullable probabilities and 2^m variant generation. Returns the
// surviving productions and the accumulated empty weight for s0.
func (n *Normalizer) del(prods []*grammar.Production, s0 *symbol.Nonterminal) ([]*grammar.Production, float64) {
	tmp, err := grammar.New(s0, prods)
	if err != nil {
		// prods were already weight-validated upstream; this cannot happen.
		panic(err)
	}
	nullable := tmp.NullableProbabilities()

	var out []*grammar.Production
	var emptyWeight float64
	for _, p := range prods {
		var nullableIdx []int
		for i, w := range p.RHS {
			if nt, ok := w.(*symbol.Nonterminal); ok && nullable[nt] > 0 {
				nullableIdx = append(nullableIdx, i)
			}
		}
		m := len(nullableIdx)
		for mask := 0; mask < (1 << m); mask++ {
			variant := make(symbol.Sentence, 0, len(p.RHS))
			weightFactor := 1.0
			nullPos := 0
			for i, w := range p.RHS {
				if nullPos < m && nullableIdx[nullPos] == i {
					bit := (mask >> nullPos) & 1
					nullPos++
					if bit == 1 {
						// "with" variant: kept unchanged. This is the
						// documented approximation: the correct factor
						// would be (1 - p_null), not 1.
						variant = append(variant, w)
					} else {
						nt := w.(*symbol.Nonterminal)
						weightFactor *= nullable[nt]
					}
					continue
				}
				variant = append(variant, w)
			}
			newWeight := p.Weight * weightFactor
			if len(variant) == 0 {
				if p.LHS == s0 {
					emptyWeight += newWeight
				}
				continue
			}
			out = append(out, &grammar.Production{LHS: p.LHS, RHS: variant, Weight: newWeight})
		}
	}
	tracer().Debugf("DEL: %d productions survived, empty weight=%g", len(out), emptyWeight)
	return out, emptyWeight
}

// unit implements the UNIT step: eliminate unit rules A -> B by
// weight-proportional redistribution of B's productions onto A.
//
// An eliminated unit pair (A, B) is never regenerated, and the weight
// that would have flowed back through it is dropped, as is the weight
// of newly produced self-loops. This is an approximation: on grammars
// with unit cycles, probability mass is lost. Rules that become
// unreachable from the start symbol are not removed.
func (n *Normalizer) unit(prods []*grammar.Production) []*grammar.Production {
	rules := removeSelfLoopsAndDedupe(prods)
	type pair struct {
		a, b *symbol.Nonterminal
	}
	deleted := make(map[pair]bool)

	for {
		idx := -1
		for i, p := range rules {
			if p.IsUnit() {
				idx = i
				break
			}
		}
		if idx == -1 {
			break
		}
		p := rules[idx]
		A := p.LHS
		B := p.RHS[0].(*symbol.Nonterminal)
		w := p.Weight
		rules = append(rules[:idx], rules[idx+1:]...)
		deleted[pair{A, B}] = true

		var total float64
		var bRules []*grammar.Production
		for _, r := range rules {
			if r.LHS == B {
				total += r.Weight
				bRules = append(bRules, r)
			}
		}
		if total == 0 {
			continue
		}
		for _, r := range bRules {
			newWeight := w * (r.Weight / total)
			if len(r.RHS) == 1 {
				if nt, ok := r.RHS[0].(*symbol.Nonterminal); ok {
					if nt == A {
						continue // newly produced self-loop
					}
					if deleted[pair{A, nt}] {
						continue // do not revive a previously eliminated unit
					}
				}
			}
			merged := false
			for _, existing := range rules {
				if existing.LHS == A && sameRHS(existing.RHS, r.RHS) {
					existing.Weight += newWeight
					merged = true
					break
				}
			}
			if !merged {
				rules = append(rules, &grammar.Production{LHS: A, RHS: r.RHS, Weight: newWeight})
			}
		}
	}
	tracer().Debugf("UNIT: %d productions remain", len(rules))
	return rules
}

func removeSelfLoopsAndDedupe(prods []*grammar.Production) []*grammar.Production {
	var out []*grammar.Production
	for _, p := range prods {
		if p.IsSelfLoop() {
			continue
		}
		merged := false
		for _, existing := range out {
			if existing.LHS == p.LHS && sameRHS(existing.RHS, p.RHS) {
				existing.Weight += p.Weight
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, &grammar.Production{LHS: p.LHS, RHS: p.RHS, Weight: p.Weight})
		}
	}
	return out
}

func sameRHS(a, b symbol.Sentence) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// finalize converts the fully-reduced production list into a CNF
// Grammar, failing if any production is not yet binary or terminal.
func (n *Normalizer) finalize(prods []*grammar.Production, emptyWeight float64, start *symbol.Nonterminal) (*Grammar, error) {
	var binaries []*Binary
	var terminals []*Terminal
	for _, p := range prods {
		switch len(p.RHS) {
		case 1:
			t, ok := p.RHS[0].(*symbol.Terminal)
			if !ok {
				return nil, errors.Wrapf(ErrNotCNF, "unary nonterminal rule survived unit elimination: %s", p)
			}
			terminals = append(terminals, &Terminal{LHS: p.LHS, T: t, Weight: p.Weight})
		case 2:
			b, ok1 := p.RHS[0].(*symbol.Nonterminal)
			c, ok2 := p.RHS[1].(*symbol.Nonterminal)
			if !ok1 || !ok2 {
				return nil, errors.Wrapf(ErrNotCNF, "terminal inside binary rule: %s", p)
			}
			binaries = append(binaries, &Binary{LHS: p.LHS, B: b, C: c, Weight: p.Weight})
		default:
			return nil, errors.Wrapf(ErrNotCNF, "production has unexpected RHS length %d: %s", len(p.RHS), p)
		}
	}
	return New(start, binaries, terminals, emptyWeight), nil
}
