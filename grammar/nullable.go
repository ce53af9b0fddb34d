package grammar

import (
	"github.com/svedang/pcfg/symbol"
)

// nullTolerance bounds the nullable-probability fixpoint iteration.
const nullTolerance = 1e-12

// maxNullableIterations guards against a fixpoint that fails to settle
// within tolerance because of floating point noise.
const maxNullableIterations = 10000

// NullableProbability returns the probability that a derives the empty
// string, per NullableProbabilities.
func (g *Grammar) NullableProbability(a *symbol.Nonterminal) float64 {
	return g.NullableProbabilities()[a]
}

// NullableProbabilities computes, for every nonterminal in the
// grammar, the probability that it derives the empty string. The
// computation is an independence approximation: the joint probability
// of several nonterminals in one RHS all being null is taken as the
// product of their individual nullable probabilities, which is exact
// only when those events are independent. This mirrors the CNF
// normalizer's DEL step and is preserved for compatibility between the
// two (the DEL step calls NullableProbabilities on a temporary Grammar).
func (g *Grammar) NullableProbabilities() map[*symbol.Nonterminal]float64 {
	g.nullableOnce.Do(func() {
		g.nullable = computeNullableProbabilities(g)
	})
	return g.nullable
}

func computeNullableProbabilities(g *Grammar) map[*symbol.Nonterminal]float64 {
	nts := g.Nonterminals()
	cur := make(map[*symbol.Nonterminal]float64, len(nts))
	for _, nt := range nts {
		cur[nt] = 0
	}
	for iter := 0; iter < maxNullableIterations; iter++ {
		next := make(map[*symbol.Nonterminal]float64, len(nts))
		maxDelta := 0.0
		for _, nt := range nts {
			total := g.totalWeight(nt)
			if total == 0 {
				next[nt] = 0
				continue
			}
			var acc float64
			for _, p := range g.byLHS[nt] {
				if p.IsEpsilon() {
					acc += p.Weight
					continue
				}
				allNonterminal := true
				prob := 1.0
				for _, w := range p.RHS {
					nt2, ok := w.(*symbol.Nonterminal)
					if !ok {
						allNonterminal = false
						break
					}
					prob *= cur[nt2]
				}
				if allNonterminal {
					acc += p.Weight * prob
				}
			}
			v := acc / total
			if v > 1 {
				v = 1
			}
			next[nt] = v
			if d := v - cur[nt]; d > maxDelta {
				maxDelta = d
			}
		}
		cur = next
		if maxDelta < nullTolerance {
			break
		}
	}
	tracer().Debugf("nullable probabilities converged: %v", cur)
	return cur
}
