package sppf

import (
	"github.com/npillmayer/schuko/gconf"
)

// probTolerance bounds the fixpoint iteration: convergence is reached
// once no node's estimate decreases by more than this amount in a pass.
const probTolerance = 1e-15

// maxProbIterations guards against non-convergence from floating point
// noise; the update is monotonically non-increasing on [0,1], so a real
// forest converges long before this is exhausted.
const maxProbIterations = 10000

// Probability returns the forest's overall derivation probability: the
// fixpoint value at its root, or 0 for a forest with no root.
//
// p⁰(v) = 1 for every node. Each pass recomputes p'(v) as the sum, over
// v's families, of the family's production probability (or 1 if the
// family carries no annotation) times the product of its children's
// current estimates, clamped to [0,1]. Leaves — TerminalNode,
// EpsilonNode, and any node with no families — are fixed at 1.
// Iteration stops once no node decreased by more than probTolerance; an
// estimate that increases between passes is a structural impossibility
// and is reported through violation, which is fatal unless configured
// otherwise.
func (f *Forest) Probability() float64 {
	if f.root == nil {
		return 0
	}
	nodes := f.Nodes()
	p := make(map[*Node]float64, len(nodes))
	for _, n := range nodes {
		p[n] = 1
	}
	for iter := 0; iter < maxProbIterations; iter++ {
		next := make(map[*Node]float64, len(nodes))
		maxDrop := 0.0
		for _, n := range nodes {
			if n.IsLeaf() {
				next[n] = 1
				continue
			}
			var acc float64
			for _, fam := range n.Families {
				prob := 1.0
				if fam.Prod != nil {
					prob = f.grammar.Probability(fam.Prod)
				}
				for _, c := range fam.Children {
					prob *= p[c]
				}
				acc += prob
			}
			if acc > 1 {
				acc = 1
			} else if acc < 0 {
				acc = 0
			}
			if acc > p[n] {
				violation(n, p[n], acc)
			}
			if d := p[n] - acc; d > maxDrop {
				maxDrop = d
			}
			next[n] = acc
		}
		p = next
		if maxDrop < probTolerance {
			break
		}
	}
	tracer().Debugf("forest probability converged: root=%v p=%v", f.root, p[f.root])
	return p[f.root]
}

// violation reports a monotonicity violation: a node's estimate rose
// between passes, which can only happen if the forest is structurally
// corrupt (a cycle not bottoming out at a leaf, or a mis-annotated
// family). Fatal by default; setting the gconf key
// "log-on-forest-corruption" to true downgrades it to a logged error
// while debugging a builder change.
func violation(n *Node, before, after float64) {
	tracer().Errorf("monotonicity violation at %s: %g -> %g", n, before, after)
	if !gconf.GetBool("log-on-forest-corruption") {
		panic("sppf: fixpoint estimate increased, forest is corrupt")
	}
}
