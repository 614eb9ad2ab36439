package pulse

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// NewBoundPruner discards a pulse when its accumulated objective plus the
// objective's cost-to-target bound already exceeds the incumbent: no
// completion of the pulse can improve on the best known path. The bound
// table comes from Preprocess; without it the bound degrades to 0 and
// only pulses strictly worse than the incumbent on their own are cut.
//
// key must be the engine's objective weight (or any weight whose bound
// plus accumulation never exceeds the objective of a completion).
func NewBoundPruner(key string) Pruner {
	return func(e *Engine, node int, info *PathInfo) bool {
		_, best := e.Incumbent()

		return info.Det[key]+e.Prep().DetBound(key, node) > best
	}
}

// NewResourceBoundPruner discards a pulse once the accumulated resource,
// plus the best-case consumption still needed to reach the target,
// exceeds a hard limit. Used for multi-resource constrained shortest
// paths: one pruner per capped resource.
func NewResourceBoundPruner(key string, limit float64) Pruner {
	return func(e *Engine, node int, info *PathInfo) bool {
		return info.Det[key]+e.Prep().DetBound(key, node) > limit
	}
}

// NewTimeWindowPruner discards a pulse that arrives at a node after that
// node's latest service time. latest maps node index → deadline in the
// units of the accumulated key; nodes absent from the map are
// unconstrained. Earliest-service (waiting) semantics are not modeled
// here; encode waiting in a custom update hook if the problem needs it.
func NewTimeWindowPruner(key string, latest map[int]float64) Pruner {
	return func(e *Engine, node int, info *PathInfo) bool {
		deadline, ok := latest[node]
		if !ok {
			return false
		}

		return info.Det[key] > deadline
	}
}

// NewChanceConstraintPruner enforces a probabilistic deadline: the path's
// arrival time is approximated as normal with the accumulated mean and
// variance plus the best-case remaining moments from the preprocessing
// tables. The pulse is discarded when even this optimistic distribution
// cannot reach the target by deadline with probability at least alpha.
//
// Rules (with m, v = optimistic total mean and variance at node):
//   - deadline <  m: on-time probability is below 1/2 no matter the
//     variance, so any alpha > 1/2 prunes.
//   - deadline >= m: prune when Φ((deadline−m)/√v) < alpha.
//     Zero variance means certain on-time arrival, never pruned.
//
// randVar names the random variable, meanKey and varianceKey its moment
// attributes (both should be preprocessed for a useful bound).
func NewChanceConstraintPruner(randVar, meanKey, varianceKey string, deadline, alpha float64) Pruner {
	return func(e *Engine, node int, info *PathInfo) bool {
		mean := info.Rand[randVar][meanKey] + e.Prep().RandBound(randVar, meanKey, node)
		variance := info.Rand[randVar][varianceKey] + e.Prep().RandBound(randVar, varianceKey, node)

		if deadline < mean {
			return alpha > 0.5
		}
		if variance <= 0 {
			return false
		}
		dist := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}

		return dist.CDF(deadline) < alpha
	}
}

// NewDominancePruner maintains per-node labels of accumulated weight
// vectors and discards a pulse when an earlier pulse reached the same
// node with component-wise equal-or-better state: every completion of
// the dominated pulse is matched or beaten by one of the dominating
// pulse. Surviving pulses insert their own vector and evict any stored
// labels they dominate, keeping the store a Pareto frontier per node.
//
// det lists the deterministic weights and rnd the random moments that
// form the comparison vector; all of them must be accumulating weights
// of the engine. Dominance is only valid when every listed component is
// monotone non-decreasing along arcs and smaller-is-better, which holds
// for additive non-negative weights.
//
// The pruner keeps internal state and is therefore bound to a single
// engine run; construct a fresh one per Run.
func NewDominancePruner(det []string, rnd map[string][]string) Pruner {
	labels := make(map[int][][]float64)

	vector := func(info *PathInfo) []float64 {
		vec := make([]float64, 0, len(det)+len(rnd))
		for _, key := range det {
			vec = append(vec, info.Det[key])
		}
		for randVar, moments := range rnd {
			for _, m := range moments {
				vec = append(vec, info.Rand[randVar][m])
			}
		}

		return vec
	}

	return func(e *Engine, node int, info *PathInfo) bool {
		vec := vector(info)
		stored := labels[node]
		for _, l := range stored {
			if dominates(l, vec) {
				return true
			}
		}

		kept := stored[:0]
		for _, l := range stored {
			if !dominates(vec, l) {
				kept = append(kept, l)
			}
		}
		labels[node] = append(kept, vec)

		return false
	}
}

// dominates reports whether a is component-wise <= b.
func dominates(a, b []float64) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}

	return true
}
