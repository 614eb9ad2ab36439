package pulse

import (
	"fmt"
	"math"

	"github.com/pulsekit/pulsekit/dijkstra"
)

// Preprocessing holds the cost-to-target tables computed before the
// search. Each table maps a node index to the minimum accumulated value
// of any path from that node to the target — an admissible lower bound on
// completing a pulse, which is exactly what the bound-style pruners need.
type Preprocessing struct {
	det map[string][]float64
	rnd map[string]map[string][]float64
}

func newPreprocessing() *Preprocessing {
	return &Preprocessing{
		det: make(map[string][]float64),
		rnd: make(map[string]map[string][]float64),
	}
}

// Deterministic returns the table for a deterministic weight, or nil when
// the key was not preprocessed.
func (p *Preprocessing) Deterministic(key string) []float64 {
	return p.det[key]
}

// Random returns the table for one moment of a random variable, or nil
// when it was not preprocessed.
func (p *Preprocessing) Random(randVar, moment string) []float64 {
	return p.rnd[randVar][moment]
}

// DetBound returns the cost-to-target bound of a deterministic weight at
// node. Missing tables yield 0, the trivially admissible bound, so
// pruners degrade gracefully instead of panicking.
func (p *Preprocessing) DetBound(key string, node int) float64 {
	table := p.det[key]
	if node < 0 || node >= len(table) {
		return 0
	}

	return table[node]
}

// RandBound is DetBound for one moment of a random variable.
func (p *Preprocessing) RandBound(randVar, moment string, node int) float64 {
	table := p.rnd[randVar][moment]
	if node < 0 || node >= len(table) {
		return 0
	}

	return table[node]
}

// Preprocess computes one cost-to-target table per weight declared via
// WithPreprocessing, running a reverse Dijkstra pass each. It fails with
// ErrTargetUnreachable when any table proves the source disconnected from
// the target, since no feasible path can exist in that case.
//
// Complexity: O(T · (V+A) log V) for T declared tables.
func (e *Engine) Preprocess() error {
	for _, key := range e.opts.PrepDetWeights {
		costs, err := dijkstra.CostsToTarget(e.graph, e.target, dijkstra.WithAttribute(key))
		if err != nil {
			return fmt.Errorf("pulse: preprocessing %q: %w", key, err)
		}
		if math.IsInf(costs[e.source], 1) {
			return fmt.Errorf("%w: table %q", ErrTargetUnreachable, key)
		}
		e.prep.det[key] = costs
	}
	for randVar, moments := range e.opts.PrepRandWeights {
		if e.prep.rnd[randVar] == nil {
			e.prep.rnd[randVar] = make(map[string][]float64, len(moments))
		}
		for _, moment := range moments {
			costs, err := dijkstra.CostsToTarget(e.graph, e.target, dijkstra.WithRandomAttribute(randVar, moment))
			if err != nil {
				return fmt.Errorf("pulse: preprocessing %s/%s: %w", randVar, moment, err)
			}
			if math.IsInf(costs[e.source], 1) {
				return fmt.Errorf("%w: table %s/%s", ErrTargetUnreachable, randVar, moment)
			}
			e.prep.rnd[randVar][moment] = costs
		}
	}

	return nil
}
