// Package pulse_test examples, runnable via "go test -run Example".
package pulse_test

import (
	"fmt"

	"github.com/pulsekit/pulsekit/core"
	"github.com/pulsekit/pulsekit/pulse"
)

// exampleNetwork is the corridor used by the examples: four routes from
// "s" to "e" with a deterministic cost and a stochastic travel time per
// arc.
func exampleNetwork() *core.Graph {
	g := core.NewGraph()
	for _, name := range []string{"1", "2", "3", "4", "5", "s", "e"} {
		g.EnsureNode(name)
	}
	arcs := []struct {
		from, to   string
		cost       float64
		mean, vari float64
	}{
		{"s", "1", 2, 2, 3},
		{"1", "e", 3, 2, 0.5},
		{"s", "2", 3, 2, 1},
		{"2", "e", 5, 9, 1},
		{"s", "3", 2, 1, 0.5},
		{"3", "e", 4, 1, 0.5},
		{"s", "4", 1, 2, 3},
		{"4", "5", 1, 3, 3},
		{"5", "e", 1, 2, 2},
	}
	for _, a := range arcs {
		g.AddArc(a.from, a.to,
			map[string]float64{"cost": a.cost},
			map[string]map[string]float64{"time": {"mean": a.mean, "variance": a.vari}})
	}

	return g
}

// ExampleSolve finds the reliable shortest path: the cheapest route is
// too risky for a 99% on-time guarantee by t=10, so the answer shifts to
// a costlier but safer one.
func ExampleSolve() {
	g := exampleNetwork()
	source, _ := g.NodeIndex("s")
	target, _ := g.NodeIndex("e")

	res, err := pulse.Solve(g, source, target,
		pulse.WithDeterministicWeights("cost"),
		pulse.WithRandomWeights(map[string][]string{"time": {"mean", "variance"}}),
		pulse.WithPreprocessing([]string{"cost"}, map[string][]string{"time": {"mean", "variance"}}),
		pulse.WithPruners(
			pulse.NewChanceConstraintPruner("time", "mean", "variance", 10, 0.99),
			pulse.NewBoundPruner("cost"),
		),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("path=%v cost=%.0f\n", res.NodeNames(g), res.Objective)
	// Output: path=[s 1 e] cost=5
}

// ExampleEngine_Run drops the reliability constraint: with bound pruning
// alone the engine returns the plain cheapest path.
func ExampleEngine_Run() {
	g := exampleNetwork()
	source, _ := g.NodeIndex("s")
	target, _ := g.NodeIndex("e")

	eng, err := pulse.New(g, source, target,
		pulse.WithDeterministicWeights("cost"),
		pulse.WithPreprocessing([]string{"cost"}, nil),
		pulse.WithPruners(pulse.NewBoundPruner("cost")),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err = eng.Preprocess(); err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := eng.Run()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("path=%v cost=%.0f pruned=%d\n", res.NodeNames(g), res.Objective, res.Stats.Pruned)
	// Output: path=[s 4 5 e] cost=3 pruned=3
}
