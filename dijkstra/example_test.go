// Package dijkstra_test examples, runnable via "go test -run Example".
package dijkstra_test

import (
	"fmt"

	"github.com/pulsekit/pulsekit/core"
	"github.com/pulsekit/pulsekit/dijkstra"
)

// ExampleCostsToTarget computes the cost-to-target table that the Pulse
// engine later uses as a pruning bound.
func ExampleCostsToTarget() {
	g := core.NewGraph()
	g.AddArc("A", "B", map[string]float64{"cost": 1}, nil)
	g.AddArc("B", "C", map[string]float64{"cost": 2}, nil)
	g.AddArc("A", "C", map[string]float64{"cost": 5}, nil)

	target, _ := g.NodeIndex("C")
	costs, err := dijkstra.CostsToTarget(g, target, dijkstra.WithAttribute("cost"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	a, _ := g.NodeIndex("A")
	b, _ := g.NodeIndex("B")
	fmt.Printf("to C: from A=%.0f, from B=%.0f, from C=%.0f\n", costs[a], costs[b], costs[target])
	// Output: to C: from A=3, from B=2, from C=0
}

// ExampleShortestPath reconstructs the cheapest route between one pair,
// here by expected travel time rather than deterministic cost.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddArc("A", "B", nil, map[string]map[string]float64{"time": {"mean": 4}})
	g.AddArc("A", "C", nil, map[string]map[string]float64{"time": {"mean": 1}})
	g.AddArc("C", "B", nil, map[string]map[string]float64{"time": {"mean": 1}})

	a, _ := g.NodeIndex("A")
	b, _ := g.NodeIndex("B")
	path, mean, err := dijkstra.ShortestPath(g, a, b, dijkstra.WithRandomAttribute("time", "mean"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	names := make([]string, len(path))
	for i, idx := range path {
		names[i], _ = g.NodeName(idx)
	}
	fmt.Printf("path=%v mean=%.0f\n", names, mean)
	// Output: path=[A C B] mean=2
}
