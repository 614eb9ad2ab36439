// Package core_test provides runnable examples for the multi-attribute graph.
package core_test

import (
	"fmt"

	"github.com/pulsekit/pulsekit/core"
)

// ExampleGraph_AddArc builds a tiny road network where each arc carries a
// deterministic cost and the two moments of a random travel time.
func ExampleGraph_AddArc() {
	g := core.NewGraph()

	// Endpoints are created on demand; indices follow insertion order.
	g.AddArc("depot", "customer",
		map[string]float64{"cost": 4},
		map[string]map[string]float64{"time": {"mean": 2, "variance": 1}})

	u, _ := g.NodeIndex("depot")
	v, _ := g.NodeIndex("customer")
	a, _ := g.Arc(u, v)

	cost, _ := a.Deterministic("cost")
	mean, _ := a.Random("time", "mean")
	fmt.Printf("arc %d→%d cost=%.0f mean=%.0f\n", u, v, cost, mean)
	// Output: arc 0→1 cost=4 mean=2
}

// ExampleGraph_Reverse shows that reversing keeps node indices stable,
// which is what lets cost-to-target tables be indexed with original indices.
func ExampleGraph_Reverse() {
	g := core.NewGraph()
	g.AddArc("s", "t", map[string]float64{"cost": 1}, nil)

	rev := g.Reverse()
	_, forward := rev.Arc(0, 1)
	_, backward := rev.Arc(1, 0)
	fmt.Printf("forward=%v backward=%v nodes=%v\n", forward, backward, rev.Nodes())
	// Output: forward=false backward=true nodes=[s t]
}
