package dot

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/pulsekit/pulsekit/core"
)

// Export renders g as a directed Graphviz DOT document. Nodes are
// emitted in index order and arcs in (tail, head) order, so output is
// deterministic.
func Export(g *core.Graph, opts ...Option) (string, error) {
	if g == nil {
		return "", ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dg := gographviz.NewGraph()
	if err := dg.SetName(cfg.Name); err != nil {
		return "", fmt.Errorf("dot: set name: %w", err)
	}
	if err := dg.SetDir(true); err != nil {
		return "", fmt.Errorf("dot: set directed: %w", err)
	}

	onPath := make(map[int]bool, len(cfg.Highlight))
	onArc := make(map[[2]int]bool, len(cfg.Highlight))
	for i, n := range cfg.Highlight {
		onPath[n] = true
		if i > 0 {
			onArc[[2]int{cfg.Highlight[i-1], n}] = true
		}
	}

	names := g.Nodes()
	for idx, name := range names {
		attrs := map[string]string{"label": strconv.Quote(name)}
		if onPath[idx] {
			attrs["color"] = quoted("crimson")
			attrs["fontcolor"] = quoted("crimson")
			attrs["style"] = quoted("bold")
		}
		if err := dg.AddNode(cfg.Name, nodeID(idx), attrs); err != nil {
			return "", fmt.Errorf("dot: add node %q: %w", name, err)
		}
	}

	for idx := range names {
		arcs, err := g.OutArcs(idx)
		if err != nil {
			return "", fmt.Errorf("dot: out-arcs of %d: %w", idx, err)
		}
		for _, a := range arcs {
			attrs := make(map[string]string, 2)
			if cfg.ArcLabel != "" {
				if v, ok := a.Deterministic(cfg.ArcLabel); ok {
					attrs["label"] = strconv.Quote(strconv.FormatFloat(v, 'g', -1, 64))
				}
			}
			if onArc[[2]int{a.From, a.To}] {
				attrs["color"] = quoted("crimson")
				attrs["penwidth"] = quoted("2.0")
			}
			if err = dg.AddEdge(nodeID(a.From), nodeID(a.To), true, attrs); err != nil {
				return "", fmt.Errorf("dot: add edge %d→%d: %w", a.From, a.To, err)
			}
		}
	}

	return dg.String(), nil
}

// nodeID is the DOT identifier of a node: n<index>, stable across runs
// and safe for any node name (the name itself goes into the label).
func nodeID(idx int) string {
	return fmt.Sprintf("n%d", idx)
}

func quoted(s string) string {
	return `"` + s + `"`
}
