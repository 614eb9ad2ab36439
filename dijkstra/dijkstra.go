package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/pulsekit/pulsekit/core"
)

// CostsToTarget computes, for every node of g, the minimum accumulated
// attribute value of any directed path from that node to target. It runs
// one Dijkstra pass over the reversed graph, so the whole table costs a
// single O((V+A) log V) computation. Unreachable nodes get +Inf.
//
// The slice is indexed by node index; costs[target] == 0.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. An attribute must be selected (ErrEmptyAttribute).
//  3. target must be a valid node index (ErrNodeNotFound).
//  4. Every arc must carry the attribute, non-negative
//     (ErrAttributeNotFound / ErrNegativeWeight).
func CostsToTarget(g *core.Graph, target int, opts ...Option) ([]float64, error) {
	r, err := newRunner(g, target, opts)
	if err != nil {
		return nil, err
	}
	r.process()

	return r.dist, nil
}

// ShortestPath computes one cheapest path source→target and its cost.
// It reuses the reverse pass of CostsToTarget: the predecessor recorded
// for a node on the reversed graph is its next hop toward the target, so
// the path is read off by hop-following from source.
//
// Returns ErrNoPath when the pair is disconnected.
func ShortestPath(g *core.Graph, source, target int, opts ...Option) ([]int, float64, error) {
	r, err := newRunner(g, target, opts)
	if err != nil {
		return nil, 0, err
	}
	if source < 0 || source >= len(r.dist) {
		return nil, 0, ErrNodeNotFound
	}
	r.next = make([]int, len(r.dist))
	for i := range r.next {
		r.next[i] = -1
	}
	r.process()

	if math.IsInf(r.dist[source], 1) {
		return nil, 0, fmt.Errorf("%w: %d→%d", ErrNoPath, source, target)
	}

	// Follow next-hop pointers from source up to target.
	path := make([]int, 0, 8)
	for u := source; u != target; u = r.next[u] {
		path = append(path, u)
	}
	path = append(path, target)

	return path, r.dist[source], nil
}

// runner holds the mutable state of a single reverse-Dijkstra execution.
type runner struct {
	rev     *core.Graph // reversed input graph
	options Options
	dist    []float64 // node index → best cost to target
	next    []int     // node index → next hop toward target (nil unless path requested)
	visited []bool
	pq      nodePQ
}

// newRunner validates inputs, prescans arc attributes, reverses the graph
// and seeds the heap with the target at cost 0.
func newRunner(g *core.Graph, target int, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.Attribute == "" {
		return nil, ErrEmptyAttribute
	}
	n := g.NodeCount()
	if target < 0 || target >= n {
		return nil, ErrNodeNotFound
	}

	// Fail fast on malformed attributes before any heap work.
	if err := prescan(g, cfg); err != nil {
		return nil, err
	}

	r := &runner{
		rev:     g.Reverse(),
		options: cfg,
		dist:    make([]float64, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
	}
	r.dist[target] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: target, dist: 0})

	return r, nil
}

// prescan verifies that every arc carries the selected attribute with a
// non-negative value. O(V + A).
func prescan(g *core.Graph, cfg Options) error {
	n := g.NodeCount()
	for u := 0; u < n; u++ {
		arcs, err := g.OutArcs(u)
		if err != nil {
			return err
		}
		for _, a := range arcs {
			w, ok := arcCost(a, cfg)
			if !ok {
				return fmt.Errorf("%w: %q on arc %d→%d", ErrAttributeNotFound, cfg.Attribute, a.From, a.To)
			}
			if w < 0 {
				return fmt.Errorf("%w: arc %d→%d value=%g", ErrNegativeWeight, a.From, a.To, w)
			}
		}
	}

	return nil
}

// arcCost extracts the selected attribute value from an arc.
func arcCost(a *core.Arc, cfg Options) (float64, bool) {
	if cfg.RandVar == "" {
		return a.Deterministic(cfg.Attribute)
	}

	return a.Random(cfg.RandVar, cfg.Attribute)
}

// process is the core Dijkstra loop with lazy decrease-key: stale heap
// entries are skipped on pop via the visited flags.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d := item.id, item.dist

		if r.visited[u] {
			continue
		}
		if d > r.options.MaxCost {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax improves distances along every reversed arc leaving u.
// Attribute presence was verified by prescan, so lookups cannot fail here.
func (r *runner) relax(u int) {
	arcs, err := r.rev.OutArcs(u)
	if err != nil {
		return // u came off the heap, so it is always in range
	}
	for _, a := range arcs {
		w, _ := arcCost(a, r.options)
		v := a.To
		newDist := r.dist[u] + w
		if newDist > r.options.MaxCost {
			continue
		}
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.next != nil {
			// On the reversed graph u is one hop closer to the target,
			// so u is v's next hop in the original orientation.
			r.next[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem is one heap entry: a node and its tentative cost to target.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with index
// as a deterministic tiebreak.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].id < pq[j].id
	}

	return pq[i].dist < pq[j].dist
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
