package core

import "sort"

// AddNode registers a new node under the given name and returns its index.
// Indices are dense and assigned in insertion order.
//
// Errors:
//   - ErrEmptyNodeName if name is empty.
//   - ErrDuplicateNode if the name is already bound.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(name string) (int, error) {
	if name == "" {
		return -1, ErrEmptyNodeName
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.names[name]; ok {
		return -1, ErrDuplicateNode
	}

	return g.addNodeLocked(name), nil
}

// addNodeLocked appends a node; the caller must hold mu.
func (g *Graph) addNodeLocked(name string) int {
	idx := len(g.nodes)
	g.names[name] = idx
	g.nodes = append(g.nodes, name)
	g.out = append(g.out, make(map[int]*Arc))

	return idx
}

// EnsureNode returns the index bound to name, creating the node if absent.
// An empty name maps to index -1 and creates nothing.
// Complexity: O(1) amortized.
func (g *Graph) EnsureNode(name string) int {
	if name == "" {
		return -1
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if idx, ok := g.names[name]; ok {
		return idx
	}

	return g.addNodeLocked(name)
}

// NodeIndex reports the index bound to name and whether it exists.
// Complexity: O(1).
func (g *Graph) NodeIndex(name string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.names[name]

	return idx, ok
}

// HasNode reports whether a node with the given name exists.
// Complexity: O(1).
func (g *Graph) HasNode(name string) bool {
	_, ok := g.NodeIndex(name)

	return ok
}

// NodeName returns the name bound to index idx.
// Errors: ErrNodeNotFound if idx is out of range.
// Complexity: O(1).
func (g *Graph) NodeName(idx int) (string, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if idx < 0 || idx >= len(g.nodes) {
		return "", ErrNodeNotFound
	}

	return g.nodes[idx], nil
}

// NodeCount reports the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// ArcCount reports the number of arcs. Complexity: O(1).
func (g *Graph) ArcCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.arcCount
}

// Nodes returns all node names in index order.
// The returned slice is a copy. Complexity: O(V).
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	names := make([]string, len(g.nodes))
	copy(names, g.nodes)

	return names
}

// AddArc inserts (or replaces) the directed arc src→dst with the given
// deterministic and random attributes. Missing endpoints are created
// (find-or-add semantics). The attribute maps are deep-copied, so callers
// may reuse or mutate their own maps afterwards.
//
// Returns the (from, to) indices of the endpoints.
//
// Errors:
//   - ErrEmptyNodeName if either endpoint name is empty.
//   - ErrLoopNotAllowed if src == dst.
//
// Complexity: O(|det| + |rnd|) for the attribute copies.
func (g *Graph) AddArc(src, dst string, det map[string]float64, rnd map[string]map[string]float64) (int, int, error) {
	if src == "" || dst == "" {
		return -1, -1, ErrEmptyNodeName
	}
	if src == dst {
		return -1, -1, ErrLoopNotAllowed
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	u, ok := g.names[src]
	if !ok {
		u = g.addNodeLocked(src)
	}
	v, ok := g.names[dst]
	if !ok {
		v = g.addNodeLocked(dst)
	}

	if _, exists := g.out[u][v]; !exists {
		g.arcCount++
	}
	g.out[u][v] = &Arc{
		From: u,
		To:   v,
		Det:  copyDet(det),
		Rand: copyRand(rnd),
	}

	return u, v, nil
}

// Arc returns the arc from→to and whether it exists.
// The returned arc is a live reference and must be treated as read-only.
// Complexity: O(1).
func (g *Graph) Arc(from, to int) (*Arc, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.out) {
		return nil, false
	}
	a, ok := g.out[from][to]

	return a, ok
}

// OutArcs returns the arcs leaving node from, sorted ascending by head
// index for deterministic iteration. The arcs are live references and
// must be treated as read-only.
//
// Errors: ErrNodeNotFound if from is out of range.
// Complexity: O(d log d) where d = out-degree.
func (g *Graph) OutArcs(from int) ([]*Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if from < 0 || from >= len(g.out) {
		return nil, ErrNodeNotFound
	}
	arcs := make([]*Arc, 0, len(g.out[from]))
	for _, a := range g.out[from] {
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].To < arcs[j].To })

	return arcs, nil
}

// Reverse builds a new Graph with every arc direction flipped. Node names
// keep their indices, so cost tables computed on the reverse graph can be
// indexed directly with the original indices. Attribute maps are copied.
//
// Complexity: O(V + A·(|det|+|rnd|)).
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	rev := NewGraph(WithNodeCapacity(len(g.nodes)))
	for _, name := range g.nodes {
		rev.addNodeLocked(name)
	}
	for u := range g.out {
		for v, a := range g.out[u] {
			if _, exists := rev.out[v][u]; !exists {
				rev.arcCount++
			}
			rev.out[v][u] = &Arc{
				From: v,
				To:   u,
				Det:  copyDet(a.Det),
				Rand: copyRand(a.Rand),
			}
		}
	}

	return rev
}

// AttributeKeys reports the attribute schema of the graph: the sorted
// deterministic keys and, per random variable, the sorted moment keys.
// The schema is read from the first arc found in node-index order
// (arcs are assumed attribute-uniform; the instance package validates
// that when loading from files). Both results are empty when the graph
// has no arcs.
//
// Complexity: O(V) to find the first arc plus O(k log k) for sorting.
func (g *Graph) AttributeKeys() ([]string, map[string][]string) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for u := range g.out {
		for _, a := range g.out[u] {
			det := make([]string, 0, len(a.Det))
			for k := range a.Det {
				det = append(det, k)
			}
			sort.Strings(det)

			rnd := make(map[string][]string, len(a.Rand))
			for rv, moments := range a.Rand {
				keys := make([]string, 0, len(moments))
				for k := range moments {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				rnd[rv] = keys
			}

			return det, rnd
		}
	}

	return nil, nil
}

// copyDet deep-copies a deterministic attribute map; nil maps to empty.
func copyDet(det map[string]float64) map[string]float64 {
	cp := make(map[string]float64, len(det))
	for k, v := range det {
		cp[k] = v
	}

	return cp
}

// copyRand deep-copies a random attribute map; nil maps to empty.
func copyRand(rnd map[string]map[string]float64) map[string]map[string]float64 {
	cp := make(map[string]map[string]float64, len(rnd))
	for rv, moments := range rnd {
		inner := make(map[string]float64, len(moments))
		for k, v := range moments {
			inner[k] = v
		}
		cp[rv] = inner
	}

	return cp
}
