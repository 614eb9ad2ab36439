package pulse

import (
	"container/heap"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/pulsekit/pulsekit/core"
)

// Engine holds the configuration and mutable state of one Pulse search.
// A dedicated engine struct (rather than closures) keeps dependencies
// explicit and the hot-path state predictable.
type Engine struct {
	graph  *core.Graph
	source int
	target int
	opts   Options
	prep   *Preprocessing

	// Search state, reset by Run.
	frontier frontierPQ
	seq      int // FIFO tiebreak for equal frontier scores
	best     []int
	bestObj  float64
	stats    Stats

	// Budget bookkeeping: checked sparsely to keep the hot path cheap.
	steps       int
	useDeadline bool
	deadline    time.Time
	timedOut    bool
	stopErr     error
}

// New validates the configuration and prepares an engine for the query
// source→target over g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source and target must be valid node indices (ErrNodeNotFound).
//  3. Every declared weight must exist in the graph's attribute schema
//     (ErrUnknownWeight).
//  4. An objective must be resolvable (ErrNoObjective) and declared
//     among the deterministic weights (ErrObjectiveNotTracked).
func New(g *core.Graph, source, target int, opts ...Option) (*Engine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NodeCount()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source index %d", ErrNodeNotFound, source)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target index %d", ErrNodeNotFound, target)
	}

	if err := validateWeights(g, cfg); err != nil {
		return nil, err
	}

	if cfg.Objective == "" {
		if len(cfg.DetWeights) == 0 {
			return nil, ErrNoObjective
		}
		cfg.Objective = cfg.DetWeights[0]
	}
	if !containsKey(cfg.DetWeights, cfg.Objective) {
		return nil, fmt.Errorf("%w: %q", ErrObjectiveNotTracked, cfg.Objective)
	}

	e := &Engine{
		graph:  g,
		source: source,
		target: target,
		opts:   cfg,
		prep:   newPreprocessing(),
	}
	if cfg.Update == nil {
		e.opts.Update = e.additiveUpdate
	}
	if cfg.Order == nil {
		e.opts.Order = defaultOrder
	}
	if cfg.Score == nil {
		e.opts.Score = defaultScore
	}

	return e, nil
}

// validateWeights checks every declared weight against the graph schema.
func validateWeights(g *core.Graph, cfg Options) error {
	detKeys, randKeys := g.AttributeKeys()

	for _, key := range append(append([]string{}, cfg.DetWeights...), cfg.PrepDetWeights...) {
		if !containsKey(detKeys, key) {
			return fmt.Errorf("%w: deterministic %q (have %v)", ErrUnknownWeight, key, detKeys)
		}
	}
	check := func(weights map[string][]string) error {
		for randVar, moments := range weights {
			have, ok := randKeys[randVar]
			if !ok {
				return fmt.Errorf("%w: random variable %q", ErrUnknownWeight, randVar)
			}
			for _, m := range moments {
				if !containsKey(have, m) {
					return fmt.Errorf("%w: moment %s/%s (have %v)", ErrUnknownWeight, randVar, m, have)
				}
			}
		}

		return nil
	}
	if err := check(cfg.RandWeights); err != nil {
		return err
	}

	return check(cfg.PrepRandWeights)
}

func containsKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}

	return false
}

// Graph returns the graph under search.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Source and Target return the query endpoints.
func (e *Engine) Source() int { return e.source }
func (e *Engine) Target() int { return e.target }

// Constant returns a problem parameter set via WithConstants.
func (e *Engine) Constant(name string) (float64, bool) {
	v, ok := e.opts.Constants[name]

	return v, ok
}

// Prep exposes the preprocessing tables to pruners and hooks.
func (e *Engine) Prep() *Preprocessing { return e.prep }

// Objective returns the deterministic weight being minimized.
func (e *Engine) Objective() string { return e.opts.Objective }

// Incumbent returns the best complete path recorded so far and its
// objective (+Inf before the first completion). The slice is live and
// must be treated as read-only.
func (e *Engine) Incumbent() ([]int, float64) { return e.best, e.bestObj }

// Stats returns a snapshot of the search diagnostics.
func (e *Engine) Stats() Stats { return e.stats }

// Run executes the Pulse search and returns the best feasible path.
//
// Phases:
//  1. Depth-first propagation from the source; pruners discard hopeless
//     or infeasible pulses, the incumbent improves at each target hit.
//  2. Frontier drain: pulses suspended at the depth cap resume in
//     ascending score order until the queue empties.
//
// Errors:
//   - ErrNoFeasiblePath when no complete path survived the pruners.
//   - ErrTimeLimit when the soft budget expired.
//   - The context error when the configured context was cancelled.
//   - Any error returned by the update hook.
//
// On both budget aborts (time limit and cancellation) the Result still
// carries the incumbent found so far, if any.
func (e *Engine) Run() (Result, error) {
	e.reset()

	seed := &PathInfo{
		Det:  make(map[string]float64, len(e.opts.DetWeights)),
		Rand: make(map[string]map[string]float64, len(e.opts.RandWeights)),
	}
	for _, key := range e.opts.DetWeights {
		seed.Det[key] = 0
	}
	for randVar, moments := range e.opts.RandWeights {
		inner := make(map[string]float64, len(moments))
		for _, m := range moments {
			inner[m] = 0
		}
		seed.Rand[randVar] = inner
	}

	if err := e.propagate(e.source, seed, 0); err != nil {
		return Result{}, err
	}
	for e.frontier.Len() > 0 && !e.stopped() {
		item := heap.Pop(&e.frontier).(*frontierItem)
		e.stats.Resumed++
		if err := e.resume(item.info); err != nil {
			return Result{}, err
		}
	}

	res := Result{Path: e.best, Objective: e.bestObj, Stats: e.stats}
	switch {
	case e.stopErr != nil:
		return res, e.stopErr
	case e.timedOut:
		return res, ErrTimeLimit
	case len(e.best) == 0:
		return Result{Stats: e.stats}, ErrNoFeasiblePath
	default:
		return res, nil
	}
}

// reset prepares the mutable state for a fresh Run.
func (e *Engine) reset() {
	e.frontier = e.frontier[:0]
	heap.Init(&e.frontier)
	e.seq = 0
	e.best = append([]int(nil), e.opts.InitialPath...)
	e.bestObj = e.opts.InitialObjective
	if math.IsNaN(e.bestObj) {
		e.bestObj = math.Inf(1)
	}
	e.stats = Stats{}
	e.steps = 0
	e.timedOut = false
	e.stopErr = nil
	e.useDeadline = e.opts.TimeLimit > 0
	if e.useDeadline {
		e.deadline = time.Now().Add(e.opts.TimeLimit)
	}
}

// stopped performs a sparse budget check (every 1024 propagation events):
// context cancellation and the soft deadline.
func (e *Engine) stopped() bool {
	if e.stopErr != nil || e.timedOut {
		return true
	}
	e.steps++
	if (e.steps & 1023) != 0 {
		return false
	}
	select {
	case <-e.opts.Ctx.Done():
		e.stopErr = e.opts.Ctx.Err()

		return true
	default:
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.timedOut = true

		return true
	}

	return false
}

// propagate advances one pulse onto node: pruning first, then incumbent
// recording at the target, suspension at the depth cap, or branching.
// The callee owns info and may extend it in place.
func (e *Engine) propagate(node int, info *PathInfo, depth int) error {
	if e.stopped() {
		return nil
	}
	e.stats.Pulses++

	for _, prune := range e.opts.Pruners {
		if prune(e, node, info) {
			e.stats.Pruned++

			return nil
		}
	}

	info.Path = append(info.Path, node)

	if node == e.target {
		e.stats.Completed++
		if obj := info.Det[e.opts.Objective]; obj < e.bestObj {
			e.bestObj = obj
			e.best = append([]int(nil), info.Path...)
		}

		return nil
	}

	if depth >= e.opts.MaxDepth {
		e.stats.Suspended++
		heap.Push(&e.frontier, &frontierItem{
			score: e.opts.Score(e, info),
			seq:   e.seq,
			info:  info,
		})
		e.seq++

		return nil
	}

	return e.branch(info, depth)
}

// resume continues a suspended pulse from its last node with a fresh
// depth budget. The pulse was pruner-checked when it was suspended, so
// resumption branches immediately.
func (e *Engine) resume(info *PathInfo) error {
	return e.branch(info, 0)
}

// branch extends a pulse to every unvisited neighbor of its last node,
// in ascending OrderFunc value (node index breaks ties).
func (e *Engine) branch(info *PathInfo, depth int) error {
	node := info.Last()
	arcs, err := e.graph.OutArcs(node)
	if err != nil {
		return fmt.Errorf("pulse: out-arcs of %d: %w", node, err)
	}
	sort.SliceStable(arcs, func(i, j int) bool {
		oi, oj := e.opts.Order(e, arcs[i].To), e.opts.Order(e, arcs[j].To)
		if oi == oj {
			return arcs[i].To < arcs[j].To
		}

		return oi < oj
	})

	for _, a := range arcs {
		if containsNode(info.Path, a.To) {
			continue // simple paths only
		}
		next := info.Clone()
		if err = e.opts.Update(e.graph, node, a.To, next); err != nil {
			return fmt.Errorf("pulse: update hook for arc %d→%d: %w", node, a.To, err)
		}
		if err = e.propagate(a.To, next, depth+1); err != nil {
			return err
		}
	}

	return nil
}

func containsNode(path []int, node int) bool {
	for _, n := range path {
		if n == node {
			return true
		}
	}

	return false
}

// additiveUpdate is the default accumulation hook: every declared weight
// of the traversed arc is added to the pulse state.
func (e *Engine) additiveUpdate(g *core.Graph, from, to int, info *PathInfo) error {
	a, ok := g.Arc(from, to)
	if !ok {
		return fmt.Errorf("%w: arc %d→%d", ErrMissingAttribute, from, to)
	}
	for _, key := range e.opts.DetWeights {
		v, ok := a.Deterministic(key)
		if !ok {
			return fmt.Errorf("%w: %q on arc %d→%d", ErrMissingAttribute, key, from, to)
		}
		info.Det[key] += v
	}
	for randVar, moments := range e.opts.RandWeights {
		for _, m := range moments {
			v, ok := a.Random(randVar, m)
			if !ok {
				return fmt.Errorf("%w: %s/%s on arc %d→%d", ErrMissingAttribute, randVar, m, from, to)
			}
			info.Rand[randVar][m] += v
		}
	}

	return nil
}

// defaultOrder ranks neighbors by the objective's cost-to-target bound;
// without preprocessing every bound is 0 and node index decides.
func defaultOrder(e *Engine, node int) float64 {
	return e.prep.DetBound(e.opts.Objective, node)
}

// defaultScore ranks suspended pulses the same way, at their last node.
func defaultScore(e *Engine, info *PathInfo) float64 {
	return e.prep.DetBound(e.opts.Objective, info.Last())
}

// Solve is the single-call form: New, Preprocess (when any table is
// declared), then Run.
func Solve(g *core.Graph, source, target int, opts ...Option) (Result, error) {
	e, err := New(g, source, target, opts...)
	if err != nil {
		return Result{}, err
	}
	if len(e.opts.PrepDetWeights) > 0 || len(e.opts.PrepRandWeights) > 0 {
		if err = e.Preprocess(); err != nil {
			return Result{}, err
		}
	}

	return e.Run()
}

// frontierItem is one suspended pulse with its resumption priority.
type frontierItem struct {
	score float64
	seq   int // insertion order, FIFO among equal scores
	info  *PathInfo
}

// frontierPQ is a min-heap of suspended pulses ordered by score, then by
// insertion order for determinism.
type frontierPQ []*frontierItem

func (pq frontierPQ) Len() int { return len(pq) }

func (pq frontierPQ) Less(i, j int) bool {
	if pq[i].score == pq[j].score {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].score < pq[j].score
}

func (pq frontierPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontierPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierItem)) }

func (pq *frontierPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
