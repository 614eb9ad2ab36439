// Package pulse type declarations: path state, hook signatures,
// configuration options, sentinel errors, and search diagnostics.
package pulse

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/pulsekit/pulsekit/core"
)

// DefaultMaxDepth is the pulse depth cap applied when WithMaxDepth is not
// given: pulses deeper than this are suspended into the frontier queue.
const DefaultMaxDepth = 1000

// Sentinel errors returned by the engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was provided.
	ErrNilGraph = errors.New("pulse: graph is nil")

	// ErrNodeNotFound indicates that the source or target index is out of
	// range for the graph.
	ErrNodeNotFound = errors.New("pulse: node not found in graph")

	// ErrUnknownWeight indicates that a declared weight key does not
	// appear in the graph's attribute schema.
	ErrUnknownWeight = errors.New("pulse: weight not present in graph attributes")

	// ErrNoObjective indicates that neither WithObjective nor any
	// deterministic weight was declared, so there is nothing to minimize.
	ErrNoObjective = errors.New("pulse: no objective weight declared")

	// ErrObjectiveNotTracked indicates that the objective key is not among
	// the declared deterministic weights, so it would never accumulate.
	ErrObjectiveNotTracked = errors.New("pulse: objective not among deterministic weights")

	// ErrMissingAttribute indicates that an arc lacks a declared weight
	// during accumulation.
	ErrMissingAttribute = errors.New("pulse: arc missing declared weight")

	// ErrTargetUnreachable indicates that preprocessing proved the target
	// unreachable from the source, so no feasible path can exist.
	ErrTargetUnreachable = errors.New("pulse: target unreachable from source")

	// ErrNoFeasiblePath indicates that the search finished without any
	// complete path surviving the pruners.
	ErrNoFeasiblePath = errors.New("pulse: no feasible path found")

	// ErrTimeLimit indicates that the soft time budget expired before the
	// search finished. The Result still carries the incumbent, if any.
	ErrTimeLimit = errors.New("pulse: time limit exceeded")

	// ErrBadMaxDepth indicates a non-positive depth cap.
	ErrBadMaxDepth = errors.New("pulse: MaxDepth must be positive")

	// ErrBadTimeLimit indicates a negative time budget.
	ErrBadTimeLimit = errors.New("pulse: TimeLimit must be non-negative")
)

// PathInfo is the accumulated state of one pulse: the deterministic
// values, the random moment values, and the node-index path so far.
//
// Pruners receive the live PathInfo of the pulse under inspection and
// must treat it as read-only; use Clone when state must be retained.
type PathInfo struct {
	// Det maps each declared deterministic weight to its accumulated value.
	Det map[string]float64

	// Rand maps random variable → moment → accumulated value.
	Rand map[string]map[string]float64

	// Path is the sequence of node indices visited so far.
	Path []int
}

// Clone returns a deep copy of the path state.
func (p *PathInfo) Clone() *PathInfo {
	cp := &PathInfo{
		Det:  make(map[string]float64, len(p.Det)),
		Rand: make(map[string]map[string]float64, len(p.Rand)),
		Path: make([]int, len(p.Path), len(p.Path)+1),
	}
	for k, v := range p.Det {
		cp.Det[k] = v
	}
	for rv, moments := range p.Rand {
		inner := make(map[string]float64, len(moments))
		for k, v := range moments {
			inner[k] = v
		}
		cp.Rand[rv] = inner
	}
	copy(cp.Path, p.Path)

	return cp
}

// Last returns the most recent node of the path, or -1 when empty.
func (p *PathInfo) Last() int {
	if len(p.Path) == 0 {
		return -1
	}

	return p.Path[len(p.Path)-1]
}

// UpdateFunc accumulates the traversal of arc from→to into info.
// The default implementation adds every declared weight of the arc.
// Returning an error aborts the whole search with that error.
type UpdateFunc func(g *core.Graph, from, to int, info *PathInfo) error

// OrderFunc ranks a candidate neighbor: neighbors are explored in
// ascending order of the returned value (node index breaks ties).
type OrderFunc func(e *Engine, node int) float64

// ScoreFunc ranks a suspended pulse in the frontier queue: lower scores
// resume first.
type ScoreFunc func(e *Engine, info *PathInfo) float64

// Pruner inspects a pulse arriving at node before it extends. Returning
// true discards the pulse. Pruners run in the order they were configured,
// so cheap rules should come first.
//
// Pruners may keep internal state (the dominance pruner does); such
// pruners are bound to a single engine run and must not be shared.
type Pruner func(e *Engine, node int, info *PathInfo) bool

// Options holds the full engine configuration. Zero values are replaced
// by DefaultOptions; use the With… functional options to override.
type Options struct {
	// Ctx allows cancellation; checked sparsely during propagation.
	Ctx context.Context

	// Constants are problem parameters exposed to pruners and hooks via
	// Engine.Constant (e.g. a deadline or a reliability threshold).
	Constants map[string]float64

	// MaxDepth caps the depth-first phase; deeper pulses are suspended
	// into the frontier queue and resumed later.
	MaxDepth int

	// DetWeights and RandWeights declare which arc attributes accumulate
	// along a pulse.
	DetWeights  []string
	RandWeights map[string][]string

	// PrepDetWeights and PrepRandWeights declare which cost-to-target
	// tables Preprocess computes for use as pruning bounds.
	PrepDetWeights  []string
	PrepRandWeights map[string][]string

	// Objective is the deterministic weight minimized over complete
	// paths. Defaults to the first declared deterministic weight.
	Objective string

	// TimeLimit is a soft budget; 0 means unlimited.
	TimeLimit time.Duration

	// Hooks; nil selects the documented defaults.
	Update  UpdateFunc
	Order   OrderFunc
	Score   ScoreFunc
	Pruners []Pruner

	// InitialPath and InitialObjective warm-start the incumbent,
	// tightening bound pruning from the first pulse on.
	InitialPath      []int
	InitialObjective float64
}

// Option represents a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns the configuration used before overrides:
// background context, depth cap DefaultMaxDepth, no weights, no pruners,
// +Inf initial incumbent.
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDepth:         DefaultMaxDepth,
		InitialObjective: math.Inf(1),
	}
}

// WithContext installs ctx for cancellation. Nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConstants sets the problem parameters exposed via Engine.Constant.
func WithConstants(constants map[string]float64) Option {
	return func(o *Options) {
		o.Constants = constants
	}
}

// WithMaxDepth sets the pulse depth cap. Must be positive; invalid
// values panic (invalid configuration).
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth < 1 {
			panic(ErrBadMaxDepth.Error())
		}
		o.MaxDepth = depth
	}
}

// WithDeterministicWeights declares the deterministic attributes that
// accumulate along a pulse.
func WithDeterministicWeights(keys ...string) Option {
	return func(o *Options) {
		o.DetWeights = keys
	}
}

// WithRandomWeights declares the random moments that accumulate along a
// pulse, keyed by random variable.
func WithRandomWeights(weights map[string][]string) Option {
	return func(o *Options) {
		o.RandWeights = weights
	}
}

// WithPreprocessing declares the cost-to-target tables Preprocess
// computes: one per deterministic key, one per random moment.
func WithPreprocessing(det []string, rnd map[string][]string) Option {
	return func(o *Options) {
		o.PrepDetWeights = det
		o.PrepRandWeights = rnd
	}
}

// WithObjective selects the deterministic weight minimized over complete
// paths. It must also be declared via WithDeterministicWeights.
func WithObjective(key string) Option {
	return func(o *Options) {
		o.Objective = key
	}
}

// WithTimeLimit sets a soft time budget for Run. Must be non-negative;
// invalid values panic (invalid configuration). Zero disables the budget.
func WithTimeLimit(limit time.Duration) Option {
	return func(o *Options) {
		if limit < 0 {
			panic(ErrBadTimeLimit.Error())
		}
		o.TimeLimit = limit
	}
}

// WithUpdate overrides the additive accumulation hook.
func WithUpdate(fn UpdateFunc) Option {
	return func(o *Options) {
		o.Update = fn
	}
}

// WithOrder overrides the neighbor exploration order.
func WithOrder(fn OrderFunc) Option {
	return func(o *Options) {
		o.Order = fn
	}
}

// WithScore overrides the frontier priority of suspended pulses.
func WithScore(fn ScoreFunc) Option {
	return func(o *Options) {
		o.Score = fn
	}
}

// WithPruners appends pruning rules, applied in the given order.
func WithPruners(pruners ...Pruner) Option {
	return func(o *Options) {
		o.Pruners = append(o.Pruners, pruners...)
	}
}

// WithInitialSolution warm-starts the incumbent with a known feasible
// path and its objective, tightening bound pruning immediately.
func WithInitialSolution(path []int, objective float64) Option {
	return func(o *Options) {
		o.InitialPath = path
		o.InitialObjective = objective
	}
}

// Stats reports search diagnostics accumulated during Run.
type Stats struct {
	// Pulses counts propagation steps (pruner inspections).
	Pulses int

	// Pruned counts pulses discarded by some pruner.
	Pruned int

	// Completed counts pulses that reached the target.
	Completed int

	// Suspended and Resumed count frontier queue traffic at the depth cap.
	Suspended int
	Resumed   int
}

// Result is the outcome of a finished search.
type Result struct {
	// Path is the best complete path found, as node indices.
	Path []int

	// Objective is the accumulated objective of Path.
	Objective float64

	// Stats carries the search diagnostics.
	Stats Stats
}

// NodeNames resolves the result path against g, for display.
func (r Result) NodeNames(g *core.Graph) []string {
	names := make([]string, len(r.Path))
	for i, idx := range r.Path {
		name, err := g.NodeName(idx)
		if err != nil {
			return nil
		}
		names[i] = name
	}

	return names
}
