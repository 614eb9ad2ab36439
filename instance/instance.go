package instance

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pulsekit/pulsekit/core"
)

// Parse decodes and validates a YAML instance document.
func Parse(data []byte) (*Instance, error) {
	var in Instance
	if err := yaml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("instance: parse yaml: %w", err)
	}
	if err := validate(&in); err != nil {
		return nil, err
	}

	return &in, nil
}

// Load reads and parses the YAML instance file at path.
func Load(path string) (*Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("instance: read file: %w", err)
	}

	return Parse(data)
}

// validate checks required fields and the uniform attribute schema.
func validate(in *Instance) error {
	if in.Source == "" {
		return ErrNoSource
	}
	if in.Target == "" {
		return ErrNoTarget
	}
	if len(in.Arcs) == 0 {
		return ErrNoArcs
	}

	det, rnd := schemaOf(in.Arcs[0])
	for i, a := range in.Arcs {
		if a.From == "" || a.To == "" {
			return fmt.Errorf("%w: arcs[%d] needs both from and to", ErrBadArc, i)
		}
		if a.From == a.To {
			return fmt.Errorf("%w: arcs[%d] is a self-loop on %q", ErrBadArc, i, a.From)
		}
		gotDet, gotRnd := schemaOf(a)
		if gotDet != det || gotRnd != rnd {
			return fmt.Errorf("%w: arcs[%d] %s→%s", ErrRaggedAttributes, i, a.From, a.To)
		}
	}

	return nil
}

// schemaOf flattens an arc's attribute keys into comparable strings.
func schemaOf(a ArcSpec) (det, rnd string) {
	dk := make([]string, 0, len(a.Attributes))
	for k := range a.Attributes {
		dk = append(dk, k)
	}
	sort.Strings(dk)

	rvs := make([]string, 0, len(a.Random))
	for rv := range a.Random {
		rvs = append(rvs, rv)
	}
	sort.Strings(rvs)
	rk := make([]string, 0, len(rvs))
	for _, rv := range rvs {
		moments := make([]string, 0, len(a.Random[rv]))
		for m := range a.Random[rv] {
			moments = append(moments, m)
		}
		sort.Strings(moments)
		rk = append(rk, fmt.Sprintf("%s:%v", rv, moments))
	}

	return fmt.Sprintf("%v", dk), fmt.Sprintf("%v", rk)
}

// Build materializes the instance into a graph and resolves the query
// endpoints to node indices. Nodes listed under nodes: get the first
// indices, in order; remaining endpoints are registered as arcs mention
// them.
func (in *Instance) Build() (g *core.Graph, source, target int, err error) {
	g = core.NewGraph(core.WithNodeCapacity(len(in.Nodes) + 2*len(in.Arcs)))
	for _, name := range in.Nodes {
		g.EnsureNode(name)
	}
	for i, a := range in.Arcs {
		if _, _, err = g.AddArc(a.From, a.To, a.Attributes, a.Random); err != nil {
			return nil, 0, 0, fmt.Errorf("instance: arcs[%d]: %w", i, err)
		}
	}

	source, ok := g.NodeIndex(in.Source)
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: source %q", ErrUnknownEndpoint, in.Source)
	}
	target, ok = g.NodeIndex(in.Target)
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: target %q", ErrUnknownEndpoint, in.Target)
	}

	return g, source, target, nil
}

// Weights returns the instance's attribute schema in the shape the
// engine options expect: the sorted deterministic keys and the random
// moments per variable, taken from the first arc (validation guarantees
// uniformity).
func (in *Instance) Weights() (det []string, rnd map[string][]string) {
	if len(in.Arcs) == 0 {
		return nil, nil
	}
	first := in.Arcs[0]

	det = make([]string, 0, len(first.Attributes))
	for k := range first.Attributes {
		det = append(det, k)
	}
	sort.Strings(det)

	rnd = make(map[string][]string, len(first.Random))
	for rv, moments := range first.Random {
		keys := make([]string, 0, len(moments))
		for m := range moments {
			keys = append(keys, m)
		}
		sort.Strings(keys)
		rnd[rv] = keys
	}

	return det, rnd
}
