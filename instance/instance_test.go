package instance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pulsekit/pulsekit/instance"
	"github.com/pulsekit/pulsekit/pulse"
)

const corridorYAML = `
name: corridor
source: s
target: e
constants:
  deadline: 10
  alpha: 0.99
nodes: ["1", "2", "3", "4", "5", s, e]
arcs:
  - {from: s, to: "1", attributes: {cost: 2}, random: {time: {mean: 2, variance: 3}}}
  - {from: "1", to: e, attributes: {cost: 3}, random: {time: {mean: 2, variance: 0.5}}}
  - {from: s, to: "2", attributes: {cost: 3}, random: {time: {mean: 2, variance: 1}}}
  - {from: "2", to: e, attributes: {cost: 5}, random: {time: {mean: 9, variance: 1}}}
  - {from: s, to: "3", attributes: {cost: 2}, random: {time: {mean: 1, variance: 0.5}}}
  - {from: "3", to: e, attributes: {cost: 4}, random: {time: {mean: 1, variance: 0.5}}}
  - {from: s, to: "4", attributes: {cost: 1}, random: {time: {mean: 2, variance: 3}}}
  - {from: "4", to: "5", attributes: {cost: 1}, random: {time: {mean: 3, variance: 3}}}
  - {from: "5", to: e, attributes: {cost: 1}, random: {time: {mean: 2, variance: 2}}}
`

func TestParse_Valid(t *testing.T) {
	in, err := instance.Parse([]byte(corridorYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if in.Name != "corridor" {
		t.Errorf("name: got %q", in.Name)
	}
	if in.Source != "s" || in.Target != "e" {
		t.Errorf("endpoints: got %q→%q", in.Source, in.Target)
	}
	if got := in.Constants["deadline"]; got != 10 {
		t.Errorf("constants[deadline]: got %g", got)
	}
	if len(in.Arcs) != 9 {
		t.Fatalf("arcs: got %d, want 9", len(in.Arcs))
	}
}

func TestParse_MissingSource(t *testing.T) {
	_, err := instance.Parse([]byte("target: e\narcs:\n  - {from: a, to: e, attributes: {cost: 1}}\n"))
	if !errors.Is(err, instance.ErrNoSource) {
		t.Fatalf("expected ErrNoSource, got %v", err)
	}
}

func TestParse_MissingTarget(t *testing.T) {
	_, err := instance.Parse([]byte("source: a\narcs:\n  - {from: a, to: e, attributes: {cost: 1}}\n"))
	if !errors.Is(err, instance.ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
}

func TestParse_NoArcs(t *testing.T) {
	_, err := instance.Parse([]byte("source: a\ntarget: e\n"))
	if !errors.Is(err, instance.ErrNoArcs) {
		t.Fatalf("expected ErrNoArcs, got %v", err)
	}
}

func TestParse_MalformedArc(t *testing.T) {
	_, err := instance.Parse([]byte(`
source: a
target: e
arcs:
  - {from: a, attributes: {cost: 1}}
`))
	if !errors.Is(err, instance.ErrBadArc) {
		t.Fatalf("expected ErrBadArc, got %v", err)
	}

	_, err = instance.Parse([]byte(`
source: a
target: e
arcs:
  - {from: a, to: a, attributes: {cost: 1}}
`))
	if !errors.Is(err, instance.ErrBadArc) {
		t.Fatalf("expected ErrBadArc for self-loop, got %v", err)
	}
}

func TestParse_RaggedAttributes(t *testing.T) {
	_, err := instance.Parse([]byte(`
source: a
target: e
arcs:
  - {from: a, to: b, attributes: {cost: 1, toll: 2}}
  - {from: b, to: e, attributes: {cost: 1}}
`))
	if !errors.Is(err, instance.ErrRaggedAttributes) {
		t.Fatalf("expected ErrRaggedAttributes, got %v", err)
	}

	_, err = instance.Parse([]byte(`
source: a
target: e
arcs:
  - {from: a, to: b, attributes: {cost: 1}, random: {time: {mean: 1, variance: 1}}}
  - {from: b, to: e, attributes: {cost: 1}, random: {time: {mean: 1}}}
`))
	if !errors.Is(err, instance.ErrRaggedAttributes) {
		t.Fatalf("expected ErrRaggedAttributes for random moments, got %v", err)
	}
}

func TestParse_BadYAML(t *testing.T) {
	_, err := instance.Parse([]byte("arcs: [not: {valid"))
	if err == nil {
		t.Fatal("expected parse error, got nil")
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corridor.yaml")
	if err := os.WriteFile(path, []byte(corridorYAML), 0o600); err != nil {
		t.Fatalf("write temp instance: %v", err)
	}

	in, err := instance.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if in.Name != "corridor" {
		t.Errorf("name: got %q", in.Name)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := instance.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestBuild_PinsNodeOrder(t *testing.T) {
	in, err := instance.Parse([]byte(corridorYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	g, source, target, err := in.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if g.NodeCount() != 7 {
		t.Errorf("nodes: got %d, want 7", g.NodeCount())
	}
	if g.ArcCount() != 9 {
		t.Errorf("arcs: got %d, want 9", g.ArcCount())
	}
	// nodes: lists "1".."5" first, then s and e.
	if source != 5 || target != 6 {
		t.Errorf("endpoints: got %d→%d, want 5→6", source, target)
	}
}

func TestBuild_UnknownEndpoint(t *testing.T) {
	in, err := instance.Parse([]byte(`
source: ghost
target: e
arcs:
  - {from: a, to: e, attributes: {cost: 1}}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, _, _, err = in.Build(); !errors.Is(err, instance.ErrUnknownEndpoint) {
		t.Fatalf("expected ErrUnknownEndpoint, got %v", err)
	}
}

func TestWeights_Schema(t *testing.T) {
	in, err := instance.Parse([]byte(corridorYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	det, rnd := in.Weights()
	if len(det) != 1 || det[0] != "cost" {
		t.Errorf("det weights: got %v", det)
	}
	moments, ok := rnd["time"]
	if !ok || len(moments) != 2 || moments[0] != "mean" || moments[1] != "variance" {
		t.Errorf("random weights: got %v", rnd)
	}
}

// An instance round-trips into a solved query: load, build, run the
// engine with the declared schema and the document's constants.
func TestInstance_DrivesEngine(t *testing.T) {
	in, err := instance.Parse([]byte(corridorYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, source, target, err := in.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	det, rnd := in.Weights()
	res, err := pulse.Solve(g, source, target,
		pulse.WithDeterministicWeights(det...),
		pulse.WithRandomWeights(rnd),
		pulse.WithConstants(in.Constants),
		pulse.WithPreprocessing(det, rnd),
		pulse.WithPruners(
			pulse.NewChanceConstraintPruner("time", "mean", "variance",
				in.Constants["deadline"], in.Constants["alpha"]),
			pulse.NewBoundPruner("cost"),
		),
	)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	want := []string{"s", "1", "e"}
	got := res.NodeNames(g)
	if len(got) != len(want) {
		t.Fatalf("path: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("path: got %v, want %v", got, want)
		}
	}
	if res.Objective != 5 {
		t.Errorf("objective: got %g, want 5", res.Objective)
	}
}
