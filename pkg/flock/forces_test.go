package flock

import (
	"math"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

func TestComputeDeltas_SingleAgentIsNeutral(t *testing.T) {
	positions := []geometry.Vector2D{{X: 12, Y: -3}}
	velocities := []geometry.Vector2D{{X: 2.5, Y: 1}}
	nb := FindNeighbors(ComputeDistances(positions), 60, 90)

	d := ComputeDeltas(positions, velocities, nb)

	if d.Separation[0] != (geometry.Vector2D{}) {
		t.Errorf("separation delta = %v; want zero", d.Separation[0])
	}
	if d.Alignment[0] != (geometry.Vector2D{}) {
		t.Errorf("alignment delta = %v; want zero", d.Alignment[0])
	}
	if d.Cohesion[0] != (geometry.Vector2D{}) {
		t.Errorf("cohesion delta = %v; want zero", d.Cohesion[0])
	}
}

func TestComputeDeltas_SeparationDominance(t *testing.T) {
	// closer than the separation distance, farther than the alignment distance
	positions := []geometry.Vector2D{{X: 0, Y: 0}, {X: 5, Y: 0}}
	velocities := []geometry.Vector2D{{X: 1, Y: 2}, {X: -3, Y: 0.5}}
	nb := FindNeighbors(ComputeDistances(positions), 10, 3)

	d := ComputeDeltas(positions, velocities, nb)

	if d.Separation[0] != (geometry.Vector2D{X: -5, Y: 0}) {
		t.Errorf("separation of agent 0 = %v; want (-5, 0)", d.Separation[0])
	}
	if d.Separation[0].Add(d.Separation[1]) != (geometry.Vector2D{}) {
		t.Errorf("separation deltas not opposite: %v and %v", d.Separation[0], d.Separation[1])
	}
	for i := range positions {
		if d.Alignment[i] != (geometry.Vector2D{}) || d.Cohesion[i] != (geometry.Vector2D{}) {
			t.Errorf("agent %d got alignment %v cohesion %v; want zero", i, d.Alignment[i], d.Cohesion[i])
		}
	}
}

func TestComputeDeltas_SeparationIsASum(t *testing.T) {
	// two identical pushes from the same side double the separation delta
	positions := []geometry.Vector2D{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 0}}
	velocities := make([]geometry.Vector2D, 3)
	nb := FindNeighbors(ComputeDistances(positions), 5, 5)

	d := ComputeDeltas(positions, velocities, nb)

	if d.Separation[0] != (geometry.Vector2D{X: -2, Y: 0}) {
		t.Errorf("separation = %v; want (-2, 0)", d.Separation[0])
	}
}

func TestComputeDeltas_EmptyMaskGuard(t *testing.T) {
	positions := []geometry.Vector2D{{X: 0, Y: 0}}
	velocities := []geometry.Vector2D{{X: 1, Y: 1}}
	nb := FindNeighbors(ComputeDistances(positions), 1, 1)
	// simulate an empty alignment set
	nb.Alignment[0].ClearAll()
	nb.AlignmentCounts[0] = 0

	d := ComputeDeltas(positions, velocities, nb)

	if !d.Alignment[0].IsFinite() || !d.Cohesion[0].IsFinite() {
		t.Fatalf("non-finite deltas: %v %v", d.Alignment[0], d.Cohesion[0])
	}
	if d.Alignment[0] != (geometry.Vector2D{}) || d.Cohesion[0] != (geometry.Vector2D{}) {
		t.Errorf("expected zero deltas for an empty set, got %v %v", d.Alignment[0], d.Cohesion[0])
	}
}

func TestApplyForces_Weights(t *testing.T) {
	velocities := []geometry.Vector2D{{X: 1, Y: 1}}
	d := &Deltas{
		Separation: []geometry.Vector2D{{X: 10, Y: 0}},
		Alignment:  []geometry.Vector2D{{X: 0, Y: 4}},
		Cohesion:   []geometry.Vector2D{{X: -2, Y: -2}},
	}
	cfg := Config{SeparationFactor: 0.5, AlignmentFactor: 0.25, CohesionFactor: 1}

	ApplyForces(velocities, d, cfg)

	want := geometry.Vector2D{X: 1 + 5 - 2, Y: 1 + 1 - 2}
	if !approxEqual(velocities[0], want) {
		t.Errorf("velocity = %v; want %v", velocities[0], want)
	}
}

func TestApplyForces_SkipsOverflowedTerm(t *testing.T) {
	velocities := []geometry.Vector2D{{X: 1, Y: 1}}
	d := &Deltas{
		Separation: []geometry.Vector2D{{X: 2, Y: 0}},
		Alignment:  []geometry.Vector2D{{X: 0, Y: 0}},
		Cohesion:   []geometry.Vector2D{{X: math.Inf(1), Y: 0}},
	}
	cfg := Config{SeparationFactor: 0.5, AlignmentFactor: 1, CohesionFactor: 0}

	ApplyForces(velocities, d, cfg)

	if velocities[0] != (geometry.Vector2D{X: 2, Y: 1}) {
		t.Errorf("velocity = %v; want (2, 1)", velocities[0])
	}
}

// approxEqual compares vectors component-wise within 1e-9.
func approxEqual(a, b geometry.Vector2D) bool {
	return math.Abs(a.X-b.X) <= 1e-9 && math.Abs(a.Y-b.Y) <= 1e-9
}
