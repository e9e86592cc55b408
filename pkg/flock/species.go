package flock

import (
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// Species is one agent population with its own color scheme and flock config.
// It exclusively owns its Store: a Species must not be stepped from two
// goroutines at once, and its agents never interact with another species.
type Species struct {
	Name string

	store  *Store
	scheme ColorScheme
	config Config

	field  NeighborField
	deltas Deltas
}

// NewSpecies returns an empty species. Both the scheme and cfg are fixed for
// its lifetime; StepWith lets a driver step with another config for one frame.
func NewSpecies(name string, scheme ColorScheme, cfg Config) *Species {
	return &Species{
		Name:   name,
		store:  NewStore(),
		scheme: scheme,
		config: cfg,
	}
}

// Store gives read/write access to the agent arrays, for renderers.
func (s *Species) Store() *Store { return s.store }

// Scheme returns the color scheme chosen at construction.
func (s *Species) Scheme() ColorScheme { return s.scheme }

// Config returns the config used by Step.
func (s *Species) Config() Config { return s.config }

// Count returns the number of agents.
func (s *Species) Count() int { return s.store.Count() }

// AddAgent appends one agent. A zero size selects DefaultSize.
func (s *Species) AddAgent(position, velocity geometry.Vector2D, size uint16) error {
	return s.store.Append(position, velocity, size)
}

// Step advances the species by one frame with its own config.
func (s *Species) Step() error {
	return s.StepWith(s.config)
}

// StepWith advances the species by one frame using cfg, which must be valid:
// an invalid cfg is reported before any agent is touched.
//
// Stages, in order: distances and neighbor sets, steering deltas, velocity
// update, position integration, colors, edge force, hard clamp, speed limits.
// When it returns, every position is inside cfg.Boundary and every speed is
// within [cfg.BottomSpeed, cfg.TopSpeed].
func (s *Species) StepWith(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("species %q: %w", s.Name, err)
	}
	st := s.store
	if st.Count() == 0 {
		return nil
	}

	_, nb := s.field.Update(st.Positions(), cfg.SeparationDistance, cfg.AlignmentDistance)
	s.deltas.compute(st.Positions(), st.Velocities(), nb)
	ApplyForces(st.Velocities(), &s.deltas, cfg)
	st.Integrate()
	s.scheme.Paint(st.Colors(), nb)

	ApplyEdgeForce(st.Positions(), st.Velocities(), cfg.Boundary, cfg.Margin, cfg.EdgeFactor)
	ClampPositions(st.Positions(), cfg.Boundary)
	LimitSpeed(st.Velocities(), cfg.BottomSpeed, cfg.TopSpeed)
	return nil
}

// SeparationCounts returns the separation set sizes computed by the last step.
func (s *Species) SeparationCounts() []int {
	return s.field.Neighbors().SeparationCounts
}

// AlignmentCounts returns the alignment set sizes computed by the last step.
func (s *Species) AlignmentCounts() []int {
	return s.field.Neighbors().AlignmentCounts
}
