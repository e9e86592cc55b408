package simulation

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	golog "github.com/tochemey/goakt/v3/log"
)

// BackgroundColor parses Background, falling back to black with a warning.
func (s Settings) BackgroundColor(logger golog.Logger) color.RGBA {
	c, err := ParseColor(s.Background)
	if err != nil {
		logger.Warnf("background %v, using black", err)
		return color.RGBA{A: 255}
	}
	return c
}

// NewRand returns the generator seeded by Seed, or a randomly seeded one when Seed is 0.
func (s Settings) NewRand() *rand.Rand {
	seed := s.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Build creates one species per entry, each populated by its source bursts.
// Anchors are drawn inside the canvas shrunk by the species edge margin.
func (s Settings) Build(rng *rand.Rand) (*flock.Simulation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	sim := flock.NewSimulation()
	sim.MaxParallel = s.MaxParallel
	bounds := s.Boundary()
	for i, sp := range s.Species {
		name := sp.Name
		if name == "" {
			name = fmt.Sprintf("species-%d", i+1)
		}
		species := flock.NewSpecies(name, sp.Color, sp.FlockConfig(bounds))
		for k := 0; k < sp.Sources; k++ {
			src := flock.Source{
				Anchor:   flock.RandomAnchor(rng, bounds, sp.EdgeMargin),
				Count:    sp.BoidsPerSource,
				MaxSpeed: sp.MaxSpeed,
				Size:     sp.BoidSize,
			}
			if err := species.Spawn(rng, src); err != nil {
				return nil, fmt.Errorf("spawning %s: %w", name, err)
			}
		}
		sim.Add(species)
	}
	return sim, nil
}
