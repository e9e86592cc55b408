package flock

import (
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// Source describes a spawn burst: Count agents created at the same Anchor,
// each with its own random velocity whose components lie in [-MaxSpeed, MaxSpeed).
type Source struct {
	Anchor   geometry.Vector2D
	Count    int
	MaxSpeed float64
	Size     uint16
}

// RandomAnchor picks a point uniformly inside bounds shrunk by margin.
func RandomAnchor(rng *rand.Rand, bounds geometry.Rect, margin float64) geometry.Vector2D {
	area := bounds.Inset(margin)
	return geometry.Vector2D{
		X: area.Left + rng.Float64()*area.Width(),
		Y: area.Top + rng.Float64()*area.Height(),
	}
}

// RandomVelocity returns a velocity whose components are uniform in [-maxSpeed, maxSpeed).
func RandomVelocity(rng *rand.Rand, maxSpeed float64) geometry.Vector2D {
	return geometry.Vector2D{
		X: (rng.Float64()*2 - 1) * maxSpeed,
		Y: (rng.Float64()*2 - 1) * maxSpeed,
	}
}

// Spawn appends the agents of src to the species.
func (s *Species) Spawn(rng *rand.Rand, src Source) error {
	for i := 0; i < src.Count; i++ {
		if err := s.AddAgent(src.Anchor, RandomVelocity(rng, src.MaxSpeed), src.Size); err != nil {
			return err
		}
	}
	return nil
}
