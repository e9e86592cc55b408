package flock

import (
	"errors"
	"fmt"
	"math"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid flock config")

// Config holds the per-frame tunables of one species.
type Config struct {
	SeparationFactor   float64 `json:"separationFactor" yaml:"separationFactor"`     // weight of the push away from close neighbors
	SeparationDistance float64 `json:"separationDistance" yaml:"separationDistance"` // personal space radius (strict <)
	AlignmentFactor    float64 `json:"alignmentFactor" yaml:"alignmentFactor"`       // weight of velocity matching
	AlignmentDistance  float64 `json:"alignmentDistance" yaml:"alignmentDistance"`   // visual range (strict <)
	CohesionFactor     float64 `json:"cohesionFactor" yaml:"cohesionFactor"`         // weight of the pull to the local centroid
	EdgeFactor         float64 `json:"edgeFactor" yaml:"edgeFactor"`                 // soft wall strength

	TopSpeed    float64 `json:"topSpeed" yaml:"topSpeed"`
	BottomSpeed float64 `json:"bottomSpeed" yaml:"bottomSpeed"`

	Boundary geometry.Rect `json:"boundary" yaml:"boundary"`
	Margin   float64       `json:"margin" yaml:"margin"`
}

// DefaultConfig returns the horde tuning,
// bounded by a 1280x720 screen.
func DefaultConfig() Config {
	return Config{
		SeparationFactor:   0.005,
		SeparationDistance: 60,
		AlignmentFactor:    0.06,
		AlignmentDistance:  90,
		CohesionFactor:     0.005,
		EdgeFactor:         0.005,
		TopSpeed:           5,
		BottomSpeed:        1,
		Boundary:           geometry.NewRect(80, 1200, 80, 640),
		Margin:             50,
	}
}

// Validate checks every field and reports all violations at once.
// Each returned error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	values := []struct {
		name string
		v    float64
	}{
		{"separationFactor", c.SeparationFactor},
		{"separationDistance", c.SeparationDistance},
		{"alignmentFactor", c.AlignmentFactor},
		{"alignmentDistance", c.AlignmentDistance},
		{"cohesionFactor", c.CohesionFactor},
		{"edgeFactor", c.EdgeFactor},
		{"topSpeed", c.TopSpeed},
		{"bottomSpeed", c.BottomSpeed},
		{"boundary.left", c.Boundary.Left},
		{"boundary.right", c.Boundary.Right},
		{"boundary.top", c.Boundary.Top},
		{"boundary.bottom", c.Boundary.Bottom},
		{"margin", c.Margin},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			fail("%s must be finite, got %v", f.name, f.v)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if c.SeparationFactor < 0 {
		fail("separationFactor must be >= 0, got %v", c.SeparationFactor)
	}
	if c.AlignmentFactor < 0 {
		fail("alignmentFactor must be >= 0, got %v", c.AlignmentFactor)
	}
	if c.CohesionFactor < 0 {
		fail("cohesionFactor must be >= 0, got %v", c.CohesionFactor)
	}
	if c.EdgeFactor < 0 {
		fail("edgeFactor must be >= 0, got %v", c.EdgeFactor)
	}
	if c.SeparationDistance <= 0 {
		fail("separationDistance must be > 0, got %v", c.SeparationDistance)
	}
	if c.AlignmentDistance <= 0 {
		fail("alignmentDistance must be > 0, got %v", c.AlignmentDistance)
	}
	if c.TopSpeed <= 0 {
		fail("topSpeed must be > 0, got %v", c.TopSpeed)
	}
	if c.BottomSpeed < 0 {
		fail("bottomSpeed must be >= 0, got %v", c.BottomSpeed)
	}
	if c.BottomSpeed > c.TopSpeed {
		fail("bottomSpeed (%v) must not exceed topSpeed (%v)", c.BottomSpeed, c.TopSpeed)
	}
	if c.Margin < 0 {
		fail("margin must be >= 0, got %v", c.Margin)
	}
	if c.Boundary.Left > c.Boundary.Right {
		fail("boundary left (%v) is right of boundary right (%v)", c.Boundary.Left, c.Boundary.Right)
	}
	if c.Boundary.Top > c.Boundary.Bottom {
		fail("boundary top (%v) is below boundary bottom (%v)", c.Boundary.Top, c.Boundary.Bottom)
	}
	return errors.Join(errs...)
}
