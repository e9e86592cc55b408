package simulation

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// ErrInvalidSettings is wrapped by every schema or consistency error.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings describe one rendered animation: the canvas and its timing, plus
// one entry per species.
type Settings struct {
	FPS           int    `json:"fps" yaml:"fps"`
	LengthSeconds int    `json:"lengthSeconds" yaml:"lengthSeconds"`
	Width         int    `json:"width" yaml:"width"`
	Height        int    `json:"height" yaml:"height"`
	Background    string `json:"background" yaml:"background"` // color name, "R G B" or #rrggbb
	Seed          uint64 `json:"seed" yaml:"seed"`             // 0 picks a random seed
	OutputDir     string `json:"outputDir" yaml:"outputDir"`
	MaxParallel   int    `json:"maxParallel" yaml:"maxParallel"`

	Species []SpeciesSettings `json:"species" yaml:"species"`
}

// SpeciesSettings describe how one species is spawned and how it flocks.
type SpeciesSettings struct {
	Name           string `json:"name,omitempty" yaml:"name,omitempty"`
	Sources        int    `json:"sources" yaml:"sources"`
	BoidsPerSource int    `json:"boidsPerSource" yaml:"boidsPerSource"`
	BoidSize       uint16 `json:"boidSize" yaml:"boidSize"`

	MinSpeed float64 `json:"minSpeed" yaml:"minSpeed"`
	MaxSpeed float64 `json:"maxSpeed" yaml:"maxSpeed"`

	SeparationFactor   float64 `json:"separationFactor" yaml:"separationFactor"`
	SeparationDistance float64 `json:"separationDistance" yaml:"separationDistance"`
	AlignmentFactor    float64 `json:"alignmentFactor" yaml:"alignmentFactor"`
	AlignmentDistance  float64 `json:"alignmentDistance" yaml:"alignmentDistance"`
	CohesionFactor     float64 `json:"cohesionFactor" yaml:"cohesionFactor"`
	EdgeFactor         float64 `json:"edgeFactor" yaml:"edgeFactor"`
	EdgeMargin         float64 `json:"edgeMargin" yaml:"edgeMargin"`

	Color flock.ColorScheme `json:"color" yaml:"color"`
}

// DefaultSettings is a three second 1280x720 animation at 24 fps of one
// DefaultSpecies flock on black, written to ./Animations.
func DefaultSettings() Settings {
	return Settings{
		FPS:           24,
		LengthSeconds: 3,
		Width:         1280,
		Height:        720,
		Background:    "black",
		OutputDir:     "Animations",
		Species:       []SpeciesSettings{DefaultSpecies()},
	}
}

// DefaultSpecies is five sources of ten boids with the stock flocking weights.
func DefaultSpecies() SpeciesSettings {
	return SpeciesSettings{
		Sources:            5,
		BoidsPerSource:     10,
		BoidSize:           flock.DefaultSize,
		MinSpeed:           1,
		MaxSpeed:           5,
		SeparationFactor:   0.005,
		SeparationDistance: 60,
		AlignmentFactor:    0.06,
		AlignmentDistance:  90,
		CohesionFactor:     0.005,
		EdgeFactor:         0.005,
		EdgeMargin:         100,
	}
}

// UnmarshalJSON fills the fields missing from data with DefaultSpecies values.
func (s *SpeciesSettings) UnmarshalJSON(data []byte) error {
	type plain SpeciesSettings
	p := plain(DefaultSpecies())
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = SpeciesSettings(p)
	return nil
}

// Frames is the number of frames of the animation.
func (s Settings) Frames() int {
	return s.FPS * s.LengthSeconds
}

// Boundary is the whole canvas.
func (s Settings) Boundary() geometry.Rect {
	return geometry.NewRect(0, float64(s.Width), 0, float64(s.Height))
}

// TotalBoids sums the population of every species.
func (s Settings) TotalBoids() int {
	total := 0
	for _, sp := range s.Species {
		total += sp.Boids()
	}
	return total
}

// Boids is the population spawned for this species.
func (s SpeciesSettings) Boids() int {
	return s.Sources * s.BoidsPerSource
}

// FlockConfig converts the species tuning into an engine config on boundary.
func (s SpeciesSettings) FlockConfig(boundary geometry.Rect) flock.Config {
	return flock.Config{
		SeparationFactor:   s.SeparationFactor,
		SeparationDistance: s.SeparationDistance,
		AlignmentFactor:    s.AlignmentFactor,
		AlignmentDistance:  s.AlignmentDistance,
		CohesionFactor:     s.CohesionFactor,
		EdgeFactor:         s.EdgeFactor,
		TopSpeed:           s.MaxSpeed,
		BottomSpeed:        s.MinSpeed,
		Boundary:           boundary,
		Margin:             s.EdgeMargin,
	}
}

// Validate checks what the schema cannot express: speed ordering and the
// engine config of every species.
func (s Settings) Validate() error {
	var errs []error
	if s.FPS < 1 || s.LengthSeconds < 1 {
		errs = append(errs, fmt.Errorf("%w: fps and lengthSeconds must be >= 1", ErrInvalidSettings))
	}
	if len(s.Species) == 0 {
		errs = append(errs, fmt.Errorf("%w: at least one species is required", ErrInvalidSettings))
	}
	for i, sp := range s.Species {
		if sp.Sources < 1 || sp.BoidsPerSource < 1 {
			errs = append(errs, fmt.Errorf("%w: species %d: sources and boidsPerSource must be >= 1", ErrInvalidSettings, i+1))
		}
		if err := sp.FlockConfig(s.Boundary()).Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: species %d: %w", ErrInvalidSettings, i+1, err))
		}
	}
	return errors.Join(errs...)
}
