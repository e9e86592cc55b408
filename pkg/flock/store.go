package flock

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
)

// DefaultSize is the rendering size given to agents when none is requested.
const DefaultSize uint16 = 25

// DefaultColor is the color of a freshly appended agent, before its first step.
var DefaultColor = color.RGBA{R: 10, G: 150, B: 10, A: 255}

// ErrNonFinite is returned when an agent would be created with a NaN or infinite coordinate.
var ErrNonFinite = errors.New("non-finite agent state")

// Agent is a read-only copy of one agent, handed to renderers.
type Agent struct {
	Position geometry.Vector2D
	Velocity geometry.Vector2D
	Size     uint16
	Color    color.RGBA
}

// Store owns the dense, parallel arrays describing every agent of a population.
// Index i in each array always refers to the same agent. Agents are only ever
// appended through Append, so the four arrays keep the same length for the
// store's lifetime.
//
// The accessors return the arrays themselves: the engine stages and renderers
// may rewrite elements in place, but cannot change the number of agents.
type Store struct {
	positions  []geometry.Vector2D
	velocities []geometry.Vector2D
	sizes      []uint16
	colors     []color.RGBA
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Append adds one agent with the default color. A zero size selects DefaultSize.
func (s *Store) Append(position, velocity geometry.Vector2D, size uint16) error {
	if !position.IsFinite() {
		return fmt.Errorf("%w: position %v", ErrNonFinite, position)
	}
	if !velocity.IsFinite() {
		return fmt.Errorf("%w: velocity %v", ErrNonFinite, velocity)
	}
	if size == 0 {
		size = DefaultSize
	}
	s.positions = append(s.positions, position)
	s.velocities = append(s.velocities, velocity)
	s.sizes = append(s.sizes, size)
	s.colors = append(s.colors, DefaultColor)
	return nil
}

// Positions returns the position of every agent.
func (s *Store) Positions() []geometry.Vector2D { return s.positions }

// Velocities returns the velocity of every agent, in pixels per frame.
func (s *Store) Velocities() []geometry.Vector2D { return s.velocities }

// Sizes returns the rendering size of every agent.
func (s *Store) Sizes() []uint16 { return s.sizes }

// Colors returns the color derived for every agent by the last step.
func (s *Store) Colors() []color.RGBA { return s.colors }

// Count returns the number of agents.
func (s *Store) Count() int {
	return len(s.positions)
}

// Integrate moves every agent by its velocity: one explicit Euler step of one frame.
func (s *Store) Integrate() {
	for i := range s.positions {
		s.positions[i] = s.positions[i].Add(s.velocities[i])
	}
}

// Agent returns a copy of agent i.
func (s *Store) Agent(i int) Agent {
	return Agent{
		Position: s.positions[i],
		Velocity: s.velocities[i],
		Size:     s.sizes[i],
		Color:    s.colors[i],
	}
}

// Agents returns a copy of every agent in index order.
func (s *Store) Agents() []Agent {
	return s.AppendAgents(make([]Agent, 0, s.Count()))
}

// AppendAgents appends a copy of every agent to dst and returns the extended slice.
func (s *Store) AppendAgents(dst []Agent) []Agent {
	for i := range s.positions {
		dst = append(dst, s.Agent(i))
	}
	return dst
}
