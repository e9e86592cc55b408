package export

import (
	"image/color"
	"testing"

	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	navy = color.RGBA{B: 128, A: 255}
	red  = color.RGBA{R: 255, A: 255}
)

func oneAgent(t *testing.T, pos, vel geometry.Vector2D) *flock.Store {
	t.Helper()
	st := flock.NewStore()
	require.NoError(t, st.Append(pos, vel, 20))
	st.Colors()[0] = red
	return st
}

// assertRed accepts a pixel fully covered by a red agent, up to rasterizer rounding.
func assertRed(t *testing.T, c color.RGBA, what string) {
	t.Helper()
	assert.GreaterOrEqual(t, c.R, uint8(250), "%s: %v", what, c)
	assert.LessOrEqual(t, c.B, uint8(5), "%s: %v", what, c)
}

func TestCanvas_ClearFillsBackground(t *testing.T) {
	c := NewCanvas(8, 4, navy)
	c.Clear()
	img := c.Image()
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			assert.Equal(t, navy, img.RGBAAt(x, y))
		}
	}
}

func TestCanvas_AgentFacesItsVelocity(t *testing.T) {
	tests := []struct {
		name         string
		vel          geometry.Vector2D
		ahead, aside [2]int
	}{
		{"facing right", geometry.Vector2D{X: 3}, [2]int{56, 50}, [2]int{50, 56}},
		{"facing down", geometry.Vector2D{Y: 3}, [2]int{50, 56}, [2]int{56, 50}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(100, 100, navy)
			c.Clear()
			c.DrawStore(oneAgent(t, geometry.Vector2D{X: 50, Y: 50}, tt.vel))
			img := c.Image()

			assertRed(t, img.RGBAAt(50, 50), "body")
			ahead := img.RGBAAt(tt.ahead[0], tt.ahead[1])
			assert.Greater(t, ahead.R, uint8(128), "nose pixel %v", ahead)
			assert.Equal(t, navy, img.RGBAAt(tt.aside[0], tt.aside[1]), "beside the body")
			assert.Equal(t, navy, img.RGBAAt(0, 0))
		})
	}
}

func TestCanvas_ClipsAgentsOnTheEdge(t *testing.T) {
	c := NewCanvas(30, 30, navy)
	c.Clear()
	assert.NotPanics(t, func() {
		c.DrawStore(oneAgent(t, geometry.Vector2D{X: 0, Y: 29.5}, geometry.Vector2D{X: -1, Y: 1}))
	})
	assertRed(t, c.Image().RGBAAt(0, 29), "clipped body")
}

func TestBoidShape(t *testing.T) {
	shape := BoidShape(40)
	assert.Equal(t, geometry.Vector2D{X: 20}, shape[0], "nose")
	assert.Equal(t, geometry.Vector2D{X: -10}, shape[2], "notch")
	assert.Equal(t, -shape[1].Y, shape[3].Y, "wings are symmetric")
	assert.Equal(t, shape[1].X, shape[3].X, "wings are level")
}
