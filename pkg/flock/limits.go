package flock

import "github.com/lao-tseu-is-alive/go-boids/pkg/geometry"

// ApplyEdgeForce nudges agents that came within margin of a boundary edge back
// toward the interior. The nudge is edgeFactor times the penetration depth into
// the margin band, edges are independent and add up in corners. Only velocities
// change, positions are left for the next integration.
func ApplyEdgeForce(positions, velocities []geometry.Vector2D, bounds geometry.Rect, margin, edgeFactor float64) {
	left, right := bounds.Left+margin, bounds.Right-margin
	top, bottom := bounds.Top+margin, bounds.Bottom-margin
	for i, p := range positions {
		v := velocities[i]
		if p.X < left {
			v.X += edgeFactor * (left - p.X)
		}
		if p.X > right {
			v.X -= edgeFactor * (p.X - right)
		}
		if p.Y < top {
			v.Y += edgeFactor * (top - p.Y)
		}
		if p.Y > bottom {
			v.Y -= edgeFactor * (p.Y - bottom)
		}
		velocities[i] = v
	}
}

// ClampPositions moves every position component-wise into bounds, edges included.
func ClampPositions(positions []geometry.Vector2D, bounds geometry.Rect) {
	for i, p := range positions {
		positions[i] = bounds.Clamp(p)
	}
}

// DefaultHeading is the direction given to an agent that must be sped up to
// a positive bottom speed while standing still.
var DefaultHeading = geometry.Vector2D{X: 1, Y: 0}

// LimitSpeed rescales every velocity into [bottom, top].
//
// A velocity whose length is zero, or underflows to zero, has no direction to
// scale; when bottom > 0 it is replaced by DefaultHeading*bottom. A non-finite
// velocity is reset the same way.
func LimitSpeed(velocities []geometry.Vector2D, bottom, top float64) {
	for i, v := range velocities {
		if !v.IsFinite() {
			velocities[i] = DefaultHeading.Mul(bottom)
			continue
		}
		speed := v.Len()
		switch {
		case speed > top:
			velocities[i] = v.WithLen(top)
		case speed < bottom && speed == 0:
			velocities[i] = DefaultHeading.Mul(bottom)
		case speed < bottom:
			velocities[i] = v.WithLen(bottom)
		}
	}
}
