package geometry

import (
	"fmt"
	"math"
)

// Rect is an axis aligned box described by its four edges, screen style:
// Top is the smallest Y and Bottom the largest.
type Rect struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// NewRect builds a Rect from its edges in (left, right, top, bottom) order.
func NewRect(left, right, top, bottom float64) Rect {
	return Rect{Left: left, Right: right, Top: top, Bottom: bottom}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.1f..%.1f]x[%.1f..%.1f]", r.Left, r.Right, r.Top, r.Bottom)
}

// Width returns Right-Left.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Center returns the middle point of the box.
func (r Rect) Center() Vector2D {
	return Vector2D{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vector2D) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Clamp returns p moved component-wise into r (inclusive). A NaN component
// has no side to be pushed to and lands on the center line.
func (r Rect) Clamp(p Vector2D) Vector2D {
	c := r.Center()
	return Vector2D{
		X: clamp(p.X, r.Left, r.Right, c.X),
		Y: clamp(p.Y, r.Top, r.Bottom, c.Y),
	}
}

func clamp(v, lo, hi, nan float64) float64 {
	if math.IsNaN(v) {
		return nan
	}
	return math.Min(math.Max(v, lo), hi)
}

// Inset shrinks the box by margin on every side. When the margin is larger
// than half a side, that side collapses onto its center line.
func (r Rect) Inset(margin float64) Rect {
	in := Rect{Left: r.Left + margin, Right: r.Right - margin, Top: r.Top + margin, Bottom: r.Bottom - margin}
	c := r.Center()
	if in.Left > in.Right {
		in.Left, in.Right = c.X, c.X
	}
	if in.Top > in.Bottom {
		in.Top, in.Bottom = c.Y, c.Y
	}
	return in
}
