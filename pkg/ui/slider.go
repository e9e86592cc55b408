package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider edits a float in [Min, Max] by dragging along its bar.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider returns a slider whose bar starts at (x, y), with value clamped
// to [min, max].
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	s := &Slider{Label: label, Min: min, Max: max, X: x, Y: y, W: width, H: 12}
	s.Set(value)
	return s
}

// Set stores v clamped to [Min, Max].
func (s *Slider) Set(v float64) {
	s.Value = max(s.Min, min(s.Max, v))
}

// Ratio is the position of Value along the bar, in [0, 1].
func (s *Slider) Ratio() float64 {
	if s.Max == s.Min {
		return 0
	}
	return (s.Value - s.Min) / (s.Max - s.Min)
}

// Update follows the cursor while the left button is held over the bar and
// reports whether the value changed.
func (s *Slider) Update(in Input) bool {
	if !in.LeftDown || !in.Over(s.X, s.Y, s.W, s.H) || s.W <= 0 {
		return false
	}
	old := s.Value
	p := (float64(in.CursorX) - s.X) / s.W
	s.Set(s.Min + p*(s.Max-s.Min))
	return s.Value != old
}

// Text is the label with the current value.
func (s *Slider) Text() string {
	return fmt.Sprintf("%s: %.4g", s.Label, s.Value)
}

// Height is the row taken in a Panel: the bar plus its label line.
func (s *Slider) Height() float64 { return s.H + 25 }

func (s *Slider) setY(y float64) { s.Y = y }

// Draw paints the label above the bar and the filled part of the bar.
func (s *Slider) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, s.Text(), int(s.X), int(s.Y)-16)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*s.Ratio()), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
