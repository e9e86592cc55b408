package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Checkbox is a boolean toggle with its label on the right.
type Checkbox struct {
	Label string
	Value bool
	X, Y  float64
	Size  float64
}

// NewCheckbox returns a checkbox whose box has its top left corner at (x, y).
func NewCheckbox(x, y float64, label string, value bool) *Checkbox {
	return &Checkbox{Label: label, Value: value, X: x, Y: y, Size: 16}
}

// Update toggles the box on the frame the left button goes down over it.
func (c *Checkbox) Update(in Input) bool {
	if in.LeftPressed && in.Over(c.X, c.Y, c.Size, c.Size) {
		c.Value = !c.Value
		return true
	}
	return false
}

// Height is the row taken in a Panel.
func (c *Checkbox) Height() float64 { return c.Size + 9 }

func (c *Checkbox) setY(y float64) { c.Y = y }

// Draw paints the box, filled when checked, and its label.
func (c *Checkbox) Draw(screen *ebiten.Image) {
	vector.StrokeRect(screen,
		float32(c.X), float32(c.Y),
		float32(c.Size), float32(c.Size),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	if c.Value {
		vector.FillRect(screen,
			float32(c.X+2), float32(c.Y+2),
			float32(c.Size-4), float32(c.Size-4),
			color.RGBA{R: 100, G: 200, B: 100, A: 255}, true)
	}
	ebitenutil.DebugPrintAt(screen, c.Label, int(c.X+c.Size+8), int(c.Y))
}
