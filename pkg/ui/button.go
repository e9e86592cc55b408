package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// debug font cell, in pixels
const (
	glyphW = 6
	glyphH = 16
)

// Button is a labelled rectangle that highlights under the cursor.
type Button struct {
	Label         string
	X, Y          float64
	Width, Height float64

	BGColor    color.RGBA
	HoverColor color.RGBA

	hovered bool
}

// NewButton returns a blue button with its label centered.
func NewButton(x, y, width, height float64, label string) *Button {
	return &Button{
		Label:      label,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		BGColor:    color.RGBA{R: 80, G: 120, B: 180, A: 255},
		HoverColor: color.RGBA{R: 100, G: 150, B: 220, A: 255},
	}
}

// Update records the hover state and reports a click on this frame.
func (b *Button) Update(in Input) bool {
	b.hovered = in.Over(b.X, b.Y, b.Width, b.Height)
	return b.hovered && in.LeftPressed
}

// Hovered reports whether the cursor was over the button at the last Update.
func (b *Button) Hovered() bool { return b.hovered }

// Draw paints the button, lighter while hovered.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := b.BGColor
	if b.hovered {
		bg = b.HoverColor
	}
	vector.FillRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), bg, true)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height),
		2, color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)

	tx := b.X + (b.Width-float64(len(b.Label)*glyphW))/2
	ty := b.Y + (b.Height-glyphH)/2
	ebitenutil.DebugPrintAt(screen, b.Label, int(tx), int(ty))
}
