package ui

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input is the pointer and keyboard state of one frame. It is polled once per
// Update and handed down to the widgets, which never query ebiten themselves.
type Input struct {
	CursorX, CursorY int

	LeftDown     bool // held
	LeftPressed  bool // went down this frame
	RightPressed bool
	WheelY       float64

	Keys []ebiten.Key // went down this frame
}

// PollInput reads the current frame's input from ebiten.
func PollInput() Input {
	x, y := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	return Input{
		CursorX:      x,
		CursorY:      y,
		LeftDown:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		LeftPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		RightPressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight),
		WheelY:       wy,
		Keys:         inpututil.AppendJustPressedKeys(nil),
	}
}

// Over reports whether the cursor lies in the box, edges included.
func (in Input) Over(x, y, w, h float64) bool {
	cx, cy := float64(in.CursorX), float64(in.CursorY)
	return cx >= x && cx <= x+w && cy >= y && cy <= y+h
}

// KeyPressed reports whether k went down this frame.
func (in Input) KeyPressed(k ebiten.Key) bool {
	return slices.Contains(in.Keys, k)
}
