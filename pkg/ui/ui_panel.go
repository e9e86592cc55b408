package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Widget is anything a Panel can stack vertically.
type Widget interface {
	Update(in Input) bool
	Draw(screen *ebiten.Image)
	Height() float64
	setY(y float64)
}

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelSpace    = 20.0
)

// Panel is a scrollable column of widgets grouped under section headers.
type Panel struct {
	Title         string
	X, Y          float64
	Width, Height float64
	ScrollOffset  float64

	BGColor     color.RGBA
	BorderColor color.RGBA

	widgets  []Widget
	sections []PanelSection

	tops    []float64 // per widget, label line included
	headers []float64 // per section
}

// PanelSection groups widgets [StartIndex, EndIndex) under a header.
type PanelSection struct {
	Title      string
	StartIndex int
	EndIndex   int
}

// NewPanel returns an empty panel covering the given screen rectangle.
func NewPanel(title string, x, y, width, height float64) *Panel {
	return &Panel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
	}
}

// AddSection opens a section: widgets added next are listed under its header.
func (p *Panel) AddSection(title string) {
	p.sections = append(p.sections, PanelSection{Title: title, StartIndex: len(p.widgets), EndIndex: len(p.widgets)})
	p.layout()
}

// EndSection closes the current section.
func (p *Panel) EndSection() {
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.widgets)
	}
}

// AddSlider appends a full-width slider to the current section.
func (p *Panel) AddSlider(label string, min, max, value float64) *Slider {
	s := NewSlider(p.X+10, 0, p.Width-20, label, min, max, value)
	p.add(s)
	return s
}

// AddCheckbox appends a checkbox to the current section.
func (p *Panel) AddCheckbox(label string, value bool) *Checkbox {
	c := NewCheckbox(p.X+10, 0, label, value)
	p.add(c)
	return c
}

func (p *Panel) add(w Widget) {
	p.widgets = append(p.widgets, w)
	if len(p.sections) > 0 {
		p.sections[len(p.sections)-1].EndIndex = len(p.widgets)
	}
	p.layout()
}

// Contains reports whether the cursor is over the panel, so that clicks
// there are not handed to the scene behind it.
func (p *Panel) Contains(in Input) bool {
	return in.Over(p.X, p.Y, p.Width, p.Height)
}

// ContentHeight is the height of the title, headers and widgets.
func (p *Panel) ContentHeight() float64 {
	h := titleHeight + float64(len(p.sections))*sectionHeight
	for _, w := range p.widgets {
		h += w.Height()
	}
	return h
}

// Update scrolls with the wheel while the cursor is over the panel, then
// updates the widgets that are scrolled into view. It reports whether any
// widget changed.
func (p *Panel) Update(in Input) bool {
	if in.WheelY != 0 && p.Contains(in) {
		p.ScrollOffset -= in.WheelY * 20
		maxScroll := max(0, p.ContentHeight()-p.Height+40)
		p.ScrollOffset = max(0, min(maxScroll, p.ScrollOffset))
		p.layout()
	}
	changed := false
	for i, w := range p.widgets {
		if !p.visible(p.tops[i], w.Height()) {
			continue
		}
		if w.Update(in) {
			changed = true
		}
	}
	return changed
}

// layout places the widgets below their headers, shifted by the scroll offset.
func (p *Panel) layout() {
	p.tops = p.tops[:0]
	p.headers = p.headers[:0]
	y := p.Y + titleHeight - p.ScrollOffset
	place := func(end int) {
		for i := len(p.tops); i < end && i < len(p.widgets); i++ {
			w := p.widgets[i]
			p.tops = append(p.tops, y)
			w.setY(y + labelSpace)
			y += w.Height()
		}
	}
	for _, s := range p.sections {
		place(s.StartIndex)
		p.headers = append(p.headers, y)
		y += sectionHeight
		place(s.EndIndex)
	}
	place(len(p.widgets))
}

// visible reports whether a row starting at y overlaps the area below the title.
func (p *Panel) visible(y, h float64) bool {
	return y+h >= p.Y+titleHeight && y <= p.Y+p.Height
}

// Draw paints the frame, then the headers and widgets in view.
func (p *Panel) Draw(screen *ebiten.Image) {
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), p.BGColor, true)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), 2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	for i, s := range p.sections {
		y := p.headers[i]
		if p.visible(y, sectionHeight) {
			vector.FillRect(screen, float32(p.X+5), float32(y), float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, s.Title, int(p.X+10), int(y+3))
		}
	}
	for i, w := range p.widgets {
		if p.visible(p.tops[i], w.Height()) {
			w.Draw(screen)
		}
	}
}
