package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
)

var (
	liveBackground = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	liveDot        = color.RGBA{R: 150, G: 10, B: 10, A: 255}
	liveMargin     = color.RGBA{R: 200, G: 200, B: 60, A: 255}
)

const (
	dotSpacing = 40
	dotRadius  = 15
	maxBurst   = 20
)

// Live is the sandbox scene: clicks add boids, the panel tunes the flock.
type Live struct {
	width, height int
	rng           *rand.Rand
	back          Scene
	species       *flock.Species
	boundary      geometry.Rect

	panel     *ui.Panel
	settings  *ui.Button
	showPanel bool

	separationFactor   *ui.Slider
	separationDistance *ui.Slider
	alignmentFactor    *ui.Slider
	alignmentDistance  *ui.Slider
	cohesionFactor     *ui.Slider
	edgeFactor         *ui.Slider
	topSpeed           *ui.Slider
	bottomSpeed        *ui.Slider
	margin             *ui.Slider
	showMargin         *ui.Checkbox

	stepErr    error
	background *ebiten.Image
	batch      agentBatch
}

// NewLive returns an empty live scene; ESC goes back to the back scene.
func NewLive(width, height int, rng *rand.Rand, back Scene) *Live {
	w, h := float64(width), float64(height)
	l := &Live{
		width:    width,
		height:   height,
		rng:      rng,
		back:     back,
		species:  flock.NewSpecies("live", flock.ColorScheme{Kind: flock.GreenPurple}, flock.DefaultConfig()),
		boundary: geometry.NewRect(dotSpacing, w-dotSpacing, dotSpacing, h-dotSpacing),
		settings: ui.NewButton(w-150, 10, 140, 30, "Settings (S)"),
		panel:    ui.NewPanel("Flock settings", w-300, 50, 290, h-60),
	}

	l.panel.AddSection("Separation")
	l.separationFactor = l.panel.AddSlider("Factor", 0, 0.2, 0.02)
	l.separationDistance = l.panel.AddSlider("Distance", 10, 200, 20)
	l.panel.EndSection()

	l.panel.AddSection("Alignment & cohesion")
	l.alignmentFactor = l.panel.AddSlider("Alignment factor", 0, 0.5, 0.05)
	l.alignmentDistance = l.panel.AddSlider("Alignment distance", 10, 300, 100)
	l.cohesionFactor = l.panel.AddSlider("Cohesion factor", 0, 0.02, 0.002)
	l.panel.EndSection()

	l.panel.AddSection("Speed")
	l.topSpeed = l.panel.AddSlider("Top speed", 1, 30, 10)
	l.bottomSpeed = l.panel.AddSlider("Bottom speed", 0, 10, 1)
	l.panel.EndSection()

	l.panel.AddSection("Edges")
	l.edgeFactor = l.panel.AddSlider("Edge factor", 0, 0.1, 0.01)
	l.margin = l.panel.AddSlider("Margin", 0, 300, 100)
	l.showMargin = l.panel.AddCheckbox("Show margin", false)
	l.panel.EndSection()
	return l
}

// Config reads the sliders. A bottom speed above the top speed is lowered
// to it, so every slider combination steps.
func (l *Live) Config() flock.Config {
	top := l.topSpeed.Value
	return flock.Config{
		SeparationFactor:   l.separationFactor.Value,
		SeparationDistance: l.separationDistance.Value,
		AlignmentFactor:    l.alignmentFactor.Value,
		AlignmentDistance:  l.alignmentDistance.Value,
		CohesionFactor:     l.cohesionFactor.Value,
		EdgeFactor:         l.edgeFactor.Value,
		TopSpeed:           top,
		BottomSpeed:        min(l.bottomSpeed.Value, top),
		Boundary:           l.boundary,
		Margin:             l.margin.Value,
	}
}

// Species exposes the live flock.
func (l *Live) Species() *flock.Species { return l.species }

func (l *Live) Update(in ui.Input) (Scene, error) {
	if in.KeyPressed(ebiten.KeyEscape) {
		return l.back, nil
	}
	if l.settings.Update(in) || in.KeyPressed(ebiten.KeyS) {
		l.showPanel = !l.showPanel
	}
	overUI := l.settings.Hovered()
	if l.showPanel {
		l.panel.Update(in)
		overUI = overUI || l.panel.Contains(in)
	}

	cfg := l.Config()
	if in.LeftPressed && !overUI {
		p := geometry.NewVector(float64(in.CursorX), float64(in.CursorY))
		if err := l.spawnAt(p, cfg.TopSpeed); err != nil {
			return l, err
		}
	}
	// right click is reserved for obstacles

	l.stepErr = l.species.StepWith(cfg)
	return l, nil
}

// spawnAt drops a burst of 1 to 20 boids at p.
func (l *Live) spawnAt(p geometry.Vector2D, maxSpeed float64) error {
	src := flock.Source{Anchor: p, Count: 1 + l.rng.IntN(maxBurst), MaxSpeed: maxSpeed}
	return l.species.Spawn(l.rng, src)
}

func (l *Live) Draw(screen *ebiten.Image) {
	if l.background == nil {
		l.background = l.renderBackground()
	}
	screen.DrawImage(l.background, nil)

	if l.showMargin.Value {
		r := l.boundary.Inset(l.margin.Value)
		vector.StrokeRect(screen, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), 1, liveMargin, false)
	}
	l.batch.drawStore(screen, l.species.Store())

	msg := fmt.Sprintf("Boids: %d\nFPS: %.0f\nClick to add boids, ESC for the menu", l.species.Count(), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
	if l.stepErr != nil {
		ebitenutil.DebugPrintAt(screen, l.stepErr.Error(), 10, l.height-30)
	}

	l.settings.Draw(screen)
	if l.showPanel {
		l.panel.Draw(screen)
	}
}

// renderBackground paints the dark floor and the row of red dots around it.
func (l *Live) renderBackground() *ebiten.Image {
	img := ebiten.NewImage(l.width, l.height)
	img.Fill(liveBackground)
	half := float32(dotSpacing / 2)
	w, h := float32(l.width), float32(l.height)
	for x := half; x < w; x += dotSpacing {
		vector.FillCircle(img, x, half, dotRadius, liveDot, true)
		vector.FillCircle(img, x, h-half, dotRadius, liveDot, true)
	}
	for y := half + dotSpacing; y < h-dotSpacing; y += dotSpacing {
		vector.FillCircle(img, half, y, dotRadius, liveDot, true)
		vector.FillCircle(img, w-half, y, dotRadius, liveDot, true)
	}
	return img
}
