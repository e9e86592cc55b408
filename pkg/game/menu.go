package game

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
)

var (
	menuBackground = color.RGBA{R: 25, G: 42, B: 86, A: 255}
	menuPanel      = color.RGBA{R: 154, G: 194, B: 221, A: 120}
	menuTitle      = color.RGBA{R: 249, G: 231, B: 159, A: 255}
)

const (
	buttonWidth  = 240
	buttonHeight = 100
	titleScale   = 8

	menuSources   = 5
	menuPerSource = 30
	menuBoidSize  = 60
)

const (
	infoDefault = "Boids (bird-oid objects) simulate the flocking of birds or fish.\n" +
		"Simple local rules create complex group dynamics.\n" +
		"Hover over the buttons for more information."
	infoLive = "Open a window with a live simulation where you can add boids\n" +
		"with the mouse and tune the flocking parameters in real time."
	infoGif = "Close the menu and render an animation of the simulation\n" +
		"with the current settings, saved as a .gif file."
	infoQuit = "Exit the application.\n" +
		"(ESC always leaves a scene and comes back to this menu.)"
)

// MenuConfig returns the tuning of the flock flying behind the menu.
func MenuConfig(width, height int) flock.Config {
	return flock.Config{
		SeparationFactor:   0.0035,
		SeparationDistance: 60,
		AlignmentFactor:    0.06,
		AlignmentDistance:  90,
		CohesionFactor:     0.0005,
		EdgeFactor:         0.0045,
		TopSpeed:           15,
		BottomSpeed:        5,
		Boundary:           geometry.NewRect(0, float64(width), 0, float64(height)),
		Margin:             250,
	}
}

type menuButton struct {
	*ui.Button
	info string
}

// Menu is the start scene: three buttons over a background flock.
type Menu struct {
	width, height int
	rng           *rand.Rand
	species       *flock.Species
	buttons       []menuButton
	info          string

	title *ebiten.Image
	batch agentBatch
}

// NewMenu builds the menu scene for a width x height window and spawns its
// background flock from seed, or from a random seed when it is 0.
func NewMenu(width, height int, seed uint64) (*Menu, error) {
	if seed == 0 {
		seed = rand.Uint64()
	}
	m := &Menu{
		width:   width,
		height:  height,
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		species: flock.NewSpecies("menu", flock.ColorScheme{Kind: flock.GreenPurple}, MenuConfig(width, height)),
		info:    infoDefault,
	}
	cfg := m.species.Config()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("menu flock: %w", err)
	}
	for i := 0; i < menuSources; i++ {
		err := m.species.Spawn(m.rng, flock.Source{
			Anchor:   flock.RandomAnchor(m.rng, cfg.Boundary, 50),
			Count:    menuPerSource,
			MaxSpeed: 2,
			Size:     menuBoidSize,
		})
		if err != nil {
			return nil, fmt.Errorf("menu flock: %w", err)
		}
	}

	colors := [][2]color.RGBA{
		{{R: 70, G: 171, B: 112, A: 255}, {R: 88, G: 214, B: 141, A: 255}},
		{{R: 106, G: 154, B: 186, A: 255}, {R: 133, G: 193, B: 233, A: 255}},
		{{R: 193, G: 118, B: 110, A: 255}, {R: 241, G: 148, B: 138, A: 255}},
	}
	labels := []string{"Live", "Gif", "Quit"}
	infos := []string{infoLive, infoGif, infoQuit}
	for i := range labels {
		cx := float64(width) * float64(i+1) / 4
		b := ui.NewButton(cx-buttonWidth/2, float64(height)/2-buttonHeight/2, buttonWidth, buttonHeight, labels[i])
		b.BGColor, b.HoverColor = colors[i][0], colors[i][1]
		m.buttons = append(m.buttons, menuButton{Button: b, info: infos[i]})
	}
	return m, nil
}

func (m *Menu) Update(in ui.Input) (Scene, error) {
	if in.KeyPressed(ebiten.KeyEscape) {
		return m, ebiten.Termination
	}
	if err := m.species.Step(); err != nil {
		return m, err
	}

	m.info = infoDefault
	for i, b := range m.buttons {
		clicked := b.Update(in)
		if b.Hovered() {
			m.info = b.info
		}
		if !clicked {
			continue
		}
		switch i {
		case 0:
			return NewLive(m.width, m.height, m.rng, m), nil
		case 1:
			return m, ErrGifRequested
		default:
			return m, ebiten.Termination
		}
	}
	return m, nil
}

func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(menuBackground)
	m.batch.drawStore(screen, m.species.Store())

	w, h := float32(m.width), float32(m.height)
	vector.FillRect(screen, w/10, h/10, 8*w/10, 8*h/10, menuPanel, false)
	m.drawTitle(screen)
	for _, b := range m.buttons {
		b.Draw(screen)
	}

	bx, by, bw, bh := w/6, h/2+buttonHeight, 2*w/3, float32(buttonHeight)
	vector.FillRect(screen, bx, by, bw, bh, menuPanel, false)
	lines := strings.Split(m.info, "\n")
	ty := int(by+bh/2) - len(lines)*16/2
	for i, line := range lines {
		tx := int(bx+bw/2) - len(line)*6/2
		ebitenutil.DebugPrintAt(screen, line, tx, ty+i*16)
	}
}

// drawTitle scales the debug font up, it is the only font the window uses.
func (m *Menu) drawTitle(screen *ebiten.Image) {
	const title = "Boids"
	if m.title == nil {
		m.title = ebiten.NewImage(len(title)*6, 16)
		ebitenutil.DebugPrint(m.title, title)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(titleScale, titleScale)
	tw := float64(m.title.Bounds().Dx() * titleScale)
	op.GeoM.Translate(float64(m.width)/2-tw/2, float64(m.height)/6)
	op.ColorScale.ScaleWithColor(menuTitle)
	screen.DrawImage(m.title, op)
}
