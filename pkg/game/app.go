// Package game runs the interactive window: a main menu with a background
// flock and a live scene where boids are spawned with the mouse.
package game

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-boids/pkg/ui"
	golog "github.com/tochemey/goakt/v3/log"
)

// ErrGifRequested is returned by a scene when the user asked for a GIF export.
var ErrGifRequested = errors.New("gif export requested")

// Choice is what the user picked before the window closed.
type Choice int

const (
	ChoiceQuit Choice = iota
	ChoiceGif
)

// Scene is one screen of the application. Update returns the scene to show
// next, which is usually the receiver itself.
type Scene interface {
	Update(in ui.Input) (Scene, error)
	Draw(screen *ebiten.Image)
}

// Options sizes the window and picks the first scene.
type Options struct {
	Width, Height int
	Fullscreen    bool
	StartLive     bool
	Seed          uint64
}

// App implements ebiten.Game by delegating to the current scene.
type App struct {
	width, height int
	scene         Scene
	choice        Choice
	logger        golog.Logger
}

// NewApp builds the first scene named by opts. The menu is always built
// since the live scene returns to it.
func NewApp(opts Options, logger golog.Logger) (*App, error) {
	a := &App{width: opts.Width, height: opts.Height, logger: logger}
	menu, err := NewMenu(opts.Width, opts.Height, opts.Seed)
	if err != nil {
		return nil, err
	}
	if opts.StartLive {
		a.scene = NewLive(opts.Width, opts.Height, menu.rng, menu)
	} else {
		a.scene = menu
	}
	return a, nil
}

// Choice reports how the window was closed.
func (a *App) Choice() Choice { return a.choice }

func (a *App) Update() error {
	next, err := a.scene.Update(ui.PollInput())
	switch {
	case errors.Is(err, ErrGifRequested):
		a.logger.Info("gif export requested from the menu")
		a.choice = ChoiceGif
		return ebiten.Termination
	case err != nil:
		return err
	}
	if next != a.scene {
		a.logger.Debugf("switching scene to %T", next)
		a.scene = next
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) { a.scene.Draw(screen) }

func (a *App) Layout(w, h int) (int, int) { return a.width, a.height }

// Run opens the window and blocks until it is closed.
func Run(opts Options, logger golog.Logger) (Choice, error) {
	app, err := NewApp(opts, logger)
	if err != nil {
		return ChoiceQuit, err
	}
	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle("BOIDS")
	ebiten.SetFullscreen(opts.Fullscreen)
	if err = ebiten.RunGame(app); err != nil {
		return ChoiceQuit, err
	}
	return app.Choice(), nil
}
