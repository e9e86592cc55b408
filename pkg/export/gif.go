package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// ErrEmptyAnimation is returned when the encoder produced no GIF.
var ErrEmptyAnimation = errors.New("empty animation")

func errFrameSize(got, width, height int) error {
	return fmt.Errorf("frame has %d bytes, want %d for %dx%d", got, width*height*4, width, height)
}

// FrameDelay converts a frame rate to the GIF delay unit, hundredths of a second.
func FrameDelay(fps int) int {
	if fps <= 0 {
		return 0
	}
	return int(math.Round(100 / float64(fps)))
}

// FileName is the base name of an animation: boid count, species count and length.
func FileName(boids, species, seconds int) string {
	return fmt.Sprintf("%d_boids_%d_species_%ds_animation.gif", boids, species, seconds)
}

// FreePath returns dir/name, or the first dir/<stem>(n).gif that does not exist yet.
func FreePath(dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	stem := name[:len(name)-len(filepath.Ext(name))]
	for n := 1; ; n++ {
		_, err := os.Stat(path)
		if errors.Is(err, os.ErrNotExist) {
			return path, nil
		}
		if err != nil {
			return "", err
		}
		path = filepath.Join(dir, fmt.Sprintf("%s(%d)%s", stem, n, filepath.Ext(name)))
	}
}

// Exporter renders a simulation built from Settings into a GIF file.
type Exporter struct {
	Settings simulation.Settings
	Logger   golog.Logger

	// Progress receives a progress bar line per rendered frame when set.
	Progress io.Writer
	// FlushTimeout bounds the final GIF encoding.
	FlushTimeout time.Duration
}

// NewExporter returns an exporter for s that logs to logger and gives the
// final encoding ten minutes.
func NewExporter(s simulation.Settings, logger golog.Logger) *Exporter {
	return &Exporter{Settings: s, Logger: logger, FlushTimeout: 10 * time.Minute}
}

// Run renders every frame, stores the animation under Settings.OutputDir and
// returns its path. It stops between frames when ctx is canceled.
func (x *Exporter) Run(ctx context.Context) (string, error) {
	s := x.Settings
	sim, err := s.Build(s.NewRand())
	if err != nil {
		return "", err
	}
	canvas := NewCanvas(s.Width, s.Height, s.BackgroundColor(x.Logger))

	system, err := actor.NewActorSystem("BoidsExport", actor.WithLogger(x.Logger))
	if err != nil {
		return "", fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return "", fmt.Errorf("failed to start actor system: %w", err)
	}
	defer func() { _ = system.Stop(context.Background()) }()

	encoder, err := system.Spawn(ctx, "gifEncoder", NewFrameEncoder(s.Width, s.Height, FrameDelay(s.FPS)))
	if err != nil {
		return "", fmt.Errorf("failed to spawn encoder: %w", err)
	}

	frames := s.Frames()
	x.Logger.Infof("rendering %d frames of %d boids at %dx%d", frames, sim.Count(), s.Width, s.Height)
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	for i := 1; i <= frames; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		if err := sim.Step(); err != nil {
			return "", fmt.Errorf("frame %d: %w", i, err)
		}
		canvas.Clear()
		canvas.DrawSimulation(sim)
		pix := append([]byte(nil), canvas.Image().Pix...)
		if err := actor.Tell(ctx, encoder, wrapperspb.Bytes(pix)); err != nil {
			return "", fmt.Errorf("frame %d: %w", i, err)
		}
		if x.Progress != nil {
			fmt.Fprintf(x.Progress, "\r%s %d/%d", bar.ViewAs(float64(i)/float64(frames)), i, frames)
		}
	}
	if x.Progress != nil {
		fmt.Fprintln(x.Progress)
	}

	x.Logger.Info("encoding gif, this can take a while")
	reply, err := actor.Ask(ctx, encoder, &emptypb.Empty{}, x.FlushTimeout)
	if err != nil {
		return "", fmt.Errorf("failed to encode gif: %w", err)
	}
	data, ok := reply.(*wrapperspb.BytesValue)
	if !ok || len(data.GetValue()) == 0 {
		return "", ErrEmptyAnimation
	}

	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return "", err
	}
	path, err := FreePath(s.OutputDir, FileName(sim.Count(), len(s.Species), s.LengthSeconds))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data.GetValue(), 0o644); err != nil {
		return "", err
	}
	x.Logger.Infof("gif saved under %s", path)
	return path, nil
}
