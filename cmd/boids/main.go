package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/lao-tseu-is-alive/go-boids/pkg/export"
	"github.com/lao-tseu-is-alive/go-boids/pkg/game"
	"github.com/lao-tseu-is-alive/go-boids/pkg/simulation"
	"github.com/spf13/cobra"
	golog "github.com/tochemey/goakt/v3/log"
)

const (
	windowWidth  = 1280
	windowHeight = 720
)

// flags shared by the subcommands
type options struct {
	verbose    bool
	configPath string
	outputDir  string
	seed       uint64
	fullscreen bool

	logger golog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "boids",
		Short: "Flocking simulation: live window or GIF animations",
		Long: `boids simulates the flocking of birds or fish from three local rules:
separation, alignment and cohesion.

Run without arguments to open the menu.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := golog.InfoLevel
			if opts.verbose {
				level = golog.DebugLevel
			}
			opts.logger = golog.New(level, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, opts, false)
		},
	}
	flags := root.PersistentFlags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs")
	flags.StringVarP(&opts.configPath, "config", "c", "", "settings file (.json, .yaml or .yml)")
	flags.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")

	menuCmd := &cobra.Command{
		Use:   "menu",
		Short: "Open the main menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, opts, false)
		},
	}
	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "Open the live simulation, click to add boids",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(cmd, opts, true)
		},
	}
	for _, c := range []*cobra.Command{root, menuCmd, liveCmd} {
		c.Flags().BoolVar(&opts.fullscreen, "fullscreen", false, "open the window fullscreen")
	}

	gifCmd := &cobra.Command{
		Use:   "gif",
		Short: "Render an animation to a GIF file",
		Long: `Renders the species described by the settings file (or the defaults)
and writes <boids>_boids_<species>_species_<seconds>s_animation.gif in the
output directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGif(cmd, opts)
		},
	}
	gifCmd.Flags().StringVarP(&opts.outputDir, "out", "o", "", "output directory, overrides the settings")

	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings()
			if err != nil {
				return err
			}
			return printSettings(cmd.OutOrStdout(), s)
		},
	}

	root.AddCommand(menuCmd, liveCmd, gifCmd, settingsCmd)
	return root
}

// settings loads the config file when given and applies the flag overrides.
func (o *options) settings() (simulation.Settings, error) {
	s := simulation.DefaultSettings()
	if o.configPath != "" {
		var err error
		if s, err = simulation.LoadSettings(o.configPath); err != nil {
			return s, err
		}
	}
	if o.seed != 0 {
		s.Seed = o.seed
	}
	if o.outputDir != "" {
		s.OutputDir = o.outputDir
	}
	return s, s.Validate()
}

func runWindow(cmd *cobra.Command, opts *options, live bool) error {
	// fail before opening the window when the settings are broken
	s, err := opts.settings()
	if err != nil {
		return err
	}
	choice, err := game.Run(game.Options{
		Width:      windowWidth,
		Height:     windowHeight,
		Fullscreen: opts.fullscreen,
		StartLive:  live,
		Seed:       opts.seed,
	}, opts.logger)
	if err != nil {
		return err
	}
	if choice != game.ChoiceGif {
		return nil
	}
	return runExport(cmd, opts, s)
}

func runGif(cmd *cobra.Command, opts *options) error {
	s, err := opts.settings()
	if err != nil {
		return err
	}
	return runExport(cmd, opts, s)
}

func runExport(cmd *cobra.Command, opts *options, s simulation.Settings) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	x := export.NewExporter(s, opts.logger)
	x.Progress = cmd.OutOrStdout()
	path, err := x.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "animation saved to %s\n", path)
	return nil
}

func printSettings(w io.Writer, s simulation.Settings) error {
	out, err := s.YAML()
	if err != nil {
		return err
	}
	if _, err := w.Write(out); err != nil {
		return err
	}
	fmt.Fprintf(w, "# %d frames, %d boids", s.Frames(), s.TotalBoids())
	for i, sp := range s.Species {
		fmt.Fprintf(w, ", species %d: %d", i+1, sp.Boids())
	}
	fmt.Fprintln(w)
	return nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
