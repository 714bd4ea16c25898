package main

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gogpu/turtle"
	"github.com/gogpu/turtle/anim"
	"github.com/gogpu/turtle/recording"

	_ "github.com/gogpu/turtle/recording/backends/pdf"
	_ "github.com/gogpu/turtle/recording/backends/raster"
	_ "github.com/gogpu/turtle/recording/backends/svg"
)

type renderFlags struct {
	width, height int
	format        string
	out           string
	fps           float64
	maxSteps      int
	autoStroke    bool
	progress      bool
	verbose       bool
}

func newRenderCmd() *cobra.Command {
	var f renderFlags
	cmd := &cobra.Command{
		Use:   "render <drawing>",
		Short: "Render a drawing to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], f)
		},
	}

	fl := cmd.Flags()
	fl.IntVar(&f.width, "width", 480, "canvas width in pixels")
	fl.IntVar(&f.height, "height", 320, "canvas height in pixels")
	fl.StringVarP(&f.format, "format", "f", "png", "output format: "+fmt.Sprint(recording.Backends()))
	fl.StringVarP(&f.out, "out", "o", "", "output file (default <drawing>.<format>)")
	fl.Float64Var(&f.fps, "fps", 0, "frames per second for animated drawings, 0 for unpaced")
	fl.IntVar(&f.maxSteps, "max-steps", anim.DefaultMaxSteps, "stop animated drawings after this many frames")
	fl.BoolVar(&f.autoStroke, "autostroke", true, "stroke after every frame")
	fl.BoolVar(&f.progress, "progress", false, "show a frame counter on stderr")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func runRender(cmd *cobra.Command, name string, f renderFlags) error {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	turtle.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	defer turtle.SetLogger(nil)

	d, ok := lookupDrawing(name)
	if !ok {
		return fmt.Errorf("unknown drawing %q (try \"turtledemo list\")", name)
	}
	if !slices.Contains(recording.Backends(), f.format) {
		return fmt.Errorf("%w: %q", recording.ErrUnknownBackend, f.format)
	}
	if f.out == "" {
		f.out = name + "." + f.format
	}

	rec := recording.NewRecorder(f.width, f.height)
	t, err := turtle.New(rec)
	if err != nil {
		return err
	}

	if step := d.setup(t); step != nil {
		opts := []anim.Option{anim.WithFPS(f.fps), anim.WithMaxSteps(f.maxSteps)}
		if f.autoStroke {
			opts = append(opts, anim.WithAutoStroke())
		}
		if f.progress {
			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription(name),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			defer bar.Close()
			opts = append(opts, anim.WithFrameHook(func(int) { _ = bar.Add(1) }))
		}

		res, err := anim.Run(cmd.Context(), t, step, opts...)
		if err != nil {
			return fmt.Errorf("render %s: %w", name, err)
		}
		turtle.Logger().Info("animation finished",
			"drawing", name, "frames", res.Steps, "bailed", res.Bailed, "elapsed", res.Elapsed)
	} else if f.autoStroke {
		t.Stroke()
	}

	file, err := os.Create(f.out)
	if err != nil {
		return err
	}
	if err := recording.Export(rec.Finish(), f.format, file); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d segments)\n", f.out, f.width, f.height, t.SegmentCount())
	return nil
}
