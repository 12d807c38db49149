package cmd

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/log"
	"github.com/df07/go-sphere-pathtracer/pkg/output"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

// RenderFlags are the flags accepted by the render command.
var RenderFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene name (see the scenes command)",
	},
	cli.StringFlag{
		Name:  "scene-file, f",
		Usage: "load the scene from a JSON file instead of a built-in scene",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "frame width (default: scene recommendation)",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "frame height (default: scene recommendation)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (default: scene recommendation)",
	},
	cli.IntFlag{
		Name:  "depth",
		Usage: "maximum number of bounces per path (default: scene recommendation)",
	},
	cli.IntFlag{
		Name:  "passes",
		Value: renderer.DefaultConfig().Passes,
		Usage: "number of progressive passes",
	},
	cli.IntFlag{
		Name:  "tile",
		Value: renderer.DefaultConfig().TileSize,
		Usage: "tile edge length in pixels",
	},
	cli.IntFlag{
		Name:  "workers",
		Value: 0,
		Usage: "number of render workers (0 = one per CPU)",
	},
	cli.Int64Flag{
		Name:  "seed",
		Value: renderer.DefaultConfig().Seed,
		Usage: "random seed",
	},
	cli.Float64Flag{
		Name:  "gamma",
		Value: renderer.DefaultConfig().Gamma,
		Usage: "gamma used for tone-mapping",
	},
	cli.Float64Flag{
		Name:  "exposure",
		Value: renderer.DefaultConfig().Exposure,
		Usage: "camera exposure for tone-mapping",
	},
	cli.BoolFlag{
		Name:  "sequential",
		Usage: "render on a single goroutine in one pass",
	},
	cli.StringFlag{
		Name:  "format",
		Usage: "output format: ppm or png (default: inferred from --out, else png)",
	},
	cli.StringFlag{
		Name:  "out, o",
		Usage: "output file (default: output/<scene>/render_<timestamp>.<format>)",
	},
}

// RenderFrame renders a still frame and writes it to disk.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	config := configFromFlags(ctx, renderer.ConfigForScene(sc))
	if err := config.Validate(); err != nil {
		return err
	}

	format, outPath, err := outputTarget(ctx, sc.Name)
	if err != nil {
		return err
	}

	logger.Noticef("rendering scene %q (%d spheres, %d materials) at %dx%d, %d spp, depth %d",
		sc.Name, sc.GetPrimitiveCount(), sc.MaterialCount(), config.Width, config.Height,
		config.SamplesPerPixel, config.MaxDepth)

	var (
		pixels []color.RGBA
		stats  renderer.FrameStats
	)
	if ctx.Bool("sequential") {
		rt, err := renderer.NewRaytracer(sc, config, nil)
		if err != nil {
			return err
		}
		pixels, stats = rt.RenderPass()
	} else {
		pixels, stats, err = renderProgressive(sc, config)
		if err != nil {
			return err
		}
	}

	if err := writeFrame(format, outPath, config, pixels); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s", outPath)

	displayFrameStats(stats)
	return nil
}

func renderProgressive(sc *scene.Scene, config renderer.Config) ([]color.RGBA, renderer.FrameStats, error) {
	rt, err := renderer.NewProgressiveRaytracer(sc, config, nil, log.New("renderer"))
	if err != nil {
		return nil, renderer.FrameStats{}, err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	passes := config.PassCount()
	stats, err := rt.Render(ctx, func(result renderer.PassResult) {
		logger.Infof("pass %d/%d done: %d samples/pixel", result.PassNumber, passes, result.TotalSamples)
	})
	if errors.Is(err, renderer.ErrInterrupted) {
		logger.Warningf("render interrupted after %d passes; writing partial frame", len(stats.Passes))
	} else if err != nil {
		return nil, stats, err
	}

	return rt.Frame(), stats, nil
}

func loadScene(ctx *cli.Context) (*scene.Scene, error) {
	if path := ctx.String("scene-file"); path != "" {
		return scene.LoadFile(path)
	}
	return scene.Lookup(ctx.String("scene"))
}

// configFromFlags overrides the scene recommendation with explicitly set flags
func configFromFlags(ctx *cli.Context, config renderer.Config) renderer.Config {
	if ctx.IsSet("width") {
		config.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		config.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		config.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("depth") {
		config.MaxDepth = ctx.Int("depth")
	}
	config.Passes = ctx.Int("passes")
	config.TileSize = ctx.Int("tile")
	config.NumWorkers = ctx.Int("workers")
	config.Seed = ctx.Int64("seed")
	config.Gamma = ctx.Float64("gamma")
	config.Exposure = ctx.Float64("exposure")
	return config
}

func outputTarget(ctx *cli.Context, sceneName string) (output.Format, string, error) {
	outPath := ctx.String("out")

	var (
		format output.Format
		err    error
	)
	switch {
	case ctx.String("format") != "":
		format, err = output.ParseFormat(ctx.String("format"))
	case outPath != "":
		format, err = output.FormatForPath(outPath)
	default:
		format = output.PNG
	}
	if err != nil {
		return "", "", err
	}

	if outPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outPath = filepath.Join("output", sceneName, fmt.Sprintf("render_%s.%s", timestamp, format))
	}
	return format, outPath, nil
}

func writeFrame(format output.Format, path string, config renderer.Config, pixels []color.RGBA) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer f.Close()

	if err := output.Write(format, f, config.Width, config.Height, pixels); err != nil {
		return fmt.Errorf("error encoding %s file: %w", format, err)
	}
	return f.Close()
}
