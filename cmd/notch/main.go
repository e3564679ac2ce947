// Package main is the notch command: the spectrum inspection and noise
// removal pipeline without an MCP client.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/ironsheep/denoise-mcp/internal/imaging"
	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

const (
	flagIn      = "in"
	flagOut     = "out"
	flagFFT     = "fft"
	flagLog     = "log"
	flagPalette = "palette"
	flagGrid    = "grid"
	flagX       = "x"
	flagY       = "y"
	flagSpike   = "spike"
	flagRadius  = "radius"
	flagDebug   = "debug"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "notch: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	inFlag := &cli.StringFlag{
		Name:     flagIn,
		Usage:    "input image `FILE`",
		EnvVars:  []string{"NOTCH_INPUT"},
		Required: true,
	}
	outFlag := &cli.StringFlag{
		Name:     flagOut,
		Usage:    "output PNG `FILE`",
		Required: true,
	}
	fftFlag := &cli.StringFlag{
		Name:    flagFFT,
		Usage:   "FFT backend (gonum, godsp, algofft)",
		EnvVars: []string{"DENOISE_MCP_FFT"},
		Value:   spectral.DefaultTransform,
	}

	return &cli.App{
		Name:            "notch",
		Usage:           "remove periodic noise from grayscale images",
		HideHelpCommand: true,
		Writer:          out,
		ErrWriter:       errOut,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  flagDebug,
				Usage: "log intermediate grids to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "spectrum",
				Usage:     "render the power spectrum so spikes can be located",
				UsageText: "notch spectrum --in IMG --out PNG [--log=false] [--palette heat] [--grid N]",
				Flags: []cli.Flag{
					inFlag,
					outFlag,
					fftFlag,
					&cli.BoolFlag{
						Name:  flagLog,
						Usage: "log intensity scaling (--log=false for linear)",
						Value: imaging.DefaultScale == imaging.ScaleLog,
					},
					&cli.StringFlag{
						Name:  flagPalette,
						Usage: "gray or heat",
						Value: imaging.PaletteGray,
					},
					&cli.IntFlag{
						Name:  flagGrid,
						Usage: "labelled grid every `N` bins (0 for none)",
					},
				},
				Action: spectrumAction,
			},
			{
				Name:      "remove",
				Usage:     "notch a spike and its symmetric points, write the filtered image",
				UsageText: "notch remove --in IMG --x X --y Y [--radius R] [--fft gonum] --out PNG",
				Flags: []cli.Flag{
					inFlag,
					outFlag,
					fftFlag,
					&cli.IntFlag{
						Name:  flagX,
						Usage: "spike column",
					},
					&cli.IntFlag{
						Name:  flagY,
						Usage: "spike row",
					},
					&cli.StringSliceFlag{
						Name:  flagSpike,
						Usage: "additional spike as `X:Y` (repeatable)",
					},
					&cli.IntFlag{
						Name:    flagRadius,
						Usage:   "notch radius in bins",
						EnvVars: []string{"DENOISE_MCP_RADIUS"},
						Value:   spectral.DefaultRadius,
					},
				},
				Action: removeAction,
			},
		},
	}
}

func loggerFor(c *cli.Context) *zap.Logger {
	if !c.Bool(flagDebug) {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// analyze loads the input image and returns its power spectrum, complex
// spectrum and the transform used.
func analyze(c *cli.Context, logger *zap.Logger) (*spectral.Grid, *spectral.Spectrum, spectral.Transform, error) {
	transform, err := spectral.NewTransform(c.String(flagFFT))
	if err != nil {
		return nil, nil, nil, err
	}
	img, err := imaging.NewImageCache().Load(c.String(flagIn))
	if err != nil {
		return nil, nil, nil, err
	}
	grid, err := imaging.ToGrid(img)
	if err != nil {
		return nil, nil, nil, err
	}
	power, spec, err := spectral.NewAnalyzer(
		spectral.WithTransform(transform),
		spectral.WithTracer(spectral.LogTracer{Logger: logger}),
	).Analyze(grid)
	if err != nil {
		return nil, nil, nil, err
	}
	return power, spec, transform, nil
}

func spectrumAction(c *cli.Context) error {
	logger := loggerFor(c)
	defer logger.Sync() //nolint:errcheck

	power, _, _, err := analyze(c, logger)
	if err != nil {
		return err
	}
	opts := imaging.RenderOptions{Scale: imaging.ScaleLinear, Palette: c.String(flagPalette)}
	if c.Bool(flagLog) {
		opts.Scale = imaging.ScaleLog
	}
	rendered, err := imaging.RenderSpectrum(power, opts)
	if err != nil {
		return err
	}
	if n := c.Int(flagGrid); n > 0 {
		rendered = imaging.GridOverlay(rendered, n, true, "#00FF00")
	}
	if err := imaging.SavePNG(c.String(flagOut), rendered); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "wrote %dx%d %s spectrum to %s\n", power.Cols, power.Rows, opts.Scale, c.String(flagOut))
	return nil
}

// spikesFrom collects --x/--y and every --spike value.
func spikesFrom(c *cli.Context) ([]spectral.Point, error) {
	var spikes []spectral.Point
	switch hasX, hasY := c.IsSet(flagX), c.IsSet(flagY); {
	case hasX && hasY:
		spikes = append(spikes, spectral.Point{X: c.Int(flagX), Y: c.Int(flagY)})
	case hasX || hasY:
		return nil, errors.New("--x and --y must be given together")
	}
	for _, s := range c.StringSlice(flagSpike) {
		var p spectral.Point
		if _, err := fmt.Sscanf(s, "%d:%d", &p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("bad --spike %q: want X:Y", s)
		}
		spikes = append(spikes, p)
	}
	if len(spikes) == 0 {
		return nil, errors.New("no spike selected: give --x and --y, or --spike")
	}
	return spikes, nil
}

func removeAction(c *cli.Context) error {
	logger := loggerFor(c)
	defer logger.Sync() //nolint:errcheck

	spikes, err := spikesFrom(c)
	if err != nil {
		return err
	}
	_, spec, transform, err := analyze(c, logger)
	if err != nil {
		return err
	}
	out, err := spectral.NewNotchFilter(
		spectral.WithTransform(transform),
		spectral.WithTracer(spectral.LogTracer{Logger: logger}),
	).RemoveAll(spec, spikes, c.Int(flagRadius))
	if err != nil {
		return err
	}
	if err := imaging.SavePNG(c.String(flagOut), imaging.Normalize(out)); err != nil {
		return err
	}
	e := out.Extrema()
	fmt.Fprintf(c.App.Writer, "removed %v (radius %d, %s): raw range [%.3f, %.3f], wrote %s\n",
		spikes, c.Int(flagRadius), transform.Name(), e.Min, e.Max, c.String(flagOut))
	return nil
}
