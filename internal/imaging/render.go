package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

// Spectrum display scales.
const (
	ScaleLinear = "linear"
	ScaleLog    = "log"

	// DefaultScale is what every front end renders with unless told otherwise.
	DefaultScale = ScaleLog
)

// Spectrum display palettes.
const (
	PaletteGray = "gray"
	PaletteHeat = "heat"
)

// RenderOptions controls how a power spectrum is turned into pixels.
type RenderOptions struct {
	// Scale is ScaleLinear (default) or ScaleLog. Log applies log(1+p) before
	// the min-max stretch, which keeps weak spikes visible next to strong ones.
	Scale string

	// Palette is PaletteGray (default) or PaletteHeat.
	Palette string
}

// heatStops is a dark-to-bright ramp blended in HCL space.
var heatStops = []string{"#000004", "#3b0f70", "#8c2981", "#de4968", "#fe9f6d", "#fcfdbf"}

var heatLUT = buildHeatLUT()

func buildHeatLUT() [256]color.RGBA {
	stops := make([]colorful.Color, len(heatStops))
	for i, hex := range heatStops {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("imaging: bad heat stop %q: %v", hex, err))
		}
		stops[i] = c
	}

	var lut [256]color.RGBA
	segments := float64(len(stops) - 1)
	for i := range lut {
		t := float64(i) / 255 * segments
		seg := int(t)
		if seg >= len(stops)-1 {
			seg = len(stops) - 2
		}
		r, g, b := stops[seg].BlendHcl(stops[seg+1], t-float64(seg)).Clamped().RGB255()
		lut[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return lut
}

// RenderSpectrum draws power with one pixel per bin. Pixel (x, y) shows bin
// (x, y), so coordinates read off the image can be passed to spectral.Remove.
func RenderSpectrum(power *spectral.Grid, opts RenderOptions) (*image.RGBA, error) {
	display := power
	switch opts.Scale {
	case "", ScaleLinear:
	case ScaleLog:
		display = power.Clone()
		for i, v := range display.Data {
			display.Data[i] = math.Log1p(math.Max(v, 0))
		}
	default:
		return nil, fmt.Errorf("unknown scale %q (want %s or %s)", opts.Scale, ScaleLinear, ScaleLog)
	}

	gray := Normalize(display)
	out := image.NewRGBA(gray.Bounds())
	switch opts.Palette {
	case "", PaletteGray:
		for i, v := range gray.Pix {
			out.Pix[4*i], out.Pix[4*i+1], out.Pix[4*i+2], out.Pix[4*i+3] = v, v, v, 255
		}
	case PaletteHeat:
		for i, v := range gray.Pix {
			c := heatLUT[v]
			out.Pix[4*i], out.Pix[4*i+1], out.Pix[4*i+2], out.Pix[4*i+3] = c.R, c.G, c.B, c.A
		}
	default:
		return nil, fmt.Errorf("unknown palette %q (want %s or %s)", opts.Palette, PaletteGray, PaletteHeat)
	}
	return out, nil
}

// ImageResult is a PNG image returned inline.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG encodes img as a base64 PNG.
func EncodePNG(img image.Image) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return &ImageResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
