package imaging

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

// GridOverlay copies img and draws a coordinate grid over it. With
// showCoordinates set, each intersection is labelled "x,y" so an operator can
// read spike coordinates straight off a rendered spectrum. A non-positive
// spacing draws no lines.
func GridOverlay(img image.Image, gridSpacing int, showCoordinates bool, gridColorHex string) *image.RGBA {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	gridColor, err := parseHexColor(gridColorHex)
	if err != nil {
		gridColor = color.RGBA{255, 0, 0, 128} // Default: semi-transparent red
	}

	result := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(result, result.Bounds(), img, bounds.Min, draw.Src)
	if gridSpacing <= 0 {
		return result
	}

	// Draw vertical lines
	for x := gridSpacing; x < width; x += gridSpacing {
		for y := 0; y < height; y++ {
			result.Set(x, y, gridColor)
		}
	}

	// Draw horizontal lines
	for y := gridSpacing; y < height; y += gridSpacing {
		for x := 0; x < width; x++ {
			result.Set(x, y, gridColor)
		}
	}

	if showCoordinates {
		labelColor := color.RGBA{255, 255, 255, 255}
		bgColor := color.RGBA{0, 0, 0, 180}

		for y := gridSpacing; y < height; y += gridSpacing {
			for x := gridSpacing; x < width; x += gridSpacing {
				drawLabel(result, x+2, y+2, fmt.Sprintf("%d,%d", x, y), labelColor, bgColor)
			}
		}
	}

	return result
}

// MarkNotch outlines the notch disks that spectral.Remove would stamp for
// spike, at all four symmetric points. Outlines wrap around the edges the same
// way the mask does. A radius of 0 draws a small crosshair instead.
func MarkNotch(img *image.RGBA, spike spectral.Point, radius int, markColorHex string) {
	markColor, err := parseHexColor(markColorHex)
	if err != nil {
		markColor = color.RGBA{0, 255, 255, 255}
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}
	set := func(x, y int) {
		img.Set(bounds.Min.X+wrapIndex(x, w), bounds.Min.Y+wrapIndex(y, h), markColor)
	}

	for _, p := range spectral.SymmetricPoints(spike, h, w) {
		if radius == 0 {
			for d := -2; d <= 2; d++ {
				set(p.X+d, p.Y)
				set(p.X, p.Y+d)
			}
			continue
		}
		r := float64(radius)
		for dy := -radius - 1; dy <= radius+1; dy++ {
			for dx := -radius - 1; dx <= radius+1; dx++ {
				if math.Abs(math.Hypot(float64(dx), float64(dy))-r) < 0.5 {
					set(p.X+dx, p.Y+dy)
				}
			}
		}
	}
}

func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}

// digit glyphs on a 3x5 grid
var glyphs = map[rune][]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	',': {"000", "000", "000", "010", "010"},
}

// drawLabel draws text at (x, y) on a filled background, clipped to img.
func drawLabel(img *image.RGBA, x, y int, text string, fg, bg color.RGBA) {
	bounds := img.Bounds()
	inside := func(px, py int) bool {
		return px >= bounds.Min.X && px < bounds.Max.X && py >= bounds.Min.Y && py < bounds.Max.Y
	}

	const charWidth, labelHeight = 4, 7
	labelWidth := len(text) * charWidth

	for dy := -1; dy < labelHeight; dy++ {
		for dx := -1; dx < labelWidth; dx++ {
			if inside(x+dx, y+dy) {
				img.Set(x+dx, y+dy, bg)
			}
		}
	}

	cx := x
	for _, ch := range text {
		for row, line := range glyphs[ch] {
			for col, pixel := range line {
				if pixel == '1' && inside(cx+col, y+row) {
					img.Set(cx+col, y+row, fg)
				}
			}
		}
		cx += charWidth
	}
}
