package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

// EvenSize rounds width and height down to the nearest even values.
func EvenSize(width, height int) (int, int) {
	return width &^ 1, height &^ 1
}

// CropEven drops the last column and/or row of img when its width or height
// is odd. Images that are already even-sized are returned unchanged.
func CropEven(img image.Image) image.Image {
	bounds := img.Bounds()
	w, h := EvenSize(bounds.Dx(), bounds.Dy())
	if w == bounds.Dx() && h == bounds.Dy() {
		return img
	}
	return imaging.Crop(img, image.Rect(bounds.Min.X, bounds.Min.Y, bounds.Min.X+w, bounds.Min.Y+h))
}

// ToGrid converts img into an even-sized intensity grid with values in
// [0, 255]. Color images are reduced to luminance; this is the only channel
// the spectral pipeline processes.
func ToGrid(img image.Image) (*spectral.Grid, error) {
	cropped := CropEven(img)
	bounds := cropped.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %dx%d is too small to analyze", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// effect.Grayscale returns RGBA with R=G=B.
	gray := effect.Grayscale(cropped)
	origin := gray.Bounds().Min
	grid := spectral.NewGrid(bounds.Dy(), bounds.Dx())
	for y := 0; y < grid.Rows; y++ {
		for x := 0; x < grid.Cols; x++ {
			grid.Set(x, y, float64(gray.RGBAAt(origin.X+x, origin.Y+y).R))
		}
	}
	return grid, nil
}

// Normalize stretches g to the displayable range [0, 255] with a min-max
// mapping. A flat grid maps to black.
func Normalize(g *spectral.Grid) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, g.Cols, g.Rows))
	e := g.Extrema()
	span := e.Max - e.Min
	if span <= 0 {
		return out
	}
	for i, v := range g.Data {
		out.Pix[(i/g.Cols)*out.Stride+i%g.Cols] = uint8((v-e.Min)/span*255 + 0.5)
	}
	return out
}
