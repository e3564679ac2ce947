package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ZoomResult is a cropped, optionally enlarged region of a rendered image.
type ZoomResult struct {
	ImageResult

	// OriginX and OriginY locate the region's top-left pixel in the source.
	// Pixel (u, v) of the zoomed image shows source pixel
	// (OriginX + u/Scale, OriginY + v/Scale).
	OriginX int     `json:"origin_x"`
	OriginY int     `json:"origin_y"`
	Scale   float64 `json:"scale"`
}

// Zoom extracts a rectangular region from img and scales it with
// nearest-neighbor sampling, so each spectrum bin stays a sharp block and can
// be located exactly.
func Zoom(img image.Image, x1, y1, x2, y2 int, scale float64) (*ZoomResult, error) {
	bounds := img.Bounds()

	// Validate coordinates
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("zoom region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid zoom region: x1 must be < x2, y1 must be < y2")
	}
	if scale <= 0 {
		scale = 1.0
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))
	if scale != 1.0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f shrinks region to nothing", scale)
		}
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.NearestNeighbor)
	}

	encoded, err := EncodePNG(cropped)
	if err != nil {
		return nil, err
	}
	return &ZoomResult{
		ImageResult: *encoded,
		OriginX:     x1,
		OriginY:     y1,
		Scale:       scale,
	}, nil
}
