// Package imaging is the image side of the denoising pipeline: it loads and
// caches source images, turns them into even-sized intensity grids for the
// spectral package, and renders power spectra and recovered grids back into
// PNG images for an operator.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// A rendered power spectrum has one pixel per frequency bin, so a pixel picked
// on it is the spike coordinate handed to spectral.Remove unchanged.
//
// # Even Dimensions
//
// The spectral core only accepts even-sized grids. ToGrid crops one row
// and/or column from the bottom-right edge when needed; CropEven exposes the
// same crop for callers that need the cropped image itself.
//
// # Display Normalization
//
// Spectral output is unbounded. Normalize and RenderSpectrum apply a min-max
// stretch to 0-255 for display; the numeric grids are never modified.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Other functions are
// stateless and can be called concurrently on different inputs.
package imaging
