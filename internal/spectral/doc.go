// Package spectral removes periodic noise from grayscale images in the
// spatial-frequency domain.
//
// The pipeline has two steps that a host composes around an operator:
//
//  1. Analyze transforms a sample grid into its complex spectrum and a power
//     spectrum suitable for display. The DC bin of the power spectrum is
//     forced to zero so that noise spikes remain visible.
//  2. Remove stamps a notch mask around a picked spike and its three
//     conjugate-symmetric counterparts, multiplies the spectrum by it and
//     inverts the transform.
//
// # Coordinates
//
// Grids are row-major. A Point's X indexes columns and Y indexes rows, so a
// spike picked from a rendered power spectrum at pixel (x, y) maps directly to
// bin (x, y).
//
// # Normalization
//
// Every Transform computes an unnormalized forward DFT and an inverse scaled by
// 1/(rows*cols). Forward followed by Inverse is the identity up to rounding.
//
// # Errors
//
// Validation failures wrap ErrInvalidDimensions, ErrCoordinateOutOfRange or
// ErrInvalidRadius and can be tested with errors.Is. Degenerate inputs such as
// a spike at the DC bin are not errors.
package spectral
