package spectral

import (
	"github.com/mjibson/go-dsp/fft"
)

// GoDSPTransform delegates to go-dsp's FFT2 and IFFT2. IFFT2 already applies
// the 1/(rows*cols) scale.
type GoDSPTransform struct{}

// Name implements Transform.
func (GoDSPTransform) Name() string { return TransformGoDSP }

// Forward implements Transform.
func (GoDSPTransform) Forward(s *Spectrum) error {
	fromRows(s, fft.FFT2(toRows(s)))
	return nil
}

// Inverse implements Transform.
func (GoDSPTransform) Inverse(s *Spectrum) error {
	fromRows(s, fft.IFFT2(toRows(s)))
	return nil
}

func toRows(s *Spectrum) [][]complex128 {
	out := make([][]complex128, s.Rows)
	for y := range out {
		out[y] = make([]complex128, s.Cols)
		copy(out[y], s.Data[y*s.Cols:(y+1)*s.Cols])
	}
	return out
}

func fromRows(s *Spectrum, in [][]complex128) {
	for y, row := range in {
		copy(s.Data[y*s.Cols:(y+1)*s.Cols], row)
	}
}
