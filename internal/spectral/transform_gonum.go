package spectral

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// GonumTransform computes the 2D DFT as row and column passes of gonum's
// complex FFT. It accepts any grid size.
type GonumTransform struct{}

// Name implements Transform.
func (GonumTransform) Name() string { return TransformGonum }

// Forward implements Transform.
func (GonumTransform) Forward(s *Spectrum) error {
	rowFFT := fourier.NewCmplxFFT(s.Cols)
	colFFT := fourier.NewCmplxFFT(s.Rows)
	return passes(s,
		func(b []complex128) error { rowFFT.Coefficients(b, b); return nil },
		func(b []complex128) error { colFFT.Coefficients(b, b); return nil },
	)
}

// Inverse implements Transform. gonum's Sequence is unnormalized, so the
// result is scaled by 1/(rows*cols).
func (GonumTransform) Inverse(s *Spectrum) error {
	rowFFT := fourier.NewCmplxFFT(s.Cols)
	colFFT := fourier.NewCmplxFFT(s.Rows)
	err := passes(s,
		func(b []complex128) error { rowFFT.Sequence(b, b); return nil },
		func(b []complex128) error { colFFT.Sequence(b, b); return nil },
	)
	if err != nil {
		return err
	}
	scale(s, 1/float64(s.Rows*s.Cols))
	return nil
}
