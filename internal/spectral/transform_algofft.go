package spectral

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// AlgoFFTTransform runs algo-fft plans over rows and columns. Plans are
// built for power-of-two lengths only; other sizes fail with
// ErrUnsupportedSize before any work is done.
type AlgoFFTTransform struct{}

// Name implements Transform.
func (AlgoFFTTransform) Name() string { return TransformAlgoFFT }

// Forward implements Transform.
func (t AlgoFFTTransform) Forward(s *Spectrum) error {
	return t.run(s, true)
}

// Inverse implements Transform. algo-fft normalizes its inverse by 1/n per
// axis, which yields 1/(rows*cols) overall.
func (t AlgoFFTTransform) Inverse(s *Spectrum) error {
	return t.run(s, false)
}

func (AlgoFFTTransform) run(s *Spectrum, forward bool) error {
	if !isPowerOfTwo(s.Rows) || !isPowerOfTwo(s.Cols) {
		return fmt.Errorf("%w: algofft needs power-of-two sides, got %dx%d", ErrUnsupportedSize, s.Rows, s.Cols)
	}

	rowPlan, err := algofft.NewPlan64(s.Cols)
	if err != nil {
		return fmt.Errorf("algofft: row plan: %w", err)
	}
	colPlan, err := algofft.NewPlan64(s.Rows)
	if err != nil {
		return fmt.Errorf("algofft: column plan: %w", err)
	}

	rowOut := make([]complex128, s.Cols)
	colOut := make([]complex128, s.Rows)
	step := func(plan *algofft.Plan[complex128], out []complex128) func([]complex128) error {
		return func(b []complex128) error {
			var err error
			if forward {
				err = plan.Forward(out, b)
			} else {
				err = plan.Inverse(out, b)
			}
			if err != nil {
				return err
			}
			copy(b, out)
			return nil
		}
	}
	return passes(s, step(rowPlan, rowOut), step(colPlan, colOut))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
