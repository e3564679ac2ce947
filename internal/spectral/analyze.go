package spectral

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Option configures an Analyzer or a NotchFilter.
type Option func(*options)

type options struct {
	transform Transform
	tracer    Tracer
}

func newOptions(opts []Option) options {
	o := options{transform: GonumTransform{}, tracer: NopTracer{}}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTransform selects the DFT backend. A nil t keeps the default.
func WithTransform(t Transform) Option {
	return func(o *options) {
		if t != nil {
			o.transform = t
		}
	}
}

// WithTracer installs a sink for intermediate grids. A nil t keeps the no-op
// default.
func WithTracer(t Tracer) Option {
	return func(o *options) {
		if t != nil {
			o.tracer = t
		}
	}
}

// Analyzer computes power spectra.
type Analyzer struct {
	opts options
}

// NewAnalyzer returns an Analyzer using the gonum backend unless overridden.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{opts: newOptions(opts)}
}

// Analyze transforms img into the frequency domain.
//
// It returns the power spectrum (re²+im² per bin, with the DC bin at [0,0]
// forced to 0 for display) and the complex spectrum, which is left untouched
// for reconstruction. Both share img's dimensions. img is not modified.
//
// Rows and columns must be positive and even; otherwise the error wraps
// ErrInvalidDimensions and no transform work is done.
func (a *Analyzer) Analyze(img *Grid) (*Grid, *Spectrum, error) {
	if img == nil {
		return nil, nil, fmt.Errorf("%w: nil grid", ErrInvalidDimensions)
	}
	if err := validateDimensions(img.Rows, img.Cols); err != nil {
		return nil, nil, err
	}

	spec := pack(img)
	if err := a.opts.transform.Forward(spec); err != nil {
		return nil, nil, fmt.Errorf("forward %s transform: %w", a.opts.transform.Name(), err)
	}

	power := Power(spec)
	a.opts.tracer.Trace("power_spectrum", power)
	return power, spec, nil
}

// Power returns re²+im² for every bin of s with the DC bin zeroed.
func Power(s *Spectrum) *Grid {
	power := NewGrid(s.Rows, s.Cols)
	re := make([]float64, len(s.Data))
	im := make([]float64, len(s.Data))
	for i, c := range s.Data {
		re[i], im[i] = real(c), imag(c)
	}
	vecmath.Power(power.Data, re, im)
	if len(power.Data) > 0 {
		// DC is kept out of the display range.
		power.Data[0] = 0
	}
	return power
}

// Analyze runs a default Analyzer over img.
func Analyze(img *Grid) (*Grid, *Spectrum, error) {
	return NewAnalyzer().Analyze(img)
}
