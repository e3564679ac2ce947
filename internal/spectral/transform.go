package spectral

import (
	"fmt"
	"sort"
	"strings"
)

// Transform is a 2D discrete Fourier transform operating in place.
//
// Forward is unnormalized. Inverse is scaled by 1/(rows*cols) so that
// Inverse(Forward(s)) reproduces s up to rounding.
type Transform interface {
	Name() string
	Forward(s *Spectrum) error
	Inverse(s *Spectrum) error
}

// Registered transform names.
const (
	TransformGonum   = "gonum"
	TransformGoDSP   = "godsp"
	TransformAlgoFFT = "algofft"
)

// DefaultTransform is the backend used when none is configured.
const DefaultTransform = TransformGonum

var transforms = map[string]func() Transform{
	TransformGonum:   func() Transform { return GonumTransform{} },
	TransformGoDSP:   func() Transform { return GoDSPTransform{} },
	TransformAlgoFFT: func() Transform { return AlgoFFTTransform{} },
}

// NewTransform returns the backend registered under name. An empty name
// selects DefaultTransform. Names are case-insensitive.
func NewTransform(name string) (Transform, error) {
	if name == "" {
		name = DefaultTransform
	}
	ctor, ok := transforms[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownTransform, name, strings.Join(TransformNames(), ", "))
	}
	return ctor(), nil
}

// TransformNames lists the registered backends in sorted order.
func TransformNames() []string {
	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scale multiplies every bin by f.
func scale(s *Spectrum, f float64) {
	c := complex(f, 0)
	for i := range s.Data {
		s.Data[i] *= c
	}
}

// passes runs fn over every row, then over every column of s. fn receives a
// contiguous buffer and must transform it in place.
func passes(s *Spectrum, rowFn, colFn func([]complex128) error) error {
	row := make([]complex128, s.Cols)
	for y := 0; y < s.Rows; y++ {
		copy(row, s.Data[y*s.Cols:(y+1)*s.Cols])
		if err := rowFn(row); err != nil {
			return fmt.Errorf("row %d: %w", y, err)
		}
		copy(s.Data[y*s.Cols:(y+1)*s.Cols], row)
	}

	col := make([]complex128, s.Rows)
	for x := 0; x < s.Cols; x++ {
		for y := 0; y < s.Rows; y++ {
			col[y] = s.Data[y*s.Cols+x]
		}
		if err := colFn(col); err != nil {
			return fmt.Errorf("column %d: %w", x, err)
		}
		for y := 0; y < s.Rows; y++ {
			s.Data[y*s.Cols+x] = col[y]
		}
	}
	return nil
}
