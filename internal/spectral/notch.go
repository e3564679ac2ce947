package spectral

import (
	"fmt"
)

// DefaultRadius is the notch disk radius, in bins, used when the caller has
// no better estimate of the spike's bandwidth.
const DefaultRadius = 10

// Mirror returns the conjugate-symmetric partner of p in a rows x cols
// spectrum. Mirror is an involution; coordinates are not wrapped, so bin 0
// mirrors to rows or cols, which stamping treats as bin 0 again.
func Mirror(p Point, rows, cols int) Point {
	return Point{X: cols - p.X, Y: rows - p.Y}
}

// SymmetricPoints returns the picked spike followed by its vertical,
// horizontal and full mirrors. The four coincide pairwise on the DC and
// Nyquist rows and columns.
func SymmetricPoints(spike Point, rows, cols int) [4]Point {
	return [4]Point{
		spike,
		{X: spike.X, Y: rows - spike.Y},
		{X: cols - spike.X, Y: spike.Y},
		Mirror(spike, rows, cols),
	}
}

// BuildMask returns a rows x cols grid of ones with a zero-valued disk of the
// given radius stamped at every symmetric point of every spike. Disks wrap
// around the grid edges, so the mask is conjugate-symmetric. A radius of 0
// blocks only the bins themselves; no spikes yields an all-pass mask.
func BuildMask(rows, cols int, spikes []Point, radius int) (*Grid, error) {
	if err := validateDimensions(rows, cols); err != nil {
		return nil, err
	}
	if err := validateNotch(rows, cols, spikes, radius); err != nil {
		return nil, err
	}

	mask := NewGrid(rows, cols)
	for i := range mask.Data {
		mask.Data[i] = 1
	}
	for _, spike := range spikes {
		for _, p := range SymmetricPoints(spike, rows, cols) {
			stampDisk(mask, p, radius)
		}
	}
	return mask, nil
}

// stampDisk zeroes every cell within radius of c, wrapping indices. Offsets
// are clamped to one period per axis, since a longer offset lands on a cell a
// shorter one already reaches.
func stampDisk(mask *Grid, c Point, radius int) {
	if radius >= mask.Rows+mask.Cols {
		clear(mask.Data)
		return
	}
	r2 := radius * radius
	ry, rx := min(radius, mask.Rows), min(radius, mask.Cols)
	for dy := -ry; dy <= ry; dy++ {
		y := wrap(c.Y+dy, mask.Rows)
		for dx := -rx; dx <= rx; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			mask.Data[y*mask.Cols+wrap(c.X+dx, mask.Cols)] = 0
		}
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Wrap maps p into [0,cols)x[0,rows). Points returned by SymmetricPoints may
// sit at cols or rows; Wrap gives the bin stamping actually blocks.
func Wrap(p Point, rows, cols int) Point {
	return Point{X: wrap(p.X, cols), Y: wrap(p.Y, rows)}
}

// ApplyMask multiplies every bin of s by the matching real mask value. This is
// the complex product with a zero-imaginary companion of mask.
func ApplyMask(s *Spectrum, mask *Grid) error {
	if s.Rows != mask.Rows || s.Cols != mask.Cols {
		return fmt.Errorf("%w: spectrum %dx%d, mask %dx%d", ErrDimensionMismatch, s.Rows, s.Cols, mask.Rows, mask.Cols)
	}
	for i, m := range mask.Data {
		s.Data[i] *= complex(m, 0)
	}
	return nil
}

func validateNotch(rows, cols int, spikes []Point, radius int) error {
	for _, p := range spikes {
		if p.X < 0 || p.X >= cols || p.Y < 0 || p.Y >= rows {
			return fmt.Errorf("%w: (%d,%d) not in [0,%d)x[0,%d)", ErrCoordinateOutOfRange, p.X, p.Y, cols, rows)
		}
	}
	if radius < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	return nil
}

// NotchFilter removes spikes from a complex spectrum and reconstructs the
// spatial image.
type NotchFilter struct {
	opts options
}

// NewNotchFilter returns a NotchFilter using the gonum backend unless
// overridden. The backend must match the one used for analysis only in its
// normalization convention, which every Transform shares.
func NewNotchFilter(opts ...Option) *NotchFilter {
	return &NotchFilter{opts: newOptions(opts)}
}

// Remove notches out spike and its mirrors with disks of the given radius and
// returns the real part of the inverse transform.
//
// spec is consumed: it is filtered and inverted in place and must not be
// reused. The returned grid is freshly allocated, has spec's dimensions and is
// neither clamped nor rescaled.
func (f *NotchFilter) Remove(spec *Spectrum, spike Point, radius int) (*Grid, error) {
	return f.RemoveAll(spec, []Point{spike}, radius)
}

// RemoveAll is Remove for several spikes. All disks go into one mask before
// the single multiply. An empty spikes slice applies an all-pass mask.
func (f *NotchFilter) RemoveAll(spec *Spectrum, spikes []Point, radius int) (*Grid, error) {
	if spec == nil {
		return nil, fmt.Errorf("%w: nil spectrum", ErrInvalidDimensions)
	}
	if err := validateNotch(spec.Rows, spec.Cols, spikes, radius); err != nil {
		return nil, err
	}

	mask, err := BuildMask(spec.Rows, spec.Cols, spikes, radius)
	if err != nil {
		return nil, err
	}
	f.opts.tracer.Trace("notch_mask", mask)

	if err := ApplyMask(spec, mask); err != nil {
		return nil, err
	}
	if err := f.opts.transform.Inverse(spec); err != nil {
		return nil, fmt.Errorf("inverse %s transform: %w", f.opts.transform.Name(), err)
	}

	out := realPart(spec)
	f.opts.tracer.Trace("recovered", out)
	return out, nil
}

// Remove runs a default NotchFilter.
func Remove(spec *Spectrum, spike Point, radius int) (*Grid, error) {
	return NewNotchFilter().Remove(spec, spike, radius)
}

// RemoveAll runs a default NotchFilter over several spikes.
func RemoveAll(spec *Spectrum, spikes []Point, radius int) (*Grid, error) {
	return NewNotchFilter().RemoveAll(spec, spikes, radius)
}
