package spectral

import (
	"fmt"
	"math"
)

// Point is a bin coordinate. X indexes columns, Y indexes rows.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Grid is a row-major grid of real samples. It holds images, power spectra
// and notch masks alike.
type Grid struct {
	Rows int
	Cols int
	Data []float64
}

// NewGrid allocates a zeroed rows x cols grid.
func NewGrid(rows, cols int) *Grid {
	return &Grid{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// NewGridFrom builds a grid from a slice of equally sized rows.
func NewGridFrom(rows [][]float64) (*Grid, error) {
	if len(rows) == 0 {
		return NewGrid(0, 0), nil
	}
	cols := len(rows[0])
	g := NewGrid(len(rows), cols)
	for y, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d", y, len(row), cols)
		}
		copy(g.Data[y*cols:(y+1)*cols], row)
	}
	return g, nil
}

// At returns the sample at column x, row y.
func (g *Grid) At(x, y int) float64 { return g.Data[y*g.Cols+x] }

// Set stores v at column x, row y.
func (g *Grid) Set(x, y int, v float64) { g.Data[y*g.Cols+x] = v }

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	out := &Grid{Rows: g.Rows, Cols: g.Cols, Data: make([]float64, len(g.Data))}
	copy(out.Data, g.Data)
	return out
}

// Contains reports whether p addresses a cell of g.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Cols && p.Y >= 0 && p.Y < g.Rows
}

// Extrema describes the value range of a grid and where it is reached.
type Extrema struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	MinLoc Point   `json:"min_loc"`
	MaxLoc Point   `json:"max_loc"`
}

// Extrema scans g for its minimum and maximum. The first occurrence wins.
// An empty grid yields the zero value.
func (g *Grid) Extrema() Extrema {
	if len(g.Data) == 0 {
		return Extrema{}
	}
	e := Extrema{Min: math.Inf(1), Max: math.Inf(-1)}
	for i, v := range g.Data {
		if v < e.Min {
			e.Min = v
			e.MinLoc = Point{X: i % g.Cols, Y: i / g.Cols}
		}
		if v > e.Max {
			e.Max = v
			e.MaxLoc = Point{X: i % g.Cols, Y: i / g.Cols}
		}
	}
	return e
}

// Spectrum is the complex frequency-domain representation of a Grid.
type Spectrum struct {
	Rows int
	Cols int
	Data []complex128
}

// NewSpectrum allocates a zeroed rows x cols spectrum.
func NewSpectrum(rows, cols int) *Spectrum {
	return &Spectrum{Rows: rows, Cols: cols, Data: make([]complex128, rows*cols)}
}

// At returns the bin at column x, row y.
func (s *Spectrum) At(x, y int) complex128 { return s.Data[y*s.Cols+x] }

// Clone returns a deep copy of s.
func (s *Spectrum) Clone() *Spectrum {
	out := &Spectrum{Rows: s.Rows, Cols: s.Cols, Data: make([]complex128, len(s.Data))}
	copy(out.Data, s.Data)
	return out
}

// pack copies real samples into a new spectrum with a zero imaginary channel.
func pack(g *Grid) *Spectrum {
	s := NewSpectrum(g.Rows, g.Cols)
	for i, v := range g.Data {
		s.Data[i] = complex(v, 0)
	}
	return s
}

// realPart extracts the real channel of s into a new grid.
func realPart(s *Spectrum) *Grid {
	g := NewGrid(s.Rows, s.Cols)
	for i, c := range s.Data {
		g.Data[i] = real(c)
	}
	return g
}

func validateDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows%2 != 0 || cols%2 != 0 {
		return fmt.Errorf("%w: got %dx%d (rows x cols)", ErrInvalidDimensions, rows, cols)
	}
	return nil
}
