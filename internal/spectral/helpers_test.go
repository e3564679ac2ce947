package spectral

import (
	"math"
	"math/rand"
	"testing"
)

// noiseGrid returns a deterministic rows x cols grid of 8-bit-range values.
func noiseGrid(rows, cols int, seed int64) *Grid {
	rnd := rand.New(rand.NewSource(seed))
	g := NewGrid(rows, cols)
	for i := range g.Data {
		g.Data[i] = float64(rnd.Intn(256))
	}
	return g
}

// rippleGrid returns offset + amp*cos(2π(kx*x/cols + ky*y/rows)).
func rippleGrid(rows, cols int, offset, amp float64, kx, ky int) *Grid {
	g := NewGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			phase := 2 * math.Pi * (float64(kx*x)/float64(cols) + float64(ky*y)/float64(rows))
			g.Set(x, y, offset+amp*math.Cos(phase))
		}
	}
	return g
}

// requireGridNear fails t if the grids differ in shape or any cell differs by
// more than eps.
func requireGridNear(t *testing.T, got, want *Grid, eps float64) {
	t.Helper()
	if got.Rows != want.Rows || got.Cols != want.Cols {
		t.Fatalf("shape: got %dx%d, want %dx%d", got.Rows, got.Cols, want.Rows, want.Cols)
	}
	for i := range got.Data {
		if d := math.Abs(got.Data[i] - want.Data[i]); d > eps {
			t.Fatalf("cell (%d,%d): got %v, want %v (diff %v > %v)",
				i%got.Cols, i/got.Cols, got.Data[i], want.Data[i], d, eps)
		}
	}
}

// constGrid returns a rows x cols grid filled with v.
func constGrid(rows, cols int, v float64) *Grid {
	g := NewGrid(rows, cols)
	for i := range g.Data {
		g.Data[i] = v
	}
	return g
}
