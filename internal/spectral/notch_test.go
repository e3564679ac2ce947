package spectral

import (
	"errors"
	"math"
	"testing"
)

func TestSymmetricPoints(t *testing.T) {
	tests := []struct {
		name  string
		spike Point
		want  [4]Point
	}{
		{"interior", Point{X: 3, Y: 2}, [4]Point{{3, 2}, {3, 6}, {7, 2}, {7, 6}}},
		{"dc", Point{X: 0, Y: 0}, [4]Point{{0, 0}, {0, 8}, {10, 0}, {10, 8}}},
		{"nyquist", Point{X: 5, Y: 4}, [4]Point{{5, 4}, {5, 4}, {5, 4}, {5, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SymmetricPoints(tt.spike, 8, 10)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMirror_Involution(t *testing.T) {
	const rows, cols = 12, 16
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			p := Point{X: x, Y: y}
			if got := Mirror(Mirror(p, rows, cols), rows, cols); got != p {
				t.Fatalf("Mirror(Mirror(%v)) = %v", p, got)
			}
		}
	}

	pts := SymmetricPoints(Point{X: 3, Y: 5}, rows, cols)
	if Mirror(pts[3], rows, cols) != pts[0] {
		t.Errorf("full mirror %v does not map back to %v", pts[3], pts[0])
	}
	if Mirror(pts[1], rows, cols) != pts[2] {
		t.Errorf("vertical mirror %v does not map onto horizontal mirror %v", pts[1], pts[2])
	}
}

func TestBuildMask_RadiusZero(t *testing.T) {
	mask, err := BuildMask(8, 8, []Point{{X: 2, Y: 1}}, 0)
	if err != nil {
		t.Fatalf("BuildMask failed: %v", err)
	}

	blocked := map[Point]bool{{2, 1}: true, {2, 7}: true, {6, 1}: true, {6, 7}: true}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := 1.0
			if blocked[Point{x, y}] {
				want = 0
			}
			if got := mask.At(x, y); got != want {
				t.Errorf("mask(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestBuildMask_DiskArea(t *testing.T) {
	// A radius-2 disk covers 13 cells; the four disks around (8,8) are disjoint.
	mask, err := BuildMask(32, 32, []Point{{X: 8, Y: 8}}, 2)
	if err != nil {
		t.Fatalf("BuildMask failed: %v", err)
	}
	zeros := 0
	for _, v := range mask.Data {
		if v == 0 {
			zeros++
		}
	}
	if zeros != 4*13 {
		t.Errorf("blocked cells: got %d, want %d", zeros, 4*13)
	}
}

// periodicMask builds the reference mask by testing every cell against the
// disk centres shifted by whole periods.
func periodicMask(rows, cols int, spike Point, radius int) *Grid {
	mask := constGrid(rows, cols, 1)
	r2 := radius * radius
	for _, p := range SymmetricPoints(spike, rows, cols) {
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				for ky := -2; ky <= 2; ky++ {
					for kx := -2; kx <= 2; kx++ {
						dx, dy := x-p.X+kx*cols, y-p.Y+ky*rows
						if dx*dx+dy*dy <= r2 {
							mask.Set(x, y, 0)
						}
					}
				}
			}
		}
	}
	return mask
}

func TestBuildMask_LargeRadiusMatchesPeriodicDisk(t *testing.T) {
	const rows, cols = 8, 12
	for _, radius := range []int{5, 7, 9, 10, 13, 19, 20, 25} {
		got, err := BuildMask(rows, cols, []Point{{X: 3, Y: 2}}, radius)
		if err != nil {
			t.Fatalf("BuildMask(r=%d) failed: %v", radius, err)
		}
		requireGridNear(t, got, periodicMask(rows, cols, Point{X: 3, Y: 2}, radius), 0)
	}
}

func TestBuildMask_HugeRadius(t *testing.T) {
	for _, radius := range []int{1000, 1 << 40, math.MaxInt} {
		mask, err := BuildMask(8, 8, []Point{{X: 1, Y: 1}}, radius)
		if err != nil {
			t.Fatalf("BuildMask(r=%d) failed: %v", radius, err)
		}
		requireGridNear(t, mask, constGrid(8, 8, 0), 0)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		in, want Point
	}{
		{Point{X: 3, Y: 2}, Point{X: 3, Y: 2}},
		{Point{X: 12, Y: 2}, Point{X: 0, Y: 2}},
		{Point{X: 3, Y: 8}, Point{X: 3, Y: 0}},
		{Point{X: -1, Y: -1}, Point{X: 11, Y: 7}},
	}
	for _, tt := range tests {
		if got := Wrap(tt.in, 8, 12); got != tt.want {
			t.Errorf("Wrap(%v): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildMask_ConjugateSymmetric(t *testing.T) {
	const rows, cols = 16, 12
	tests := []struct {
		spike  Point
		radius int
	}{
		{Point{X: 0, Y: 3}, 2},
		{Point{X: 5, Y: 0}, 3},
		{Point{X: 11, Y: 15}, 4},
		{Point{X: 6, Y: 8}, 1},
		{Point{X: 1, Y: 1}, 10},
	}

	for _, tt := range tests {
		mask, err := BuildMask(rows, cols, []Point{tt.spike}, tt.radius)
		if err != nil {
			t.Fatalf("BuildMask(%v, %d) failed: %v", tt.spike, tt.radius, err)
		}
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				mx, my := (cols-x)%cols, (rows-y)%rows
				if mask.At(x, y) != mask.At(mx, my) {
					t.Fatalf("spike %v r=%d: mask(%d,%d)=%v but mask(%d,%d)=%v",
						tt.spike, tt.radius, x, y, mask.At(x, y), mx, my, mask.At(mx, my))
				}
			}
		}
	}
}

func TestBuildMask_NoSpikesIsAllPass(t *testing.T) {
	mask, err := BuildMask(4, 6, nil, DefaultRadius)
	if err != nil {
		t.Fatalf("BuildMask failed: %v", err)
	}
	requireGridNear(t, mask, constGrid(4, 6, 1), 0)
}

func TestApplyMask_DimensionMismatch(t *testing.T) {
	err := ApplyMask(NewSpectrum(4, 4), NewGrid(4, 6))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("got %v, want ErrDimensionMismatch", err)
	}
}

func TestRemove_RoundTripAllPass(t *testing.T) {
	img := noiseGrid(16, 10, 6)
	_, spec, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	out, err := RemoveAll(spec, nil, DefaultRadius)
	if err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	requireGridNear(t, out, img, 1e-6)
}

func TestRemove_RippleRemoved(t *testing.T) {
	tests := []struct {
		name   string
		kx, ky int
		spike  Point
		radius int
	}{
		{"pick left spike", 2, 0, Point{X: 2, Y: 0}, 0},
		{"pick mirror spike", 2, 0, Point{X: 6, Y: 0}, 1},
		{"vertical ripple", 0, 3, Point{X: 0, Y: 3}, 1},
		{"diagonal ripple", 1, 1, Point{X: 7, Y: 7}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, spec, err := Analyze(rippleGrid(8, 8, 100, 20, tt.kx, tt.ky))
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			out, err := Remove(spec, tt.spike, tt.radius)
			if err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			requireGridNear(t, out, constGrid(8, 8, 100), 1e-9)
		})
	}
}

func TestRemove_DCSpike(t *testing.T) {
	_, spec, err := Analyze(constGrid(6, 8, 42))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	out, err := Remove(spec, Point{X: 0, Y: 0}, 0)
	if err != nil {
		t.Fatalf("Remove at DC should not fail: %v", err)
	}
	if out.Rows != 6 || out.Cols != 8 {
		t.Fatalf("shape: got %dx%d, want 6x8", out.Rows, out.Cols)
	}
	// Removing DC leaves a flat, zero-mean image.
	requireGridNear(t, out, NewGrid(6, 8), 1e-9)
}

func TestRemove_CoordinateOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		spike Point
	}{
		{"x equals width", Point{X: 8, Y: 0}},
		{"y equals height", Point{X: 0, Y: 6}},
		{"negative x", Point{X: -1, Y: 0}},
		{"negative y", Point{X: 0, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, spec, err := Analyze(noiseGrid(6, 8, 7))
			if err != nil {
				t.Fatalf("Analyze failed: %v", err)
			}
			_, err = Remove(spec, tt.spike, DefaultRadius)
			if !errors.Is(err, ErrCoordinateOutOfRange) {
				t.Errorf("got %v, want ErrCoordinateOutOfRange", err)
			}
		})
	}
}

func TestRemove_InvalidRadius(t *testing.T) {
	_, spec, _ := Analyze(noiseGrid(4, 4, 8))
	_, err := Remove(spec, Point{X: 1, Y: 1}, -1)
	if !errors.Is(err, ErrInvalidRadius) {
		t.Errorf("got %v, want ErrInvalidRadius", err)
	}
}

func TestRemove_NilSpectrum(t *testing.T) {
	if _, err := Remove(nil, Point{}, 0); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("got %v, want ErrInvalidDimensions", err)
	}
}

func TestRemove_DimensionsPreserved(t *testing.T) {
	sizes := []struct{ rows, cols int }{{2, 2}, {8, 8}, {6, 10}, {20, 4}}
	for _, sz := range sizes {
		_, spec, err := Analyze(noiseGrid(sz.rows, sz.cols, 9))
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		out, err := Remove(spec, Point{X: sz.cols - 1, Y: sz.rows - 1}, 3)
		if err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if out.Rows != sz.rows || out.Cols != sz.cols {
			t.Errorf("%dx%d: output is %dx%d", sz.rows, sz.cols, out.Rows, out.Cols)
		}
	}
}

// imagRecorder records the largest imaginary residue left by the inverse.
type imagRecorder struct {
	Transform
	maxImag float64
}

func (p *imagRecorder) Inverse(s *Spectrum) error {
	if err := p.Transform.Inverse(s); err != nil {
		return err
	}
	for _, c := range s.Data {
		p.maxImag = math.Max(p.maxImag, math.Abs(imag(c)))
	}
	return nil
}

func TestRemove_OutputIsReal(t *testing.T) {
	spikes := []Point{{X: 0, Y: 3}, {X: 5, Y: 0}, {X: 3, Y: 7}, {X: 11, Y: 15}}
	for _, spike := range spikes {
		_, spec, err := Analyze(noiseGrid(16, 12, 10))
		if err != nil {
			t.Fatalf("Analyze failed: %v", err)
		}
		rec := &imagRecorder{Transform: GonumTransform{}}
		if _, err := NewNotchFilter(WithTransform(rec)).Remove(spec, spike, 2); err != nil {
			t.Fatalf("Remove failed: %v", err)
		}
		if rec.maxImag > 1e-9 {
			t.Errorf("spike %v: imaginary residue %v", spike, rec.maxImag)
		}
	}
}

func TestRemoveAll_MultipleSpikes(t *testing.T) {
	img := rippleGrid(16, 16, 50, 10, 3, 0)
	second := rippleGrid(16, 16, 0, 5, 0, 5)
	for i := range img.Data {
		img.Data[i] += second.Data[i]
	}

	_, spec, err := Analyze(img)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	out, err := RemoveAll(spec, []Point{{X: 3, Y: 0}, {X: 0, Y: 5}}, 0)
	if err != nil {
		t.Fatalf("RemoveAll failed: %v", err)
	}
	requireGridNear(t, out, constGrid(16, 16, 50), 1e-9)
}

func TestNotchFilter_Tracer(t *testing.T) {
	var names []string
	tracer := TracerFunc(func(name string, g *Grid) { names = append(names, name) })

	_, spec, _ := Analyze(noiseGrid(4, 4, 11))
	if _, err := NewNotchFilter(WithTracer(tracer)).Remove(spec, Point{X: 1, Y: 1}, 0); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if len(names) != 2 || names[0] != "notch_mask" || names[1] != "recovered" {
		t.Errorf("traced: got %v, want [notch_mask recovered]", names)
	}
}
