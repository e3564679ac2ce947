package imaging

import (
	"fmt"
	"math"

	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

// PowerSample is the power of one spectrum bin.
type PowerSample struct {
	X int `json:"x"`
	Y int `json:"y"`

	// Power is re²+im² as computed by spectral.Analyze (0 at the DC bin).
	Power float64 `json:"power"`

	// Decibels is 10*log10(1+Power), finite for every bin.
	Decibels float64 `json:"decibels"`

	// LocalMax is true when Power is positive and no wrapped 8-neighbour
	// exceeds it.
	LocalMax bool `json:"local_max"`
}

// SpikeSample describes a candidate spike and the bins a notch at it would
// also block.
type SpikeSample struct {
	Spike PowerSample `json:"spike"`

	// Mirrors are the vertical, horizontal and full mirrors of Spike, wrapped
	// into the spectrum. A conjugate-symmetric spike shows the same power at
	// Spike and at the full mirror.
	Mirrors []PowerSample `json:"mirrors"`

	// IsDC warns that Spike is the zero-frequency bin; notching it removes the
	// image's mean intensity rather than periodic noise.
	IsDC bool `json:"is_dc"`
}

// SamplePower reads the power spectrum at (x, y) and at its symmetric points.
// It helps an operator confirm a pick before committing to it; it never
// searches for spikes on its own.
func SamplePower(power *spectral.Grid, x, y int) (*SpikeSample, error) {
	spike := spectral.Point{X: x, Y: y}
	if !power.Contains(spike) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d spectrum",
			spectral.ErrCoordinateOutOfRange, x, y, power.Cols, power.Rows)
	}

	pts := spectral.SymmetricPoints(spike, power.Rows, power.Cols)
	result := &SpikeSample{
		Spike:   samplePoint(power, pts[0]),
		Mirrors: make([]PowerSample, 0, 3),
		IsDC:    x == 0 && y == 0,
	}
	for _, p := range pts[1:] {
		result.Mirrors = append(result.Mirrors, samplePoint(power, p))
	}
	return result, nil
}

func samplePoint(power *spectral.Grid, p spectral.Point) PowerSample {
	x, y := wrapIndex(p.X, power.Cols), wrapIndex(p.Y, power.Rows)
	v := power.At(x, y)

	localMax := v > 0
	for dy := -1; dy <= 1 && localMax; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if power.At(wrapIndex(x+dx, power.Cols), wrapIndex(y+dy, power.Rows)) > v {
				localMax = false
				break
			}
		}
	}

	return PowerSample{
		X:        x,
		Y:        y,
		Power:    v,
		Decibels: 10 * math.Log10(1+v),
		LocalMax: localMax,
	}
}
