package spectral

import (
	"go.uber.org/zap"
)

// Tracer receives intermediate grids for inspection. Implementations must not
// retain or modify g after Trace returns.
type Tracer interface {
	Trace(name string, g *Grid)
}

// NopTracer discards everything.
type NopTracer struct{}

// Trace implements Tracer.
func (NopTracer) Trace(string, *Grid) {}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(name string, g *Grid)

// Trace implements Tracer.
func (f TracerFunc) Trace(name string, g *Grid) { f(name, g) }

// LogTracer logs the value range of each traced grid at debug level. Grids
// whose values leave [0,1] are flagged, since they need normalizing before
// display.
type LogTracer struct {
	Logger *zap.Logger
}

// Trace implements Tracer.
func (t LogTracer) Trace(name string, g *Grid) {
	if t.Logger == nil || g == nil {
		return
	}
	e := g.Extrema()
	t.Logger.Debug("trace",
		zap.String("grid", name),
		zap.Int("rows", g.Rows),
		zap.Int("cols", g.Cols),
		zap.Float64("min", e.Min),
		zap.Int("min_x", e.MinLoc.X),
		zap.Int("min_y", e.MinLoc.Y),
		zap.Float64("max", e.Max),
		zap.Int("max_x", e.MaxLoc.X),
		zap.Int("max_y", e.MaxLoc.Y),
		zap.Bool("needs_normalize", e.Min < 0 || e.Max > 1),
	)
}
