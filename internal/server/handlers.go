package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/ironsheep/denoise-mcp/internal/imaging"
	"github.com/ironsheep/denoise-mcp/internal/spectral"
)

const (
	defaultGridColor = "#00FF00"
	defaultMarkColor = "#FF00FF"
	defaultZoomScale = 4.0
)

// errNoSpikeSelected is returned by noise_remove when the caller names no
// spike at all.
var errNoSpikeSelected = errors.New("no spike selected: give x and y, or spikes")

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "spectrum_render", "noise_remove").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.logger.Info("tool failed", zap.String("tool", params.Name), zap.Error(err))
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Spectrum Inspection
	case "spectrum_render":
		return s.handleSpectrumRender(args)
	case "spectrum_zoom":
		return s.handleSpectrumZoom(args)
	case "spectrum_sample":
		return s.handleSpectrumSample(args)

	// Noise Removal
	case "noise_remove":
		return s.handleNoiseRemove(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// finishImage optionally saves img to path and returns it base64 encoded.
func (s *Server) finishImage(img image.Image, path string) (*imaging.ImageResult, error) {
	if path != "" {
		if err := imaging.SavePNG(path, img); err != nil {
			return nil, err
		}
		s.logger.Debug("saved image", zap.String("output_path", path))
	}
	return imaging.EncodePNG(img)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Spectrum Inspection Handlers ===

type markArgs struct {
	X      int  `json:"x"`
	Y      int  `json:"y"`
	Radius *int `json:"radius"`
}

type spectrumRenderArgs struct {
	Path            string    `json:"path"`
	Scale           string    `json:"scale"`
	Palette         string    `json:"palette"`
	GridSpacing     int       `json:"grid_spacing"`
	ShowCoordinates bool      `json:"show_coordinates"`
	GridColor       string    `json:"grid_color"`
	Mark            *markArgs `json:"mark"`
	FFT             string    `json:"fft"`
	OutputPath      string    `json:"output_path"`
}

// SpectrumRenderResult is a rendered power spectrum.
type SpectrumRenderResult struct {
	imaging.ImageResult
	Scale     string  `json:"scale"`
	Palette   string  `json:"palette"`
	Transform string  `json:"transform"`
	MinPower  float64 `json:"min_power"`
	MaxPower  float64 `json:"max_power"`
	SavedTo   string  `json:"saved_to,omitempty"`
}

func (s *Server) handleSpectrumRender(args json.RawMessage) (interface{}, error) {
	var a spectrumRenderArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == "" {
		a.Scale = imaging.DefaultScale
	}
	if a.Palette == "" {
		a.Palette = imaging.PaletteGray
	}
	if a.GridColor == "" {
		a.GridColor = defaultGridColor
	}

	power, _, transform, err := s.analyze(a.Path, a.FFT)
	if err != nil {
		return nil, err
	}
	rendered, err := imaging.RenderSpectrum(power, imaging.RenderOptions{Scale: a.Scale, Palette: a.Palette})
	if err != nil {
		return nil, err
	}
	if a.GridSpacing > 0 {
		rendered = imaging.GridOverlay(rendered, a.GridSpacing, a.ShowCoordinates, a.GridColor)
	}
	if a.Mark != nil {
		spike := spectral.Point{X: a.Mark.X, Y: a.Mark.Y}
		if !power.Contains(spike) {
			return nil, fmt.Errorf("%w: mark (%d,%d) outside %dx%d spectrum",
				spectral.ErrCoordinateOutOfRange, spike.X, spike.Y, power.Cols, power.Rows)
		}
		radius := s.cfg.Radius
		if a.Mark.Radius != nil {
			radius = *a.Mark.Radius
		}
		if radius < 0 {
			return nil, fmt.Errorf("%w: %d", spectral.ErrInvalidRadius, radius)
		}
		imaging.MarkNotch(rendered, spike, radius, defaultMarkColor)
	}

	img, err := s.finishImage(rendered, a.OutputPath)
	if err != nil {
		return nil, err
	}
	e := power.Extrema()
	return &SpectrumRenderResult{
		ImageResult: *img,
		Scale:       a.Scale,
		Palette:     a.Palette,
		Transform:   transform.Name(),
		MinPower:    e.Min,
		MaxPower:    e.Max,
		SavedTo:     a.OutputPath,
	}, nil
}

type spectrumZoomArgs struct {
	Path    string  `json:"path"`
	X1      int     `json:"x1"`
	Y1      int     `json:"y1"`
	X2      int     `json:"x2"`
	Y2      int     `json:"y2"`
	Scale   float64 `json:"scale"`
	Log     *bool   `json:"log"`
	Palette string  `json:"palette"`
	FFT     string  `json:"fft"`
}

func (s *Server) handleSpectrumZoom(args json.RawMessage) (interface{}, error) {
	var a spectrumZoomArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = defaultZoomScale
	}
	opts := imaging.RenderOptions{Scale: imaging.DefaultScale, Palette: a.Palette}
	if a.Log != nil {
		opts.Scale = imaging.ScaleLinear
		if *a.Log {
			opts.Scale = imaging.ScaleLog
		}
	}
	if opts.Palette == "" {
		opts.Palette = imaging.PaletteGray
	}

	power, _, _, err := s.analyze(a.Path, a.FFT)
	if err != nil {
		return nil, err
	}
	rendered, err := imaging.RenderSpectrum(power, opts)
	if err != nil {
		return nil, err
	}
	return imaging.Zoom(rendered, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type spectrumSampleArgs struct {
	Path string `json:"path"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	FFT  string `json:"fft"`
}

func (s *Server) handleSpectrumSample(args json.RawMessage) (interface{}, error) {
	var a spectrumSampleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	power, _, _, err := s.analyze(a.Path, a.FFT)
	if err != nil {
		return nil, err
	}
	return imaging.SamplePower(power, a.X, a.Y)
}

// === Noise Removal Handlers ===

type noiseRemoveArgs struct {
	Path       string           `json:"path"`
	X          *int             `json:"x"`
	Y          *int             `json:"y"`
	Spikes     []spectral.Point `json:"spikes"`
	Radius     *int             `json:"radius"`
	FFT        string           `json:"fft"`
	OutputPath string           `json:"output_path"`
}

// selection returns the spikes named by the arguments, the x/y pair first.
func (a noiseRemoveArgs) selection() ([]spectral.Point, error) {
	var spikes []spectral.Point
	switch {
	case a.X != nil && a.Y != nil:
		spikes = append(spikes, spectral.Point{X: *a.X, Y: *a.Y})
	case a.X != nil || a.Y != nil:
		return nil, errors.New("x and y must be given together")
	}
	spikes = append(spikes, a.Spikes...)
	if len(spikes) == 0 {
		return nil, errNoSpikeSelected
	}
	return spikes, nil
}

// NoiseRemoveResult is the filtered image and what was cut to produce it.
type NoiseRemoveResult struct {
	imaging.ImageResult

	// Spikes are the selected spikes; Notches lists the four notch centres
	// stamped for each of them, wrapped into the spectrum.
	Spikes  []spectral.Point    `json:"spikes"`
	Notches [][4]spectral.Point `json:"notches"`

	Radius    int    `json:"radius"`
	Transform string `json:"transform"`

	// RawMin and RawMax are the output range before normalization to 0..255.
	RawMin  float64 `json:"raw_min"`
	RawMax  float64 `json:"raw_max"`
	SavedTo string  `json:"saved_to,omitempty"`
}

func (s *Server) handleNoiseRemove(args json.RawMessage) (interface{}, error) {
	var a noiseRemoveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	spikes, err := a.selection()
	if err != nil {
		return nil, err
	}
	radius := s.cfg.Radius
	if a.Radius != nil {
		radius = *a.Radius
	}

	_, spec, transform, err := s.analyze(a.Path, a.FFT)
	if err != nil {
		return nil, err
	}
	filter := spectral.NewNotchFilter(
		spectral.WithTransform(transform),
		spectral.WithTracer(spectral.LogTracer{Logger: s.logger.With(zap.String("path", a.Path))}),
	)
	out, err := filter.RemoveAll(spec, spikes, radius)
	if err != nil {
		return nil, err
	}

	e := out.Extrema()
	img, err := s.finishImage(imaging.Normalize(out), a.OutputPath)
	if err != nil {
		return nil, err
	}

	notches := make([][4]spectral.Point, len(spikes))
	for i, p := range spikes {
		for j, q := range spectral.SymmetricPoints(p, out.Rows, out.Cols) {
			notches[i][j] = spectral.Wrap(q, out.Rows, out.Cols)
		}
	}
	s.logger.Info("noise removed",
		zap.String("path", a.Path),
		zap.Any("spikes", spikes),
		zap.Int("radius", radius),
		zap.String("transform", transform.Name()),
	)
	return &NoiseRemoveResult{
		ImageResult: *img,
		Spikes:      spikes,
		Notches:     notches,
		Radius:      radius,
		Transform:   transform.Name(),
		RawMin:      e.Min,
		RawMax:      e.Max,
		SavedTo:     a.OutputPath,
	}, nil
}
