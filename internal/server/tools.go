package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the image file",
}

var fftProperty = map[string]interface{}{
	"type":        "string",
	"description": "FFT backend: gonum, godsp or algofft (power-of-two sizes only). Defaults to the server setting",
	"enum":        []string{"algofft", "godsp", "gonum"},
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and the even dimensions the spectrum will use. Odd widths or heights lose their last column or row.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file, plus the even-cropped size used for analysis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
				},
				"required": []string{"path"},
			},
		},

		// Spectrum Inspection
		{
			Name:        "spectrum_render",
			Description: "Render the power spectrum of an image as a PNG (DC term zeroed, unshifted: low frequencies sit in the corners). Use a grid with coordinates to read spike positions, and mark to preview the four notches a removal would cut.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"scale": map[string]interface{}{
						"type":        "string",
						"description": "Intensity scale: linear or log. Log keeps weak spikes visible",
						"enum":        []string{"linear", "log"},
						"default":     "log",
					},
					"palette": map[string]interface{}{
						"type":        "string",
						"description": "Color palette: gray or heat",
						"enum":        []string{"gray", "heat"},
						"default":     "gray",
					},
					"grid_spacing": map[string]interface{}{
						"type":        "integer",
						"description": "Grid line spacing in bins. 0 draws no grid",
						"default":     0,
					},
					"show_coordinates": map[string]interface{}{
						"type":        "boolean",
						"description": "Label grid intersections with their coordinates",
						"default":     false,
					},
					"grid_color": map[string]interface{}{
						"type":        "string",
						"description": "Grid line color as hex",
						"default":     "#00FF00",
					},
					"mark": map[string]interface{}{
						"type":        "object",
						"description": "Candidate spike to outline at its four symmetric points",
						"properties": map[string]interface{}{
							"x":      map[string]interface{}{"type": "integer"},
							"y":      map[string]interface{}{"type": "integer"},
							"radius": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x", "y"},
					},
					"fft": fftProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the rendered PNG",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "spectrum_zoom",
			Description: "Render a rectangular region of the power spectrum, enlarged with nearest-neighbour scaling so each bin stays a crisp block. Use this to pin down a spike's exact coordinates.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Enlargement factor. Default 4.0",
						"default":     4.0,
					},
					"log": map[string]interface{}{
						"type":        "boolean",
						"description": "Use log intensity scaling",
						"default":     true,
					},
					"palette": map[string]interface{}{
						"type":    "string",
						"enum":    []string{"gray", "heat"},
						"default": "gray",
					},
					"fft": fftProperty,
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "spectrum_sample",
			Description: "Read the power at a spectrum bin and at its three symmetric points, and report whether the bin is a local maximum. Use this to confirm a spike before removing it.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Column of the bin",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Row of the bin",
					},
					"fft": fftProperty,
				},
				"required": []string{"path", "x", "y"},
			},
		},

		// Noise Removal
		{
			Name:        "noise_remove",
			Description: "Remove periodic noise by zeroing disks around a spike and its three symmetric points in the spectrum, then inverting. Give x and y for one spike, or spikes for several. Returns the filtered image as a normalized PNG and the raw output range.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Spike column",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Spike row",
					},
					"spikes": map[string]interface{}{
						"type":        "array",
						"description": "Additional spikes to notch in the same pass",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"x": map[string]interface{}{"type": "integer"},
								"y": map[string]interface{}{"type": "integer"},
							},
							"required": []string{"x", "y"},
						},
					},
					"radius": map[string]interface{}{
						"type":        "integer",
						"description": "Notch disk radius in bins. Defaults to the server setting (10)",
					},
					"fft": fftProperty,
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Optional path to also save the filtered PNG",
					},
				},
				"required": []string{"path"},
			},
		},
	}
}
