// Package server implements the MCP (Model Context Protocol) server for
// periodic-noise removal.
//
// An operator (usually an AI client) inspects an image's power spectrum,
// picks the spike that periodic noise produces, and asks the server to notch
// it out. Each step is an explicit tool call.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Basic Image Information:
//   - image_load: Load image and get metadata
//   - image_dimensions: Get width and height
//
// Spectrum Inspection:
//   - spectrum_render: Power spectrum as PNG, with optional grid and notch preview
//   - spectrum_zoom: Enlarged region of the spectrum
//   - spectrum_sample: Power at a bin and its symmetric points
//
// Noise Removal:
//   - noise_remove: Notch one or more spikes and return the filtered image
//
// Spectrum coordinates are unshifted: (0,0) is the DC term and low
// frequencies sit in the four corners.
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process. Spectra
// are recomputed per call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(server.WithLogger(logger), server.WithConfig(cfg))
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
