// Package server implements the MCP (Model Context Protocol) server for the
// color grading tools.
//
// This package provides a JSON-RPC 2.0 server that exposes the adjustment
// engine, histogram analysis, preset store, and LUT exporter through the MCP
// protocol, so MCP-compatible clients can grade images and bake LUTs without
// linking the engine directly.
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
// Image Operations:
//   - image_info: Image metadata without a full decode
//   - image_adjust: Apply adjustments and write the result
//   - image_histogram: RGB/luminance histograms and tone distribution
//
// Color Wheel:
//   - wheel_point: Wheel position to hue/saturation with swatch color
//
// LUT Export:
//   - lut_export: Bake the transform into a CUBE, 3DL, or CSP file
//   - lut_formats: Supported formats and grid resolutions
//
// Preset Management:
//   - preset_list, preset_save, preset_get, preset_update, preset_delete,
//     preset_search
//
// # Image Caching
//
// The server keeps decoded pixel buffers in memory, keyed by path, so
// adjusting and then histogramming the same file decodes it once. The cache
// persists for the lifetime of the server process.
//
// # Progress Notifications
//
// While lut_export samples the grid, the server emits
// notifications/progress messages so clients can show a progress bar for the
// larger resolutions.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	store, err := preset.Open(dbPath)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	srv := server.New(store, logger)
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
