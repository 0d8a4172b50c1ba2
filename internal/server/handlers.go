package server

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/darkframe/lutforge/internal/imageio"
	"github.com/darkframe/lutforge/internal/lut"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_adjust", "lut_export").
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
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
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
	// Image Operations
	case "image_info":
		return s.handleImageInfo(args)
	case "image_adjust":
		return s.handleImageAdjust(args)
	case "image_histogram":
		return s.handleImageHistogram(args)

	// Color Wheel
	case "wheel_point":
		return s.handleWheelPoint(args)

	// LUT Export
	case "lut_export":
		return s.handleLUTExport(args)
	case "lut_formats":
		return s.handleLUTFormats(args)

	// Preset Management
	case "preset_list":
		return s.handlePresetList(args)
	case "preset_save":
		return s.handlePresetSave(args)
	case "preset_get":
		return s.handlePresetGet(args)
	case "preset_update":
		return s.handlePresetUpdate(args)
	case "preset_delete":
		return s.handlePresetDelete(args)
	case "preset_search":
		return s.handlePresetSearch(args)

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
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// resolveAdjustments picks between inline adjustments and a stored preset.
// A preset ID wins when both are given.
func (s *Server) resolveAdjustments(presetID string, raw json.RawMessage) (engine.Adjustments, error) {
	if presetID != "" {
		p, err := s.presets.Get(presetID)
		if err != nil {
			return engine.Adjustments{}, err
		}
		return p.Adjustments, nil
	}

	var adj engine.Adjustments
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &adj); err != nil {
			return engine.Adjustments{}, fmt.Errorf("invalid adjustments: %w", err)
		}
	}
	return adj, nil
}

// === Image Operation Handlers ===

type imageInfoArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageInfo(args json.RawMessage) (interface{}, error) {
	var a imageInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imageio.ReadInfo(a.Path)
}

type imageAdjustArgs struct {
	Path        string          `json:"path"`
	OutputPath  string          `json:"output_path"`
	Adjustments json.RawMessage `json:"adjustments"`
	PresetID    string          `json:"preset_id"`
	MaxEdge     int             `json:"max_edge"`
}

// AdjustResult reports where an adjusted image was written.
type AdjustResult struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func (s *Server) handleImageAdjust(args json.RawMessage) (interface{}, error) {
	var a imageAdjustArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	adj, err := s.resolveAdjustments(a.PresetID, a.Adjustments)
	if err != nil {
		return nil, err
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.MaxEdge > 0 {
		if buf, err = imageio.Fit(buf, a.MaxEdge); err != nil {
			return nil, err
		}
	}

	out, err := engine.Process(buf, adj)
	if err != nil {
		return nil, err
	}
	if err := imageio.Save(out, a.OutputPath); err != nil {
		return nil, err
	}
	return &AdjustResult{OutputPath: a.OutputPath, Width: out.Width, Height: out.Height}, nil
}

type imageHistogramArgs struct {
	Path        string          `json:"path"`
	Adjustments json.RawMessage `json:"adjustments"`
	PresetID    string          `json:"preset_id"`
}

// HistogramResult bundles the channel histograms with the tone distribution.
type HistogramResult struct {
	Histogram  *engine.Histogram `json:"histogram"`
	Shadows    uint64            `json:"shadows"`
	Midtones   uint64            `json:"midtones"`
	Highlights uint64            `json:"highlights"`
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageHistogramArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	adj, err := s.resolveAdjustments(a.PresetID, a.Adjustments)
	if err != nil {
		return nil, err
	}

	buf, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if adj != (engine.Adjustments{}) {
		if buf, err = engine.Process(buf, adj); err != nil {
			return nil, err
		}
	}

	hist, err := engine.Generate(buf)
	if err != nil {
		return nil, err
	}
	sh, mid, hi := hist.ToneDistribution()
	return &HistogramResult{Histogram: hist, Shadows: sh, Midtones: mid, Highlights: hi}, nil
}

// === Color Wheel Handlers ===

type wheelPointArgs struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
}

// WheelPointResult is a wheel position with its swatch color.
type WheelPointResult struct {
	engine.WheelPoint
	Swatch string `json:"swatch"`
}

func (s *Server) handleWheelPoint(args json.RawMessage) (interface{}, error) {
	var a wheelPointArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Radius <= 0 {
		return nil, fmt.Errorf("radius must be positive")
	}
	p := engine.WheelPointAt(a.X, a.Y, a.Radius)
	return &WheelPointResult{WheelPoint: p, Swatch: engine.SwatchHex(p.Hue, p.Saturation)}, nil
}

// === LUT Export Handlers ===

type lutExportArgs struct {
	OutputPath  string          `json:"output_path"`
	Format      string          `json:"format"`
	Resolution  int             `json:"resolution"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Adjustments json.RawMessage `json:"adjustments"`
	PresetID    string          `json:"preset_id"`
}

// LUTExportResult reports a finished export.
type LUTExportResult struct {
	OutputPath string `json:"output_path"`
	Format     string `json:"format"`
	Resolution int    `json:"resolution"`
	Samples    int    `json:"samples"`
	SizeBytes  int    `json:"size_bytes"`
}

func (s *Server) handleLUTExport(args json.RawMessage) (interface{}, error) {
	var a lutExportArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	adj, err := s.resolveAdjustments(a.PresetID, a.Adjustments)
	if err != nil {
		return nil, err
	}

	opts := lut.DefaultOptions()
	if a.Format != "" {
		opts.Format = lut.Format(a.Format)
	}
	if a.Resolution != 0 {
		opts.Resolution = a.Resolution
	}
	if a.Title != "" {
		opts.Title = a.Title
	}
	opts.Description = a.Description

	out, err := s.exporter.Export(adj, opts, func(p lut.Progress) {
		if s.notify == nil {
			return
		}
		s.notify(&MCPNotification{
			JSONRPC: "2.0",
			Method:  "notifications/progress",
			Params: map[string]interface{}{
				"progress": p.Done,
				"total":    p.Total,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(a.OutputPath, []byte(out), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write LUT file: %w", err)
	}
	n := opts.Resolution
	return &LUTExportResult{
		OutputPath: a.OutputPath,
		Format:     string(opts.Format),
		Resolution: n,
		Samples:    n * n * n,
		SizeBytes:  len(out),
	}, nil
}

func (s *Server) handleLUTFormats(json.RawMessage) (interface{}, error) {
	formats := make([]map[string]string, 0, 3)
	for _, f := range lut.Formats() {
		formats = append(formats, map[string]string{
			"format":    string(f),
			"extension": f.Extension(),
		})
	}
	return map[string]interface{}{
		"formats":     formats,
		"resolutions": lut.Resolutions(),
	}, nil
}

// === Preset Management Handlers ===

func (s *Server) handlePresetList(json.RawMessage) (interface{}, error) {
	return s.presets.List()
}

type presetSaveArgs struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tags        []string           `json:"tags"`
	Adjustments engine.Adjustments `json:"adjustments"`
}

func (s *Server) handlePresetSave(args json.RawMessage) (interface{}, error) {
	var a presetSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.presets.Create(a.Name, a.Description, a.Tags, a.Adjustments)
}

type presetIDArgs struct {
	ID string `json:"id"`
}

func (s *Server) handlePresetGet(args json.RawMessage) (interface{}, error) {
	var a presetIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.presets.Get(a.ID)
}

type presetUpdateArgs struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Tags        []string           `json:"tags"`
	Adjustments engine.Adjustments `json:"adjustments"`
}

func (s *Server) handlePresetUpdate(args json.RawMessage) (interface{}, error) {
	var a presetUpdateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.presets.Update(a.ID, a.Name, a.Description, a.Tags, a.Adjustments)
}

func (s *Server) handlePresetDelete(args json.RawMessage) (interface{}, error) {
	var a presetIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if err := s.presets.Delete(a.ID); err != nil {
		return nil, err
	}
	return map[string]interface{}{"deleted": a.ID}, nil
}

type presetSearchArgs struct {
	Query string   `json:"query"`
	Tags  []string `json:"tags"`
}

func (s *Server) handlePresetSearch(args json.RawMessage) (interface{}, error) {
	var a presetSearchArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.presets.Search(a.Query, a.Tags)
}
