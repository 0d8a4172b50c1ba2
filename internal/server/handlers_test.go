package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/darkframe/lutforge/internal/engine"
	"github.com/darkframe/lutforge/internal/preset"
)

// createTestImageFile writes a solid-color PNG into the test temp dir.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool runs a tool through executeTool with map arguments.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}) (interface{}, error) {
	t.Helper()
	raw, err := json.Marshal(args)
	if err != nil {
		t.Fatalf("failed to marshal arguments: %v", err)
	}
	return s.executeTool(name, raw)
}

func TestHandleToolsCall_ImageInfo(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	params := map[string]interface{}{
		"name": "image_info",
		"arguments": map[string]interface{}{
			"path": imgPath,
		},
	}
	paramsJSON, _ := json.Marshal(params)

	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	}

	resp := s.handleRequest(req)

	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		t.Fatalf("Unexpected error: %v", resp.Error)
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatal("Result should be a map")
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) == 0 {
		t.Fatal("Result missing content")
	}
	text, _ := content[0]["text"].(string)
	if !strings.Contains(text, `"width": 100`) {
		t.Errorf("content does not report width:\n%s", text)
	}
}

func TestHandleToolsCall_NonExistentFile(t *testing.T) {
	s := newTestServer(t)

	params := map[string]interface{}{
		"name": "image_info",
		"arguments": map[string]interface{}{
			"path": "/nonexistent/image.png",
		},
	}
	paramsJSON, _ := json.Marshal(params)

	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  paramsJSON,
	}

	resp := s.handleToolsCall(req)

	if resp.Error == nil {
		t.Fatal("Expected error for non-existent file")
	}
	if resp.Error.Code != -32000 {
		t.Errorf("Error code: got %d, want -32000", resp.Error.Code)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	req := &MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`{not json`),
	}

	resp := s.handleToolsCall(req)
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602 for bad params, got %+v", resp.Error)
	}
}

func TestExecuteTool_UnknownTool(t *testing.T) {
	s := newTestServer(t)
	if _, err := callTool(t, s, "no_such_tool", map[string]interface{}{}); err == nil {
		t.Error("expected error for unknown tool")
	}
}

func TestImageAdjust(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 10, 10, color.RGBA{60, 60, 60, 255})
	outPath := filepath.Join(t.TempDir(), "out.png")

	res, err := callTool(t, s, "image_adjust", map[string]interface{}{
		"path":        imgPath,
		"output_path": outPath,
		"adjustments": map[string]interface{}{"exposure": 1.0},
	})
	if err != nil {
		t.Fatalf("image_adjust failed: %v", err)
	}

	adjusted, ok := res.(*AdjustResult)
	if !ok {
		t.Fatalf("unexpected result type %T", res)
	}
	if adjusted.Width != 10 || adjusted.Height != 10 {
		t.Errorf("dimensions: got %dx%d", adjusted.Width, adjusted.Height)
	}

	// One stop up doubles the 60-level gray.
	buf, err := s.cache.Load(outPath)
	if err != nil {
		t.Fatalf("failed to reload output: %v", err)
	}
	if buf.Pix[0] != 120 {
		t.Errorf("red after one stop: got %d, want 120", buf.Pix[0])
	}
}

func TestImageAdjust_AppliesColorGrading(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 4, 4, color.RGBA{20, 20, 20, 255})
	outPath := filepath.Join(t.TempDir(), "graded.png")

	_, err := callTool(t, s, "image_adjust", map[string]interface{}{
		"path":        imgPath,
		"output_path": outPath,
		"adjustments": map[string]interface{}{
			"color_grading": map[string]interface{}{
				"shadows": map[string]interface{}{"red": 50.0},
			},
		},
	})
	if err != nil {
		t.Fatalf("image_adjust failed: %v", err)
	}

	// The shadow offset must reach the written pixels: 20/255 + 0.5
	// rounds to 148.
	buf, err := s.cache.Load(outPath)
	if err != nil {
		t.Fatalf("failed to reload output: %v", err)
	}
	if buf.Pix[0] != 148 || buf.Pix[1] != 20 || buf.Pix[2] != 20 {
		t.Errorf("graded pixel: got (%d,%d,%d), want (148,20,20)",
			buf.Pix[0], buf.Pix[1], buf.Pix[2])
	}
}

func TestImageAdjust_InvalidAdjustments(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 4, 4, color.RGBA{10, 10, 10, 255})

	_, err := callTool(t, s, "image_adjust", map[string]interface{}{
		"path":        imgPath,
		"output_path": filepath.Join(t.TempDir(), "out.png"),
		"adjustments": map[string]interface{}{"exposure": 40.0},
	})
	if err == nil {
		t.Error("expected validation error for out-of-range exposure")
	}
}

func TestImageHistogram(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 8, 8, color.RGBA{200, 200, 200, 255})

	res, err := callTool(t, s, "image_histogram", map[string]interface{}{
		"path": imgPath,
	})
	if err != nil {
		t.Fatalf("image_histogram failed: %v", err)
	}

	hist, ok := res.(*HistogramResult)
	if !ok {
		t.Fatalf("unexpected result type %T", res)
	}
	if hist.Histogram.Red[200] != 64 {
		t.Errorf("red bin 200: got %d, want 64", hist.Histogram.Red[200])
	}
	if hist.Highlights != 64 || hist.Shadows != 0 {
		t.Errorf("tone distribution: shadows=%d highlights=%d", hist.Shadows, hist.Highlights)
	}
}

func TestImageHistogram_AppliesColorGrading(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 8, 8, color.RGBA{20, 20, 20, 255})

	res, err := callTool(t, s, "image_histogram", map[string]interface{}{
		"path": imgPath,
		"adjustments": map[string]interface{}{
			"color_grading": map[string]interface{}{
				"shadows": map[string]interface{}{"red": 50.0},
			},
		},
	})
	if err != nil {
		t.Fatalf("image_histogram failed: %v", err)
	}

	hist := res.(*HistogramResult)
	if hist.Histogram.Red[148] != 64 {
		t.Errorf("red bin 148: got %d, want 64", hist.Histogram.Red[148])
	}
	if hist.Histogram.Red[20] != 0 {
		t.Errorf("red bin 20: got %d, want 0 after grading", hist.Histogram.Red[20])
	}
}

func TestImageHistogram_EmptyAdjustmentsMatchesUnprocessed(t *testing.T) {
	s := newTestServer(t)
	imgPath := createTestImageFile(t, 8, 8, color.RGBA{200, 200, 200, 255})

	plain, err := callTool(t, s, "image_histogram", map[string]interface{}{
		"path": imgPath,
	})
	if err != nil {
		t.Fatalf("image_histogram failed: %v", err)
	}
	withEmpty, err := callTool(t, s, "image_histogram", map[string]interface{}{
		"path":        imgPath,
		"adjustments": map[string]interface{}{},
	})
	if err != nil {
		t.Fatalf("image_histogram with empty adjustments failed: %v", err)
	}

	a := plain.(*HistogramResult)
	b := withEmpty.(*HistogramResult)
	if a.Histogram.Red != b.Histogram.Red || a.Histogram.Luminance != b.Histogram.Luminance {
		t.Error("empty adjustments changed the histogram")
	}
}

func TestWheelPoint(t *testing.T) {
	s := newTestServer(t)

	res, err := callTool(t, s, "wheel_point", map[string]interface{}{
		"x":      50.0,
		"y":      0.0,
		"radius": 100.0,
	})
	if err != nil {
		t.Fatalf("wheel_point failed: %v", err)
	}

	p, ok := res.(*WheelPointResult)
	if !ok {
		t.Fatalf("unexpected result type %T", res)
	}
	if p.Hue != 90 {
		t.Errorf("hue: got %g, want 90", p.Hue)
	}
	if p.Saturation != 50 {
		t.Errorf("saturation: got %g, want 50", p.Saturation)
	}
	if !strings.HasPrefix(p.Swatch, "#") || len(p.Swatch) != 7 {
		t.Errorf("swatch: got %q", p.Swatch)
	}

	if _, err := callTool(t, s, "wheel_point", map[string]interface{}{
		"x": 1.0, "y": 1.0, "radius": 0.0,
	}); err == nil {
		t.Error("expected error for zero radius")
	}
}

func TestLUTExport(t *testing.T) {
	s := newTestServer(t)
	outPath := filepath.Join(t.TempDir(), "look.cube")

	res, err := callTool(t, s, "lut_export", map[string]interface{}{
		"output_path": outPath,
		"format":      "cube",
		"resolution":  17,
		"title":       "Neutral",
	})
	if err != nil {
		t.Fatalf("lut_export failed: %v", err)
	}

	exported, ok := res.(*LUTExportResult)
	if !ok {
		t.Fatalf("unexpected result type %T", res)
	}
	if exported.Samples != 17*17*17 {
		t.Errorf("samples: got %d, want %d", exported.Samples, 17*17*17)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read LUT file: %v", err)
	}
	if !strings.HasPrefix(string(data), "TITLE \"Neutral\"\n") {
		t.Errorf("unexpected file header: %q", string(data[:40]))
	}
	if len(data) != exported.SizeBytes {
		t.Errorf("size: file %d bytes, result says %d", len(data), exported.SizeBytes)
	}
}

func TestLUTExport_InvalidResolution(t *testing.T) {
	s := newTestServer(t)
	_, err := callTool(t, s, "lut_export", map[string]interface{}{
		"output_path": filepath.Join(t.TempDir(), "look.cube"),
		"resolution":  21,
	})
	if err == nil {
		t.Error("expected error for unsupported resolution")
	}
}

func TestLUTFormats(t *testing.T) {
	s := newTestServer(t)
	res, err := callTool(t, s, "lut_formats", map[string]interface{}{})
	if err != nil {
		t.Fatalf("lut_formats failed: %v", err)
	}
	m, ok := res.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected result type %T", res)
	}
	if _, ok := m["formats"]; !ok {
		t.Error("result missing formats")
	}
	if _, ok := m["resolutions"]; !ok {
		t.Error("result missing resolutions")
	}
}

func TestPresetLifecycle(t *testing.T) {
	s := newTestServer(t)

	saved, err := callTool(t, s, "preset_save", map[string]interface{}{
		"name":        "Warm Punch",
		"description": "warm contrasty look",
		"tags":        []string{"warm"},
		"adjustments": map[string]interface{}{"contrast": 0.2, "temperature": 30.0},
	})
	if err != nil {
		t.Fatalf("preset_save failed: %v", err)
	}
	p, ok := saved.(*preset.Preset)
	if !ok {
		t.Fatalf("unexpected result type %T", saved)
	}

	got, err := callTool(t, s, "preset_get", map[string]interface{}{"id": p.ID})
	if err != nil {
		t.Fatalf("preset_get failed: %v", err)
	}
	if got.(*preset.Preset).Name != "Warm Punch" {
		t.Errorf("name: got %q", got.(*preset.Preset).Name)
	}

	found, err := callTool(t, s, "preset_search", map[string]interface{}{"query": "contrasty"})
	if err != nil {
		t.Fatalf("preset_search failed: %v", err)
	}
	if n := len(found.([]*preset.Preset)); n != 1 {
		t.Errorf("search results: got %d, want 1", n)
	}

	updated, err := callTool(t, s, "preset_update", map[string]interface{}{
		"id":          p.ID,
		"name":        "Warm Punch II",
		"adjustments": map[string]interface{}{"contrast": 0.4},
	})
	if err != nil {
		t.Fatalf("preset_update failed: %v", err)
	}
	if updated.(*preset.Preset).Adjustments.Contrast != 0.4 {
		t.Errorf("updated contrast: got %g", updated.(*preset.Preset).Adjustments.Contrast)
	}

	if _, err := callTool(t, s, "preset_delete", map[string]interface{}{"id": p.ID}); err != nil {
		t.Fatalf("preset_delete failed: %v", err)
	}
	if _, err := callTool(t, s, "preset_get", map[string]interface{}{"id": p.ID}); err == nil {
		t.Error("expected error getting deleted preset")
	}
}

func TestPresetList_IncludesBuiltIns(t *testing.T) {
	s := newTestServer(t)
	res, err := callTool(t, s, "preset_list", map[string]interface{}{})
	if err != nil {
		t.Fatalf("preset_list failed: %v", err)
	}
	presets := res.([]*preset.Preset)
	if len(presets) == 0 {
		t.Fatal("expected seeded built-in presets")
	}
	if !presets[0].BuiltIn {
		t.Error("built-ins should sort first")
	}
}

func TestResolveAdjustments_PresetWins(t *testing.T) {
	s := newTestServer(t)

	p, err := s.presets.Create("Flat", "", nil, engine.Adjustments{Exposure: 2})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	adj, err := s.resolveAdjustments(p.ID, json.RawMessage(`{"exposure":-1}`))
	if err != nil {
		t.Fatalf("resolveAdjustments failed: %v", err)
	}
	if adj.Exposure != 2 {
		t.Errorf("exposure: got %g, want preset value 2", adj.Exposure)
	}

	if _, err := s.resolveAdjustments("missing-id", nil); err == nil {
		t.Error("expected error for unknown preset id")
	}
}

func TestLUTExport_WithPreset(t *testing.T) {
	s := newTestServer(t)
	outPath := filepath.Join(t.TempDir(), "preset.cube")

	res, err := callTool(t, s, "lut_export", map[string]interface{}{
		"output_path": outPath,
		"resolution":  17,
		"preset_id":   "builtin-punchy",
	})
	if err != nil {
		t.Fatalf("lut_export with preset failed: %v", err)
	}
	if res.(*LUTExportResult).Format != "cube" {
		t.Errorf("format default: got %q", res.(*LUTExportResult).Format)
	}
}
