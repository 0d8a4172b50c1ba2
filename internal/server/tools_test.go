package server

import (
	"testing"
)

func TestGetToolDefinitions(t *testing.T) {
	tools := GetToolDefinitions()

	if len(tools) == 0 {
		t.Fatal("GetToolDefinitions returned empty slice")
	}

	expectedTools := []string{
		"image_info",
		"image_adjust",
		"image_histogram",
		"wheel_point",
		"lut_export",
		"lut_formats",
		"preset_list",
		"preset_save",
		"preset_get",
		"preset_update",
		"preset_delete",
		"preset_search",
	}

	toolMap := make(map[string]Tool)
	for _, tool := range tools {
		toolMap[tool.Name] = tool
	}

	for _, name := range expectedTools {
		if _, ok := toolMap[name]; !ok {
			t.Errorf("Expected tool %s not found", name)
		}
	}
	if len(tools) != len(expectedTools) {
		t.Errorf("got %d tools, want %d", len(tools), len(expectedTools))
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	tools := GetToolDefinitions()

	for _, tool := range tools {
		t.Run(tool.Name, func(t *testing.T) {
			if tool.Name == "" {
				t.Error("Tool name is empty")
			}
			if tool.Description == "" {
				t.Error("Tool description is empty")
			}
			if tool.InputSchema == nil {
				t.Error("Tool InputSchema is nil")
			}

			schemaType, ok := tool.InputSchema["type"]
			if !ok {
				t.Error("InputSchema missing 'type' field")
			}
			if schemaType != "object" {
				t.Errorf("InputSchema type: got %v, want 'object'", schemaType)
			}

			props, ok := tool.InputSchema["properties"]
			if !ok {
				t.Error("InputSchema missing 'properties' field")
			}
			if props == nil {
				t.Error("InputSchema properties is nil")
			}
		})
	}
}

func TestToolDefinitions_RequiredParams(t *testing.T) {
	required := map[string][]string{
		"image_info":      {"path"},
		"image_adjust":    {"path", "output_path"},
		"image_histogram": {"path"},
		"wheel_point":     {"x", "y", "radius"},
		"lut_export":      {"output_path"},
		"preset_save":     {"name", "adjustments"},
		"preset_get":      {"id"},
		"preset_update":   {"id", "name", "adjustments"},
		"preset_delete":   {"id"},
	}

	toolMap := make(map[string]Tool)
	for _, tool := range GetToolDefinitions() {
		toolMap[tool.Name] = tool
	}

	for name, wantRequired := range required {
		tool, ok := toolMap[name]
		if !ok {
			t.Errorf("tool %s not found", name)
			continue
		}
		gotRequired, ok := tool.InputSchema["required"].([]string)
		if !ok {
			t.Errorf("tool %s has no required list", name)
			continue
		}
		gotSet := make(map[string]bool)
		for _, r := range gotRequired {
			gotSet[r] = true
		}
		for _, want := range wantRequired {
			if !gotSet[want] {
				t.Errorf("tool %s: required parameter %q missing", name, want)
			}
		}

		// Every required parameter must also be declared as a property.
		props := tool.InputSchema["properties"].(map[string]interface{})
		for _, r := range gotRequired {
			if _, ok := props[r]; !ok {
				t.Errorf("tool %s: required parameter %q not in properties", name, r)
			}
		}
	}
}
