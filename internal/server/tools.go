package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// adjustmentsSchema describes the adjustment set accepted by the processing
// tools. Field semantics match engine.Adjustments.
func adjustmentsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":        "object",
		"description": "Color and tone adjustments. All fields optional; zero means no change.",
		"properties": map[string]interface{}{
			"exposure":    map[string]interface{}{"type": "number", "description": "Exposure in stops, -5 to 5"},
			"contrast":    map[string]interface{}{"type": "number", "description": "Contrast, -1 to 1"},
			"highlights":  map[string]interface{}{"type": "number", "description": "Highlight lift/cut, -1 to 1"},
			"shadows":     map[string]interface{}{"type": "number", "description": "Shadow lift/cut, -1 to 1"},
			"whites":      map[string]interface{}{"type": "number", "description": "White point, -1 to 1"},
			"blacks":      map[string]interface{}{"type": "number", "description": "Black point, -1 to 1"},
			"temperature": map[string]interface{}{"type": "number", "description": "Blue-orange shift, -100 to 100"},
			"tint":        map[string]interface{}{"type": "number", "description": "Green-magenta shift, -100 to 100"},
			"saturation":  map[string]interface{}{"type": "number", "description": "Saturation, -1 to 1"},
			"vibrance":    map[string]interface{}{"type": "number", "description": "Vibrance, -1 to 1"},
			"clarity":     map[string]interface{}{"type": "number", "description": "Local contrast, -1 to 1"},
			"dehaze":      map[string]interface{}{"type": "number", "description": "Dehaze, -1 to 1"},
			"vignette":    map[string]interface{}{"type": "number", "description": "Vignette strength, -1 to 1"},
			"hsl": map[string]interface{}{
				"type":        "object",
				"description": "Per-hue-range HSL mixer (red, orange, yellow, green, aqua, blue, purple, magenta), each with hue (-180..180), saturation and lightness (-100..100)",
			},
			"color_grading": map[string]interface{}{
				"type":        "object",
				"description": "Per-tone-range RGB offsets (shadows, midtones, highlights), each channel -100 to 100",
			},
		},
	}
}

// presetOrAdjustmentsProps are the shared parameters of tools that accept
// either inline adjustments or a stored preset.
func presetOrAdjustmentsProps() map[string]interface{} {
	return map[string]interface{}{
		"adjustments": adjustmentsSchema(),
		"preset_id": map[string]interface{}{
			"type":        "string",
			"description": "ID of a stored preset to use instead of inline adjustments",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Image Operations
		{
			Name:        "image_info",
			Description: "Return the dimensions, format, and file size of an image without decoding its pixels.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_adjust",
			Description: "Apply color and tone adjustments to an image and write the result to a new file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProps(presetOrAdjustmentsProps(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the source image",
					},
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the adjusted image; format chosen by extension",
					},
					"max_edge": map[string]interface{}{
						"type":        "integer",
						"description": "Optional: downscale so the longest edge is at most this many pixels before processing",
					},
				}),
				"required": []string{"path", "output_path"},
			},
		},
		{
			Name:        "image_histogram",
			Description: "Compute 256-bin RGB and luminance histograms of an image, optionally after applying adjustments. Also reports the shadow/midtone/highlight pixel distribution.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProps(presetOrAdjustmentsProps(), map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				}),
				"required": []string{"path"},
			},
		},

		// Color Wheel
		{
			Name:        "wheel_point",
			Description: "Convert a color-wheel handle position into hue and saturation, with the swatch color shown under the handle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Horizontal offset from the wheel center",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Vertical offset from the wheel center",
					},
					"radius": map[string]interface{}{
						"type":        "number",
						"description": "Wheel radius in the same units as x and y",
					},
				},
				"required": []string{"x", "y", "radius"},
			},
		},

		// LUT Export
		{
			Name:        "lut_export",
			Description: "Sample the color transform over a 3D grid and write a LUT file. Progress notifications are emitted while sampling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": mergeProps(presetOrAdjustmentsProps(), map[string]interface{}{
					"output_path": map[string]interface{}{
						"type":        "string",
						"description": "Where to write the LUT file",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"enum":        []string{"cube", "3dl", "csp"},
						"description": "LUT file format (default cube)",
					},
					"resolution": map[string]interface{}{
						"type":        "integer",
						"enum":        []int{17, 33, 65},
						"description": "Grid points per axis (default 33)",
					},
					"title": map[string]interface{}{
						"type":        "string",
						"description": "LUT title written into the file header (default Untitled)",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Optional description written into the file header",
					},
				}),
				"required": []string{"output_path"},
			},
		},
		{
			Name:        "lut_formats",
			Description: "List the supported LUT formats and grid resolutions.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Preset Management
		{
			Name:        "preset_list",
			Description: "List all stored presets, built-ins first.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "preset_save",
			Description: "Save the given adjustments as a named preset.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Preset name",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "Optional description",
					},
					"tags": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Optional tags for searching",
					},
					"adjustments": adjustmentsSchema(),
				},
				"required": []string{"name", "adjustments"},
			},
		},
		{
			Name:        "preset_get",
			Description: "Fetch a single preset by ID.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Preset ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "preset_update",
			Description: "Replace the name, description, tags, and adjustments of a stored preset. Built-in presets cannot be changed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Preset ID",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "New preset name",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "New description",
					},
					"tags": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "New tags",
					},
					"adjustments": adjustmentsSchema(),
				},
				"required": []string{"id", "name", "adjustments"},
			},
		},
		{
			Name:        "preset_delete",
			Description: "Delete a stored preset by ID. Built-in presets cannot be deleted.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Preset ID",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "preset_search",
			Description: "Search presets by a name/description substring and/or required tags.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Case-insensitive substring matched against name and description",
					},
					"tags": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Tags a preset must all carry to match",
					},
				},
			},
		},
	}
}

// mergeProps combines property maps for tools that share parameter blocks.
func mergeProps(maps ...map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{})
	for _, m := range maps {
		for k, v := range m {
			out[k] = v
		}
	}
	return out
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
