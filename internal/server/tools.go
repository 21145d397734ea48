package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func enumProp(description string, values ...string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
		"enum":        values,
	}
}

func intProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

// editSchema builds the input schema shared by the editing tools: a source
// and target variant, an optional mask, plus any tool-specific properties.
func editSchema(extra map[string]interface{}, required ...string) map[string]interface{} {
	props := map[string]interface{}{
		"source": stringProp("Name of the stored image to edit"),
		"target": stringProp("Name to store the result under (may equal source to edit in place)"),
		"mask":   stringProp("Optional mask image name. Black mask pixels keep the edit; all other pixels revert to the source"),
	}
	for k, v := range extra {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
		"required":   append([]string{"source", "target"}, required...),
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Collection Management
		{
			Name:        "image_load",
			Description: "Load an image file into the collection under a name. Files ending in .ppm are read as plain-text PPM; other formats (PNG, JPEG, GIF, BMP, TIFF, WebP) are decoded as 8-bit.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path to the image file"),
					"name": stringProp("Name to store the image under"),
				},
				"required": []string{"path", "name"},
			},
		},
		{
			Name:        "image_save",
			Description: "Save a stored image to a file. The format is chosen from the file extension (.ppm, .png, .jpg, .gif, .bmp, .tif).",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": stringProp("Absolute path of the file to write"),
					"name": stringProp("Name of the stored image"),
				},
				"required": []string{"path", "name"},
			},
		},
		{
			Name:        "image_list",
			Description: "List the names and sizes of all stored images.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},

		// Editing
		{
			Name:        "image_brighten",
			Description: "Add a constant to every channel of an image. Values are clamped to the channel range.",
			InputSchema: editSchema(map[string]interface{}{
				"amount": intProp("Amount to add to each channel (negative darkens)"),
			}, "amount"),
		},
		{
			Name:        "image_darken",
			Description: "Subtract a constant from every channel of an image. Values are clamped at zero.",
			InputSchema: editSchema(map[string]interface{}{
				"amount": intProp("Amount to subtract from each channel"),
			}, "amount"),
		},
		{
			Name:        "image_flip",
			Description: "Mirror an image. 'vertical' swaps left and right; 'horizontal' swaps top and bottom.",
			InputSchema: editSchema(map[string]interface{}{
				"axis": enumProp("Mirror axis", "vertical", "horizontal"),
			}, "axis"),
		},
		{
			Name:        "image_component",
			Description: "Convert an image to greyscale using one component of each pixel.",
			InputSchema: editSchema(map[string]interface{}{
				"component": enumProp("Component to visualize", "red", "green", "blue", "value", "intensity"),
			}, "component"),
		},
		{
			Name:        "image_color_transform",
			Description: "Apply a named color matrix: 'Greyscale' (luma) or 'Sepia'.",
			InputSchema: editSchema(map[string]interface{}{
				"matrix": enumProp("Color matrix name", "Greyscale", "Sepia"),
			}, "matrix"),
		},
		{
			Name:        "image_filter",
			Description: "Convolve an image with a named kernel: 'Blur' (3x3) or 'Sharpen' (5x5).",
			InputSchema: editSchema(map[string]interface{}{
				"kernel": enumProp("Filter kernel name", "Blur", "Sharpen"),
			}, "kernel"),
		},
		{
			Name:        "image_downsize",
			Description: "Shrink an image to a smaller width and height. Enlarging is not supported. A mask must match the new size; unmasked pixels are taken from the source at the same row and column.",
			InputSchema: editSchema(map[string]interface{}{
				"width":  intProp("New width in pixels (1 to current width)"),
				"height": intProp("New height in pixels (1 to current height)"),
			}, "width", "height"),
		},

		// Inspection
		{
			Name:        "image_histogram",
			Description: "Return red, green, blue and intensity frequency tables (256 buckets each) for a stored image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Name of the stored image"),
				},
				"required": []string{"name"},
			},
		},
		{
			Name:        "image_sample_color",
			Description: "Get the color of one pixel of a stored image in raw, hex and HSL form.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Name of the stored image"),
					"row":  intProp("Row (0 = top)"),
					"col":  intProp("Column (0 = left)"),
				},
				"required": []string{"name", "row", "col"},
			},
		},
		{
			Name:        "image_preview",
			Description: "Render a stored image as base64-encoded PNG, optionally scaled.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"name": stringProp("Name of the stored image"),
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0. The scaled preview may not exceed 4096 pixels per side",
						"default":     1.0,
					},
				},
				"required": []string{"name"},
			},
		},
	}
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
