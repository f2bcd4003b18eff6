package server

// Tool represents a tool definition exposed via tools/list.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools.
func GetToolDefinitions() []Tool {
	pathProp := map[string]interface{}{
		"type":        "string",
		"description": "Path to the image file",
	}

	return []Tool{
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_process",
			Description: "Run the threshold pipeline over an image and save the result. " +
				"Supports binary thresholding, multi-level banding with optional contrast " +
				"remapping, black-neighbor darkening, and color inversion.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
					"output": map[string]interface{}{
						"type":        "string",
						"description": "Output file path. Default: auto-numbered outputN.png",
					},
					"format": map[string]interface{}{
						"type":        "string",
						"description": "Output format name. Default: negotiated from the output extension",
					},
					"use_binary_threshold": map[string]interface{}{
						"type":        "boolean",
						"description": "Single-cutoff black/white mode. Default true; wins over multi-threshold mode",
						"default":     true,
					},
					"adjust_black_pixels_neighbors": map[string]interface{}{
						"type":        "boolean",
						"description": "Darken white neighbors of black pixels to RGB(1,1,1). Binary mode only",
						"default":     false,
					},
					"use_multiple_thresholds": map[string]interface{}{
						"type":        "boolean",
						"description": "White/black banding mode with optional contrast rule",
						"default":     false,
					},
					"apply_contrast": map[string]interface{}{
						"type":        "boolean",
						"description": "Enable the contrast rule inside multi-threshold mode",
						"default":     false,
					},
					"invert_colors": map[string]interface{}{
						"type":        "boolean",
						"description": "Invert every channel as the final stage",
						"default":     false,
					},
					"binary_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Magnitude cutoff for binary mode. Default 0.53",
						"default":     0.53,
					},
					"white_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Magnitude above which multi-threshold pixels become white. Default 0.9",
						"default":     0.9,
					},
					"black_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Magnitude below which multi-threshold pixels become black. Default 0.7",
						"default":     0.7,
					},
					"contrast_threshold": map[string]interface{}{
						"type":        "number",
						"description": "Magnitude below which the contrast rule applies. Default 0.0",
						"default":     0.0,
					},
					"multiplier": map[string]interface{}{
						"type":        "number",
						"description": "Channel multiplier for the contrast rule. Default 0.0",
						"default":     0.0,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_analyze",
			Description: "Compute magnitude statistics (mean, spread, quantiles) and the " +
				"dominant color palette of an image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
					"colors": map[string]interface{}{
						"type":        "integer",
						"description": "Number of dominant colors to return. Default 5",
						"default":     5,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "image_suggest_thresholds",
			Description: "Cluster pixel magnitudes with k-means and suggest threshold values: " +
				"2 levels for a binary cutoff, 3 levels for black/white bands.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProp,
					"levels": map[string]interface{}{
						"type":        "integer",
						"description": "Number of magnitude clusters, 2 or 3. Default 2",
						"default":     2,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_formats",
			Description: "List the image formats supported for writing.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}
