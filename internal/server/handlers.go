package server

import (
	"encoding/json"
	"fmt"

	"github.com/dhodgson615/Image-Processing-Toolkit/internal/analyze"
	"github.com/dhodgson615/Image-Processing-Toolkit/internal/imageio"
	"github.com/dhodgson615/Image-Processing-Toolkit/internal/pipeline"
)

// ToolCallParams represents the parameters for a tools/call request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_process").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall executes the named tool and wraps its result in the
// MCP content format. Tool errors become JSON-RPC errors (code -32000).
func (s *Server) handleToolsCall(req *Request) *Response {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &Response{
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

// executeTool dispatches to the handler for one tool.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_process":
		return s.handleImageProcess(args)
	case "image_analyze":
		return s.handleImageAnalyze(args)
	case "image_suggest_thresholds":
		return s.handleImageSuggestThresholds(args)
	case "image_formats":
		return s.handleImageFormats(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

type pathArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a pathArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	return imageio.Info(s.cache, a.Path)
}

// processArgs mirrors pipeline.Config field-for-field. Fields whose
// pipeline default is non-zero use pointers so "absent" and "explicitly
// zero" stay distinguishable.
type processArgs struct {
	Path   string `json:"path"`
	Output string `json:"output,omitempty"` // default: auto-numbered outputN.png
	Format string `json:"format,omitempty"` // default: by output extension

	UseBinaryThreshold         *bool `json:"use_binary_threshold,omitempty"`
	AdjustBlackPixelsNeighbors bool  `json:"adjust_black_pixels_neighbors,omitempty"`
	UseMultipleThresholds      bool  `json:"use_multiple_thresholds,omitempty"`
	ApplyContrast              bool  `json:"apply_contrast,omitempty"`
	InvertColors               bool  `json:"invert_colors,omitempty"`

	BinaryThreshold   *float64 `json:"binary_threshold,omitempty"`
	WhiteThreshold    *float64 `json:"white_threshold,omitempty"`
	BlackThreshold    *float64 `json:"black_threshold,omitempty"`
	ContrastThreshold float64  `json:"contrast_threshold,omitempty"`
	Multiplier        float64  `json:"multiplier,omitempty"`
}

func (a *processArgs) config() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	if a.UseBinaryThreshold != nil {
		cfg.UseBinaryThreshold = *a.UseBinaryThreshold
	}
	cfg.AdjustBlackPixelsNeighbors = a.AdjustBlackPixelsNeighbors
	cfg.UseMultipleThresholds = a.UseMultipleThresholds
	cfg.ApplyContrast = a.ApplyContrast
	cfg.InvertColors = a.InvertColors
	if a.BinaryThreshold != nil {
		cfg.BinaryThreshold = *a.BinaryThreshold
	}
	if a.WhiteThreshold != nil {
		cfg.WhiteThreshold = *a.WhiteThreshold
	}
	if a.BlackThreshold != nil {
		cfg.BlackThreshold = *a.BlackThreshold
	}
	cfg.ContrastThreshold = a.ContrastThreshold
	cfg.Multiplier = a.Multiplier
	return cfg
}

// ProcessResult reports where a processed image was written.
type ProcessResult struct {
	OutputPath string `json:"output_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
}

func (s *Server) handleImageProcess(args json.RawMessage) (interface{}, error) {
	var a processArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	dst := pipeline.Process(img, a.config())

	output := a.Output
	if output == "" {
		output = imageio.NextOutputName(".")
	}
	if err := imageio.Save(dst, output, a.Format); err != nil {
		return nil, err
	}

	return &ProcessResult{
		OutputPath: output,
		Width:      dst.Bounds().Dx(),
		Height:     dst.Bounds().Dy(),
	}, nil
}

type analyzeArgs struct {
	Path   string `json:"path"`
	Colors int    `json:"colors,omitempty"` // default 5
}

// AnalyzeResult bundles magnitude statistics with a dominant palette.
type AnalyzeResult struct {
	Magnitude *analyze.MagnitudeStats `json:"magnitude"`
	Dominant  []analyze.PaletteColor  `json:"dominant_colors"`
}

func (s *Server) handleImageAnalyze(args json.RawMessage) (interface{}, error) {
	var a analyzeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Colors == 0 {
		a.Colors = 5
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return &AnalyzeResult{
		Magnitude: analyze.Stats(img),
		Dominant:  analyze.DominantColors(img, a.Colors),
	}, nil
}

type suggestArgs struct {
	Path   string `json:"path"`
	Levels int    `json:"levels,omitempty"` // 2 (default) or 3
}

func (s *Server) handleImageSuggestThresholds(args json.RawMessage) (interface{}, error) {
	var a suggestArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Levels == 0 {
		a.Levels = 2
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	return analyze.SuggestThresholds(img, a.Levels)
}

func (s *Server) handleImageFormats(json.RawMessage) (interface{}, error) {
	return map[string]interface{}{
		"formats": imageio.SupportedFormats(),
	}, nil
}
