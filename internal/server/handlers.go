package server

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/ironsheep/image-edit-mcp/internal/collection"
	"github.com/ironsheep/image-edit-mcp/internal/command"
	"github.com/ironsheep/image-edit-mcp/internal/inspect"
	"github.com/ironsheep/image-edit-mcp/internal/raster"
	"github.com/ironsheep/image-edit-mcp/internal/transform"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_brighten").
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

	s.log.Debug("tool call", zap.String("tool", params.Name))
	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		s.log.Warn("tool failed", zap.String("tool", params.Name), zap.Error(err))
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
//
// Editing handlers build a command, optionally wrap it in a mask, and run
// it against the collection. Inspection handlers read a private copy of a
// stored image.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Collection Management
	case "image_load":
		return s.handleImageLoad(args)
	case "image_save":
		return s.handleImageSave(args)
	case "image_list":
		return s.handleImageList(args)

	// Editing
	case "image_brighten":
		return s.handleImageBrighten(args, false)
	case "image_darken":
		return s.handleImageBrighten(args, true)
	case "image_flip":
		return s.handleImageFlip(args)
	case "image_component":
		return s.handleImageComponent(args)
	case "image_color_transform":
		return s.handleImageColorTransform(args)
	case "image_filter":
		return s.handleImageFilter(args)
	case "image_downsize":
		return s.handleImageDownsize(args)

	// Inspection
	case "image_histogram":
		return s.handleImageHistogram(args)
	case "image_sample_color":
		return s.handleImageSampleColor(args)
	case "image_preview":
		return s.handleImagePreview(args)

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

// decodeArgs unmarshals tool arguments, reporting malformed JSON as an
// invalid argument.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %v", raster.ErrInvalidArgument, err)
	}
	return nil
}

// ImageSummary describes one stored image.
type ImageSummary struct {
	Name     string `json:"name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	MaxValue int    `json:"max_value"`
}

// EditResult reports the outcome of an editing tool.
type EditResult struct {
	Message string       `json:"message"`
	Image   ImageSummary `json:"image"`
}

func (s *Server) summarize(name string) (ImageSummary, error) {
	img, err := s.store.Image(name)
	if err != nil {
		return ImageSummary{}, err
	}
	return ImageSummary{Name: name, Width: img.Cols(), Height: img.Rows(), MaxValue: img.MaxValue()}, nil
}

// run executes cmd and reports the resulting target variant.
func (s *Server) run(cmd collection.Command, target, message string) (interface{}, error) {
	if err := s.store.Execute(cmd); err != nil {
		return nil, err
	}
	s.log.Info("command executed", zap.Any("command", cmd))
	summary, err := s.summarize(target)
	if err != nil {
		return nil, err
	}
	return &EditResult{Message: message, Image: summary}, nil
}

// === Collection Management Handlers ===

type imageFileArgs struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageFileArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cmd, err := command.NewLoad(a.Path, a.Name)
	if err != nil {
		return nil, err
	}
	return s.run(cmd, a.Name, "Load was successful")
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageFileArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cmd, err := command.NewSave(a.Path, a.Name)
	if err != nil {
		return nil, err
	}
	return s.run(cmd, a.Name, "Save was successful")
}

// ListResult contains every stored image.
type ListResult struct {
	Images []ImageSummary `json:"images"`
	Count  int            `json:"count"`
}

func (s *Server) handleImageList(json.RawMessage) (interface{}, error) {
	names := s.store.Names()
	images := make([]ImageSummary, 0, len(names))
	for _, name := range names {
		summary, err := s.summarize(name)
		if err != nil {
			return nil, err
		}
		images = append(images, summary)
	}
	return &ListResult{Images: images, Count: len(images)}, nil
}

// === Editing Handlers ===

type editArgs struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Mask   string `json:"mask,omitempty"`
}

// runEdit wraps cmd in a mask when one was requested, then runs it.
func (s *Server) runEdit(a editArgs, cmd collection.Command, label string) (interface{}, error) {
	if a.Mask == "" {
		return s.run(cmd, a.Target, label+" was successful")
	}
	masked, err := command.NewMasked(cmd, a.Source, a.Target, a.Mask)
	if err != nil {
		return nil, err
	}
	return s.run(masked, a.Target, "Partial "+label+" was successful")
}

type imageBrightenArgs struct {
	editArgs
	Amount int `json:"amount"`
}

func (s *Server) handleImageBrighten(args json.RawMessage, darken bool) (interface{}, error) {
	var a imageBrightenArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	var (
		cmd   *command.Brighten
		err   error
		label = "Brighten"
	)
	if darken {
		cmd, err = command.NewDarken(a.Source, a.Target, a.Amount)
		label = "Darken"
	} else {
		cmd, err = command.NewBrighten(a.Source, a.Target, a.Amount)
	}
	if err != nil {
		return nil, err
	}
	return s.runEdit(a.editArgs, cmd, label)
}

type imageFlipArgs struct {
	editArgs
	Axis string `json:"axis"`
}

func (s *Server) handleImageFlip(args json.RawMessage) (interface{}, error) {
	var a imageFlipArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	axis, err := transform.ParseAxis(a.Axis)
	if err != nil {
		return nil, err
	}
	cmd, err := command.NewFlip(a.Source, a.Target, axis)
	if err != nil {
		return nil, err
	}
	return s.runEdit(a.editArgs, cmd, "Flip-"+axis.String())
}

type imageComponentArgs struct {
	editArgs
	Component string `json:"component"`
}

func (s *Server) handleImageComponent(args json.RawMessage) (interface{}, error) {
	var a imageComponentArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	c, err := transform.ParseComponent(a.Component)
	if err != nil {
		return nil, err
	}
	cmd, err := command.NewGreyscale(a.Source, a.Target, c)
	if err != nil {
		return nil, err
	}
	return s.runEdit(a.editArgs, cmd, c.String()+"-component")
}

type imageColorTransformArgs struct {
	editArgs
	Matrix string `json:"matrix"`
}

func (s *Server) handleImageColorTransform(args json.RawMessage) (interface{}, error) {
	var a imageColorTransformArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cmd, err := command.NewColorTransform(a.Source, a.Target, a.Matrix)
	if err != nil {
		return nil, err
	}
	return s.runEdit(a.editArgs, cmd, a.Matrix)
}

type imageFilterArgs struct {
	editArgs
	Kernel string `json:"kernel"`
}

func (s *Server) handleImageFilter(args json.RawMessage) (interface{}, error) {
	var a imageFilterArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cmd, err := command.NewFilter(a.Source, a.Target, a.Kernel)
	if err != nil {
		return nil, err
	}
	return s.runEdit(a.editArgs, cmd, a.Kernel)
}

type imageDownsizeArgs struct {
	editArgs
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (s *Server) handleImageDownsize(args json.RawMessage) (interface{}, error) {
	var a imageDownsizeArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	cmd, err := command.NewDownsize(a.Source, a.Target, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return s.runEdit(a.editArgs, cmd, "Downsize")
}

// === Inspection Handlers ===

type imageNameArgs struct {
	Name string `json:"name"`
}

func (s *Server) handleImageHistogram(args json.RawMessage) (interface{}, error) {
	var a imageNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Image(a.Name)
	if err != nil {
		return nil, err
	}
	return inspect.Histogram(img)
}

type imageSampleColorArgs struct {
	Name string `json:"name"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.store.Image(a.Name)
	if err != nil {
		return nil, err
	}
	return inspect.SampleColor(img, a.Row, a.Col)
}

type imagePreviewArgs struct {
	Name  string  `json:"name"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImagePreview(args json.RawMessage) (interface{}, error) {
	var a imagePreviewArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.store.Image(a.Name)
	if err != nil {
		return nil, err
	}
	return inspect.Preview(img, a.Scale)
}
