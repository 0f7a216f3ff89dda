package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/featlang/featherkin/internal/loader"
	"github.com/featlang/featherkin/pkg/gherkin"
	"github.com/featlang/featherkin/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
	ErrorCodeInternalError = -32603 // Internal JSON-RPC error
	ErrorCodeParseFailed   = -32001 // Document did not parse
	ErrorCodeEmptySource   = -32002 // Source parameter is empty
)

// Path validation errors
var (
	ErrPathRequired    = errors.New("path is required")
	ErrPathNotAbsolute = errors.New("path must be absolute")
	ErrPathNotFound    = errors.New("path does not exist")
	ErrPathNotReadable = errors.New("path is not readable")
	ErrNotDirectory    = errors.New("path is not a directory")
)

// handleParseFeature handles the parse_feature tool invocation
func (s *Server) handleParseFeature(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	source, ok := args["source"].(string)
	if !ok || source == "" {
		return nil, newMCPError(ErrorCodeEmptySource, "source parameter is required and cannot be empty", map[string]interface{}{
			"param":  "source",
			"reason": "missing or empty",
		})
	}

	feature, err := gherkin.Parse(source)
	if err != nil {
		pos := types.ErrorPosition(err)
		return nil, newMCPError(ErrorCodeParseFailed, "parse failed", map[string]interface{}{
			"error":  err.Error(),
			"line":   pos.Line,
			"column": pos.Column,
		})
	}

	doc, err := json.MarshalIndent(feature, "", "  ")
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to encode document", map[string]interface{}{
			"error": err.Error(),
		})
	}
	return mcp.NewToolResultText(string(doc)), nil
}

// handleLoadFeatures handles the load_features tool invocation
func (s *Server) handleLoadFeatures(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, ok := args["path"].(string)
	if !ok || path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}
	if err := validatePath(path); err != nil {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid path", map[string]interface{}{
			"param":  "path",
			"reason": err.Error(),
		})
	}

	var config *loader.Config
	if workers := getIntDefault(args, "workers", 0); workers > 0 {
		config = &loader.Config{Workers: workers}
	}

	summary, err := s.loader.LoadDir(ctx, path, config)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "load failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"loaded":      summary.Loaded,
		"from_cache":  summary.FromCache,
		"failed":      summary.Failed,
		"duration_ms": summary.Duration.Milliseconds(),
	}

	var fileErrors []map[string]interface{}
	features := make([]map[string]interface{}, 0, len(summary.Results))
	for _, res := range summary.Results {
		if res.Err != nil {
			pos := types.ErrorPosition(res.Err)
			fileErrors = append(fileErrors, map[string]interface{}{
				"path":   res.Path,
				"error":  res.Err.Error(),
				"line":   pos.Line,
				"column": pos.Column,
			})
			continue
		}
		features = append(features, map[string]interface{}{
			"path":      res.Path,
			"name":      res.Feature.Name,
			"scenarios": len(res.Feature.Scenarios),
		})
	}
	response["features"] = features
	if len(fileErrors) > 0 {
		response["errors"] = fileErrors
	}

	return mcp.NewToolResultText(formatJSON(response)), nil
}

// handleGetStatus handles the get_status tool invocation
func (s *Server) handleGetStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.cache.GetStats(ctx)
	if err != nil {
		return nil, newMCPError(ErrorCodeInternalError, "failed to read cache stats", map[string]interface{}{
			"error": err.Error(),
		})
	}

	response := map[string]interface{}{
		"server_version": ServerVersion,
		"cache": map[string]interface{}{
			"documents": stats.Documents,
			"scenarios": stats.Scenarios,
		},
	}
	return mcp.NewToolResultText(formatJSON(response)), nil
}

// Helper functions

// newMCPError creates a properly formatted MCP error
func newMCPError(code int, message string, data interface{}) error {
	// MCP errors are returned as regular errors, the framework handles encoding
	return &MCPError{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// MCPError represents an MCP protocol error
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// validatePath checks if a path exists and is a readable directory
func validatePath(path string) error {
	if path == "" {
		return ErrPathRequired
	}
	if !filepath.IsAbs(path) {
		return ErrPathNotAbsolute
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return ErrPathNotFound
	}
	if err != nil {
		return ErrPathNotReadable
	}
	if !info.IsDir() {
		return ErrNotDirectory
	}
	return nil
}

// formatJSON renders a response map, falling back to fmt on failure
func formatJSON(data map[string]interface{}) string {
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", data)
	}
	return string(bytes)
}

// getIntDefault extracts an integer parameter with a default value
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
