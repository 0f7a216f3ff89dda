package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// parseFeatureTool returns the tool definition for parse_feature
func parseFeatureTool() mcp.Tool {
	return mcp.Tool{
		Name:        "parse_feature",
		Description: "Parse one feature document into its typed syntax tree",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"source": map[string]interface{}{
					"type":        "string",
					"description": "Feature document text to parse",
				},
			},
			Required: []string{"source"},
		},
	}
}

// loadFeaturesTool returns the tool definition for load_features
func loadFeaturesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "load_features",
		Description: "Parse every *.feature file under a directory, using the parse cache for unchanged files",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Absolute path to the directory to scan",
				},
				"workers": map[string]interface{}{
					"type":        "integer",
					"description": "Number of concurrent parser workers (default: CPU count)",
					"minimum":     1,
				},
			},
			Required: []string{"path"},
		},
	}
}

// getStatusTool returns the tool definition for get_status
func getStatusTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_status",
		Description: "Report parse cache contents and build configuration",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
