package mcp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"

	"github.com/featlang/featherkin/internal/loader"
	"github.com/featlang/featherkin/internal/storage"
)

const (
	// ServerName is the MCP server name
	ServerName = "featherkin"
	// ServerVersion is the current server version
	ServerVersion = "1.0.0"
	// DefaultDBPath is the default location for the cache database
	DefaultDBPath = "~/.featherkin"
)

// Server wraps the MCP server with application dependencies
type Server struct {
	mcp    *server.MCPServer
	cache  *storage.Cache
	loader *loader.Loader
}

// NewServer creates a new MCP server instance backed by a parse cache
// under dbPath
func NewServer(dbPath string) (*Server, error) {
	if dbPath == "" || dbPath == DefaultDBPath {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".featherkin")
	}

	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	cache, err := storage.NewCache(filepath.Join(dbPath, "featherkin.db"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	s := &Server{
		mcp:    server.NewMCPServer(ServerName, ServerVersion),
		cache:  cache,
		loader: loader.New(cache),
	}

	s.registerTools()
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown
func (s *Server) Serve(ctx context.Context) error {
	defer func() { _ = s.cache.Close() }()
	return server.ServeStdio(s.mcp)
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcp.AddTool(parseFeatureTool(), s.handleParseFeature)
	s.mcp.AddTool(loadFeaturesTool(), s.handleLoadFeatures)
	s.mcp.AddTool(getStatusTool(), s.handleGetStatus)
}
