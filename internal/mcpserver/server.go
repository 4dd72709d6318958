// Package mcpserver exposes the documentation index over the Model
// Context Protocol. The server speaks MCP on stdio and offers tools for
// searching functions, fetching their documentation and listing
// categories.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/server"

	"github.com/edt-labs/edt/internal/docs"
)

const (
	// ServerName is the MCP server name advertised during initialization.
	ServerName = "edt-docs"
	// ServerVersion is the advertised server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the documentation index it serves.
type Server struct {
	mcp      *server.MCPServer
	indexer  *docs.Indexer
	searcher *docs.Searcher
}

// NewServer builds a server over an already indexed source tree.
func NewServer(indexer *docs.Indexer) *Server {
	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		indexer:  indexer,
		searcher: docs.NewSearcher(indexer),
	}
	s.registerTools()
	return s
}

// NewServerForDirectory indexes dir and builds a server over the result.
func NewServerForDirectory(dir string) (*Server, error) {
	indexer, err := docs.IndexDirectory(dir)
	if err != nil {
		return nil, fmt.Errorf("building documentation index: %w", err)
	}
	return NewServer(indexer), nil
}

// Serve runs the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	_ = ctx
	return server.ServeStdio(s.mcp)
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchFunctionsTool(), s.handleSearchFunctions)
	s.mcp.AddTool(getDocumentationTool(), s.handleGetDocumentation)
	s.mcp.AddTool(listCategoriesTool(), s.handleListCategories)
}
