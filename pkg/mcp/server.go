// Package mcp exposes the class resolver and theme over the Model Context
// Protocol so editor agents can ask what CSS a set of utility classes
// generates without running a full build.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/utilcss/pkg/mcplog"
	"github.com/gnana997/utilcss/pkg/resolver"
	"github.com/gnana997/utilcss/pkg/theme"
)

const serverVersion = "0.1.0-dev"

// Server is the MCP server exposing resolution and token lookup tools.
type Server struct {
	mcpServer *server.MCPServer
	theme     *theme.Theme
	resolver  *resolver.Resolver
	logger    *mcplog.Logger // nil disables call logging
}

// NewServer creates an MCP server over the given theme and resolver. logger
// may be nil to disable JSONL call logging.
func NewServer(th *theme.Theme, res *resolver.Resolver, logger *mcplog.Logger) *Server {
	s := &Server{theme: th, resolver: res, logger: logger}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if logger != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("utilcss", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: resolveClassesTool(), Handler: s.handleResolveClasses},
		server.ServerTool{Tool: getTokensTool(), Handler: s.handleGetTokens},
		server.ServerTool{Tool: getPaletteTool(), Handler: s.handleGetPalette},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
