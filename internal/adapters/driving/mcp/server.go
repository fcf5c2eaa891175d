package mcp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/yomu-cli/internal/logger"
)

// Version is reported to clients during initialization.
const Version = "0.1.0"

// instructions tells a connected assistant which tool answers which question.
const instructions = `yomu resolves conjugated Japanese words to dictionary entries.
Use deinflect to list possible dictionary forms without touching the dictionary,
lookup_word for a word the user isolated, and lookup_substrings for the longest
word starting at a character offset in running text.
Pass a kana reading to rank the intended homograph first.
Imported dictionaries are listed at yomu://dictionaries.`

// shutdownGrace bounds how long RunHTTP waits for open streams to drain.
const shutdownGrace = 5 * time.Second

// Server exposes lookups as MCP tools and dictionaries as MCP resources.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer validates ports and registers every tool and resource.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: "yomu", Title: "yomu Japanese dictionary", Version: Version},
			&mcp.ServerOptions{Instructions: instructions, HasResources: true},
		),
	}
	s.registerTools()
	s.registerResources()
	return s, nil
}

// Run serves a single client over stdin and stdout until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	logger.Info("MCP server %s on stdio", Version)
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP transport. All sessions share the
// same lookup services.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves Handler on addr until ctx is done. Streams still open
// after shutdownGrace are closed.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	served := make(chan error, 1)
	go func() { served <- srv.ListenAndServe() }()
	logger.Info("MCP server %s on http://%s", Version, addr)

	select {
	case err := <-served:
		return fmt.Errorf("serve mcp on %s: %w", addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("MCP shutdown: %v", err)
		return srv.Close()
	}
	return nil
}
