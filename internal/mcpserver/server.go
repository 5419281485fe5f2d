// Package mcpserver exposes the contact form over MCP: agents can read the
// option catalogs, submit inquiries through the same state machine as the
// form, and list what has been received.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/gcloudgt/contacto/internal/inquiry"
	"github.com/gcloudgt/contacto/internal/intake"
	"github.com/gcloudgt/contacto/internal/logger"
	"github.com/mark3labs/mcp-go/server"
)

var log = logger.Named("mcp")

// Store is what the tools need from the inquiry store.
type Store interface {
	inquiry.Submitter
	List(ctx context.Context) ([]*intake.Inquiry, error)
}

// Discard acknowledges submissions without keeping them. Listing it always
// yields nothing.
var Discard Store = discardStore{}

type discardStore struct{}

func (discardStore) Submit(ctx context.Context, data inquiry.FormData) error {
	return inquiry.Discard.Submit(ctx, data)
}

func (discardStore) List(context.Context) ([]*intake.Inquiry, error) { return nil, nil }

// Server manages an embedded MCP HTTP server.
type Server struct {
	store      Store
	addr       string
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	stdServer  *http.Server
	port       int
	mu         sync.Mutex
}

// New creates a server backed by store listening on 127.0.0.1:port. Port 0
// picks a free port. The server is not started until Start is called.
func New(store Store, port int) *Server {
	return &Server{
		store: store,
		addr:  fmt.Sprintf("127.0.0.1:%d", port),
	}
}

// Start begins serving and returns the bound port.
func (s *Server) Start(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	s.mcpServer = server.NewMCPServer(
		"contacto",
		"1.0.0",
		server.WithToolCapabilities(true),
	)
	s.registerTools()

	var lc net.ListenConfig
	listener, err := lc.Listen(ctx, "tcp", s.addr)
	if err != nil {
		return 0, fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mcpHandler := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)
	mux.Handle("/mcp", mcpHandler)

	s.stdServer = &http.Server{Handler: mux}
	s.httpServer = mcpHandler

	stdServer := s.stdServer
	go func() {
		if err := stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("serve: %v", err)
		}
	}()

	log.Info("MCP server ready on port %d", s.port)
	return s.port, nil
}

// Stop shuts the HTTP server down.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil
	}

	log.Debug("stopping MCP server")
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		log.Warn("error stopping MCP server: %v", err)
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.httpServer = nil
	s.stdServer = nil
	s.mcpServer = nil
	return nil
}

// URL returns the HTTP URL for the MCP endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
