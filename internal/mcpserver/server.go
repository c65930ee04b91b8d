package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/leofalp/medcalc/core/invoke"
	"github.com/leofalp/medcalc/core/parse"
	"github.com/leofalp/medcalc/internal/jsonschema"
	"github.com/leofalp/medcalc/providers/observability"
)

// ServerName is the implementation name announced to MCP clients.
const ServerName = "Medical Calculator"

// Server binds a dispatcher to an MCP server.
type Server struct {
	dispatcher *invoke.Dispatcher
	mcpServer  *mcp.Server
	observer   observability.Provider
	metrics    http.Handler
	version    string
}

// Option configures a Server.
type Option func(*Server)

// WithVersion sets the implementation version announced to clients.
func WithVersion(version string) Option {
	return func(s *Server) {
		s.version = version
	}
}

// WithObserver sets the provider used for transport logs.
func WithObserver(observer observability.Provider) Option {
	return func(s *Server) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithMetricsHandler serves h on /metrics in the HTTP transport.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// New creates a Server exposing every operation registered with the
// dispatcher's registry at the time of the call.
func New(dispatcher *invoke.Dispatcher, opts ...Option) *Server {
	s := &Server{
		dispatcher: dispatcher,
		observer:   observability.Discard,
		version:    "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcpServer = mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: s.version}, nil)
	for sig := range dispatcher.Registry().List() {
		s.mcpServer.AddTool(&mcp.Tool{
			Name:        sig.Name,
			Description: sig.Description,
			InputSchema: jsonschema.FromSignature(sig),
		}, s.toolHandler(sig.Name))
	}
	return s
}

// MCP returns the underlying MCP server.
func (s *Server) MCP() *mcp.Server {
	return s.mcpServer
}

func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var raw []byte
		if req != nil && req.Params != nil {
			raw = req.Params.Arguments
		}
		args, err := parse.DecodeArguments(raw)
		if err != nil {
			return errorResult(fmt.Sprintf("invalid arguments for %s: %v", name, err)), nil
		}
		return encodeResult(s.dispatcher.Invoke(ctx, invoke.Request{Operation: name, Arguments: args})), nil
	}
}

// encodeResult converts a dispatcher result into a tool result.
func encodeResult(res invoke.Result) *mcp.CallToolResult {
	if !res.Ok() {
		return errorResult(res.Err.Error())
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: FormatNumber(res.Value)}},
		StructuredContent: map[string]any{"result": res.Value},
	}
}

func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

// FormatNumber renders v with the fewest digits that round-trip.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Serve runs the MCP server on transport until the context ends or the
// client disconnects. Cancellation is not an error.
func (s *Server) Serve(ctx context.Context, transport mcp.Transport) error {
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
