// Package mcpserver exposes a dispatcher as a Model Context Protocol server.
//
// Every registered operation becomes one MCP tool whose input schema is
// derived from its signature. Tool calls are decoded, dispatched and
// encoded back: a success carries the number as text and as structured
// content {"result": value}; a failure is a tool error whose text is
// "<Kind>: <message>".
//
// The server runs over stdio or streamable HTTP. The HTTP transport also
// serves /metrics and /healthz.
package mcpserver
