// Package server exposes the processing pipeline as a JSON-RPC 2.0 tool
// server over stdio, the interactive counterpart to the one-shot CLI.
//
// # Protocol
//
// Requests arrive one per line on stdin; responses go to stdout. The
// method set follows the MCP tool-server convention:
//   - initialize: protocol handshake
//   - tools/list: enumerate available tools
//   - tools/call: execute a tool with arguments
//   - ping: health check
//
// # Available Tools
//
//   - image_load: decode an image and report dimensions/format metadata
//   - image_process: run the full threshold pipeline and save the result
//   - image_analyze: magnitude statistics and dominant colors
//   - image_suggest_thresholds: k-means threshold suggestions
//   - image_formats: supported output formats
//
// # Image Caching
//
// Decoded images are cached by path for the lifetime of the process, so
// analyzing a file and then processing it decodes once.
//
// # Error Handling
//
// Tool execution failures (missing files, decode/encode errors) become
// JSON-RPC error responses with code -32000. The pipeline itself never
// fails; every error on this surface is an I/O collaborator error.
package server
