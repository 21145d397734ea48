// Package server implements the MCP (Model Context Protocol) server for image editing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes a named image
// collection and its editing commands through the MCP protocol.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Collection Management:
//   - image_load: Read a file into the collection under a name
//   - image_save: Write a stored image to a file
//   - image_list: List stored images and their sizes
//
// Editing (each reads a source variant and stores a target variant):
//   - image_brighten, image_darken: Add or subtract a constant
//   - image_flip: Mirror vertically or horizontally
//   - image_component: Greyscale from red, green, blue, value or intensity
//   - image_color_transform: Greyscale (luma) or Sepia matrix
//   - image_filter: Blur or Sharpen convolution
//   - image_downsize: Shrink to a smaller size
//
// Every editing tool accepts an optional "mask". The edit is then kept only
// where the mask is black; elsewhere the target keeps the source's pixels.
//
// Inspection:
//   - image_histogram: Channel and intensity frequency tables
//   - image_sample_color: One pixel in raw, hex and HSL form
//   - image_preview: Base64 PNG rendering
//
// # Image Collection
//
// Images live in memory for the lifetime of the server process. Commands
// run one at a time, so a command always sees a consistent collection.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The underlying Go error string
package server
