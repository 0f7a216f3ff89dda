// Package mcp exposes the feature-document parser over the Model Context
// Protocol on stdio.
//
// Three tools are registered:
//
//   - parse_feature: parse inline document text and return the full JSON
//     syntax tree, or a positioned error for malformed input
//   - load_features: walk a directory for *.feature files, parse them
//     concurrently through the cache, and return a summary with per-file
//     errors
//   - get_status: report parse cache contents and server version
//
// Parse failures are reported as MCP errors carrying the (line, column)
// of the failure so clients can point at the offending construct.
// stdout is reserved for the protocol; anything the server logs goes to
// stderr.
package mcp
