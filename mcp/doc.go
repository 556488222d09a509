// Package mcp contains the protocol data types and method names used by the
// CV server's transports. It mirrors the wire representation of the Model
// Context Protocol for the subset this server speaks: initialization, tools,
// resources, prompts and logging.
//
// The package holds no transport logic. stdio, the HTTP router and the
// engine import these types and implement their own framing.
//
// Example (tool result construction):
//
//	res := &mcp.CallToolResult{
//	    Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: `{"found":true}`}},
//	}
package mcp
