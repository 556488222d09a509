package mcpservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sort"

	"github.com/FrankGoortani/cv-mcp/internal/logctx"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/invopop/jsonschema"
)

// ToolHandler executes a tool against raw JSON arguments and returns the
// JSON encoded result.
type ToolHandler func(ctx context.Context, args json.RawMessage) (json.RawMessage, error)

// StaticTool pairs an MCP tool descriptor with its handler.
type StaticTool struct {
	Descriptor mcp.Tool
	Handler    ToolHandler
}

// ToolRequest is the container for tool call input.
// It is generic over the typed argument struct A.
type ToolRequest[A any] struct {
	name string
	args A
}

func (r *ToolRequest[A]) Name() string { return r.name }
func (r *ToolRequest[A]) Args() A      { return r.args }

// ToolOption configures NewTool behavior.
type ToolOption func(*toolConfig)

type toolConfig struct {
	description string
}

// WithToolDescription sets the tool description used in listings.
func WithToolDescription(desc string) ToolOption {
	return func(c *toolConfig) { c.description = desc }
}

// NewTool constructs a writer-based tool with typed input A. The input
// schema is reflected from A with additionalProperties=false, and decoding
// rejects unknown fields. Fields tagged `jsonschema:"required"` must be
// present at call time.
func NewTool[A any](name string, fn func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[A]) error, opts ...ToolOption) StaticTool {
	cfg := toolConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	input := reflectToMCPInputSchema[A]()
	desc := mcp.Tool{
		Name:        name,
		Description: cfg.description,
		InputSchema: input,
	}

	handler := func(ctx context.Context, raw json.RawMessage) (json.RawMessage, error) {
		raw = normalizeArguments(raw)
		var a A
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&a); err != nil {
			return nil, Errorf(KindInvalidArgument, "invalid arguments: %v", err)
		}
		if err := checkRequired(raw, input.Required); err != nil {
			return nil, err
		}

		w := newToolResponseWriter(ctx)
		r := &ToolRequest[A]{name: name, args: a}
		err := fn(ctx, w, r)
		out, ok := w.finalize()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, Errorf(KindInternal, "tool %s produced no result", name)
		}
		return out, nil
	}

	return StaticTool{Descriptor: desc, Handler: handler}
}

// normalizeArguments treats absent and null arguments as an empty object.
func normalizeArguments(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return json.RawMessage(`{}`)
	}
	return trimmed
}

func checkRequired(raw json.RawMessage, required []string) error {
	if len(required) == 0 {
		return nil
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return Errorf(KindInvalidArgument, "invalid arguments: %v", err)
	}
	for _, name := range required {
		v, ok := fields[name]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Errorf(KindInvalidArgument, "missing required argument: %s", name)
		}
	}
	return nil
}

// reflectToMCPInputSchema reflects a Go type A into a jsonschema.Schema, and
// then down-converts it to the MCP ToolInputSchema subset.
func reflectToMCPInputSchema[A any]() mcp.ToolInputSchema {
	r := &jsonschema.Reflector{
		DoNotReference:             true, // inline defs
		RequiredFromJSONSchemaTags: true,
	}
	// ExpandedStruct looks the root up by type name, so anonymous structs
	// must stay unexpanded.
	if t := reflect.TypeOf(new(A)).Elem(); t.Name() != "" {
		r.ExpandedStruct = true
	}
	s := r.Reflect(new(A))

	// Only object schemas map cleanly to MCP ToolInputSchema.
	if s == nil || s.Type != "object" {
		return mcp.ToolInputSchema{
			Type:                 "object",
			Properties:           map[string]mcp.SchemaProperty{},
			AdditionalProperties: false,
		}
	}

	props := make(map[string]mcp.SchemaProperty)
	if s.Properties != nil {
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			props[el.Key] = toMCPProperty(el.Value)
		}
	}
	var required []string
	if len(s.Required) > 0 {
		required = append(required, s.Required...)
	}

	return mcp.ToolInputSchema{
		Type:                 "object",
		Properties:           props,
		Required:             required,
		AdditionalProperties: false,
	}
}

// toMCPProperty recursively maps a jsonschema.Schema to the simplified MCP SchemaProperty.
func toMCPProperty(s *jsonschema.Schema) mcp.SchemaProperty {
	if s == nil {
		return mcp.SchemaProperty{}
	}
	p := mcp.SchemaProperty{
		Type:        s.Type,
		Description: s.Description,
	}
	if len(s.Enum) > 0 {
		p.Enum = s.Enum
	}
	if s.Type == "array" && s.Items != nil {
		item := toMCPProperty(s.Items)
		p.Items = &item
	}
	if s.Type == "object" && s.Properties != nil {
		m := make(map[string]mcp.SchemaProperty, s.Properties.Len())
		for el := s.Properties.Oldest(); el != nil; el = el.Next() {
			m[el.Key] = toMCPProperty(el.Value)
		}
		p.Properties = m
	}
	return p
}

// ToolsContainer owns an immutable set of tool descriptors and handlers.
// Registration happens once at construction, so lookups need no locking.
type ToolsContainer struct {
	tools    []mcp.Tool
	handlers map[string]ToolHandler
}

// NewToolsContainer constructs a ToolsContainer with the given tool
// definitions. Listing order follows the order of defs; a later definition
// with a duplicate name replaces the earlier one in place.
func NewToolsContainer(defs ...StaticTool) *ToolsContainer {
	c := &ToolsContainer{handlers: make(map[string]ToolHandler, len(defs))}
	index := make(map[string]int, len(defs))
	for _, d := range defs {
		name := d.Descriptor.Name
		if i, ok := index[name]; ok {
			c.tools[i] = d.Descriptor
		} else {
			index[name] = len(c.tools)
			c.tools = append(c.tools, d.Descriptor)
		}
		c.handlers[name] = d.Handler
	}
	return c
}

// Snapshot returns a copy of the tool descriptors in registration order.
func (c *ToolsContainer) Snapshot() []mcp.Tool {
	out := make([]mcp.Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Names returns the registered tool names in registration order.
func (c *ToolsContainer) Names() []string {
	out := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		out = append(out, t.Name)
	}
	return out
}

// SortedNames returns the registered tool names alphabetically.
func (c *ToolsContainer) SortedNames() []string {
	out := c.Names()
	sort.Strings(out)
	return out
}

// Invoke runs the named tool. Unknown names yield a NotFound error; bad
// arguments an InvalidArgument error. A panicking handler is reported as an
// Internal error.
func (c *ToolsContainer) Invoke(ctx context.Context, name string, args json.RawMessage) (out json.RawMessage, err error) {
	h, ok := c.handlers[name]
	if !ok {
		return nil, Errorf(KindNotFound, "unknown tool: %s", name)
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, Errorf(KindInternal, "tool %s panicked: %v", name, r)
		}
	}()
	ctx = logctx.WithToolCallData(ctx, &logctx.ToolCallData{ToolName: name})
	out, err = h(ctx, args)
	if err != nil {
		var classified *Error
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !errors.As(err, &classified) {
			return nil, Errorf(KindTimeout, "tool %s: %w", name, ctx.Err())
		}
		return nil, err
	}
	return out, nil
}

// Call runs the named tool and wraps the outcome as an MCP tool result. The
// JSON result travels as a single text content block. Invalid arguments are
// reported in-band as an error result; every other failure is returned.
func (c *ToolsContainer) Call(ctx context.Context, req *mcp.CallToolRequestReceived) (*mcp.CallToolResult, error) {
	out, err := c.Invoke(ctx, req.Name, req.Arguments)
	if err != nil {
		if KindOf(err) == KindInvalidArgument {
			return ErrorResult(err.Error()), nil
		}
		return nil, err
	}
	return &mcp.CallToolResult{
		Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: string(out)}},
	}, nil
}

// ErrorResult builds a tool result flagged as an error.
func ErrorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.ContentBlock{{Type: mcp.ContentTypeText, Text: msg}},
		IsError: true,
	}
}
