package mcpservice

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/FrankGoortani/cv-mcp/mcp"
)

type echoArgs struct {
	Message string `json:"message" jsonschema:"required,description=Text to echo"`
	Times   int    `json:"times,omitempty"`
}

func echoTool() StaticTool {
	return NewTool("echo", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[echoArgs]) error {
		a := r.Args()
		n := a.Times
		if n == 0 {
			n = 1
		}
		out := make([]string, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, a.Message)
			_ = w.SendProgress(float64(i+1), float64(n))
		}
		return w.WriteJSON(map[string]any{"echo": out})
	}, WithToolDescription("Echo a message"))
}

func TestNewTool_ReflectsSchema(t *testing.T) {
	tool := echoTool()
	in := tool.Descriptor.InputSchema
	if in.Type != "object" {
		t.Fatalf("expected object schema, got %q", in.Type)
	}
	if in.AdditionalProperties {
		t.Fatalf("expected additionalProperties=false by default")
	}
	if len(in.Required) != 1 || in.Required[0] != "message" {
		t.Fatalf("expected required [message], got %v", in.Required)
	}
	if p, ok := in.Properties["message"]; !ok || p.Type != "string" || p.Description != "Text to echo" {
		t.Fatalf("unexpected message property: %+v", in.Properties["message"])
	}
	if p, ok := in.Properties["times"]; !ok || p.Type != "integer" {
		t.Fatalf("unexpected times property: %+v", in.Properties["times"])
	}
	if tool.Descriptor.Description != "Echo a message" {
		t.Fatalf("unexpected description %q", tool.Descriptor.Description)
	}
}

func TestNewTool_AnonymousArgs(t *testing.T) {
	empty := NewTool("noop", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[struct{}]) error {
		return w.WriteJSON("ok")
	})
	in := empty.Descriptor.InputSchema
	if in.Type != "object" || len(in.Properties) != 0 || len(in.Required) != 0 || in.AdditionalProperties {
		t.Fatalf("unexpected schema for struct{}: %+v", in)
	}

	type inline = struct {
		Query string `json:"query" jsonschema:"required"`
	}
	query := NewTool("query", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[inline]) error {
		return w.WriteJSON(r.Args().Query)
	})
	in = query.Descriptor.InputSchema
	if len(in.Required) != 1 || in.Required[0] != "query" || in.Properties["query"].Type != "string" {
		t.Fatalf("unexpected schema for inline struct: %+v", in)
	}

	tools := NewToolsContainer(empty, query)
	if out, err := tools.Invoke(context.Background(), "noop", nil); err != nil || string(out) != `"ok"` {
		t.Fatalf("noop: %s %v", out, err)
	}
	if _, err := tools.Invoke(context.Background(), "noop", json.RawMessage(`{"x":1}`)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("want invalid argument for unknown field, got %v", err)
	}
	if out, err := tools.Invoke(context.Background(), "query", json.RawMessage(`{"query":""}`)); err != nil || string(out) != `""` {
		t.Fatalf("empty string satisfies required: %s %v", out, err)
	}
}

func TestToolsContainer_Invoke(t *testing.T) {
	tools := NewToolsContainer(echoTool())
	ctx := context.Background()

	out, err := tools.Invoke(ctx, "echo", json.RawMessage(`{"message":"hi","times":2}`))
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	var got struct {
		Echo []string `json:"echo"`
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if len(got.Echo) != 2 || got.Echo[0] != "hi" {
		t.Fatalf("unexpected result %s", out)
	}
}

func TestToolsContainer_InvokeErrors(t *testing.T) {
	tools := NewToolsContainer(echoTool())
	ctx := context.Background()

	cases := []struct {
		name string
		tool string
		args string
		want error
	}{
		{"unknown tool", "unknown-tool-xyz", `{}`, ErrNotFound},
		{"malformed json", "echo", `{"message":`, ErrInvalidArgument},
		{"unknown field", "echo", `{"message":"x","extra":1}`, ErrInvalidArgument},
		{"wrong type", "echo", `{"message":5}`, ErrInvalidArgument},
		{"missing required", "echo", `{}`, ErrInvalidArgument},
		{"null required", "echo", `{"message":null}`, ErrInvalidArgument},
		{"null args", "echo", `null`, ErrInvalidArgument},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tools.Invoke(ctx, tc.tool, json.RawMessage(tc.args))
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
		})
	}

	_, err := tools.Invoke(ctx, "unknown-tool-xyz", nil)
	if err == nil || err.Error() != "unknown tool: unknown-tool-xyz" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestToolsContainer_ProgressReporter(t *testing.T) {
	tools := NewToolsContainer(echoTool())
	var reports [][2]float64
	ctx := WithProgressReporter(context.Background(), ProgressFunc(func(_ context.Context, p, total float64) error {
		reports = append(reports, [2]float64{p, total})
		return nil
	}))
	if _, err := tools.Invoke(ctx, "echo", json.RawMessage(`{"message":"x","times":3}`)); err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if len(reports) != 3 || reports[2] != [2]float64{3, 3} {
		t.Fatalf("unexpected progress reports %v", reports)
	}
}

func TestToolsContainer_ToolLogger(t *testing.T) {
	logged := make(chan string, 1)
	tool := NewTool("logs", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[struct{}]) error {
		w.Log(mcp.LoggingLevelInfo, "working", map[string]any{"step": 1})
		return w.WriteJSON("done")
	})
	ctx := WithToolLogger(context.Background(), ToolLoggerFunc(func(_ context.Context, level mcp.LoggingLevel, msg string, _ map[string]any) {
		logged <- string(level) + ":" + msg
	}))
	out, err := NewToolsContainer(tool).Invoke(ctx, "logs", nil)
	if err != nil {
		t.Fatalf("Invoke: %v", err)
	}
	if string(out) != `"done"` {
		t.Fatalf("unexpected result %s", out)
	}
	if got := <-logged; got != "info:working" {
		t.Fatalf("unexpected log %q", got)
	}
}

func TestToolsContainer_NoResultIsInternal(t *testing.T) {
	tool := NewTool("silent", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[struct{}]) error {
		return nil
	})
	_, err := NewToolsContainer(tool).Invoke(context.Background(), "silent", nil)
	if KindOf(err) != KindInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestToolsContainer_DeadlineIsTimeout(t *testing.T) {
	tool := NewTool("slow", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[struct{}]) error {
		<-ctx.Done()
		return ctx.Err()
	})
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err := NewToolsContainer(tool).Invoke(ctx, "slow", nil)
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("expected timeout, got %v", err)
	}
}

func TestToolsContainer_Call(t *testing.T) {
	tools := NewToolsContainer(echoTool())
	ctx := context.Background()

	res, err := tools.Call(ctx, &mcp.CallToolRequestReceived{Name: "echo", Arguments: json.RawMessage(`{"message":"a"}`)})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if res.IsError || len(res.Content) != 1 || res.Content[0].Type != mcp.ContentTypeText {
		t.Fatalf("unexpected result %+v", res)
	}
	if !json.Valid([]byte(res.Content[0].Text)) {
		t.Fatalf("content is not JSON: %q", res.Content[0].Text)
	}

	res, err = tools.Call(ctx, &mcp.CallToolRequestReceived{Name: "echo", Arguments: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if !res.IsError {
		t.Fatalf("expected isError result for invalid arguments")
	}

	if _, err := tools.Call(ctx, &mcp.CallToolRequestReceived{Name: "nope"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestToolsContainer_OrderAndDuplicates(t *testing.T) {
	a := echoTool()
	b := NewTool("another", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[struct{}]) error {
		return w.WriteJSON(1)
	})
	replacement := echoTool()
	replacement.Descriptor.Description = "replaced"

	tools := NewToolsContainer(a, b, replacement)
	names := tools.Names()
	if len(names) != 2 || names[0] != "echo" || names[1] != "another" {
		t.Fatalf("unexpected names %v", names)
	}
	if d := tools.Snapshot()[0].Description; d != "replaced" {
		t.Fatalf("expected replaced descriptor, got %q", d)
	}
	if sorted := tools.SortedNames(); sorted[0] != "another" {
		t.Fatalf("unexpected sorted names %v", sorted)
	}
}

func TestToolsContainer_PanicIsInternal(t *testing.T) {
	boom := NewTool("boom", func(ctx context.Context, w ToolResponseWriter, r *ToolRequest[struct{}]) error {
		panic("kaboom")
	})
	c := NewToolsContainer(boom)
	_, err := c.Invoke(context.Background(), "boom", nil)
	if !errors.Is(err, ErrInternal) {
		t.Fatalf("want internal error got %v", err)
	}
}
