package mcpservice

import (
	"context"
	"errors"
	"testing"

	"github.com/FrankGoortani/cv-mcp/mcp"
)

func TestPromptsContainer_Get(t *testing.T) {
	prompts := NewPromptsContainer(StaticPrompt{
		Descriptor: mcp.Prompt{
			Name:      "hello",
			Arguments: []mcp.PromptArgument{{Name: "name", Required: true}},
		},
		Render: func(_ context.Context, args map[string]string) (string, error) {
			return "hi " + args["name"], nil
		},
	})
	ctx := context.Background()

	res, err := prompts.Get(ctx, "hello", map[string]string{"name": "Ada"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(res.Messages) != 1 || res.Messages[0].Role != mcp.RoleUser || res.Messages[0].Content.Text != "hi Ada" {
		t.Fatalf("unexpected result %+v", res)
	}

	if _, err := prompts.Get(ctx, "hello", nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := prompts.Get(ctx, "nope", nil); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if n := len(prompts.Snapshot()); n != 1 {
		t.Fatalf("want 1 prompt got %d", n)
	}
}

func TestServer_Capabilities(t *testing.T) {
	empty := NewServer()
	if caps := empty.Capabilities(); caps.Tools != nil || caps.Resources != nil || caps.Prompts != nil || caps.Logging != nil {
		t.Fatalf("expected no capabilities, got %+v", caps)
	}

	srv := NewServer(
		WithToolsContainer(NewToolsContainer(echoTool())),
		WithPromptsContainer(NewPromptsContainer()),
	)
	caps := srv.Capabilities()
	if caps.Tools == nil || caps.Prompts == nil {
		t.Fatalf("expected tools and prompts, got %+v", caps)
	}
	if caps.Resources != nil || caps.Logging != nil {
		t.Fatalf("unexpected capabilities %+v", caps)
	}
	if names := srv.ToolNames(); len(names) != 1 || names[0] != "echo" {
		t.Fatalf("unexpected tool names %v", names)
	}
	if uris := srv.ResourceURIs(); uris != nil {
		t.Fatalf("expected nil uris, got %v", uris)
	}
}
