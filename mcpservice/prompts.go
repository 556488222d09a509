package mcpservice

import (
	"context"

	"github.com/FrankGoortani/cv-mcp/mcp"
)

// PromptRenderer produces the text of a prompt from its arguments.
type PromptRenderer func(ctx context.Context, args map[string]string) (string, error)

// StaticPrompt pairs a prompt descriptor with its renderer.
type StaticPrompt struct {
	Descriptor mcp.Prompt
	Render     PromptRenderer
}

// PromptsContainer is an immutable set of prompts.
type PromptsContainer struct {
	list   []mcp.Prompt
	byName map[string]StaticPrompt
}

func NewPromptsContainer(defs ...StaticPrompt) *PromptsContainer {
	c := &PromptsContainer{byName: make(map[string]StaticPrompt, len(defs))}
	for _, d := range defs {
		if _, dup := c.byName[d.Descriptor.Name]; !dup {
			c.list = append(c.list, d.Descriptor)
		}
		c.byName[d.Descriptor.Name] = d
	}
	return c
}

func (c *PromptsContainer) Snapshot() []mcp.Prompt {
	out := make([]mcp.Prompt, len(c.list))
	copy(out, c.list)
	return out
}

// Get renders the named prompt as a single user message. Required
// arguments that are missing or empty yield InvalidArgument.
func (c *PromptsContainer) Get(ctx context.Context, name string, args map[string]string) (*mcp.GetPromptResult, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, Errorf(KindNotFound, "unknown prompt: %s", name)
	}
	for _, a := range p.Descriptor.Arguments {
		if a.Required && args[a.Name] == "" {
			return nil, Errorf(KindInvalidArgument, "missing required argument: %s", a.Name)
		}
	}
	text, err := p.Render(ctx, args)
	if err != nil {
		return nil, err
	}
	return &mcp.GetPromptResult{
		Description: p.Descriptor.Description,
		Messages: []mcp.PromptMessage{{
			Role:    mcp.RoleUser,
			Content: mcp.ContentBlock{Type: mcp.ContentTypeText, Text: text},
		}},
	}, nil
}
