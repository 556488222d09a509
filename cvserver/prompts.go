package cvserver

import (
	"context"
	"fmt"

	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
)

func NewPrompts() *mcpservice.PromptsContainer {
	return mcpservice.NewPromptsContainer(mcpservice.StaticPrompt{
		Descriptor: mcp.Prompt{
			Name:        "greeting",
			Description: "A simple greeting prompt",
			Arguments:   []mcp.PromptArgument{{Name: "name", Description: "Name to greet", Required: true}},
		},
		Render: func(_ context.Context, args map[string]string) (string, error) {
			return fmt.Sprintf("Hello, %s! Frank sends his greetings!", args["name"]), nil
		},
	})
}
