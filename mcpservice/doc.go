// Package mcpservice provides the registries the CV server is assembled
// from: typed tools, file-backed resources and prompts, plus the error
// taxonomy shared by every transport.
//
// Registries are built once and are read-only afterwards, so they can be used
// from concurrent requests without locking.
//
// Quick start:
//
//	type EchoArgs struct {
//	    Message string `json:"message" jsonschema:"required"`
//	}
//	tools := mcpservice.NewToolsContainer(
//	    mcpservice.NewTool[EchoArgs]("echo", func(ctx context.Context, w mcpservice.ToolResponseWriter, r *mcpservice.ToolRequest[EchoArgs]) error {
//	        return w.WriteJSON(map[string]string{"echo": r.Args().Message})
//	    }, mcpservice.WithToolDescription("Echo a message back")),
//	)
//	out, err := tools.Invoke(ctx, "echo", json.RawMessage(`{"message":"hi"}`))
//
// Errors returned by the registries are *Error values; use KindOf or
// errors.Is with the Err* sentinels to branch on them.
package mcpservice
