// Package cli wires the cv-mcp commands: the stdio and socket servers, the
// in-process tool runner and the session watcher.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"runtime/debug"

	"github.com/FrankGoortani/cv-mcp/cvserver"
	"github.com/FrankGoortani/cv-mcp/internal/config"
	"github.com/FrankGoortani/cv-mcp/internal/logctx"
	"github.com/spf13/cobra"
)

// BuildTime is overridden by ldflags.
var BuildTime = "unknown"

// NewRootCommand builds the cv-mcp command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "cv-mcp",
		Short: "Frank Goortani's CV as a Model Context Protocol server",
		Long: `cv-mcp exposes Frank Goortani's CV as MCP tools, resources and prompts.

It serves MCP over stdin/stdout for local clients, or HTTP with SSE and
WebSocket sessions, REST style tool calls and a JSON-RPC endpoint.`,
		Version:       cvserver.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	root.PersistentFlags().String("media-dir", "", "Directory holding the resume and picture; overrides MEDIA_DIR")

	root.AddCommand(
		newStdioCommand(),
		newServeCommand(),
		newToolsCommand(),
		newCallCommand(),
		newWatchCommand(),
	)
	return root
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, errorStyle.Render("Error: "+err.Error()))
		return 1
	}
	return 0
}

func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// loadConfig reads the environment and applies the persistent flag
// overrides shared by every command.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		if _, err := config.ParseLevel(f.Value.String()); err != nil {
			return nil, err
		}
		cfg.LogLevel = f.Value.String()
	}
	if f := cmd.Flags().Lookup("media-dir"); f != nil && f.Changed {
		cfg.MediaDir = f.Value.String()
	}
	return cfg, nil
}

// newLogger builds the process logger. The level lives in lv so MCP
// logging/setLevel can move it at runtime.
func newLogger(w io.Writer, lv *slog.LevelVar) *slog.Logger {
	return slog.New(logctx.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lv})))
}
