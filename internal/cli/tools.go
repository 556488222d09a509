package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/FrankGoortani/cv-mcp/cvserver"
	"github.com/FrankGoortani/cv-mcp/internal/config"
	"github.com/FrankGoortani/cv-mcp/mcp"
	"github.com/FrankGoortani/cv-mcp/mcpservice"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newToolsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tools",
		Short: "List the CV tools and their arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, _, err := localServer(cmd)
			if err != nil {
				return err
			}
			renderTools(cmd.OutOrStdout(), srv.Tools.Snapshot())
			return nil
		},
	}
}

func newCallCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "call <tool> [json-arguments]",
		Short: "Invoke a CV tool in-process",
		Long: `Invoke a CV tool without starting a server.

Examples:
  cv-mcp call get_profile
  cv-mcp call search_cv '{"query":"Kubernetes"}'
  cv-mcp call get_tech_stack '{"category":"cloud"}' --raw`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, cfg, err := localServer(cmd)
			if err != nil {
				return err
			}
			var in json.RawMessage
			if len(args) == 2 {
				in = json.RawMessage(args[1])
				if !json.Valid(in) {
					return fmt.Errorf("arguments for %s are not valid JSON", args[0])
				}
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
			defer cancel()
			ctx = mcpservice.WithToolLogger(ctx, stderrToolLogger(cmd.ErrOrStderr()))

			out, err := srv.Tools.Invoke(ctx, args[0], in)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if raw {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return err
			}
			return renderResult(cmd.OutOrStdout(), args[0], out)
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "Print the compact JSON result only")
	return cmd
}

// localServer builds the CV server for the in-process commands. Logging
// stays at warn or above so it does not drown the rendered output.
func localServer(cmd *cobra.Command) (*mcpservice.Server, *config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	lv := new(slog.LevelVar)
	lv.Set(max(cfg.Level(), slog.LevelWarn))
	srv, err := cvserver.New(
		cvserver.WithMediaDir(cfg.MediaDir),
		cvserver.WithLogger(newLogger(cmd.ErrOrStderr(), lv)),
	)
	if err != nil {
		return nil, nil, err
	}
	return srv, cfg, nil
}

func stderrToolLogger(w io.Writer) mcpservice.ToolLogger {
	return mcpservice.ToolLoggerFunc(func(ctx context.Context, level mcp.LoggingLevel, msg string, data map[string]any) {
		line := mutedStyle.Render(fmt.Sprintf("[%s]", level)) + " " + msg
		if len(data) > 0 {
			if b, err := json.Marshal(data); err == nil {
				line += " " + mutedStyle.Render(string(b))
			}
		}
		fmt.Fprintln(w, line)
	})
}

func renderTools(w io.Writer, tools []mcp.Tool) {
	sort.Slice(tools, func(i, j int) bool { return tools[i].Name < tools[j].Name })

	rows := []string{titleStyle.Render(fmt.Sprintf("%d tools", len(tools)))}
	for _, t := range tools {
		rows = append(rows, "", nameStyle.Render(t.Name)+"  "+t.Description)
		names := make([]string, 0, len(t.InputSchema.Properties))
		for name := range t.InputSchema.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			p := t.InputSchema.Properties[name]
			flag := "optional"
			if slices.Contains(t.InputSchema.Required, name) {
				flag = "required"
			}
			arg := fmt.Sprintf("  %s: %s, %s", name, p.Type, flag)
			if p.Description != "" {
				arg += "  " + p.Description
			}
			rows = append(rows, mutedStyle.Render(arg))
		}
	}
	fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func renderResult(w io.Writer, name string, out json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, out, "", "  "); err != nil {
		return fmt.Errorf("format result: %w", err)
	}
	header := okStyle.Render("✓ "+name) + " " + mutedStyle.Render(fmt.Sprintf("(%d bytes)", len(out)))
	rule := ruleStyle.Render(strings.Repeat("─", 40))
	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, header, rule, buf.String()))
	return err
}
