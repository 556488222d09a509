package cli

import (
	"context"
	"log/slog"

	"github.com/FrankGoortani/cv-mcp/cvserver"
	"github.com/FrankGoortani/cv-mcp/stdio"
	"github.com/spf13/cobra"
)

func newStdioCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stdio",
		Short: "Serve MCP over stdin and stdout",
		Long: `Serve MCP JSON-RPC over stdin/stdout, one message per line.

Logs go to stderr; stdout carries only protocol messages.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			lv := new(slog.LevelVar)
			lv.Set(cfg.Level())
			log := newLogger(cmd.ErrOrStderr(), lv)

			srv, err := cvserver.New(
				cvserver.WithMediaDir(cfg.MediaDir),
				cvserver.WithLevelVar(lv),
				cvserver.WithLogger(log),
			)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()
			go func() {
				if err := srv.Resources.Watch(ctx); err != nil {
					log.WarnContext(ctx, "resources.watch.fail", slog.String("err", err.Error()))
				}
			}()

			log.InfoContext(ctx, "stdio.start", slog.String("media_dir", cfg.MediaDir))
			h := stdio.NewHandler(srv,
				stdio.WithIO(cmd.InOrStdin(), cmd.OutOrStdout()),
				stdio.WithLogger(log),
				stdio.WithToolTimeout(cfg.RequestTimeout),
			)
			return h.Serve(ctx)
		},
	}
}
