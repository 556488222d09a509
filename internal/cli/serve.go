package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/FrankGoortani/cv-mcp/cvserver"
	"github.com/FrankGoortani/cv-mcp/httpapi"
	"github.com/FrankGoortani/cv-mcp/internal/config"
	"github.com/FrankGoortani/cv-mcp/internal/healthprobe"
	"github.com/FrankGoortani/cv-mcp/internal/jwtauth"
	"github.com/FrankGoortani/cv-mcp/internal/netutil"
	"github.com/FrankGoortani/cv-mcp/internal/wellknown"
	"github.com/FrankGoortani/cv-mcp/sessions"
	"github.com/FrankGoortani/cv-mcp/sessions/memoryhost"
	"github.com/FrankGoortani/cv-mcp/sessions/redishost"
	"github.com/FrankGoortani/cv-mcp/sse"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var (
		port int
		host string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve MCP over HTTP",
		Long: `Serve the HTTP surface: health, /sse and /ws sessions, /tool and
/tools/{name} calls and /rpc.

When PORT is taken the next ports are tried, up to PORT_RETRIES more.
SIGINT or SIGTERM shut the server down gracefully.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			lv := new(slog.LevelVar)
			lv.Set(cfg.Level())
			log := newLogger(cmd.ErrOrStderr(), lv)
			return serve(cmd.Context(), cfg, host, lv, log, func(addr string) {
				fmt.Fprintln(cmd.OutOrStdout(), okStyle.Render("listening")+" "+mutedStyle.Render("http://"+addr))
			})
		},
	}
	cmd.Flags().IntVar(&port, "port", 3001, "Port to listen on; overrides PORT")
	cmd.Flags().StringVar(&host, "host", "", "Interface to bind; empty binds all")
	return cmd
}

// serve runs the HTTP server until ctx ends. onListen is called with the
// bound address once the listener is open.
func serve(ctx context.Context, cfg *config.Config, host string, lv *slog.LevelVar, log *slog.Logger, onListen func(addr string)) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	srv, err := cvserver.New(
		cvserver.WithMediaDir(cfg.MediaDir),
		cvserver.WithLevelVar(lv),
		cvserver.WithLogger(log),
	)
	if err != nil {
		return err
	}

	dir, closeDir, err := newDirectory(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeDir()

	opts := []httpapi.Option{
		httpapi.WithLogger(log),
		httpapi.WithEnvironment(cfg.Environment),
		httpapi.WithHealthPath(cfg.HealthPath),
		httpapi.WithAPIKey(cfg.APIKey),
		httpapi.WithRequestTimeout(cfg.RequestTimeout),
		httpapi.WithSessionHandler(sse.NewHandler(srv,
			sse.WithLogger(log),
			sse.WithPingInterval(cfg.PingInterval),
			sse.WithMaxHeartbeats(cfg.MaxHeartbeats),
			sse.WithAnnounceDelay(cfg.AnnounceDelay),
			sse.WithDirectory(dir),
		)),
	}
	if cfg.AuthEnabled() {
		v, err := jwtauth.New(ctx, authConfig(cfg))
		if err != nil {
			return fmt.Errorf("failed to configure bearer auth: %w", err)
		}
		opts = append(opts, httpapi.WithVerifier(v), httpapi.WithProtectedResource(resourceMetadata(v)))
	}
	router := httpapi.New(srv, opts...)

	ln, port, err := netutil.Listen(ctx, log, host, cfg.Port, cfg.PortRetries)
	if err != nil {
		return err
	}
	addr := ln.Addr().String()
	log.InfoContext(ctx, "server.listen", slog.String("addr", addr), slog.String("environment", cfg.Environment))
	if onListen != nil {
		onListen(addr)
	}

	// Streaming requests inherit ctx, so shutdown ends open sessions
	// instead of waiting on them.
	hs := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := srv.Resources.Watch(ctx); err != nil {
			log.WarnContext(ctx, "resources.watch.fail", slog.String("err", err.Error()))
		}
	}()
	go func() {
		defer wg.Done()
		probe := healthprobe.New(probeTarget(port, cfg.HealthPath),
			healthprobe.WithLogger(log),
			healthprobe.WithIntervals(cfg.HealthInterval, cfg.HealthMaxInterval, cfg.HealthResetAfter),
		)
		_ = probe.Run(ctx)
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- hs.Serve(ln) }()

	var serveErr error
	select {
	case <-ctx.Done():
		log.InfoContext(ctx, "server.shutdown")
	case serveErr = <-errCh:
	}
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		log.WarnContext(shutdownCtx, "server.shutdown.fail", slog.String("err", err.Error()))
	}
	wg.Wait()
	if serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", serveErr)
	}
	return nil
}

// newDirectory picks the Redis session directory when REDIS_ADDR is set.
func newDirectory(ctx context.Context, cfg *config.Config, log *slog.Logger) (sessions.Directory, func(), error) {
	if cfg.RedisAddr == "" {
		return memoryhost.New(), func() {}, nil
	}
	d, err := redishost.New(ctx, cfg.RedisAddr, redishost.WithKeyPrefix(cfg.SessionsKeyPrefix))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect session directory: %w", err)
	}
	log.InfoContext(ctx, "sessions.redis", slog.String("addr", cfg.RedisAddr))
	return d, func() { _ = d.Close() }, nil
}

func authConfig(cfg *config.Config) jwtauth.Config {
	ac := jwtauth.Config{
		Issuer:  cfg.AuthIssuer,
		JWKSURL: cfg.AuthJWKSURL,
		Leeway:  time.Minute,
	}
	if cfg.AuthHS256Secret != "" {
		ac.HS256Secret = []byte(cfg.AuthHS256Secret)
	}
	for _, aud := range strings.Split(cfg.AuthAudience, ",") {
		if aud = strings.TrimSpace(aud); aud != "" {
			ac.Audiences = append(ac.Audiences, aud)
		}
	}
	return ac
}

func resourceMetadata(v *jwtauth.Verifier) wellknown.ProtectedResource {
	doc := wellknown.ProtectedResource{
		JWKSURI:      v.JWKSURI(),
		SigningAlgs:  v.Algorithms(),
		ResourceName: cvserver.Name,
	}
	if iss := v.Issuer(); iss != "" {
		doc.AuthorizationServers = []string{iss}
	}
	return doc
}

func probeTarget(port int, path string) string {
	if path == "" {
		path = "/health"
	}
	return "http://" + net.JoinHostPort("127.0.0.1", strconv.Itoa(port)) + path
}
