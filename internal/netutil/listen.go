// Package netutil opens the server's listening socket.
package netutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"syscall"
)

// Listen binds host:port over TCP. When the port is already in use it tries
// the following ports, up to retries more attempts. Any other bind error is
// returned immediately. The returned port is the one actually bound, which
// differs from the request when port is 0.
func Listen(ctx context.Context, log *slog.Logger, host string, port, retries int) (net.Listener, int, error) {
	if log == nil {
		log = slog.Default()
	}
	var lc net.ListenConfig
	var lastErr error
	for i := 0; i <= retries; i++ {
		p := port + i
		if port == 0 {
			p = 0
		}
		ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(p)))
		if err == nil {
			bound := ln.Addr().(*net.TCPAddr).Port
			if i > 0 {
				log.WarnContext(ctx, "listen.port_fallback", slog.Int("requested", port), slog.Int("port", bound))
			}
			return ln, bound, nil
		}
		if !errors.Is(err, syscall.EADDRINUSE) {
			return nil, 0, fmt.Errorf("listen on port %d: %w", p, err)
		}
		log.InfoContext(ctx, "listen.port_busy", slog.Int("port", p))
		lastErr = err
	}
	return nil, 0, fmt.Errorf("no free port in %d-%d: %w", port, port+retries, lastErr)
}
