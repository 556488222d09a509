package netutil

import (
	"context"
	"io"
	"log/slog"
	"net"
	"strconv"
	"testing"
)

func quiet() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

// freePortPair finds p such that p and p+1 are both free at the time of the
// call.
func freePortPair(t *testing.T) int {
	t.Helper()
	for i := 0; i < 20; i++ {
		a, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("listen: %v", err)
		}
		p := a.Addr().(*net.TCPAddr).Port
		b, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(p+1))
		_ = a.Close()
		if err == nil {
			_ = b.Close()
			return p
		}
	}
	t.Skip("could not find two adjacent free ports")
	return 0
}

func TestListen_FallsBackWhenBusy(t *testing.T) {
	p := freePortPair(t)
	busy, err := net.Listen("tcp", "127.0.0.1:"+strconv.Itoa(p))
	if err != nil {
		t.Skipf("port %d taken meanwhile: %v", p, err)
	}
	defer busy.Close()

	ln, got, err := Listen(context.Background(), quiet(), "127.0.0.1", p, 3)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	if got != p+1 {
		t.Fatalf("want port %d got %d", p+1, got)
	}
}

func TestListen_ExhaustsRetries(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer busy.Close()
	p := busy.Addr().(*net.TCPAddr).Port

	if _, _, err := Listen(context.Background(), quiet(), "127.0.0.1", p, 0); err == nil {
		t.Fatalf("expected error when the only candidate port is busy")
	}
}

func TestListen_EphemeralPort(t *testing.T) {
	ln, got, err := Listen(context.Background(), quiet(), "127.0.0.1", 0, 5)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer ln.Close()
	if got == 0 {
		t.Fatalf("expected a concrete port")
	}
}
