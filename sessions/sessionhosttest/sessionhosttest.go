// Package sessionhosttest holds the behavioural suite every
// sessions.Directory implementation must pass.
package sessionhosttest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/FrankGoortani/cv-mcp/sessions"
)

// DirectoryFactory creates a new, empty Directory for one subtest.
type DirectoryFactory func(t *testing.T) sessions.Directory

// RunDirectoryTests runs the complete Directory test suite against the provided factory.
func RunDirectoryTests(t *testing.T, factory DirectoryFactory) {
	t.Run("RegisterGetRemove", func(t *testing.T) { testRegisterGetRemove(t, factory) })
	t.Run("RegisterReplaces", func(t *testing.T) { testRegisterReplaces(t, factory) })
	t.Run("RefreshUnknown", func(t *testing.T) { testRefreshUnknown(t, factory) })
	t.Run("Expiry", func(t *testing.T) { testExpiry(t, factory) })
	t.Run("RefreshExtends", func(t *testing.T) { testRefreshExtends(t, factory) })
	t.Run("ConcurrentRegister", func(t *testing.T) { testConcurrentRegister(t, factory) })
}

func testCtx(t *testing.T) context.Context {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func entry(id string) sessions.Entry {
	return sessions.Entry{
		ID:          id,
		Transport:   "sse",
		Subject:     "user-" + id,
		ConnectedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func testRegisterGetRemove(t *testing.T, factory DirectoryFactory) {
	d := factory(t)
	ctx := testCtx(t)

	if err := d.Register(ctx, entry("a"), time.Minute); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok, err := d.Get(ctx, "a")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	want := entry("a")
	if got.ID != want.ID || got.Transport != want.Transport || got.Subject != want.Subject || !got.ConnectedAt.Equal(want.ConnectedAt) {
		t.Fatalf("want %+v got %+v", want, got)
	}
	if n, err := d.Count(ctx); err != nil || n != 1 {
		t.Fatalf("want count 1 got %d (err=%v)", n, err)
	}

	if err := d.Remove(ctx, "a"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := d.Get(ctx, "a"); ok {
		t.Fatalf("entry still present after Remove")
	}
	if n, _ := d.Count(ctx); n != 0 {
		t.Fatalf("want count 0 got %d", n)
	}
	if err := d.Remove(ctx, "a"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func testRegisterReplaces(t *testing.T, factory DirectoryFactory) {
	d := factory(t)
	ctx := testCtx(t)

	e := entry("a")
	_ = d.Register(ctx, e, time.Minute)
	e.Transport = "ws"
	if err := d.Register(ctx, e, time.Minute); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok, _ := d.Get(ctx, "a")
	if !ok || got.Transport != "ws" {
		t.Fatalf("want replaced entry, got %+v ok=%v", got, ok)
	}
	if n, _ := d.Count(ctx); n != 1 {
		t.Fatalf("want count 1 got %d", n)
	}
}

func testRefreshUnknown(t *testing.T, factory DirectoryFactory) {
	d := factory(t)
	ctx := testCtx(t)

	err := d.Refresh(ctx, "missing", time.Minute)
	if !errors.Is(err, sessions.ErrUnknownSession) {
		t.Fatalf("want ErrUnknownSession got %v", err)
	}
}

func testExpiry(t *testing.T, factory DirectoryFactory) {
	d := factory(t)
	ctx := testCtx(t)

	_ = d.Register(ctx, entry("short"), 50*time.Millisecond)
	_ = d.Register(ctx, entry("long"), time.Minute)
	time.Sleep(150 * time.Millisecond)

	if _, ok, _ := d.Get(ctx, "short"); ok {
		t.Fatalf("short entry should have expired")
	}
	if n, _ := d.Count(ctx); n != 1 {
		t.Fatalf("want count 1 got %d", n)
	}
	if err := d.Refresh(ctx, "short", time.Minute); !errors.Is(err, sessions.ErrUnknownSession) {
		t.Fatalf("refresh of expired entry: want ErrUnknownSession got %v", err)
	}
}

func testRefreshExtends(t *testing.T, factory DirectoryFactory) {
	d := factory(t)
	ctx := testCtx(t)

	_ = d.Register(ctx, entry("a"), 100*time.Millisecond)
	for i := 0; i < 4; i++ {
		time.Sleep(50 * time.Millisecond)
		if err := d.Refresh(ctx, "a", 100*time.Millisecond); err != nil {
			t.Fatalf("Refresh %d: %v", i, err)
		}
	}
	if _, ok, _ := d.Get(ctx, "a"); !ok {
		t.Fatalf("refreshed entry expired")
	}
}

func testConcurrentRegister(t *testing.T, factory DirectoryFactory) {
	d := factory(t)
	ctx := testCtx(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = d.Register(ctx, entry(fmt.Sprintf("c-%d", i)), time.Minute)
		}(i)
	}
	wg.Wait()
	if n, err := d.Count(ctx); err != nil || n != 20 {
		t.Fatalf("want count 20 got %d (err=%v)", n, err)
	}
}
