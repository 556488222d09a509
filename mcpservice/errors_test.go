package mcpservice

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"testing"
)

func TestError_IsMatchesKind(t *testing.T) {
	err := Errorf(KindNotFound, "unknown tool: %s", "x")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected errors.Is to match sentinel")
	}
	if errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected kinds to differ")
	}
	wrapped := fmt.Errorf("router: %w", err)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Fatalf("expected wrapped error to match")
	}
	if KindOf(wrapped) != KindNotFound {
		t.Fatalf("want %v got %v", KindNotFound, KindOf(wrapped))
	}
}

func TestErrorf_KeepsCause(t *testing.T) {
	err := Errorf(KindResourceUnavailable, "resource %s unavailable: %w", "cv://x", fs.ErrNotExist)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected cause to be preserved")
	}
	if err.Error() != "resource cv://x unavailable: file does not exist" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want ErrorKind
	}{
		{errors.New("boom"), KindInternal},
		{context.DeadlineExceeded, KindTimeout},
		{fmt.Errorf("call: %w", context.DeadlineExceeded), KindTimeout},
		{&Error{Kind: KindMethodNotAllowed}, KindMethodNotAllowed},
	}
	for _, tc := range cases {
		if got := KindOf(tc.err); got != tc.want {
			t.Fatalf("KindOf(%v): want %v got %v", tc.err, tc.want, got)
		}
	}
	if s := (&Error{Kind: KindTimeout}).Error(); s != "timeout" {
		t.Fatalf("unexpected bare message %q", s)
	}
}
