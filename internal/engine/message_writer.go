package engine

import (
	"context"
)

// MessageWriter delivers server initiated notifications to one peer.
type MessageWriter interface {
	WriteNotification(ctx context.Context, method string, params any) error
}

type MessageWriterFunc func(ctx context.Context, method string, params any) error

func (f MessageWriterFunc) WriteNotification(ctx context.Context, method string, params any) error {
	return f(ctx, method, params)
}
