package mcpservice

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind classifies failures so transports can map them to status codes.
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindNotFound
	KindInvalidArgument
	KindResourceUnavailable
	KindMethodNotAllowed
	KindTimeout
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindResourceUnavailable:
		return "resource_unavailable"
	case KindMethodNotAllowed:
		return "method_not_allowed"
	case KindTimeout:
		return "timeout"
	default:
		return "internal"
	}
}

// Error is a classified failure. Err, when set, is the underlying cause.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, which lets the Err* sentinels be
// used with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrInvalidArgument     = &Error{Kind: KindInvalidArgument}
	ErrResourceUnavailable = &Error{Kind: KindResourceUnavailable}
	ErrMethodNotAllowed    = &Error{Kind: KindMethodNotAllowed}
	ErrTimeout             = &Error{Kind: KindTimeout}
	ErrInternal            = &Error{Kind: KindInternal}
)

// Errorf builds an *Error of the given kind. A %w verb in format is kept as
// the cause.
func Errorf(kind ErrorKind, format string, a ...any) *Error {
	err := fmt.Errorf(format, a...)
	return &Error{Kind: kind, Message: err.Error(), Err: errors.Unwrap(err)}
}

// KindOf returns the kind of err. Context deadline errors count as
// timeouts; anything unclassified is internal.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindInternal
}
