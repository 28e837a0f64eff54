// Package bgerr provides the engine's structured error taxonomy: the four
// error kinds the turn resolver and its callers distinguish (InvalidAction,
// InvalidState, UnknownIdentifier, EngineBug), each carrying the metadata a
// caller needs to explain the failure without re-deriving it.
package bgerr

import (
	"context"
	"errors"
	"fmt"
)

// Code categorizes why a call into the engine failed.
type Code string

// The engine's closed error taxonomy (spec §7).
const (
	// CodeInvalidAction: the action is not in legal_actions(state) for the
	// current turn.
	CodeInvalidAction Code = "invalid_action"
	// CodeInvalidState: an invariant was violated loading a serialized
	// state (out-of-range hp, unknown id, boost out of range, negative
	// side-condition counter).
	CodeInvalidState Code = "invalid_state"
	// CodeUnknownIdentifier: a move/item/ability/species id is missing
	// from the static catalog.
	CodeUnknownIdentifier Code = "unknown_identifier"
	// CodeEngineBug: an internal assertion failed (branch probabilities
	// don't sum to 100, an instruction reverse didn't restore state).
	// Never expected in production; logged when routed through
	// enginelog.ReportBug.
	CodeEngineBug Code = "engine_bug"
)

// Error is the engine's error type. All engine-originated errors are
// *Error; callers type-assert or use errors.As to recover Code and Meta.
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "bgerr: nil error"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap supports errors.Is / errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Option configures an *Error at construction time.
type Option func(*Error)

// WithMeta attaches a single metadata field.
func WithMeta(key string, value any) Option {
	return func(e *Error) {
		if e.Meta == nil {
			e.Meta = make(map[string]any)
		}
		e.Meta[key] = value
	}
}

// New builds an *Error with the given code and message.
func New(code Code, message string, opts ...Option) *Error {
	err := &Error{Code: code, Message: message}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// Newf builds an *Error with a formatted message.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap attaches message/code context to an existing error, preserving its
// code if it is already a *bgerr.Error and the caller doesn't override it.
func Wrap(err error, code Code, message string, opts ...Option) *Error {
	if err == nil {
		return New(CodeEngineBug, "bgerr.Wrap called with nil cause: "+message)
	}
	var inner *Error
	if errors.As(err, &inner) && code == "" {
		code = inner.Code
	}
	wrapped := &Error{Code: code, Message: message, Cause: err}
	for _, opt := range opts {
		opt(wrapped)
	}
	return wrapped
}

// InvalidAction reports that action is not currently legal, carrying the
// set of actions that were legal so the caller can recover without a
// second round trip.
func InvalidAction(action string, legal []string) *Error {
	return New(CodeInvalidAction, fmt.Sprintf("action %q is not legal", action),
		WithMeta("action", action), WithMeta("legal_actions", legal))
}

// InvalidState reports an invariant violation discovered while loading or
// validating a state, naming the offending field path and observed value.
func InvalidState(fieldPath string, observed any) *Error {
	return New(CodeInvalidState, fmt.Sprintf("invalid state at %s: %v", fieldPath, observed),
		WithMeta("field_path", fieldPath), WithMeta("observed", observed))
}

// UnknownIdentifier reports a catalog miss.
func UnknownIdentifier(kind, id string) *Error {
	return New(CodeUnknownIdentifier, fmt.Sprintf("unknown %s identifier %q", kind, id),
		WithMeta("kind", kind), WithMeta("id", id))
}

// EngineBug reports an internal assertion failure. Construction alone does
// not log; callers route it through enginelog.ReportBug so every EngineBug
// is both returned to the caller and recorded.
func EngineBug(message string, opts ...Option) *Error {
	return New(CodeEngineBug, message, opts...)
}

// metadataKey is the context key used to accumulate ambient metadata
// (battle id, side, turn number) attached automatically to every error
// built with the Ctx variants below.
type metadataKey struct{}

// WithMetadata returns a context carrying additional ambient metadata,
// inherited from any metadata already present and overwritten on conflict.
func WithMetadata(ctx context.Context, fields map[string]any) context.Context {
	merged := make(map[string]any)
	if parent, ok := ctx.Value(metadataKey{}).(map[string]any); ok {
		for k, v := range parent {
			merged[k] = v
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// NewCtx is New, with ambient context metadata merged in.
func NewCtx(ctx context.Context, code Code, message string, opts ...Option) *Error {
	err := New(code, message, opts...)
	applyContextMetadata(ctx, err)
	return err
}

func applyContextMetadata(ctx context.Context, err *Error) {
	meta, ok := ctx.Value(metadataKey{}).(map[string]any)
	if !ok {
		return
	}
	if err.Meta == nil {
		err.Meta = make(map[string]any, len(meta))
	}
	for k, v := range meta {
		if _, exists := err.Meta[k]; !exists {
			err.Meta[k] = v
		}
	}
}
