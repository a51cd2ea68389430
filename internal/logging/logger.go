// Package logging is the structured-logging seam of LetsTalk. Services and
// repositories take a Logger; New wires it to slog with an optional JSON
// log file alongside the console.
package logging

import "context"

// Logger takes alternating key/value args:
//
//	log.Info(ctx, "post created", "post_id", id, "author", userID)
//
// Refused business operations go to Debug, corrupt persisted data to Warn,
// storage failures to Error.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
	With(args ...any) Logger
}

// Nop discards everything. Used when a caller passes no logger.
func Nop() Logger { return nop{} }

type nop struct{}

func (nop) Debug(context.Context, string, ...any) {}
func (nop) Info(context.Context, string, ...any)  {}
func (nop) Warn(context.Context, string, ...any)  {}
func (nop) Error(context.Context, string, ...any) {}
func (n nop) With(...any) Logger                  { return n }
