package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	loggerKey contextKey = iota
	reconcileIDKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// WithReconcileID tags the context, and its logger, with the id of one
// reconciliation run.
func WithReconcileID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, reconcileIDKey, id)
	return WithField(ctx, "reconcile_id", id)
}

// ReconcileID extracts the reconciliation id from context.
func ReconcileID(ctx context.Context) string {
	if id, ok := ctx.Value(reconcileIDKey).(string); ok {
		return id
	}
	return ""
}

// WithFields adds structured fields to the logger in the context.
func WithFields(ctx context.Context, fields map[string]any) context.Context {
	logCtx := FromContext(ctx).With()
	for key, value := range fields {
		logCtx = addField(logCtx, key, value)
	}
	newLogger := logCtx.Logger()
	return WithLogger(ctx, &newLogger)
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	newLogger := addField(FromContext(ctx).With(), key, value).Logger()
	return WithLogger(ctx, &newLogger)
}

// WithScene adds the scene (snapshot source) to the logger.
func WithScene(ctx context.Context, scene string) context.Context {
	return WithField(ctx, "scene", scene)
}

// WithOperation adds operation context to the logger.
func WithOperation(ctx context.Context, operation string) context.Context {
	return WithField(ctx, "operation", operation)
}

// addField keeps strings, numbers and errors typed instead of going
// through reflection.
func addField(zctx zerolog.Context, key string, value any) zerolog.Context {
	switch v := value.(type) {
	case string:
		return zctx.Str(key, v)
	case int:
		return zctx.Int(key, v)
	case bool:
		return zctx.Bool(key, v)
	case error:
		return zctx.AnErr(key, v)
	default:
		return zctx.Interface(key, v)
	}
}
