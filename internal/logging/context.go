package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext extracts the logger from context
// If no logger is found, returns a disabled logger (no-op)
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent creates a child logger with a component field
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("component", component).Logger()
	return WithContext(ctx, childLogger)
}

// WithNodeID creates a child logger with a node_id field
func WithNodeID(ctx context.Context, nodeID string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("node_id", nodeID).Logger()
	return WithContext(ctx, childLogger)
}

// WithLayout creates a child logger with a layout field naming the layout
// document or snapshot in use.
func WithLayout(ctx context.Context, layout string) context.Context {
	logger := FromContext(ctx)
	childLogger := logger.With().Str("layout", layout).Logger()
	return WithContext(ctx, childLogger)
}
