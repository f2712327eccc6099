package log

import "context"

// loggerCtxKey is the key used to store the logger in the context.
type loggerCtxKey struct{}

// WithContextLogger adds a logger to the context that can be retrieved later
// with GetContextLogger or FromContext.
func WithContextLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerCtxKey{}, logger)
}

// GetContextLogger retrieves the logger from the context.
// If no logger is stored in the context, nil is returned.
func GetContextLogger(ctx context.Context) Logger {
	logger, ok := ctx.Value(loggerCtxKey{}).(Logger)
	if !ok {
		return nil
	}

	return logger
}

// FromContext retrieves the logger from the context, falling back to a no-op
// logger when none is stored. The result is always safe to call.
func FromContext(ctx context.Context) Logger {
	if logger := GetContextLogger(ctx); logger != nil {
		return logger
	}

	return Noop{}
}
