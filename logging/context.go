package logging

import "context"

type debugModeKey struct{}

// EnableDebugMode returns a context under which CDebugf writes entries whatever the logger's level.
func EnableDebugMode(ctx context.Context) context.Context {
	return context.WithValue(ctx, debugModeKey{}, true)
}

// IsDebugMode reports whether ctx came from EnableDebugMode.
func IsDebugMode(ctx context.Context) bool {
	enabled, _ := ctx.Value(debugModeKey{}).(bool)
	return enabled
}
