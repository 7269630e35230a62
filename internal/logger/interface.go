package logger

import "context"

// Logger is the printf-style logger shared by every component.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})

	// SetLevel changes the minimum level at runtime. Unknown names fall back to info.
	SetLevel(level string)
}
