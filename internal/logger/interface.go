package logger

import "context"

// Logger defines leveled, printf-style logging. The context carries the job
// id (see WithJobID) that prefixes each line.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
