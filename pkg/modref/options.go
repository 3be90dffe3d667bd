package modref

import (
	"context"
	"log/slog"
)

type OptionKey string

const LoggerOptionKey OptionKey = "logger_options"

type LoggerOptions struct {
	Logger *slog.Logger
}

// WithLogger attaches the logger Load reports resolution results to.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

func GetLogger(ctx context.Context) *slog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok && options.Logger != nil {
		return options.Logger
	}
	return slog.Default()
}
