package logger

import (
	"log/slog"
	"os"
)

var log = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the global logger. Development gets debug level and
// human-readable output, everything else ships JSON at info level.
func Init(environment string) {
	if environment == "development" {
		log = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		return
	}

	log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

func Debug(msg string, args ...any) {
	log.Debug(msg, fields(args)...)
}

func Info(msg string, args ...any) {
	log.Info(msg, fields(args)...)
}

func Warn(msg string, args ...any) {
	log.Warn(msg, fields(args)...)
}

func Error(msg string, args ...any) {
	log.Error(msg, fields(args)...)
}

func Fatal(msg string, args ...any) {
	log.Error(msg, fields(args)...)
	os.Exit(1)
}

// fields allows calls like Error("failed to find product", err) alongside
// regular key-value pairs.
func fields(args []any) []any {
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			return []any{"error", err}
		}
		return []any{"detail", args[0]}
	}

	return args
}
