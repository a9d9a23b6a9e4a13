// Package logger initializes the process-wide slog logger used by the CLI.
// Library packages stay log-free; only command entry points log.
package logger

import (
	"log/slog"
	"os"
	"sync"

	"github.com/lmittmann/tint"
)

var once sync.Once

// Options configures the handler.
type Options struct {
	Level      slog.Leveler // slog.LevelInfo, slog.LevelDebug, etc.
	Writer     *os.File     // default: os.Stderr
	TimeFormat string       // default: 15:04:05
}

// Init installs a tint handler as the default slog logger. Subsequent
// calls are no-ops.
func Init(opts *Options) {
	once.Do(func() {
		writer := opts.Writer
		if writer == nil {
			writer = os.Stderr
		}

		handler := tint.NewHandler(writer, &tint.Options{
			Level:      opts.Level,
			TimeFormat: opts.TimeFormat,
		})
		slog.SetDefault(slog.New(handler))
	})
}
