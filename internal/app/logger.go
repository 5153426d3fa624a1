package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/demandpbrtscene/internal/options"
)

// logLevel picks the level for the app logger. Any of the verbosity options
// turns on debug output.
func logLevel(opts options.Options) slog.Level {
	if opts.Verbose() {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// newLogger creates an isolated text logger writing to outW. It does not
// set the global logger.
func newLogger(level slog.Level, outW io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(outW, &slog.HandlerOptions{Level: level}))
}
