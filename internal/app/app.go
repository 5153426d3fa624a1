package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/demandpbrtscene/internal/options"
)

// App encapsulates the parsed options, the logger and the renderer.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	opts     options.Options
	renderer Renderer
}

// NewApp returns an App for opts. The App keeps its own copy of opts and its
// own logger, writing to outW.
func NewApp(outW io.Writer, opts *options.Options, renderer Renderer) *App {
	logger := newLogger(logLevel(*opts), outW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:     outW,
		logger:   logger,
		opts:     *opts,
		renderer: renderer,
	}
}
