package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/demandpbrtscene/internal/ctxlog"
)

// Run hands the options to the renderer and waits for it to finish.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	a.logger.Debug("Resolved options.",
		"scene", a.opts.SceneFile,
		"out", a.opts.OutFile,
		"width", a.opts.Width,
		"height", a.opts.Height,
		"warmup", a.opts.WarmupFrames,
		"debug", a.opts.Debug,
	)

	if err := a.renderer.Render(ctx, a.opts); err != nil {
		return fmt.Errorf("failed to render %s: %w", a.opts.SceneFile, err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
