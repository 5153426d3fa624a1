package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/demandpbrtscene/internal/ctxlog"
	"github.com/specialistvlad/demandpbrtscene/internal/options"
)

// Renderer loads and draws the scene named by the options.
type Renderer interface {
	Render(ctx context.Context, opts options.Options) error
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(ctx context.Context, opts options.Options) error

// Render calls f.
func (f RendererFunc) Render(ctx context.Context, opts options.Options) error {
	return f(ctx, opts)
}

// DryRun is a Renderer that only logs what it was asked to do.
type DryRun struct{}

// Render logs the render request on the context logger.
func (DryRun) Render(ctx context.Context, opts options.Options) error {
	logger := ctxlog.FromContext(ctx)

	target := "window"
	if !opts.Interactive() {
		target = opts.OutFile
	}
	logger.Info("Render requested.",
		"scene", opts.SceneFile,
		"target", target,
		slog.String("size", fmt.Sprintf("%dx%d", opts.Width, opts.Height)),
	)
	if opts.Debug {
		logger.Info("Pixel debugging enabled.", "x", opts.DebugPixel.X, "y", opts.DebugPixel.Y, "oneshot", opts.OneShotDebug)
	}
	logger.Debug("Proxy resolution.",
		"oneshot_geometry", opts.OneShotGeometry,
		"oneshot_material", opts.OneShotMaterial,
		"sort", opts.SortProxies,
	)
	return nil
}
