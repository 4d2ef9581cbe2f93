package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	Site SiteFlags `embed:""`
}

func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, w.Site)
	if err != nil {
		return err
	}

	// Setup signal-based context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	builder, err := newSiteBuilder(cfg)
	if err != nil {
		return err
	}

	rebuild := func(ctx context.Context) error {
		report, err := builder.Build(ctx)
		if err != nil {
			return err
		}
		printReport(g.Out, report)
		return nil
	}

	// A failing initial build (e.g. README not written yet) must not stop watching.
	if err := rebuild(ctx); err != nil {
		slog.Warn("Initial build failed; waiting for changes", logfields.Error(err))
	}

	watcher := &watch.Watcher{
		Root:     builder.resolver.InputRoot(),
		Debounce: cfg.DebounceDuration(),
		Rebuild:  rebuild,
	}
	return watcher.Run(ctx)
}
