package commands

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/docsite/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Site SiteFlags `embed:""`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root, b.Site)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	builder, err := newSiteBuilder(cfg)
	if err != nil {
		return err
	}
	report, err := builder.Build(ctx)
	if err != nil {
		return err
	}
	printReport(g.Out, report)
	return nil
}

func printReport(out io.Writer, report *site.Report) {
	_, _ = fmt.Fprintf(out, "Built %d pages (%d headings, %d files skipped) in %s\n",
		report.Pages, report.Headings, report.Skipped, report.Duration.Round(time.Millisecond))
	_, _ = fmt.Fprintf(out, "Search index: %s (%d entries)\n", report.IndexPath, len(report.Entries))
}
