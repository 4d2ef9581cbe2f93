package commands

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/paths"
	"git.home.luguber.info/inful/docsite/internal/site"
	"git.home.luguber.info/inful/docsite/internal/templates"
)

// siteBuilder holds what survives between builds: the resolver, the goldmark
// pipeline and the metrics recorder. Templates are re-read on every build.
type siteBuilder struct {
	cfg      *config.Config
	resolver *paths.Resolver
	pipeline *markdown.Pipeline
	recorder metrics.Recorder
	prom     *metrics.PrometheusRecorder
}

func newSiteBuilder(cfg *config.Config) (*siteBuilder, error) {
	layout, err := cfg.Layout()
	if err != nil {
		return nil, err
	}
	b := &siteBuilder{
		cfg:      cfg,
		resolver: paths.New(layout),
		pipeline: markdown.NewPipeline(cfg.PipelineOptions()),
		recorder: metrics.NoopRecorder{},
	}
	if cfg.MetricsFile != "" {
		b.prom = metrics.NewPrometheusRecorder(nil)
		b.recorder = b.prom
	}
	return b, nil
}

// Build runs one walk and, when configured, writes the metrics textfile.
func (b *siteBuilder) Build(ctx context.Context) (*site.Report, error) {
	walker := site.NewWalker(b.resolver, b.pipeline, templates.NewHTMLEngine()).
		WithRecorder(b.recorder).
		WithClean(b.cfg.Clean)

	report, err := walker.Walk(ctx)

	if b.prom != nil {
		if werr := b.prom.WriteTextfile(b.cfg.MetricsFile); werr != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(b.cfg.MetricsFile), logfields.Error(werr))
		}
	}
	return report, err
}
