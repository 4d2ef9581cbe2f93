// Package site walks an input tree of markdown documents, writes the mirrored
// HTML output tree and accumulates the search index.
//
// A Walk is strictly sequential: one document is read, rendered, written and
// indexed before the next one is touched. Index order is therefore defined by
// traversal order alone: the README first, then every file depth-first in
// os.ReadDir order.
package site

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/metrics"
	"git.home.luguber.info/inful/docsite/internal/observability"
	"git.home.luguber.info/inful/docsite/internal/paths"
	"git.home.luguber.info/inful/docsite/internal/searchindex"
	"git.home.luguber.info/inful/docsite/internal/templates"
)

// Stage names used in logs and metrics.
const (
	StagePrepare = "prepare"
	StageReadme  = "readme"
	StageWalk    = "walk"
	StageIndex   = "index"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Report summarizes one Walk.
type Report struct {
	BuildID   string
	Pages     int
	Headings  int
	Skipped   int
	Dirs      int
	Duration  time.Duration
	IndexPath string
	// Entries is the index exactly as serialized.
	Entries []searchindex.Entry
}

// Walker renders an input tree into a site.
type Walker struct {
	resolver *paths.Resolver
	pipeline *markdown.Pipeline
	engine   templates.Engine
	recorder metrics.Recorder
	clean    bool
}

// NewWalker returns a Walker with a no-op metrics recorder.
func NewWalker(resolver *paths.Resolver, pipeline *markdown.Pipeline, engine templates.Engine) *Walker {
	return &Walker{
		resolver: resolver,
		pipeline: pipeline,
		engine:   engine,
		recorder: metrics.NoopRecorder{},
	}
}

// WithRecorder sets the metrics recorder.
func (w *Walker) WithRecorder(r metrics.Recorder) *Walker {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	w.recorder = r
	return w
}

// WithClean makes Walk remove the site root before rendering.
func (w *Walker) WithClean(clean bool) *Walker {
	w.clean = clean
	return w
}

// walkRun is the state of a single Walk call.
type walkRun struct {
	*Walker
	index  *searchindex.Builder
	report *Report
}

// Walk renders the README, then the whole input tree, then writes the index.
// The first failure aborts the walk; files written so far stay on disk and
// the index is not written.
func (w *Walker) Walk(ctx context.Context) (*Report, error) {
	start := time.Now()
	buildID := uuid.NewString()
	ctx = observability.WithBuildID(ctx, buildID)

	run := &walkRun{
		Walker: w,
		index:  searchindex.NewBuilder(),
		report: &Report{BuildID: buildID, IndexPath: w.resolver.IndexPath()},
	}

	observability.InfoContext(ctx, "Starting site build",
		logfields.Path(w.resolver.InputRoot()),
		logfields.Output(w.resolver.SiteRoot()),
		logfields.Template(w.resolver.TemplatePath()))

	err := run.execute(ctx)

	run.report.Duration = time.Since(start)
	w.recorder.ObserveBuildDuration(run.report.Duration)
	switch {
	case err == nil:
		w.recorder.IncBuildOutcome(metrics.BuildOutcomeSuccess)
		observability.InfoContext(ctx, "Site build completed",
			slog.Int("pages", run.report.Pages),
			logfields.Headings(run.report.Headings),
			slog.Int("skipped", run.report.Skipped),
			logfields.DurationMS(float64(run.report.Duration.Microseconds())/1000))
	case ctx.Err() != nil:
		w.recorder.IncBuildOutcome(metrics.BuildOutcomeCanceled)
		observability.WarnContext(ctx, "Site build canceled", logfields.Error(err))
	default:
		w.recorder.IncBuildOutcome(metrics.BuildOutcomeFailed)
		observability.ErrorContext(ctx, "Site build failed", logfields.Error(err))
	}
	return run.report, err
}

func (r *walkRun) execute(ctx context.Context) error {
	if err := r.stage(ctx, StagePrepare, r.prepare); err != nil {
		return err
	}
	if err := r.stage(ctx, StageReadme, r.renderReadme); err != nil {
		return err
	}
	if err := r.stage(ctx, StageWalk, func(ctx context.Context) error {
		return r.walkDir(ctx, r.resolver.InputRoot())
	}); err != nil {
		return err
	}
	return r.stage(ctx, StageIndex, r.writeIndex)
}

func (r *walkRun) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx = observability.WithStage(ctx, name)
	start := time.Now()
	err := fn(ctx)
	r.recorder.ObserveStageDuration(name, time.Since(start))

	result := metrics.ResultSuccess
	switch {
	case err != nil && ctx.Err() != nil:
		result = metrics.ResultCanceled
	case err != nil:
		result = metrics.ResultFatal
	}
	r.recorder.IncStageResult(name, result)
	return err
}

func (r *walkRun) prepare(ctx context.Context) error {
	siteRoot := r.resolver.SiteRoot()
	if r.clean {
		if within(r.resolver.InputRoot(), siteRoot) {
			return errors.ValidationError("refusing to clean a site root that contains the input tree").
				WithContext("path", siteRoot).
				Build()
		}
		observability.DebugContext(ctx, "Cleaning site root", logfields.Path(siteRoot))
		if err := os.RemoveAll(siteRoot); err != nil {
			return errors.FileSystemError("clean site root").WithCause(err).
				WithContext("path", siteRoot).
				Build()
		}
	}
	return r.mkdir(siteRoot)
}

func (r *walkRun) renderReadme(ctx context.Context) error {
	src := r.resolver.ReadmePath()
	content, err := os.ReadFile(src)
	if err != nil {
		return errors.DocsError("README missing").WithCause(fmt.Errorf("%w: %w", ErrReadmeMissing, err)).
			WithContext("path", src).
			Build()
	}
	if err := r.renderPage(ctx, src, r.resolver.ReadmeOutputPath(), content); err != nil {
		return err
	}
	r.recorder.IncPages(metrics.PageReadme)
	return nil
}

// walkDir visits dir in os.ReadDir order, recursing into subdirectories as
// they are met.
func (r *walkRun) walkDir(ctx context.Context, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return errors.FileSystemError("read input directory").WithCause(fmt.Errorf("%w: %w", ErrDirWalkFailed, err)).
			WithContext("path", dir).
			Build()
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, entry.Name())

		isDir, err := isDirectory(path, entry)
		if err != nil {
			return errors.FileSystemError("stat input entry").WithCause(fmt.Errorf("%w: %w", ErrDirWalkFailed, err)).
				WithContext("path", path).
				Build()
		}

		if isDir {
			out, err := r.resolver.OutputDir(path)
			if err != nil {
				return err
			}
			if err := r.mkdir(out); err != nil {
				return err
			}
			r.report.Dirs++
			if err := r.walkDir(ctx, path); err != nil {
				return err
			}
			continue
		}

		if !paths.IsMarkdown(entry.Name()) {
			observability.InfoContext(ctx, "Not a markdown file, skipping", logfields.Path(path))
			r.report.Skipped++
			r.recorder.IncSkipped()
			continue
		}

		if err := r.renderFile(ctx, path); err != nil {
			return err
		}
	}
	return nil
}

// isDirectory follows symlinks, so a linked directory is walked like a real one.
func isDirectory(path string, entry os.DirEntry) (bool, error) {
	if entry.Type()&os.ModeSymlink == 0 {
		return entry.IsDir(), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (r *walkRun) renderFile(ctx context.Context, src string) error {
	content, err := os.ReadFile(src)
	if err != nil {
		return errors.DocsError("read markdown file").WithCause(fmt.Errorf("%w: %w", ErrFileReadFailed, err)).
			WithContext("path", src).
			Build()
	}
	out, err := r.resolver.OutputPath(src)
	if err != nil {
		return err
	}
	if err := r.renderPage(ctx, src, out, content); err != nil {
		return err
	}
	r.recorder.IncPages(metrics.PagePage)
	return nil
}

// renderPage runs one document through the pipeline and the template, writes
// it to out and appends its page entry followed by its heading entries.
func (r *walkRun) renderPage(ctx context.Context, src, out string, content []byte) error {
	start := time.Now()

	result, err := r.pipeline.Render(content)
	if err != nil {
		return errors.DocsError("render markdown").WithCause(fmt.Errorf("%w: %w", ErrRenderFailed, err)).
			WithContext("path", src).
			Build()
	}

	locator, err := r.resolver.Locator(out)
	if err != nil {
		return err
	}
	assets, err := r.resolver.AssetsRel(out)
	if err != nil {
		return err
	}
	title, description := markdown.PageMeta(result.FrontMatter, src)

	page, err := r.engine.Render(r.resolver.TemplatePath(), templates.PageData{
		Markdown: template.HTML(result.HTML), // #nosec G203 -- raw HTML policy belongs to the pipeline (SafeMode)
		Assets:   assets,
		Title:    title,
	})
	if err != nil {
		return errors.TemplateError("apply page template").WithCause(err).
			WithContext("path", src).
			Build()
	}

	if err := os.WriteFile(out, page, filePerm); err != nil {
		return errors.FileSystemError("write page").WithCause(fmt.Errorf("%w: %w", ErrOutputWriteFailed, err)).
			WithContext("path", out).
			Build()
	}

	r.index.Append(searchindex.Entry{Title: title, Description: description, Locator: locator})
	anchors := result.Anchors.Anchors()
	for _, a := range anchors {
		headingDesc := result.Summaries[a.Slug]
		if headingDesc == "" {
			headingDesc = description
		}
		r.index.Append(searchindex.Entry{
			Title:       a.Title,
			Description: headingDesc,
			Locator:     locator + "#" + a.Slug,
		})
	}

	r.report.Pages++
	r.report.Headings += len(anchors)
	r.recorder.ObservePageDuration(time.Since(start))
	observability.DebugContext(ctx, "Rendered page",
		logfields.File(src),
		logfields.Locator(locator),
		logfields.Headings(len(anchors)))
	return nil
}

func (r *walkRun) writeIndex(ctx context.Context) error {
	if err := r.index.WriteFile(r.report.IndexPath); err != nil {
		return err
	}
	r.report.Entries = r.index.Entries()
	r.recorder.SetIndexEntries(r.index.Len())
	observability.InfoContext(ctx, "Search index written",
		logfields.Path(r.report.IndexPath),
		logfields.Entries(r.index.Len()))
	return nil
}

func (r *walkRun) mkdir(dir string) error {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return errors.FileSystemError("create output directory").WithCause(fmt.Errorf("%w: %w", ErrOutputDirFailed, err)).
			WithContext("path", dir).
			Build()
	}
	return nil
}

// within reports whether path is root or lies below it.
func within(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
