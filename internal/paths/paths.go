// Package paths maps input-tree locations to output-tree locations and to
// index locators. It performs no I/O.
package paths

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Fixed names used by the resolver.
const (
	MarkdownExt     = ".md"
	OutputExt       = ".html"
	IndexFile       = "indexes.json"
	DefaultReadme   = "README.md"
	DefaultAssets   = "assets"
	ReadmeOutput    = "000-README" + OutputExt
	BuiltinTemplate = "builtin:doc.html"
)

// Layout describes the roots a Resolver works against. InputRoot and
// OutputRoot are expected to be absolute.
type Layout struct {
	InputRoot  string
	OutputRoot string
	// Namespace is an optional subdirectory of OutputRoot that receives the
	// pages and the index. Locators stay relative to OutputRoot.
	Namespace string
	AssetsDir string
	Readme    string
	Template  string
}

// Resolver computes output paths and locators.
type Resolver struct {
	layout   Layout
	siteRoot string
}

// New returns a Resolver for layout, filling defaults for empty fields.
func New(layout Layout) *Resolver {
	if layout.AssetsDir == "" {
		layout.AssetsDir = DefaultAssets
	}
	if layout.Readme == "" {
		layout.Readme = DefaultReadme
	}
	layout.InputRoot = filepath.Clean(layout.InputRoot)
	layout.OutputRoot = filepath.Clean(layout.OutputRoot)

	return &Resolver{
		layout:   layout,
		siteRoot: filepath.Join(layout.OutputRoot, layout.Namespace),
	}
}

// Layout returns the effective layout.
func (r *Resolver) Layout() Layout { return r.layout }

// InputRoot returns the input tree root.
func (r *Resolver) InputRoot() string { return r.layout.InputRoot }

// SiteRoot returns the directory pages are written under.
func (r *Resolver) SiteRoot() string { return r.siteRoot }

// IsMarkdown reports whether name carries the markdown extension, ignoring case.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), MarkdownExt)
}

// OutputDir mirrors an input directory under the site root.
func (r *Resolver) OutputDir(srcDir string) (string, error) {
	rel, err := r.relInput(srcDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(r.siteRoot, rel), nil
}

// OutputPath mirrors src under the site root with the output extension.
func (r *Resolver) OutputPath(src string) (string, error) {
	dir, err := r.OutputDir(filepath.Dir(src))
	if err != nil {
		return "", err
	}
	base := filepath.Base(src)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+OutputExt), nil
}

// Locator expresses out relative to the output root with forward slashes.
func (r *Resolver) Locator(out string) (string, error) {
	rel, err := filepath.Rel(r.layout.OutputRoot, out)
	if err != nil {
		return "", pathError(err, "compute locator", out)
	}
	return filepath.ToSlash(rel), nil
}

// AssetsRel returns the assets directory relative to the directory of out.
func (r *Resolver) AssetsRel(out string) (string, error) {
	assets := filepath.Join(r.layout.OutputRoot, r.layout.AssetsDir)
	rel, err := filepath.Rel(filepath.Dir(out), assets)
	if err != nil {
		return "", pathError(err, "compute assets path", out)
	}
	return filepath.ToSlash(rel), nil
}

// ReadmePath returns the README input path.
func (r *Resolver) ReadmePath() string {
	return filepath.Join(r.layout.InputRoot, r.layout.Readme)
}

// ReadmeOutputPath returns the sort-first output path of the README page.
func (r *Resolver) ReadmeOutputPath() string {
	return filepath.Join(r.siteRoot, ReadmeOutput)
}

// IndexPath returns where the search index is written.
func (r *Resolver) IndexPath() string {
	return filepath.Join(r.siteRoot, IndexFile)
}

// TemplatePath returns the page template identifier.
func (r *Resolver) TemplatePath() string {
	if r.layout.Template == "" {
		return BuiltinTemplate
	}
	return r.layout.Template
}

func (r *Resolver) relInput(path string) (string, error) {
	rel, err := filepath.Rel(r.layout.InputRoot, path)
	if err != nil {
		return "", pathError(err, "path outside input root", path)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", errors.ValidationError("path outside input root").WithContext("path", path).Build()
	}
	return rel, nil
}

func pathError(err error, msg, path string) error {
	return errors.FileSystemError(msg).WithCause(err).WithContext("path", path).Build()
}
