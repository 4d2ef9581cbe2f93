// Package templates wraps html/template as the page-layout collaborator of
// the site walker.
//
// A template is addressed by path. The identifier "builtin:doc.html" resolves
// to the layout embedded in the binary; anything else is read from disk.
// Parsed templates are cached per path for the lifetime of the engine, so a
// new engine is needed to pick up edits (watch mode builds one per rebuild).
package templates

import (
	"bytes"
	"embed"
	"html/template"
	"os"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// BuiltinPrefix marks template paths served from the embedded layouts.
const BuiltinPrefix = "builtin:"

//go:embed layouts/*.tmpl
var layouts embed.FS

// PageData is the data object passed to a page template.
type PageData struct {
	// Markdown is the rendered HTML fragment of the document.
	Markdown template.HTML
	// Assets is the assets directory relative to the page.
	Assets string
	Title  string
}

// Engine renders a page template with data.
type Engine interface {
	Render(templatePath string, data PageData) ([]byte, error)
}

// HTMLEngine implements Engine with html/template.
type HTMLEngine struct {
	cache map[string]*template.Template
}

// NewHTMLEngine returns an engine with an empty cache.
func NewHTMLEngine() *HTMLEngine {
	return &HTMLEngine{cache: map[string]*template.Template{}}
}

// Render executes the template at templatePath.
func (e *HTMLEngine) Render(templatePath string, data PageData) ([]byte, error) {
	tpl, err := e.load(templatePath)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return nil, errors.TemplateError("execute template").WithCause(err).
			WithContext("template", templatePath).
			Build()
	}
	return buf.Bytes(), nil
}

func (e *HTMLEngine) load(templatePath string) (*template.Template, error) {
	if tpl, ok := e.cache[templatePath]; ok {
		return tpl, nil
	}

	src, err := readTemplate(templatePath)
	if err != nil {
		return nil, errors.TemplateError("read template").WithCause(err).
			WithContext("template", templatePath).
			Build()
	}

	tpl, err := template.New(templatePath).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, errors.TemplateError("parse template").WithCause(err).
			WithContext("template", templatePath).
			Build()
	}
	e.cache[templatePath] = tpl
	return tpl, nil
}

func readTemplate(templatePath string) ([]byte, error) {
	if name, ok := strings.CutPrefix(templatePath, BuiltinPrefix); ok {
		return layouts.ReadFile("layouts/" + name + ".tmpl")
	}
	// #nosec G304 -- the template path comes from the operator's configuration.
	return os.ReadFile(templatePath)
}
