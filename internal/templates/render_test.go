package templates

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestHTMLEngine_Builtin(t *testing.T) {
	out, err := NewHTMLEngine().Render("builtin:doc.html", PageData{
		Markdown: "<h1 id=\"a\">A</h1>",
		Assets:   "../assets",
		Title:    "Guide & More",
	})
	require.NoError(t, err)

	page := string(out)
	require.Contains(t, page, `<h1 id="a">A</h1>`, "markdown fragment is inserted unescaped")
	require.Contains(t, page, `href="../assets/style.css"`)
	require.Contains(t, page, "<title>Guide &amp; More</title>")
}

func TestHTMLEngine_FileTemplateIsCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(`<body data-assets="{{ .Assets }}">{{ .Markdown }}</body>`), 0o644))

	engine := NewHTMLEngine()
	out, err := engine.Render(path, PageData{Markdown: "<p>x</p>", Assets: "assets"})
	require.NoError(t, err)
	require.Equal(t, `<body data-assets="assets"><p>x</p></body>`, string(out))

	// Edits are not picked up by the same engine.
	require.NoError(t, os.WriteFile(path, []byte(`changed`), 0o644))
	again, err := engine.Render(path, PageData{Markdown: "<p>y</p>", Assets: "assets"})
	require.NoError(t, err)
	require.Equal(t, `<body data-assets="assets"><p>y</p></body>`, string(again))

	fresh, err := NewHTMLEngine().Render(path, PageData{})
	require.NoError(t, err)
	require.Equal(t, "changed", string(fresh))
}

func TestHTMLEngine_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewHTMLEngine().Render(filepath.Join(dir, "missing.html"), PageData{})
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryTemplate))

	bad := filepath.Join(dir, "bad.html")
	require.NoError(t, os.WriteFile(bad, []byte(`{{ .Markdown `), 0o644))
	_, err = NewHTMLEngine().Render(bad, PageData{})
	require.Error(t, err)

	unknownField := filepath.Join(dir, "field.html")
	require.NoError(t, os.WriteFile(unknownField, []byte(`{{ .Nope }}`), 0o644))
	_, err = NewHTMLEngine().Render(unknownField, PageData{})
	require.Error(t, err)

	_, err = NewHTMLEngine().Render("builtin:nope.html", PageData{})
	require.Error(t, err)
}
