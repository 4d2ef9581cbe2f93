package markdown

import (
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
)

// DefaultDescriptionPrefix prefixes the synthesized page description.
const DefaultDescriptionPrefix = "from page: "

var titleSanitizer = strings.NewReplacer(
	`"`, "", "'", "", "`", "",
	"[", "", "]", "",
	"(", "", ")", "",
	"{", "", "}", "",
	"<", "", ">", "",
)

// SanitizeTitle strips quote and bracket characters.
func SanitizeTitle(title string) string {
	return strings.TrimSpace(titleSanitizer.Replace(title))
}

// PageMeta derives the page-level title and description for a document.
// Front matter wins over the file name unless nothing of it survives
// sanitizing; the description falls back to "from page: <title>".
func PageMeta(fm frontmatter.FrontMatter, filename string) (title, description string) {
	title, _ = fm.Title()
	title = SanitizeTitle(title)
	if title == "" {
		base := filepath.Base(filename)
		title = SanitizeTitle(strings.TrimSuffix(base, filepath.Ext(base)))
	}

	description, ok := fm.Description()
	if !ok {
		description = DefaultDescriptionPrefix + title
	}
	return title, description
}
