// Package markdown renders markdown documents to HTML fragments and captures
// the metadata the search index needs: front matter and heading anchors.
//
// Every Render call owns its own FrontMatter and AnchorMap; nothing is kept
// on the Pipeline between calls.
package markdown

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"git.home.luguber.info/inful/docsite/internal/frontmatter"
)

// ErrInvalidEncoding is returned for documents that are not valid UTF-8.
var ErrInvalidEncoding = errors.New("document is not valid UTF-8")

// Options controls the goldmark engine.
type Options struct {
	// Extensions names goldmark extensions to enable. Empty means the defaults
	// (gfm, footnote, definition). Unknown names are ignored.
	Extensions []string
	// SafeMode drops raw HTML instead of passing it through.
	SafeMode bool
	// Highlight enables chroma syntax highlighting of fenced code blocks,
	// the same as naming the "highlight" extension.
	Highlight bool
}

// Result is everything one Render call produces.
type Result struct {
	HTML        []byte
	FrontMatter frontmatter.FrontMatter
	Anchors     *AnchorMap
	// Summaries maps heading slugs to the text of the first paragraph that
	// follows the heading.
	Summaries map[string]string
}

// Pipeline wraps a configured goldmark engine.
type Pipeline struct {
	engine goldmark.Markdown
}

// NewPipeline builds a Pipeline with auto heading IDs enabled.
func NewPipeline(opts Options) *Pipeline {
	rendererOptions := []renderer.Option{}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	names := opts.Extensions
	if len(names) == 0 {
		names = DefaultExtensions
	}
	if opts.Highlight {
		names = append(append([]string(nil), names...), "highlight")
	}

	engine := goldmark.New(
		goldmark.WithExtensions(collectExtensions(names)...),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return &Pipeline{engine: engine}
}

// Render converts one document. A missing or unterminated front matter block
// yields an empty FrontMatter, not an error.
func (p *Pipeline) Render(source []byte) (*Result, error) {
	if !utf8.Valid(source) {
		return nil, ErrInvalidEncoding
	}
	decoded, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), source)
	if err != nil {
		return nil, err
	}

	fm := frontmatter.FrontMatter{}
	body := decoded
	if block, rest, had, _, splitErr := frontmatter.Split(decoded); splitErr == nil && had {
		fm = frontmatter.Parse(block)
		body = rest
	}

	root := p.engine.Parser().Parse(text.NewReader(body))
	anchors := collectAnchors(root, body)

	var buf bytes.Buffer
	if err := p.engine.Renderer().Render(&buf, body, root); err != nil {
		return nil, err
	}

	summaries, err := HeadingSummaries(buf.Bytes())
	if err != nil {
		return nil, err
	}

	return &Result{
		HTML:        buf.Bytes(),
		FrontMatter: fm,
		Anchors:     anchors,
		Summaries:   summaries,
	}, nil
}

// collectAnchors records heading text to generated id in document order.
func collectAnchors(root gmast.Node, source []byte) *AnchorMap {
	anchors := NewAnchorMap()
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		heading, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		id, ok := heading.AttributeString("id")
		if !ok {
			return gmast.WalkSkipChildren, nil
		}
		slug, ok := id.([]byte)
		if !ok || len(slug) == 0 {
			return gmast.WalkSkipChildren, nil
		}
		anchors.Set(headingText(heading, source), string(slug))
		return gmast.WalkSkipChildren, nil
	})
	return anchors
}

// headingText concatenates the inline content of a heading as authored:
// text, autolink labels and raw inline HTML.
func headingText(heading *gmast.Heading, source []byte) string {
	var sb strings.Builder
	_ = gmast.Walk(heading, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() {
				sb.WriteByte(' ')
			}
		case *gmast.String:
			sb.Write(node.Value)
		case *gmast.AutoLink:
			sb.Write(node.Label(source))
		case *gmast.RawHTML:
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				sb.Write(seg.Value(source))
			}
		}
		return gmast.WalkContinue, nil
	})
	return strings.TrimSpace(sb.String())
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
	"highlight":     newHighlighter(DefaultHighlightLanguage),
}

// KnownExtension reports whether name selects a goldmark extension.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// DefaultExtensions are enabled when Options.Extensions is empty.
var DefaultExtensions = []string{"gfm", "footnote", "definition"}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		names = DefaultExtensions
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, dup := seen[key]; dup {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}
	return extenders
}
