package markdown

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// DefaultHighlightLanguage is assumed for fenced code blocks that name no language.
const DefaultHighlightLanguage = "bash"

// highlighter renders fenced code blocks through chroma. Output carries CSS
// classes (class="chroma", token classes such as "nb"); the page stylesheet
// supplies the colors.
type highlighter struct {
	defaultLanguage string
	formatter       *chromahtml.Formatter
	style           *chroma.Style
}

func newHighlighter(defaultLanguage string) *highlighter {
	return &highlighter{
		defaultLanguage: defaultLanguage,
		formatter:       chromahtml.New(chromahtml.WithClasses(true)),
		style:           styles.Get("github"),
	}
}

// Extend implements goldmark.Extender.
func (h *highlighter) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(util.Prioritized(h, 100)))
}

// RegisterFuncs implements renderer.NodeRenderer.
func (h *highlighter) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(gmast.KindFencedCodeBlock, h.renderFencedCodeBlock)
}

// lexer resolves a fence language. Unknown names get the plain-text lexer.
func (h *highlighter) lexer(language string) chroma.Lexer {
	if language == "" {
		language = h.defaultLanguage
	}
	if l := lexers.Get(language); l != nil {
		return chroma.Coalesce(l)
	}
	return chroma.Coalesce(lexers.Fallback)
}

func (h *highlighter) renderFencedCodeBlock(w util.BufWriter, source []byte, node gmast.Node, entering bool) (gmast.WalkStatus, error) {
	if !entering {
		return gmast.WalkContinue, nil
	}
	block, ok := node.(*gmast.FencedCodeBlock)
	if !ok {
		return gmast.WalkContinue, nil
	}

	var code strings.Builder
	lines := block.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		code.Write(seg.Value(source))
	}

	iterator, err := h.lexer(string(block.Language(source))).Tokenise(nil, code.String())
	if err != nil {
		return gmast.WalkStop, err
	}
	if err := h.formatter.Format(w, h.style, iterator); err != nil {
		return gmast.WalkStop, err
	}
	return gmast.WalkSkipChildren, nil
}
