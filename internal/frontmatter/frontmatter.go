// Package frontmatter splits the leading metadata block off a markdown
// document and parses it into key/value pairs.
package frontmatter

import (
	"bytes"
	"errors"
	"strings"
)

// Style captures the newline shape of a document.
type Style struct {
	Newline            string
	HasTrailingNewline bool
}

// FrontMatter maps lowercase keys to trimmed string values.
type FrontMatter map[string]string

// Recognized keys.
const (
	KeyTitle       = "title"
	KeyDescription = "description"
)

// Title returns the trimmed title value, if any.
func (fm FrontMatter) Title() (string, bool) {
	return fm.lookup(KeyTitle)
}

// Description returns the trimmed description value, if any.
func (fm FrontMatter) Description() (string, bool) {
	return fm.lookup(KeyDescription)
}

func (fm FrontMatter) lookup(key string) (string, bool) {
	v, ok := fm[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// ErrMissingClosingDelimiter indicates the document started with a
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("frontmatter start delimiter found but closing delimiter is missing")

// Split separates `---` delimited frontmatter from the Markdown body.
//
// If the document does not start with a delimiter, had is false and body is
// the full input. A closing delimiter may be followed by a newline or by the
// end of the document.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	frontmatterStart := len(open)
	rest := content[frontmatterStart:]
	if bytes.HasPrefix(rest, open) {
		return []byte{}, rest[len(open):], true, style, nil
	}
	if bytes.Equal(rest, []byte("---")) {
		return []byte{}, []byte{}, true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	if idx := bytes.Index(rest, closeSeq); idx >= 0 {
		frontmatterEnd := frontmatterStart + idx + len(nl)
		bodyStart := frontmatterStart + idx + len(closeSeq)
		return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, style, nil
	}

	closeAtEOF := []byte(nl + "---")
	if bytes.HasSuffix(rest, closeAtEOF) {
		end := len(content) - len("---")
		return content[frontmatterStart:end], []byte{}, true, style, nil
	}

	return nil, nil, false, style, ErrMissingClosingDelimiter
}

// Parse turns a raw frontmatter block into key/value pairs.
//
// Each line is split on its first colon. The key is trimmed and lowercased,
// the value trimmed. Lines without a colon or with an empty key are ignored.
// A repeated key keeps the last value.
func Parse(block []byte) FrontMatter {
	fm := FrontMatter{}
	for _, line := range strings.Split(string(block), "\n") {
		parts := strings.SplitN(line, ":", 2)
		if len(parts) < 2 {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		if key == "" {
			continue
		}
		fm[key] = strings.TrimSpace(parts[1])
	}
	return fm
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			break
		}
	}

	return Style{
		Newline:            newline,
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}
}
