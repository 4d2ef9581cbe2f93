// Package searchindex accumulates the flat search index written next to the
// rendered pages.
package searchindex

import (
	"bytes"
	"encoding/json"
	"os"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

// Entry is one searchable record. Locator is relative to the output root and
// may carry a #fragment naming a heading anchor.
type Entry struct {
	Title       string `json:"t"`
	Description string `json:"d"`
	Locator     string `json:"p"`
}

// Builder is an append-only, ordered list of entries. Order is never changed
// and duplicates are kept.
type Builder struct {
	entries []Entry
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{entries: make([]Entry, 0)}
}

// Append adds e at the end.
func (b *Builder) Append(e Entry) {
	b.entries = append(b.entries, e)
}

// Len returns the number of entries.
func (b *Builder) Len() int { return len(b.entries) }

// Entries returns a copy of the entries in append order.
func (b *Builder) Entries() []Entry {
	out := make([]Entry, len(b.entries))
	copy(out, b.entries)
	return out
}

// Serialize encodes the entries as a JSON array in append order.
func (b *Builder) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(b.entries); err != nil {
		return nil, errors.InternalError("encode search index").WithCause(err).Build()
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteFile serializes the index to path.
func (b *Builder) WriteFile(path string) error {
	data, err := b.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.FileSystemError("write search index").WithCause(err).
			WithContext("path", path).
			Build()
	}
	return nil
}
