package searchindex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func TestSerialize_EmptyIsArray(t *testing.T) {
	data, err := NewBuilder().Serialize()
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestSerialize_AppendOrderAndShortKeys(t *testing.T) {
	b := NewBuilder()
	b.Append(Entry{Title: "README", Description: "from page: README", Locator: "000-README.html"})
	b.Append(Entry{Title: "Setup", Description: "Install <it>", Locator: "guide.html#setup"})
	b.Append(Entry{Title: "Setup", Description: "again", Locator: "other.html#setup"})

	data, err := b.Serialize()
	require.NoError(t, err)
	require.Equal(t,
		`[{"t":"README","d":"from page: README","p":"000-README.html"},`+
			`{"t":"Setup","d":"Install <it>","p":"guide.html#setup"},`+
			`{"t":"Setup","d":"again","p":"other.html#setup"}]`,
		string(data))
	require.Equal(t, 3, b.Len())
}

func TestEntries_ReturnsCopy(t *testing.T) {
	b := NewBuilder()
	b.Append(Entry{Title: "a"})

	entries := b.Entries()
	entries[0].Title = "changed"
	require.Equal(t, "a", b.Entries()[0].Title)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder()
	b.Append(Entry{Title: "x", Description: "y", Locator: "z.html"})

	path := filepath.Join(dir, "indexes.json")
	require.NoError(t, b.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, `[{"t":"x","d":"y","p":"z.html"}]`, string(data))
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	err := NewBuilder().WriteFile(filepath.Join(t.TempDir(), "missing", "indexes.json"))
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryFileSystem))
}
