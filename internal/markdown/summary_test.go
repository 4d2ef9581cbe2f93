package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeadingSummaries(t *testing.T) {
	fragment := []byte(`<h1 id="intro">Intro</h1>
<p>Welcome to <strong>docsite</strong>,
the builder.</p>
<p>Second paragraph.</p>
<h2 id="empty">Empty</h2>
<h2 id="list">List</h2>
<ul><li><p>item</p></li></ul>
<h3>No id</h3>
<p>orphan</p>
`)

	summaries, err := HeadingSummaries(fragment)
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"intro": "Welcome to docsite, the builder.",
		"list":  "item",
	}, summaries)
}
