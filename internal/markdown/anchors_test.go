package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnchorMap_OrderAndOverwrite(t *testing.T) {
	m := NewAnchorMap()
	m.Set("Intro", "intro")
	m.Set("Usage", "usage")
	m.Set("Intro", "intro-1")

	require.Equal(t, 2, m.Len())
	require.Equal(t, []Anchor{
		{Title: "Intro", Slug: "intro-1"},
		{Title: "Usage", Slug: "usage"},
	}, m.Anchors())

	slug, ok := m.Get("Usage")
	require.True(t, ok)
	require.Equal(t, "usage", slug)

	_, ok = m.Get("Missing")
	require.False(t, ok)
}

func TestAnchorMap_EmptyAnchorsIsNonNil(t *testing.T) {
	require.NotNil(t, NewAnchorMap().Anchors())
}
