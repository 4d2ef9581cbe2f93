package markdown

// Anchor pairs a heading's text with its slug.
type Anchor struct {
	Title string
	Slug  string
}

// AnchorMap maps heading text to slug, preserving the order in which titles
// were first seen. Setting an existing title replaces its slug but keeps its
// position, so two headings with identical text collapse into one entry that
// carries the later slug.
type AnchorMap struct {
	order []string
	slugs map[string]string
}

// NewAnchorMap returns an empty map.
func NewAnchorMap() *AnchorMap {
	return &AnchorMap{slugs: map[string]string{}}
}

// Set records slug for title.
func (m *AnchorMap) Set(title, slug string) {
	if _, exists := m.slugs[title]; !exists {
		m.order = append(m.order, title)
	}
	m.slugs[title] = slug
}

// Get returns the slug recorded for title.
func (m *AnchorMap) Get(title string) (string, bool) {
	slug, ok := m.slugs[title]
	return slug, ok
}

// Len returns the number of distinct titles.
func (m *AnchorMap) Len() int {
	return len(m.order)
}

// Anchors returns the entries in first-seen order.
func (m *AnchorMap) Anchors() []Anchor {
	out := make([]Anchor, 0, len(m.order))
	for _, title := range m.order {
		out = append(out, Anchor{Title: title, Slug: m.slugs[title]})
	}
	return out
}
