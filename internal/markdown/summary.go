package markdown

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HeadingSummaries scans a rendered HTML fragment and returns, for every
// heading with an id, the text of the first <p> that follows it before the
// next heading. Headings without a following paragraph are absent.
func HeadingSummaries(fragment []byte) (map[string]string, error) {
	parent := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(bytes.NewReader(fragment), parent)
	if err != nil {
		return nil, err
	}

	summaries := map[string]string{}
	current := ""

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if isHeading(n.DataAtom) {
				current = getAttr(n, "id")
				return
			}
			if n.DataAtom == atom.P && current != "" {
				if summary := extractText(n); summary != "" {
					summaries[current] = summary
				}
				current = ""
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}

	for _, n := range nodes {
		visit(n)
	}
	return summaries, nil
}

func isHeading(a atom.Atom) bool {
	switch a {
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		return true
	}
	return false
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

// extractText returns the whitespace-collapsed text content of n.
func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
