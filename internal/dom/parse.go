package dom

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParseFragment parses markup as body content and returns a detached body
// element holding the parsed nodes.
func ParseFragment(r io.Reader) (*html.Node, error) {
	body := Element("body")
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, fmt.Errorf("parsing fragment: %w", err)
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	return body, nil
}

// ParseFragmentString is ParseFragment over a string.
func ParseFragmentString(s string) (*html.Node, error) {
	return ParseFragment(strings.NewReader(s))
}

// RenderChildren writes the markup of every child of n to w.
func RenderChildren(w io.Writer, n *html.Node) error {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(w, c); err != nil {
			return fmt.Errorf("rendering %s: %w", c.Data, err)
		}
	}
	return nil
}

// InnerHTML returns the rendered markup of n's children.
func InnerHTML(n *html.Node) string {
	var buf bytes.Buffer
	_ = RenderChildren(&buf, n)
	return buf.String()
}

// OuterHTML returns the rendered markup of n itself.
func OuterHTML(n *html.Node) string {
	var buf bytes.Buffer
	_ = html.Render(&buf, n)
	return buf.String()
}
