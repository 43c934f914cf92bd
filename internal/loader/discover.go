package loader

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Discover returns the block elements under root in document order.
func Discover(root *html.Node) []*html.Node {
	var found []*html.Node
	var visit func(container *html.Node)
	visit = func(container *html.Node) {
		for c := container.FirstChild; c != nil; c = c.NextSibling {
			switch {
			case c.Type == html.DocumentNode:
				visit(c)
			case dom.IsElement(c, "html", "body", "main", "section"):
				visit(c)
			case dom.IsElement(c, "div") && dom.IsElement(container, "main"):
				visit(c)
			case dom.IsElement(c, "div") && len(dom.Classes(c)) > 0:
				found = append(found, c)
			}
		}
	}
	visit(root)
	return found
}

// BlockName returns the lowercased first class of block.
func BlockName(block *html.Node) string {
	classes := dom.Classes(block)
	if len(classes) == 0 {
		return ""
	}
	return strings.ToLower(classes[0])
}
