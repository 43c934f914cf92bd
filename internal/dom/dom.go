// Package dom provides small tree helpers over golang.org/x/net/html nodes.
//
// Nodes are always moved by reference: a node appended somewhere is first
// detached from its current parent, so attached subtrees keep their identity.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Matcher reports whether a node satisfies some condition.
type Matcher func(n *html.Node) bool

// Element creates a detached element node with the given tag and attributes.
func Element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

// Div creates a detached div carrying the given class (none when empty).
func Div(class string) *html.Node {
	n := Element("div")
	if class != "" {
		SetAttr(n, "class", class)
	}
	return n
}

// Text creates a detached text node.
func Text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// IsElement reports whether n is an element, optionally restricted to tags.
func IsElement(n *html.Node, tags ...string) bool {
	if n == nil || n.Type != html.ElementNode {
		return false
	}
	if len(tags) == 0 {
		return true
	}
	for _, t := range tags {
		if n.Data == t {
			return true
		}
	}
	return false
}

// Tag matches elements with any of the given tag names.
func Tag(tags ...string) Matcher {
	return func(n *html.Node) bool { return IsElement(n, tags...) }
}

// AttrEquals matches elements whose attribute key has exactly value.
func AttrEquals(key, value string) Matcher {
	return func(n *html.Node) bool {
		if !IsElement(n) {
			return false
		}
		v, ok := Attr(n, key)
		return ok && v == value
	}
}

// Children returns the element children of n in document order.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// ChildNodes returns every child of n, text and comments included.
func ChildNodes(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// TextContent concatenates the text of all descendant text nodes.
func TextContent(n *html.Node) string {
	if n == nil {
		return ""
	}
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		for ; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode, html.DocumentNode:
				walk(c.FirstChild)
			}
		}
	}
	walk(n.FirstChild)
	return b.String()
}

// SetText replaces all children of n with a single text node.
func SetText(n *html.Node, s string) {
	Clear(n)
	if s != "" {
		n.AppendChild(Text(s))
	}
}

// Remove detaches n from its parent. Detached nodes are left alone.
func Remove(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Clear removes every child of n.
func Clear(n *html.Node) {
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
}

// Append moves each node to the end of parent's children, in order.
func Append(parent *html.Node, nodes ...*html.Node) {
	for _, c := range nodes {
		if c == nil {
			continue
		}
		Remove(c)
		parent.AppendChild(c)
	}
}

// Prepend moves child to the front of parent's children.
func Prepend(parent, child *html.Node) {
	Remove(child)
	if parent.FirstChild == nil {
		parent.AppendChild(child)
		return
	}
	parent.InsertBefore(child, parent.FirstChild)
}

// MoveChildren moves every child node of src to the end of dst.
func MoveChildren(dst, src *html.Node) {
	if src == nil {
		return
	}
	Append(dst, ChildNodes(src)...)
}

// QueryFirst returns the first descendant of root (root excluded) in
// document order that satisfies m.
func QueryFirst(root *html.Node, m Matcher) *html.Node {
	if root == nil {
		return nil
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if m(c) {
			return c
		}
		if found := QueryFirst(c, m); found != nil {
			return found
		}
	}
	return nil
}

// QueryAll returns every descendant of root (root excluded) that satisfies m.
func QueryAll(root *html.Node, m Matcher) []*html.Node {
	var out []*html.Node
	if root == nil {
		return out
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if m(c) {
			out = append(out, c)
		}
		out = append(out, QueryAll(c, m)...)
	}
	return out
}

// Closest walks from n up through its ancestors and returns the first node
// satisfying m. The walk stops before leaving stop (stop itself is tested).
func Closest(n, stop *html.Node, m Matcher) *html.Node {
	for c := n; c != nil; c = c.Parent {
		if m(c) {
			return c
		}
		if c == stop {
			return nil
		}
	}
	return nil
}

// Contains reports whether n is root or one of its descendants.
func Contains(root, n *html.Node) bool {
	for c := n; c != nil; c = c.Parent {
		if c == root {
			return true
		}
	}
	return false
}
