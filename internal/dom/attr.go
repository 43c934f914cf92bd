package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the value of attribute key and whether it is present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasAttr reports whether attribute key is present on n.
func HasAttr(n *html.Node, key string) bool {
	_, ok := Attr(n, key)
	return ok
}

// SetAttr sets attribute key to val, replacing any existing value.
func SetAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttr deletes attribute key if present.
func RemoveAttr(n *html.Node, key string) {
	out := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			continue
		}
		out = append(out, a)
	}
	n.Attr = out
}

// SetHidden toggles the boolean hidden attribute.
func SetHidden(n *html.Node, hidden bool) {
	if hidden {
		SetAttr(n, "hidden", "")
		return
	}
	RemoveAttr(n, "hidden")
}

// Hidden reports whether the hidden attribute is present.
func Hidden(n *html.Node) bool {
	return HasAttr(n, "hidden")
}

// Classes returns the whitespace-separated entries of the class attribute.
func Classes(n *html.Node) []string {
	v, _ := Attr(n, "class")
	return strings.Fields(v)
}

// HasClass reports whether n carries class c.
func HasClass(n *html.Node, c string) bool {
	for _, have := range Classes(n) {
		if have == c {
			return true
		}
	}
	return false
}

// AddClass appends each class not already present, keeping existing order.
func AddClass(n *html.Node, classes ...string) {
	have := Classes(n)
	changed := false
	for _, c := range classes {
		if c == "" || contains(have, c) {
			continue
		}
		have = append(have, c)
		changed = true
	}
	if changed {
		SetAttr(n, "class", strings.Join(have, " "))
	}
}

// Class matches elements carrying class c.
func Class(c string) Matcher {
	return func(n *html.Node) bool { return IsElement(n) && HasClass(n, c) }
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
