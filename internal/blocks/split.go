package blocks

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

var (
	headingMatcher = dom.Tag("h1", "h2", "h3")
	imageMatcher   = dom.Tag("picture")
)

// HasHeading reports whether n contains an h1, h2 or h3 descendant.
func HasHeading(n *html.Node) bool {
	return dom.QueryFirst(n, headingMatcher) != nil
}

// HasImage reports whether n contains a picture descendant.
func HasImage(n *html.Node) bool {
	return dom.QueryFirst(n, imageMatcher) != nil
}

// IsImageOnly reports whether row embeds at least one image and carries no
// non-whitespace text.
func IsImageOnly(row *html.Node) bool {
	return HasImage(row) && strings.TrimSpace(dom.TextContent(row)) == ""
}

// SplitColumns detects the split layout: a block with exactly one row of
// exactly two columns, one holding a heading and the other an image. The
// heading-first orientation is tried before the image-first one.
func SplitColumns(block *html.Node) (content, images *html.Node, ok bool) {
	rows := Rows(block)
	if len(rows) != 1 {
		return nil, nil, false
	}
	cols := Columns(rows[0])
	if len(cols) != 2 {
		return nil, nil, false
	}
	if HasHeading(cols[0]) && HasImage(cols[1]) {
		return cols[0], cols[1], true
	}
	if HasHeading(cols[1]) && HasImage(cols[0]) {
		return cols[1], cols[0], true
	}
	return nil, nil, false
}

// Partition reshapes block into an image container and a content container.
// The child nodes of every image-only row move into the image container and
// those of every other row into the content container, both in document
// order, and the rows are removed. The image container is prepended only
// when it ended up with element children; the content container is always
// appended. It returns the containers whether or not the image one was
// inserted.
func Partition(block *html.Node, imageClass, contentClass string) (images, content *html.Node) {
	images = dom.Div(imageClass)
	content = dom.Div(contentClass)

	for _, row := range Rows(block) {
		if IsImageOnly(row) {
			dom.MoveChildren(images, row)
		} else {
			dom.MoveChildren(content, row)
		}
		dom.Remove(row)
	}

	if len(dom.Children(images)) > 0 {
		dom.Prepend(block, images)
	}
	dom.Append(block, content)
	return images, content
}

// ExtractHeader removes the first row of block and returns a container with
// the given class holding that row's child nodes, along with the remaining
// rows. It returns nil when block has no rows.
func ExtractHeader(block *html.Node, class string) (header *html.Node, rest []*html.Node) {
	rows := Rows(block)
	if len(rows) == 0 {
		return nil, nil
	}
	header = dom.Div(class)
	dom.MoveChildren(header, rows[0])
	dom.Remove(rows[0])
	return header, rows[1:]
}
