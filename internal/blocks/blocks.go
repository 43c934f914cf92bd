// Package blocks holds the row/column model shared by the block decorators
// and the structural splitter that reshapes rows into named containers.
//
// A block is an element whose element children are rows; each row's element
// children are columns. Whitespace text between rows and columns is not part
// of the model.
package blocks

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Rows returns the rows of block in document order.
func Rows(block *html.Node) []*html.Node {
	return dom.Children(block)
}

// Columns returns the columns of row in document order.
func Columns(row *html.Node) []*html.Node {
	return dom.Children(row)
}

// Column returns the i-th column of cols, or nil when absent.
func Column(cols []*html.Node, i int) *html.Node {
	if i < 0 || i >= len(cols) {
		return nil
	}
	return cols[i]
}

// Label returns the trimmed text of the first column, or "" when the row
// has no columns.
func Label(cols []*html.Node) string {
	return strings.TrimSpace(dom.TextContent(Column(cols, 0)))
}

// ContentColumn returns the second column when present, else the first.
func ContentColumn(cols []*html.Node) *html.Node {
	if c := Column(cols, 1); c != nil {
		return c
	}
	return Column(cols, 0)
}
