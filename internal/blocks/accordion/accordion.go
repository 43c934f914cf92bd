// Package accordion decorates accordion blocks: a header row followed by
// question/answer rows, rendered as native details/summary disclosures.
package accordion

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/blocks"
	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Name is the block name the loader registers this decorator under.
const Name = "accordion"

// CSS classes of the decorated markup.
const (
	ClassHeader = "accordion-header"
	ClassItems  = "accordion-items"
	ClassAnswer = "accordion-answer"
)

// Decorate rewrites block in place. The first row always becomes the header;
// every further row becomes one closed disclosure in row order. A block with
// no rows is left untouched.
func Decorate(block *html.Node) {
	header, rows := blocks.ExtractHeader(block, ClassHeader)
	if header == nil {
		return
	}

	items := dom.Div(ClassItems)
	for _, row := range rows {
		items.AppendChild(disclosure(blocks.Columns(row)))
		dom.Remove(row)
	}

	dom.Clear(block)
	dom.Append(block, header, items)
}

// disclosure builds one details element. The answer body is only filled when
// the row had a separate answer column; a single-column row keeps its text
// as the summary and gets an empty body.
func disclosure(cols []*html.Node) *html.Node {
	details := dom.Element("details")

	summary := dom.Element("summary")
	dom.SetText(summary, blocks.Label(cols))

	answer := dom.Div(ClassAnswer)
	if content := blocks.ContentColumn(cols); len(cols) > 1 && content != nil {
		dom.MoveChildren(answer, content)
	}

	dom.Append(details, summary, answer)
	return details
}
