// Package hero decorates hero banner blocks in one of two layouts: a split
// layout with text and images side by side, or a full-bleed layout with the
// image rows lifted into a background container.
package hero

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/blocks"
	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Name is the block name the loader registers this decorator under.
const Name = "hero"

// CSS classes of the decorated markup.
const (
	ClassSplit      = "hero-split"
	ClassContent    = "hero-content"
	ClassImages     = "hero-images"
	ClassBackground = "hero-bg"
)

// Layout identifies which layout Decorate applied.
type Layout int

const (
	LayoutFullBleed Layout = iota
	LayoutSplit
)

func (l Layout) String() string {
	if l == LayoutSplit {
		return "split"
	}
	return "full-bleed"
}

// Decorate rewrites block in place and reports the layout it chose.
//
// The full-bleed path has no empty-block guard: a block without rows still
// gains an empty hero-content container.
func Decorate(block *html.Node) Layout {
	if content, images, ok := blocks.SplitColumns(block); ok {
		dom.AddClass(block, ClassSplit)
		dom.AddClass(content, ClassContent)
		dom.AddClass(images, ClassImages)
		return LayoutSplit
	}

	blocks.Partition(block, ClassBackground, ClassContent)
	return LayoutFullBleed
}
