package hero

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

func parseBlock(t *testing.T, markup string) *html.Node {
	t.Helper()
	body, err := dom.ParseFragmentString(markup)
	require.NoError(t, err)
	return dom.Children(body)[0]
}

func TestDecorateSplit(t *testing.T) {
	block := parseBlock(t, `<div class="hero"><div>`+
		`<div><h1>Welcome</h1><p>Intro</p></div>`+
		`<div><picture><img src="hero.png"></picture></div>`+
		`</div></div>`)

	layout := Decorate(block)

	assert.Equal(t, LayoutSplit, layout)
	assert.Equal(t, []string{"hero", ClassSplit}, dom.Classes(block))

	rows := dom.Children(block)
	require.Len(t, rows, 1, "split layout keeps the row")
	cols := dom.Children(rows[0])
	require.Len(t, cols, 2)
	assert.True(t, dom.HasClass(cols[0], ClassContent))
	assert.True(t, dom.HasClass(cols[1], ClassImages))
}

func TestDecorateSplitReversed(t *testing.T) {
	block := parseBlock(t, `<div class="hero"><div>`+
		`<div><picture><img src="hero.png"></picture></div>`+
		`<div><h2>Welcome</h2></div>`+
		`</div></div>`)

	assert.Equal(t, LayoutSplit, Decorate(block))

	cols := dom.Children(dom.Children(block)[0])
	assert.True(t, dom.HasClass(cols[0], ClassImages))
	assert.True(t, dom.HasClass(cols[1], ClassContent))
}

func TestDecorateFullBleed(t *testing.T) {
	block := parseBlock(t, `<div class="hero">`+
		`<div><div><picture><img src="bg.png"></picture></div></div>`+
		`<div><div><p>Hello there</p></div></div>`+
		`</div>`)

	layout := Decorate(block)

	assert.Equal(t, LayoutFullBleed, layout)
	assert.Equal(t, "full-bleed", layout.String())
	assert.False(t, dom.HasClass(block, ClassSplit))

	kids := dom.Children(block)
	require.Len(t, kids, 2)
	assert.Equal(t, []string{ClassBackground}, dom.Classes(kids[0]))
	assert.Equal(t, []string{ClassContent}, dom.Classes(kids[1]))
	assert.NotNil(t, dom.QueryFirst(kids[0], dom.Tag("picture")))
	assert.Equal(t, "Hello there", dom.TextContent(kids[1]))
}

func TestDecorateFullBleedWithoutImagesOmitsBackground(t *testing.T) {
	block := parseBlock(t, `<div class="hero"><div><div><h1>Title</h1></div></div></div>`)

	Decorate(block)

	kids := dom.Children(block)
	require.Len(t, kids, 1)
	assert.True(t, dom.HasClass(kids[0], ClassContent))
	assert.Nil(t, dom.QueryFirst(block, dom.Class(ClassBackground)))
}

func TestDecorateSingleRowWithoutSplitShape(t *testing.T) {
	// One row, two columns, but no heading: falls back to full bleed.
	block := parseBlock(t, `<div class="hero"><div>`+
		`<div><p>Just text</p></div>`+
		`<div><picture><img src="a.png"></picture></div>`+
		`</div></div>`)

	assert.Equal(t, LayoutFullBleed, Decorate(block))

	kids := dom.Children(block)
	require.Len(t, kids, 1, "mixed row is content, not background")
	assert.True(t, dom.HasClass(kids[0], ClassContent))
	assert.Len(t, dom.Children(kids[0]), 2)
}

func TestDecorateEmptyBlockAddsEmptyContent(t *testing.T) {
	block := parseBlock(t, `<div class="hero"></div>`)

	Decorate(block)

	kids := dom.Children(block)
	require.Len(t, kids, 1)
	assert.True(t, dom.HasClass(kids[0], ClassContent))
	assert.Nil(t, kids[0].FirstChild)
}
