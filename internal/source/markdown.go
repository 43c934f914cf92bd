// Package source turns authored markdown into the row/column block markup
// the decorators consume.
//
// Authors write a block as a table whose first header cell names it:
//
//	| Tabs     |                  |
//	|----------|------------------|
//	| Overview | Some *content*   |
//	| Details  | More content     |
//
// becomes
//
//	<div class="tabs">
//	  <div><div>Overview</div><div>Some <em>content</em></div></div>
//	  <div><div>Details</div><div>More content</div></div>
//	</div>
//
// A parenthesised suffix in the header adds variant classes:
// "Hero (dark, wide)" yields class="hero dark wide".
package source

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/blocks"
	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// DefaultHighlightStyle is the chroma style used for fenced code.
const DefaultHighlightStyle = "github"

// Options configures a Renderer.
type Options struct {
	// Blocks lists the block names whose tables are converted to block
	// markup. Tables with any other header stay tables.
	Blocks []string
	// HighlightStyle is the chroma style for fenced code blocks.
	HighlightStyle string
}

// Renderer converts markdown into decorated-ready HTML fragments.
type Renderer struct {
	md     goldmark.Markdown
	blocks map[string]bool
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	style := opts.HighlightStyle
	if style == "" {
		style = DefaultHighlightStyle
	}
	known := make(map[string]bool, len(opts.Blocks))
	for _, name := range opts.Blocks {
		known[blocks.Slug(name)] = true
	}
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle(style),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				gmhtml.WithUnsafe(),
			),
		),
		blocks: known,
	}
}

// Render converts markdown source into an HTML body fragment with block
// tables rewritten, bare images wrapped in picture elements, and links to
// .md pages pointed at their .html output.
func (r *Renderer) Render(src []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return nil, fmt.Errorf("converting markdown: %w", err)
	}
	body, err := dom.ParseFragment(&buf)
	if err != nil {
		return nil, err
	}

	r.Rewrite(body)

	var out bytes.Buffer
	if err := dom.RenderChildren(&out, body); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// Rewrite applies the block-table, picture and link rewrites to an already
// parsed fragment.
func (r *Renderer) Rewrite(root *html.Node) {
	for _, table := range dom.QueryAll(root, dom.Tag("table")) {
		r.convertTable(table)
	}
	WrapImages(root)
	RewriteLinks(root)
}

// convertTable replaces table with block markup when its first header cell
// names a known block.
func (r *Renderer) convertTable(table *html.Node) {
	header := dom.QueryFirst(table, dom.Tag("th"))
	if header == nil {
		return
	}
	name, variants := ParseBlockHeader(dom.TextContent(header))
	if !r.blocks[name] {
		return
	}

	block := dom.Div(name)
	dom.AddClass(block, variants...)
	for _, tr := range dom.QueryAll(table, dom.Tag("tr")) {
		cells := dom.Children(tr)
		if len(cells) == 0 || dom.IsElement(cells[0], "th") {
			continue
		}
		row := dom.Div("")
		for _, td := range cells {
			col := dom.Div("")
			dom.MoveChildren(col, td)
			row.AppendChild(col)
		}
		block.AppendChild(row)
	}

	table.Parent.InsertBefore(block, table)
	dom.Remove(table)
}

// ParseBlockHeader splits a header such as "Hero (dark, wide)" into the
// block name and its variant classes.
func ParseBlockHeader(text string) (name string, variants []string) {
	text = strings.TrimSpace(text)
	if open := strings.Index(text, "("); open >= 0 {
		inner := text[open+1:]
		if end := strings.LastIndex(inner, ")"); end >= 0 {
			inner = inner[:end]
		}
		for _, v := range strings.Split(inner, ",") {
			if slug := blocks.Slug(v); slug != "" {
				variants = append(variants, slug)
			}
		}
		text = text[:open]
	}
	return blocks.Slug(text), variants
}

// WrapImages puts every img that is not already inside a picture into its
// own picture element.
func WrapImages(root *html.Node) {
	for _, img := range dom.QueryAll(root, dom.Tag("img")) {
		if dom.IsElement(img.Parent, "picture") {
			continue
		}
		picture := dom.Element("picture")
		img.Parent.InsertBefore(picture, img)
		dom.Append(picture, img)
	}
}

// RewriteLinks points relative links to .md files at the matching .html
// page, keeping any fragment.
func RewriteLinks(root *html.Node) {
	for _, a := range dom.QueryAll(root, dom.Tag("a")) {
		href, ok := dom.Attr(a, "href")
		if !ok || strings.Contains(href, "://") {
			continue
		}
		path, frag, hasFrag := strings.Cut(href, "#")
		if !strings.HasSuffix(path, ".md") {
			continue
		}
		path = strings.TrimSuffix(path, ".md") + ".html"
		if hasFrag {
			path += "#" + frag
		}
		dom.SetAttr(a, "href", path)
	}
}

// Title pulls the first "# " heading from markdown, or falls back to the
// file name without extension.
func Title(content []byte, relPath string) string {
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	base := filepath.Base(relPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
