package site

import (
	"sort"
	"strings"

	"github.com/ziadkadry99/blockdeco/internal/walker"
)

// navItem is one entry of the site navigation.
type navItem struct {
	Title  string
	Href   string // Output path relative to the site root.
	Depth  int    // Number of directories above the page.
	Active bool
}

// buildNav lists every page, index pages first within their directory, then
// by path.
func buildNav(pages []walker.FileInfo, titles map[string]string) []navItem {
	items := make([]navItem, 0, len(pages))
	for _, p := range pages {
		href := OutputPath(p.RelPath)
		items = append(items, navItem{
			Title: titles[p.RelPath],
			Href:  href,
			Depth: strings.Count(href, "/"),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		return navKey(items[i].Href) < navKey(items[j].Href)
	})
	return items
}

// navKey sorts "dir/index.html" ahead of its siblings.
func navKey(href string) string {
	dir, file := "", href
	if i := strings.LastIndex(href, "/"); i >= 0 {
		dir, file = href[:i+1], href[i+1:]
	}
	if file == "index.html" {
		return dir + "\x00"
	}
	return dir + file
}

// markActive returns a copy of nav with the entry for href marked active.
func markActive(nav []navItem, href string) []navItem {
	out := make([]navItem, len(nav))
	copy(out, nav)
	for i := range out {
		out[i].Active = out[i].Href == href
	}
	return out
}
