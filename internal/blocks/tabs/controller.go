package tabs

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Controller owns the tab and panel nodes of one decorated block and keeps
// exactly one pair selected. Selection state lives only in the nodes'
// attributes, so rendering the tree at any point captures it.
//
// A Controller is not safe for concurrent use; events are handled one at a
// time, each to completion.
type Controller struct {
	tablist    *html.Node
	panelStack *html.Node
	tabs       []*html.Node
	panels     []*html.Node
	focused    int
}

// Attach rebuilds a controller over a block that was decorated earlier,
// for example after the markup was rendered and parsed again. Only the
// block's own tab strip and panel stack are used, so tabs blocks nested in a
// panel keep their own pairs. It returns nil when the block carries no tab
// strip or no tabs.
func Attach(block *html.Node) *Controller {
	tablist := firstChild(block, dom.AttrEquals("role", RoleTablist))
	if tablist == nil {
		return nil
	}
	c := &Controller{tablist: tablist, focused: -1}
	c.tabs = childrenMatching(tablist, dom.AttrEquals("role", RoleTab))
	if stack := firstChild(block, dom.Class(ClassPanels)); stack != nil {
		c.panelStack = stack
		c.panels = childrenMatching(stack, dom.AttrEquals("role", RoleTabpanel))
	}
	if len(c.panels) < len(c.tabs) {
		c.tabs = c.tabs[:len(c.panels)]
	}
	c.panels = c.panels[:len(c.tabs)]
	if len(c.tabs) == 0 {
		return nil
	}
	return c
}

func firstChild(n *html.Node, m dom.Matcher) *html.Node {
	for _, c := range dom.Children(n) {
		if m(c) {
			return c
		}
	}
	return nil
}

func childrenMatching(n *html.Node, m dom.Matcher) []*html.Node {
	var out []*html.Node
	for _, c := range dom.Children(n) {
		if m(c) {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of tab/panel pairs.
func (c *Controller) Len() int { return len(c.tabs) }

// Tab returns the i-th tab control, or nil when out of range.
func (c *Controller) Tab(i int) *html.Node {
	if i < 0 || i >= len(c.tabs) {
		return nil
	}
	return c.tabs[i]
}

// Panel returns the i-th panel, or nil when out of range.
func (c *Controller) Panel(i int) *html.Node {
	if i < 0 || i >= len(c.panels) {
		return nil
	}
	return c.panels[i]
}

// Tablist returns the tab strip container.
func (c *Controller) Tablist() *html.Node { return c.tablist }

// Selected returns the index of the selected tab, or -1 if none is marked.
func (c *Controller) Selected() int {
	for i, tab := range c.tabs {
		if v, _ := dom.Attr(tab, "aria-selected"); v == "true" {
			return i
		}
	}
	return -1
}

// Focused returns the index of the tab that last received focus, or -1.
func (c *Controller) Focused() int { return c.focused }

// Focus moves focus to tab k. Out-of-range indexes are ignored.
func (c *Controller) Focus(k int) {
	if k >= 0 && k < len(c.tabs) {
		c.focused = k
	}
}

// Activate selects tab k and reveals its panel, deselecting every other
// pair. It reports false and changes nothing when k is out of range.
func (c *Controller) Activate(k int) bool {
	if k < 0 || k >= len(c.tabs) {
		return false
	}
	c.apply(k)
	return true
}

func (c *Controller) apply(k int) {
	for _, tab := range c.tabs {
		dom.SetAttr(tab, "aria-selected", "false")
		dom.SetAttr(tab, "tabindex", "-1")
	}
	for _, panel := range c.panels {
		dom.SetHidden(panel, true)
	}
	dom.SetAttr(c.tabs[k], "aria-selected", "true")
	dom.SetAttr(c.tabs[k], "tabindex", "0")
	dom.SetHidden(c.panels[k], false)
}

func (c *Controller) indexOf(n *html.Node) int {
	for i, tab := range c.tabs {
		if tab == n {
			return i
		}
	}
	return -1
}
