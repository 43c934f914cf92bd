// Package tabs decorates tab blocks into an ARIA tab strip plus a panel
// stack, and drives tab selection through a per-block Controller.
//
// Each row becomes one tab/panel pair. The first column is the tab label
// and the second column (or the first, when alone) is the panel content.
// Tabs and panels are linked through ids derived from the label:
//
//	<div class="tabs-list" role="tablist">
//	  <button class="tabs-tab" role="tab" id="tab-intro" aria-controls="panel-intro" ...>Intro</button>
//	</div>
//	<div class="tabs-panels">
//	  <div class="tabs-panel" role="tabpanel" id="panel-intro" aria-labelledby="tab-intro">...</div>
//	</div>
package tabs

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/blocks"
	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Name is the block name the loader registers this decorator under.
const Name = "tabs"

// CSS classes and ARIA roles of the decorated markup.
const (
	ClassList   = "tabs-list"
	ClassPanels = "tabs-panels"
	ClassTab    = "tabs-tab"
	ClassPanel  = "tabs-panel"

	RoleTablist  = "tablist"
	RoleTab      = "tab"
	RoleTabpanel = "tabpanel"
)

// TabID and PanelID return the ids linking a tab to its panel.
func TabID(slug string) string   { return "tab-" + slug }
func PanelID(slug string) string { return "panel-" + slug }

// Decorate rewrites block in place and returns the controller bound to the
// new tab strip. A block with no rows is left untouched and nil is returned.
func Decorate(block *html.Node) *Controller {
	rows := blocks.Rows(block)
	if len(rows) == 0 {
		return nil
	}

	tablist := dom.Div(ClassList)
	dom.SetAttr(tablist, "role", RoleTablist)
	panels := dom.Div(ClassPanels)

	c := &Controller{tablist: tablist, panelStack: panels, focused: -1}
	for i, row := range rows {
		cols := blocks.Columns(row)
		label := blocks.Label(cols)
		if label == "" {
			label = fmt.Sprintf("Tab %d", i+1)
		}
		slug := blocks.Slug(label)

		tab := newTab(label, slug)
		panel := newPanel(slug)
		dom.MoveChildren(panel, blocks.ContentColumn(cols))

		tablist.AppendChild(tab)
		panels.AppendChild(panel)
		c.tabs = append(c.tabs, tab)
		c.panels = append(c.panels, panel)
		dom.Remove(row)
	}
	c.apply(0)

	dom.Clear(block)
	dom.Append(block, tablist, panels)
	return c
}

func newTab(label, slug string) *html.Node {
	tab := dom.Element("button")
	dom.SetAttr(tab, "class", ClassTab)
	dom.SetAttr(tab, "role", RoleTab)
	dom.SetAttr(tab, "aria-selected", "false")
	dom.SetAttr(tab, "aria-controls", PanelID(slug))
	dom.SetAttr(tab, "id", TabID(slug))
	dom.SetAttr(tab, "tabindex", "-1")
	dom.SetText(tab, label)
	return tab
}

func newPanel(slug string) *html.Node {
	panel := dom.Div(ClassPanel)
	dom.SetAttr(panel, "role", RoleTabpanel)
	dom.SetAttr(panel, "id", PanelID(slug))
	dom.SetAttr(panel, "aria-labelledby", TabID(slug))
	dom.SetHidden(panel, true)
	return panel
}
