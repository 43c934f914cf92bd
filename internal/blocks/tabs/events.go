package tabs

import (
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// EventType names the input events a Controller listens for.
type EventType string

const (
	EventClick   EventType = "click"
	EventKeyDown EventType = "keydown"
)

// Navigation keys recognized on keydown.
const (
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
	KeyHome       = "Home"
	KeyEnd        = "End"
)

// Event is a pointer or keyboard event delivered to the tab strip.
type Event struct {
	Type   EventType
	Key    string
	Target *html.Node

	defaultPrevented bool
}

// Click returns a click event on target.
func Click(target *html.Node) *Event {
	return &Event{Type: EventClick, Target: target}
}

// KeyDown returns a keydown event for key on target.
func KeyDown(target *html.Node, key string) *Event {
	return &Event{Type: EventKeyDown, Key: key, Target: target}
}

// PreventDefault suppresses the platform's default action for the event.
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Dispatch delivers ev to the controller's tab strip listeners and reports
// whether it led to an activation. Events whose target is outside this
// controller's tab strip are ignored.
func (c *Controller) Dispatch(ev *Event) bool {
	if ev == nil || !dom.Contains(c.tablist, ev.Target) {
		return false
	}
	switch ev.Type {
	case EventClick:
		return c.onClick(ev)
	case EventKeyDown:
		return c.onKeyDown(ev)
	}
	return false
}

func (c *Controller) onClick(ev *Event) bool {
	tab := dom.Closest(ev.Target, c.tablist, dom.AttrEquals("role", RoleTab))
	if tab == nil {
		return false
	}
	return c.Activate(c.indexOf(tab))
}

// onKeyDown moves selection cyclically. A target that is not one of the tabs
// counts as index -1, so ArrowRight from it lands on the first tab.
func (c *Controller) onKeyDown(ev *Event) bool {
	n := len(c.tabs)
	if n == 0 {
		return false
	}
	current := c.indexOf(ev.Target)

	var next int
	switch ev.Key {
	case KeyArrowRight:
		next = (current + 1) % n
	case KeyArrowLeft:
		next = ((current-1+n)%n + n) % n
	case KeyHome:
		next = 0
	case KeyEnd:
		next = n - 1
	default:
		return false
	}

	ev.PreventDefault()
	c.Focus(next)
	return c.Dispatch(Click(c.tabs[next]))
}
