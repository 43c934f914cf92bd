// Package loader discovers blocks in a document and hands each one to the
// decorator registered under its name.
//
// A block is a div carrying at least one class that sits directly inside the
// document body, a section element, or a section wrapper. Every div directly
// inside main is a section wrapper and never a block itself, so blocks in
// main sit one level down (main > div > div.block). The first class names
// the block. Blocks are never
// searched for nested blocks, and a block already marked as loaded is not
// decorated again.
package loader

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/net/html"

	"github.com/ziadkadry99/blockdeco/internal/dom"
)

// Attributes and classes the loader stamps on every discovered block.
const (
	ClassBlock      = "block"
	AttrBlockName   = "data-block-name"
	AttrBlockStatus = "data-block-status"
	StatusLoaded    = "loaded"
)

// Decorator rewrites one block element in place.
type Decorator interface {
	// Decorate mutates block's subtree. It is called at most once per block.
	Decorate(block *html.Node)
}

// DecoratorFunc is a [Decorator] that can be represented just by the
// [Decorate] method.
type DecoratorFunc func(block *html.Node)

// Decorate satisfies [Decorator].
func (fn DecoratorFunc) Decorate(block *html.Node) { fn(block) }

// Status is the outcome for one discovered block.
type Status string

const (
	StatusDecorated Status = "decorated"
	StatusSkipped   Status = "skipped"
	StatusUnknown   Status = "unknown"
)

// Result describes what happened to one block.
type Result struct {
	Name   string
	Status Status
}

// Report lists the results for every block discovered in a document, in
// document order.
type Report struct {
	Blocks []Result
}

// Count returns how many blocks ended with status s.
func (r Report) Count(s Status) int {
	n := 0
	for _, b := range r.Blocks {
		if b.Status == s {
			n++
		}
	}
	return n
}

// Merge appends the results of other to r.
func (r *Report) Merge(other Report) {
	r.Blocks = append(r.Blocks, other.Blocks...)
}

// Loader maps block names to decorators.
type Loader struct {
	decorators map[string]Decorator
	logger     *log.Logger
}

// Option configures a Loader.
type Option func(*Loader)

// WithDecorator registers d under name, replacing any earlier registration.
func WithDecorator(name string, d Decorator) Option {
	return func(l *Loader) {
		l.decorators[strings.ToLower(name)] = d
	}
}

// WithLogger sets the logger used for per-block debug output.
func WithLogger(logger *log.Logger) Option {
	return func(l *Loader) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates a Loader with no decorators beyond those passed as options.
func New(opts ...Option) *Loader {
	l := &Loader{
		decorators: make(map[string]Decorator),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Names returns the registered block names, sorted.
func (l *Loader) Names() []string {
	names := make([]string, 0, len(l.decorators))
	for name := range l.decorators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a decorator is registered for name.
func (l *Loader) Has(name string) bool {
	_, ok := l.decorators[strings.ToLower(name)]
	return ok
}

// DecorateDocument decorates every block found under root. root may be a
// document node, an html or body element, or a fragment container.
func (l *Loader) DecorateDocument(root *html.Node) Report {
	var report Report
	for _, block := range Discover(root) {
		report.Blocks = append(report.Blocks, l.decorate(block))
	}
	return report
}

func (l *Loader) decorate(block *html.Node) Result {
	name := BlockName(block)
	if status, _ := dom.Attr(block, AttrBlockStatus); status == StatusLoaded {
		l.logger.Debug("block already loaded", "block", name)
		return Result{Name: name, Status: StatusSkipped}
	}
	d, ok := l.decorators[name]
	if !ok {
		l.logger.Debug("no decorator for block", "block", name)
		return Result{Name: name, Status: StatusUnknown}
	}

	dom.AddClass(block, ClassBlock)
	dom.SetAttr(block, AttrBlockName, name)
	d.Decorate(block)
	dom.SetAttr(block, AttrBlockStatus, StatusLoaded)

	l.logger.Debug("decorated block", "block", name)
	return Result{Name: name, Status: StatusDecorated}
}

// DecorateHTML parses r as a body fragment, decorates it, and writes the
// resulting fragment to w.
func (l *Loader) DecorateHTML(r io.Reader, w io.Writer) (Report, error) {
	body, err := dom.ParseFragment(r)
	if err != nil {
		return Report{}, err
	}
	report := l.DecorateDocument(body)
	if err := dom.RenderChildren(w, body); err != nil {
		return report, fmt.Errorf("writing decorated fragment: %w", err)
	}
	return report, nil
}

// DecoratePage parses r as a complete HTML document, decorates it, and writes
// the full document to w.
func (l *Loader) DecoratePage(r io.Reader, w io.Writer) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("parsing document: %w", err)
	}
	report := l.DecorateDocument(doc)
	if err := html.Render(w, doc); err != nil {
		return report, fmt.Errorf("writing decorated document: %w", err)
	}
	return report, nil
}

// IsDocument reports whether markup looks like a complete HTML document
// rather than a body fragment.
func IsDocument(markup []byte) bool {
	head := bytes.ToLower(bytes.TrimSpace(markup))
	if len(head) > 512 {
		head = head[:512]
	}
	return bytes.HasPrefix(head, []byte("<!doctype")) || bytes.HasPrefix(head, []byte("<html"))
}
