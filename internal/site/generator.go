// Package site builds a static site: every content page is rendered to a
// block fragment, decorated by the loader, and wrapped in the page template.
package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ziadkadry99/blockdeco/internal/config"
	"github.com/ziadkadry99/blockdeco/internal/dom"
	"github.com/ziadkadry99/blockdeco/internal/loader"
	"github.com/ziadkadry99/blockdeco/internal/progress"
	"github.com/ziadkadry99/blockdeco/internal/source"
	"github.com/ziadkadry99/blockdeco/internal/walker"
)

var (
	// ErrNoContent is returned when the content directory holds no pages.
	ErrNoContent = errors.New("no content files found")
	// ErrUnknownBlock is returned when FailOnUnknown is set and a page holds
	// a block without a registered decorator.
	ErrUnknownBlock = errors.New("unknown block")
	// ErrOutputOverlap is returned when the output directory is the content
	// directory or one of its parents.
	ErrOutputOverlap = errors.New("output dir overlaps content dir")
)

// Generator converts a content directory into a static HTML site.
type Generator struct {
	ContentDir    string
	OutputDir     string
	SiteName      string
	Include       []string
	Exclude       []string
	Clean         bool
	FailOnUnknown bool

	loader *loader.Loader
	source *source.Renderer
	logger *log.Logger
}

// Result summarises one build.
type Result struct {
	Pages  int
	Assets int
	Report loader.Report
}

// NewGenerator creates a Generator from cfg. A nil logger discards output.
func NewGenerator(cfg *config.Config, l *loader.Loader, r *source.Renderer, logger *log.Logger) *Generator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Generator{
		ContentDir:    cfg.ContentDir,
		OutputDir:     cfg.OutputDir,
		SiteName:      cfg.SiteName,
		Include:       cfg.Include,
		Exclude:       cfg.Exclude,
		Clean:         cfg.Build.Clean,
		FailOnUnknown: cfg.Build.FailOnUnknown,
		loader:        l,
		source:        r,
		logger:        logger,
	}
}

// pageData holds the data passed to the HTML template for each page.
type pageData struct {
	Title    string
	SiteName string
	Content  template.HTML
	Nav      []navItem
	BasePath string
}

// Generate builds the site. Pages are processed in path order; the build
// stops at the first failing page or when ctx is cancelled.
func (g *Generator) Generate(ctx context.Context, reporter progress.Reporter) (Result, error) {
	var result Result
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if _, ok := config.RelWithin(g.OutputDir, g.ContentDir); ok {
		return result, fmt.Errorf("%w: %s contains %s", ErrOutputOverlap, g.OutputDir, g.ContentDir)
	}

	// An output dir below the content dir holds earlier builds.
	exclude := append([]string(nil), g.Exclude...)
	if rel, ok := config.RelWithin(g.ContentDir, g.OutputDir); ok {
		exclude = append(exclude, rel+"/**")
	}

	files, err := walker.Walk(walker.Config{
		RootDir:       g.ContentDir,
		Include:       g.Include,
		Exclude:       exclude,
		IncludeAssets: true,
	})
	if err != nil {
		return result, fmt.Errorf("walking content dir: %w", err)
	}

	var pages, assets []walker.FileInfo
	for _, f := range files {
		if f.Kind == walker.KindAsset {
			assets = append(assets, f)
		} else {
			pages = append(pages, f)
		}
	}
	if len(pages) == 0 {
		return result, fmt.Errorf("%w in %s", ErrNoContent, g.ContentDir)
	}

	if g.Clean {
		if err := os.RemoveAll(g.OutputDir); err != nil {
			return result, fmt.Errorf("cleaning output dir: %w", err)
		}
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return result, err
	}

	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return result, fmt.Errorf("parsing page template: %w", err)
	}

	titles := make(map[string]string, len(pages))
	sources := make(map[string][]byte, len(pages))
	for _, p := range pages {
		content, err := os.ReadFile(p.Path)
		if err != nil {
			return result, fmt.Errorf("reading %s: %w", p.RelPath, err)
		}
		sources[p.RelPath] = content
		titles[p.RelPath] = pageTitle(p, content)
	}
	nav := buildNav(pages, titles)

	reporter.Start(len(pages))
	defer reporter.Finish()

	for i, p := range pages {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		report, err := g.renderPage(tmpl, nav, p, titles[p.RelPath], sources[p.RelPath])
		if err != nil {
			return result, fmt.Errorf("rendering %s: %w", p.RelPath, err)
		}
		result.Pages++
		result.Report.Merge(report)
		reporter.Update(i+1, p.RelPath)
		g.logger.Debug("rendered page", "page", p.RelPath, "blocks", len(report.Blocks))
	}

	for _, a := range assets {
		if err := copyFile(a.Path, filepath.Join(g.OutputDir, filepath.FromSlash(a.RelPath))); err != nil {
			return result, fmt.Errorf("copying %s: %w", a.RelPath, err)
		}
		result.Assets++
	}

	return result, nil
}

// renderPage decorates one page and writes it under the output dir.
func (g *Generator) renderPage(tmpl *template.Template, nav []navItem, page walker.FileInfo, title string, content []byte) (loader.Report, error) {
	fragment := content
	if page.Kind == walker.KindMarkdown {
		rendered, err := g.source.Render(content)
		if err != nil {
			return loader.Report{}, err
		}
		fragment = rendered
	}

	var decorated bytes.Buffer
	report, err := g.loader.DecorateHTML(bytes.NewReader(fragment), &decorated)
	if err != nil {
		return report, err
	}
	if g.FailOnUnknown {
		for _, b := range report.Blocks {
			if b.Status == loader.StatusUnknown {
				return report, fmt.Errorf("%w %q", ErrUnknownBlock, b.Name)
			}
		}
	}

	htmlRelPath := OutputPath(page.RelPath)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRelPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return report, err
	}

	basePath := strings.Repeat("../", strings.Count(htmlRelPath, "/"))
	data := pageData{
		Title:    title,
		SiteName: g.SiteName,
		Content:  template.HTML(decorated.String()),
		Nav:      markActive(nav, htmlRelPath),
		BasePath: basePath,
	}

	f, err := os.Create(outPath)
	if err != nil {
		return report, err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return report, err
	}
	return report, f.Close()
}

// OutputPath maps a content path to its page path: index.md -> index.html.
func OutputPath(relPath string) string {
	ext := filepath.Ext(relPath)
	return strings.TrimSuffix(relPath, ext) + ".html"
}

// pageTitle returns the first h1 of a page, falling back to its file name.
func pageTitle(page walker.FileInfo, content []byte) string {
	if page.Kind == walker.KindMarkdown {
		return source.Title(content, page.RelPath)
	}
	if body, err := dom.ParseFragment(bytes.NewReader(content)); err == nil {
		if h1 := dom.QueryFirst(body, dom.Tag("h1")); h1 != nil {
			if text := strings.TrimSpace(dom.TextContent(h1)); text != "" {
				return text
			}
		}
	}
	return source.Title(nil, page.RelPath)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
