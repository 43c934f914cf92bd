package site

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ziadkadry99/blockdeco/internal/config"
	"github.com/ziadkadry99/blockdeco/internal/loader"
	"github.com/ziadkadry99/blockdeco/internal/source"
	"github.com/ziadkadry99/blockdeco/internal/walker"
)

func sampleSite(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	return filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "sample_site")
}

func newTestGenerator(t *testing.T, contentDir, outputDir string) *Generator {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.SiteName = "Sample"
	cfg.ContentDir = contentDir
	cfg.OutputDir = outputDir

	l, err := loader.Default(cfg.Blocks)
	if err != nil {
		t.Fatalf("loader.Default: %v", err)
	}
	r := source.New(source.Options{Blocks: cfg.Blocks, HighlightStyle: cfg.HighlightStyle})
	return NewGenerator(cfg, l, r, nil)
}

func readOutput(t *testing.T, dir, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"index.md", "index.html"},
		{"guides/getting-started.md", "guides/getting-started.html"},
		{"guides/legacy.html", "guides/legacy.html"},
		{"notes.markdown", "notes.html"},
		{"old.htm", "old.html"},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.input); got != tt.want {
			t.Errorf("OutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestBuildNav(t *testing.T) {
	pages := []walker.FileInfo{
		{RelPath: "guides/a.md"},
		{RelPath: "guides/index.md"},
		{RelPath: "index.md"},
		{RelPath: "about.md"},
	}
	titles := map[string]string{
		"guides/a.md":     "A",
		"guides/index.md": "Guides",
		"index.md":        "Home",
		"about.md":        "About",
	}

	nav := buildNav(pages, titles)

	var hrefs []string
	for _, item := range nav {
		hrefs = append(hrefs, item.Href)
	}
	want := "index.html,about.html,guides/index.html,guides/a.html"
	if got := strings.Join(hrefs, ","); got != want {
		t.Errorf("nav order = %s, want %s", got, want)
	}
	if nav[2].Title != "Guides" || nav[2].Depth != 1 {
		t.Errorf("guides index item = %+v", nav[2])
	}

	active := markActive(nav, "about.html")
	if !active[1].Active || active[0].Active {
		t.Error("markActive should flag only the matching entry")
	}
	if nav[1].Active {
		t.Error("markActive must not modify the shared nav")
	}
}

func TestFullSiteGeneration(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")
	gen := newTestGenerator(t, sampleSite(t), outDir)

	result, err := gen.Generate(context.Background(), nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Pages != 3 {
		t.Errorf("pages = %d, want 3", result.Pages)
	}
	if result.Assets != 1 {
		t.Errorf("assets = %d, want 1", result.Assets)
	}
	if got := result.Report.Count(loader.StatusDecorated); got != 4 {
		t.Errorf("decorated blocks = %d, want 4", got)
	}

	for _, rel := range []string{"index.html", "guides/getting-started.html", "guides/legacy.html", "assets/notes.txt"} {
		if _, err := os.Stat(filepath.Join(outDir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s in output: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "_drafts")); !os.IsNotExist(err) {
		t.Error("drafts should not be published")
	}

	index := readOutput(t, outDir, "index.html")
	for _, want := range []string{
		"<title>Welcome | Sample</title>",
		`data-block-name="hero"`,
		`data-block-status="loaded"`,
		"<details>",
		"<summary>What is a block?</summary>",
		`href="guides/getting-started.html"`,
		`aria-current="page"`,
	} {
		if !strings.Contains(index, want) {
			t.Errorf("index.html missing %q", want)
		}
	}

	guide := readOutput(t, outDir, "guides/getting-started.html")
	for _, want := range []string{
		`role="tablist"`,
		`aria-selected="true"`,
		`href="../index.html"`,
		"<pre",
	} {
		if !strings.Contains(guide, want) {
			t.Errorf("getting-started.html missing %q", want)
		}
	}

	legacy := readOutput(t, outDir, "guides/legacy.html")
	if !strings.Contains(legacy, "<title>Legacy page | Sample</title>") {
		t.Error("legacy.html should take its title from the first h1")
	}
	if !strings.Contains(legacy, "hero-bg") {
		t.Error("legacy.html hero should be decorated as full bleed")
	}
}

func TestGenerateNoFiles(t *testing.T) {
	gen := newTestGenerator(t, t.TempDir(), filepath.Join(t.TempDir(), "site"))

	_, err := gen.Generate(context.Background(), nil)
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("expected ErrNoContent, got %v", err)
	}
}

func TestGenerateFailOnUnknown(t *testing.T) {
	contentDir := t.TempDir()
	page := `<div class="carousel"><div><div>slide</div></div></div>`
	if err := os.WriteFile(filepath.Join(contentDir, "page.html"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t, contentDir, filepath.Join(t.TempDir(), "site"))
	result, err := gen.Generate(context.Background(), nil)
	if err != nil {
		t.Fatalf("unknown blocks should be tolerated by default: %v", err)
	}
	if got := result.Report.Count(loader.StatusUnknown); got != 1 {
		t.Errorf("unknown blocks = %d, want 1", got)
	}

	gen.FailOnUnknown = true
	if _, err := gen.Generate(context.Background(), nil); !errors.Is(err, ErrUnknownBlock) {
		t.Errorf("expected ErrUnknownBlock, got %v", err)
	}
}

func TestGenerateClean(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "site")
	stale := filepath.Join(outDir, "stale.html")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t, sampleSite(t), outDir)
	if _, err := gen.Generate(context.Background(), nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := os.Stat(stale); err != nil {
		t.Error("stale file should survive when clean is off")
	}

	gen.Clean = true
	if _, err := gen.Generate(context.Background(), nil); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file should be removed when clean is on")
	}
}

func TestGenerateCancelled(t *testing.T) {
	gen := newTestGenerator(t, sampleSite(t), filepath.Join(t.TempDir(), "site"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := gen.Generate(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestGenerateRefusesOutputAboveContent(t *testing.T) {
	root := t.TempDir()
	contentDir := filepath.Join(root, "content")
	if err := os.MkdirAll(contentDir, 0o755); err != nil {
		t.Fatal(err)
	}
	page := filepath.Join(contentDir, "index.md")
	if err := os.WriteFile(page, []byte("# Home\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t, contentDir, root)
	gen.Clean = true
	if _, err := gen.Generate(context.Background(), nil); !errors.Is(err, ErrOutputOverlap) {
		t.Errorf("expected ErrOutputOverlap, got %v", err)
	}
	if _, err := os.Stat(page); err != nil {
		t.Errorf("content must survive a refused build: %v", err)
	}
}

func TestGenerateSkipsOutputInsideContent(t *testing.T) {
	contentDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(contentDir, "index.md"), []byte("# Home\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(contentDir, "logo.txt"), []byte("logo"), 0o644); err != nil {
		t.Fatal(err)
	}

	gen := newTestGenerator(t, contentDir, filepath.Join(contentDir, "site"))
	for i := 0; i < 3; i++ {
		result, err := gen.Generate(context.Background(), nil)
		if err != nil {
			t.Fatalf("build %d: %v", i+1, err)
		}
		if result.Pages != 1 || result.Assets != 1 {
			t.Errorf("build %d: pages = %d, assets = %d; want 1, 1", i+1, result.Pages, result.Assets)
		}
	}
	if _, err := os.Stat(filepath.Join(contentDir, "site", "site")); !os.IsNotExist(err) {
		t.Error("output dir should not be copied into itself")
	}
}
