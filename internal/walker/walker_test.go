package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// testdataDir returns the absolute path to the testdata/sample_site directory.
func testdataDir(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("unable to determine test file location")
	}
	root := filepath.Join(filepath.Dir(filename), "..", "..", "testdata", "sample_site")
	abs, err := filepath.Abs(root)
	if err != nil {
		t.Fatalf("resolve testdata path: %v", err)
	}
	if _, err := os.Stat(abs); os.IsNotExist(err) {
		t.Fatalf("testdata dir does not exist: %s", abs)
	}
	return abs
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestWalk_BasicTraversal(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	want := []string{"guides/getting-started.md", "guides/legacy.html", "index.md"}
	got := relPaths(files)
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Walk() = %v, want %v", got, want)
	}
}

func TestWalk_FileInfoFields(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{RootDir: dir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if !filepath.IsAbs(f.Path) {
			t.Errorf("FileInfo.Path %q is not absolute", f.Path)
		}
		if f.Size <= 0 {
			t.Errorf("FileInfo.Size for %s is %d, expected > 0", f.RelPath, f.Size)
		}
		wantKind := KindMarkdown
		if strings.HasSuffix(f.RelPath, ".html") {
			wantKind = KindHTML
		}
		if f.Kind != wantKind {
			t.Errorf("FileInfo.Kind for %s = %q, want %q", f.RelPath, f.Kind, wantKind)
		}
	}
}

func TestWalk_IncludeFilter(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir: dir,
		Include: []string{"*.md"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	for _, f := range files {
		if !strings.HasSuffix(f.RelPath, ".md") {
			t.Errorf("include filter *.md let through: %s", f.RelPath)
		}
	}
	if len(files) != 2 {
		t.Errorf("expected 2 markdown files, got %d", len(files))
	}
}

func TestWalk_ExcludeFilter(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir: dir,
		Exclude: []string{"guides/**"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	if len(got) != 1 || got[0] != "index.md" {
		t.Errorf("exclude guides/** left %v", got)
	}
}

func TestWalk_DoubleStarInclude(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir: dir,
		Include: []string{"guides/**/*.html"},
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	if len(got) != 1 || got[0] != "guides/legacy.html" {
		t.Errorf("include guides/**/*.html = %v", got)
	}
}

func TestWalk_SkipsLargeFiles(t *testing.T) {
	tmpDir := t.TempDir()

	os.WriteFile(filepath.Join(tmpDir, "small.md"), []byte("# small"), 0644)
	os.WriteFile(filepath.Join(tmpDir, "big.md"), []byte(strings.Repeat("A", 200)), 0644)

	files, err := Walk(Config{
		RootDir:     tmpDir,
		MaxFileSize: 100,
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	got := relPaths(files)
	if len(got) != 1 || got[0] != "small.md" {
		t.Errorf("expected only small.md, got %v", got)
	}
}

func TestWalk_DefaultExcludeDirs(t *testing.T) {
	tmpDir := t.TempDir()

	for _, dir := range []string{"node_modules", ".git", "_drafts"} {
		dirPath := filepath.Join(tmpDir, dir)
		os.MkdirAll(dirPath, 0755)
		os.WriteFile(filepath.Join(dirPath, "page.md"), []byte("# hidden"), 0644)
	}
	os.WriteFile(filepath.Join(tmpDir, "index.md"), []byte("# Home"), 0644)

	files, err := Walk(Config{RootDir: tmpDir})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	if len(files) != 1 {
		t.Errorf("expected 1 file, got %d: %v", len(files), relPaths(files))
	}
}

func TestWalk_MissingRoot(t *testing.T) {
	_, err := Walk(Config{RootDir: filepath.Join(t.TempDir(), "missing")})
	if err == nil {
		t.Fatal("expected error for missing root")
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		filename string
		want     Kind
	}{
		{"index.md", KindMarkdown},
		{"README.MD", KindMarkdown},
		{"notes.markdown", KindMarkdown},
		{"page.html", KindHTML},
		{"old.htm", KindHTML},
		{"guides/page.html", KindHTML},
		{"style.css", ""},
		{"noextension", ""},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			got := DetectKind(tc.filename)
			if got != tc.want {
				t.Errorf("DetectKind(%q) = %q, want %q", tc.filename, got, tc.want)
			}
		})
	}
}

func TestMatchesIncludeExclude(t *testing.T) {
	if !MatchesInclude("a/b.md", nil) {
		t.Error("empty include should match everything")
	}
	if MatchesExclude("a/b.md", nil) {
		t.Error("empty exclude should match nothing")
	}
	if !MatchesInclude("deep/nested/page.md", []string{"**/*.md"}) {
		t.Error("**/*.md should match nested markdown")
	}
	if !MatchesExclude("guides/page.md", []string{"page.md"}) {
		t.Error("bare file name pattern should match the base name")
	}
}

func TestWalk_IncludeAssets(t *testing.T) {
	dir := testdataDir(t)

	files, err := Walk(Config{
		RootDir:       dir,
		Include:       []string{"**/*.md"},
		IncludeAssets: true,
	})
	if err != nil {
		t.Fatalf("Walk() error: %v", err)
	}

	kinds := make(map[string]Kind)
	for _, f := range files {
		kinds[f.RelPath] = f.Kind
	}
	if kinds["assets/notes.txt"] != KindAsset {
		t.Errorf("assets/notes.txt kind = %q, want asset", kinds["assets/notes.txt"])
	}
	if _, ok := kinds["guides/legacy.html"]; ok {
		t.Error("include filter should still apply to content files")
	}
	if _, ok := kinds["_drafts/unfinished.md"]; ok {
		t.Error("default-excluded directories should be skipped for assets too")
	}
}
