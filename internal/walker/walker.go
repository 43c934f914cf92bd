package walker

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the maximum content file size to process (4 MB).
const DefaultMaxFileSize int64 = 4 << 20

// Kind classifies a content file by how it is rendered.
type Kind string

const (
	KindMarkdown Kind = "markdown"
	KindHTML     Kind = "html"
	// KindAsset marks any other file, returned only when assets are requested.
	KindAsset Kind = "asset"
)

// extensionToKind maps file extensions to content kinds. Files with any other
// extension are not content.
var extensionToKind = map[string]Kind{
	".md":       KindMarkdown,
	".markdown": KindMarkdown,
	".html":     KindHTML,
	".htm":      KindHTML,
}

// DetectKind returns the content kind for a file name, or "" when the file
// is not a content file.
func DetectKind(name string) Kind {
	return extensionToKind[strings.ToLower(filepath.Ext(name))]
}

// FileInfo holds metadata about a single content file discovered during traversal.
type FileInfo struct {
	Path    string // Absolute path on disk.
	RelPath string // Path relative to the root directory, slash separated.
	Size    int64  // File size in bytes.
	Kind    Kind   // Markdown or HTML.
}

// Config controls the behaviour of the Walk function.
type Config struct {
	RootDir     string   // Root directory to walk.
	Include     []string // Glob patterns — only matching files are included.
	Exclude     []string // Glob patterns — matching files are excluded.
	MaxFileSize int64    // Files larger than this are skipped (0 = use default).
	// IncludeAssets also returns non-content files (images, stylesheets) as
	// KindAsset. Include patterns apply only to content; Exclude applies to both.
	IncludeAssets bool
}

// Walk traverses the directory tree rooted at config.RootDir and returns
// every content file that passes filtering, in lexical path order.
func Walk(config Config) ([]FileInfo, error) {
	root, err := filepath.Abs(config.RootDir)
	if err != nil {
		return nil, fmt.Errorf("walker: resolve root: %w", err)
	}

	maxSize := config.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	var files []FileInfo

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			// Skip entries we cannot read instead of aborting.
			return nil
		}

		name := d.Name()

		if d.IsDir() {
			if path != root && shouldExcludeDir(name) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		kind := DetectKind(name)
		if kind == "" {
			if !config.IncludeAssets {
				return nil
			}
			kind = KindAsset
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if kind != KindAsset && !MatchesInclude(relPath, config.Include) {
			return nil
		}
		if MatchesExclude(relPath, config.Exclude) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if kind != KindAsset && info.Size() > maxSize {
			return nil
		}

		files = append(files, FileInfo{
			Path:    path,
			RelPath: filepath.ToSlash(relPath),
			Size:    info.Size(),
			Kind:    kind,
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walker: traversal: %w", err)
	}

	return files, nil
}
