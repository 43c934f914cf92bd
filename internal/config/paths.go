package config

import (
	"path/filepath"
	"strings"
)

// RelWithin reports whether path is dir itself or lies below it, and returns
// its slash-separated path relative to dir ("." for dir itself). Both paths
// are made absolute before comparison.
func RelWithin(dir, path string) (string, bool) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
