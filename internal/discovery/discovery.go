// Package discovery walks a directory tree and finds Ruby dependency
// manifests (Gemfile and *.gemspec files) for the scan command.
package discovery

import (
	"log/slog"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-enry/go-enry/v2"

	"github.com/petrarca/gemfile-parser/internal/types"
)

// defaultExcludedDirs are directory names never descended into. They hold
// vendored or generated code whose manifests do not belong to the project.
var defaultExcludedDirs = map[string]bool{
	".git":         true,
	".bundle":      true,
	"vendor":       true,
	"node_modules": true,
	"tmp":          true,
	"log":          true,
}

// Walker finds manifest files through a Provider, honoring exclude patterns.
type Walker struct {
	provider types.Provider
	logger   *slog.Logger
	excludes []string
}

// NewWalker creates a walker. excludes are doublestar glob patterns matched
// against both the entry's relative path and its bare name.
func NewWalker(provider types.Provider, excludes []string, logger *slog.Logger) *Walker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Walker{
		provider: provider,
		logger:   logger,
		excludes: excludes,
	}
}

// Discover walks the tree rooted at root and returns every manifest found,
// in directory-listing order. Unreadable subdirectories are logged and
// skipped; an unreadable root is an error.
func (w *Walker) Discover(root string) ([]types.Manifest, error) {
	entries, err := w.provider.ListDir(root)
	if err != nil {
		return nil, err
	}

	var manifests []types.Manifest
	w.walk(root, entries, &manifests)
	return manifests, nil
}

func (w *Walker) walk(dir string, entries []types.File, manifests *[]types.Manifest) {
	for _, entry := range entries {
		if w.excluded(entry) {
			continue
		}

		if entry.Type == "dir" {
			children, err := w.provider.ListDir(entry.Path)
			if err != nil {
				w.logger.Warn("cannot list directory, skipping", "dir", entry.Path, "error", err)
				continue
			}
			w.walk(entry.Path, children, manifests)
			continue
		}

		kind, ok := manifestKind(entry.Name)
		if !ok {
			continue
		}

		lang, _ := enry.GetLanguageByFilename(entry.Name)
		*manifests = append(*manifests, types.Manifest{
			Path:     entry.Path,
			Kind:     kind,
			Language: lang,
		})
	}
}

// manifestKind reports whether a file name is a parseable manifest and with
// which dialect it should be parsed.
func manifestKind(name string) (types.ManifestKind, bool) {
	switch {
	case name == "Gemfile":
		return types.ManifestGemfile, true
	case strings.HasSuffix(name, ".gemspec"):
		return types.ManifestGemspec, true
	default:
		return "", false
	}
}

func (w *Walker) excluded(entry types.File) bool {
	if entry.Type == "dir" && defaultExcludedDirs[entry.Name] {
		return true
	}

	for _, pattern := range w.excludes {
		// Try glob match against relative path
		if matched, err := doublestar.Match(pattern, entry.Path); err == nil && matched {
			return true
		}

		// Also try matching just the filename
		if matched, err := doublestar.Match(pattern, entry.Name); err == nil && matched {
			return true
		}
	}
	return false
}
