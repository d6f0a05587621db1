// # internal/scanner/scanner.go
package scanner

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// Scanner enumerates candidate source files under a set of roots, applying
// directory and file exclusion patterns. It is a pure file-list producer:
// no parsing happens here.
type Scanner struct {
	dirGlobs  []glob.Glob
	fileGlobs []glob.Glob
}

func New(excludeDirs, excludeFiles []string) (*Scanner, error) {
	dirGlobs := make([]glob.Glob, 0, len(excludeDirs))
	for _, p := range excludeDirs {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude dir pattern %q: %w", p, err)
		}
		dirGlobs = append(dirGlobs, g)
	}

	fileGlobs := make([]glob.Glob, 0, len(excludeFiles))
	for _, p := range excludeFiles {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude file pattern %q: %w", p, err)
		}
		fileGlobs = append(fileGlobs, g)
	}

	return &Scanner{dirGlobs: dirGlobs, fileGlobs: fileGlobs}, nil
}

// ListFiles walks each subdir under root and returns every .ts/.tsx file not
// matched by an exclusion pattern. Missing subdirs and unreadable entries are
// logged and skipped, never fatal.
func (s *Scanner) ListFiles(root string, subdirs []string) []string {
	var files []string

	for _, subdir := range subdirs {
		dir := filepath.Join(root, subdir)
		if _, err := os.Stat(dir); err != nil {
			slog.Warn("scan root does not exist, skipping", "path", dir)
			continue
		}

		slog.Debug("scanning directory", "path", dir)
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				slog.Warn("could not read directory entry, skipping", "path", path, "error", err)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			base := filepath.Base(path)
			if d.IsDir() {
				for _, g := range s.dirGlobs {
					if g.Match(base) {
						return filepath.SkipDir
					}
				}
				return nil
			}

			if !isSourceFile(path) {
				return nil
			}

			for _, g := range s.fileGlobs {
				if g.Match(base) {
					return nil
				}
			}

			files = append(files, path)
			return nil
		})
		if err != nil {
			slog.Warn("walk failed", "path", dir, "error", err)
		}
	}

	return files
}

func isSourceFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".ts" || ext == ".tsx"
}
