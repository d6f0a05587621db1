// # internal/resolver/resolver.go
package resolver

import (
	"os"
	"path/filepath"
	"strings"
)

// Resolver maps raw import specifiers to concrete file paths under a tree
// root. Resolution is ordered and deterministic so that two importers of the
// same logical target always produce the same path string, which downstream
// symbol identity depends on.
type Resolver struct {
	root        string
	aliasPrefix string
	aliasTarget string
}

// New creates a Resolver for the given tree root. aliasPrefix is a workspace
// alias (e.g. "@awork/") rewritten to aliasTarget relative to the root.
func New(root, aliasPrefix, aliasTarget string) *Resolver {
	return &Resolver{
		root:        root,
		aliasPrefix: aliasPrefix,
		aliasTarget: aliasTarget,
	}
}

// Resolve maps a specifier to a target path. Bare package specifiers are
// external: ok is false and no edge should be created. For internal
// specifiers the first candidate that exists on disk wins, in the order
// .ts, .tsx, /index.ts, /index.tsx; when nothing exists the joined path with
// a best-effort .ts extension is returned as an identity key.
func (r *Resolver) Resolve(importingFile, spec string) (string, bool) {
	var base string
	switch {
	case r.aliasPrefix != "" && strings.HasPrefix(spec, r.aliasPrefix):
		rest := strings.TrimPrefix(spec, r.aliasPrefix)
		base = filepath.Join(r.root, r.aliasTarget, rest)
	case strings.HasPrefix(spec, "./") || strings.HasPrefix(spec, "../"):
		base = filepath.Join(filepath.Dir(importingFile), spec)
	default:
		return "", false
	}

	candidates := []string{
		base + ".ts",
		base + ".tsx",
		filepath.Join(base, "index.ts"),
		filepath.Join(base, "index.tsx"),
	}
	for _, candidate := range candidates {
		if fileExists(candidate) {
			return canonical(candidate), true
		}
	}

	// Direct import of an existing file, e.g. './foo.ts'.
	if fileExists(base) {
		return canonical(base), true
	}

	// Nothing on disk: keep the joined path as a stable identity key. The
	// target may simply be outside the scan scope.
	if strings.HasSuffix(base, ".ts") || strings.HasSuffix(base, ".tsx") {
		return base, true
	}
	return base + ".ts", true
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
