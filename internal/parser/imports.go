package parser

import (
	"regexp"
	"strings"
)

var (
	// Collapses a braced name list spanning several lines onto one line so
	// the single-line patterns below can match it.
	importGroupRe = regexp.MustCompile(`import\s*\{([^}]*)\}\s*from`)

	namedImportRe   = regexp.MustCompile(`import\s*\{([^}]+)\}\s*from\s*['"]([^'"]+)['"]`)
	defaultImportRe = regexp.MustCompile(`import\s+(\w+)\s+from\s*['"]([^'"]+)['"]`)
	lazyImportRe    = regexp.MustCompile(`import\s*\(\s*['"]([^'"]+)['"]\s*\)\.then\s*\(\s*\w+\s*=>\s*\w+\.(\w+)\s*\)`)

	newlineReplacer = strings.NewReplacer("\n", " ", "\r", " ")
)

// ExtractImports recognizes named, default and dynamic import statements in
// comment-stripped text and resolves each referenced module path against the
// importing file. Specifiers the resolver rejects (external packages) are
// dropped. An aliased entry "Orig as Alias" keeps Orig: dependency identity
// tracks the exported name, not the local alias.
func ExtractImports(stripped, filePath string, res PathResolver) []ImportRef {
	var refs []ImportRef

	normalized := normalizeImportGroups(stripped)

	for _, m := range namedImportRe.FindAllStringSubmatch(normalized, -1) {
		names, spec := m[1], m[2]

		resolved, ok := res.Resolve(filePath, spec)
		if !ok {
			continue
		}

		for _, part := range strings.Split(names, ",") {
			name := strings.TrimSpace(part)
			if name == "" {
				continue
			}
			if pos := strings.Index(name, " as "); pos >= 0 {
				name = strings.TrimSpace(name[:pos])
			}
			refs = append(refs, ImportRef{Name: name, Path: resolved})
		}
	}

	for _, m := range defaultImportRe.FindAllStringSubmatch(normalized, -1) {
		name, spec := m[1], m[2]

		// "import type X from ..." and similar near-misses.
		if name == "type" || name == "from" {
			continue
		}

		if resolved, ok := res.Resolve(filePath, spec); ok {
			refs = append(refs, ImportRef{Name: name, Path: resolved})
		}
	}

	// Deferred module loads: import('./x').then(m => m.Member).
	for _, m := range lazyImportRe.FindAllStringSubmatch(normalized, -1) {
		spec, name := m[1], m[2]

		if resolved, ok := res.Resolve(filePath, spec); ok {
			refs = append(refs, ImportRef{Name: name, Path: resolved})
		}
	}

	return refs
}

func normalizeImportGroups(content string) string {
	return importGroupRe.ReplaceAllStringFunc(content, func(match string) string {
		sub := importGroupRe.FindStringSubmatch(match)
		return "import {" + newlineReplacer.Replace(sub[1]) + "} from"
	})
}
