// # internal/graph/graph.go
package graph

import (
	"sort"
	"sync"

	"deadexport/internal/parser"
)

// Symbol is one exported (or import-referenced) name tracked for usage.
// A symbol known only as an import target keeps KindUnknown and is excluded
// from unused reporting.
type Symbol struct {
	ID       string
	Name     string
	Kind     parser.Kind
	FilePath string
	Deps     []Edge
	Used     bool
}

// Edge is a directed reference from an importing file to a named symbol in a
// resolved target file. Its ID follows the same derivation as Symbol.ID so
// an edge can be looked up directly against the symbol mapping.
type Edge struct {
	ID   string
	Name string
	Path string
}

// Graph is the global symbol mapping, at most one Symbol per identity.
// It is rebuilt from scratch on every scan; Used is monotonic and never
// reset within a build.
type Graph struct {
	mu      sync.RWMutex
	symbols map[string]*Symbol
}

func NewGraph() *Graph {
	return &Graph{symbols: make(map[string]*Symbol)}
}

// AddFile merges one file's extraction result into the mapping. Imports are
// registered before declarations: an import either flips the target's Used
// flag or synthesizes an Unknown placeholder already marked used. A
// declaration then overwrites placeholder kind/deps for its identity while
// preserving any Used already set, so a symbol imported before its defining
// file is parsed ends up promoted with both its real kind and Used=true.
func (g *Graph) AddFile(file *parser.File) {
	g.mu.Lock()
	defer g.mu.Unlock()

	edges := make([]Edge, 0, len(file.Imports))
	for _, imp := range file.Imports {
		edges = append(edges, Edge{
			ID:   Identity(imp.Path, imp.Name),
			Name: imp.Name,
			Path: imp.Path,
		})
	}

	for _, edge := range edges {
		if existing, ok := g.symbols[edge.ID]; ok {
			existing.Used = true
			continue
		}
		g.symbols[edge.ID] = &Symbol{
			ID:       edge.ID,
			Name:     edge.Name,
			Kind:     parser.KindUnknown,
			FilePath: edge.Path,
			Used:     true,
		}
	}

	for _, decl := range file.Declarations {
		id := Identity(file.Path, decl.Name)
		if existing, ok := g.symbols[id]; ok {
			existing.Kind = decl.Kind
			existing.Deps = cloneEdges(edges)
			if decl.Used {
				existing.Used = true
			}
			continue
		}
		g.symbols[id] = &Symbol{
			ID:       id,
			Name:     decl.Name,
			Kind:     decl.Kind,
			FilePath: file.Path,
			Deps:     cloneEdges(edges),
			Used:     decl.Used,
		}
	}
}

// Get looks up a symbol by identity.
func (g *Graph) Get(id string) (*Symbol, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	sym, ok := g.symbols[id]
	if !ok {
		return nil, false
	}
	return cloneSymbol(sym), true
}

// All returns every symbol sorted by identity.
func (g *Graph) All() []*Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Symbol, 0, len(g.symbols))
	for _, sym := range g.symbols {
		out = append(out, cloneSymbol(sym))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Unused returns symbols that were declared but never referenced, sorted by
// file path. Unknown placeholders are excluded: they represent external or
// unscanned dependencies, not confirmed dead exports.
func (g *Graph) Unused() []*Symbol {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Symbol, 0)
	for _, sym := range g.symbols {
		if !sym.Used && sym.Kind != parser.KindUnknown {
			out = append(out, cloneSymbol(sym))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].FilePath != out[j].FilePath {
			return out[i].FilePath < out[j].FilePath
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (g *Graph) Count() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.symbols)
}

func cloneSymbol(sym *Symbol) *Symbol {
	c := *sym
	c.Deps = cloneEdges(sym.Deps)
	return &c
}

func cloneEdges(edges []Edge) []Edge {
	if edges == nil {
		return nil
	}
	return append([]Edge(nil), edges...)
}
