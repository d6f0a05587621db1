// Package report renders the textual listings for the CLI. All output is
// deterministic: symbols are identity-sorted or path-sorted up front.
package report

import (
	"fmt"
	"io"

	"deadexport/internal/graph"
	"deadexport/internal/history"
)

// WriteAll prints every symbol in the mapping, identity-sorted.
func WriteAll(w io.Writer, g *graph.Graph) {
	symbols := g.All()
	fmt.Fprintf(w, "Found %d entities:\n\n", len(symbols))

	for _, sym := range symbols {
		fmt.Fprintf(w, "ID: %s\n", sym.ID)
		fmt.Fprintf(w, "Name: %s\n", sym.Name)
		fmt.Fprintf(w, "Type: %s\n", sym.Kind)
		fmt.Fprintf(w, "File: %s\n", sym.FilePath)
		writeDeps(w, sym)
		fmt.Fprintln(w, "---")
	}

	fmt.Fprintf(w, "\nTotal entities in map: %d\n", len(symbols))
}

// WriteQuery prints the symbol with the given identity, or a not-found note.
func WriteQuery(w io.Writer, g *graph.Graph, id string) {
	sym, ok := g.Get(id)
	if !ok {
		fmt.Fprintf(w, "No entity found for ID %s\n", id)
		return
	}

	fmt.Fprintf(w, "ID: %s\n", sym.ID)
	fmt.Fprintf(w, "Name: %s\n", sym.Name)
	fmt.Fprintf(w, "Type: %s\n", sym.Kind)
	fmt.Fprintf(w, "File: %s\n", sym.FilePath)
	fmt.Fprintf(w, "Used: %t\n", sym.Used)
	writeDeps(w, sym)
}

// WriteUnused prints symbols that are declared but never referenced, sorted
// by file path. scope, when non-nil, restricts the listing to the given
// file paths (the version-control change filter output); deleted files are
// excluded from the scope since they cannot host a dead export.
func WriteUnused(w io.Writer, g *graph.Graph, scope []history.ChangedFile) {
	unused := g.Unused()

	if scope != nil {
		inScope := make(map[string]bool, len(scope))
		for _, cf := range scope {
			if cf.Kind != history.Deleted {
				inScope[cf.Path] = true
			}
		}

		filtered := unused[:0]
		for _, sym := range unused {
			if inScope[sym.FilePath] {
				filtered = append(filtered, sym)
			}
		}
		unused = filtered
	}

	fmt.Fprintf(w, "Found %d unused entities:\n\n", len(unused))

	for _, sym := range unused {
		fmt.Fprintf(w, "Name: %s\n", sym.Name)
		fmt.Fprintf(w, "Type: %s\n", sym.Kind)
		fmt.Fprintf(w, "File: %s\n", sym.FilePath)
		fmt.Fprintln(w, "---")
	}

	fmt.Fprintf(w, "\nTotal: %d unused out of %d entities\n", len(unused), g.Count())
}

// WriteChanged prints the raw change-filter listing, one "<kind> <path>"
// line per file in diff order.
func WriteChanged(w io.Writer, files []history.ChangedFile) {
	for _, cf := range files {
		fmt.Fprintf(w, "%s %s\n", cf.Kind, cf.Path)
	}
	fmt.Fprintf(w, "\n%d changed files\n", len(files))
}

func writeDeps(w io.Writer, sym *graph.Symbol) {
	fmt.Fprintf(w, "Deps: %d\n", len(sym.Deps))
	for _, dep := range sym.Deps {
		fmt.Fprintf(w, "  - %s (%s)\n", dep.Name, dep.Path)
	}
}
