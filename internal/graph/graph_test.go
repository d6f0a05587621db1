// # internal/graph/graph_test.go
package graph

import (
	"reflect"
	"testing"

	"deadexport/internal/parser"
)

func declFile(path string, decls ...parser.Declaration) *parser.File {
	return &parser.File{Path: path, Declarations: decls}
}

func TestDeclarationInserted(t *testing.T) {
	g := NewGraph()
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Foo", Kind: parser.KindClass}))

	sym, ok := g.Get(Identity("/p/a.ts", "Foo"))
	if !ok {
		t.Fatal("Expected Foo in mapping")
	}
	if sym.Kind != parser.KindClass || sym.Used {
		t.Errorf("Expected unused class, got kind=%s used=%t", sym.Kind, sym.Used)
	}
}

func TestImportSynthesizesUsedPlaceholder(t *testing.T) {
	g := NewGraph()
	g.AddFile(&parser.File{
		Path:    "/p/b.ts",
		Imports: []parser.ImportRef{{Name: "Foo", Path: "/p/a.ts"}},
	})

	sym, ok := g.Get(Identity("/p/a.ts", "Foo"))
	if !ok {
		t.Fatal("Expected placeholder for imported Foo")
	}
	if sym.Kind != parser.KindUnknown {
		t.Errorf("Expected Unknown placeholder, got %s", sym.Kind)
	}
	if !sym.Used {
		t.Error("Placeholder must be marked used")
	}
}

func TestPlaceholderPromotion(t *testing.T) {
	g := NewGraph()

	// Importer is processed before the defining file.
	g.AddFile(&parser.File{
		Path:    "/p/b.ts",
		Imports: []parser.ImportRef{{Name: "Foo", Path: "/p/a.ts"}},
	})
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Foo", Kind: parser.KindClass}))

	sym, _ := g.Get(Identity("/p/a.ts", "Foo"))
	if sym.Kind != parser.KindClass {
		t.Errorf("Expected promotion to class, got %s", sym.Kind)
	}
	if !sym.Used {
		t.Error("Used flag from import must survive promotion")
	}
}

func TestImportMarksExistingDeclarationUsed(t *testing.T) {
	g := NewGraph()

	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Foo", Kind: parser.KindFunction}))
	g.AddFile(&parser.File{
		Path:    "/p/b.ts",
		Imports: []parser.ImportRef{{Name: "Foo", Path: "/p/a.ts"}},
	})

	sym, _ := g.Get(Identity("/p/a.ts", "Foo"))
	if !sym.Used {
		t.Error("Import edge must mark declared symbol used")
	}
	if sym.Kind != parser.KindFunction {
		t.Errorf("Kind must survive, got %s", sym.Kind)
	}
}

func TestUsedIsMonotonic(t *testing.T) {
	g := NewGraph()

	g.AddFile(&parser.File{
		Path:    "/p/b.ts",
		Imports: []parser.ImportRef{{Name: "Foo", Path: "/p/a.ts"}},
	})
	// Re-observing the declaration with a local Used=false must not reset it.
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Foo", Kind: parser.KindClass}))
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Foo", Kind: parser.KindClass}))

	sym, _ := g.Get(Identity("/p/a.ts", "Foo"))
	if !sym.Used {
		t.Error("Used must never transition back to false")
	}
}

func TestLocalUsageFlagCarriedIn(t *testing.T) {
	g := NewGraph()
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Foo", Kind: parser.KindFunction, Used: true}))

	sym, _ := g.Get(Identity("/p/a.ts", "Foo"))
	if !sym.Used {
		t.Error("Locally-used declaration must enter the map used")
	}
}

func TestDepsAttachedToDeclarations(t *testing.T) {
	g := NewGraph()
	g.AddFile(&parser.File{
		Path:         "/p/a.ts",
		Imports:      []parser.ImportRef{{Name: "Dep", Path: "/p/dep.ts"}},
		Declarations: []parser.Declaration{{Name: "Foo", Kind: parser.KindClass}},
	})

	sym, _ := g.Get(Identity("/p/a.ts", "Foo"))
	if len(sym.Deps) != 1 {
		t.Fatalf("Expected 1 dep, got %d", len(sym.Deps))
	}
	dep := sym.Deps[0]
	if dep.Name != "Dep" || dep.Path != "/p/dep.ts" {
		t.Errorf("Unexpected dep %v", dep)
	}
	if dep.ID != Identity("/p/dep.ts", "Dep") {
		t.Error("Edge identity must follow the symbol derivation rule")
	}
}

func TestUnusedExcludesPlaceholdersAndUsed(t *testing.T) {
	g := NewGraph()

	g.AddFile(declFile("/p/z.ts", parser.Declaration{Name: "Dead", Kind: parser.KindFunction}))
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "Live", Kind: parser.KindClass, Used: true}))
	g.AddFile(&parser.File{
		Path:    "/p/b.ts",
		Imports: []parser.ImportRef{{Name: "External", Path: "/p/unscanned.ts"}},
	})

	unused := g.Unused()
	if len(unused) != 1 {
		t.Fatalf("Expected 1 unused symbol, got %d", len(unused))
	}
	if unused[0].Name != "Dead" {
		t.Errorf("Expected Dead, got %s", unused[0].Name)
	}
}

func TestUnusedSortedByFilePath(t *testing.T) {
	g := NewGraph()
	g.AddFile(declFile("/p/z.ts", parser.Declaration{Name: "Z", Kind: parser.KindConst}))
	g.AddFile(declFile("/p/a.ts", parser.Declaration{Name: "A", Kind: parser.KindConst}))
	g.AddFile(declFile("/p/m.ts", parser.Declaration{Name: "M", Kind: parser.KindConst}))

	unused := g.Unused()
	paths := make([]string, 0, len(unused))
	for _, sym := range unused {
		paths = append(paths, sym.FilePath)
	}
	want := []string{"/p/a.ts", "/p/m.ts", "/p/z.ts"}
	if !reflect.DeepEqual(paths, want) {
		t.Errorf("Expected %v, got %v", want, paths)
	}
}

func TestAllSortedByIdentity(t *testing.T) {
	g := NewGraph()
	g.AddFile(declFile("/p/a.ts",
		parser.Declaration{Name: "One", Kind: parser.KindConst},
		parser.Declaration{Name: "Two", Kind: parser.KindConst},
		parser.Declaration{Name: "Three", Kind: parser.KindConst},
	))

	all := g.All()
	for i := 1; i < len(all); i++ {
		if all[i-1].ID >= all[i].ID {
			t.Errorf("All() not identity-sorted at %d: %s >= %s", i, all[i-1].ID, all[i].ID)
		}
	}
}

func TestRebuildIsIdempotent(t *testing.T) {
	build := func() *Graph {
		g := NewGraph()
		g.AddFile(&parser.File{
			Path:    "/p/b.ts",
			Imports: []parser.ImportRef{{Name: "Foo", Path: "/p/a.ts"}},
		})
		g.AddFile(&parser.File{
			Path:         "/p/a.ts",
			Imports:      []parser.ImportRef{{Name: "Util", Path: "/p/util.ts"}},
			Declarations: []parser.Declaration{{Name: "Foo", Kind: parser.KindClass}},
		})
		return g
	}

	first := build().All()
	second := build().All()
	if !reflect.DeepEqual(first, second) {
		t.Error("Two identical builds must produce identical mappings")
	}
}
