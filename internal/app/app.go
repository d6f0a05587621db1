// Package app wires the scanner, parser and graph into full scan passes.
package app

import (
	"log/slog"
	"path/filepath"

	"deadexport/internal/config"
	"deadexport/internal/graph"
	"deadexport/internal/parser"
	"deadexport/internal/resolver"
	"deadexport/internal/scanner"
)

type App struct {
	Root    string
	Config  *config.Config
	parser  *parser.Parser
	scanner *scanner.Scanner
}

func New(root string, cfg *config.Config) (*App, error) {
	// Symbol identity hashes file paths, so the scanner, the resolver and
	// the change filter must all produce the same path string for a file.
	// The resolver canonicalizes its targets; the root has to match.
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	sc, err := scanner.New(cfg.Exclude.Dirs, cfg.Exclude.Files)
	if err != nil {
		return nil, err
	}

	res := resolver.New(root, cfg.Alias.Prefix, cfg.Alias.Target)

	return &App{
		Root:    root,
		Config:  cfg,
		parser:  parser.NewParser(res),
		scanner: sc,
	}, nil
}

// Scan enumerates and parses every candidate file and merges the results
// into a fresh graph. Per-file failures are logged and that file's
// contributions are simply omitted; the scan itself never aborts. Processing
// order does not affect the final mapping: Used is a monotonic OR and
// declarations always win over placeholders for the same identity.
func (a *App) Scan() *graph.Graph {
	g := graph.NewGraph()

	files := a.scanner.ListFiles(a.Root, a.Config.ScanRoots)
	if len(files) == 0 {
		slog.Warn("no source files found", "root", a.Root)
		return g
	}
	slog.Info("processing source files", "count", len(files))

	for _, path := range files {
		file, err := a.parser.ParseFile(path)
		if err != nil {
			slog.Warn("could not parse file", "path", path, "error", err)
			continue
		}
		g.AddFile(file)
	}

	return g
}
