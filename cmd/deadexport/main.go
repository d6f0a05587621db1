// # cmd/deadexport/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"deadexport/internal/app"
	"deadexport/internal/config"
	"deadexport/internal/graph"
	"deadexport/internal/history"
	"deadexport/internal/report"
	"deadexport/internal/watcher"
)

const version = "1.0.0"

const usageText = `Usage: deadexport <command> [flags]

Commands:
  all      List every discovered symbol, identity-sorted
  query    Look up one symbol by identity (-id)
  unused   List exported-but-unreferenced symbols, path-sorted
  changed  List files changed on the current branch (-base)

Common flags:
  -root    Tree root to scan (default ".")
  -config  Path to TOML config file
  -base    Base git reference; scopes 'unused' to branch-changed files
  -db      Write a sqlite snapshot of the scan to this path
  -watch   Keep running and rescan when source files change
  -verbose Enable debug logging
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	command := os.Args[1]
	if command == "version" || command == "-version" || command == "--version" {
		fmt.Printf("deadexport v%s\n", version)
		return
	}

	fs := flag.NewFlagSet(command, flag.ExitOnError)
	var (
		root       = fs.String("root", ".", "Tree root to scan")
		configPath = fs.String("config", "./deadexport.toml", "Path to config file")
		id         = fs.String("id", "", "Symbol identity to look up (query)")
		base       = fs.String("base", "", "Base git reference (changed, unused)")
		dbPath     = fs.String("db", "", "Write sqlite snapshot to this path")
		watch      = fs.Bool("watch", false, "Rescan when source files change")
		verbose    = fs.Bool("verbose", false, "Enable verbose logging")
	)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[2:])

	if abs, err := filepath.Abs(*root); err == nil {
		*root = abs
	}

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("failed to load config", "path", *configPath, "error", err)
			os.Exit(1)
		}
		cfg = config.Default()
	}

	switch command {
	case "all", "query", "unused", "changed":
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", command)
		fmt.Fprint(os.Stderr, usageText)
		os.Exit(2)
	}

	if command == "changed" {
		if *base == "" {
			fmt.Fprintln(os.Stderr, "changed requires -base")
			os.Exit(2)
		}
		files, err := history.ChangedFiles(*root, *base)
		if err != nil {
			slog.Error("change filter failed", "error", err)
			os.Exit(1)
		}
		report.WriteChanged(os.Stdout, files)
		return
	}

	if command == "query" && *id == "" {
		fmt.Fprintln(os.Stderr, "query requires -id")
		os.Exit(2)
	}

	snapshotPath := *dbPath
	if snapshotPath == "" {
		snapshotPath = cfg.DB.Path
	}

	a, err := app.New(*root, cfg)
	if err != nil {
		slog.Error("failed to initialize", "error", err)
		os.Exit(1)
	}

	runOnce := func() {
		g := a.Scan()
		if snapshotPath != "" {
			writeSnapshot(snapshotPath, *root, g)
		}

		switch command {
		case "all":
			report.WriteAll(os.Stdout, g)
		case "query":
			report.WriteQuery(os.Stdout, g, *id)
		case "unused":
			var scope []history.ChangedFile
			if *base != "" {
				scope, err = history.ChangedFiles(*root, *base)
				if err != nil {
					slog.Error("change filter failed", "error", err)
					os.Exit(1)
				}
			}
			report.WriteUnused(os.Stdout, g, scope)
		}
	}

	runOnce()

	if !*watch {
		return
	}

	w, err := watcher.New(cfg.Watch.Debounce, cfg.Exclude.Dirs, cfg.Exclude.Files, func(paths []string) {
		slog.Info("source files changed, rescanning", "count", len(paths))
		runOnce()
	})
	if err != nil {
		slog.Error("failed to start watcher", "error", err)
		os.Exit(1)
	}
	defer w.Close()

	roots := make([]string, 0, len(cfg.ScanRoots))
	for _, sub := range cfg.ScanRoots {
		roots = append(roots, filepath.Join(*root, sub))
	}
	if err := w.AddRoots(roots); err != nil {
		slog.Error("failed to watch scan roots", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	slog.Info("watching for changes", "debounce", cfg.Watch.Debounce)
	w.Run(ctx)
}

func writeSnapshot(path, root string, g *graph.Graph) {
	store, err := graph.OpenSnapshotStore(path)
	if err != nil {
		slog.Error("failed to open snapshot store", "path", path, "error", err)
		return
	}
	defer store.Close()

	scanID, err := store.WriteScan(root, g)
	if err != nil {
		slog.Error("failed to write snapshot", "path", path, "error", err)
		return
	}
	slog.Info("snapshot written", "path", path, "scan_id", scanID)
}
