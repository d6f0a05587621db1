// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// ScanRoots are scanned relative to the tree root given on the CLI.
	ScanRoots []string `toml:"scan_roots"`
	Exclude   Exclude  `toml:"exclude"`
	Alias     Alias    `toml:"alias"`
	Watch     Watch    `toml:"watch"`
	DB        DB       `toml:"db"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

// Alias rewrites a workspace import prefix to a location under the tree
// root, e.g. "@awork/models" -> "<root>/libs/shared/src/lib/models".
type Alias struct {
	Prefix string `toml:"prefix"`
	Target string `toml:"target"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type DB struct {
	Path string `toml:"path"`
}

// Default returns the built-in configuration used when no config file is
// present. The exclusion lists mirror the fixed denylists of the scanner.
func Default() *Config {
	return &Config{
		ScanRoots: []string{"apps/web", "apps/mobile", "libs"},
		Exclude: Exclude{
			Dirs: []string{"mocks", "__mocks__", "mocks_stubs", "tests", "environments", "i18n"},
			Files: []string{
				"*.spec.ts", "*.d.ts", "*.stories.ts", "*-stub.ts", "*mocks.ts", "*mock.ts",
			},
		},
		Alias: Alias{
			Prefix: "@awork/",
			Target: "libs/shared/src/lib",
		},
		Watch: Watch{Debounce: 500 * time.Millisecond},
	}
}

// Load reads a TOML config file, filling unset fields from Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	if len(cfg.ScanRoots) == 0 {
		cfg.ScanRoots = Default().ScanRoots
	}
	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}

	return cfg, nil
}
