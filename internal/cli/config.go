package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the file-backed defaults for CLI flags.
// Every field is optional; missing keys keep their defaults and explicit
// command-line flags always win.
type Config struct {
	// Verbose enables debug-level logging, like --verbose.
	Verbose bool `toml:"verbose"`

	// Rankdir sets the default layout direction for render: "TB", "LR",
	// "BT", or "RL".
	Rankdir string `toml:"rankdir"`

	// Detailed includes node metadata in rendered labels by default.
	Detailed bool `toml:"detailed"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() Config {
	return Config{Rankdir: "TB"}
}

// loadConfig reads the TOML configuration at path. A missing file or an
// empty path is not an error; it yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
