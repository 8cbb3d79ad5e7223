package repl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config controls the interactive loop's presentation.
type Config struct {
	Prompt string `toml:"prompt"`
	Color  bool   `toml:"color"`
}

// DefaultConfig returns the out-of-the-box REPL settings.
func DefaultConfig() Config {
	return Config{
		Prompt: "calc> ",
		Color:  true,
	}
}

// LoadConfig reads a TOML config file on top of the defaults. With an
// empty path it falls back to ncalc/config.toml under the user config
// directory; a missing file there is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := os.UserConfigDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "ncalc", "config.toml")
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}

	return cfg, nil
}
