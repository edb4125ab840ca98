// Package config loads unholyc's optional driver configuration file.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the driver-level configuration read from a TOML file passed
// via --config. internal/syntax never reads it. FutureReservedFatal instead
// decides whether the driver passes syntax.WithFutureReservedHandler to the
// scanner; with that handler installed the scanner reports a future-reserved
// word as a plain identifier and the driver logs a warning, instead of the
// fatal lexical error.
type Config struct {
	// ASTFormat is the default output format for `unholyc parse`: "text"
	// or "json".
	ASTFormat string `toml:"ast_format"`
	// FutureReservedFatal controls whether the driver aborts (true, the
	// default) or merely warns (false) when it encounters a
	// future-reserved identifier.
	FutureReservedFatal bool `toml:"future_reserved_fatal"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{ASTFormat: "text", FutureReservedFatal: true}
}

// Load reads and parses the TOML file at path, starting from Default() so
// a partial file only overrides the fields it sets.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
