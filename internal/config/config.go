// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. The flag surface is intentionally small (-t, -f, -v) and there
// is no config file and no environment lookup beyond terminal detection.
package config

import (
	"errors"
	"strings"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Dir is the directory whose files are processed. The CLI always sets
	// this to the current working directory; it is a field so the pipeline
	// can be pointed at a fixture directory in tests.
	Dir string

	// TimeFromEXIF enables metadata-based date resolution (-t). When the
	// metadata chain finds nothing the resolver falls back to ctime.
	TimeFromEXIF bool

	// Force relaxes the "already correctly stamped" and "already contains
	// date" skip rules so suffixes are re-normalized (-f).
	Force bool

	// Verbose enables per-file trace output (-v).
	Verbose bool
}

// DefaultConfig returns a Config with all defaults: process the current
// directory, ctime-only dating, no forced reprocessing, quiet output.
func DefaultConfig() Config {
	return Config{
		Dir: ".",
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Dir == "" {
		return errors.New("working directory must not be empty")
	}
	return nil
}
