// Copyright 2026 The Skylift Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package config models the server's common-options block: the handful of
// settings shared by the CLI and by anything that embeds the server
// (cache location, worker sizing, flag-strictness). Kept separate from
// cmd/skylift-server so a future embedder can construct one programmatically
// instead of via flags.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Config is the common-options block spec.md §6 says the server binary
// "inherits cache configuration from."
type Config struct {
	// Host is the listen address for the gRPC server, e.g. "127.0.0.1:1337".
	Host string

	// CacheEnabled toggles the artifact cache. When false, BuildModule always
	// recomputes, matching the Rust prototype's `cache` Cargo feature gate
	// (spec.md §4.4 "feature-gated").
	CacheEnabled bool

	// CacheDir is the backing directory for the flat-file cache store.
	CacheDir string

	// StrictFlags is registered as the --strict-flags option and defaults to
	// true. No code path reads it: the server performs no local/remote
	// flag-map comparison, so the setting has no effect on behavior.
	StrictFlags bool

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string
}

// Default returns the configuration the server starts with before flags are
// parsed.
func Default() Config {
	return Config{
		Host:         "127.0.0.1:1337",
		CacheEnabled: true,
		CacheDir:     "skylift-cache",
		StrictFlags:  true,
		LogLevel:     "info",
	}
}

// AddFlags registers the common-options block onto fs, the way the teacher's
// cmd/flags.go registers one flag per option rather than a single opaque
// struct flag.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Host, "host", c.Host, "address the gRPC server listens on")
	fs.BoolVar(&c.CacheEnabled, "cache", c.CacheEnabled, "enable the content-addressed artifact cache")
	fs.StringVar(&c.CacheDir, "cache-dir", c.CacheDir, "directory backing the artifact cache")
	fs.BoolVar(&c.StrictFlags, "strict-flags", c.StrictFlags, "accepted but unused: no local/remote compiler flag comparison is performed")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
}

// Validate rejects configurations that would fail later in a more confusing
// way (e.g. deep inside the cache store).
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.CacheEnabled && c.CacheDir == "" {
		return fmt.Errorf("cache-dir must not be empty when cache is enabled")
	}
	return nil
}
