// Package config loads, normalizes, and validates coverart CLI settings.
//
// Settings come from repository defaults, then an optional TOML file, then
// environment overrides (COVERART_LOG_LEVEL). Command-line flags are applied
// on top by the caller.
package config
