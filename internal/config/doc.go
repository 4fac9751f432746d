// Package config loads and merges linesift configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (LINESIFT_NEGATE, LINESIFT_ENGINE, LINESIFT_BUFFERED, LINESIFT_LOG_LEVEL)
//  3. Config file ($XDG_CONFIG_HOME/linesift/config.json, or --config)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged, validated [Config].
package config
