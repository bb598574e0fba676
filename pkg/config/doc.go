// Package config handles configuration management for diinject.
// It layers the embedded defaults, an optional TOML or YAML file and
// DIINJECT_* environment variables, in that order.
package config
