// Package config loads recipebox's TOML configuration, applies defaults and
// environment overrides, and validates the result.
package config
