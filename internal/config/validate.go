package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateStorage() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be one of json, sqlite, memory (got %q)", c.Storage.Backend)
	}
	if c.Storage.MaxBytes <= 0 {
		return errors.New("storage.max_bytes must be positive")
	}
	if strings.ContainsAny(c.Storage.Key, `/\`) {
		return fmt.Errorf("storage.key %q must not contain path separators", c.Storage.Key)
	}
	return nil
}

func (c *Config) validateUI() error {
	switch c.UI.Theme {
	case "", "dark", "light", "mono":
		return nil
	}
	return fmt.Errorf("ui.theme must be dark, light or mono (got %q)", c.UI.Theme)
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("logging.level must be debug, info, warn or error (got %q)", c.Logging.Level)
}
