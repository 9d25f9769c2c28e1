package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeStorage(); err != nil {
		return err
	}
	c.normalizeUI()
	return c.normalizeLogging()
}

func (c *Config) normalizeStorage() error {
	if value, ok := os.LookupEnv("RECIPEBOX_DATA_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Storage.DataDir = value
	}
	if value, ok := os.LookupEnv("RECIPEBOX_BACKEND"); ok && strings.TrimSpace(value) != "" {
		c.Storage.Backend = value
	}

	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	if c.Storage.Backend == "" {
		c.Storage.Backend = defaultBackend
	}
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		c.Storage.DataDir = defaultDataDir
	}
	var err error
	if c.Storage.DataDir, err = expandPath(c.Storage.DataDir); err != nil {
		return fmt.Errorf("storage.data_dir: %w", err)
	}
	c.Storage.Key = strings.TrimSpace(c.Storage.Key)
	if c.Storage.Key == "" {
		c.Storage.Key = defaultKey
	}
	return nil
}

func (c *Config) normalizeUI() {
	c.UI.Theme = strings.ToLower(strings.TrimSpace(c.UI.Theme))
}

func (c *Config) normalizeLogging() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.File = strings.TrimSpace(c.Logging.File)
	if !c.LogsToFile() {
		return nil
	}
	var err error
	if c.Logging.File, err = expandPath(c.Logging.File); err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	return nil
}
