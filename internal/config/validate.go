package config

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"cluttercutter/internal/refscan"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateScan(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateScan() error {
	if c.Scan.Processes < refscan.MinWorkers || c.Scan.Processes > refscan.MaxWorkers {
		return fmt.Errorf("scan.processes must be between %d and %d, got %d",
			refscan.MinWorkers, refscan.MaxWorkers, c.Scan.Processes)
	}
	if len(c.Scan.Extensions) == 0 {
		return errors.New("scan.extensions must not be empty")
	}
	for _, pattern := range c.Scan.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("scan.exclude contains invalid glob %q", pattern)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
