package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateExtract()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("logging.format must be \"json\" or \"pretty\", got %q", c.Logging.Format)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateExtract() error {
	if c.Extract.OutputDir == "" {
		return errors.New("extract.output_dir must be set")
	}
	if c.Extract.MaxArtworkSize < 0 {
		return errors.New("extract.max_artwork_size must be zero or positive")
	}
	if c.Extract.Workers < 0 {
		return errors.New("extract.workers must be zero or positive")
	}
	return nil
}
