package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/simonhull/coverart"
	"github.com/simonhull/coverart/internal/config"
	"github.com/simonhull/coverart/internal/logger"
)

// commandContext carries root flags and lazily loaded configuration to
// subcommands.
type commandContext struct {
	configFlag    string
	logLevelFlag  string
	logFormatFlag string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(strings.TrimSpace(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}

		if c.logLevelFlag != "" {
			cfg.Logging.Level = strings.ToLower(c.logLevelFlag)
		}
		if c.logFormatFlag != "" {
			cfg.Logging.Format = strings.ToLower(c.logFormatFlag)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// logger builds the command logger writing to w.
func (c *commandContext) logger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logger.New(logger.Config{
		Writer: w,
		Format: cfg.Logging.Format,
		Level:  logger.ParseLevel(cfg.Logging.Level),
	})
}

// extractOptions maps configuration onto library options.
func extractOptions(cfg *config.Config, log *slog.Logger) []coverart.Option {
	return []coverart.Option{
		coverart.WithLogger(log),
		coverart.WithMaxArtworkSize(cfg.Extract.MaxArtworkSize),
		coverart.WithWorkers(cfg.Extract.Workers),
	}
}
