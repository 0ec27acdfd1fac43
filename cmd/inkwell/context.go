package main

import (
	"log/slog"
	"strings"
	"sync"

	"inkwell/internal/config"
	"inkwell/internal/generate"
	"inkwell/internal/logging"
	"inkwell/internal/project"
	"inkwell/internal/runlog"
	"inkwell/internal/services/llm"
)

// commandContext carries lazily constructed shared state across commands.
// Everything is rebuilt from the filesystem on each invocation; no state
// survives between runs of the binary.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		c.logger, c.loggerErr = logging.NewFromConfig(cfg)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) projectStore() (*project.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return project.NewStore(cfg.Paths.ProjectsRoot), nil
}

// openRunlog opens the run-history store. History is informational only, so
// callers treat a nil store as "skip recording".
func (c *commandContext) openRunlog() *runlog.Store {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil
	}
	store, err := runlog.Open(cfg.Paths.LogDir)
	if err != nil {
		if logger, logErr := c.ensureLogger(); logErr == nil {
			logger.Warn("open run history", "error", err)
		}
		return nil
	}
	return store
}

func (c *commandContext) newRunner(runs *runlog.Store) (*generate.Runner, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client := llm.NewClient(llm.Config{
		APIKey:         cfg.LLM.APIKey,
		BaseURL:        cfg.LLM.BaseURL,
		Model:          cfg.LLM.Model,
		Referer:        cfg.LLM.Referer,
		Title:          cfg.LLM.Title,
		TimeoutSeconds: cfg.LLM.TimeoutSeconds,
	})
	return generate.NewRunner(client, logger, runs), nil
}
