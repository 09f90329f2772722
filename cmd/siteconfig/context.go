package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/baskeboler/siteconfig"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     siteconfig.SiteConfig
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

// ensureConfig returns the built-in site, or the file named by --config.
func (c *commandContext) ensureConfig() (siteconfig.SiteConfig, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		if path == "" {
			c.config = siteconfig.Site()
			return
		}
		cfg, err := siteconfig.LoadFile(path)
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) logger(w io.Writer) (*slog.Logger, error) {
	level := "info"
	if c.logLevelFlag != nil {
		level = *c.logLevelFlag
	}
	return newLogger(w, level)
}
