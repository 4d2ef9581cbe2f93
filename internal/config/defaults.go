package config

import (
	"time"

	"git.home.luguber.info/inful/docsite/internal/paths"
)

// Defaults applied to empty fields.
const (
	DefaultInput    = "./docs"
	DefaultOutput   = "./site"
	DefaultDebounce = 300 * time.Millisecond
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Input == "" {
		c.Input = DefaultInput
	}
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.AssetsDir == "" {
		c.AssetsDir = paths.DefaultAssets
	}
	if c.Readme == "" {
		c.Readme = paths.DefaultReadme
	}
	if c.Watch.Debounce == "" {
		c.Watch.Debounce = DefaultDebounce.String()
	}
}
