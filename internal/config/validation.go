package config

import (
	"path/filepath"
	"strings"
	"time"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/markdown"
)

// Validate checks the configuration for values the walker cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Input) == "" {
		return errors.ValidationError("input directory is required").Build()
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.ValidationError("output directory is required").Build()
	}
	if err := validateRelative("namespace", c.Namespace); err != nil {
		return err
	}
	if err := validateRelative("assets_dir", c.AssetsDir); err != nil {
		return err
	}
	if err := validateRelative("readme", c.Readme); err != nil {
		return err
	}
	for _, ext := range c.Markdown.Extensions {
		if !markdown.KnownExtension(ext) {
			return errors.ValidationError("unknown markdown extension").
				WithContext("extension", ext).
				Build()
		}
	}
	if c.Watch.Debounce != "" {
		if d, err := time.ParseDuration(c.Watch.Debounce); err != nil || d <= 0 {
			return errors.ValidationError("invalid watch debounce duration").
				WithContext("debounce", c.Watch.Debounce).
				Build()
		}
	}
	return c.validatePaths()
}

// validatePaths rejects an output directory inside the input tree; the walk
// would otherwise render its own output on the next build.
func (c *Config) validatePaths() error {
	layout, err := c.Layout()
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(layout.InputRoot, layout.OutputRoot)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return errors.ValidationError("output directory must not be inside the input directory").
			WithContext("input", layout.InputRoot).
			WithContext("output", layout.OutputRoot).
			Build()
	}
	return nil
}

func validateRelative(field, value string) error {
	if value == "" {
		return nil
	}
	clean := filepath.Clean(value)
	if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.ValidationError(field+" must be a relative path inside its root").
			WithContext(field, value).
			Build()
	}
	return nil
}
