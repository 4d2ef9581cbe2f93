// Package config loads the docsite YAML configuration.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
	"git.home.luguber.info/inful/docsite/internal/logfields"
	"git.home.luguber.info/inful/docsite/internal/markdown"
	"git.home.luguber.info/inful/docsite/internal/paths"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "docsite.yaml"

// Config represents the application configuration
type Config struct {
	Input     string `yaml:"input"`
	Output    string `yaml:"output"`
	Namespace string `yaml:"namespace,omitempty"` // Subdirectory of output receiving pages and the index
	AssetsDir string `yaml:"assets_dir,omitempty"`
	Readme    string `yaml:"readme,omitempty"`
	Template  string `yaml:"template,omitempty"` // Empty selects the built-in layout
	Clean     bool   `yaml:"clean"`              // Remove the site root before each build
	// MetricsFile receives Prometheus text-format metrics after each build.
	MetricsFile string         `yaml:"metrics_file,omitempty"`
	Markdown    MarkdownConfig `yaml:"markdown"`
	Watch       WatchConfig    `yaml:"watch"`
}

// MarkdownConfig configures the goldmark engine.
type MarkdownConfig struct {
	Extensions []string `yaml:"extensions,omitempty"`
	SafeMode   bool     `yaml:"safe_mode"` // Drop raw HTML instead of passing it through
	// Highlight colors fenced code blocks with chroma; unset means on.
	Highlight *bool `yaml:"highlight,omitempty"`
}

// HighlightEnabled reports whether fenced code blocks are highlighted.
func (m MarkdownConfig) HighlightEnabled() bool {
	return m.Highlight == nil || *m.Highlight
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `yaml:"debounce,omitempty"` // Go duration, e.g. "300ms"
}

// Load loads configuration from the specified file. A missing file is not an
// error: the defaults are returned instead.
func Load(configPath string) (*Config, error) {
	files, err := loadEnvFiles(".")
	if err != nil {
		slog.Warn("Failed to load env file", logfields.Error(err))
	}
	for _, file := range files {
		slog.Debug("Loaded environment variables", logfields.File(file))
	}

	cfg := Default()

	// #nosec G304 -- the config path is chosen by the operator.
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		slog.Debug("Configuration file not found, using defaults", logfields.Path(configPath))
		return cfg, nil
	}
	if err != nil {
		return nil, errors.ConfigError("failed to read config file").WithCause(err).
			WithContext("path", configPath).
			Build()
	}

	// Expand environment variables in the YAML content
	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, errors.ConfigError("failed to unmarshal config").WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Layout converts the configuration into an absolute paths.Layout.
func (c *Config) Layout() (paths.Layout, error) {
	input, err := filepath.Abs(c.Input)
	if err != nil {
		return paths.Layout{}, errors.ConfigError("resolve input directory").WithCause(err).WithContext("path", c.Input).Build()
	}
	output, err := filepath.Abs(c.Output)
	if err != nil {
		return paths.Layout{}, errors.ConfigError("resolve output directory").WithCause(err).WithContext("path", c.Output).Build()
	}
	namespace := strings.TrimSpace(c.Namespace)
	if namespace != "" {
		namespace = filepath.Clean(namespace)
	}
	return paths.Layout{
		InputRoot:  input,
		OutputRoot: output,
		Namespace:  namespace,
		AssetsDir:  c.AssetsDir,
		Readme:     c.Readme,
		Template:   c.Template,
	}, nil
}

// PipelineOptions returns the markdown engine options.
func (c *Config) PipelineOptions() markdown.Options {
	return markdown.Options{
		Extensions: c.Markdown.Extensions,
		SafeMode:   c.Markdown.SafeMode,
		Highlight:  c.Markdown.HighlightEnabled(),
	}
}

// DebounceDuration parses Watch.Debounce, falling back to DefaultDebounce.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return DefaultDebounce
	}
	return d
}

// Init creates a new configuration file with example content
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			Build()
	}

	example := Default()
	example.Markdown.Extensions = append([]string(nil), markdown.DefaultExtensions...)
	highlight := true
	example.Markdown.Highlight = &highlight

	data, err := yaml.Marshal(example)
	if err != nil {
		return errors.InternalError("failed to marshal config").WithCause(err).Build()
	}
	data = append([]byte(exampleHeader), data...)

	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		return errors.FileSystemError("failed to write config file").WithCause(err).
			WithContext("path", configPath).
			Build()
	}
	return nil
}

const exampleHeader = `# docsite configuration
#
# input:        markdown tree to render; must contain the readme
# output:       site root; pages mirror the input tree, indexes.json is written alongside
# namespace:    optional subdirectory of output for pages and the index
# template:     html/template layout path; empty uses the built-in layout
# metrics_file: write Prometheus text-format metrics here after each build
# markdown.highlight: chroma syntax highlighting for fenced code (untagged fences are bash)
# Values may reference environment variables (${VAR}); .env and .env.local are loaded first.

`
