package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docsite/internal/config"
	"git.home.luguber.info/inful/docsite/internal/foundation"
	"git.home.luguber.info/inful/docsite/internal/logfields"
)

// LogLevelEnv overrides the log level chosen by --verbose.
const LogLevelEnv = "DOCSITE_LOG_LEVEL"

// Global context passed to subcommands.
type Global struct {
	// Out receives user-facing messages.
	Out io.Writer
}

// NewGlobal returns the Global used by the docsite binary.
func NewGlobal() *Global {
	return &Global{Out: os.Stdout}
}

// CLI definition & global flags - used by commands that need access to root config.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docsite.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build BuildCmd `cmd:"" help:"Render the input tree and write the search index"`
	Watch WatchCmd `cmd:"" help:"Build, then rebuild whenever the input tree changes"`
	Init  InitCmd  `cmd:"" help:"Initialize a new configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel returns debug when verbose is set; LogLevelEnv wins over both.
func parseLogLevel(verbose bool) slog.Level {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if override, ok := logLevels.Lookup(os.Getenv(LogLevelEnv)); ok {
		level = override
	}
	return level
}

var logLevels = foundation.NewNormalizer(map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}, slog.LevelInfo)

// SiteFlags are the config overrides shared by build and watch.
type SiteFlags struct {
	Input       string `short:"i" help:"Input directory (overrides config input)"`
	Output      string `short:"o" help:"Output directory (overrides config output)"`
	Namespace   string `help:"Subdirectory of the output receiving pages and the index"`
	Template    string `short:"t" help:"Page template path (html/template)"`
	Clean       bool   `help:"Remove the site root before building"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus text-format metrics to this file after each build"`
}

// loadConfig reads the config file, applies flag overrides and validates.
func loadConfig(root *CLI, flags SiteFlags) (*config.Config, error) {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return nil, err
	}
	applyOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("Configuration loaded",
		logfields.Path(cfg.Input),
		logfields.Output(cfg.Output),
		slog.String("namespace", cfg.Namespace))
	return cfg, nil
}

func applyOverrides(cfg *config.Config, flags SiteFlags) {
	if flags.Input != "" {
		cfg.Input = flags.Input
	}
	if flags.Output != "" {
		cfg.Output = flags.Output
	}
	if flags.Namespace != "" {
		cfg.Namespace = flags.Namespace
	}
	if flags.Template != "" {
		cfg.Template = flags.Template
	}
	if flags.Clean {
		cfg.Clean = true
	}
	if flags.MetricsFile != "" {
		cfg.MetricsFile = flags.MetricsFile
	}
}
