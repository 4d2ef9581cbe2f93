package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docsite/internal/foundation/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, DefaultInput, cfg.Input)
	require.Equal(t, DefaultOutput, cfg.Output)
	require.Equal(t, "assets", cfg.AssetsDir)
	require.Equal(t, "README.md", cfg.Readme)
	require.True(t, cfg.PipelineOptions().Highlight)
}

func TestLoad_ParsesFields(t *testing.T) {
	path := writeConfig(t, `
input: ./content
output: ./public
namespace: code
template: layouts/page.html
clean: true
metrics_file: docsite.prom
markdown:
  extensions: [gfm, typographer]
  safe_mode: true
  highlight: false
watch:
  debounce: 1s
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "./content", cfg.Input)
	require.Equal(t, "./public", cfg.Output)
	require.Equal(t, "code", cfg.Namespace)
	require.Equal(t, "layouts/page.html", cfg.Template)
	require.True(t, cfg.Clean)
	require.Equal(t, "docsite.prom", cfg.MetricsFile)
	require.Equal(t, []string{"gfm", "typographer"}, cfg.Markdown.Extensions)
	require.True(t, cfg.PipelineOptions().SafeMode)
	require.False(t, cfg.PipelineOptions().Highlight)
	require.Equal(t, time.Second, cfg.DebounceDuration())
	require.Equal(t, "assets", cfg.AssetsDir)
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("DOCSITE_TEST_OUT", "/tmp/docsite-out")
	path := writeConfig(t, "output: ${DOCSITE_TEST_OUT}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/tmp/docsite-out", cfg.Output)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "input: [unclosed\n")

	_, err := Load(path)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestLayout_AbsolutePaths(t *testing.T) {
	cfg := Default()
	cfg.Namespace = "code/"

	layout, err := cfg.Layout()
	require.NoError(t, err)
	require.True(t, filepath.IsAbs(layout.InputRoot))
	require.True(t, filepath.IsAbs(layout.OutputRoot))
	require.Equal(t, "code", layout.Namespace)

	cfg.Namespace = ""
	layout, err = cfg.Layout()
	require.NoError(t, err)
	require.Empty(t, layout.Namespace)
}

func TestDebounceDuration_Fallback(t *testing.T) {
	cfg := Default()
	require.Equal(t, DefaultDebounce, cfg.DebounceDuration())
	cfg.Watch.Debounce = "nonsense"
	require.Equal(t, DefaultDebounce, cfg.DebounceDuration())
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsite.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, DefaultInput, cfg.Input)
	require.Equal(t, []string{"gfm", "footnote", "definition"}, cfg.Markdown.Extensions)
	require.NotNil(t, cfg.Markdown.Highlight)
	require.True(t, *cfg.Markdown.Highlight)
	require.NoError(t, cfg.Validate())

	err = Init(path, false)
	require.Error(t, err)
	require.True(t, errors.HasCategory(err, errors.CategoryConfig))

	require.NoError(t, Init(path, true))
}
