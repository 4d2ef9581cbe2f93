package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// unsetForTest clears key for the duration of the test.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoadEnvFiles_LocalOverridesBase(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DOCSITE_ENV_A=base\nDOCSITE_ENV_B=base\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DOCSITE_ENV_B=local\n"), 0o600))
	unsetForTest(t, "DOCSITE_ENV_A")
	unsetForTest(t, "DOCSITE_ENV_B")

	files, err := loadEnvFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, ".env"), filepath.Join(dir, ".env.local")}, files)
	require.Equal(t, "base", os.Getenv("DOCSITE_ENV_A"))
	require.Equal(t, "local", os.Getenv("DOCSITE_ENV_B"))
}

func TestLoadEnvFiles_KeepsProcessEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("DOCSITE_ENV_C=file\n"), 0o600))
	t.Setenv("DOCSITE_ENV_C", "process")

	files, err := loadEnvFiles(dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, ".env.local")}, files)
	require.Equal(t, "process", os.Getenv("DOCSITE_ENV_C"))
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	files, err := loadEnvFiles(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, files)
}
