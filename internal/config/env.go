package config

import (
	"maps"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// envFiles are read in order; a later file overrides an earlier one.
var envFiles = []string{".env", ".env.local"}

// loadEnvFiles reads every env file present in dir and exports the merged
// values. Variables already set in the process environment are not
// overwritten. It returns the files that were read.
func loadEnvFiles(dir string) ([]string, error) {
	merged := map[string]string{}
	var loaded []string
	for _, name := range envFiles {
		envPath := filepath.Join(dir, name)
		if _, err := os.Stat(envPath); err != nil {
			continue
		}
		values, err := godotenv.Read(envPath)
		if err != nil {
			return loaded, err
		}
		maps.Copy(merged, values)
		loaded = append(loaded, envPath)
	}

	for key, value := range merged {
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return loaded, err
		}
	}
	return loaded, nil
}
