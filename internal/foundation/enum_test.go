package foundation

import "testing"

func TestNormalizer(t *testing.T) {
	normalizer := NewNormalizer(map[string]string{
		"debug": "debug",
		"Warn":  "warn",
		"error": "error",
	}, "info")

	t.Run("Valid values", func(t *testing.T) {
		if normalizer.Normalize("DEBUG") != "debug" {
			t.Error("Expected 'DEBUG' to normalize to 'debug'")
		}
		if normalizer.Normalize(" warn ") != "warn" {
			t.Error("Expected ' warn ' to normalize to 'warn'")
		}
	})

	t.Run("Invalid value", func(t *testing.T) {
		if normalizer.Normalize("trace") != "info" {
			t.Error("Expected 'trace' to return default 'info'")
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		if _, ok := normalizer.Lookup("invalid"); ok {
			t.Error("Expected lookup of invalid value to fail")
		}
		if v, ok := normalizer.Lookup("Error"); !ok || v != "error" {
			t.Errorf("Expected 'Error' to resolve, got %q, %v", v, ok)
		}
	})
}
