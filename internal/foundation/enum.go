// Package foundation holds small generic helpers shared across packages.
package foundation

import "strings"

func defaultNormalizer(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Normalizer maps case-insensitive, whitespace-tolerant strings onto enum values.
type Normalizer[T comparable] struct {
	validValues  map[string]T
	defaultValue T
}

// NewNormalizer creates a normalizer with a map of valid string->value pairs.
func NewNormalizer[T comparable](values map[string]T, defaultValue T) *Normalizer[T] {
	normalized := make(map[string]T, len(values))
	for k, v := range values {
		normalized[defaultNormalizer(k)] = v
	}

	return &Normalizer[T]{
		validValues:  normalized,
		defaultValue: defaultValue,
	}
}

// Normalize converts raw to the enum value, or the default if unrecognized.
func (n *Normalizer[T]) Normalize(raw string) T {
	if value, ok := n.Lookup(raw); ok {
		return value
	}
	return n.defaultValue
}

// Lookup converts raw to the enum value and reports whether it was recognized.
func (n *Normalizer[T]) Lookup(raw string) (T, bool) {
	value, ok := n.validValues[defaultNormalizer(raw)]
	return value, ok
}
