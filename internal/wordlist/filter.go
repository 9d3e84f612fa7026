// Package wordlist provides word pool validation helpers.
package wordlist

import (
	"fmt"
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Typeable reports whether a word can be typed as a single token: non-empty
// and free of whitespace and control characters.
func Typeable(word string) bool {
	if word == "" {
		return false
	}
	return strings.IndexFunc(word, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) < 0
}

// ValidatePool checks that every word passes keep and appears once.
func ValidatePool(words []string, keep FilterFunc) error {
	if len(words) == 0 {
		return fmt.Errorf("pool is empty")
	}
	seen := make(map[string]struct{}, len(words))
	for _, word := range words {
		if !keep(word) {
			return fmt.Errorf("invalid word %q", word)
		}
		if _, ok := seen[word]; ok {
			return fmt.Errorf("duplicate word %q", word)
		}
		seen[word] = struct{}{}
	}
	return nil
}

// MinPoolSize returns the size of the smallest pool, or 0 for no pools.
func MinPoolSize(pools [][]string) int {
	if len(pools) == 0 {
		return 0
	}
	minSize := len(pools[0])
	for _, pool := range pools[1:] {
		if len(pool) < minSize {
			minSize = len(pool)
		}
	}
	return minSize
}
