// Package wordcount derives word counts from post content. Counts are never
// persisted; callers recompute them at serialization time.
package wordcount

import "strings"

// Count returns the number of whitespace-delimited tokens in text.
// Empty and whitespace-only input yields 0.
func Count(text string) int {
	return len(strings.Fields(text))
}
