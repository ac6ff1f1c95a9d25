package normalize

import "strings"

// Normalize collapses every run of whitespace into a single ASCII space and
// trims leading/trailing whitespace. Empty input stays empty.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
