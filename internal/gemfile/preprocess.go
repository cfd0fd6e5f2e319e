package gemfile

import "strings"

// Preprocess removes the comment portion and excess spaces from a raw
// manifest line. Everything from the first '#' onward is dropped, with no
// awareness of '#' inside quoted strings. Idempotent.
func Preprocess(line string) string {
	if idx := strings.Index(line, "#"); idx >= 0 {
		line = line[:idx]
	}
	return strings.TrimSpace(line)
}
