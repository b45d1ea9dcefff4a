package engine

import "strings"

// Normalize produces the canonical comparison key for user and catalog text:
// lower-cased, surrounding whitespace stripped, internal spaces removed, and
// the literal ampersand replaced with "and". "AI & ML", "ai and ml" and
// "AI&ML" all collapse to the same key. Idempotent; empty input stays empty.
func Normalize(text string) string {
	key := strings.ToLower(strings.TrimSpace(text))
	key = strings.Join(strings.Fields(key), "")
	key = strings.ReplaceAll(key, "&", "and")
	return key
}
