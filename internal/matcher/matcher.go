package matcher

import "strings"

// Match reports whether name satisfies pattern: "*" matches everything, an
// empty pattern matches nothing, anything else matches by prefix.
func Match(pattern, name string) bool {
	if pattern == "*" {
		return true
	}
	if pattern == "" {
		return false
	}
	return strings.HasPrefix(name, pattern)
}

// MatchAny reports whether name satisfies at least one pattern.  No patterns
// matches everything.
func MatchAny(patterns []string, name string) bool {
	if len(patterns) == 0 {
		return true
	}
	for _, pattern := range patterns {
		if Match(pattern, name) {
			return true
		}
	}
	return false
}
