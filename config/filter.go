package config

import "strings"

// ShouldIncludeTable reports whether the named table passes the
// configured include/exclude patterns. Exclude patterns are evaluated
// first and short-circuit; a table is included only if at least one
// include pattern matches. With no patterns configured every table is
// included.
func (c *Config) ShouldIncludeTable(name string) bool {
	p := c.Generation.TableNamePatterns
	if p == nil {
		return true
	}
	for _, pattern := range p.Exclude {
		if matchesPattern(name, pattern) {
			return false
		}
	}
	for _, pattern := range p.Include {
		if matchesPattern(name, pattern) {
			return true
		}
	}
	return false
}

// matchesPattern implements the four supported wildcard forms: "*"
// matches everything, "*x*" is containment, "x*" is prefix, "*x" is
// suffix. A pattern without a wildcard is an exact match.
func matchesPattern(text, pattern string) bool {
	if pattern == "*" {
		return true
	}
	if !strings.Contains(pattern, "*") {
		return text == pattern
	}
	switch {
	case strings.HasPrefix(pattern, "*") && strings.HasSuffix(pattern, "*"):
		return strings.Contains(text, pattern[1:len(pattern)-1])
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(text, pattern[1:])
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(text, pattern[:len(pattern)-1])
	default:
		return text == pattern
	}
}
