// Package markup detects injected-script fragments in untrusted strings.
//
// The check is a substring heuristic run at the input boundary. It does not
// parse HTML and misses obfuscated payloads (entity-encoded tags, whitespace
// before '=' in handler attributes, and so on); output encoding stays the
// renderer's job.
package markup

import "strings"

// patterns are matched against the lower-cased input.
var patterns = [...]string{
	"<script",
	"javascript:",
	"onerror=",
	"onload=",
	"<iframe",
	"<embed",
	"<object",
	"onclick=",
	"onmouseover=",
}

// ContainsSuspiciousMarkup reports whether input contains any known
// script-injection fragment, case-insensitively. Empty input is safe.
func ContainsSuspiciousMarkup(input string) bool {
	if input == "" {
		return false
	}
	lower := strings.ToLower(input)
	for _, p := range patterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// Field names a value for FirstSuspicious.
type Field struct {
	Name  string
	Value string
}

// FirstSuspicious returns the name of the first field whose value is flagged.
func FirstSuspicious(fields ...Field) (string, bool) {
	for _, f := range fields {
		if ContainsSuspiciousMarkup(f.Value) {
			return f.Name, true
		}
	}
	return "", false
}
