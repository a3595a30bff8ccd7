// Package validation canonicalizes user-entered text so lookups compare
// normalized forms exclusively.
package validation

import "strings"

// Normalize trims surrounding whitespace and lowercases. It never fails:
// any input reduces to some string, possibly empty.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// ParseSymptoms splits a raw comma-separated symptom list into normalized
// tokens. Empty tokens are dropped, so ",,," yields an empty set.
func ParseSymptoms(raw string) []string {
	parts := strings.Split(raw, ",")
	symptoms := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := Normalize(p); s != "" {
			symptoms = append(symptoms, s)
		}
	}
	return symptoms
}
