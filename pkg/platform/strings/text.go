// Package strings holds the small text helpers shared by the directory
// loader, the router and the message composer.
package strings

import (
	"strings"
)

// Fold lowercases s and collapses every run of whitespace to one space, so
// "  Spokane\tCounty " and "spokane county" compare equal.
func Fold(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// DedupeAndTrim removes duplicates and blanks, trimming each element.
// Order is preserved.
//
//	DedupeAndTrim([]string{"  Spokane ", "Ferry", "Spokane", ""})
//	// []string{"Spokane", "Ferry"}
func DedupeAndTrim(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}
	return result
}

// Ellipsis is appended by Truncate. It is ASCII so it costs one GSM-7
// character per dot in an SMS.
const Ellipsis = "..."

// Truncate shortens s to at most max runes, replacing the tail with
// Ellipsis when anything was cut. A max too small for the ellipsis returns
// a hard cut.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= len(Ellipsis) {
		return string(runes[:max])
	}
	return strings.TrimRight(string(runes[:max-len(Ellipsis)]), " ,") + Ellipsis
}
