// Package shared provides common utility functions used across multiple
// packages in the devshell codebase.
package shared

import "strings"

// ShellQuote wraps value in single quotes for POSIX shells, escaping
// embedded single quotes with the '"'"' idiom.
func ShellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'"'"'`) + "'"
}

// FirstNonEmpty returns the first argument that is not blank after
// trimming, or the empty string.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
