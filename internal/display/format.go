// Package display provides the banner and small output formatting helpers.
package display

import (
	"fmt"
	"time"
)

// Pluralize returns "N singular" or "N plural".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// FormatTimestamp renders a resolved capture timestamp for diagnostics.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
