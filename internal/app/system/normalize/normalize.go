// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email lowercases and trims an email address for comparison and for
// sending to the backend.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims surrounding whitespace from a display name or title.
func Name(s string) string {
	return strings.TrimSpace(s)
}

// Role lowercases a group role so gate checks compare consistently.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
