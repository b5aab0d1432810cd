// Package htmlsanitize strips markup from user-supplied text before it
// is rendered. Note content and profile descriptions come back from
// the backend exactly as other users typed them; everything passes
// through here on the way into a template.
package htmlsanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML, leaving plain text.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}
