// Package sanitize wraps the HTML policies applied to text-note content.
// Notes accept a small rich-text subset on the way in; rendering and
// plain-text contexts strip markup entirely.
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// Content sanitizes user-supplied note markup for storage
func Content(s string) string {
	return ugc.Sanitize(s)
}

// Plain strips all markup and entities, for rendering text into images
func Plain(s string) string {
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
