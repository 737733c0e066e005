package utils

import "github.com/microcosm-cc/bluemonday"

// Profile fields are plain text; strip all markup rather than allowing a UGC subset.
var sanitizer = bluemonday.StrictPolicy()

// Sanitize cleans user-supplied text to prevent stored XSS.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
