// file: utils/slug.go
package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalid   = regexp.MustCompile(`[^\w\s-]`)
	slugSeparator = regexp.MustCompile(`[\s_-]+`)
	slugTrim      = regexp.MustCompile(`^-+|-+$`)
)

// GenerateSlug turns a title into a URL-safe slug.
func GenerateSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugSeparator.ReplaceAllString(s, "-")
	return slugTrim.ReplaceAllString(s, "")
}
