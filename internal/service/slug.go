package service

import (
	"regexp"
	"strings"
)

var (
	slugPattern  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	slugSquasher = regexp.MustCompile(`[^a-z0-9]+`)
)

// Slugify derives a URL-safe slug from a display name using the same
// lowercase-and-hyphenate rule the admin screen applies:
// "Luxury Lodge" → "luxury-lodge".
func Slugify(name string) string {
	s := slugSquasher.ReplaceAllString(strings.ToLower(name), "-")
	return strings.Trim(s, "-")
}

// validSlug reports whether s is a well-formed slug.
func validSlug(s string) bool {
	return slugPattern.MatchString(s)
}
