package job

import "strings"

// slugify lowercases the title and collapses every run of
// non-alphanumeric characters into a single hyphen.
func slugify(title string) string {
	lower := strings.ToLower(strings.TrimSpace(title))
	parts := strings.FieldsFunc(lower, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	})
	return strings.Join(parts, "-")
}
