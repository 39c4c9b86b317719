package mime

import "regexp"

var commaSeparator = regexp.MustCompile(`\s*,\s*`)

// SplitField will take a comma-separated list and return the non-empty values, without the blanks
// around them.
func SplitField(s string) []string {
	parts := commaSeparator.Split(s, -1)
	result := parts[:0]
	for _, p := range parts {
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
