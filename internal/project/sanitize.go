package project

import "strings"

// problematicChars are replaced with underscores so a remote URL can serve
// as a single path segment.
var problematicChars = []string{
	"/", "\\", ":", "*", "?", "\"", "<", ">", "|", " ",
	"@", "#", "$", "%", "^", "&", "+", "=", "~",
}

// Sanitize maps an arbitrary remote URL to a filesystem-safe path segment.
// The order is load-bearing: substitute denylisted characters, trim edge
// dots, then collapse internal ".." pairs so no parent-directory traversal
// segment survives. Distinct URLs may collide after sanitization.
func Sanitize(url string) string {
	sanitized := url
	for _, char := range problematicChars {
		sanitized = strings.ReplaceAll(sanitized, char, "_")
	}

	sanitized = strings.Trim(sanitized, ".")
	sanitized = strings.ReplaceAll(sanitized, "..", "_")
	return sanitized
}
