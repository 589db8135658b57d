package task

import "strings"

// ParseTags splits a comma-separated list into tags, trimming whitespace
// around each element. An empty input yields no tags.
func ParseTags(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tags = append(tags, strings.TrimSpace(part))
	}
	return tags
}
