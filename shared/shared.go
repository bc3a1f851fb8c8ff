package shared

import (
	"strings"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins a key prefix and its parts, skipping empty parts.
func BuildCacheKey(prefix string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, prefix)

	for _, part := range parts {
		if part == "" {
			continue
		}

		segments = append(segments, part)
	}

	return strings.Join(segments, cacheKeySeparator)
}

// FirstNonEmpty returns the first value that is not blank.
func FirstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}

	return ""
}
