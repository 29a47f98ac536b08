// Package linkedin extracts canonical profile handles from LinkedIn URLs.
// The handle doubles as the deduplication key for imports.
package linkedin

import "strings"

const profileMarker = "linkedin.com/in/"

// ExtractUsername returns the path segment between "linkedin.com/in/" and the
// next '/', '?', or end of string. Empty string when the URL is absent,
// malformed, or not a profile URL.
func ExtractUsername(url string) string {
	idx := strings.Index(url, profileMarker)
	if idx < 0 {
		return ""
	}
	rest := url[idx+len(profileMarker):]
	if end := strings.IndexAny(rest, "/?"); end >= 0 {
		rest = rest[:end]
	}
	return rest
}

// IsProfileURL reports whether the raw string contains the profile marker at all.
func IsProfileURL(url string) bool {
	return strings.Contains(url, profileMarker)
}

// CanonicalURL rebuilds the normalized profile URL from a handle, discarding
// whatever formatting the original input carried.
func CanonicalURL(username string) string {
	return "https://www.linkedin.com/in/" + username
}
