package gpxutils

import (
	"fmt"
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Filename builds the default output filename for a processed tour: the
// sanitized tour name, the total elevation gain and markers for the
// transformations that were applied.
func Filename(name string, gain int, simplified, smoothed bool) string {
	var b strings.Builder

	b.WriteString(SanitizeFilename(name))
	fmt.Fprintf(&b, "_D%dm", gain)
	if simplified {
		b.WriteString("_simplified")
	}
	if smoothed {
		b.WriteString("_smoothed")
	}
	b.WriteString(".gpx")

	return b.String()
}

// SanitizeFilename replaces characters that are unsafe in filenames with
// underscores.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}
