package entry

import (
	"fmt"
	"regexp"
)

const videoIdLength = 11

var videoIdPattern = regexp.MustCompile(`^.*(youtu\.be/|v/|u/\w/|embed/|watch\?v=|&v=)([^#&?]*).*`)

// Extracts the YouTube video ID from a link.
// Returns false when the link has no valid ID.
func VideoID(url string) (string, bool) {
	match := videoIdPattern.FindStringSubmatch(url)
	if match == nil || len(match[2]) != videoIdLength {
		return "", false
	}
	return match[2], true
}

// Returns the preview image URL of a YouTube link or an
// empty string when the link has no video ID
func ThumbnailURL(url string) string {
	id, ok := VideoID(url)
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/mqdefault.jpg", id)
}

// Returns the embeddable player URL of a YouTube link or an
// empty string when the link has no video ID
func EmbedURL(url string) string {
	id, ok := VideoID(url)
	if !ok {
		return ""
	}
	return fmt.Sprintf("https://www.youtube.com/embed/%s", id)
}
