package domain

import "regexp"

// Matches the common YouTube URL shapes with or without scheme/www:
// watch?v=ID, youtu.be/ID, embed/ID, v/ID. The capture group is the
// 11-character video identifier; everything after it is ignored.
var videoIDRe = regexp.MustCompile(
	`(?:https?://)?(?:www\.)?(?:youtube\.com/(?:[^/\n\s]+/\S+/|(?:v|e(?:mbed)?)/|\S*?[?&]v=)|youtu\.be/)([A-Za-z0-9_-]{11})`,
)

// ExtractVideoID pulls the video identifier out of an arbitrary URL
// string. First match wins; no check that the video actually exists.
func ExtractVideoID(rawURL string) (string, bool) {
	m := videoIDRe.FindStringSubmatch(rawURL)
	if m == nil {
		return "", false
	}
	return m[1], true
}
