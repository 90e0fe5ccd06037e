// internal/schema/video.go
//
// Thumbnail derivation for VideoObject documents.
//
// When a campaign video row has no explicit thumbnail we try to extract
// the platform video ID from the source URL and point at the platform's
// predictable thumbnail endpoint.  Unrecognized URLs yield "", and the
// caller omits the field.
package schema

import "regexp"

// Recognized source-URL shapes.
var (
	youtubeRe = regexp.MustCompile(`(?:youtube\.com/(?:watch\?v=|embed/|shorts/)|youtu\.be/)([A-Za-z0-9_-]{6,16})`)
	vimeoRe   = regexp.MustCompile(`vimeo\.com/(?:video/)?(\d+)`)
)

// deriveThumbnail maps a video URL to a platform thumbnail URL, or "".
func deriveThumbnail(videoURL string) string {
	if m := youtubeRe.FindStringSubmatch(videoURL); m != nil {
		return "https://img.youtube.com/vi/" + m[1] + "/hqdefault.jpg"
	}
	if m := vimeoRe.FindStringSubmatch(videoURL); m != nil {
		return "https://vumbnail.com/" + m[1] + ".jpg"
	}
	return ""
}
