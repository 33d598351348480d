package youtube

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidURL marks a channel URL that matches no supported format.
var ErrInvalidURL = errors.New("invalid youtube channel url")

// ErrChannelNotFound marks a well-formed reference that resolves to no channel.
var ErrChannelNotFound = errors.New("channel not found")

var channelRefPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/@([^/\s?]+)`),
	regexp.MustCompile(`youtube\.com/channel/([^/\s?]+)`),
	regexp.MustCompile(`youtube\.com/c/([^/\s?]+)`),
	regexp.MustCompile(`youtube\.com/user/([^/\s?]+)`),
}

// ExtractChannelRef pulls a channel reference out of a YouTube URL.
// Handle-style URLs ("youtube.com/@name") return "@name"; the other formats
// return the raw identifier. Unrecognized URLs return ErrInvalidURL.
func ExtractChannelRef(url string) (string, error) {
	for i, re := range channelRefPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			if i == 0 && !strings.HasPrefix(m[1], "@") {
				return "@" + m[1], nil
			}
			return m[1], nil
		}
	}
	return "", ErrInvalidURL
}
