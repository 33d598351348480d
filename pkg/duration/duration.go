// Package duration converts between the metadata provider's ISO 8601 video
// durations, display clock strings and plain seconds.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var isoRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseISO returns the total seconds of an ISO 8601 duration like "PT24M35S".
// Malformed input yields 0.
func ParseISO(s string) int {
	m := isoRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	total := 0
	if m[1] != "" {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 3600
		}
	}
	if m[2] != "" {
		if min, err := strconv.Atoi(m[2]); err == nil {
			total += min * 60
		}
	}
	if m[3] != "" {
		if sec, err := strconv.Atoi(m[3]); err == nil {
			total += sec
		}
	}
	return total
}

// FormatClock renders seconds as "m:ss" or "h:mm:ss".
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// ISOToClock converts an ISO 8601 duration directly to its display form.
func ISOToClock(iso string) string {
	return FormatClock(ParseISO(iso))
}

// ParseClock returns the total seconds of a "m:ss" or "h:mm:ss" string.
// Malformed input yields 0.
func ParseClock(s string) int {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0
		}
		return m*60 + sec
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return h*3600 + m*60 + sec
	default:
		return 0
	}
}
