package geolocation

import (
	"fmt"
	"strconv"
	"time"
)

// standardOffset returns the standard time offset in seconds of the
// IANA timezone given, for the year of now. The standard offset is the
// smallest of the January and July offsets, which excludes daylight saving time
// for both hemispheres.
func standardOffset(timezone string, now time.Time) (offset int, err error) {
	location, err := time.LoadLocation(timezone)
	if err != nil {
		return 0, fmt.Errorf("loading location: %w", err)
	}
	year := now.Year()
	_, januaryOffset := time.Date(year, time.January, 1, 0, 0, 0, 0, location).Zone()
	_, julyOffset := time.Date(year, time.July, 1, 0, 0, 0, 0, location).Zone()
	return min(januaryOffset, julyOffset), nil
}

// parseUTCOffset parses offsets such as "-05:00" or "+05:30"
// into a number of seconds.
func parseUTCOffset(s string) (offset int, ok bool) {
	if len(s) != len("+00:00") || s[3] != ':' {
		return 0, false
	}

	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}

	hours, err := strconv.Atoi(s[1:3])
	if err != nil || hours < 0 {
		return 0, false
	}
	minutes, err := strconv.Atoi(s[4:])
	if err != nil || minutes < 0 || minutes >= 60 { //nolint:gomnd
		return 0, false
	}

	const secondsPerHour, secondsPerMinute = 3600, 60
	return sign * (hours*secondsPerHour + minutes*secondsPerMinute), true
}
