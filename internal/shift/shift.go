// Package shift implements the clock-time arithmetic used to derive worked
// hours from an employee's in and out times.
//
// A shift that ends at an earlier clock time than it started is taken to
// cross midnight exactly once, so durations are always in [0, 24h).
package shift

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

const MinutesPerDay = 24 * 60

// ErrInvalidClockTime is returned for anything that is not a 24-hour "HH:MM" value.
var ErrInvalidClockTime = errors.New("expected HH:MM in 24-hour format (e.g., 09:30)")

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ValidClockTime reports whether s is a zero-padded 24-hour "HH:MM" time.
func ValidClockTime(s string) bool {
	return clockTimePattern.MatchString(s)
}

// ParseClockTime splits a "HH:MM" value into its hour and minute.
func ParseClockTime(s string) (hour, minute int, err error) {
	m := clockTimePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrInvalidClockTime)
	}

	// The pattern guarantees two decimal digits in each group.
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])

	return hour, minute, nil
}

// MinutesBetween returns the minutes worked from inTime to outTime. When
// outTime is earlier than inTime the shift wraps past midnight.
func MinutesBetween(inTime, outTime string) (int, error) {
	inHour, inMinute, err := ParseClockTime(inTime)
	if err != nil {
		return 0, err
	}
	outHour, outMinute, err := ParseClockTime(outTime)
	if err != nil {
		return 0, err
	}

	diff := (outHour*60 + outMinute) - (inHour*60 + inMinute)
	if diff < 0 {
		diff += MinutesPerDay
	}

	return diff, nil
}

// FormatMinutesToHHMM renders minutes as "h:mm" (hours unpadded).
func FormatMinutesToHHMM(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func MinutesToDecimalHours(minutes int) float64 {
	return float64(minutes) / 60.0
}
