// File: database/repository/availability/timeutil.go
package availabilityRepo

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// AddMinutes shifts a "HH:MM" clock string forward, wrapping modulo 24 hours.
func AddMinutes(clock string, minutes int) string {
	total := clockToMinutes(clock) + minutes
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return minutesToClock(total)
}

// SubtractMinutes shifts a "HH:MM" clock string backward, wrapping modulo 24
// hours. Subtracting past midnight wraps to the previous day's clock time,
// which only widens the exclusion buffer.
func SubtractMinutes(clock string, minutes int) string {
	return AddMinutes(clock, -minutes)
}

// ValidClock reports whether s is a well-formed "HH:MM" time of day.
func ValidClock(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

func clockToMinutes(clock string) int {
	var h, m int
	fmt.Sscanf(clock, "%02d:%02d", &h, &m)
	return h*60 + m
}

func minutesToClock(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// dayRange normalizes a calendar date to its [00:00:00.000, 23:59:59.999]
// window for the eventDate range match.
func dayRange(d time.Time) (time.Time, time.Time) {
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return start, end
}
