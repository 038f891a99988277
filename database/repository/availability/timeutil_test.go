package availabilityRepo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		minutes int
		want    string
	}{
		{"simple add", "18:00", 30, "18:30"},
		{"across hour", "18:45", 30, "19:15"},
		{"wrap past midnight", "23:45", 30, "00:15"},
		{"zero", "09:00", 0, "09:00"},
		{"full day wraps to same time", "10:10", 24 * 60, "10:10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMinutes(tt.clock, tt.minutes))
		})
	}
}

func TestSubtractMinutes(t *testing.T) {
	tests := []struct {
		name    string
		clock   string
		minutes int
		want    string
	}{
		{"simple subtract", "18:30", 30, "18:00"},
		{"across hour", "19:15", 30, "18:45"},
		{"wrap before midnight", "00:15", 30, "23:45"},
		{"exact midnight", "00:30", 30, "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SubtractMinutes(tt.clock, tt.minutes))
		})
	}
}

func TestValidClock(t *testing.T) {
	assert.True(t, ValidClock("00:00"))
	assert.True(t, ValidClock("23:59"))
	assert.True(t, ValidClock("09:05"))
	assert.False(t, ValidClock("24:00"))
	assert.False(t, ValidClock("9:05"))
	assert.False(t, ValidClock("09:60"))
	assert.False(t, ValidClock("0905"))
	assert.False(t, ValidClock(""))
}

// The overlap filter compares "HH:MM" strings directly in the store; this
// holds only if lexicographic order matches clock order for every valid pair.
func TestClockStringOrderingMatchesMinuteOrdering(t *testing.T) {
	clocks := []string{"00:00", "00:59", "01:00", "09:30", "10:00", "18:00", "22:05", "23:59"}
	for i, a := range clocks {
		for j, b := range clocks {
			wantLess := clockToMinutes(a) < clockToMinutes(b)
			assert.Equal(t, wantLess, a < b, "clocks %q vs %q (idx %d,%d)", a, b, i, j)
		}
	}
}

func TestDayRange(t *testing.T) {
	d := time.Date(2025, 6, 1, 15, 30, 0, 0, time.UTC)
	start, end := dayRange(d)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 6, 1, 23, 59, 59, 999000000, time.UTC), end)
}
