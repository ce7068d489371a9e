package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayUsesLocalCalendarDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2024, time.March, 1, 23, 30, 0, 0, est)
	assert.Equal(t, "2024-03-01", Today(now))

	// 00:30 in UTC+9 is still the previous day in UTC.
	jst := time.FixedZone("JST", 9*60*60)
	now = time.Date(2024, time.March, 2, 0, 30, 0, 0, jst)
	assert.Equal(t, "2024-03-02", Today(now))
}

func TestTodayStableWithinDay(t *testing.T) {
	morning := time.Date(2024, time.June, 10, 0, 0, 1, 0, time.Local)
	evening := time.Date(2024, time.June, 10, 23, 59, 59, 0, time.Local)
	assert.Equal(t, Today(morning), Today(evening))
}

func TestClockNow(t *testing.T) {
	fixed := time.Date(2024, time.January, 15, 8, 0, 0, 0, time.UTC)
	c := Clock(func() time.Time { return fixed })
	assert.Equal(t, fixed, c.Now())

	var nilClock Clock
	assert.WithinDuration(t, time.Now(), nilClock.Now(), time.Second)
}

func TestNiceLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-03-01", "March 1, 2024"},
		{"2023-12-25", "December 25, 2023"},
		{"2024-01-09", "January 9, 2024"},
		// Days are not range checked.
		{"2024-02-31", "February 31, 2024"},
	}
	for _, tt := range tests {
		got, err := NiceLabel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestNiceLabelMalformed(t *testing.T) {
	for _, in := range []string{"", "2024-03", "2024-xx-01", "2024-13-01", "2024-00-10", "a-b-c-d"} {
		_, err := NiceLabel(in)
		assert.Error(t, err, in)
	}
}

func TestDaysSince(t *testing.T) {
	now := time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, DaysSince(nil, now))
	assert.Equal(t, 5, DaysSince([]string{"2024-01-01", "2024-01-10"}, now))
	// Order of input does not matter.
	assert.Equal(t, 5, DaysSince([]string{"2024-01-10", "2024-01-01"}, now))
	assert.Equal(t, 0, DaysSince([]string{"2024-01-15"}, now))
	// Future dates count as an absolute difference.
	assert.Equal(t, 2, DaysSince([]string{"2024-01-18"}, now))
	assert.Equal(t, 0, DaysSince([]string{"garbage"}, now))
}

func TestDaysSinceFollowsLocalMidnight(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	// 22:00 local on Jan 15 is Jan 16 in UTC; the local day still counts.
	now := time.Date(2024, time.January, 15, 22, 0, 0, 0, est)
	assert.Equal(t, 5, DaysSince([]string{"2024-01-10"}, now))
}

func TestAgo(t *testing.T) {
	assert.Equal(t, "today", Ago(0))
	assert.Equal(t, "1 day ago", Ago(1))
	assert.Equal(t, "12 days ago", Ago(12))
}

func TestParse(t *testing.T) {
	got, err := Parse("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)

	_, err = Parse("3/1/2024")
	assert.Error(t, err)
}
