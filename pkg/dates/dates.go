// Package dates converts between wall-clock time and the ISO day strings
// entries are keyed by.
package dates

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// LayoutISO is the day layout used for annotation keys.
const LayoutISO = "2006-01-02"

const day = 24 * time.Hour

var months = []string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

// Clock returns the current instant. A nil Clock reads the system clock.
type Clock func() time.Time

// Now calls the clock, falling back to time.Now.
func (c Clock) Now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

// Today returns the calendar day of now, in now's own location, as YYYY-MM-DD.
// With a local time this is the user's wall-clock day, not the UTC day.
func Today(now time.Time) string {
	return now.Format(LayoutISO)
}

// Current returns today's date string from the system clock.
func Current() string {
	return Today(time.Now())
}

// Parse reads a YYYY-MM-DD string as UTC midnight.
func Parse(date string) (time.Time, error) {
	t, err := time.Parse(LayoutISO, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("dates: invalid date %q, want YYYY-MM-DD", date)
	}
	return t, nil
}

// NiceLabel renders "2024-03-01" as "March 1, 2024". Only the month is range
// checked; the day and year are printed as given.
func NiceLabel(date string) (string, error) {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return "", fmt.Errorf("dates: malformed date %q", date)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return "", fmt.Errorf("dates: malformed date %q: %w", date, err)
		}
		nums[i] = n
	}
	year, month, d := nums[0], nums[1], nums[2]
	if month < 1 || month > len(months) {
		return "", fmt.Errorf("dates: month %d out of range in %q", month, date)
	}
	return fmt.Sprintf("%s %d, %d", months[month-1], d, year), nil
}

// DaysSince returns the whole number of days between the most recent date in
// dates and now. The most recent date is the lexicographic maximum, which for
// zero-padded ISO days is the chronological one. It is compared as UTC midnight
// against now's wall clock, so the count flips over at local midnight.
// Empty input, or an unparseable maximum, yields 0.
func DaysSince(dates []string, now time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := append([]string(nil), dates...)
	sort.Strings(sorted)
	latest, err := time.Parse(LayoutISO, sorted[len(sorted)-1])
	if err != nil {
		return 0
	}
	diff := wallClock(now).Sub(latest)
	if diff < 0 {
		diff = -diff
	}
	return int(diff / day)
}

// Ago phrases a DaysSince count: "today", "1 day ago", "N days ago".
func Ago(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "1 day ago"
	default:
		return strconv.Itoa(days) + " days ago"
	}
}

// wallClock reinterprets now's local reading as a UTC instant.
func wallClock(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(),
		now.Hour(), now.Minute(), now.Second(), now.Nanosecond(), time.UTC)
}
