package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/dates"
	"tableflip.dev/moodlog/pkg/entry"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Tracking prints the month containing now with the days e was recorded
// highlighted.
func (pp *PrettyPrint) Tracking(now time.Time, e entry.Entry) {
	pp.PrintMonth(now, e)
}

// TrackingYear prints every month of now's year.
func (pp *PrettyPrint) TrackingYear(now time.Time, e entry.Entry) {
	then := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		pp.PrintMonth(then, e)
		then = NextMonth(then)
	}
}

// PrintMonth prints a calendar grid for then's month, marking recorded days.
func (pp *PrettyPrint) PrintMonth(then time.Time, e entry.Entry) {
	count := make([]int, DaysIn(then))
	for _, a := range e.Dates {
		t, err := dates.Parse(a.Date)
		if err != nil {
			continue
		}
		if t.Year() == then.Year() && t.Month() == then.Month() {
			count[t.Day()-1]++
		}
	}
	pp.PrintMonthCount(then, count)
}

// PrintMonthCount prints a month grid, bolding days with a non-zero count.
func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(out, "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	_, _ = fmt.Fprint(out, strings.Repeat("   ", int(d-time.Sunday)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Year(), then.Month()+1, 1, 0, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.UTC).Weekday()
}
