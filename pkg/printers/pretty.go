package printers

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/dates"
	"tableflip.dev/moodlog/pkg/entry"
)

// PrettyPrint renders entries for a terminal.
type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Entries prints one row per entry: how long since it was last recorded and
// the latest mood.
func (pp *PrettyPrint) Entries(now time.Time, entries ...entry.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Last"), bold.Sprint("Days"), bold.Sprint("Mood"), bold.Sprint("Logged"))
	for _, e := range entry.WithDays(entries, now) {
		last, mood := "", ""
		if latest, ok := e.Latest(); ok {
			last = label(latest.Date)
			mood = latest.Mood.Symbol()
		}
		tbl.AddRow(e.Name, faint.Sprint(last), dates.Ago(*e.Days), mood, strconv.Itoa(len(e.Dates)))
	}
	tbl.RightAlign(2)
	tbl.RightAlign(4)

	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Entry prints every dated annotation of e, oldest first.
func (pp *PrettyPrint) Entry(e entry.Entry) {
	if len(e.Dates) == 0 {
		pp.none()
		return
	}

	t := color.New()
	d := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 60
	for _, a := range e.Dates {
		tbl.AddRow(d.Sprint(label(a.Date)), a.Mood.Symbol(), t.Sprint(a.Note))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func label(date string) string {
	l, err := dates.NiceLabel(date)
	if err != nil {
		return date
	}
	return l
}
