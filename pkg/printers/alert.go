package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/alert"
)

// AlertPrinter writes alerts to a terminal as they are shown.
type AlertPrinter struct {
	// Out defaults to color.Error.
	Out io.Writer
}

// Attach subscribes to s and prints every alert that becomes active. Clears
// print nothing. The returned func detaches.
func (ap *AlertPrinter) Attach(s *alert.Store) func() {
	return s.Subscribe(func(d *alert.Data) {
		if d == nil {
			return
		}
		ap.Print(*d)
	})
}

// Print renders one alert, coloured by type.
func (ap *AlertPrinter) Print(d alert.Data) {
	out := ap.Out
	if out == nil {
		out = color.Error
	}
	c := color.New(color.FgGreen)
	mark := "✓"
	if d.Type == alert.Error {
		c = color.New(color.FgRed, color.Bold)
		mark = "✗"
	}
	_, _ = c.Fprintln(out, fmt.Sprintf("%s %s", mark, d.Message))
}
