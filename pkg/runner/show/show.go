// Package show prints the dated annotations of one entry.
package show

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/printers"
)

type Show struct {
	Name string
	// Month adds a calendar of the current month.
	Month bool
	// Year adds a calendar of every month this year.
	Year bool

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	e, ok, err := n.Service.Entry(ctx, n.Name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no entry named %q", n.Name)
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.Title(e.Name)
	pp.Entry(e)

	now := n.Service.Now()
	switch {
	case n.Year:
		pp.TrackingYear(now, e)
	case n.Month:
		pp.Tracking(now, e)
	}
	return nil
}
