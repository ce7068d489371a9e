// Package add records an annotation from the command line.
package add

import (
	"context"
	"errors"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/mood"
	"tableflip.dev/moodlog/pkg/printers"
)

// ErrRejected is returned when the annotation was not recorded. The reason
// has already been raised as an alert.
var ErrRejected = errors.New("entry not recorded")

type Add struct {
	Name string
	// On is a YYYY-MM-DD day; empty means today.
	On   string
	Mood mood.Mood
	Note string

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	res, err := n.Service.Add(ctx, entry.Input{
		Name: n.Name,
		Date: n.On,
		Mood: n.Mood,
		Note: n.Note,
	})
	if err != nil {
		return err
	}
	if !res.Success {
		return ErrRejected
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	if e, ok := entry.Find(res.Entries, n.Name); ok {
		pp.Title(e.Name)
		pp.Entry(e)
	}
	return nil
}
