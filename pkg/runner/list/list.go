// Package list prints every entry.
package list

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/moodlog/pkg/app"
	"tableflip.dev/moodlog/pkg/entry"
	"tableflip.dev/moodlog/pkg/printers"
)

type List struct {
	// JSON prints the collection, with days filled in, instead of a table.
	JSON bool
	// Out is used for JSON output and defaults to color.Output.
	Out io.Writer

	Service *app.Service
	Printer *printers.PrettyPrint
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}
	entries, err := n.Service.Entries(ctx)
	if err != nil {
		return err
	}

	if n.JSON {
		out := n.Out
		if out == nil {
			out = color.Output
		}
		b, err := json.MarshalIndent(entry.WithDays(entries, n.Service.Now()), "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(out, string(b))
		return nil
	}

	pp := n.Printer
	if pp == nil {
		pp = &printers.PrettyPrint{}
	}
	pp.TitleWithCount("Entries", len(entries))
	pp.Entries(n.Service.Now(), entries...)
	return nil
}
