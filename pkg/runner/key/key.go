// Package key provides CLI helpers to display the mood legend.
package key

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/moodlog/pkg/mood"
)

// Key prints a legend of moods and the inputs that select them.
type Key struct {
	// Out defaults to color.Output.
	Out io.Writer
}

// Do renders the mood key.
func (k *Key) Do(_ context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)

	moods := mood.DefaultMoods()
	sort.Sort(mood.ByOrder(moods))

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Mood"), bold.Sprint("Meaning"), bold.Sprint("Also"))
	for _, g := range moods {
		tbl.AddRow(g.Symbol, g.Meaning, strings.Join(g.Aliases, " "))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
