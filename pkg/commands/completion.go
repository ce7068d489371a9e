package commands

import (
	"context"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(moodlog completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(moodlog completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

func entryCompletions(ctx context.Context, toComplete string) []string {
	p, err := store.Load(nil)
	if err != nil {
		return nil
	}
	entries, err := p.Load(ctx)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name), strings.ToLower(toComplete)) {
			names = append(names, strconv.Quote(e.Name))
		}
	}
	return names
}
