package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/show"
)

func addShow(topLevel *cobra.Command) {
	var month, year bool
	name := ""

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show every day recorded for an entry",
		Example: `
moodlog show running
moodlog show running --month
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an entry name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), true)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := show.Show{
				Name:    name,
				Month:   month,
				Year:    year,
				Service: env.Service,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&month, "month", "m", false, "Show a calendar of this month.")
	cmd.Flags().BoolVarP(&year, "year", "y", false, "Show a calendar of every month this year.")
	topLevel.AddCommand(cmd)
}
