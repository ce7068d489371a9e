package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/commands/options"
	"tableflip.dev/moodlog/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Record today (or --on a day) for an entry",
		Example: `
moodlog add running
moodlog add running --mood great --note "5k in the rain"
moodlog add "read a book" --on 2024-02-28 -m :)
moodlog add running --ago 1d
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires an entry name")
			}
			ao.Name = strings.Join(args, " ")
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return entryCompletions(cmd.Context(), toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := ao.GetOn(nil)
			if err != nil {
				return output.HandleError(err)
			}
			m, err := ao.GetMood()
			if err != nil {
				return output.HandleError(err)
			}

			env, err := setup(cmd.Context(), true)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			a := add.Add{
				Name:    ao.Name,
				On:      on,
				Mood:    m,
				Note:    ao.Note,
				Service: env.Service,
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}

	options.AddAddArgs(cmd, ao)
	_ = cmd.RegisterFlagCompletionFunc("mood", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"sad", "neutral", "good", "great"}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}
