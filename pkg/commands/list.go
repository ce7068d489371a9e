package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "entries"},
		Short:   "List entries and how long since each was last recorded",
		Example: `
moodlog list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), true)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			l := list.List{JSON: output.JSON, Service: env.Service}
			return output.HandleError(l.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
