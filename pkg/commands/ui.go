package commands

import (
	"github.com/spf13/cobra"

	tuiapp "tableflip.dev/moodlog/pkg/tui/app"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
moodlog ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			// The UI draws alerts itself.
			env, err := setup(cmd.Context(), false)
			if err != nil {
				return err
			}
			defer env.Close()
			return tuiapp.Run(cmd.Context(), env.Service)
		},
	}

	topLevel.AddCommand(cmd)
}
