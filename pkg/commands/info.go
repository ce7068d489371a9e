package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/moodlog/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where entries are stored.",
		Example: `
moodlog info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := setup(cmd.Context(), true)
			if err != nil {
				return output.HandleError(err)
			}
			defer env.Close()

			s := info.Info{
				Config:  env.Config,
				Service: env.Service,
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
