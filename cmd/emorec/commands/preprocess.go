package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPreprocessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preprocess [CONFIG]",
		Short: "Run the preprocessing pipeline from emorec.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return c.app.Preprocess(cmd.Context(), path)
		},
	}
}
