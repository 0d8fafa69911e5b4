package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/emorec/internal/app"
)

func (c *CLI) newAgreementCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agreement RATINGS",
		Short: "Compute inter-rater agreement from a name,rater,label CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, _ := cmd.Flags().GetString("delta")
			_, err := c.app.Agreement(cmd.Context(), app.AgreementOptions{
				Path:  args[0],
				Delta: delta,
			})
			return err
		},
	}
	cmd.Flags().String("delta", "nominal", "Krippendorff distance: nominal or interval")
	return cmd
}
