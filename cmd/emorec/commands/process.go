package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/emorec/internal/app"
)

func (c *CLI) newProcessCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process CORPUS INPUT_DIR",
		Short: "Extract annotations and resample audio for a raw corpus",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			noResample, _ := cmd.Flags().GetBool("no-resample")
			noCache, _ := cmd.Flags().GetBool("no-cache")
			_, err := c.app.Process(cmd.Context(), app.ProcessOptions{
				Corpus:    args[0],
				InputDir:  args[1],
				OutputDir: out,
				Resample:  !noResample,
				NoCache:   noCache,
			})
			return err
		},
	}
	cmd.Flags().String("out", ".", "Directory for annotation CSVs and resampled audio")
	cmd.Flags().Bool("no-resample", false, "Only write annotations")
	cmd.Flags().BoolP("no-cache", "n", false, "Resample every file even if a cached copy exists")
	return cmd
}
