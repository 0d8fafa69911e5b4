package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/emorec/internal/app"
)

func (c *CLI) newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a dataset between formats",
		Long: "Convert a dataset between the formats emorec supports.\n" +
			"The format of each file is taken from its suffix: .arff, .csv, or .txt.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, _ := cmd.Flags().GetString("corpus")
			header, _ := cmd.Flags().GetBool("header")
			inLabel, _ := cmd.Flags().GetBool("inlabel")
			return c.app.Convert(cmd.Context(), app.ConvertOptions{
				Input:   args[0],
				Output:  args[1],
				Corpus:  corpus,
				Header:  header,
				InLabel: inLabel,
			})
		},
	}
	cmd.Flags().String("corpus", "", "Corpus name to store in the output")
	cmd.Flags().Bool("header", true, "Read and write a CSV header row")
	cmd.Flags().Bool("inlabel", false, "CSV input has a trailing label column")
	return cmd
}
