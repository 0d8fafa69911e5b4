package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/emorec/internal/app"
	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/engine/stats"
	"go.trai.ch/zerr"
)

// addDatasetFlags registers the flags that locate the annotations of each
// dataset argument. Repeated flags pair with the arguments in order.
func addDatasetFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayP("labels", "l", nil, "Label annotation CSV (name,label), once per dataset")
	cmd.Flags().StringArrayP("speakers", "s", nil, "Speaker annotation CSV (name,speaker), once per dataset")
	cmd.Flags().StringArray("corpus", nil, "Override the corpus name, once per dataset")
	cmd.Flags().Bool("header", true, "CSV input has a header row")
	cmd.Flags().Bool("inlabel", false, "CSV input has a trailing label column")
}

func datasetOptions(cmd *cobra.Command, paths []string) ([]app.DatasetOptions, error) {
	labels, err := perDataset(cmd, "labels", len(paths))
	if err != nil {
		return nil, err
	}
	speakers, err := perDataset(cmd, "speakers", len(paths))
	if err != nil {
		return nil, err
	}
	corpus, err := perDataset(cmd, "corpus", len(paths))
	if err != nil {
		return nil, err
	}
	header, _ := cmd.Flags().GetBool("header")
	inLabel, _ := cmd.Flags().GetBool("inlabel")

	sets := make([]app.DatasetOptions, len(paths))
	for i, path := range paths {
		sets[i] = app.DatasetOptions{
			Path:     path,
			Labels:   labels[i],
			Speakers: speakers[i],
			Corpus:   corpus[i],
			Header:   header,
			InLabel:  inLabel,
		}
	}
	return sets, nil
}

// perDataset returns one value of a repeatable flag per dataset. The flag
// must be given either not at all or once for every dataset.
func perDataset(cmd *cobra.Command, name string, n int) ([]string, error) {
	values, _ := cmd.Flags().GetStringArray(name)
	switch len(values) {
	case 0:
		return make([]string, n), nil
	case n:
		return values, nil
	default:
		return nil, zerr.With(zerr.With(domain.ErrInvalidOption, "flag", name),
			"reason", fmt.Sprintf("given %d times for %d datasets", len(values), n))
	}
}

func (c *CLI) newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info DATASET...",
		Short: "Print a summary of a dataset, or of several datasets combined",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := datasetOptions(cmd, args)
			if err != nil {
				return err
			}
			return c.app.Info(cmd.Context(), sets)
		},
	}
	addDatasetFlags(cmd)
	return cmd
}

func (c *CLI) newAnalyseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "analyse DATASET...",
		Aliases: []string{"analyze"},
		Short:   "Rank features by correlation ratio and report the Dunn index",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sets, err := datasetOptions(cmd, args)
			if err != nil {
				return err
			}
			top, _ := cmd.Flags().GetInt("top")
			intra, _ := cmd.Flags().GetString("intra")
			metric, _ := cmd.Flags().GetString("metric")
			p, _ := cmd.Flags().GetFloat64("p")
			_, err = c.app.Analyse(cmd.Context(), app.AnalyseOptions{
				Datasets: sets,
				Top:      top,
				Dunn: stats.DunnOptions{
					Intra:  intra,
					Inter:  "cent",
					Metric: metric,
					P:      p,
				},
			})
			return err
		},
	}
	addDatasetFlags(cmd)
	cmd.Flags().IntP("top", "n", app.DefaultTop, "Number of features to list (0 for all)")
	cmd.Flags().String("intra", "mean", "Intra-cluster distance for the Dunn index: max, mean, or cent")
	cmd.Flags().String("metric", "l2", "Distance metric: l1, l2, linf, minkowski, or cosine")
	cmd.Flags().Float64("p", 2, "Order of the minkowski metric")
	return cmd
}
