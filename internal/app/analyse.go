package app

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/engine/stats"
	"go.trai.ch/emorec/internal/ui/style"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/floats"
)

// DefaultTop is how many features Analyse lists by default.
const DefaultTop = 10

// AnalyseOptions configures a dataset analysis.
type AnalyseOptions struct {
	// Datasets are analysed together. More than one is combined and also
	// scored per corpus.
	Datasets []DatasetOptions
	// Top limits the listed features. Zero or less lists all of them.
	Top int
	// Dunn selects the cluster distances for the Dunn index.
	Dunn stats.DunnOptions
}

// FeatureScore is the correlation ratio of one feature with the class labels
// and with the speakers.
type FeatureScore struct {
	Feature string
	Label   float64
	Speaker float64
}

// AnalyseResult holds the feature ranking and the Dunn index of the classes.
// CorpusDunn is set for combined datasets and follows Corpora.
type AnalyseResult struct {
	Scores     []FeatureScore
	Dunn       float64
	Corpora    []string
	CorpusDunn []float64
}

// Analyse ranks features by how well they separate the classes and reports
// how compact the classes are. Sequences are summarised by their mean.
func (a *App) Analyse(_ context.Context, opts AnalyseOptions) (AnalyseResult, error) {
	cfg, err := a.loadConfig("")
	if err != nil {
		return AnalyseResult{}, err
	}
	_, ld, err := a.loadDatasets(cfg, opts.Datasets)
	if err != nil {
		return AnalyseResult{}, err
	}
	if ld == nil {
		return AnalyseResult{}, zerr.With(domain.ErrMissingAnnotation, "annotation", "label")
	}

	x := instanceMeans(ld.X(), ld.NFeatures())
	byLabel := stats.CorrRatio(x, ld.Y())
	bySpeaker := stats.CorrRatio(x, ld.SpeakerIndices())

	scores := make([]FeatureScore, ld.NFeatures())
	for j, f := range ld.Features() {
		scores[j] = FeatureScore{Feature: f, Label: byLabel[j], Speaker: bySpeaker[j]}
	}
	slices.SortStableFunc(scores, func(p, q FeatureScore) int {
		// NaN sorts last.
		return cmp.Compare(nanToLow(q.Label), nanToLow(p.Label))
	})
	if opts.Top > 0 && opts.Top < len(scores) {
		scores = scores[:opts.Top]
	}

	dunnOpts := opts.Dunn
	if dunnOpts == (stats.DunnOptions{}) {
		dunnOpts = stats.DefaultDunnOptions()
	}
	dunn, err := stats.Dunn(x, ld.Y(), dunnOpts)
	if err != nil {
		return AnalyseResult{}, err
	}

	res := AnalyseResult{Scores: scores, Dunn: dunn}
	if c, ok := ld.(*domain.CombinedDataset); ok {
		if err := corpusDunn(&res, c, x, dunnOpts); err != nil {
			return AnalyseResult{}, err
		}
	}
	a.printAnalysis(res)
	return res, nil
}

func (a *App) printAnalysis(res AnalyseResult) {
	width := len("feature")
	for _, s := range res.Scores {
		width = max(width, len(s.Feature))
	}
	_, _ = fmt.Fprintln(a.stdout, style.Heading("Correlation ratio"))
	_, _ = fmt.Fprintf(a.stdout, "%-*s  %7s  %7s\n", width, "feature", "label", "speaker")
	for _, s := range res.Scores {
		_, _ = fmt.Fprintf(a.stdout, "%-*s  %7.3f  %7.3f\n", width, s.Feature, s.Label, s.Speaker)
	}
	_, _ = fmt.Fprintf(a.stdout, "Dunn index: %.3f\n", res.Dunn)
	for i, corpus := range res.Corpora {
		_, _ = fmt.Fprintf(a.stdout, "Dunn index (%s): %.3f\n", corpus, res.CorpusDunn[i])
	}
}

// corpusDunn scores the classes of each corpus of c on its own.
func corpusDunn(res *AnalyseResult, c *domain.CombinedDataset, x domain.Matrix, opts stats.DunnOptions) error {
	y := c.Y()
	for _, corpus := range c.Corpora() {
		idx, _, err := c.CorpusSplit(corpus)
		if err != nil {
			return err
		}
		rows := make(domain.Matrix, len(idx))
		labels := make([]int, len(idx))
		for k, i := range idx {
			rows[k], labels[k] = x[i], y[i]
		}
		dunn, err := stats.Dunn(rows, labels, opts)
		if err != nil {
			return err
		}
		res.Corpora = append(res.Corpora, corpus)
		res.CorpusDunn = append(res.CorpusDunn, dunn)
	}
	return nil
}

func nanToLow(v float64) float64 {
	if math.IsNaN(v) {
		return math.Inf(-1)
	}
	return v
}

// instanceMeans returns one row per instance holding its column means.
func instanceMeans(x []domain.Matrix, cols int) domain.Matrix {
	out := domain.NewMatrix(len(x), cols)
	for i, m := range x {
		if len(m) == 0 {
			continue
		}
		for _, row := range m {
			floats.Add(out[i], row)
		}
		floats.Scale(1/float64(len(m)), out[i])
	}
	return out
}
