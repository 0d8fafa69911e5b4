package app

import (
	"context"
	"fmt"
	"math"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/engine/stats"
	"go.trai.ch/zerr"
)

// AgreementOptions configures an inter-rater agreement computation.
type AgreementOptions struct {
	// Path is a name,rater,label CSV.
	Path string
	// Delta is "nominal" or "interval". Interval labels must be positive integers.
	Delta string
}

// AgreementResult holds the agreement statistics of a rating file. Kappa is
// NaN when no unit was rated by every rater.
type AgreementResult struct {
	Units  int
	Raters int
	Kappa  float64
	Alpha  float64
}

// Agreement computes Fleiss' kappa over the fully rated units and
// Krippendorff's alpha over all units, and prints both.
func (a *App) Agreement(_ context.Context, opts AgreementOptions) (AgreementResult, error) {
	ratings, err := a.annotations.ReadRatings(opts.Path)
	if err != nil {
		return AgreementResult{}, err
	}
	table := stats.NewRatings()
	for _, r := range ratings {
		table.Add(r.Rater, r.Unit, r.Label)
	}
	if table.Len() == 0 {
		return AgreementResult{}, zerr.With(domain.ErrNoRatings, "path", opts.Path)
	}

	var data [][]int
	var delta stats.Delta
	switch opts.Delta {
	case "", "nominal":
		data, delta = table.Matrix(), stats.Nominal
	case "interval":
		if data, err = table.IntMatrix(); err != nil {
			return AgreementResult{}, err
		}
		delta = stats.Interval
	default:
		return AgreementResult{}, zerr.With(domain.ErrUnknownMethod, "delta", opts.Delta)
	}

	res := AgreementResult{
		Units:  len(table.Units()),
		Raters: len(table.Raters()),
		Kappa:  math.NaN(),
	}
	if res.Alpha, err = stats.Alpha(data, delta); err != nil {
		return AgreementResult{}, err
	}
	if kappa, err := stats.Kappa(table.CompleteMatrix()); err == nil {
		res.Kappa = kappa
	} else {
		a.logger.Warn("fleiss' kappa needs at least one unit rated by every rater")
	}

	_, _ = fmt.Fprintf(a.stdout, "%d units, %d raters, %d ratings\n", res.Units, res.Raters, table.Len())
	_, _ = fmt.Fprintf(a.stdout, "Fleiss' kappa: %.3f\n", res.Kappa)
	_, _ = fmt.Fprintf(a.stdout, "Krippendorff's alpha: %.3f\n", res.Alpha)
	return res, nil
}
