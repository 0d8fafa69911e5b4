package domain

import (
	"math"

	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Scheme selects which groups of instances are normalised together.
type Scheme string

const (
	// SchemeNone leaves the data untouched.
	SchemeNone Scheme = "none"
	// SchemeAll fits one normaliser over every instance.
	SchemeAll Scheme = "all"
	// SchemeSpeaker fits one normaliser per speaker.
	SchemeSpeaker Scheme = "speaker"
	// SchemeCorpus fits one normaliser per corpus of a combined dataset.
	SchemeCorpus Scheme = "corpus"
)

// ParseScheme validates a scheme name. The empty string means SchemeNone.
func ParseScheme(s string) (Scheme, error) {
	switch Scheme(s) {
	case "", SchemeNone:
		return SchemeNone, nil
	case SchemeAll, SchemeSpeaker, SchemeCorpus:
		return Scheme(s), nil
	default:
		return "", zerr.With(ErrUnknownScheme, "scheme", s)
	}
}

// Normaliser fits per-column statistics on a set of rows and transforms the
// rows in place.
type Normaliser interface {
	Name() string
	FitTransform(rows Matrix)
}

// NewNormaliser returns the normaliser registered under method.
func NewNormaliser(method string) (Normaliser, error) {
	switch method {
	case "", "standard":
		return StandardScaler{}, nil
	case "minmax":
		return MinMaxScaler{}, nil
	default:
		return nil, zerr.With(ErrUnknownNormaliser, "method", method)
	}
}

// StandardScaler removes the column mean and scales to unit population
// variance. Constant columns are only centred. NaN cells are ignored when
// fitting and stay NaN.
type StandardScaler struct{}

// Name implements Normaliser.
func (StandardScaler) Name() string { return "standard" }

// FitTransform implements Normaliser.
func (StandardScaler) FitTransform(rows Matrix) {
	for j := range rows.Cols() {
		col := present(rows.Column(j))
		if len(col) == 0 {
			continue
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if std == 0 {
			std = 1
		}
		for _, row := range rows {
			row[j] = (row[j] - mean) / std
		}
	}
}

// MinMaxScaler maps each column onto [0, 1]. Constant columns become 0.
// NaN cells are ignored when fitting and stay NaN.
type MinMaxScaler struct{}

// Name implements Normaliser.
func (MinMaxScaler) Name() string { return "minmax" }

// FitTransform implements Normaliser.
func (MinMaxScaler) FitTransform(rows Matrix) {
	for j := range rows.Cols() {
		col := present(rows.Column(j))
		if len(col) == 0 {
			continue
		}
		lo, hi := floats.Min(col), floats.Max(col)
		scale := hi - lo
		if scale == 0 {
			scale = 1
		}
		for _, row := range rows {
			row[j] = (row[j] - lo) / scale
		}
	}
}

// present drops the missing (NaN) values of col in place.
func present(col []float64) []float64 {
	out := col[:0]
	for _, v := range col {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}
