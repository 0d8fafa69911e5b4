package stats

import (
	"slices"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// Kappa returns Fleiss' kappa for a raters x units matrix of category codes.
// Every rater must rate every unit.
func Kappa(data [][]int) (float64, error) {
	n := len(data)
	if n < 2 || len(data[0]) == 0 {
		return 0, zerr.With(zerr.With(domain.ErrNoRatings, "raters", n), "units", unitCount(data))
	}
	units := len(data[0])

	var cats []int
	for _, row := range data {
		if len(row) != units {
			return 0, zerr.With(domain.ErrShapeMismatch, "units", len(row))
		}
		cats = append(cats, row...)
	}
	slices.Sort(cats)
	cats = slices.Compact(cats)

	totals := make(map[int]float64, len(cats))
	pBar := 0.0
	counts := make(map[int]float64, len(cats))
	for u := range units {
		clear(counts)
		for r := range n {
			counts[data[r][u]]++
		}
		sq := 0.0
		for c, k := range counts {
			sq += k * k
			totals[c] += k
		}
		pBar += (sq - float64(n)) / float64(n*(n-1))
	}
	pBar /= float64(units)

	pe := 0.0
	for _, c := range cats {
		p := totals[c] / float64(units*n)
		pe += p * p
	}
	return (pBar - pe) / (1 - pe), nil
}

func unitCount(data [][]int) int {
	if len(data) == 0 {
		return 0
	}
	return len(data[0])
}

// Delta is the distance between two rating values used by Alpha.
type Delta interface {
	Distance(c, k int) float64
}

// DeltaFunc adapts a function to Delta.
type DeltaFunc func(c, k int) float64

// Distance implements Delta.
func (f DeltaFunc) Distance(c, k int) float64 { return f(c, k) }

var (
	// Nominal is 1 for different values and 0 otherwise.
	Nominal Delta = DeltaFunc(func(c, k int) float64 {
		if c == k {
			return 0
		}
		return 1
	})

	// Interval is the squared difference of the values.
	Interval Delta = DeltaFunc(func(c, k int) float64 {
		d := float64(c - k)
		return d * d
	})
)

// MatrixDelta looks distances up in a square matrix indexed by value.
type MatrixDelta [][]float64

// Distance implements Delta.
func (m MatrixDelta) Distance(c, k int) float64 { return m[c][k] }

func (m MatrixDelta) validate(maxValue int) error {
	if len(m) <= maxValue {
		return zerr.With(zerr.With(domain.ErrInvalidDelta, "size", len(m)), "max_value", maxValue)
	}
	for i, row := range m {
		if len(row) != len(m) {
			return zerr.With(zerr.With(domain.ErrInvalidDelta, "row", i), "columns", len(row))
		}
	}
	return nil
}

// Alpha returns Krippendorff's alpha for a raters x units matrix. Value 0
// marks a missing rating and valid values are 1..R. Units with fewer than
// two ratings are ignored.
func Alpha(data [][]int, delta Delta) (float64, error) {
	if len(data) == 0 {
		return 0, zerr.With(domain.ErrNoRatings, "raters", 0)
	}
	units := len(data[0])
	maxValue := 0
	for _, row := range data {
		if len(row) != units {
			return 0, zerr.With(domain.ErrShapeMismatch, "units", len(row))
		}
		for _, v := range row {
			if v < 0 {
				return 0, zerr.With(domain.ErrInvalidRating, "value", v)
			}
			maxValue = max(maxValue, v)
		}
	}
	if md, ok := delta.(MatrixDelta); ok {
		if err := md.validate(maxValue); err != nil {
			return 0, err
		}
	}

	// Per-unit value counts, keeping only units with at least two ratings.
	var unitCounts [][]float64
	var pairable []float64
	totals := make([]float64, maxValue+1)
	for u := range units {
		counts := make([]float64, maxValue+1)
		m := 0.0
		for _, row := range data {
			if v := row[u]; v > 0 {
				counts[v]++
				m++
			}
		}
		if m < 2 {
			continue
		}
		unitCounts = append(unitCounts, counts)
		pairable = append(pairable, m)
		for v, c := range counts {
			totals[v] += c
		}
	}

	n := 0.0
	for _, m := range pairable {
		n += m
	}
	if n == 0 {
		return 0, zerr.With(domain.ErrNoRatings, "units", units)
	}

	observed := 0.0
	for u, counts := range unitCounts {
		sum := 0.0
		for c := 1; c <= maxValue; c++ {
			for k := 1; k <= maxValue; k++ {
				pairs := counts[c] * counts[k]
				if c == k {
					pairs = counts[c] * (counts[c] - 1)
				}
				sum += delta.Distance(c, k) * pairs
			}
		}
		observed += sum / (n * (pairable[u] - 1))
	}

	expected := 0.0
	for c := 1; c <= maxValue; c++ {
		for k := 1; k <= maxValue; k++ {
			expected += delta.Distance(c, k) * totals[c] * totals[k]
		}
	}
	expected /= n * (n - 1)

	return 1 - observed/expected, nil
}
