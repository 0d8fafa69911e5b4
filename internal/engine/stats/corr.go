// Package stats implements the dataset and rater statistics used by emorec.
package stats

import (
	"math"

	"go.trai.ch/emorec/internal/core/domain"
)

// CorrRatio returns the correlation ratio (eta) of each column of x with
// respect to the group assignment. Groups are numbered from 0. A constant
// column yields NaN. Groups without instances are ignored.
func CorrRatio(x domain.Matrix, groups []int) []float64 {
	cols := x.Cols()
	n := float64(len(x))
	if n == 0 {
		return make([]float64, cols)
	}

	nGroups := 0
	for _, g := range groups {
		nGroups = max(nGroups, g+1)
	}
	counts := make([]float64, nGroups)
	sums := domain.NewMatrix(nGroups, cols)
	mean := make([]float64, cols)
	for i, row := range x {
		counts[groups[i]]++
		for j, v := range row {
			sums[groups[i]][j] += v
			mean[j] += v
		}
	}
	for j := range mean {
		mean[j] /= n
	}

	eta := make([]float64, cols)
	for j := range cols {
		num := 0.0
		for g, c := range counts {
			if c == 0 {
				continue
			}
			d := sums[g][j]/c - mean[j]
			num += c * d * d
		}
		den := 0.0
		for _, row := range x {
			d := row[j] - mean[j]
			den += d * d
		}
		eta[j] = math.Sqrt(num / den)
	}
	return eta
}
