package stats

import (
	"maps"
	"slices"
	"strconv"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// Ratings collects categorical labels given by raters to units.
type Ratings struct {
	byUnit map[string]map[string]string
	raters map[string]struct{}
}

// NewRatings creates an empty rating table.
func NewRatings() *Ratings {
	return &Ratings{
		byUnit: map[string]map[string]string{},
		raters: map[string]struct{}{},
	}
}

// Add records that rater gave unit label. A repeated rating of the same unit
// by the same rater is ignored.
func (r *Ratings) Add(rater, unit, label string) {
	m, ok := r.byUnit[unit]
	if !ok {
		m = map[string]string{}
		r.byUnit[unit] = m
	}
	if _, dup := m[rater]; dup {
		return
	}
	m[rater] = label
	r.raters[rater] = struct{}{}
}

// Len returns the number of recorded ratings.
func (r *Ratings) Len() int {
	n := 0
	for _, m := range r.byUnit {
		n += len(m)
	}
	return n
}

// Units returns the rated units in sorted order.
func (r *Ratings) Units() []string {
	return slices.Sorted(maps.Keys(r.byUnit))
}

// Raters returns the raters in sorted order.
func (r *Ratings) Raters() []string {
	return slices.Sorted(maps.Keys(r.raters))
}

// Categories returns the distinct labels in sorted order.
func (r *Ratings) Categories() []string {
	set := map[string]struct{}{}
	for _, m := range r.byUnit {
		for _, l := range m {
			set[l] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Unit returns the labels given to unit keyed by rater.
func (r *Ratings) Unit(unit string) map[string]string {
	return r.byUnit[unit]
}

// Matrix encodes the table as raters x units, both sorted. Labels become
// their 1-based index into Categories and 0 marks a missing rating, the
// layout Alpha expects.
func (r *Ratings) Matrix() [][]int {
	return r.matrix(r.Units())
}

// CompleteMatrix is Matrix restricted to units rated by every rater, the
// layout Kappa expects.
func (r *Ratings) CompleteMatrix() [][]int {
	var units []string
	for _, u := range r.Units() {
		if len(r.byUnit[u]) == len(r.raters) {
			units = append(units, u)
		}
	}
	return r.matrix(units)
}

func (r *Ratings) matrix(units []string) [][]int {
	cats := r.Categories()
	raters := r.Raters()
	data := make([][]int, len(raters))
	for i, rater := range raters {
		row := make([]int, len(units))
		for j, u := range units {
			if l, ok := r.byUnit[u][rater]; ok {
				row[j] = slices.Index(cats, l) + 1
			}
		}
		data[i] = row
	}
	return data
}

// IntMatrix is Matrix for labels that are themselves positive integer
// ratings. Labels are used as values instead of category indices.
func (r *Ratings) IntMatrix() ([][]int, error) {
	units := r.Units()
	raters := r.Raters()
	data := make([][]int, len(raters))
	for i, rater := range raters {
		row := make([]int, len(units))
		for j, u := range units {
			l, ok := r.byUnit[u][rater]
			if !ok {
				continue
			}
			v, err := strconv.Atoi(l)
			if err != nil || v < 1 {
				return nil, zerr.With(zerr.With(domain.ErrInvalidRating, "unit", u), "label", l)
			}
			row[j] = v
		}
		data[i] = row
	}
	return data, nil
}
