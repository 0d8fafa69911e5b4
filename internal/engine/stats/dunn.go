package stats

import (
	"math"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
	"gonum.org/v1/gonum/floats"
)

// DunnOptions selects how cluster distances are measured.
type DunnOptions struct {
	// Intra is one of "max", "mean" or "cent".
	Intra string
	// Inter is "cent".
	Inter string
	// Metric is one of "l1", "l2", "linf", "minkowski" or "cosine".
	Metric string
	// P is the order of the minkowski metric.
	P float64
}

// DefaultDunnOptions uses mean intra-cluster and centroid inter-cluster
// distances under the euclidean metric.
func DefaultDunnOptions() DunnOptions {
	return DunnOptions{Intra: "mean", Inter: "cent", Metric: "l2", P: 2}
}

// Metric is a distance between two vectors.
type Metric func(a, b []float64) float64

// NewMetric returns the named distance metric.
func NewMetric(name string, p float64) (Metric, error) {
	switch name {
	case "l1", "manhattan", "cityblock":
		return func(a, b []float64) float64 { return floats.Distance(a, b, 1) }, nil
	case "", "l2", "euclidean":
		return func(a, b []float64) float64 { return floats.Distance(a, b, 2) }, nil
	case "linf", "chebyshev":
		return func(a, b []float64) float64 { return floats.Distance(a, b, math.Inf(1)) }, nil
	case "minkowski":
		if p < 1 {
			return nil, zerr.With(zerr.With(domain.ErrUnknownMethod, "metric", name), "p", p)
		}
		return func(a, b []float64) float64 { return floats.Distance(a, b, p) }, nil
	case "cosine":
		return cosineDistance, nil
	default:
		return nil, zerr.With(domain.ErrUnknownMethod, "metric", name)
	}
}

func cosineDistance(a, b []float64) float64 {
	na, nb := floats.Norm(a, 2), floats.Norm(b, 2)
	if na == 0 || nb == 0 {
		return 1
	}
	return 1 - floats.Dot(a, b)/(na*nb)
}

// Dunn returns the Dunn index of the clustering: the smallest distance
// between two clusters divided by the largest cluster diameter. Clusters are
// numbered from 0 and empty clusters are ignored.
func Dunn(x domain.Matrix, clusters []int, opts DunnOptions) (float64, error) {
	d, err := NewMetric(opts.Metric, opts.P)
	if err != nil {
		return 0, err
	}
	if opts.Inter != "" && opts.Inter != "cent" {
		return 0, zerr.With(domain.ErrUnknownMethod, "inter", opts.Inter)
	}
	var intraFn func(domain.Matrix, []float64, Metric) float64
	switch opts.Intra {
	case "max":
		intraFn = intraMax
	case "", "mean":
		intraFn = intraMean
	case "cent":
		intraFn = intraCentroid
	default:
		return 0, zerr.With(domain.ErrUnknownMethod, "intra", opts.Intra)
	}

	members := groupRows(x, clusters)
	centroids := make([][]float64, 0, len(members))
	intra := 0.0
	for _, m := range members {
		c := centroid(m)
		centroids = append(centroids, c)
		intra = max(intra, intraFn(m, c, d))
	}

	inter := math.Inf(1)
	for i := range centroids {
		for j := i + 1; j < len(centroids); j++ {
			inter = min(inter, d(centroids[i], centroids[j]))
		}
	}
	return inter / intra, nil
}

// groupRows splits x by cluster, dropping empty clusters.
func groupRows(x domain.Matrix, clusters []int) []domain.Matrix {
	n := 0
	for _, c := range clusters {
		n = max(n, c+1)
	}
	groups := make([]domain.Matrix, n)
	for i, row := range x {
		groups[clusters[i]] = append(groups[clusters[i]], row)
	}
	out := groups[:0]
	for _, g := range groups {
		if len(g) > 0 {
			out = append(out, g)
		}
	}
	return out
}

func centroid(m domain.Matrix) []float64 {
	c := make([]float64, m.Cols())
	for _, row := range m {
		floats.Add(c, row)
	}
	floats.Scale(1/float64(len(m)), c)
	return c
}

// The pairwise methods cover the upper triangle including the diagonal.
func intraMax(m domain.Matrix, _ []float64, d Metric) float64 {
	best := 0.0
	for i := range m {
		for j := i; j < len(m); j++ {
			best = max(best, d(m[i], m[j]))
		}
	}
	return best
}

func intraMean(m domain.Matrix, _ []float64, d Metric) float64 {
	sum, count := 0.0, 0
	for i := range m {
		for j := i; j < len(m); j++ {
			sum += d(m[i], m[j])
			count++
		}
	}
	return sum / float64(count)
}

func intraCentroid(m domain.Matrix, c []float64, d Metric) float64 {
	sum := 0.0
	for _, row := range m {
		sum += d(row, c)
	}
	return sum / float64(len(m))
}
