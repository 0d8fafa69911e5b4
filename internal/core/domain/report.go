package domain

import (
	"fmt"
	"strings"
)

// Report holds the named results of processing a corpus, in insertion order.
type Report struct {
	Corpus  string
	keys    []string
	metrics map[string]float64
	Files   []string
}

// NewReport creates an empty report for corpus.
func NewReport(corpus string) *Report {
	return &Report{Corpus: corpus, metrics: map[string]float64{}}
}

// Set records a metric, keeping the first insertion position.
func (r *Report) Set(key string, v float64) {
	if _, ok := r.metrics[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.metrics[key] = v
}

// Get returns a metric.
func (r *Report) Get(key string) (float64, bool) {
	v, ok := r.metrics[key]
	return v, ok
}

// AddFile records a written output file.
func (r *Report) AddFile(path string) {
	r.Files = append(r.Files, path)
}

// Lines renders the metrics as "key: value" lines.
func (r *Report) Lines() []string {
	out := make([]string, len(r.keys))
	for i, k := range r.keys {
		out[i] = fmt.Sprintf("%s: %.3f", k, r.metrics[k])
	}
	return out
}

func (r *Report) String() string {
	return strings.Join(r.Lines(), "\n")
}
