package domain

import "go.trai.ch/zerr"

// FeatureData is the raw content of a dataset file, before any speaker or
// label information is attached.
type FeatureData struct {
	Corpus     string
	Names      []string
	Features   []string
	X          []Matrix
	Sequential bool
	// Labels holds an optional per-instance nominal label read from the file.
	Labels []string
}

// Validate checks that names, instances and labels line up and that every
// instance has one column per feature.
func (f *FeatureData) Validate() error {
	if len(f.Names) != len(f.X) {
		return zerr.With(zerr.With(ErrShapeMismatch, "names", len(f.Names)), "instances", len(f.X))
	}
	if f.Labels != nil && len(f.Labels) != len(f.Names) {
		return zerr.With(zerr.With(ErrShapeMismatch, "names", len(f.Names)), "labels", len(f.Labels))
	}
	for i, m := range f.X {
		for _, row := range m {
			if len(row) != len(f.Features) {
				return zerr.With(zerr.With(ErrShapeMismatch, "instance", f.Names[i]), "columns", len(row))
			}
		}
	}
	return nil
}

// LabelAnnotations returns the embedded labels as an annotation set, or
// false if the file had no label column.
func (f *FeatureData) LabelAnnotations() (Annotations, bool) {
	if f.Labels == nil {
		return Annotations{}, false
	}
	a := NewAnnotations("label")
	for i, n := range f.Names {
		a.Values[n] = f.Labels[i]
	}
	return a, true
}

// FormatOptions tunes how dataset files are read and written. Not every
// format uses every option.
type FormatOptions struct {
	// Corpus names the corpus for formats that do not store it.
	Corpus string
	// Header reads or writes a header row in CSV files.
	Header bool
	// Label treats the last CSV column as a nominal label.
	Label bool
}
