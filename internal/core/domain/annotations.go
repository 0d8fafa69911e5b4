package domain

import (
	"slices"
	"strconv"

	"go.trai.ch/zerr"
)

// Annotations maps instance names to a single annotation value, such as a
// label, a speaker or a dimensional rating.
type Annotations struct {
	// Type is the annotation name, taken from the second CSV header column.
	Type   string
	Values map[string]string
}

// NewAnnotations creates an empty annotation set of the given type.
func NewAnnotations(typ string) Annotations {
	return Annotations{Type: typ, Values: make(map[string]string)}
}

// Get returns the annotation for name.
func (a Annotations) Get(name string) (string, bool) {
	v, ok := a.Values[name]
	return v, ok
}

// Lookup returns the annotation for each name in order.
// A missing name yields ErrMissingAnnotation.
func (a Annotations) Lookup(names []string) ([]string, error) {
	out := make([]string, len(names))
	for i, n := range names {
		v, ok := a.Values[n]
		if !ok {
			return nil, zerr.With(zerr.With(ErrMissingAnnotation, "instance", n), "annotation", a.Type)
		}
		out[i] = v
	}
	return out, nil
}

// Names returns the annotated names in sorted order.
func (a Annotations) Names() []string {
	names := make([]string, 0, len(a.Values))
	for n := range a.Values {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Floats converts every value to a float64.
func (a Annotations) Floats() (map[string]float64, error) {
	out := make(map[string]float64, len(a.Values))
	for n, v := range a.Values {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, ErrAnnotationParse.Error()), "instance", n)
		}
		out[n] = f
	}
	return out, nil
}

// Rating is one rater's categorical label for a unit, such as a clip.
type Rating struct {
	Unit  string
	Rater string
	Label string
}
