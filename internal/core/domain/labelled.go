package domain

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

const (
	// LabelsAll is the label set holding the class index of every instance.
	LabelsAll = "all"
	// LabelsArousal is the binary arousal label set.
	LabelsArousal = "arousal"
	// LabelsValence is the binary valence label set.
	LabelsValence = "valence"
)

// LabelledDataset is a Dataset with one discrete class label per instance.
type LabelledDataset struct {
	Dataset

	classes     []string
	y           []int
	classCounts []int
	binary      map[string][]int
}

// NewLabelledDataset builds a labelled dataset. Every instance must have a
// label in labels.
func NewLabelledDataset(
	data *FeatureData,
	labels Annotations,
	speakers *Annotations,
	info *CorpusInfo,
) (*LabelledDataset, error) {
	d, err := NewDataset(data, speakers, info)
	if err != nil {
		return nil, err
	}
	str, err := labels.Lookup(d.names)
	if err != nil {
		return nil, err
	}
	ld := &LabelledDataset{Dataset: *d}
	ld.setLabels(str)
	return ld, nil
}

// setLabels replaces the classes with the sorted set of str and recomputes
// y and the counts. Binarised label sets are discarded.
func (d *LabelledDataset) setLabels(str []string) {
	d.classes = sortedUnique(str)
	d.y = indexAll(d.classes, str)
	d.classCounts = bincount(d.y, len(d.classes))
	d.binary = nil
}

// setClasses fixes the class list to classes, which must be sorted and
// hold every current label. Classes without instances are kept.
func (d *LabelledDataset) setClasses(classes []string) {
	str := d.stringLabels()
	d.classes = classes
	d.y = indexAll(d.classes, str)
	d.classCounts = bincount(d.y, len(d.classes))
	d.binary = nil
}

func (d *LabelledDataset) stringLabels() []string {
	out := make([]string, len(d.y))
	for i, c := range d.y {
		out[i] = d.classes[c]
	}
	return out
}

// subset keeps the instances at idx. Classes without instances are dropped.
func (d *LabelledDataset) subset(idx []int) {
	str := pick(d.stringLabels(), idx)
	d.Dataset.subset(idx)
	d.setLabels(str)
}

// RemoveInstances keeps only the instances whose names are in keep.
func (d *LabelledDataset) RemoveInstances(keep []string) {
	d.subset(d.indicesOf(keep))
}

// RemoveClasses drops every instance whose class is not in keep.
func (d *LabelledDataset) RemoveClasses(keep []string) {
	var idx []int
	for i, c := range d.y {
		if slices.Contains(keep, d.classes[c]) {
			idx = append(idx, i)
		}
	}
	d.subset(idx)
}

// MapClasses renames classes through mapping. Classes mapped to the same
// name are merged and classes missing from mapping are kept.
func (d *LabelledDataset) MapClasses(mapping map[string]string) {
	str := d.stringLabels()
	for i, s := range str {
		if to, ok := mapping[s]; ok {
			str[i] = to
		}
	}
	d.setLabels(str)
}

// Binarise adds one 0/1 label set per class. When both positive lists are
// given it also adds arousal and valence label sets.
func (d *LabelledDataset) Binarise(posValence, posArousal []string) {
	d.binary = make(map[string][]int, len(d.classes)+2)
	for c, name := range d.classes {
		col := make([]int, len(d.y))
		for i, y := range d.y {
			if y == c {
				col[i] = 1
			}
		}
		d.binary[name] = col
	}
	if len(posValence) == 0 || len(posArousal) == 0 {
		return
	}
	d.binary[LabelsArousal] = d.classIndicator(posArousal)
	d.binary[LabelsValence] = d.classIndicator(posValence)
}

func (d *LabelledDataset) classIndicator(positive []string) []int {
	out := make([]int, len(d.y))
	for i, y := range d.y {
		if slices.Contains(positive, d.classes[y]) {
			out[i] = 1
		}
	}
	return out
}

// ClassToInt returns the index of class c, or -1 if it is unknown.
func (d *LabelledDataset) ClassToInt(c string) int {
	return slices.Index(d.classes, c)
}

// Classes returns the sorted class names.
func (d *LabelledDataset) Classes() []string { return d.classes }

// NClasses returns the number of classes.
func (d *LabelledDataset) NClasses() int { return len(d.classes) }

// Y returns the class index of each instance.
func (d *LabelledDataset) Y() []int { return d.y }

// ClassCounts returns the number of instances per class.
func (d *LabelledDataset) ClassCounts() []int { return d.classCounts }

// Labels returns every label set keyed by name. The LabelsAll set is always
// present; per-class, arousal and valence sets appear after Binarise.
func (d *LabelledDataset) Labels() map[string][]int {
	out := maps.Clone(d.binary)
	if out == nil {
		out = make(map[string][]int, 1)
	}
	out[LabelsAll] = d.y
	return out
}

// FeatureData exports the dataset content together with its string labels.
func (d *LabelledDataset) FeatureData() *FeatureData {
	fd := d.Dataset.FeatureData()
	fd.Labels = d.stringLabels()
	return fd
}

func (d *LabelledDataset) String() string {
	var sb strings.Builder
	sb.WriteString(d.Dataset.String())
	fmt.Fprintf(&sb, "%d classes:\n", len(d.classes))
	fmt.Fprintf(&sb, "\t%s\n", formatCounts(d.classes, d.classCounts))
	return sb.String()
}
