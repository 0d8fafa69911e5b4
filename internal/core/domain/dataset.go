package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// UnknownSpeaker is the single speaker assigned when no speaker annotations
// are given.
const UnknownSpeaker = "unknown"

// Dataset is a set of named instances with feature matrices and speaker
// information.
type Dataset struct {
	corpus     string
	names      []string
	features   []string
	x          []Matrix
	sequential bool

	speakers            []string
	speakerIndices      []int
	speakerCounts       []int
	maleSpeakers        []string
	femaleSpeakers      []string
	maleIndices         []int
	femaleIndices       []int
	speakerGroups       [][]string
	speakerGroupIndices []int

	warnings []string
}

// NewDataset builds a dataset from raw feature data. If speakers is nil all
// instances are assigned to UnknownSpeaker. Corpus metadata, when given,
// supplies gender lists and speaker groups. The dataset takes ownership of
// the instance matrices in data.
func NewDataset(data *FeatureData, speakers *Annotations, info *CorpusInfo) (*Dataset, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	d := &Dataset{
		corpus:     data.Corpus,
		names:      slices.Clone(data.Names),
		features:   slices.Clone(data.Features),
		x:          slices.Clone(data.X),
		sequential: data.Sequential,
	}

	if speakers != nil {
		spk, err := speakers.Lookup(d.names)
		if err != nil {
			return nil, err
		}
		d.speakers = sortedUnique(spk)
		d.speakerIndices = indexAll(d.speakers, spk)
		if info != nil {
			d.maleSpeakers = slices.Clone(info.MaleSpeakers)
			d.femaleSpeakers = slices.Clone(info.FemaleSpeakers)
			d.speakerGroups = cloneGroups(info.SpeakerGroups)
		}
	} else {
		d.speakers = []string{UnknownSpeaker}
		d.speakerIndices = make([]int, len(d.names))
	}

	d.speakerCounts = bincount(d.speakerIndices, len(d.speakers))
	if slices.Contains(d.speakerCounts, 0) {
		d.warnings = append(d.warnings, "some speakers have no corresponding instances")
	}

	d.resetGenderIndices()
	d.resetSpeakerGroups()
	return d, nil
}

// resetGenderIndices recomputes the male and female instance indices. Both
// stay empty unless both speaker lists are known.
func (d *Dataset) resetGenderIndices() {
	d.maleIndices, d.femaleIndices = nil, nil
	if len(d.maleSpeakers) == 0 || len(d.femaleSpeakers) == 0 {
		return
	}
	for i, s := range d.speakerIndices {
		name := d.speakers[s]
		switch {
		case slices.Contains(d.maleSpeakers, name):
			d.maleIndices = append(d.maleIndices, i)
		case slices.Contains(d.femaleSpeakers, name):
			d.femaleIndices = append(d.femaleIndices, i)
		}
	}
}

// resetSpeakerGroups restricts the groups to present speakers, gives every
// ungrouped speaker its own group and recomputes the group indices.
func (d *Dataset) resetSpeakerGroups() {
	grouped := make(map[string]int, len(d.speakers))
	var groups [][]string
	for _, g := range d.speakerGroups {
		var members []string
		for _, s := range g {
			if _, seen := grouped[s]; seen || !slices.Contains(d.speakers, s) {
				continue
			}
			members = append(members, s)
		}
		if len(members) == 0 {
			continue
		}
		for _, s := range members {
			grouped[s] = len(groups)
		}
		groups = append(groups, members)
	}
	for _, s := range d.speakers {
		if _, ok := grouped[s]; !ok {
			grouped[s] = len(groups)
			groups = append(groups, []string{s})
		}
	}
	d.speakerGroups = groups

	d.speakerGroupIndices = make([]int, len(d.speakerIndices))
	for i, s := range d.speakerIndices {
		d.speakerGroupIndices[i] = grouped[d.speakers[s]]
	}
}

// subset keeps only the instances at idx, dropping speakers and groups that
// no longer have instances.
func (d *Dataset) subset(idx []int) {
	d.names = pick(d.names, idx)
	d.x = pick(d.x, idx)

	oldSpeakers := d.speakers
	used := sortedUnique(pick(d.speakerIndices, idx))
	d.speakers = pick(oldSpeakers, used)
	remap := make(map[int]int, len(used))
	for n, o := range used {
		remap[o] = n
	}
	newIndices := make([]int, len(idx))
	for k, i := range idx {
		newIndices[k] = remap[d.speakerIndices[i]]
	}
	d.speakerIndices = newIndices
	d.speakerCounts = bincount(d.speakerIndices, len(d.speakers))

	present := func(s string) bool { return slices.Contains(d.speakers, s) }
	d.maleSpeakers = slices.DeleteFunc(slices.Clone(d.maleSpeakers), func(s string) bool { return !present(s) })
	d.femaleSpeakers = slices.DeleteFunc(slices.Clone(d.femaleSpeakers), func(s string) bool { return !present(s) })

	d.resetGenderIndices()
	d.resetSpeakerGroups()
}

// RemoveInstances keeps only the instances whose names are in keep.
func (d *Dataset) RemoveInstances(keep []string) {
	d.subset(d.indicesOf(keep))
}

func (d *Dataset) indicesOf(keep []string) []int {
	set := make(map[string]struct{}, len(keep))
	for _, k := range keep {
		set[k] = struct{}{}
	}
	var idx []int
	for i, n := range d.names {
		if _, ok := set[n]; ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// Normalise transforms the data in place. SchemeAll fits the normaliser on
// all instances, SchemeSpeaker fits it separately for each speaker.
func (d *Dataset) Normalise(n Normaliser, scheme Scheme) error {
	switch scheme {
	case SchemeNone:
		return nil
	case SchemeAll:
		n.FitTransform(flatten(d.x, allIndices(len(d.x))))
		return nil
	case SchemeSpeaker:
		d.normaliseGroups(n, d.speakerIndices, len(d.speakers))
		return nil
	default:
		return zerr.With(ErrUnknownScheme, "scheme", string(scheme))
	}
}

// normaliseGroups fits n once per group. Empty groups are skipped.
func (d *Dataset) normaliseGroups(n Normaliser, assignment []int, groups int) {
	members := make([][]int, groups)
	for i, g := range assignment {
		members[g] = append(members[g], i)
	}
	for _, idx := range members {
		if len(idx) == 0 {
			continue
		}
		n.FitTransform(flatten(d.x, idx))
	}
}

// PadArrays zero-pads every instance along the time axis up to the next
// multiple of pad.
func (d *Dataset) PadArrays(pad int) error {
	if pad <= 0 {
		return zerr.With(ErrInvalidPad, "pad", pad)
	}
	for i, m := range d.x {
		rem := len(m) % pad
		if rem == 0 {
			continue
		}
		cols := m.Cols()
		if cols == 0 {
			cols = len(d.features)
		}
		d.x[i] = append(m, NewMatrix(pad-rem, cols)...)
	}
	return nil
}

// ClipArrays truncates every instance to at most length time steps.
func (d *Dataset) ClipArrays(length int) error {
	if length <= 0 {
		return zerr.With(ErrInvalidClip, "length", length)
	}
	for i, m := range d.x {
		if len(m) > length {
			d.x[i] = m[:length:length]
		}
	}
	return nil
}

// FrameArrays splits single-feature signals into overlapping frames of size
// samples, shift samples apart. Signals shorter than one frame are
// zero-padded to a single frame. If numFrames is positive every instance is
// truncated or zero-padded to exactly that many frames.
func (d *Dataset) FrameArrays(size, shift, numFrames int) error {
	if size <= 0 || shift <= 0 {
		return zerr.With(zerr.With(ErrInvalidFrameSize, "size", size), "shift", shift)
	}
	for i, m := range d.x {
		if m.Cols() > 1 {
			return zerr.With(ErrNotSingleFeature, "instance", d.names[i])
		}
	}

	for i, m := range d.x {
		signal := m.Column(0)
		filled := 1
		if len(signal) > size {
			filled = (len(signal)-size)/shift + 1
		}
		n := filled
		if numFrames > 0 {
			n = numFrames
		}
		frames := NewMatrix(n, size)
		for f := range min(n, filled) {
			start := f * shift
			copy(frames[f], signal[start:min(start+size, len(signal))])
		}
		d.x[i] = frames
	}

	d.features = make([]string, size)
	for j := range size {
		d.features[j] = fmt.Sprintf("sample_%d", j)
	}
	d.sequential = true
	return nil
}

// TransposeTime swaps the time and feature axes of every instance. When all
// instances end up with the same width the features are renamed step_0,
// step_1 and so on. Otherwise the feature names are left as they were.
func (d *Dataset) TransposeTime() {
	width := -1
	for i, m := range d.x {
		d.x[i] = m.Transpose()
		switch c := d.x[i].Cols(); {
		case width == -1:
			width = c
		case width != c:
			width = -2
		}
	}
	if width < 0 {
		return
	}
	d.features = make([]string, width)
	for j := range width {
		d.features[j] = fmt.Sprintf("step_%d", j)
	}
}

// SetCorpus overrides the corpus name.
func (d *Dataset) SetCorpus(corpus string) {
	d.corpus = corpus
}

// FeatureData exports the dataset content for writing. Labels are not
// included.
func (d *Dataset) FeatureData() *FeatureData {
	return &FeatureData{
		Corpus:     d.corpus,
		Names:      d.names,
		Features:   d.features,
		X:          d.x,
		Sequential: d.sequential,
	}
}

// Corpus returns the corpus this dataset represents.
func (d *Dataset) Corpus() string { return d.corpus }

// Len returns the number of instances.
func (d *Dataset) Len() int { return len(d.names) }

// Names returns the instance names.
func (d *Dataset) Names() []string { return d.names }

// Features returns the feature names.
func (d *Dataset) Features() []string { return d.features }

// NFeatures returns the number of features.
func (d *Dataset) NFeatures() int { return len(d.features) }

// X returns the per-instance data matrices.
func (d *Dataset) X() []Matrix { return d.x }

// Instance returns the data matrix of instance i.
func (d *Dataset) Instance(i int) Matrix { return d.x[i] }

// Sequential reports whether instances are sequences rather than vectors.
func (d *Dataset) Sequential() bool { return d.sequential }

// Speakers returns the sorted speaker names.
func (d *Dataset) Speakers() []string { return d.speakers }

// SpeakerIndices returns, per instance, the index into Speakers.
func (d *Dataset) SpeakerIndices() []int { return d.speakerIndices }

// SpeakerCounts returns the number of instances per speaker.
func (d *Dataset) SpeakerCounts() []int { return d.speakerCounts }

// MaleSpeakers returns the male speakers present in the dataset.
func (d *Dataset) MaleSpeakers() []string { return d.maleSpeakers }

// FemaleSpeakers returns the female speakers present in the dataset.
func (d *Dataset) FemaleSpeakers() []string { return d.femaleSpeakers }

// MaleIndices returns the indices of instances with male speakers.
func (d *Dataset) MaleIndices() []int { return d.maleIndices }

// FemaleIndices returns the indices of instances with female speakers.
func (d *Dataset) FemaleIndices() []int { return d.femaleIndices }

// SpeakerGroups returns the speaker groups.
func (d *Dataset) SpeakerGroups() [][]string { return d.speakerGroups }

// SpeakerGroupIndices returns, per instance, the index into SpeakerGroups.
func (d *Dataset) SpeakerGroupIndices() []int { return d.speakerGroupIndices }

// Warnings returns non-fatal issues found while building the dataset.
func (d *Dataset) Warnings() []string { return d.warnings }

// String returns a human-readable summary.
func (d *Dataset) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nCorpus: %s\n", d.corpus)
	fmt.Fprintf(&sb, "%d instances\n", d.Len())
	fmt.Fprintf(&sb, "%d features\n", d.NFeatures())
	fmt.Fprintf(&sb, "%d speakers:\n", len(d.speakers))
	fmt.Fprintf(&sb, "\t%s\n", formatCounts(d.speakers, d.speakerCounts))
	if d.sequential && d.Len() > 0 {
		lo, hi, total := len(d.x[0]), len(d.x[0]), 0
		for _, m := range d.x {
			lo = min(lo, len(m))
			hi = max(hi, len(m))
			total += len(m)
		}
		sb.WriteString("Sequences:\n")
		fmt.Fprintf(&sb, "min length: %d\n", lo)
		fmt.Fprintf(&sb, "mean length: %g\n", float64(total)/float64(d.Len()))
		fmt.Fprintf(&sb, "max length: %d\n", hi)
	}
	return sb.String()
}

func formatCounts(keys []string, counts []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s: %d", k, counts[i])
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func sortedUnique[T interface{ ~int | ~string }](xs []T) []T {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}

// indexAll returns the position of each value in the sorted keys.
func indexAll(sortedKeys, values []string) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i], _ = slices.BinarySearch(sortedKeys, v)
	}
	return out
}

func bincount(xs []int, n int) []int {
	counts := make([]int, n)
	for _, x := range xs {
		counts[x]++
	}
	return counts
}

func pick[T any](xs []T, idx []int) []T {
	out := make([]T, len(idx))
	for k, i := range idx {
		out[k] = xs[i]
	}
	return out
}

func allIndices(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

func cloneGroups(groups [][]string) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = slices.Clone(g)
	}
	return out
}
