package domain

import (
	"fmt"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// CombinedCorpus is the corpus name of every combined dataset.
const CombinedCorpus = "combined"

// CombinedDataset joins several labelled datasets. Names, speakers and
// speaker groups are prefixed with their corpus name.
type CombinedDataset struct {
	LabelledDataset

	corpora       []string
	corpusIndices []int
	corpusCounts  []int
}

// NewCombinedDataset joins datasets in order. If labels is non-nil, instances
// whose class is not in labels are dropped and the classes become exactly
// the sorted labels, including ones no instance has. Corpus names must be
// distinct.
func NewCombinedDataset(labels []string, datasets ...*LabelledDataset) (*CombinedDataset, error) {
	if len(datasets) == 0 {
		return nil, ErrNoDatasets
	}

	c := &CombinedDataset{}
	c.corpus = CombinedCorpus
	c.features = slices.Clone(datasets[0].features)

	var instanceSpeakers, str []string
	for i, d := range datasets {
		if !slices.Equal(d.features, c.features) {
			return nil, zerr.With(ErrFeatureMismatch, "corpus", d.corpus)
		}
		if slices.Contains(c.corpora, d.corpus) {
			return nil, zerr.With(ErrDuplicateCorpus, "corpus", d.corpus)
		}
		prefix := d.corpus + "_"
		c.corpora = append(c.corpora, d.corpus)
		c.sequential = c.sequential || d.sequential
		c.x = append(c.x, d.x...)
		for _, n := range d.names {
			c.names = append(c.names, prefix+n)
			c.corpusIndices = append(c.corpusIndices, i)
		}
		for _, s := range d.speakerIndices {
			instanceSpeakers = append(instanceSpeakers, prefix+d.speakers[s])
		}
		for _, g := range d.speakerGroups {
			c.speakerGroups = append(c.speakerGroups, prefixAll(prefix, g))
		}
		c.maleSpeakers = append(c.maleSpeakers, prefixAll(prefix, d.maleSpeakers)...)
		c.femaleSpeakers = append(c.femaleSpeakers, prefixAll(prefix, d.femaleSpeakers)...)
		str = append(str, d.stringLabels()...)
	}

	c.speakers = sortedUnique(instanceSpeakers)
	c.speakerIndices = indexAll(c.speakers, instanceSpeakers)
	c.speakerCounts = bincount(c.speakerIndices, len(c.speakers))
	c.resetGenderIndices()
	c.resetSpeakerGroups()
	c.setLabels(str)
	c.corpusCounts = bincount(c.corpusIndices, len(c.corpora))

	if labels != nil {
		c.RemoveClasses(labels)
		c.setClasses(sortedUnique(labels))
	}
	return c, nil
}

func prefixAll(prefix string, xs []string) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = prefix + x
	}
	return out
}

func (c *CombinedDataset) subset(idx []int) {
	c.corpusIndices = pick(c.corpusIndices, idx)
	c.corpusCounts = bincount(c.corpusIndices, len(c.corpora))
	c.LabelledDataset.subset(idx)
}

// RemoveInstances keeps only the instances whose prefixed names are in keep.
func (c *CombinedDataset) RemoveInstances(keep []string) {
	c.subset(c.indicesOf(keep))
}

// RemoveClasses drops every instance whose class is not in keep.
func (c *CombinedDataset) RemoveClasses(keep []string) {
	var idx []int
	for i, y := range c.y {
		if slices.Contains(keep, c.classes[y]) {
			idx = append(idx, i)
		}
	}
	c.subset(idx)
}

// Normalise supports SchemeCorpus in addition to the Dataset schemes.
func (c *CombinedDataset) Normalise(n Normaliser, scheme Scheme) error {
	if scheme != SchemeCorpus {
		return c.Dataset.Normalise(n, scheme)
	}
	c.normaliseGroups(n, c.corpusIndices, len(c.corpora))
	return nil
}

// CorpusSplit returns the indices of instances from corpus and the indices
// of all other instances.
func (c *CombinedDataset) CorpusSplit(corpus string) (in, other []int, err error) {
	ci := slices.Index(c.corpora, corpus)
	if ci < 0 {
		return nil, nil, zerr.With(ErrUnknownCorpus, "corpus", corpus)
	}
	for i, x := range c.corpusIndices {
		if x == ci {
			in = append(in, i)
		} else {
			other = append(other, i)
		}
	}
	return in, other, nil
}

// Corpora returns the joined corpus names in order.
func (c *CombinedDataset) Corpora() []string { return c.corpora }

// CorpusIndices returns, per instance, the index into Corpora.
func (c *CombinedDataset) CorpusIndices() []int { return c.corpusIndices }

// CorpusCounts returns the number of instances per corpus.
func (c *CombinedDataset) CorpusCounts() []int { return c.corpusCounts }

func (c *CombinedDataset) String() string {
	var sb strings.Builder
	sb.WriteString(c.LabelledDataset.String())
	fmt.Fprintf(&sb, "%d corpora:\n", len(c.corpora))
	fmt.Fprintf(&sb, "\t%s\n", formatCounts(c.corpora, c.corpusCounts))
	return sb.String()
}
