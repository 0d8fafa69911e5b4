package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/core/domain"
)

func secondCorpus(t *testing.T) *domain.LabelledDataset {
	t.Helper()
	data := &domain.FeatureData{
		Corpus:   "c2",
		Names:    []string{"a", "b"},
		Features: []string{"f1", "f2"},
		X:        []domain.Matrix{row(10, 20), row(30, 40)},
	}
	d, err := domain.NewLabelledDataset(data, annotations("label", "a", "sad", "b", "hap"), nil, nil)
	require.NoError(t, err)
	return d
}

func firstCorpus(t *testing.T) *domain.LabelledDataset {
	t.Helper()
	d := newLabelled(t)
	d.SetCorpus("c1")
	return d
}

func TestNewCombinedDataset(t *testing.T) {
	c, err := domain.NewCombinedDataset(nil, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	assert.Equal(t, domain.CombinedCorpus, c.Corpus())
	assert.Equal(t, []string{"c1_a", "c1_b", "c1_c", "c1_d", "c2_a", "c2_b"}, c.Names())
	assert.Equal(t, []string{"c1", "c2"}, c.Corpora())
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1}, c.CorpusIndices())
	assert.Equal(t, []int{4, 2}, c.CorpusCounts())
	assert.Equal(t, []string{"ang", "hap", "neu", "sad"}, c.Classes())
	assert.Equal(t, []int{1, 0, 2, 1, 3, 1}, c.Y())
	assert.Equal(t, []string{"c1_s1", "c1_s2", "c2_unknown"}, c.Speakers())
	assert.Equal(t, []int{1, 0, 1, 0, 2, 2}, c.SpeakerIndices())
	assert.Equal(t, [][]string{{"c1_s1"}, {"c1_s2"}, {"c2_unknown"}}, c.SpeakerGroups())
}

func TestNewCombinedDataset_Labels(t *testing.T) {
	c, err := domain.NewCombinedDataset([]string{"hap", "sad"}, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"c1_a", "c1_d", "c2_a", "c2_b"}, c.Names())
	assert.Equal(t, []string{"hap", "sad"}, c.Classes())
	assert.Equal(t, []int{0, 0, 1, 0}, c.Y())
	assert.Equal(t, []int{0, 0, 1, 1}, c.CorpusIndices())
	assert.Equal(t, []int{2, 2}, c.CorpusCounts())
	assert.Equal(t, []string{"c1_s1", "c1_s2", "c2_unknown"}, c.Speakers())
	assert.Len(t, c.X(), 4)
}

func TestNewCombinedDataset_LabelsWithoutInstances(t *testing.T) {
	c, err := domain.NewCombinedDataset([]string{"sad", "fear", "hap"}, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	assert.Equal(t, []string{"fear", "hap", "sad"}, c.Classes())
	assert.Equal(t, []int{1, 1, 2, 1}, c.Y())
	assert.Equal(t, []int{0, 3, 1}, c.ClassCounts())
	assert.Equal(t, 1, c.ClassToInt("hap"))
}

func TestNewCombinedDataset_Errors(t *testing.T) {
	_, err := domain.NewCombinedDataset(nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrNoDatasets.Error())

	other := &domain.FeatureData{
		Corpus:   "c3",
		Names:    []string{"z"},
		Features: []string{"g"},
		X:        []domain.Matrix{row(1)},
	}
	d, err := domain.NewLabelledDataset(other, annotations("label", "z", "hap"), nil, nil)
	require.NoError(t, err)

	_, err = domain.NewCombinedDataset(nil, firstCorpus(t), d)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFeatureMismatch.Error())

	_, err = domain.NewCombinedDataset(nil, firstCorpus(t), firstCorpus(t))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrDuplicateCorpus.Error())
}

func TestCombinedDataset_CorpusSplit(t *testing.T) {
	c, err := domain.NewCombinedDataset(nil, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	in, other, err := c.CorpusSplit("c2")
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, in)
	assert.Equal(t, []int{0, 1, 2, 3}, other)

	_, _, err = c.CorpusSplit("nope")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownCorpus.Error())
}

func TestCombinedDataset_NormaliseCorpus(t *testing.T) {
	c, err := domain.NewCombinedDataset(nil, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	require.NoError(t, c.Normalise(domain.StandardScaler{}, domain.SchemeCorpus))
	assert.Equal(t, row(-1, -1), c.Instance(4))
	assert.Equal(t, row(1, 1), c.Instance(5))
}

func TestCombinedDataset_RemoveInstances(t *testing.T) {
	c, err := domain.NewCombinedDataset(nil, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	c.RemoveInstances([]string{"c2_b", "c1_b"})

	assert.Equal(t, []string{"c1_b", "c2_b"}, c.Names())
	assert.Equal(t, []int{0, 1}, c.CorpusIndices())
	assert.Equal(t, []int{1, 1}, c.CorpusCounts())
	assert.Equal(t, []string{"ang", "hap"}, c.Classes())
}

func TestCombinedDataset_String(t *testing.T) {
	c, err := domain.NewCombinedDataset(nil, firstCorpus(t), secondCorpus(t))
	require.NoError(t, err)

	s := c.String()
	assert.Contains(t, s, "Corpus: combined\n")
	assert.Contains(t, s, "4 classes:\n")
	assert.Contains(t, s, "2 corpora:\n\t{c1: 4, c2: 2}\n")
}
