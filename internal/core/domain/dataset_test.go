package domain_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/core/domain"
)

func TestNewDataset_Speakers(t *testing.T) {
	d, err := domain.NewDataset(flatData(), speakerAnnotations(), nil)
	require.NoError(t, err)

	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 2, d.NFeatures())
	assert.Equal(t, []string{"s1", "s2"}, d.Speakers())
	assert.Equal(t, []int{1, 0, 1, 0}, d.SpeakerIndices())
	assert.Equal(t, []int{2, 2}, d.SpeakerCounts())
	assert.Equal(t, [][]string{{"s1"}, {"s2"}}, d.SpeakerGroups())
	assert.Equal(t, []int{1, 0, 1, 0}, d.SpeakerGroupIndices())
	assert.Empty(t, d.MaleIndices())
	assert.Empty(t, d.FemaleIndices())
	assert.Empty(t, d.Warnings())
	assert.False(t, d.Sequential())
}

func TestNewDataset_NoSpeakers(t *testing.T) {
	d, err := domain.NewDataset(flatData(), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{domain.UnknownSpeaker}, d.Speakers())
	assert.Equal(t, []int{0, 0, 0, 0}, d.SpeakerIndices())
	assert.Equal(t, []int{4}, d.SpeakerCounts())
}

func TestNewDataset_CorpusInfo(t *testing.T) {
	info := &domain.CorpusInfo{
		Name:           "test",
		MaleSpeakers:   []string{"s1"},
		FemaleSpeakers: []string{"s2"},
		SpeakerGroups:  [][]string{{"s1", "s2"}},
	}
	d, err := domain.NewDataset(flatData(), speakerAnnotations(), info)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, d.MaleIndices())
	assert.Equal(t, []int{0, 2}, d.FemaleIndices())
	assert.Equal(t, [][]string{{"s1", "s2"}}, d.SpeakerGroups())
	assert.Equal(t, []int{0, 0, 0, 0}, d.SpeakerGroupIndices())

	d.RemoveInstances([]string{"a", "c"})
	assert.Equal(t, []string{"a", "c"}, d.Names())
	assert.Equal(t, []string{"s2"}, d.Speakers())
	assert.Empty(t, d.MaleSpeakers())
	assert.Equal(t, []string{"s2"}, d.FemaleSpeakers())
	assert.Empty(t, d.MaleIndices())
	assert.Empty(t, d.FemaleIndices())
	assert.Equal(t, [][]string{{"s2"}}, d.SpeakerGroups())
}

func TestNewDataset_MissingSpeaker(t *testing.T) {
	spk := annotations("speaker", "a", "s1")
	_, err := domain.NewDataset(flatData(), &spk, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingAnnotation.Error())
}

func TestNewDataset_ShapeMismatch(t *testing.T) {
	data := flatData()
	data.X[2] = row(1, 2, 3)
	_, err := domain.NewDataset(data, nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrShapeMismatch.Error())
}

func TestDataset_RemoveInstances(t *testing.T) {
	d, err := domain.NewDataset(flatData(), speakerAnnotations(), nil)
	require.NoError(t, err)

	d.RemoveInstances([]string{"c", "a", "missing"})

	assert.Equal(t, []string{"a", "c"}, d.Names())
	assert.Equal(t, []domain.Matrix{row(1, 2), row(5, 6)}, d.X())
	assert.Equal(t, []string{"s2"}, d.Speakers())
	assert.Equal(t, []int{0, 0}, d.SpeakerIndices())
	assert.Equal(t, []int{2}, d.SpeakerCounts())
	assert.Equal(t, [][]string{{"s2"}}, d.SpeakerGroups())
}

func TestDataset_Normalise(t *testing.T) {
	t.Run("speaker", func(t *testing.T) {
		d, err := domain.NewDataset(flatData(), speakerAnnotations(), nil)
		require.NoError(t, err)

		require.NoError(t, d.Normalise(domain.StandardScaler{}, domain.SchemeSpeaker))
		want := []domain.Matrix{row(-1, -1), row(-1, -1), row(1, 1), row(1, 1)}
		assert.Equal(t, want, d.X())

		require.NoError(t, d.Normalise(domain.StandardScaler{}, domain.SchemeSpeaker))
		assert.Equal(t, want, d.X(), "normalising twice must not change the result")
	})

	t.Run("all", func(t *testing.T) {
		d, err := domain.NewDataset(flatData(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.Normalise(domain.StandardScaler{}, domain.SchemeAll))
		s := math.Sqrt(5)
		assert.InDelta(t, -3/s, d.Instance(0)[0][0], 1e-12)
		assert.InDelta(t, -1/s, d.Instance(1)[0][1], 1e-12)
		assert.InDelta(t, 3/s, d.Instance(3)[0][1], 1e-12)
	})

	t.Run("minmax", func(t *testing.T) {
		d, err := domain.NewDataset(flatData(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.Normalise(domain.MinMaxScaler{}, domain.SchemeAll))
		assert.InDelta(t, 0.0, d.Instance(0)[0][0], 1e-12)
		assert.InDelta(t, 1.0/3, d.Instance(1)[0][0], 1e-12)
		assert.InDelta(t, 1.0, d.Instance(3)[0][1], 1e-12)
	})

	t.Run("none", func(t *testing.T) {
		d, err := domain.NewDataset(flatData(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.Normalise(domain.StandardScaler{}, domain.SchemeNone))
		assert.Equal(t, flatData().X, d.X())
	})

	t.Run("corpus needs combined dataset", func(t *testing.T) {
		d, err := domain.NewDataset(flatData(), nil, nil)
		require.NoError(t, err)

		err = d.Normalise(domain.StandardScaler{}, domain.SchemeCorpus)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrUnknownScheme.Error())
	})
}

func sequenceData() *domain.FeatureData {
	return &domain.FeatureData{
		Corpus:     "seq",
		Names:      []string{"x", "y"},
		Features:   []string{"pcm"},
		Sequential: true,
		X: []domain.Matrix{
			{{1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}, {9}, {10}},
			{{1}, {2}},
		},
	}
}

func TestDataset_PadArrays(t *testing.T) {
	d, err := domain.NewDataset(sequenceData(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, d.PadArrays(4))
	assert.Len(t, d.Instance(0), 12)
	assert.Equal(t, []float64{0}, d.Instance(0)[11])
	assert.Len(t, d.Instance(1), 4)

	require.NoError(t, d.PadArrays(4))
	assert.Len(t, d.Instance(0), 12, "multiples stay unchanged")

	err = d.PadArrays(0)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidPad.Error())
}

func TestDataset_ClipArrays(t *testing.T) {
	d, err := domain.NewDataset(sequenceData(), nil, nil)
	require.NoError(t, err)

	require.NoError(t, d.ClipArrays(3))
	assert.Equal(t, domain.Matrix{{1}, {2}, {3}}, d.Instance(0))
	assert.Equal(t, domain.Matrix{{1}, {2}}, d.Instance(1))

	err = d.ClipArrays(-1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidClip.Error())
	assert.NotContains(t, err.Error(), domain.ErrInvalidPad.Error())
}

func TestDataset_FrameArrays(t *testing.T) {
	t.Run("natural frame count", func(t *testing.T) {
		d, err := domain.NewDataset(sequenceData(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.FrameArrays(4, 2, 0))
		assert.Equal(t, domain.Matrix{
			{1, 2, 3, 4},
			{3, 4, 5, 6},
			{5, 6, 7, 8},
			{7, 8, 9, 10},
		}, d.Instance(0))
		assert.Equal(t, domain.Matrix{{1, 2, 0, 0}}, d.Instance(1))
		assert.Equal(t, 4, d.NFeatures())
		assert.True(t, d.Sequential())
	})

	t.Run("fixed frame count", func(t *testing.T) {
		d, err := domain.NewDataset(sequenceData(), nil, nil)
		require.NoError(t, err)

		require.NoError(t, d.FrameArrays(4, 2, 2))
		assert.Equal(t, domain.Matrix{{1, 2, 3, 4}, {3, 4, 5, 6}}, d.Instance(0))
		assert.Equal(t, domain.Matrix{{1, 2, 0, 0}, {0, 0, 0, 0}}, d.Instance(1))
	})

	t.Run("rejects multi-feature data", func(t *testing.T) {
		d, err := domain.NewDataset(flatData(), nil, nil)
		require.NoError(t, err)

		err = d.FrameArrays(4, 2, 0)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrNotSingleFeature.Error())
	})

	t.Run("rejects bad sizes", func(t *testing.T) {
		d, err := domain.NewDataset(sequenceData(), nil, nil)
		require.NoError(t, err)

		err = d.FrameArrays(0, 2, 0)
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrInvalidFrameSize.Error())
	})
}

func TestDataset_TransposeTime(t *testing.T) {
	d, err := domain.NewDataset(sequenceData(), nil, nil)
	require.NoError(t, err)

	d.TransposeTime()
	assert.Equal(t, domain.Matrix{{1, 2}}, d.Instance(1))
	assert.Equal(t, 10, d.Instance(0).Cols())
	assert.Equal(t, []string{"pcm"}, d.Features())
}

func TestDataset_TransposeTimeUniform(t *testing.T) {
	d, err := domain.NewDataset(flatData(), nil, nil)
	require.NoError(t, err)

	d.TransposeTime()
	assert.Equal(t, []string{"step_0"}, d.Features())
	assert.Equal(t, domain.Matrix{{1}, {2}}, d.Instance(0))
	require.NoError(t, d.FeatureData().Validate())
}

func TestDataset_StringSequences(t *testing.T) {
	d, err := domain.NewDataset(sequenceData(), nil, nil)
	require.NoError(t, err)

	s := d.String()
	assert.Contains(t, s, "Corpus: seq\n")
	assert.Contains(t, s, "2 instances\n")
	assert.Contains(t, s, "{unknown: 2}")
	assert.Contains(t, s, "min length: 2\n")
	assert.Contains(t, s, "mean length: 6\n")
	assert.Contains(t, s, "max length: 10\n")
}
