package domain_test

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/core/domain"
)

func TestNewLabelledDataset(t *testing.T) {
	d := newLabelled(t)

	assert.Equal(t, []string{"ang", "hap", "neu"}, d.Classes())
	assert.Equal(t, 3, d.NClasses())
	assert.Equal(t, []int{1, 0, 2, 1}, d.Y())
	assert.Equal(t, []int{1, 2, 1}, d.ClassCounts())
	assert.Equal(t, map[string][]int{domain.LabelsAll: {1, 0, 2, 1}}, d.Labels())
	assert.Equal(t, 1, d.ClassToInt("hap"))
	assert.Equal(t, -1, d.ClassToInt("sad"))
}

func TestNewLabelledDataset_MissingLabel(t *testing.T) {
	labels := annotations("label", "a", "hap")
	_, err := domain.NewLabelledDataset(flatData(), labels, nil, nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingAnnotation.Error())
}

func TestLabelledDataset_MapClasses(t *testing.T) {
	d := newLabelled(t)

	d.MapClasses(map[string]string{"neu": "hap", "unused": "x"})

	assert.Equal(t, []string{"ang", "hap"}, d.Classes())
	assert.Equal(t, []int{1, 0, 1, 1}, d.Y())
	assert.Equal(t, []int{1, 3}, d.ClassCounts())
}

func TestLabelledDataset_RemoveClasses(t *testing.T) {
	d := newLabelled(t)

	d.RemoveClasses([]string{"hap", "neu", "sad"})

	assert.Equal(t, []string{"a", "c", "d"}, d.Names())
	assert.Equal(t, []string{"hap", "neu"}, d.Classes())
	assert.Equal(t, []int{0, 1, 0}, d.Y())
	assert.Equal(t, []int{2, 1}, d.ClassCounts())
	assert.Equal(t, []string{"s1", "s2"}, d.Speakers())
	assert.Equal(t, []int{1, 2}, d.SpeakerCounts())
	assert.Equal(t, []int{1, 1, 0}, d.SpeakerGroupIndices())
	assert.Len(t, d.X(), 3)
}

func TestLabelledDataset_RemoveInstances(t *testing.T) {
	d := newLabelled(t)

	d.RemoveInstances([]string{"b", "c"})

	assert.Equal(t, []string{"ang", "neu"}, d.Classes())
	assert.Equal(t, []int{0, 1}, d.Y())
	assert.Equal(t, []int{1, 1}, d.ClassCounts())
}

func TestLabelledDataset_Binarise(t *testing.T) {
	t.Run("per class only", func(t *testing.T) {
		d := newLabelled(t)

		d.Binarise(nil, []string{"ang"})

		labels := d.Labels()
		assert.Len(t, labels, 4)
		assert.Equal(t, []int{1, 0, 0, 1}, labels["hap"])
		assert.Equal(t, []int{0, 1, 0, 0}, labels["ang"])
		assert.NotContains(t, labels, domain.LabelsArousal)
	})

	t.Run("arousal and valence", func(t *testing.T) {
		d := newLabelled(t)

		d.Binarise([]string{"hap", "neu"}, []string{"ang", "hap"})

		labels := d.Labels()
		assert.Len(t, labels, 6)
		assert.Equal(t, []int{1, 1, 0, 1}, labels[domain.LabelsArousal])
		assert.Equal(t, []int{1, 0, 1, 1}, labels[domain.LabelsValence])
	})

	t.Run("relabelling discards binary sets", func(t *testing.T) {
		d := newLabelled(t)

		d.Binarise([]string{"hap"}, []string{"ang"})
		d.MapClasses(map[string]string{"neu": "hap"})

		assert.Len(t, d.Labels(), 1)
	})
}

func TestLabelledDataset_FeatureData(t *testing.T) {
	d := newLabelled(t)

	fd := d.FeatureData()
	assert.Equal(t, []string{"hap", "ang", "neu", "hap"}, fd.Labels)
	assert.Equal(t, d.Names(), fd.Names)
	require.NoError(t, fd.Validate())
}

func TestLabelledDataset_String(t *testing.T) {
	d := newLabelled(t)

	g := goldie.New(t)
	g.Assert(t, "labelled_summary", []byte(d.String()))
}
