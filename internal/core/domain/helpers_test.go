package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/core/domain"
)

func row(vals ...float64) domain.Matrix {
	return domain.Matrix{vals}
}

func flatData() *domain.FeatureData {
	return &domain.FeatureData{
		Corpus:   "test",
		Names:    []string{"a", "b", "c", "d"},
		Features: []string{"f1", "f2"},
		X: []domain.Matrix{
			row(1, 2),
			row(3, 4),
			row(5, 6),
			row(7, 8),
		},
	}
}

func annotations(typ string, kv ...string) domain.Annotations {
	a := domain.NewAnnotations(typ)
	for i := 0; i < len(kv); i += 2 {
		a.Values[kv[i]] = kv[i+1]
	}
	return a
}

func speakerAnnotations() *domain.Annotations {
	a := annotations("speaker", "a", "s2", "b", "s1", "c", "s2", "d", "s1")
	return &a
}

func labelAnnotations() domain.Annotations {
	return annotations("label", "a", "hap", "b", "ang", "c", "neu", "d", "hap")
}

func newLabelled(t *testing.T) *domain.LabelledDataset {
	t.Helper()
	d, err := domain.NewLabelledDataset(flatData(), labelAnnotations(), speakerAnnotations(), nil)
	require.NoError(t, err)
	return d
}
