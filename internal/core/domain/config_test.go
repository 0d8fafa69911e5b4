package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

func validPipeline() *domain.Pipeline {
	return &domain.Pipeline{
		Inputs: []domain.PipelineInput{{Dataset: "/data/a.csv", Header: true}},
		Output: "/out/a.arff",
	}
}

func TestPipeline_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *domain.Pipeline)
		err    error
		field  string
	}{
		{name: "valid", modify: func(*domain.Pipeline) {}},
		{
			name:   "no inputs",
			modify: func(p *domain.Pipeline) { p.Inputs = nil },
			err:    domain.ErrMissingPipelineField,
			field:  "dataset",
		},
		{
			name: "input without dataset",
			modify: func(p *domain.Pipeline) {
				p.Inputs = append(p.Inputs, domain.PipelineInput{Labels: "/data/b.csv"})
			},
			err:   domain.ErrMissingPipelineField,
			field: "dataset",
		},
		{
			name:   "no output",
			modify: func(p *domain.Pipeline) { p.Output = "" },
			err:    domain.ErrMissingPipelineField,
			field:  "output",
		},
		{
			name:   "corpus scheme on a single dataset",
			modify: func(p *domain.Pipeline) { p.Normalise.Scheme = domain.SchemeCorpus },
			err:    domain.ErrInvalidPipeline,
			field:  "normalise.scheme",
		},
		{
			name: "corpus scheme on combined datasets",
			modify: func(p *domain.Pipeline) {
				p.Inputs = append(p.Inputs, domain.PipelineInput{Dataset: "/data/b.csv"})
				p.Normalise.Scheme = domain.SchemeCorpus
			},
		},
		{
			name:   "frame without shift",
			modify: func(p *domain.Pipeline) { p.Frame = domain.FrameOptions{Size: 400} },
			err:    domain.ErrInvalidPipeline,
			field:  "frame.shift",
		},
		{
			name:   "negative clip",
			modify: func(p *domain.Pipeline) { p.Clip = -5 },
			err:    domain.ErrInvalidPipeline,
			field:  "clip",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPipeline()
			tt.modify(p)
			err := p.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.err.Error())
			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.field, zErr.Metadata()["field"])
		})
	}
}

func TestPipeline_Combined(t *testing.T) {
	p := validPipeline()
	assert.False(t, p.Combined())
	p.Inputs = append(p.Inputs, domain.PipelineInput{Dataset: "/data/b.csv"})
	assert.True(t, p.Combined())
}
