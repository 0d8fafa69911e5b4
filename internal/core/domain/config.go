package domain

import (
	"runtime"

	"go.trai.ch/zerr"
)

// DefaultSampleRate is the sample rate corpora are resampled to.
const DefaultSampleRate = 16000

// Config is the resolved project configuration.
type Config struct {
	// Path is the file the configuration was read from. Empty for defaults.
	Path     string
	Resample ResampleOptions
	Corpora  map[string]CorpusInfo
	Pipeline *Pipeline
}

// DefaultConfig returns the configuration used when no emorec.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Resample: DefaultResampleOptions(),
		Corpora:  map[string]CorpusInfo{},
	}
}

// ResampleOptions controls audio conversion.
type ResampleOptions struct {
	FFmpeg     string
	SampleRate int
	Jobs       int
}

// DefaultResampleOptions converts to 16 kHz using every CPU.
func DefaultResampleOptions() ResampleOptions {
	return ResampleOptions{
		FFmpeg:     "ffmpeg",
		SampleRate: DefaultSampleRate,
		Jobs:       runtime.NumCPU(),
	}
}

// Pipeline describes a preprocessing run. More than one input is joined into
// a combined dataset. Paths are absolute once loaded.
type Pipeline struct {
	Inputs        []PipelineInput
	MapClasses    map[string]string
	KeepClasses   []string
	KeepInstances string
	Binarise      BinariseOptions
	Normalise     NormaliseOptions
	Clip          int
	Pad           int
	Frame         FrameOptions
	Transpose     bool
	Output        string
}

// PipelineInput locates one dataset read by a pipeline.
type PipelineInput struct {
	Dataset  string
	Labels   string
	Speakers string
	// Corpus overrides the corpus name stored in the dataset file.
	Corpus string
	// Header is true when a CSV dataset starts with a header row.
	Header bool
}

// Combined reports whether the inputs are joined into a combined dataset.
func (p *Pipeline) Combined() bool { return len(p.Inputs) > 1 }

// Validate checks the settings that would otherwise only fail once the
// pipeline is running.
func (p *Pipeline) Validate() error {
	if len(p.Inputs) == 0 {
		return zerr.With(ErrMissingPipelineField, "field", "dataset")
	}
	for i, in := range p.Inputs {
		if in.Dataset == "" {
			return zerr.With(zerr.With(ErrMissingPipelineField, "field", "dataset"), "input", i)
		}
	}
	if p.Output == "" {
		return zerr.With(ErrMissingPipelineField, "field", "output")
	}
	if p.Normalise.Scheme == SchemeCorpus && !p.Combined() {
		return zerr.With(zerr.With(ErrInvalidPipeline, "field", "normalise.scheme"),
			"reason", "corpus normalisation needs more than one dataset")
	}
	if p.Clip < 0 {
		return zerr.With(ErrInvalidPipeline, "field", "clip")
	}
	if p.Pad < 0 {
		return zerr.With(ErrInvalidPipeline, "field", "pad")
	}
	if p.Frame.Size < 0 || (p.Frame.Size > 0 && p.Frame.Shift <= 0) {
		return zerr.With(ErrInvalidPipeline, "field", "frame.shift")
	}
	return nil
}

// BinariseOptions lists the classes counted as positive arousal and valence.
type BinariseOptions struct {
	PositiveArousal []string
	PositiveValence []string
}

// Enabled reports whether arousal and valence labels should be derived.
func (b BinariseOptions) Enabled() bool {
	return len(b.PositiveArousal) > 0 && len(b.PositiveValence) > 0
}

// NormaliseOptions selects the normalisation scheme and method.
type NormaliseOptions struct {
	Scheme Scheme
	Method string
}

// FrameOptions configures framing of raw signals. A zero Size disables it.
type FrameOptions struct {
	Size      int
	Shift     int
	NumFrames int
}
