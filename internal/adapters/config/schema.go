package config

// Emorecfile represents the structure of the emorec.yaml configuration file.
type Emorecfile struct {
	Version  string               `yaml:"version"`
	Resample *ResampleDTO         `yaml:"resample"`
	Corpora  map[string]CorpusDTO `yaml:"corpora"`
	Pipeline *PipelineDTO         `yaml:"pipeline"`
}

// ResampleDTO represents the resample section. Zero values keep the defaults.
type ResampleDTO struct {
	FFmpeg     string `yaml:"ffmpeg"`
	SampleRate int    `yaml:"sample_rate"`
	Jobs       int    `yaml:"jobs"`
}

// CorpusDTO represents speaker metadata for one corpus.
type CorpusDTO struct {
	MaleSpeakers   []string   `yaml:"male_speakers"`
	FemaleSpeakers []string   `yaml:"female_speakers"`
	SpeakerGroups  [][]string `yaml:"speaker_groups"`
}

// PipelineDTO represents the preprocess pipeline section. A single dataset
// is given inline; several datasets are listed under datasets and combined.
type PipelineDTO struct {
	InputDTO      `yaml:",inline"`
	Datasets      []InputDTO        `yaml:"datasets"`
	MapClasses    map[string]string `yaml:"map_classes"`
	KeepClasses   []string          `yaml:"keep_classes"`
	KeepInstances string            `yaml:"keep_instances"`
	Binarise      BinariseDTO       `yaml:"binarise"`
	Normalise     NormaliseDTO      `yaml:"normalise"`
	Clip          int               `yaml:"clip"`
	Pad           int               `yaml:"pad"`
	Frame         FrameDTO          `yaml:"frame"`
	Transpose     bool              `yaml:"transpose"`
	Output        string            `yaml:"output"`
}

// InputDTO locates one pipeline dataset. Header defaults to true.
type InputDTO struct {
	Dataset  string `yaml:"dataset"`
	Labels   string `yaml:"labels"`
	Speakers string `yaml:"speakers"`
	Corpus   string `yaml:"corpus"`
	Header   *bool  `yaml:"header"`
}

// BinariseDTO lists the positive arousal and valence classes.
type BinariseDTO struct {
	PositiveArousal []string `yaml:"positive_arousal"`
	PositiveValence []string `yaml:"positive_valence"`
}

// NormaliseDTO selects the normalisation scheme and method.
type NormaliseDTO struct {
	Scheme string `yaml:"scheme"`
	Method string `yaml:"method"`
}

// FrameDTO configures framing of raw signals.
type FrameDTO struct {
	Size      int `yaml:"size"`
	Shift     int `yaml:"shift"`
	NumFrames int `yaml:"num_frames"`
}
