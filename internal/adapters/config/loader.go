// Package config provides the configuration loader for emorec.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only emorec.yaml schema version understood.
const SupportedVersion = "1"

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration at path, or the nearest emorec.yaml at or
// above cwd when path is empty. Without a file it returns the defaults.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	if path == "" {
		found, ok := findConfiguration(cwd)
		if !ok {
			return domain.DefaultConfig(), nil
		}
		path = found
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	var file Emorecfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if file.Version != "" && file.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("%s declares version %q, expected %q", path, file.Version, SupportedVersion))
	}

	cfg := domain.DefaultConfig()
	cfg.Path = path
	applyResample(&cfg.Resample, file.Resample)
	for name, c := range file.Corpora {
		cfg.Corpora[name] = domain.CorpusInfo{
			Name:           name,
			MaleSpeakers:   c.MaleSpeakers,
			FemaleSpeakers: c.FemaleSpeakers,
			SpeakerGroups:  c.SpeakerGroups,
		}
	}

	if file.Pipeline != nil {
		p, err := buildPipeline(filepath.Dir(path), file.Pipeline)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		cfg.Pipeline = p
	}
	return cfg, nil
}

func findConfiguration(cwd string) (string, bool) {
	currentDir := cwd
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return "", false
		}
		currentDir = parentDir
	}
}

func applyResample(opts *domain.ResampleOptions, dto *ResampleDTO) {
	if dto == nil {
		return
	}
	if dto.FFmpeg != "" {
		opts.FFmpeg = dto.FFmpeg
	}
	if dto.SampleRate > 0 {
		opts.SampleRate = dto.SampleRate
	}
	if dto.Jobs > 0 {
		opts.Jobs = dto.Jobs
	}
}

func buildPipeline(root string, dto *PipelineDTO) (*domain.Pipeline, error) {
	if dto.Dataset != "" && len(dto.Datasets) > 0 {
		return nil, zerr.With(zerr.With(domain.ErrInvalidPipeline, "field", "datasets"),
			"reason", "dataset and datasets are mutually exclusive")
	}

	scheme, err := domain.ParseScheme(dto.Normalise.Scheme)
	if err != nil {
		return nil, err
	}
	if _, err := domain.NewNormaliser(dto.Normalise.Method); err != nil {
		return nil, err
	}

	header := boolOr(dto.Header, true)
	inputs := dto.Datasets
	if dto.Dataset != "" {
		inputs = []InputDTO{dto.InputDTO}
	}

	p := &domain.Pipeline{
		MapClasses:    dto.MapClasses,
		KeepClasses:   dto.KeepClasses,
		KeepInstances: resolvePath(root, dto.KeepInstances),
		Binarise: domain.BinariseOptions{
			PositiveArousal: dto.Binarise.PositiveArousal,
			PositiveValence: dto.Binarise.PositiveValence,
		},
		Normalise: domain.NormaliseOptions{
			Scheme: scheme,
			Method: dto.Normalise.Method,
		},
		Clip: dto.Clip,
		Pad:  dto.Pad,
		Frame: domain.FrameOptions{
			Size:      dto.Frame.Size,
			Shift:     dto.Frame.Shift,
			NumFrames: dto.Frame.NumFrames,
		},
		Transpose: dto.Transpose,
		Output:    resolvePath(root, dto.Output),
	}
	for _, in := range inputs {
		p.Inputs = append(p.Inputs, domain.PipelineInput{
			Dataset:  resolvePath(root, in.Dataset),
			Labels:   resolvePath(root, in.Labels),
			Speakers: resolvePath(root, in.Speakers),
			Corpus:   in.Corpus,
			Header:   boolOr(in.Header, header),
		})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// resolvePath makes p absolute relative to root. Empty paths stay empty.
func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath comes from discovery or the --config flag
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
