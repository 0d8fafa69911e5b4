package corpus

import (
	"context"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

var urduEmotions = map[byte]string{
	'A': "anger",
	'S': "sadness",
	'H': "happiness",
	'N': "neutral",
}

// URDU processes the URDU corpus, laid out as <emotion>/<clip>.wav. Clip
// stems look like SM1_F10_A010: the speaker is everything before the first
// underscore and the emotion is the letter after the last one.
type URDU struct{}

// Name implements Processor.
func (URDU) Name() string { return "urdu" }

// Process implements Processor.
func (URDU) Process(ctx context.Context, env Env) (*domain.Report, error) {
	paths, err := env.glob("*/*.wav")
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, zerr.With(domain.ErrNoAudioFiles, "dir", env.InputDir)
	}

	labels := make(map[string]string, len(paths))
	speakers := make(map[string]string, len(paths))
	for _, p := range paths {
		stem := domain.FileStem(p)
		first, last := strings.IndexByte(stem, '_'), strings.LastIndexByte(stem, '_')
		if first < 0 || last == len(stem)-1 {
			return nil, zerr.With(domain.ErrAnnotationParse, "clip", stem)
		}
		label, ok := urduEmotions[stem[last+1]]
		if !ok {
			return nil, zerr.With(zerr.With(domain.ErrUnknownClass, "clip", stem), "code", string(stem[last+1]))
		}
		labels[stem] = label
		speakers[stem] = stem[:first]
	}

	report := domain.NewReport(URDU{}.Name())
	if env.Resample {
		outputs, err := env.Resampler.ResampleAll(ctx, paths, env.ResampleDir())
		if err != nil {
			return nil, err
		}
		if err := env.writeFileList(report, "files.txt", outputs); err != nil {
			return nil, err
		}
	}
	if err := env.writeAnnotations(report, "label", labels); err != nil {
		return nil, err
	}
	if err := env.writeAnnotations(report, "speaker", speakers); err != nil {
		return nil, err
	}
	return report, nil
}
