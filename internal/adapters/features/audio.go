package features

import (
	"os"
	"path/filepath"

	"github.com/go-audio/wav"
	"go.trai.ch/emorec/internal/adapters/annotations"
	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// PCMFeature is the single feature name of raw audio datasets.
const PCMFeature = "pcm"

// AudioListBackend reads a file list of WAV clips as a raw audio dataset.
// Each clip becomes a T x 1 sequence of samples scaled to [-1, 1]. Multi
// channel clips are mixed down to mono. It cannot write.
type AudioListBackend struct{}

// Read implements Backend. The corpus defaults to the name of the directory
// holding the list.
func (AudioListBackend) Read(path string, opts domain.FormatOptions) (*domain.FeatureData, error) {
	paths, err := annotations.NewStore().ReadFileList(path)
	if err != nil {
		return nil, err
	}

	data := &domain.FeatureData{
		Corpus:     opts.Corpus,
		Features:   []string{PCMFeature},
		Sequential: true,
	}
	if data.Corpus == "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrDatasetReadFailed.Error()), "path", path)
		}
		data.Corpus = filepath.Base(filepath.Dir(abs))
	}

	for _, p := range paths {
		m, err := decodeWAV(p)
		if err != nil {
			return nil, err
		}
		data.Names = append(data.Names, domain.FileStem(p))
		data.X = append(data.X, m)
	}
	return data, nil
}

// Write implements Backend and always fails.
func (AudioListBackend) Write(path string, _ *domain.FeatureData, _ domain.FormatOptions) error {
	return zerr.With(domain.ErrReadOnlyFormat, "path", path)
}

func decodeWAV(path string) (domain.Matrix, error) {
	wrap := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrAudioDecodeFailed.Error()), "path", path)
	}

	// #nosec G304 -- paths come from the file list
	f, err := os.Open(path)
	if err != nil {
		return nil, wrap(err)
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, wrap(zerr.New("not a valid WAV file"))
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, wrap(err)
	}

	channels := max(buf.Format.NumChannels, 1)
	depth := buf.SourceBitDepth
	if depth <= 0 || depth > 32 {
		return nil, wrap(zerr.With(zerr.New("unsupported bit depth"), "bits", depth))
	}
	scale := float64(int64(1) << (depth - 1))
	offset := 0.0
	if depth == 8 {
		// 8-bit PCM is unsigned.
		offset = scale
	}

	frames := len(buf.Data) / channels
	m := domain.NewMatrix(frames, 1)
	for t := range frames {
		sum := 0.0
		for c := range channels {
			sum += (float64(buf.Data[t*channels+c]) - offset) / scale
		}
		m[t][0] = sum / float64(channels)
	}
	return m, nil
}
