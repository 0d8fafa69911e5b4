package ports

import (
	"context"

	"go.trai.ch/emorec/internal/core/domain"
)

// Transcoder converts a single audio file.
//
//go:generate mockgen -source=transcoder.go -destination=mocks/mock_transcoder.go -package=mocks
type Transcoder interface {
	// Resample writes in as 16-bit mono WAV at the configured rate to out.
	Resample(ctx context.Context, in, out string, opts domain.ResampleOptions) error
}

// Resampler converts batches of audio files into a directory.
type Resampler interface {
	// ResampleAll converts every path into dir as <stem>.wav and returns the
	// output paths in input order.
	ResampleAll(ctx context.Context, paths []string, dir string) ([]string, error)
}
