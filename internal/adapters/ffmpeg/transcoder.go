// Package ffmpeg resamples audio clips with the ffmpeg binary.
package ffmpeg

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// DefaultTailLines is the number of stderr lines attached to a failure.
const DefaultTailLines = 20

// Transcoder implements ports.Transcoder by running ffmpeg.
type Transcoder struct{}

// NewTranscoder creates a new Transcoder.
func NewTranscoder() *Transcoder {
	return &Transcoder{}
}

// Args returns the ffmpeg arguments converting in to 16-bit mono WAV at
// the configured sample rate.
func Args(in, out string, opts domain.ResampleOptions) []string {
	args := append([]string{"-i", in, "-nostdin"}, opts.CodecArgs()...)
	return append(args, "-y", out)
}

// Resample runs ffmpeg on a single clip. On failure the tail of ffmpeg's
// output is attached to the error.
func (t *Transcoder) Resample(ctx context.Context, in, out string, opts domain.ResampleOptions) error {
	ring := NewLineRing(DefaultTailLines)
	// #nosec G204 -- the binary is configured by the user
	cmd := exec.CommandContext(ctx, opts.Binary(), Args(in, out, opts)...)
	cmd.Stdout = ring
	cmd.Stderr = ring

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = ctxErr
		}
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrResampleFailed.Error()), "input", in)
		if tail := ring.Lines(); len(tail) > 0 {
			wrapped = zerr.With(wrapped, "output", strings.Join(tail, "\n"))
		}
		return wrapped
	}
	return nil
}
