package ffmpeg_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/emorec/internal/adapters/ffmpeg"
	"go.trai.ch/emorec/internal/core/domain"
)

// fakeFFmpeg writes an executable script standing in for ffmpeg.
func fakeFFmpeg(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffmpeg")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o700))
	return path
}

func TestArgs(t *testing.T) {
	args := ffmpeg.Args("in.avi", "out.wav", domain.ResampleOptions{SampleRate: 16000})
	assert.Equal(t, []string{
		"-i", "in.avi", "-nostdin", "-ar", "16000", "-sample_fmt", "s16", "-ac", "1", "-y", "out.wav",
	}, args)
}

func TestTranscoder_Resample(t *testing.T) {
	// The last argument is the output path.
	bin := fakeFFmpeg(t, `for last; do :; done; echo "$@" > "$last"`)
	out := filepath.Join(t.TempDir(), "clip.wav")

	err := ffmpeg.NewTranscoder().Resample(context.Background(), "clip.avi", out,
		domain.ResampleOptions{FFmpeg: bin, SampleRate: 8000})
	require.NoError(t, err)

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "-i clip.avi -nostdin -ar 8000 -sample_fmt s16 -ac 1 -y "+out, strings.TrimSpace(string(raw)))
}

func TestTranscoder_ResampleFailure(t *testing.T) {
	bin := fakeFFmpeg(t, `echo "clip.avi: Invalid data found when processing input" >&2; exit 1`)

	err := ffmpeg.NewTranscoder().Resample(context.Background(), "clip.avi", filepath.Join(t.TempDir(), "x.wav"),
		domain.ResampleOptions{FFmpeg: bin, SampleRate: 16000})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrResampleFailed.Error())
}

func TestTranscoder_ResampleMissingBinary(t *testing.T) {
	err := ffmpeg.NewTranscoder().Resample(context.Background(), "a.wav", "b.wav",
		domain.ResampleOptions{FFmpeg: filepath.Join(t.TempDir(), "nope"), SampleRate: 16000})
	assert.ErrorContains(t, err, domain.ErrResampleFailed.Error())
}

func TestTranscoder_ResampleCancelled(t *testing.T) {
	bin := fakeFFmpeg(t, "sleep 5")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ffmpeg.NewTranscoder().Resample(ctx, "a.wav", "b.wav",
		domain.ResampleOptions{FFmpeg: bin, SampleRate: 16000})
	require.Error(t, err)
	assert.ErrorContains(t, err, context.Canceled.Error())
}
