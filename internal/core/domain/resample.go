package domain

import (
	"strconv"
	"strings"
)

// ResampleRecord is the cached result of converting one audio file.
type ResampleRecord struct {
	Input      string `json:"input"`
	Output     string `json:"output"`
	InputHash  string `json:"input_hash"`
	SampleRate int    `json:"sample_rate"`
	// Command is the ffmpeg binary and output options used.
	Command string `json:"command"`
}

// FormatHash renders a file hash the way records store it.
func FormatHash(h uint64) string {
	return strconv.FormatUint(h, 16)
}

// Matches reports whether the record describes converting an input with the
// given hash using opts.
func (r ResampleRecord) Matches(inputHash string, opts ResampleOptions) bool {
	return r.InputHash == inputHash && r.SampleRate == opts.SampleRate && r.Command == opts.Command()
}

// Binary returns the ffmpeg executable, defaulting to ffmpeg on PATH.
func (o ResampleOptions) Binary() string {
	if o.FFmpeg == "" {
		return "ffmpeg"
	}
	return o.FFmpeg
}

// CodecArgs returns the ffmpeg output options producing 16-bit mono WAV at
// the configured sample rate.
func (o ResampleOptions) CodecArgs() []string {
	return []string{"-ar", strconv.Itoa(o.SampleRate), "-sample_fmt", "s16", "-ac", "1"}
}

// Command renders the binary and output options as one string.
func (o ResampleOptions) Command() string {
	return strings.Join(append([]string{o.Binary()}, o.CodecArgs()...), " ")
}
