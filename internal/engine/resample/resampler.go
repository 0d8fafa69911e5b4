// Package resample converts batches of audio clips, skipping clips whose
// previous conversion is still valid.
package resample

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Resampler = (*Resampler)(nil)

// progressSteps is roughly how many progress lines a batch reports.
const progressSteps = 10

// Resampler implements ports.Resampler with bounded parallelism.
type Resampler struct {
	transcoder ports.Transcoder
	store      ports.RecordStore
	hasher     ports.Hasher
	logger     ports.Logger
	tracer     ports.Tracer
	opts       domain.ResampleOptions
	noCache    bool
}

// New creates a Resampler.
func New(
	transcoder ports.Transcoder,
	store ports.RecordStore,
	hasher ports.Hasher,
	logger ports.Logger,
	tracer ports.Tracer,
	opts domain.ResampleOptions,
) *Resampler {
	return &Resampler{
		transcoder: transcoder,
		store:      store,
		hasher:     hasher,
		logger:     logger,
		tracer:     tracer,
		opts:       opts,
	}
}

// WithNoCache makes every clip convert regardless of stored records.
func (r *Resampler) WithNoCache(noCache bool) *Resampler {
	r.noCache = noCache
	return r
}

// ResampleAll converts every path into dir as <stem>.wav. The first failure
// cancels the remaining conversions.
func (r *Resampler) ResampleAll(ctx context.Context, paths []string, dir string) ([]string, error) {
	if len(paths) == 0 {
		return nil, domain.ErrNoAudioFiles
	}

	outputs := make([]string, len(paths))
	seen := make(map[string]string, len(paths))
	for i, p := range paths {
		out := filepath.Join(dir, domain.FileStem(p)+".wav")
		if prev, ok := seen[out]; ok {
			return nil, zerr.With(zerr.With(domain.ErrDuplicateOutput, "first", prev), "second", p)
		}
		seen[out] = p
		outputs[i] = out
	}

	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrResampleFailed.Error()), "dir", dir)
	}

	ctx, span := r.tracer.Start(ctx, "resample")
	defer span.End()
	span.SetAttribute("emorec.files", len(paths))
	span.SetAttribute("emorec.sample_rate", r.opts.SampleRate)

	r.logger.Info(fmt.Sprintf("resampling %d audio files to %s", len(paths), dir))
	r.logger.Info(fmt.Sprintf("using ffmpeg options: %s", strings.Join(r.opts.CodecArgs(), " ")))

	var cached, done atomic.Int64
	total := int64(len(paths))
	every := max(total/progressSteps, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.opts.Jobs, 1))
	for i, in := range paths {
		out := outputs[i]
		g.Go(func() error {
			hit, err := r.resampleOne(gctx, in, out)
			if err != nil {
				return err
			}
			if hit {
				cached.Add(1)
			}
			if n := done.Add(1); n%every == 0 && n < total {
				_, _ = fmt.Fprintf(span, "%d/%d files\n", n, total)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, err
	}

	hits := int(cached.Load())
	span.SetAttribute("emorec.cached", hits)
	_, _ = fmt.Fprintf(span, "%d converted, %d up to date\n", len(paths)-hits, hits)
	return outputs, nil
}

func (r *Resampler) resampleOne(ctx context.Context, in, out string) (cached bool, err error) {
	ctx, span := r.tracer.Start(ctx, filepath.Base(in), ports.WithQuiet())
	defer span.End()

	sum, err := r.hasher.HashFile(in)
	if err != nil {
		span.RecordError(err)
		return false, err
	}
	hash := domain.FormatHash(sum)

	if !r.noCache {
		hit, err := r.upToDate(out, hash)
		if err != nil {
			span.RecordError(err)
			return false, err
		}
		if hit {
			span.SetAttribute("emorec.cached", true)
			return true, nil
		}
	}

	if err := r.transcoder.Resample(ctx, in, out, r.opts); err != nil {
		span.RecordError(err)
		return false, err
	}

	record := domain.ResampleRecord{
		Input:      in,
		Output:     out,
		InputHash:  hash,
		SampleRate: r.opts.SampleRate,
		Command:    r.opts.Command(),
	}
	if err := r.store.Put(record); err != nil {
		span.RecordError(err)
		return false, err
	}
	return false, nil
}

// upToDate reports whether out was produced from an input with hash by the
// current ffmpeg command and still exists.
func (r *Resampler) upToDate(out, hash string) (bool, error) {
	record, err := r.store.Get(out)
	if err != nil {
		return false, err
	}
	if record == nil || !record.Matches(hash, r.opts) {
		return false, nil
	}
	if _, err := os.Stat(out); err != nil {
		return false, nil
	}
	return true, nil
}
