package app

import (
	"context"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/engine/corpus"
	"go.trai.ch/emorec/internal/engine/resample"
)

// ProcessOptions configures a corpus processing run.
type ProcessOptions struct {
	Corpus    string
	InputDir  string
	OutputDir string
	Resample  bool
	NoCache   bool
}

// Process runs the named corpus processor and logs its report.
func (a *App) Process(ctx context.Context, opts ProcessOptions) (*domain.Report, error) {
	cfg, err := a.loadConfig("")
	if err != nil {
		return nil, err
	}
	p, err := a.processors.Get(opts.Corpus)
	if err != nil {
		return nil, err
	}

	tracer, stop := a.startProgress(ctx)
	defer stop()

	resampler := resample.New(a.transcoder, a.store, a.hasher, a.logger, tracer, cfg.Resample).
		WithNoCache(opts.NoCache)

	outDir := opts.OutputDir
	if outDir == "" {
		outDir = "."
	}

	ctx, span := tracer.Start(ctx, "process "+p.Name())
	defer span.End()
	span.SetAttribute("emorec.input_dir", opts.InputDir)

	report, err := p.Process(ctx, corpus.Env{
		InputDir:    opts.InputDir,
		OutputDir:   outDir,
		Resample:    opts.Resample,
		Resampler:   resampler,
		Annotations: a.annotations,
		Logger:      a.logger,
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	for _, line := range report.Lines() {
		a.logger.Info(line)
	}
	return report, nil
}
