package app

import (
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strconv"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/core/ports"
	"go.trai.ch/zerr"
)

// pipelineStep is one named stage of a preprocessing run.
type pipelineStep struct {
	name string
	run  func(ctx context.Context, span ports.Span) error
}

// pipelineRun carries the dataset between steps.
type pipelineRun struct {
	app      *App
	cfg      *domain.Config
	pipeline *domain.Pipeline
	data     dataset
	labelled labelledDataset
}

// Preprocess runs the pipeline section of the configuration at path, or of
// the discovered emorec.yaml when path is empty.
func (a *App) Preprocess(ctx context.Context, path string) error {
	cfg, err := a.loadConfig(path)
	if err != nil {
		return err
	}
	if cfg.Pipeline == nil {
		return zerr.With(domain.ErrNoPipeline, "config", cfg.Path)
	}

	run := &pipelineRun{app: a, cfg: cfg, pipeline: cfg.Pipeline}
	steps := run.steps()

	tracer, stop := a.startProgress(ctx)
	defer stop()

	ctx, span := tracer.Start(ctx, "preprocess")
	defer span.End()

	names := make([]string, len(steps))
	for i, s := range steps {
		names[i] = s.name
	}
	tracer.EmitPlan(ctx, names)

	for _, s := range steps {
		stepCtx, stepSpan := tracer.Start(ctx, s.name)
		err := s.run(stepCtx, stepSpan)
		if err != nil {
			stepSpan.RecordError(err)
		}
		stepSpan.End()
		if err != nil {
			span.RecordError(err)
			return zerr.With(err, "step", s.name)
		}
	}
	return nil
}

// steps lists the stages the pipeline asks for, in execution order.
func (r *pipelineRun) steps() []pipelineStep {
	p := r.pipeline
	steps := []pipelineStep{{"load", r.load}}
	if p.KeepInstances != "" {
		steps = append(steps, pipelineStep{"keep_instances", r.keepInstances})
	}
	if len(p.MapClasses) > 0 {
		steps = append(steps, pipelineStep{"map_classes", r.mapClasses})
	}
	if len(p.KeepClasses) > 0 {
		steps = append(steps, pipelineStep{"keep_classes", r.keepClasses})
	}
	if p.Clip > 0 {
		steps = append(steps, pipelineStep{"clip", r.clip})
	}
	if p.Pad > 0 {
		steps = append(steps, pipelineStep{"pad", r.pad})
	}
	if p.Frame.Size > 0 {
		steps = append(steps, pipelineStep{"frame", r.frame})
	}
	if p.Normalise.Scheme != domain.SchemeNone && p.Normalise.Scheme != "" {
		steps = append(steps, pipelineStep{"normalise", r.normalise})
	}
	if p.Transpose {
		steps = append(steps, pipelineStep{"transpose", r.transpose})
	}
	steps = append(steps, pipelineStep{"write", r.write})
	if p.Binarise.Enabled() {
		steps = append(steps, pipelineStep{"binarise", r.binarise})
	}
	return steps
}

func (r *pipelineRun) load(_ context.Context, span ports.Span) error {
	sets := make([]DatasetOptions, len(r.pipeline.Inputs))
	for i, in := range r.pipeline.Inputs {
		sets[i] = DatasetOptions{
			Path:     in.Dataset,
			Labels:   in.Labels,
			Speakers: in.Speakers,
			Corpus:   in.Corpus,
			Header:   in.Header,
		}
	}
	data, labelled, err := r.app.loadDatasets(r.cfg, sets)
	if err != nil {
		return err
	}
	r.data, r.labelled = data, labelled
	span.SetAttribute("emorec.datasets", len(sets))
	_, _ = fmt.Fprint(span, data.String())
	return nil
}

func (r *pipelineRun) requireLabels(field string) error {
	if r.labelled == nil {
		return zerr.With(zerr.With(domain.ErrMissingPipelineField, "field", "labels"), "needed_by", field)
	}
	return nil
}

func (r *pipelineRun) keepInstances(_ context.Context, span ports.Span) error {
	paths, err := r.app.annotations.ReadFileList(r.pipeline.KeepInstances)
	if err != nil {
		return err
	}
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = domain.FileStem(p)
	}
	r.data.RemoveInstances(names)
	_, _ = fmt.Fprintf(span, "kept %d of %d listed instances\n", r.data.Len(), len(names))
	return nil
}

func (r *pipelineRun) mapClasses(_ context.Context, _ ports.Span) error {
	if err := r.requireLabels("map_classes"); err != nil {
		return err
	}
	r.labelled.MapClasses(r.pipeline.MapClasses)
	return nil
}

func (r *pipelineRun) keepClasses(_ context.Context, span ports.Span) error {
	if err := r.requireLabels("keep_classes"); err != nil {
		return err
	}
	r.labelled.RemoveClasses(r.pipeline.KeepClasses)
	_, _ = fmt.Fprintf(span, "%d instances in classes %v\n", r.labelled.Len(), r.labelled.Classes())
	return nil
}

func (r *pipelineRun) clip(_ context.Context, _ ports.Span) error {
	return r.data.ClipArrays(r.pipeline.Clip)
}

func (r *pipelineRun) pad(_ context.Context, _ ports.Span) error {
	return r.data.PadArrays(r.pipeline.Pad)
}

func (r *pipelineRun) frame(_ context.Context, _ ports.Span) error {
	f := r.pipeline.Frame
	return r.data.FrameArrays(f.Size, f.Shift, f.NumFrames)
}

func (r *pipelineRun) normalise(_ context.Context, span ports.Span) error {
	n, err := domain.NewNormaliser(r.pipeline.Normalise.Method)
	if err != nil {
		return err
	}
	span.SetAttribute("emorec.normaliser", n.Name())
	span.SetAttribute("emorec.scheme", string(r.pipeline.Normalise.Scheme))
	return r.data.Normalise(n, r.pipeline.Normalise.Scheme)
}

func (r *pipelineRun) transpose(_ context.Context, _ ports.Span) error {
	r.data.TransposeTime()
	return nil
}

func (r *pipelineRun) write(_ context.Context, span ports.Span) error {
	data := r.data.FeatureData()
	out := r.pipeline.Output
	if err := r.app.features.Write(out, data, domain.FormatOptions{
		Corpus: data.Corpus,
		Header: true,
		Label:  data.Labels != nil,
	}); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(span, "wrote %d instances to %s\n", len(data.Names), out)
	r.app.logger.Info(fmt.Sprintf("wrote dataset to %s", out))
	return nil
}

// binarise writes one 0/1 annotation CSV per class, plus arousal and valence,
// next to the output dataset.
func (r *pipelineRun) binarise(_ context.Context, span ports.Span) error {
	if err := r.requireLabels("binarise"); err != nil {
		return err
	}
	b := r.pipeline.Binarise
	r.labelled.Binarise(b.PositiveValence, b.PositiveArousal)

	dir := filepath.Dir(r.pipeline.Output)
	names := r.labelled.Names()
	sets := r.labelled.Labels()
	for _, set := range slices.Sorted(maps.Keys(sets)) {
		if set == domain.LabelsAll {
			continue
		}
		values := make(map[string]string, len(names))
		for i, n := range names {
			values[n] = strconv.Itoa(sets[set][i])
		}
		path := filepath.Join(dir, set+".csv")
		if err := r.app.annotations.Write(path, set, values); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(span, "wrote %s\n", path)
	}
	return nil
}
