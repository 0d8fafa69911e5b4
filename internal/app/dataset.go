package app

import (
	"context"
	"fmt"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// DatasetOptions locates a dataset and its annotations.
type DatasetOptions struct {
	Path     string
	Labels   string
	Speakers string
	// Corpus overrides the corpus name stored in the dataset file.
	Corpus string
	Header bool
	// InLabel reads the last CSV column as the label.
	InLabel bool
}

// dataset is the part of Dataset and LabelledDataset the pipeline uses.
type dataset interface {
	Len() int
	RemoveInstances(keep []string)
	Normalise(n domain.Normaliser, scheme domain.Scheme) error
	ClipArrays(length int) error
	PadArrays(pad int) error
	FrameArrays(size, shift, numFrames int) error
	TransposeTime()
	FeatureData() *domain.FeatureData
	Warnings() []string
	String() string
}

// labelledDataset is the part of LabelledDataset and CombinedDataset used by
// the pipeline and by Analyse.
type labelledDataset interface {
	dataset
	MapClasses(mapping map[string]string)
	RemoveClasses(keep []string)
	Binarise(posValence, posArousal []string)
	Names() []string
	Classes() []string
	Labels() map[string][]int
	X() []domain.Matrix
	Y() []int
	Features() []string
	NFeatures() int
	SpeakerIndices() []int
}

// loadDatasets reads one dataset, or joins several labelled datasets into a
// combined dataset. The labelled result is nil for a single dataset without
// labels.
func (a *App) loadDatasets(cfg *domain.Config, sets []DatasetOptions) (dataset, labelledDataset, error) {
	switch len(sets) {
	case 0:
		return nil, nil, domain.ErrNoDatasets
	case 1:
		d, ld, err := a.loadDataset(cfg, sets[0])
		if err != nil {
			return nil, nil, err
		}
		if ld == nil {
			return d, nil, nil
		}
		return d, ld, nil
	}

	parts := make([]*domain.LabelledDataset, 0, len(sets))
	for _, opts := range sets {
		_, ld, err := a.loadDataset(cfg, opts)
		if err != nil {
			return nil, nil, err
		}
		if ld == nil {
			return nil, nil, zerr.With(zerr.With(domain.ErrMissingAnnotation, "annotation", "label"), "dataset", opts.Path)
		}
		parts = append(parts, ld)
	}
	c, err := domain.NewCombinedDataset(nil, parts...)
	if err != nil {
		return nil, nil, err
	}
	return c, c, nil
}

// loadDataset reads a dataset with its speaker and label annotations. The
// labelled result is nil when neither a label file nor embedded labels
// exist.
func (a *App) loadDataset(cfg *domain.Config, opts DatasetOptions) (dataset, *domain.LabelledDataset, error) {
	data, err := a.features.Read(opts.Path, domain.FormatOptions{
		Corpus: opts.Corpus,
		Header: opts.Header,
		Label:  opts.InLabel,
	})
	if err != nil {
		return nil, nil, err
	}
	if opts.Corpus != "" {
		data.Corpus = opts.Corpus
	}

	var speakers *domain.Annotations
	if opts.Speakers != "" {
		ann, err := a.annotations.Read(opts.Speakers)
		if err != nil {
			return nil, nil, err
		}
		speakers = &ann
	}
	info, _ := domain.NewCorpusRegistry(cfg.Corpora).Lookup(data.Corpus)

	labels, hasLabels := data.LabelAnnotations()
	if opts.Labels != "" {
		if labels, err = a.annotations.Read(opts.Labels); err != nil {
			return nil, nil, err
		}
		hasLabels = true
	}

	if !hasLabels {
		d, err := domain.NewDataset(data, speakers, info)
		if err != nil {
			return nil, nil, zerr.With(err, "dataset", opts.Path)
		}
		a.warnAll(d.Warnings())
		return d, nil, nil
	}
	ld, err := domain.NewLabelledDataset(data, labels, speakers, info)
	if err != nil {
		return nil, nil, zerr.With(err, "dataset", opts.Path)
	}
	a.warnAll(ld.Warnings())
	return ld, ld, nil
}

func (a *App) warnAll(msgs []string) {
	for _, m := range msgs {
		a.logger.Warn(m)
	}
}

// Info prints the summary of a dataset. Several datasets are summarised as
// one combined dataset.
func (a *App) Info(_ context.Context, sets []DatasetOptions) error {
	cfg, err := a.loadConfig("")
	if err != nil {
		return err
	}
	d, _, err := a.loadDatasets(cfg, sets)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(a.stdout, d.String())
	return nil
}

// ConvertOptions configures a dataset format conversion.
type ConvertOptions struct {
	Input  string
	Output string
	// Corpus sets the corpus name on the converted dataset.
	Corpus string
	// Header reads a CSV header from Input and writes one to Output.
	Header bool
	// InLabel reads the last Input column as a label. Labels are not written.
	InLabel bool
}

// Convert rewrites a dataset in the format implied by the output suffix.
func (a *App) Convert(_ context.Context, opts ConvertOptions) error {
	inFormat, err := a.features.Format(opts.Input)
	if err != nil {
		return err
	}
	outFormat, err := a.features.Format(opts.Output)
	if err != nil {
		return err
	}
	if inFormat == outFormat {
		return zerr.With(zerr.With(domain.ErrSameFormat, "input", opts.Input), "output", opts.Output)
	}

	a.logger.Info(fmt.Sprintf("reading %s", opts.Input))
	data, err := a.features.Read(opts.Input, domain.FormatOptions{
		Corpus: opts.Corpus,
		Header: opts.Header,
		Label:  opts.InLabel,
	})
	if err != nil {
		return err
	}
	if opts.Corpus != "" {
		data.Corpus = opts.Corpus
	}
	data.Labels = nil

	if err := a.features.Write(opts.Output, data, domain.FormatOptions{
		Corpus: data.Corpus,
		Header: opts.Header,
	}); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("wrote dataset to %s", opts.Output))
	return nil
}
