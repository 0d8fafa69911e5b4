// Package corpus turns raw emotional speech corpora into emorec datasets:
// resampled audio, file lists and annotation CSVs.
package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/emorec/internal/core/ports"
	"go.trai.ch/zerr"
)

// Env is what a processor works with.
type Env struct {
	// InputDir is the root of the extracted corpus.
	InputDir string
	// OutputDir receives file lists, annotation CSVs and the resampled audio.
	OutputDir string
	// Resample converts audio when set. Resampler must then be non-nil.
	Resample    bool
	Resampler   ports.Resampler
	Annotations ports.AnnotationStore
	Logger      ports.Logger
}

// ResampleDir is where converted audio is written.
func (e Env) ResampleDir() string {
	return filepath.Join(e.OutputDir, domain.ResampleDirName)
}

func (e Env) writeAnnotations(report *domain.Report, typ string, values map[string]string) error {
	path := filepath.Join(e.OutputDir, typ+".csv")
	if err := e.Annotations.Write(path, typ, values); err != nil {
		return err
	}
	e.Logger.Info(fmt.Sprintf("wrote CSV to %s", path))
	report.AddFile(path)
	return nil
}

func (e Env) writeFileList(report *domain.Report, name string, paths []string) error {
	path := filepath.Join(e.OutputDir, name)
	if err := e.Annotations.WriteFileList(path, paths); err != nil {
		return err
	}
	e.Logger.Info(fmt.Sprintf("wrote file list to %s", path))
	report.AddFile(path)
	return nil
}

// glob returns the sorted files under InputDir matching pattern.
func (e Env) glob(pattern string) ([]string, error) {
	info, err := os.Stat(e.InputDir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrInvalidInputDir, "dir", e.InputDir)
	}
	paths, err := filepath.Glob(filepath.Join(e.InputDir, pattern))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidInputDir.Error()), "pattern", pattern)
	}
	slices.Sort(paths)
	return paths, nil
}

// Processor converts one kind of raw corpus.
type Processor interface {
	Name() string
	Process(ctx context.Context, env Env) (*domain.Report, error)
}

// Registry looks processors up by case-insensitive name.
type Registry struct {
	processors map[string]Processor
}

// NewRegistry creates a registry holding ps.
func NewRegistry(ps ...Processor) *Registry {
	r := &Registry{processors: make(map[string]Processor, len(ps))}
	for _, p := range ps {
		r.processors[strings.ToLower(p.Name())] = p
	}
	return r
}

// DefaultRegistry holds every built-in processor.
func DefaultRegistry() *Registry {
	return NewRegistry(URDU{}, MSPImprov{})
}

// Get returns the processor registered under name.
func (r *Registry) Get(name string) (Processor, error) {
	p, ok := r.processors[strings.ToLower(name)]
	if !ok {
		return nil, zerr.With(zerr.With(domain.ErrUnknownProcessor, "corpus", name),
			"available", strings.Join(r.Names(), ", "))
	}
	return p, nil
}

// Names returns the registered processor names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.processors))
	for n := range r.processors {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
