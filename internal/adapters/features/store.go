// Package features reads and writes dataset files in several formats.
package features

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// Backend reads and writes one dataset file format.
type Backend interface {
	Read(path string, opts domain.FormatOptions) (*domain.FeatureData, error)
	Write(path string, data *domain.FeatureData, opts domain.FormatOptions) error
}

// Store implements ports.FeatureStore by dispatching on the file suffix.
type Store struct {
	backends map[string]Backend
}

// NewStore creates a Store with the arff, csv and txt backends registered.
func NewStore() *Store {
	s := &Store{backends: make(map[string]Backend)}
	s.Register("arff", ARFFBackend{})
	s.Register("csv", CSVBackend{})
	s.Register("txt", AudioListBackend{})
	return s
}

// Register adds or replaces the backend for a suffix, given without the dot.
func (s *Store) Register(format string, b Backend) {
	s.backends[strings.ToLower(format)] = b
}

// Format returns the format name for path.
func (s *Store) Format(path string) (string, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if _, ok := s.backends[format]; !ok {
		return "", zerr.With(domain.ErrUnknownFormat, "path", path)
	}
	return format, nil
}

// Read loads the dataset at path and checks its shape.
func (s *Store) Read(path string, opts domain.FormatOptions) (*domain.FeatureData, error) {
	b, err := s.backend(path)
	if err != nil {
		return nil, err
	}
	data, err := b.Read(path, opts)
	if err != nil {
		return nil, err
	}
	if len(data.Names) == 0 {
		return nil, zerr.With(domain.ErrEmptyDataset, "path", path)
	}
	if err := data.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return data, nil
}

// Write stores data at path.
func (s *Store) Write(path string, data *domain.FeatureData, opts domain.FormatOptions) error {
	b, err := s.backend(path)
	if err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return zerr.With(err, "path", path)
	}
	// Files hold one row per step, so an instance without rows would vanish.
	for i, m := range data.X {
		if len(m) == 0 {
			return zerr.With(zerr.With(domain.ErrEmptyInstance, "instance", data.Names[i]), "path", path)
		}
	}
	return b.Write(path, data, opts)
}

func (s *Store) backend(path string) (Backend, error) {
	format, err := s.Format(path)
	if err != nil {
		return nil, err
	}
	return s.backends[format], nil
}

// groupRows collects consecutive rows sharing a name into one instance.
// The result is sequential if any instance has more than one row.
type groupRows struct {
	names      []string
	x          []domain.Matrix
	labels     []string
	sequential bool
}

func (g *groupRows) add(name string, row []float64, label *string) {
	last := len(g.names) - 1
	if last >= 0 && g.names[last] == name {
		g.x[last] = append(g.x[last], row)
		g.sequential = true
		return
	}
	g.names = append(g.names, name)
	g.x = append(g.x, domain.Matrix{row})
	if label != nil {
		g.labels = append(g.labels, *label)
	}
}

// createFile writes path through a buffered writer, creating parent
// directories as needed.
func createFile(path string, fill func(*bufio.Writer) error) error {
	wrap := func(err error) error {
		return zerr.With(zerr.Wrap(err, domain.ErrDatasetWriteFailed.Error()), "path", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return wrap(err)
	}
	// #nosec G304 -- path is user input by design
	f, err := os.Create(path)
	if err != nil {
		return wrap(err)
	}
	w := bufio.NewWriter(f)
	if err := fill(w); err != nil {
		_ = f.Close()
		return wrap(err)
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return wrap(err)
	}
	if err := f.Close(); err != nil {
		return wrap(err)
	}
	return nil
}
