// Package annotations reads and writes per-instance annotation CSVs and
// audio file lists.
package annotations

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.AnnotationStore on the local filesystem.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Read parses a name,<annotation> CSV. Extra columns are ignored and later
// rows override earlier ones with the same name.
func (s *Store) Read(path string) (domain.Annotations, error) {
	// #nosec G304 -- path is user input by design
	f, err := os.Open(path)
	if err != nil {
		return domain.Annotations{}, zerr.With(zerr.Wrap(err, domain.ErrAnnotationReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			err = zerr.New("missing header")
		}
		return domain.Annotations{}, zerr.With(zerr.Wrap(err, domain.ErrAnnotationParse.Error()), "path", path)
	}
	if len(header) < 2 {
		return domain.Annotations{}, zerr.With(zerr.With(domain.ErrAnnotationParse, "path", path), "header", strings.Join(header, ","))
	}

	a := domain.NewAnnotations(strings.TrimSpace(header[1]))
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Annotations{}, zerr.With(zerr.Wrap(err, domain.ErrAnnotationParse.Error()), "path", path)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 2 {
			line, _ := r.FieldPos(0)
			return domain.Annotations{}, zerr.With(zerr.With(domain.ErrAnnotationParse, "path", path), "line", line)
		}
		a.Values[strings.TrimSpace(rec[0])] = strings.TrimSpace(rec[1])
	}
	return a, nil
}

// ReadRatings parses a name,rater,label CSV. Rows are returned in file order.
func (s *Store) ReadRatings(path string) ([]domain.Rating, error) {
	// #nosec G304 -- path is user input by design
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAnnotationReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil || len(header) < 3 {
		if err == nil || errors.Is(err, io.EOF) {
			err = zerr.New("expected header name,rater,label")
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrAnnotationParse.Error()), "path", path)
	}

	var ratings []domain.Rating
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrAnnotationParse.Error()), "path", path)
		}
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) < 3 {
			line, _ := r.FieldPos(0)
			return nil, zerr.With(zerr.With(domain.ErrAnnotationParse, "path", path), "line", line)
		}
		ratings = append(ratings, domain.Rating{
			Unit:  strings.TrimSpace(rec[0]),
			Rater: strings.TrimSpace(rec[1]),
			Label: strings.TrimSpace(rec[2]),
		})
	}
	return ratings, nil
}

// Write stores values as a name,<typ> CSV sorted by name. An empty path
// writes <typ>.csv.
func (s *Store) Write(path, typ string, values map[string]string) error {
	if path == "" {
		path = typ + ".csv"
	}

	names := make([]string, 0, len(values))
	for n := range values {
		names = append(names, n)
	}
	slices.Sort(names)

	return writeFile(path, domain.ErrAnnotationWriteFailed, func(w io.Writer) error {
		cw := csv.NewWriter(w)
		if err := cw.Write([]string{"name", typ}); err != nil {
			return err
		}
		for _, n := range names {
			if err := cw.Write([]string{n, values[n]}); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	})
}

// ReadFileList returns the paths in a file list. Relative entries are
// resolved against the directory holding the list. Blank lines are skipped.
func (s *Store) ReadFileList(path string) ([]string, error) {
	// #nosec G304 -- path is user input by design
	f, err := os.Open(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileListReadFailed.Error()), "path", path)
	}
	defer func() { _ = f.Close() }()

	base, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileListReadFailed.Error()), "path", path)
	}

	var paths []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !filepath.IsAbs(line) {
			line = filepath.Join(base, line)
		}
		paths = append(paths, filepath.Clean(line))
	}
	if err := sc.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFileListReadFailed.Error()), "path", path)
	}
	return paths, nil
}

// WriteFileList writes paths sorted by file stem, one per line.
func (s *Store) WriteFileList(path string, paths []string) error {
	sorted := slices.Clone(paths)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return strings.Compare(domain.FileStem(a), domain.FileStem(b))
	})

	return writeFile(path, domain.ErrFileListWriteFailed, func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		for _, p := range sorted {
			if _, err := bw.WriteString(p + "\n"); err != nil {
				return err
			}
		}
		return bw.Flush()
	})
}

func writeFile(path string, sentinel error, fill func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
			return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
		}
	}
	// #nosec G304 -- path is user input by design
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
	}
	if err := fill(f); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
	}
	return nil
}
