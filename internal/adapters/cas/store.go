// Package cas stores resample records, one JSON file per output.
package cas

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/emorec/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.RecordStore using a file-per-output strategy.
type Store struct {
	dir string
}

// NewStore creates a Store in the default record store directory.
func NewStore() (*Store, error) {
	return NewStoreWithPath(domain.DefaultStorePath())
}

// NewStoreWithPath creates a Store backed by dir. The directory is created
// on the first Put.
func NewStoreWithPath(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "dir", dir)
	}
	return &Store{dir: abs}, nil
}

// Get retrieves the record for an output file. It returns nil, nil if there
// is none.
func (s *Store) Get(output string) (*domain.ResampleRecord, error) {
	filename := s.getFilename(output)
	//nolint:gosec // Path is constructed from the store directory and a hashed key
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "output", output)
	}

	var record domain.ResampleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "output", output)
	}
	return &record, nil
}

// Put stores the record under its output path.
func (s *Store) Put(record domain.ResampleRecord) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	//nolint:gosec // Path is constructed from the store directory and a hashed key
	if err := os.WriteFile(s.getFilename(record.Output), data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "output", record.Output)
	}
	return nil
}

// getFilename keys records by the absolute output path.
func (s *Store) getFilename(output string) string {
	if abs, err := filepath.Abs(output); err == nil {
		output = abs
	}
	hash := sha256.Sum256([]byte(output))
	return filepath.Join(s.dir, hex.EncodeToString(hash[:])+".json")
}
