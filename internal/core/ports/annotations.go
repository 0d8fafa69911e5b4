package ports

import "go.trai.ch/emorec/internal/core/domain"

// AnnotationStore reads and writes per-instance annotation CSVs and file lists.
//
//go:generate mockgen -source=annotations.go -destination=mocks/mock_annotations.go -package=mocks
type AnnotationStore interface {
	// Read parses a name,<annotation> CSV.
	Read(path string) (domain.Annotations, error)

	// ReadRatings parses a name,rater,label CSV of categorical ratings.
	ReadRatings(path string) ([]domain.Rating, error)

	// Write stores values as a name,<typ> CSV sorted by name. An empty path
	// writes <typ>.csv in the working directory.
	Write(path, typ string, values map[string]string) error

	// ReadFileList returns the absolute paths listed in a file list.
	ReadFileList(path string) ([]string, error)

	// WriteFileList writes paths sorted by file stem, one per line.
	WriteFileList(path string, paths []string) error
}
