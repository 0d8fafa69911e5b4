package ports

import "go.trai.ch/emorec/internal/core/domain"

// FeatureStore reads and writes dataset files. The format is chosen by the
// file suffix.
//
//go:generate mockgen -source=features.go -destination=mocks/mock_features.go -package=mocks
type FeatureStore interface {
	// Read loads the dataset at path.
	Read(path string, opts domain.FormatOptions) (*domain.FeatureData, error)

	// Write stores data at path, replacing any existing file.
	Write(path string, data *domain.FeatureData, opts domain.FormatOptions) error

	// Format returns the format name for path, or ErrUnknownFormat.
	Format(path string) (string, error)
}
