package ports

import "go.trai.ch/emorec/internal/core/domain"

// RecordStore defines the interface for storing and retrieving resample records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Get retrieves the record for an output file.
	// Returns nil, nil if not found.
	Get(output string) (*domain.ResampleRecord, error)

	// Put stores the record.
	Put(record domain.ResampleRecord) error
}
