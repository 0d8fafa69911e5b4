package ports

import "go.trai.ch/emorec/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads path if it is set, otherwise walks up from cwd looking for
	// emorec.yaml. Without a file it returns the defaults.
	Load(cwd, path string) (*domain.Config, error)
}
