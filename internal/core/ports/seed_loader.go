package ports

import "go.trai.ch/roster/internal/core/domain"

// SeedLoader builds a Directory from a seed file.
//
//go:generate mockgen -source=seed_loader.go -destination=mocks/mock_seed_loader.go -package=mocks
type SeedLoader interface {
	// Load reads the seed file at path and returns the populated directory.
	Load(path string) (*domain.Directory, error)
}
