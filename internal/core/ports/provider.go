// Package ports defines the core interfaces of the application.
package ports

import (
	"context"

	"github.com/mupmc/mup/internal/core/domain"
)

// ProviderClient resolves a project against one remote catalog.
//
//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type ProviderClient interface {
	// Resolve fetches the project identified by id at the given version
	// token ("latest" or a concrete version id) and normalizes it into an
	// Artifact, validating it against the loader configuration.
	Resolve(ctx context.Context, loader domain.LoaderConfig, id, version string) (*domain.Artifact, error)
}
