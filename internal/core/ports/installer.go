package ports

import (
	"context"

	"github.com/mupmc/mup/internal/core/domain"
)

// LoaderInstaller resolves the server jarfile for one loader family.
//
//go:generate go run go.uber.org/mock/mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type LoaderInstaller interface {
	// Resolve computes the exact download for the loader build described
	// by cfg. It performs metadata lookups only; the returned artifact is
	// fetched by a Downloader.
	Resolve(ctx context.Context, cfg domain.LoaderConfig) (*domain.LoaderArtifact, error)
}
