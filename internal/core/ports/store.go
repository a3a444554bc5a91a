package ports

import "github.com/mupmc/mup/internal/core/domain"

// LockfileStore is the persisted source of truth for what is installed.
// Every mutating call persists the document before returning; callers must
// not assume a mutation is durable before the call returns.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// Loader returns the loader configuration of the current lockfile.
	Loader() domain.LoaderConfig

	// IsInitialized reports whether the server directory has been
	// initialized with a concrete loader and Minecraft version.
	IsInitialized() bool

	// Artifacts returns the installed artifact records, in install order.
	Artifacts() []domain.Artifact

	// Get looks an installed artifact up by canonical id or slug.
	// Returns domain.ErrProjectNotFound when no record matches.
	Get(id string) (*domain.Artifact, error)

	// Add upserts a record by identity (canonical id or slug) and saves.
	Add(artifact domain.Artifact) error

	// Remove deletes the record matching id and saves. Returns the removed
	// record, or domain.ErrProjectNotFound.
	Remove(id string) (*domain.Artifact, error)

	// InitParams replaces the lockfile with a fresh one for the given
	// Minecraft version and loader, and saves. Fails with
	// domain.ErrInvalidGameVersion when the version does not parse into a
	// plain version.
	InitParams(gameVersion string, loader domain.LoaderName, allowSnapshots bool) error
}
