// Package vanilla resolves official Mojang server jarfiles from the
// launcher version manifest.
package vanilla

import (
	"context"
	"fmt"

	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultManifestURL is the Mojang launcher version manifest.
const DefaultManifestURL = "https://launchermeta.mojang.com/mc/game/version_manifest.json"

// Installer implements ports.LoaderInstaller for plain vanilla servers.
type Installer struct {
	web         *web.Client
	logger      ports.Logger
	manifestURL string
}

var _ ports.LoaderInstaller = (*Installer)(nil)

// Option configures an Installer during construction.
type Option func(*Installer)

// WithManifestURL overrides the manifest endpoint, primarily for tests.
func WithManifestURL(u string) Option {
	return func(i *Installer) {
		i.manifestURL = u
	}
}

// NewInstaller creates a vanilla installer on top of the shared web client.
func NewInstaller(webClient *web.Client, logger ports.Logger, opts ...Option) *Installer {
	i := &Installer{
		web:         webClient,
		logger:      logger,
		manifestURL: DefaultManifestURL,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type versionManifest struct {
	Latest   latestVersions  `json:"latest"`
	Versions []manifestEntry `json:"versions"`
}

type latestVersions struct {
	Release  string `json:"release"`
	Snapshot string `json:"snapshot"`
}

type manifestEntry struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	URL  string `json:"url"`
}

type versionData struct {
	Downloads downloadSet `json:"downloads"`
}

type downloadSet struct {
	Server downloadInfo `json:"server"`
}

type downloadInfo struct {
	URL  string `json:"url"`
	Sha1 string `json:"sha1"`
}

// Resolve picks the server jarfile for cfg's minecraft version. Snapshot
// builds resolve only when the lockfile allows them.
func (i *Installer) Resolve(ctx context.Context, cfg domain.LoaderConfig) (*domain.LoaderArtifact, error) {
	entry, err := i.manifestEntry(ctx, cfg)
	if err != nil {
		return nil, err
	}

	if entry.Type == "snapshot" && !cfg.AllowSnapshots {
		return nil, zerr.With(domain.ErrSnapshotNotAllowed, "minecraft_version", entry.ID)
	}

	var data versionData
	if err := i.web.GetJSON(ctx, entry.URL, &data); err != nil {
		return nil, err
	}

	i.logger.Info(fmt.Sprintf("resolved %s server jarfile at %s", entry.ID, data.Downloads.Server.URL))

	return &domain.LoaderArtifact{
		DownloadURL: data.Downloads.Server.URL,
		FileName:    fmt.Sprintf("vanilla-%s-server.jar", entry.ID),
		Checksum: &domain.Checksum{
			Method: "sha1",
			Hash:   data.Downloads.Server.Sha1,
		},
	}, nil
}

func (i *Installer) manifestEntry(ctx context.Context, cfg domain.LoaderConfig) (manifestEntry, error) {
	i.logger.Info("fetching the version manifest")

	var manifest versionManifest
	if err := i.web.GetJSON(ctx, i.manifestURL, &manifest); err != nil {
		return manifestEntry{}, err
	}

	id := cfg.GameVersion
	if id == domain.VersionLatest {
		if cfg.AllowSnapshots {
			id = manifest.Latest.Snapshot
		} else {
			id = manifest.Latest.Release
		}
	}

	for _, entry := range manifest.Versions {
		if entry.ID == id {
			return entry, nil
		}
	}

	return manifestEntry{}, zerr.With(domain.ErrVersionNotFound, "minecraft_version", id)
}
