// Package fabric resolves Fabric server launchers from meta.fabricmc.net.
package fabric

import (
	"context"
	"fmt"
	"strings"

	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBaseURL is the Fabric metadata endpoint.
const DefaultBaseURL = "https://meta.fabricmc.net/v2/versions"

// Installer implements ports.LoaderInstaller for Fabric.
type Installer struct {
	web     *web.Client
	logger  ports.Logger
	baseURL string
}

var _ ports.LoaderInstaller = (*Installer)(nil)

// Option configures an Installer during construction.
type Option func(*Installer)

// WithBaseURL overrides the API base URL, primarily for test servers.
func WithBaseURL(base string) Option {
	return func(i *Installer) {
		i.baseURL = strings.TrimRight(base, "/")
	}
}

// NewInstaller creates a Fabric installer on top of the shared web client.
func NewInstaller(webClient *web.Client, logger ports.Logger, opts ...Option) *Installer {
	i := &Installer{
		web:     webClient,
		logger:  logger,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type versionEntry struct {
	Version string `json:"version"`
}

// Resolve assembles the launcher download URL from the game, loader and
// installer version lists. Fabric publishes no digest for the launcher
// jarfile, so the artifact carries no checksum.
func (i *Installer) Resolve(ctx context.Context, cfg domain.LoaderConfig) (*domain.LoaderArtifact, error) {
	game, err := i.version(ctx, "game", cfg.GameVersion)
	if err != nil {
		return nil, err
	}
	loader, err := i.version(ctx, "loader", cfg.Version)
	if err != nil {
		return nil, err
	}
	installer, err := i.version(ctx, "installer", domain.VersionLatest)
	if err != nil {
		return nil, err
	}

	return &domain.LoaderArtifact{
		DownloadURL: fmt.Sprintf("%s/loader/%s/%s/%s/server/jar", i.baseURL, game, loader, installer),
		FileName:    "fabric.jar",
	}, nil
}

// version resolves one entry of a fabric version list. The lists are ordered
// newest-first, so "latest" is the first entry.
func (i *Installer) version(ctx context.Context, kind, version string) (string, error) {
	i.logger.Info(fmt.Sprintf("fetching information for %s version %s", kind, version))

	var entries []versionEntry
	if err := i.web.GetJSON(ctx, i.baseURL+"/"+kind, &entries); err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", zerr.With(zerr.New("fabric version list is empty"), "kind", kind)
	}

	if version == domain.VersionLatest {
		return entries[0].Version, nil
	}

	for _, e := range entries {
		if e.Version == version {
			return e.Version, nil
		}
	}

	return "", zerr.With(domain.ErrVersionNotFound, "kind", kind, "version", version)
}
