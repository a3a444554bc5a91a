// Package neoforge resolves NeoForge installer jarfiles from the NeoForged
// maven repository.
//
// See https://github.com/neoforged/websites/blob/main/assets/js/neoforge.js
// for the version scheme: neoforge builds are numbered after the minecraft
// minor and patch components they target.
package neoforge

import (
	"context"
	"fmt"
	"strings"

	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultAPIURL serves the latest released build, optionally filtered.
	DefaultAPIURL = "https://maven.neoforged.net/api/maven/latest/version/releases/net/neoforged/neoforge"
	// DefaultDownloadURL is the installer jarfile repository.
	DefaultDownloadURL = "https://maven.neoforged.net/releases/net/neoforged/neoforge"
)

// NeoForge split from Forge at this minecraft version; anything earlier is
// Forge territory.
var minMinecraft = domain.MustGameVersion("1.20.2")

// Installer implements ports.LoaderInstaller for NeoForge.
type Installer struct {
	web         *web.Client
	logger      ports.Logger
	apiURL      string
	downloadURL string
}

var _ ports.LoaderInstaller = (*Installer)(nil)

// Option configures an Installer during construction.
type Option func(*Installer)

// WithAPIURL overrides the version API endpoint, primarily for tests.
func WithAPIURL(u string) Option {
	return func(i *Installer) {
		i.apiURL = strings.TrimRight(u, "/")
	}
}

// WithDownloadURL overrides the maven repository URL, primarily for tests.
func WithDownloadURL(u string) Option {
	return func(i *Installer) {
		i.downloadURL = strings.TrimRight(u, "/")
	}
}

// NewInstaller creates a NeoForge installer on top of the shared web client.
func NewInstaller(webClient *web.Client, logger ports.Logger, opts ...Option) *Installer {
	i := &Installer{
		web:         webClient,
		logger:      logger,
		apiURL:      DefaultAPIURL,
		downloadURL: DefaultDownloadURL,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type installerInfo struct {
	Version string `json:"version"`
}

// Resolve picks the newest neoforge build targeting cfg's minecraft version.
// The "latest" minecraft sentinel is rejected: neoforge build numbers only
// identify a minecraft version when one is named explicitly.
func (i *Installer) Resolve(ctx context.Context, cfg domain.LoaderConfig) (*domain.LoaderArtifact, error) {
	if cfg.GameVersion == domain.VersionLatest {
		return nil, zerr.With(domain.ErrExplicitVersionRequired, "loader", string(domain.LoaderNeoForge))
	}

	minecraft, err := domain.ParseGameVersion(cfg.GameVersion)
	if err != nil || minecraft.Kind() != domain.VersionIdeal {
		return nil, zerr.With(domain.ErrInvalidGameVersion, "minecraft_version", cfg.GameVersion)
	}
	if minecraft.Before(minMinecraft) {
		return nil, zerr.With(domain.ErrVersionNotFound,
			"minecraft_version", cfg.GameVersion,
			"reason", "use forge for minecraft versions before 1.20.2",
		)
	}

	minor, _ := minecraft.Minor()
	patch, _ := minecraft.Patch()
	endpoint := fmt.Sprintf("%s?filter=%d.%d", i.apiURL, minor, patch)

	i.logger.Info(fmt.Sprintf("fetching latest installer version for minecraft %s", cfg.GameVersion))

	var installer installerInfo
	if err := i.web.GetJSON(ctx, endpoint, &installer); err != nil {
		return nil, err
	}

	return &domain.LoaderArtifact{
		DownloadURL: fmt.Sprintf("%s/%s/neoforge-%s-installer.jar", i.downloadURL, installer.Version, installer.Version),
		FileName:    fmt.Sprintf("neoforge-%s-%s.jar", cfg.GameVersion, installer.Version),
		Notice:      "neoforge servers must be installed manually using the downloaded jarfile",
	}, nil
}
