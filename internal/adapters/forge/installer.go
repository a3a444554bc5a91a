// Package forge resolves Forge installer jarfiles from the Forge maven
// repository, reconstructing the historically irregular maven tag formats.
package forge

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
	// DefaultPromosURL serves the promoted (latest/recommended) build map.
	DefaultPromosURL = "https://files.minecraftforge.net/maven/net/minecraftforge/forge/promotions_slim.json"
	// DefaultMavenURL is the installer jarfile repository.
	DefaultMavenURL = "https://maven.minecraftforge.net/net/minecraftforge/forge"
)

// Installer implements ports.LoaderInstaller for Forge.
type Installer struct {
	web       *web.Client
	logger    ports.Logger
	promosURL string
	mavenURL  string
}

var _ ports.LoaderInstaller = (*Installer)(nil)

// Option configures an Installer during construction.
type Option func(*Installer)

// WithPromosURL overrides the promotions endpoint, primarily for tests.
func WithPromosURL(u string) Option {
	return func(i *Installer) {
		i.promosURL = u
	}
}

// WithMavenURL overrides the maven repository URL, primarily for tests.
func WithMavenURL(u string) Option {
	return func(i *Installer) {
		i.mavenURL = strings.TrimRight(u, "/")
	}
}

// NewInstaller creates a Forge installer on top of the shared web client.
func NewInstaller(webClient *web.Client, logger ports.Logger, opts ...Option) *Installer {
	i := &Installer{
		web:       webClient,
		logger:    logger,
		promosURL: DefaultPromosURL,
		mavenURL:  DefaultMavenURL,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

type promosResponse struct {
	Promos map[string]string `json:"promos"`
}

// Resolve picks the forge build promoted for cfg and computes the maven
// installer URL from the reconstructed version tag.
func (i *Installer) Resolve(ctx context.Context, cfg domain.LoaderConfig) (*domain.LoaderArtifact, error) {
	i.logger.Info("fetching forge promotions")

	var resp promosResponse
	if err := i.web.GetJSON(ctx, i.promosURL, &resp); err != nil {
		return nil, err
	}

	minecraftRaw := cfg.GameVersion
	if minecraftRaw == domain.VersionLatest {
		latest, err := latestPromotedVersion(resp.Promos)
		if err != nil {
			return nil, err
		}
		minecraftRaw = latest
	}

	minecraft, err := domain.ParseGameVersion(minecraftRaw)
	if err != nil {
		return nil, zerr.With(domain.ErrInvalidGameVersion, "minecraft_version", minecraftRaw)
	}

	installer := cfg.Version
	switch installer {
	case domain.VersionLatest, domain.VersionRecommended:
		promoted, ok := resp.Promos[minecraftRaw+"-"+installer]
		if !ok {
			return nil, zerr.With(domain.ErrBuildNotFound,
				"minecraft_version", minecraftRaw,
				"channel", installer,
			)
		}
		installer = promoted
	}

	tag, err := VersionTag(minecraft, installer)
	if err != nil {
		return nil, err
	}

	return &domain.LoaderArtifact{
		DownloadURL: fmt.Sprintf("%s/%s/forge-%s-installer.jar", i.mavenURL, tag, tag),
		FileName:    fmt.Sprintf("forge-%s-%s.jar", minecraftRaw, installer),
	}, nil
}

// latestPromotedVersion scans the promotion keys ("1.20.1-latest") for the
// highest minecraft version that has any promoted build.
func latestPromotedVersion(promos map[string]string) (string, error) {
	var best domain.GameVersion
	found := false

	for key := range promos {
		raw, _, ok := strings.Cut(key, "-")
		if !ok {
			continue
		}
		v, err := domain.ParseGameVersion(raw)
		if err != nil || v.Kind() == domain.VersionComplex {
			continue
		}
		if !found || best.Before(v) {
			best = v
			found = true
		}
	}

	if !found {
		return "", zerr.New("forge promotions contain no minecraft versions")
	}
	return best.String(), nil
}
