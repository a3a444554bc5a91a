// Package paper resolves Paper server builds from the PaperMC downloads API.
package paper

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBaseURL is the PaperMC project endpoint.
const DefaultBaseURL = "https://api.papermc.io/v2/projects/paper"

// Installer implements ports.LoaderInstaller for Paper.
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

// NewInstaller creates a Paper installer on top of the shared web client.
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

type versionList struct {
	Versions []string `json:"versions"`
}

type buildList struct {
	Builds []buildInfo `json:"builds"`
}

type buildInfo struct {
	Build     int       `json:"build"`
	Downloads downloads `json:"downloads"`
}

type downloads struct {
	Application application `json:"application"`
}

type application struct {
	Sha256 string `json:"sha256"`
}

// Resolve picks the requested Paper build for cfg. The versions and builds
// lists are both ordered oldest-first, so "latest" is the last entry.
func (i *Installer) Resolve(ctx context.Context, cfg domain.LoaderConfig) (*domain.LoaderArtifact, error) {
	minecraft := cfg.GameVersion
	if minecraft == domain.VersionLatest {
		latest, err := i.latestGameVersion(ctx)
		if err != nil {
			return nil, err
		}
		minecraft = latest
	}

	build, err := i.build(ctx, minecraft, cfg.Version)
	if err != nil {
		return nil, err
	}

	fileName := fmt.Sprintf("paper-%s-%d.jar", minecraft, build.Build)

	return &domain.LoaderArtifact{
		DownloadURL: fmt.Sprintf("%s/versions/%s/builds/%d/downloads/%s", i.baseURL, minecraft, build.Build, fileName),
		FileName:    fileName,
		Checksum: &domain.Checksum{
			Method: "sha256",
			Hash:   build.Downloads.Application.Sha256,
		},
	}, nil
}

func (i *Installer) latestGameVersion(ctx context.Context) (string, error) {
	i.logger.Info("fetching latest minecraft version supported by paper")

	var list versionList
	if err := i.web.GetJSON(ctx, i.baseURL, &list); err != nil {
		return "", err
	}
	if len(list.Versions) == 0 {
		return "", zerr.New("paper version list is empty")
	}
	return list.Versions[len(list.Versions)-1], nil
}

func (i *Installer) build(ctx context.Context, minecraft, version string) (buildInfo, error) {
	i.logger.Info(fmt.Sprintf("fetching paper builds for minecraft %s", minecraft))

	var list buildList
	if err := i.web.GetJSON(ctx, i.baseURL+"/versions/"+minecraft+"/builds", &list); err != nil {
		return buildInfo{}, err
	}
	if len(list.Builds) == 0 {
		return buildInfo{}, zerr.With(domain.ErrBuildNotFound, "minecraft_version", minecraft)
	}

	if version == domain.VersionLatest {
		return list.Builds[len(list.Builds)-1], nil
	}

	wanted, err := strconv.Atoi(version)
	if err != nil {
		return buildInfo{}, zerr.With(zerr.Wrap(err, "paper build numbers are numeric"), "build", version)
	}
	for _, b := range list.Builds {
		if b.Build == wanted {
			return b, nil
		}
	}

	return buildInfo{}, zerr.With(domain.ErrBuildNotFound, "minecraft_version", minecraft, "build", version)
}
