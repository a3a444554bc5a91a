// Package hangar implements the ports.ProviderClient for the Hangar
// catalog (https://hangar.papermc.io/api/v1). Hangar serves Paper plugins;
// projects are keyed by name rather than by an opaque id.
package hangar

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBaseURL is the production Hangar API endpoint.
const DefaultBaseURL = "https://hangar.papermc.io/api/v1"

// Client resolves projects against the Hangar catalog.
type Client struct {
	web     *web.Client
	logger  ports.Logger
	baseURL string
}

var _ ports.ProviderClient = (*Client)(nil)

// Option configures a Client during construction.
type Option func(*Client)

// WithBaseURL overrides the API base URL, primarily for test servers.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(base, "/")
	}
}

// NewClient creates a Hangar client on top of the shared web client.
func NewClient(webClient *web.Client, logger ports.Logger, opts ...Option) *Client {
	c := &Client{
		web:     webClient,
		logger:  logger,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type projectInfo struct {
	Name string `json:"name"`
}

type versionInfo struct {
	Downloads            map[string]download     `json:"downloads"`
	PluginDependencies   map[string][]dependency `json:"pluginDependencies"`
	PlatformDependencies map[string][]string     `json:"platformDependencies"`
}

type download struct {
	FileInfo    fileInfo `json:"fileInfo"`
	DownloadURL string   `json:"downloadUrl"`
}

type fileInfo struct {
	Sha256 string `json:"sha256Hash"`
}

type dependency struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// Resolve fetches project and version metadata for id and validates the
// version against the loader configuration. Hangar declares compatibility
// per platform key (e.g. "PAPER"), with exact Minecraft version matches.
func (c *Client) Resolve(ctx context.Context, loader domain.LoaderConfig, id, version string) (*domain.Artifact, error) {
	c.logger.Info(fmt.Sprintf("fetching project info for %s", id))

	var project projectInfo
	if err := c.web.GetJSON(ctx, c.baseURL+"/projects/"+url.PathEscape(id), &project); err != nil {
		if errors.Is(err, web.ErrNotFound) {
			return nil, zerr.With(domain.ErrProjectNotFound, "id", id)
		}
		return nil, err
	}

	if version == domain.VersionLatest {
		c.logger.Info(fmt.Sprintf("fetching latest release of %s", project.Name))

		latest, err := c.web.GetString(ctx, c.baseURL+"/projects/"+url.PathEscape(project.Name)+"/latestrelease")
		if err != nil {
			if errors.Is(err, web.ErrNotFound) {
				return nil, zerr.With(domain.ErrVersionNotFound, "id", project.Name)
			}
			return nil, err
		}
		version = latest
	}

	c.logger.Info(fmt.Sprintf("fetching info for %s v%s", project.Name, version))

	var v versionInfo
	endpoint := c.baseURL + "/projects/" + url.PathEscape(project.Name) + "/versions/" + url.PathEscape(version)
	if err := c.web.GetJSON(ctx, endpoint, &v); err != nil {
		if errors.Is(err, web.ErrNotFound) {
			return nil, zerr.With(domain.ErrVersionNotFound, "id", project.Name, "version", version)
		}
		return nil, err
	}

	platform := strings.ToUpper(string(loader.Name))

	platformVersions, ok := v.PlatformDependencies[platform]
	if !ok {
		return nil, zerr.With(domain.ErrIncompatiblePlatform, "id", project.Name, "version", version, "loader", string(loader.Name))
	}
	if !supportsGameVersion(platformVersions, loader.GameVersion) {
		return nil, zerr.With(domain.ErrIncompatibleGameVersion, "id", project.Name, "version", version, "minecraft_version", loader.GameVersion)
	}

	dl, ok := v.Downloads[platform]
	if !ok {
		return nil, zerr.With(zerr.New("version has no download for platform"), "id", project.Name, "platform", platform)
	}

	var refs []domain.DependencyRef
	for _, dep := range v.PluginDependencies[platform] {
		refs = append(refs, domain.DependencyRef{
			ID:       dep.Name,
			Name:     strings.ToLower(dep.Name),
			Source:   domain.ProviderHangar,
			Required: dep.Required,
		})
	}

	return &domain.Artifact{
		Name:        project.Name,
		ID:          project.Name,
		Version:     version,
		Source:      domain.ProviderHangar,
		DownloadURL: dl.DownloadURL,
		Checksum: &domain.Checksum{
			Method: "sha256",
			Hash:   dl.FileInfo.Sha256,
		},
		Dependencies: refs,
	}, nil
}

// supportsGameVersion requires an exact version match; Hangar declares
// ranges elsewhere but installs are pinned to one Minecraft version.
func supportsGameVersion(declared []string, gameVersion string) bool {
	want, err := domain.ParseGameVersion(gameVersion)
	if err != nil {
		return false
	}

	for _, d := range declared {
		if d == gameVersion {
			return true
		}
		if got, err := domain.ParseGameVersion(d); err == nil && got.Compare(want) == 0 && got.String() == want.String() {
			return true
		}
	}
	return false
}
