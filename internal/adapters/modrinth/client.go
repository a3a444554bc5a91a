// Package modrinth implements the ports.ProviderClient for the Modrinth
// catalog (https://api.modrinth.com/v2).
package modrinth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBaseURL is the production Modrinth API endpoint.
const DefaultBaseURL = "https://api.modrinth.com/v2"

// Client resolves projects against the Modrinth catalog.
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

// NewClient creates a Modrinth client on top of the shared web client.
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
	Slug         string   `json:"slug"`
	ID           string   `json:"id"`
	ServerSide   string   `json:"server_side"`
	Loaders      []string `json:"loaders"`
	GameVersions []string `json:"game_versions"`
	Versions     []string `json:"versions"`
}

type versionInfo struct {
	ID           string              `json:"id"`
	ProjectID    string              `json:"project_id"`
	Dependencies []versionDependency `json:"dependencies"`
	GameVersions []string            `json:"game_versions"`
	Loaders      []string            `json:"loaders"`
	Files        []versionFile       `json:"files"`
}

type versionDependency struct {
	ProjectID      string `json:"project_id"`
	DependencyType string `json:"dependency_type"`
}

type versionFile struct {
	Hashes   fileHashes `json:"hashes"`
	URL      string     `json:"url"`
	Filename string     `json:"filename"`
}

type fileHashes struct {
	Sha512 string `json:"sha512"`
}

// Resolve fetches project and version metadata for id, validates both
// against the loader configuration, and normalizes the result.
func (c *Client) Resolve(ctx context.Context, loader domain.LoaderConfig, id, version string) (*domain.Artifact, error) {
	c.logger.Info(fmt.Sprintf("fetching project info for %s", id))

	var project projectInfo
	if err := c.web.GetJSON(ctx, c.baseURL+"/project/"+url.PathEscape(id), &project); err != nil {
		if errors.Is(err, web.ErrNotFound) {
			return nil, zerr.With(domain.ErrProjectNotFound, "id", id)
		}
		return nil, err
	}

	switch project.ServerSide {
	case "unsupported":
		return nil, zerr.With(domain.ErrServerUnsupported, "id", id)
	case "unknown":
		c.logger.Warn(fmt.Sprintf("project %s may not support server-side", id))
	}

	if !slices.Contains(project.Loaders, string(loader.Name)) {
		return nil, zerr.With(domain.ErrIncompatiblePlatform, "id", id, "loader", string(loader.Name))
	}
	if !slices.Contains(project.GameVersions, loader.GameVersion) {
		return nil, zerr.With(domain.ErrIncompatibleGameVersion, "id", id, "minecraft_version", loader.GameVersion)
	}
	if version != domain.VersionLatest && !slices.Contains(project.Versions, version) {
		return nil, zerr.With(domain.ErrVersionNotFound, "id", id, "version", version)
	}

	var (
		resolved versionInfo
		err      error
	)
	if version == domain.VersionLatest {
		resolved, err = c.latestVersion(ctx, &project, loader)
	} else {
		resolved, err = c.specificVersion(ctx, &project, loader, version)
	}
	if err != nil {
		return nil, err
	}

	file, ok := jarFile(resolved.Files)
	if !ok {
		return nil, zerr.With(zerr.New("version has no jarfile"), "id", id, "version", resolved.ID)
	}

	deps, err := c.dependencies(ctx, &project, resolved.Dependencies)
	if err != nil {
		return nil, err
	}

	return &domain.Artifact{
		Name:        project.Slug,
		ID:          project.ID,
		Version:     resolved.ID,
		Source:      domain.ProviderModrinth,
		DownloadURL: file.URL,
		Checksum: &domain.Checksum{
			Method: "sha512",
			Hash:   file.Hashes.Sha512,
		},
		Dependencies: deps,
	}, nil
}

// latestVersion queries the version list filtered by Minecraft version and
// loader, and picks the first (most recent) compatible entry.
func (c *Client) latestVersion(ctx context.Context, project *projectInfo, loader domain.LoaderConfig) (versionInfo, error) {
	c.logger.Info(fmt.Sprintf("fetching latest version of %s", project.Slug))

	query := url.Values{}
	query.Set("game_versions", fmt.Sprintf("[%q]", loader.GameVersion))
	query.Set("loaders", fmt.Sprintf("[%q]", string(loader.Name)))

	endpoint := c.baseURL + "/project/" + url.PathEscape(project.Slug) + "/version?" + query.Encode()

	var versions []versionInfo
	if err := c.web.GetJSON(ctx, endpoint, &versions); err != nil {
		if errors.Is(err, web.ErrNotFound) {
			return versionInfo{}, zerr.With(domain.ErrVersionNotFound, "id", project.Slug)
		}
		return versionInfo{}, err
	}

	for _, v := range versions {
		if slices.Contains(v.GameVersions, loader.GameVersion) && slices.Contains(v.Loaders, string(loader.Name)) {
			return v, nil
		}
	}

	return versionInfo{}, zerr.With(domain.ErrVersionNotFound,
		"id", project.Slug,
		"loader", string(loader.Name),
		"minecraft_version", loader.GameVersion,
	)
}

// specificVersion fetches one version by id and validates that it belongs
// to the requested project and satisfies the loader configuration.
func (c *Client) specificVersion(ctx context.Context, project *projectInfo, loader domain.LoaderConfig, version string) (versionInfo, error) {
	c.logger.Info(fmt.Sprintf("fetching version %s of %s", version, project.Slug))

	var v versionInfo
	if err := c.web.GetJSON(ctx, c.baseURL+"/version/"+url.PathEscape(version), &v); err != nil {
		if errors.Is(err, web.ErrNotFound) {
			return versionInfo{}, zerr.With(domain.ErrVersionNotFound, "version", version)
		}
		return versionInfo{}, err
	}

	if v.ProjectID != project.ID {
		return versionInfo{}, zerr.With(domain.ErrVersionNotFound,
			"version", version,
			"reason", "version does not belong to project",
			"id", project.Slug,
		)
	}
	if !slices.Contains(v.GameVersions, loader.GameVersion) {
		return versionInfo{}, zerr.With(domain.ErrIncompatibleGameVersion, "version", version, "minecraft_version", loader.GameVersion)
	}
	if !slices.Contains(v.Loaders, string(loader.Name)) {
		return versionInfo{}, zerr.With(domain.ErrIncompatiblePlatform, "version", version, "loader", string(loader.Name))
	}

	return v, nil
}

// dependencies normalizes the declared dependencies, resolving each display
// name through a secondary project lookup. Dependency kinds other than
// required and optional (embedded, incompatible) are not installable and
// are dropped.
func (c *Client) dependencies(ctx context.Context, project *projectInfo, declared []versionDependency) ([]domain.DependencyRef, error) {
	var refs []domain.DependencyRef

	for _, dep := range declared {
		if dep.DependencyType != "required" && dep.DependencyType != "optional" {
			continue
		}
		if dep.ProjectID == project.ID {
			return nil, zerr.With(domain.ErrSelfDependency, "id", project.Slug)
		}

		var depProject projectInfo
		if err := c.web.GetJSON(ctx, c.baseURL+"/project/"+url.PathEscape(dep.ProjectID), &depProject); err != nil {
			if errors.Is(err, web.ErrNotFound) {
				return nil, zerr.With(domain.ErrProjectNotFound, "id", dep.ProjectID)
			}
			return nil, err
		}

		refs = append(refs, domain.DependencyRef{
			ID:       dep.ProjectID,
			Name:     strings.ToLower(depProject.Slug),
			Source:   domain.ProviderModrinth,
			Required: dep.DependencyType == "required",
		})
	}

	return refs, nil
}

func jarFile(files []versionFile) (versionFile, bool) {
	for _, f := range files {
		if strings.HasSuffix(f.Filename, ".jar") {
			return f, true
		}
	}
	return versionFile{}, false
}
