package domain

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Provider identifies a remote catalog artifacts are resolved against.
type Provider string

const (
	ProviderModrinth Provider = "modrinth"
	ProviderHangar   Provider = "hangar"
)

// ValidProviders returns every supported catalog.
func ValidProviders() []Provider {
	return []Provider{ProviderModrinth, ProviderHangar}
}

// ParseProvider validates a user-supplied provider name.
func ParseProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(s))
	for _, valid := range ValidProviders() {
		if p == valid {
			return p, nil
		}
	}
	return "", zerr.With(ErrUnknownProvider, "provider", s)
}

// Checksum is a declared digest for a downloadable file.
type Checksum struct {
	Method string `yaml:"method"`
	Hash   string `yaml:"hash"`
}

// DependencyRef is a reference to another project, as declared by a provider.
// It is resolved against the lockfile or a provider at add/remove time.
type DependencyRef struct {
	ID       string   `yaml:"id"`
	Name     string   `yaml:"name"`
	Source   Provider `yaml:"source"`
	Required bool     `yaml:"required"`
}

// Artifact is one installed mod or plugin. The provider clients produce it
// as the normalized resolution result and the lockfile persists it verbatim.
type Artifact struct {
	// Name is the human-readable slug, unique per provider but not stable.
	Name string `yaml:"name"`
	// ID is the provider-assigned canonical identifier, stable across
	// re-resolution.
	ID           string          `yaml:"id"`
	Version      string          `yaml:"installed_version"`
	Source       Provider        `yaml:"source"`
	DownloadURL  string          `yaml:"remote_url"`
	Checksum     *Checksum       `yaml:"checksum,omitempty"`
	Dependencies []DependencyRef `yaml:"dependencies,omitempty"`
}

// Matches reports whether id refers to this artifact, by canonical id or by
// slug. Slugs are compared case-insensitively, ids are not.
func (a *Artifact) Matches(id string) bool {
	return a.ID == id || strings.EqualFold(a.Name, id)
}

// FileName is the base name of the downloaded file, taken from the URL.
func (a *Artifact) FileName() string {
	return path.Base(a.DownloadURL)
}

// FilePath is the location the artifact is installed to under the given
// loader configuration.
func (a *Artifact) FilePath(cfg LoaderConfig) string {
	return filepath.Join(cfg.ModDir(), a.FileName())
}

// DependsOn reports whether this artifact declares a required dependency on
// the given artifact.
func (a *Artifact) DependsOn(other *Artifact) bool {
	for _, dep := range a.Dependencies {
		if !dep.Required {
			continue
		}
		if dep.ID == other.ID || strings.EqualFold(dep.Name, other.Name) {
			return true
		}
	}
	return false
}
