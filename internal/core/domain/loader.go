// Package domain holds the core types of mup: the lockfile document, the
// loader configuration and the installed artifact records.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// LoaderName identifies a supported server runtime family.
type LoaderName string

const (
	// LoaderNone is the sentinel for an uninitialized server directory.
	LoaderNone     LoaderName = "none"
	LoaderPaper    LoaderName = "paper"
	LoaderFabric   LoaderName = "fabric"
	LoaderForge    LoaderName = "forge"
	LoaderNeoForge LoaderName = "neoforge"
	LoaderVanilla  LoaderName = "vanilla"
)

// Version sentinels accepted wherever a concrete version token is expected.
const (
	VersionLatest      = "latest"
	VersionRecommended = "recommended"
)

// ValidLoaderNames returns every loader a server can be initialized with,
// in the order they are presented to the user.
func ValidLoaderNames() []LoaderName {
	return []LoaderName{LoaderPaper, LoaderFabric, LoaderForge, LoaderNeoForge, LoaderVanilla}
}

// ParseLoaderName validates a user-supplied loader name.
func ParseLoaderName(s string) (LoaderName, error) {
	name := LoaderName(strings.ToLower(s))
	for _, valid := range ValidLoaderNames() {
		if name == valid {
			return name, nil
		}
	}
	return LoaderNone, zerr.With(ErrUnknownLoader, "name", s)
}

// LoaderConfig is the loader section of the lockfile. It is written once at
// server initialization and read-only afterwards.
type LoaderConfig struct {
	Name           LoaderName `yaml:"name"`
	GameVersion    string     `yaml:"minecraft_version"`
	Version        string     `yaml:"version"`
	AllowSnapshots bool       `yaml:"allow_snapshots,omitempty"`
}

// DefaultLoaderConfig is the configuration of a lockfile that has been
// created but never initialized.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		Name:        LoaderNone,
		GameVersion: VersionLatest,
		Version:     VersionLatest,
	}
}

// ModDir returns the directory artifacts are installed into. Paper consumes
// plugins, every other loader consumes mods.
func (c LoaderConfig) ModDir() string {
	if c.Name == LoaderPaper {
		return "plugins"
	}
	return "mods"
}

// LoaderArtifact is a resolved loader download: where to get it, what to
// call it, and how to verify it when the family publishes digests.
type LoaderArtifact struct {
	DownloadURL string
	FileName    string
	Checksum    *Checksum

	// Notice is an optional message surfaced to the user after download,
	// e.g. for loaders whose installer needs a manual step.
	Notice string
}
