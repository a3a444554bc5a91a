// Package lockfile implements the persisted lockfile store backing
// ports.LockfileStore with a YAML document.
package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the lockfile location inside a server directory.
const DefaultPath = "mup.lock"

const header = `# This file is automatically @generated by mup.
# Do not edit this file manually, unless you _really_ messed something up.
`

// Store implements ports.LockfileStore. Every mutating call serializes the
// whole document and replaces the file via a temp-file rename, so readers
// never observe a partial write.
type Store struct {
	path    string
	mu      sync.RWMutex
	doc     domain.Lockfile
	lastSum uint64
}

var _ ports.LockfileStore = (*Store)(nil)

// NewStore loads the lockfile at path, or starts an empty uninitialized
// document when none exists. The file itself is only created by the first
// mutation.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
		doc:  domain.Lockfile{Loader: domain.DefaultLoaderConfig()},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := os.ReadFile(s.path) //nolint:gosec // path is cleaned and chosen by the caller
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read lockfile")
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &s.doc); err != nil {
			return zerr.Wrap(err, "failed to parse lockfile")
		}
	}

	serialized, err := s.serialize()
	if err != nil {
		return err
	}
	s.lastSum = xxhash.Sum64(serialized)

	return nil
}

func (s *Store) serialize() ([]byte, error) {
	body, err := yaml.Marshal(&s.doc)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to marshal lockfile")
	}
	return append([]byte(header), body...), nil
}

// save writes the document out atomically. Rewrites that would produce the
// byte-identical file are skipped.
func (s *Store) save() error {
	data, err := s.serialize()
	if err != nil {
		return err
	}

	sum := xxhash.Sum64(data)
	if sum == s.lastSum {
		if _, err := os.Stat(s.path); err == nil {
			return nil
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".mup.lock-*")
	if err != nil {
		return zerr.Wrap(err, "failed to create lockfile temp file")
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write lockfile")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to write lockfile")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return zerr.Wrap(err, "failed to replace lockfile")
	}

	s.lastSum = sum
	return nil
}

// Loader returns the loader configuration of the current lockfile.
func (s *Store) Loader() domain.LoaderConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Loader
}

// IsInitialized reports whether the lockfile describes a usable server.
func (s *Store) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.IsInitialized()
}

// Artifacts returns a copy of the installed records, in install order.
func (s *Store) Artifacts() []domain.Artifact {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Artifact, len(s.doc.Artifacts))
	copy(out, s.doc.Artifacts)
	return out
}

// Get looks an installed artifact up by canonical id or slug.
func (s *Store) Get(id string) (*domain.Artifact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if a, ok := s.doc.Get(id); ok {
		found := *a
		return &found, nil
	}
	return nil, zerr.With(domain.ErrProjectNotFound, "id", id)
}

// Add upserts a record by identity and saves. An existing record with the
// same canonical id or slug is replaced in place rather than duplicated.
func (s *Store) Add(artifact domain.Artifact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.doc.Artifacts {
		if s.doc.Artifacts[i].Matches(artifact.ID) || s.doc.Artifacts[i].Matches(artifact.Name) {
			s.doc.Artifacts[i] = artifact
			replaced = true
			break
		}
	}
	if !replaced {
		s.doc.Artifacts = append(s.doc.Artifacts, artifact)
	}

	return s.save()
}

// Remove deletes the record matching id, saves, and returns the removed
// record.
func (s *Store) Remove(id string) (*domain.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Artifacts {
		if s.doc.Artifacts[i].Matches(id) {
			removed := s.doc.Artifacts[i]
			s.doc.Artifacts = append(s.doc.Artifacts[:i], s.doc.Artifacts[i+1:]...)
			if err := s.save(); err != nil {
				return nil, err
			}
			return &removed, nil
		}
	}

	return nil, zerr.With(domain.ErrProjectNotFound, "id", id)
}

// InitParams replaces the lockfile with a fresh one for the given Minecraft
// version and loader, and persists it immediately.
func (s *Store) InitParams(gameVersion string, loader domain.LoaderName, allowSnapshots bool) error {
	v, err := domain.ParseGameVersion(gameVersion)
	if err != nil {
		return zerr.With(domain.ErrInvalidGameVersion, "version", gameVersion)
	}
	if v.Kind() == domain.VersionComplex {
		return zerr.With(domain.ErrInvalidGameVersion, "version", gameVersion)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.doc = domain.Lockfile{
		Loader: domain.LoaderConfig{
			Name:           loader,
			GameVersion:    gameVersion,
			Version:        domain.VersionLatest,
			AllowSnapshots: allowSnapshots,
		},
	}

	return s.save()
}
