package vanilla_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mupmc/mup/internal/adapters/vanilla"
	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

// newInstaller serves a manifest whose per-version metadata URLs point back
// into the same test server.
func newInstaller(t *testing.T) *vanilla.Installer {
	t.Helper()

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	mux.HandleFunc("/manifest", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{
			"latest": {"release": "1.20.1", "snapshot": "23w31a"},
			"versions": [
				{"id": "23w31a", "type": "snapshot", "url": "%[1]s/versions/23w31a"},
				{"id": "1.20.1", "type": "release", "url": "%[1]s/versions/1.20.1"}
			]
		}`, srv.URL)
	})
	mux.HandleFunc("/versions/1.20.1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"downloads": {"server": {"url": "https://mojang.example/1.20.1/server.jar", "sha1": "aa11"}}}`))
	})
	mux.HandleFunc("/versions/23w31a", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"downloads": {"server": {"url": "https://mojang.example/23w31a/server.jar", "sha1": "bb22"}}}`))
	})

	return vanilla.NewInstaller(web.NewClient(), nopLogger{}, vanilla.WithManifestURL(srv.URL+"/manifest"))
}

func TestInstaller_Resolve_Release(t *testing.T) {
	installer := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderVanilla,
		GameVersion: "1.20.1",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://mojang.example/1.20.1/server.jar", artifact.DownloadURL)
	assert.Equal(t, "vanilla-1.20.1-server.jar", artifact.FileName)
	require.NotNil(t, artifact.Checksum)
	assert.Equal(t, "sha1", artifact.Checksum.Method)
	assert.Equal(t, "aa11", artifact.Checksum.Hash)
}

func TestInstaller_Resolve_LatestRelease(t *testing.T) {
	installer := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderVanilla,
		GameVersion: domain.VersionLatest,
	})
	require.NoError(t, err)
	assert.Equal(t, "vanilla-1.20.1-server.jar", artifact.FileName)
}

func TestInstaller_Resolve_LatestSnapshot(t *testing.T) {
	installer := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:           domain.LoaderVanilla,
		GameVersion:    domain.VersionLatest,
		AllowSnapshots: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "vanilla-23w31a-server.jar", artifact.FileName)
	assert.Equal(t, "bb22", artifact.Checksum.Hash)
}

func TestInstaller_Resolve_SnapshotNotAllowed(t *testing.T) {
	installer := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderVanilla,
		GameVersion: "23w31a",
	})
	require.ErrorIs(t, err, domain.ErrSnapshotNotAllowed)
}

func TestInstaller_Resolve_UnknownVersion(t *testing.T) {
	installer := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderVanilla,
		GameVersion: "1.0.0",
	})
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
}
