package neoforge_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mupmc/mup/internal/adapters/neoforge"
	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newInstaller(t *testing.T) (*neoforge.Installer, *string) {
	t.Helper()

	var gotFilter string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotFilter = r.URL.Query().Get("filter")
		_, _ = w.Write([]byte(`{"version": "20.4.237"}`))
	}))
	t.Cleanup(srv.Close)

	installer := neoforge.NewInstaller(web.NewClient(), nopLogger{},
		neoforge.WithAPIURL(srv.URL),
		neoforge.WithDownloadURL("https://maven.example/releases"),
	)
	return installer, &gotFilter
}

func TestInstaller_Resolve(t *testing.T) {
	installer, gotFilter := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderNeoForge,
		GameVersion: "1.20.4",
		Version:     domain.VersionLatest,
	})
	require.NoError(t, err)

	// Builds are numbered after the minecraft minor and patch components.
	assert.Equal(t, "20.4", *gotFilter)
	assert.Equal(t, "https://maven.example/releases/20.4.237/neoforge-20.4.237-installer.jar", artifact.DownloadURL)
	assert.Equal(t, "neoforge-1.20.4-20.4.237.jar", artifact.FileName)
	assert.Nil(t, artifact.Checksum)
	assert.NotEmpty(t, artifact.Notice)
}

func TestInstaller_Resolve_RejectsLatestMinecraft(t *testing.T) {
	installer, _ := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderNeoForge,
		GameVersion: domain.VersionLatest,
		Version:     domain.VersionLatest,
	})
	require.ErrorIs(t, err, domain.ErrExplicitVersionRequired)
}

func TestInstaller_Resolve_RejectsTwoComponentVersion(t *testing.T) {
	installer, _ := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderNeoForge,
		GameVersion: "1.21",
		Version:     domain.VersionLatest,
	})
	require.ErrorIs(t, err, domain.ErrInvalidGameVersion)
}

func TestInstaller_Resolve_RejectsPreSplitMinecraft(t *testing.T) {
	installer, _ := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderNeoForge,
		GameVersion: "1.20.1",
		Version:     domain.VersionLatest,
	})
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
}
