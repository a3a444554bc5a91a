package forge_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mupmc/mup/internal/adapters/forge"
	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

const promos = `{
	"promos": {
		"1.12.2-latest":      "14.23.5.2860",
		"1.12.2-recommended": "14.23.5.2859",
		"1.19.2-latest":      "43.2.0",
		"1.20.1-latest":      "47.2.0"
	}
}`

func newInstaller(t *testing.T) *forge.Installer {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(promos))
	}))
	t.Cleanup(srv.Close)

	return forge.NewInstaller(web.NewClient(), nopLogger{},
		forge.WithPromosURL(srv.URL),
		forge.WithMavenURL("https://maven.example/forge"),
	)
}

func TestInstaller_Resolve_Recommended(t *testing.T) {
	installer := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderForge,
		GameVersion: "1.12.2",
		Version:     domain.VersionRecommended,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"https://maven.example/forge/1.12.2-14.23.5.2859/forge-1.12.2-14.23.5.2859-installer.jar",
		artifact.DownloadURL,
	)
	assert.Equal(t, "forge-1.12.2-14.23.5.2859.jar", artifact.FileName)
	// The forge maven publishes no digest alongside the installer.
	assert.Nil(t, artifact.Checksum)
}

func TestInstaller_Resolve_LatestMinecraft(t *testing.T) {
	installer := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderForge,
		GameVersion: domain.VersionLatest,
		Version:     domain.VersionLatest,
	})
	require.NoError(t, err)

	// The promotion keys name 1.20.1 as the newest promoted minecraft.
	assert.Equal(t, "forge-1.20.1-47.2.0.jar", artifact.FileName)
	assert.Equal(t,
		"https://maven.example/forge/1.20.1-47.2.0/forge-1.20.1-47.2.0-installer.jar",
		artifact.DownloadURL,
	)
}

func TestInstaller_Resolve_PinnedBuild(t *testing.T) {
	installer := newInstaller(t)

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderForge,
		GameVersion: "1.12.2",
		Version:     "14.23.0.2486",
	})
	require.NoError(t, err)
	assert.Equal(t,
		"https://maven.example/forge/1.12.2-14.23.0.2486/forge-1.12.2-14.23.0.2486-installer.jar",
		artifact.DownloadURL,
	)
}

func TestInstaller_Resolve_NoPromotedBuild(t *testing.T) {
	installer := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderForge,
		GameVersion: "1.19.2",
		Version:     domain.VersionRecommended,
	})
	require.ErrorIs(t, err, domain.ErrBuildNotFound)
}

func TestInstaller_Resolve_UnsupportedMinecraft(t *testing.T) {
	installer := newInstaller(t)

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderForge,
		GameVersion: "1.20.2",
		Version:     "49.0.3",
	})
	require.ErrorIs(t, err, domain.ErrVersionNotFound)
}
