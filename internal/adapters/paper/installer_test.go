package paper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mupmc/mup/internal/adapters/paper"
	"github.com/mupmc/mup/internal/adapters/web"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newInstaller(t *testing.T, routes map[string]string) (*paper.Installer, string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return paper.NewInstaller(web.NewClient(), nopLogger{}, paper.WithBaseURL(srv.URL)), srv.URL
}

const paperBuilds = `{
	"builds": [
		{"build": 100, "downloads": {"application": {"sha256": "old"}}},
		{"build": 196, "downloads": {"application": {"sha256": "new"}}}
	]
}`

func TestInstaller_Resolve_LatestBuild(t *testing.T) {
	installer, base := newInstaller(t, map[string]string{
		"/versions/1.20.1/builds": paperBuilds,
	})

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderPaper,
		GameVersion: "1.20.1",
		Version:     domain.VersionLatest,
	})
	require.NoError(t, err)

	// Builds are ordered oldest-first, so latest is the last entry.
	assert.Equal(t, "paper-1.20.1-196.jar", artifact.FileName)
	assert.Equal(t, base+"/versions/1.20.1/builds/196/downloads/paper-1.20.1-196.jar", artifact.DownloadURL)
	require.NotNil(t, artifact.Checksum)
	assert.Equal(t, "sha256", artifact.Checksum.Method)
	assert.Equal(t, "new", artifact.Checksum.Hash)
}

func TestInstaller_Resolve_SpecificBuild(t *testing.T) {
	installer, _ := newInstaller(t, map[string]string{
		"/versions/1.20.1/builds": paperBuilds,
	})

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderPaper,
		GameVersion: "1.20.1",
		Version:     "100",
	})
	require.NoError(t, err)
	assert.Equal(t, "paper-1.20.1-100.jar", artifact.FileName)
	assert.Equal(t, "old", artifact.Checksum.Hash)
}

func TestInstaller_Resolve_LatestGameVersion(t *testing.T) {
	installer, _ := newInstaller(t, map[string]string{
		"/":                       `{"versions": ["1.19.4", "1.20", "1.20.1"]}`,
		"/versions/1.20.1/builds": paperBuilds,
	})

	artifact, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderPaper,
		GameVersion: domain.VersionLatest,
		Version:     domain.VersionLatest,
	})
	require.NoError(t, err)
	assert.Equal(t, "paper-1.20.1-196.jar", artifact.FileName)
}

func TestInstaller_Resolve_BuildNotFound(t *testing.T) {
	installer, _ := newInstaller(t, map[string]string{
		"/versions/1.20.1/builds": paperBuilds,
	})

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderPaper,
		GameVersion: "1.20.1",
		Version:     "999",
	})
	require.ErrorIs(t, err, domain.ErrBuildNotFound)
}

func TestInstaller_Resolve_NonNumericBuild(t *testing.T) {
	installer, _ := newInstaller(t, map[string]string{
		"/versions/1.20.1/builds": paperBuilds,
	})

	_, err := installer.Resolve(context.Background(), domain.LoaderConfig{
		Name:        domain.LoaderPaper,
		GameVersion: "1.20.1",
		Version:     "stable",
	})
	require.Error(t, err)
}
