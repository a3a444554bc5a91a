package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/mupmc/mup/cmd/mup/commands"
	"github.com/mupmc/mup/internal/app"
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"github.com/mupmc/mup/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type harness struct {
	store      *mocks.MockLockfileStore
	provider   *mocks.MockProviderClient
	installer  *mocks.MockLoaderInstaller
	downloader *mocks.MockDownloader
	progress   *mocks.MockProgress
	cli        *commands.CLI
	out        *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		store:      mocks.NewMockLockfileStore(ctrl),
		provider:   mocks.NewMockProviderClient(ctrl),
		installer:  mocks.NewMockLoaderInstaller(ctrl),
		downloader: mocks.NewMockDownloader(ctrl),
		progress:   mocks.NewMockProgress(ctrl),
		out:        &bytes.Buffer{},
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(
		h.store,
		map[domain.Provider]ports.ProviderClient{domain.ProviderModrinth: h.provider},
		map[domain.LoaderName]ports.LoaderInstaller{domain.LoaderFabric: h.installer},
		h.downloader,
		logger,
		h.progress,
	)

	h.cli = commands.New(a)
	h.cli.SetOut(h.out)
	return h
}

func (h *harness) execute(t *testing.T, args ...string) error {
	t.Helper()
	h.cli.SetArgs(args)
	return h.cli.Execute(context.Background())
}

func TestLoaderList(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.execute(t, "loader", "list"))
	assert.Equal(t, "paper, fabric, forge, neoforge, vanilla\n", h.out.String())
}

func TestPluginAdd_UnknownProvider(t *testing.T) {
	h := newHarness(t)

	err := h.execute(t, "plugin", "add", "sodium", "--provider", "curseforge")
	require.ErrorIs(t, err, domain.ErrUnknownProvider)
}

func TestPluginAdd_WiresFlags(t *testing.T) {
	h := newHarness(t)
	loader := domain.LoaderConfig{
		Name:        domain.LoaderFabric,
		GameVersion: "1.20.1",
		Version:     domain.VersionLatest,
	}
	artifact := domain.Artifact{
		Name:        "sodium",
		ID:          "AANobbMI",
		Version:     "0.5.3",
		Source:      domain.ProviderModrinth,
		DownloadURL: "https://cdn.example/sodium-0.5.3.jar",
		Dependencies: []domain.DependencyRef{
			// Skipped because --no-deps is set.
			{ID: "P7dR8mSH", Name: "fabric-api", Source: domain.ProviderModrinth, Required: true},
		},
	}

	h.store.EXPECT().IsInitialized().Return(true)
	h.store.EXPECT().Get("sodium").Return(nil, domain.ErrProjectNotFound)
	h.store.EXPECT().Loader().Return(loader)
	h.provider.EXPECT().
		Resolve(gomock.Any(), loader, "sodium", "0.5.3").
		Return(&artifact, nil)

	vtx := mocks.NewMockVertex(gomock.NewController(t))
	vtx.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
	vtx.EXPECT().Done(nil)
	h.progress.EXPECT().Begin("sodium-0.5.3.jar").Return(vtx)

	h.downloader.EXPECT().
		Fetch(gomock.Any(), artifact.DownloadURL, "mods/sodium-0.5.3.jar").
		Return(nil)
	h.store.EXPECT().Add(artifact).Return(nil)

	require.NoError(t, h.execute(t,
		"mod", "add", "sodium", "--version", "0.5.3", "--no-deps",
	))
}

func TestPluginRemove_KeepOrphans(t *testing.T) {
	h := newHarness(t)
	removed := domain.Artifact{
		Name:        "sodium",
		ID:          "AANobbMI",
		DownloadURL: "https://cdn.example/sodium-0.5.3.jar",
		Dependencies: []domain.DependencyRef{
			{ID: "P7dR8mSH", Name: "fabric-api", Source: domain.ProviderModrinth, Required: true},
		},
	}

	h.store.EXPECT().IsInitialized().Return(true)
	h.store.EXPECT().Remove("sodium").Return(&removed, nil)
	h.store.EXPECT().Loader().Return(domain.LoaderConfig{Name: domain.LoaderFabric})

	// --keep-orphans suppresses the dependency sweep entirely, so the store
	// sees no further lookups.
	require.NoError(t, h.execute(t,
		"plugin", "remove", "sodium", "--keep-jarfile", "--keep-orphans",
	))
}

func TestLoaderFetch(t *testing.T) {
	h := newHarness(t)
	cfg := domain.LoaderConfig{
		Name:        domain.LoaderFabric,
		GameVersion: "1.20.1",
		Version:     domain.VersionLatest,
	}

	h.installer.EXPECT().
		Resolve(gomock.Any(), cfg).
		Return(&domain.LoaderArtifact{
			DownloadURL: "https://meta.example/loader/jar",
			FileName:    "fabric.jar",
		}, nil)

	vtx := mocks.NewMockVertex(gomock.NewController(t))
	vtx.EXPECT().Write(gomock.Any()).Return(0, nil).AnyTimes()
	vtx.EXPECT().Done(nil)
	h.progress.EXPECT().Begin("fabric.jar").Return(vtx)

	h.downloader.EXPECT().
		Fetch(gomock.Any(), "https://meta.example/loader/jar", "fabric.jar").
		Return(nil)

	// The lockfile store sees no calls at all.
	require.NoError(t, h.execute(t,
		"loader", "fetch", "-n", "fabric", "-m", "1.20.1",
	))
}

func TestServerInit_UnknownLoader(t *testing.T) {
	h := newHarness(t)

	err := h.execute(t, "server", "init", "-m", "1.20.1", "-l", "bukkit")
	require.ErrorIs(t, err, domain.ErrUnknownLoader)
}

func TestVersion(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.execute(t, "version"))
	assert.Contains(t, h.out.String(), "dev")
}
