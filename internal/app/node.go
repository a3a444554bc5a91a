package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/mupmc/mup/internal/adapters/fabric"   //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/forge"    //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/hangar"   //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/lockfile" //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/modrinth" //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/neoforge" //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/paper"    //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/progress" //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/vanilla"  //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/adapters/web"      //nolint:depguard // Wired in app layer
	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			lockfile.NodeID,
			web.DownloaderNodeID,
			logger.NodeID,
			progress.NodeID,
			modrinth.NodeID,
			hangar.NodeID,
			paper.NodeID,
			fabric.NodeID,
			forge.NodeID,
			neoforge.NodeID,
			vanilla.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			lockfile.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	store, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}
	downloader, err := graft.Dep[ports.Downloader](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	prog, err := graft.Dep[ports.Progress](ctx)
	if err != nil {
		return nil, err
	}

	modrinthClient, err := graft.Dep[*modrinth.Client](ctx)
	if err != nil {
		return nil, err
	}
	hangarClient, err := graft.Dep[*hangar.Client](ctx)
	if err != nil {
		return nil, err
	}

	paperInstaller, err := graft.Dep[*paper.Installer](ctx)
	if err != nil {
		return nil, err
	}
	fabricInstaller, err := graft.Dep[*fabric.Installer](ctx)
	if err != nil {
		return nil, err
	}
	forgeInstaller, err := graft.Dep[*forge.Installer](ctx)
	if err != nil {
		return nil, err
	}
	neoforgeInstaller, err := graft.Dep[*neoforge.Installer](ctx)
	if err != nil {
		return nil, err
	}
	vanillaInstaller, err := graft.Dep[*vanilla.Installer](ctx)
	if err != nil {
		return nil, err
	}

	providers := map[domain.Provider]ports.ProviderClient{
		domain.ProviderModrinth: modrinthClient,
		domain.ProviderHangar:   hangarClient,
	}
	installers := map[domain.LoaderName]ports.LoaderInstaller{
		domain.LoaderPaper:    paperInstaller,
		domain.LoaderFabric:   fabricInstaller,
		domain.LoaderForge:    forgeInstaller,
		domain.LoaderNeoForge: neoforgeInstaller,
		domain.LoaderVanilla:  vanillaInstaller,
	}

	return New(store, providers, installers, downloader, log, prog), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.LockfileStore](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Logger: log,
		Store:  store,
	}, nil
}
