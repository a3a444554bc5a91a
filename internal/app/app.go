// Package app implements the application layer for mup: the dependency
// resolver and the server lifecycle operations.
package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/mupmc/mup/internal/core/domain"
	"github.com/mupmc/mup/internal/core/ports"
	"go.trai.ch/zerr"
)

// App orchestrates provider resolution, downloads and lockfile mutation.
type App struct {
	store      ports.LockfileStore
	providers  map[domain.Provider]ports.ProviderClient
	installers map[domain.LoaderName]ports.LoaderInstaller
	downloader ports.Downloader
	logger     ports.Logger
	progress   ports.Progress
}

// New creates a new App instance.
func New(
	store ports.LockfileStore,
	providers map[domain.Provider]ports.ProviderClient,
	installers map[domain.LoaderName]ports.LoaderInstaller,
	downloader ports.Downloader,
	logger ports.Logger,
	progress ports.Progress,
) *App {
	return &App{
		store:      store,
		providers:  providers,
		installers: installers,
		downloader: downloader,
		logger:     logger,
		progress:   progress,
	}
}

// AddOptions configures a top-level Add call.
type AddOptions struct {
	// Provider is the catalog the project is resolved against.
	Provider domain.Provider

	// Version is the version token to install; empty means "latest".
	Version string

	// IncludeOptional also installs dependencies declared as optional.
	IncludeOptional bool

	// SkipDependencies installs the named project only.
	SkipDependencies bool
}

// Add resolves a project against its provider and installs it together with
// its required dependencies, depth-first. Every successfully downloaded
// artifact is committed to the lockfile before the next one is attempted, so
// a failure partway through leaves the already-committed artifacts installed.
func (a *App) Add(ctx context.Context, id string, opts AddOptions) error {
	if !a.store.IsInitialized() {
		return domain.ErrNotInitialized
	}

	if installed, err := a.store.Get(id); err == nil {
		return zerr.With(domain.ErrAlreadyInstalled, "id", id, "version", installed.Version)
	}

	version := opts.Version
	if version == "" {
		version = domain.VersionLatest
	}

	return a.add(ctx, opts.Provider, id, version, opts, map[string]struct{}{})
}

// add is one step of the depth-first walk. resolving carries the ids on the
// current resolution path so a dependency cycle fails fast instead of
// recursing forever.
func (a *App) add(ctx context.Context, provider domain.Provider, id, version string, opts AddOptions, resolving map[string]struct{}) error {
	key := strings.ToLower(id)
	if _, busy := resolving[key]; busy {
		return zerr.With(domain.ErrCyclicDependency, "id", id)
	}
	resolving[key] = struct{}{}
	defer delete(resolving, key)

	client, ok := a.providers[provider]
	if !ok {
		return zerr.With(domain.ErrUnknownProvider, "provider", string(provider))
	}

	a.logger.Info(fmt.Sprintf("adding %s version %s from %s", id, version, provider))

	loader := a.store.Loader()

	artifact, err := client.Resolve(ctx, loader, id, version)
	if err != nil {
		return err
	}

	// The caller may have used a slug; guard the canonical id too so a cycle
	// through mixed identifiers is still caught.
	canonical := strings.ToLower(artifact.ID)
	if canonical != key {
		if _, busy := resolving[canonical]; busy {
			return zerr.With(domain.ErrCyclicDependency, "id", artifact.ID)
		}
		resolving[canonical] = struct{}{}
		defer delete(resolving, canonical)
	}

	if !opts.SkipDependencies {
		for _, dep := range artifact.Dependencies {
			if !dep.Required && !opts.IncludeOptional {
				continue
			}
			if a.isInstalled(dep) {
				a.logger.Warn(fmt.Sprintf("dependency %s is already installed, skipping", dep.Name))
				continue
			}
			if err := a.add(ctx, dep.Source, dep.ID, domain.VersionLatest, opts, resolving); err != nil {
				return err
			}
		}
	}

	if err := a.download(ctx, artifact, loader); err != nil {
		return err
	}

	return a.store.Add(*artifact)
}

func (a *App) isInstalled(dep domain.DependencyRef) bool {
	if _, err := a.store.Get(dep.ID); err == nil {
		return true
	}
	_, err := a.store.Get(dep.Name)
	return err == nil
}

// RemoveOptions configures a Remove call.
type RemoveOptions struct {
	// KeepJarfile leaves the downloaded files on disk.
	KeepJarfile bool

	// RemoveOrphans also removes dependencies of the removed artifact that
	// no remaining artifact requires.
	RemoveOrphans bool
}

// Remove deletes an installed artifact from the lockfile and from disk. File
// deletion is best-effort: a filesystem failure is logged and the lockfile
// mutation stands.
func (a *App) Remove(ctx context.Context, id string, opts RemoveOptions) error {
	if !a.store.IsInitialized() {
		return domain.ErrNotInitialized
	}

	removed, err := a.store.Remove(id)
	if err != nil {
		return err
	}

	loader := a.store.Loader()

	a.logger.Info(fmt.Sprintf("removing %s", removed.Name))
	if !opts.KeepJarfile {
		a.deleteFile(removed.FilePath(loader))
	}

	if !opts.RemoveOrphans {
		return nil
	}

	// One pass over the removed artifact's declared dependencies; orphans of
	// orphans are not cascaded.
	for _, dep := range removed.Dependencies {
		if !dep.Required {
			continue
		}
		candidate, err := a.installedDependency(dep)
		if err != nil {
			continue
		}
		if a.requiredByOthers(candidate) {
			continue
		}

		a.logger.Info(fmt.Sprintf("removing orphaned dependency %s", candidate.Name))
		if _, err := a.store.Remove(candidate.ID); err != nil {
			return err
		}
		if !opts.KeepJarfile {
			a.deleteFile(candidate.FilePath(loader))
		}
	}

	return nil
}

func (a *App) installedDependency(dep domain.DependencyRef) (*domain.Artifact, error) {
	if art, err := a.store.Get(dep.ID); err == nil {
		return art, nil
	}
	return a.store.Get(dep.Name)
}

// requiredByOthers reports whether any installed artifact other than the
// candidate itself declares the candidate as a required dependency.
func (a *App) requiredByOthers(candidate *domain.Artifact) bool {
	for _, art := range a.store.Artifacts() {
		if art.ID == candidate.ID {
			continue
		}
		if art.DependsOn(candidate) {
			return true
		}
	}
	return false
}

// Update re-resolves installed artifacts against their source provider and
// replaces them in place when a newer version is available. The id "all"
// updates every installed artifact.
func (a *App) Update(ctx context.Context, id, version string) error {
	if !a.store.IsInitialized() {
		return domain.ErrNotInitialized
	}

	if version == "" {
		version = domain.VersionLatest
	}

	if id == "all" {
		for _, art := range a.store.Artifacts() {
			if err := a.update(ctx, art, version); err != nil {
				return err
			}
		}
		return nil
	}

	installed, err := a.store.Get(id)
	if err != nil {
		return err
	}
	return a.update(ctx, *installed, version)
}

func (a *App) update(ctx context.Context, installed domain.Artifact, version string) error {
	client, ok := a.providers[installed.Source]
	if !ok {
		return zerr.With(domain.ErrUnknownProvider, "provider", string(installed.Source))
	}

	loader := a.store.Loader()

	resolved, err := client.Resolve(ctx, loader, installed.ID, version)
	if err != nil {
		return err
	}

	if resolved.Version == installed.Version {
		a.logger.Info(fmt.Sprintf("%s is up to date", installed.Name))
		return nil
	}

	a.logger.Info(fmt.Sprintf("updating %s from %s to %s", installed.Name, installed.Version, resolved.Version))

	if resolved.FileName() != installed.FileName() {
		a.deleteFile(installed.FilePath(loader))
	}
	if err := a.download(ctx, resolved, loader); err != nil {
		return err
	}

	return a.store.Add(*resolved)
}

// InitServer creates a fresh lockfile for the given loader and Minecraft
// version, downloads the server jarfile and signs the EULA.
func (a *App) InitServer(ctx context.Context, minecraftVersion string, loader domain.LoaderName, allowSnapshots bool) error {
	if err := a.store.InitParams(minecraftVersion, loader, allowSnapshots); err != nil {
		return err
	}
	if err := a.InstallLoader(ctx); err != nil {
		return err
	}
	return a.SignEULA()
}

// InstallLoader resolves and downloads the server jarfile for the configured
// loader.
func (a *App) InstallLoader(ctx context.Context) error {
	return a.FetchLoader(ctx, a.store.Loader())
}

// FetchLoader resolves and downloads a server jarfile for an explicit loader
// configuration, without consulting the lockfile.
func (a *App) FetchLoader(ctx context.Context, cfg domain.LoaderConfig) error {
	installer, ok := a.installers[cfg.Name]
	if !ok {
		return zerr.With(domain.ErrUnknownLoader, "name", string(cfg.Name))
	}

	artifact, err := installer.Resolve(ctx, cfg)
	if err != nil {
		return err
	}

	vtx := a.progress.Begin(artifact.FileName)
	_, _ = fmt.Fprintf(vtx, "downloading %s\n", artifact.DownloadURL)

	if artifact.Checksum != nil {
		err = a.downloader.FetchWithChecksum(ctx, artifact.DownloadURL, artifact.FileName, *artifact.Checksum)
	} else {
		err = a.downloader.Fetch(ctx, artifact.DownloadURL, artifact.FileName)
	}
	vtx.Done(err)
	if err != nil {
		return err
	}

	if artifact.Notice != "" {
		a.logger.Warn(artifact.Notice)
	}
	return nil
}

// Install replays the lockfile: downloads the loader jarfile and every
// recorded artifact.
func (a *App) Install(ctx context.Context) error {
	if !a.store.IsInitialized() {
		return domain.ErrNotInitialized
	}

	if err := a.InstallLoader(ctx); err != nil {
		return err
	}

	loader := a.store.Loader()
	for _, art := range a.store.Artifacts() {
		if err := a.download(ctx, &art, loader); err != nil {
			return err
		}
	}
	return nil
}

// Artifacts lists the installed artifact records.
func (a *App) Artifacts() []domain.Artifact {
	return a.store.Artifacts()
}

// Close flushes the progress display.
func (a *App) Close() error {
	return a.progress.Close()
}

func (a *App) download(ctx context.Context, artifact *domain.Artifact, loader domain.LoaderConfig) error {
	dest := artifact.FilePath(loader)

	vtx := a.progress.Begin(artifact.FileName())
	_, _ = fmt.Fprintf(vtx, "downloading %s\n", artifact.DownloadURL)

	var err error
	if artifact.Checksum != nil {
		err = a.downloader.FetchWithChecksum(ctx, artifact.DownloadURL, dest, *artifact.Checksum)
	} else {
		err = a.downloader.Fetch(ctx, artifact.DownloadURL, dest)
	}
	vtx.Done(err)
	return err
}

func (a *App) deleteFile(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn(fmt.Sprintf("failed to delete %s: %v", path, err))
	}
}
