package domain

import "go.trai.ch/zerr"

var (
	// ErrNotInitialized is returned when an operation requires an initialized server directory.
	ErrNotInitialized = zerr.New("server is not initialized, run 'mup server init' first")

	// ErrAlreadyInstalled is returned when adding a project that is already present in the lockfile.
	ErrAlreadyInstalled = zerr.New("project is already installed")

	// ErrProjectNotFound is returned when a provider does not know the requested project.
	ErrProjectNotFound = zerr.New("project not found")

	// ErrVersionNotFound is returned when a requested project version does not exist.
	ErrVersionNotFound = zerr.New("project version not found")

	// ErrBuildNotFound is returned when a loader build cannot be resolved.
	ErrBuildNotFound = zerr.New("loader build not found")

	// ErrIncompatiblePlatform is returned when a project does not support the configured loader.
	ErrIncompatiblePlatform = zerr.New("project does not support the configured loader")

	// ErrIncompatibleGameVersion is returned when a project does not support the configured Minecraft version.
	ErrIncompatibleGameVersion = zerr.New("project does not support the configured Minecraft version")

	// ErrServerUnsupported is returned when a project declares it does not run server-side.
	ErrServerUnsupported = zerr.New("project does not support server-side")

	// ErrSelfDependency is returned when a project declares a dependency on itself.
	ErrSelfDependency = zerr.New("project declares a dependency on itself")

	// ErrCyclicDependency is returned when dependency resolution encounters a cycle.
	ErrCyclicDependency = zerr.New("cyclic dependency detected")

	// ErrInvalidGameVersion is returned when a Minecraft version token cannot be parsed
	// into a usable version.
	ErrInvalidGameVersion = zerr.New("invalid minecraft version")

	// ErrChecksumMismatch is returned when a downloaded file does not match its declared checksum.
	ErrChecksumMismatch = zerr.New("checksum mismatch")

	// ErrUnknownLoader is returned when a loader name is not one of the supported loaders.
	ErrUnknownLoader = zerr.New("unknown loader")

	// ErrUnknownProvider is returned when a provider name is not one of the supported catalogs.
	ErrUnknownProvider = zerr.New("unknown provider")

	// ErrUnknownChecksumMethod is returned when a checksum method has no registered digest.
	ErrUnknownChecksumMethod = zerr.New("unknown checksum method")

	// ErrSnapshotNotAllowed is returned when a snapshot version is requested without
	// snapshots being enabled.
	ErrSnapshotNotAllowed = zerr.New("snapshot versions require the snapshot flag")

	// ErrExplicitVersionRequired is returned by loaders that cannot resolve the
	// "latest" sentinel without a concrete Minecraft version.
	ErrExplicitVersionRequired = zerr.New("an explicit minecraft version is required")
)
