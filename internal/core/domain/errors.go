package domain

import "go.trai.ch/zerr"

var (
	// ErrWorkspaceCreateFailed is returned when a build workspace directory cannot be created.
	ErrWorkspaceCreateFailed = zerr.New("failed to create build workspace")

	// ErrWorkspaceWriteFailed is returned when a file cannot be written into a workspace.
	ErrWorkspaceWriteFailed = zerr.New("failed to write into build workspace")

	// ErrWorkspaceReadFailed is returned when a file cannot be read from a workspace.
	ErrWorkspaceReadFailed = zerr.New("failed to read from build workspace")

	// ErrWorkspaceRemoveFailed is returned when a workspace cannot be removed.
	ErrWorkspaceRemoveFailed = zerr.New("failed to remove build workspace")

	// ErrUnknownPlatform is returned when no builder is registered for a platform.
	ErrUnknownPlatform = zerr.New("unknown platform")

	// ErrInvalidPlatform is returned when a platform identifier is malformed.
	ErrInvalidPlatform = zerr.New("invalid platform")

	// ErrCoreNotFound is returned when no core matches the requested platform.
	ErrCoreNotFound = zerr.New("core not found")

	// ErrConfigurationNotFound is returned when a selector names an unknown configuration.
	ErrConfigurationNotFound = zerr.New("build configuration not found")

	// ErrPlatformNotSet is returned when a build is loaded before a platform was chosen.
	ErrPlatformNotSet = zerr.New("platform not set")

	// ErrPlatformAlreadySet is returned when a build's platform is changed after assignment.
	ErrPlatformAlreadySet = zerr.New("platform already set")

	// ErrAlreadyLoaded is returned when a loaded build is loaded or modified again.
	ErrAlreadyLoaded = zerr.New("build already loaded")

	// ErrNotLoaded is returned when a build is used before it was loaded.
	ErrNotLoaded = zerr.New("build not loaded")

	// ErrStagedCoreMismatch is returned when the staged core differs from what was written.
	ErrStagedCoreMismatch = zerr.New("staged core does not match fetched content")

	// ErrBuilderAlreadyRegistered is returned when a platform is registered twice.
	ErrBuilderAlreadyRegistered = zerr.New("builder already registered")

	// ErrRegistrySealed is returned when registering after the registry was sealed.
	ErrRegistrySealed = zerr.New("builder registry is sealed")

	// ErrInvalidCoreArchive is returned when a staged core is not a readable archive.
	ErrInvalidCoreArchive = zerr.New("core is not a valid archive")

	// ErrPatchFailed is returned when a builder cannot produce its artifact.
	ErrPatchFailed = zerr.New("failed to patch core")

	// ErrCoreVersionExists is returned when uploading a version that is already stored.
	ErrCoreVersionExists = zerr.New("core version already exists")

	// ErrInvalidCoreVersion is returned when a core version is negative.
	ErrInvalidCoreVersion = zerr.New("invalid core version")

	// ErrInvalidConfiguration is returned when a configuration record is malformed.
	ErrInvalidConfiguration = zerr.New("invalid build configuration")

	// ErrBlobNotFound is returned when a digest has no stored content.
	ErrBlobNotFound = zerr.New("blob not found")

	// ErrInvalidDigest is returned when a content reference cannot be parsed.
	ErrInvalidDigest = zerr.New("invalid content digest")

	// ErrBlobCorrupt is returned when stored content does not match its digest.
	ErrBlobCorrupt = zerr.New("blob content does not match digest")

	// ErrStoreOpenFailed is returned when the metadata store cannot be opened.
	ErrStoreOpenFailed = zerr.New("failed to open metadata store")

	// ErrStoreReadFailed is returned when the store cannot be queried.
	ErrStoreReadFailed = zerr.New("failed to read from store")

	// ErrStoreWriteFailed is returned when the store cannot be updated.
	ErrStoreWriteFailed = zerr.New("failed to write to store")

	// ErrStoreLockFailed is returned when the upload lock cannot be acquired.
	ErrStoreLockFailed = zerr.New("failed to acquire store lock")

	// ErrConfigReadFailed is returned when the settings file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidSettings is returned when settings hold an unusable value.
	ErrInvalidSettings = zerr.New("invalid settings")

	// ErrBuildFailed is returned when one or more builds of a batch fail.
	ErrBuildFailed = zerr.New("build failed")
)
