package domain

import "path/filepath"

const (
	// AppName is used for XDG directories and the workspace prefix.
	AppName = "corebuild"

	// ConfigFileName is the name of the settings file.
	ConfigFileName = "corebuild.yaml"

	// ConfigEnvVar overrides the settings file location.
	ConfigEnvVar = "COREBUILD_CONFIG"

	// WorkspacePrefix starts every workspace directory name.
	WorkspacePrefix = AppName + "-"

	// CoreFileName is the name of the staged core inside a workspace.
	CoreFileName = "core"

	// OutputDirName is the builder output directory inside a workspace.
	OutputDirName = "output"

	// MetadataFileName is the SQLite database inside the store directory.
	MetadataFileName = "metadata.db"

	// BlobsDirName is the blob directory inside the store directory.
	BlobsDirName = "blobs"

	// UploadLockName guards core uploads across processes.
	UploadLockName = "upload.lock"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// MetadataPath returns the metadata database path inside storeDir.
func MetadataPath(storeDir string) string {
	return filepath.Join(storeDir, MetadataFileName)
}

// BlobsPath returns the blob directory inside storeDir.
func BlobsPath(storeDir string) string {
	return filepath.Join(storeDir, BlobsDirName)
}

// UploadLockPath returns the upload lock file inside storeDir.
func UploadLockPath(storeDir string) string {
	return filepath.Join(storeDir, UploadLockName)
}
