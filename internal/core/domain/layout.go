package domain

import (
	"path/filepath"
	"strings"
)

const (
	// EmorecDirName is the name of the internal workspace directory.
	EmorecDirName = ".emorec"

	// StoreDirName is the name of the record store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "emorec.yaml"

	// ResampleDirName is the default directory for resampled audio.
	ResampleDirName = "resampled"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultEmorecPath returns the default root directory for emorec metadata.
func DefaultEmorecPath() string {
	return EmorecDirName
}

// DefaultStorePath returns the default path for the resample record store.
// It joins .emorec and store.
func DefaultStorePath() string {
	return filepath.Join(EmorecDirName, StoreDirName)
}

// FileStem returns the base name of path without its extension.
func FileStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
