// Package constants provides shared constants used throughout the winsane codebase.
// This includes timeouts, file permissions, reserved catalog names and the
// default locations of the local and remote catalog documents.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultFetchTimeout bounds the single remote catalog fetch made at startup
	DefaultFetchTimeout = 5 * time.Second

	// DefaultCommandTimeout bounds a single privileged tweak command
	DefaultCommandTimeout = 2 * time.Minute

	// ShutdownTimeout is how long the CLI waits for cleanup after an error
	ShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Reserved catalog names
const (
	// UserFeature is the feature holding the reserved user category
	UserFeature = "Optimizer"

	// UserCategory holds tweaks created locally by the user. Its entries
	// survive merges even though the remote catalog never lists them.
	UserCategory = "User"

	// DefaultUserPurpose replaces a blank purpose on user-created tweaks
	DefaultUserPurpose = "User-defined tweak."
)

// Theme defaults
const (
	// ThemeModeSystem follows the operating system preference
	ThemeModeSystem = "system"

	// ThemeModeLight forces the light palette
	ThemeModeLight = "light"

	// ThemeModeDark forces the dark palette
	ThemeModeDark = "dark"

	// DefaultAccentColor is the accent used when the catalog has none
	DefaultAccentColor = "#0581ff"

	// DefaultDarkerFactor is the shade factor for hover colours
	DefaultDarkerFactor = 0.8
)

// Path constants
const (
	// AppDirName is the per-user application directory name
	AppDirName = "Winsane"

	// DataFileName is the local catalog file name inside AppDirName
	DataFileName = "data.yaml"

	// LockFileName serializes privileged commands across processes
	LockFileName = "exec.lock"

	// ConfigFileName is the viper config name looked up in $HOME and "."
	ConfigFileName = ".winsane"
)

// Remote catalog constants
const (
	// DefaultRemoteURL is the master catalog maintained upstream
	DefaultRemoteURL = "https://raw.githubusercontent.com/wirekurosastak/Winsane/main/data.yaml"

	// UserAgent is sent with every remote fetch
	UserAgent = "Winsane"

	// MaxCatalogBytes caps the remote response body
	MaxCatalogBytes = 8 << 20
)

// Executor constants
const (
	// DefaultShell runs tweak commands
	DefaultShell = "powershell"

	// OutputBufferSize is the maximum number of command output bytes kept for errors
	OutputBufferSize = 30000
)
