// Package constants provides shared constants used by the reconciliation
// tooling: file permissions, snapshot document defaults and the names used
// for configuration and metrics.
package constants

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Snapshot document defaults
const (
	// SnapshotType is the "type" field written to snapshot documents
	SnapshotType = "excalidraw"

	// SnapshotVersion is the schema version written to snapshot documents
	SnapshotVersion = 2

	// SnapshotSource identifies documents written by this tool
	SnapshotSource = "excalidraw-reconcile"

	// StdioPath selects stdin or stdout instead of a file
	StdioPath = "-"
)

// Configuration
const (
	// AppName is the CLI binary name
	AppName = "excalidraw-reconcile"

	// EnvPrefix prefixes environment variables read through viper
	EnvPrefix = "EXCALIDRAW"

	// ConfigFileName is the config file searched in $HOME and the working directory
	ConfigFileName = ".excalidraw-reconcile"
)

// Metrics
const (
	// MetricsNamespace is the prometheus namespace for reconciliation metrics
	MetricsNamespace = "excalidraw"

	// MetricsSubsystem is the prometheus subsystem for reconciliation metrics
	MetricsSubsystem = "reconcile"
)
