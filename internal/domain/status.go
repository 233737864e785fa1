package domain

// SyncState classifies a single path's sync condition at probe time.
// Each probe is a fresh classification, not a persistent state machine.
type SyncState string

const (
	// StateNotFound means the path does not exist on the local filesystem
	StateNotFound SyncState = "not-found"

	// StateFullySynced means the content is fully materialized locally
	StateFullySynced SyncState = "synced"

	// StateOnlineOnly means the entry is a remote placeholder whose
	// content has not been downloaded
	StateOnlineOnly SyncState = "online-only"

	// StateSyncing means a download/upload is actively in progress
	StateSyncing SyncState = "syncing"

	// StateUnknown means the probe could not determine status
	StateUnknown SyncState = "unknown"
)

// StatusReport is the value object produced by each sync-status probe.
// Immutable once constructed; never persisted.
type StatusReport struct {
	// Path is the queried path
	Path string

	// Exists reports whether the path exists locally
	Exists bool

	// State is the classification for this probe
	State SyncState

	// Err holds a human-readable description when the probe could not
	// determine status; empty otherwise
	Err string

	// Downloaded reports that a hydration request was issued by this
	// call. Hydration is asynchronous; this does not mean the download
	// has completed.
	Downloaded bool
}

// Synced reports whether the path is fully materialized locally
func (r StatusReport) Synced() bool {
	return r.State == StateFullySynced
}

// OnlineOnly reports whether the path is a remote placeholder
func (r StatusReport) OnlineOnly() bool {
	return r.State == StateOnlineOnly
}

// Syncing reports whether a transfer is actively in progress
func (r StatusReport) Syncing() bool {
	return r.State == StateSyncing
}
