// Package status provides sync status tracking and persistence for the
// agent's configured data sources.
package status

import (
	"time"

	"github.com/qharbor/sync-agent/internal/backends"
)

// SourceStatus is the synchronization state of a single data source.
type SourceStatus string

const (
	// SourceSynchronizing means a sync run is in progress
	SourceSynchronizing SourceStatus = "synchronizing"

	// SourceSynchronized means the source is up to date
	SourceSynchronized SourceStatus = "synchronized"

	// SourceError means the last sync run failed
	SourceError SourceStatus = "error"

	// SourcePaused means the source is excluded from scheduling
	SourcePaused SourceStatus = "paused"
)

// AgentStatus is the overall state of the sync agent.
type AgentStatus string

const (
	// AgentRunning means the agent is operating normally
	AgentRunning AgentStatus = "running"

	// AgentError means the agent hit an unrecoverable error
	AgentError AgentStatus = "error"

	// AgentNotLoggedIn means no valid credentials are available
	AgentNotLoggedIn AgentStatus = "not_logged_in"

	// AgentNoConnection means the data server is unreachable
	AgentNoConnection AgentStatus = "no_connection"

	// AgentStopped means the agent is shut down
	AgentStopped AgentStatus = "stopped"
)

// SourceState is the persisted status snapshot of one data source.
type SourceState struct {
	// Name is the configured name of the source
	Name string `json:"name"`

	// Type is the backend type of the source
	Type backends.Type `json:"type"`

	// Status is the current synchronization state
	Status SourceStatus `json:"status"`

	// LastSync is the time the source last completed a sync run
	LastSync time.Time `json:"last_sync,omitzero"`

	// LastError is the message of the last failed sync run, if any
	LastError string `json:"last_error,omitempty"`

	// ItemsSynced counts datasets synchronized so far
	ItemsSynced int `json:"items_synced"`

	// ItemsFailed counts datasets that failed to synchronize
	ItemsFailed int `json:"items_failed"`
}
