package backends

// Type identifies which instrumentation framework a data source originates
// from. The enumeration is closed; the string values are part of the agent's
// persisted state and must not change.
type Type string

const (
	// TypeQuantify is the Quantify data directory backend
	TypeQuantify Type = "quantify"

	// TypeQCoDeS is the QCoDeS sqlite database backend
	TypeQCoDeS Type = "qCoDeS"

	// TypeCoreTools is the core-tools PostgreSQL backend
	TypeCoreTools Type = "Core-tools"

	// TypeFileBase is the generic file/folder tree backend
	TypeFileBase Type = "fileBase"
)

// Types returns all registered backend types.
func Types() []Type {
	return []Type{TypeQuantify, TypeQCoDeS, TypeCoreTools, TypeFileBase}
}

// Valid reports whether t is one of the registered backend types.
func (t Type) Valid() bool {
	switch t {
	case TypeQuantify, TypeQCoDeS, TypeCoreTools, TypeFileBase:
		return true
	default:
		return false
	}
}

// String returns the persisted string form of the backend type.
func (t Type) String() string {
	return string(t)
}

// SyncSource is the identity a synchronization implementation presents to
// the orchestration engine. The engine imposes no method contract on the
// sync behavior itself at this layer; it only needs the backend's name and
// static capabilities.
type SyncSource interface {
	// AgentName returns the human-readable name of the sync implementation.
	AgentName() string

	// SingleScope reports whether all datasets of a source map to a single scope.
	SingleScope() bool

	// LiveSync reports whether the backend supports live dataset synchronization.
	LiveSync() bool
}

// SourceConfig is the configuration shape of a backend. Every config
// self-reports the backend type it belongs to, so type detection never has
// to infer identity from the concrete type.
type SourceConfig interface {
	// SourceType returns the backend type this configuration belongs to.
	SourceType() Type

	// Validate checks the configuration against the local environment.
	Validate() error
}
