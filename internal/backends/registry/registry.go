// Package registry resolves backend type identifiers to their
// synchronization and configuration implementations.
//
// The association table is fixed: every backend type has exactly one
// (sync, config) pair, and every pair belongs to exactly one type. Sources
// are resolved through a single exhaustive switch so a new backend cannot
// be added to the type enumeration without also being wired here.
package registry

import (
	"fmt"

	"github.com/qharbor/sync-agent/internal/backends"
	"github.com/qharbor/sync-agent/internal/backends/coretools"
	"github.com/qharbor/sync-agent/internal/backends/filebase"
	"github.com/qharbor/sync-agent/internal/backends/qcodes"
	"github.com/qharbor/sync-agent/internal/backends/quantify"
)

// SyncFactory constructs the sync source identity of a backend.
type SyncFactory func() backends.SyncSource

// ConfigFactory constructs an empty configuration of a backend.
type ConfigFactory func() backends.SourceConfig

// UnknownSourceTypeError is returned when a (sync, config) pair matches no
// registered backend type.
type UnknownSourceTypeError struct {
	Sync   backends.SyncSource
	Config backends.SourceConfig
}

func (e *UnknownSourceTypeError) Error() string {
	return fmt.Sprintf("unknown sync source type: %T with config %T", e.Sync, e.Config)
}

// factories returns the (sync, config) factory pair for a backend type.
// The switch is exhaustive over the closed type set.
func factories(t backends.Type) (SyncFactory, ConfigFactory, error) {
	switch t {
	case backends.TypeQuantify:
		return func() backends.SyncSource { return quantify.NewSync() },
			func() backends.SourceConfig { return &quantify.Config{} }, nil
	case backends.TypeQCoDeS:
		return func() backends.SyncSource { return qcodes.NewSync() },
			func() backends.SourceConfig { return &qcodes.Config{} }, nil
	case backends.TypeCoreTools:
		return func() backends.SyncSource { return coretools.NewSync() },
			func() backends.SourceConfig { return &coretools.Config{} }, nil
	case backends.TypeFileBase:
		return func() backends.SyncSource { return filebase.NewSync() },
			func() backends.SourceConfig { return &filebase.Config{} }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported source type: %s", t)
	}
}

// Mapping returns the full association table as two mappings, one from
// backend type to sync factory and one from backend type to config factory.
// Both maps are constructed fresh on every call.
func Mapping() (map[backends.Type]SyncFactory, map[backends.Type]ConfigFactory) {
	syncs := make(map[backends.Type]SyncFactory, len(backends.Types()))
	configs := make(map[backends.Type]ConfigFactory, len(backends.Types()))
	for _, t := range backends.Types() {
		sf, cf, err := factories(t)
		if err != nil {
			// Types() and factories cover the same closed set.
			panic(err)
		}
		syncs[t] = sf
		configs[t] = cf
	}
	return syncs, configs
}

// DetectType determines which backend type a (sync, config) pair belongs
// to. Identity is taken from the config, which self-reports its backend
// type; the sync argument is carried along for diagnostics when no
// registered type matches.
func DetectType(sync backends.SyncSource, cfg backends.SourceConfig) (backends.Type, error) {
	if cfg != nil {
		if t := cfg.SourceType(); t.Valid() {
			return t, nil
		}
	}
	return "", &UnknownSourceTypeError{Sync: sync, Config: cfg}
}

// SyncFor returns the sync factory registered for a backend type.
func SyncFor(t backends.Type) (SyncFactory, error) {
	sf, _, err := factories(t)
	return sf, err
}

// ConfigFor returns the config factory registered for a backend type.
func ConfigFor(t backends.Type) (ConfigFactory, error) {
	_, cf, err := factories(t)
	return cf, err
}
