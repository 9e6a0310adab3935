package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qharbor/sync-agent/internal/backends"
)

func TestMappingIsTotal(t *testing.T) {
	t.Parallel()
	syncs, configs := Mapping()

	require.Len(t, syncs, len(backends.Types()))
	require.Len(t, configs, len(backends.Types()))
	for _, typ := range backends.Types() {
		assert.Contains(t, syncs, typ)
		assert.Contains(t, configs, typ)
	}
}

func TestMappingReturnsFreshMaps(t *testing.T) {
	t.Parallel()
	first, _ := Mapping()
	delete(first, backends.TypeQuantify)

	second, _ := Mapping()
	assert.Contains(t, second, backends.TypeQuantify)
}

func TestDetectTypeConsistency(t *testing.T) {
	t.Parallel()
	for _, typ := range backends.Types() {
		t.Run(typ.String(), func(t *testing.T) {
			t.Parallel()
			syncFactory, err := SyncFor(typ)
			require.NoError(t, err)
			configFactory, err := ConfigFor(typ)
			require.NoError(t, err)

			detected, err := DetectType(syncFactory(), configFactory())
			require.NoError(t, err)
			assert.Equal(t, typ, detected)
		})
	}
}

type foreignConfig struct{}

func (*foreignConfig) SourceType() backends.Type { return "labber" }
func (*foreignConfig) Validate() error           { return nil }

func TestDetectTypeUnknown(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		config backends.SourceConfig
	}{
		{name: "nil config", config: nil},
		{name: "unregistered type", config: &foreignConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			syncFactory, err := SyncFor(backends.TypeQuantify)
			require.NoError(t, err)

			_, err = DetectType(syncFactory(), tt.config)
			require.Error(t, err)

			var unknownErr *UnknownSourceTypeError
			require.ErrorAs(t, err, &unknownErr)
			assert.Contains(t, err.Error(), "unknown sync source type")
		})
	}
}

func TestLookupUnknownType(t *testing.T) {
	t.Parallel()
	_, err := SyncFor(backends.Type("labber"))
	assert.Error(t, err)

	_, err = ConfigFor(backends.Type(""))
	assert.Error(t, err)
}

func TestRegisteredIdentities(t *testing.T) {
	t.Parallel()
	tests := []struct {
		typ         backends.Type
		agentName   string
		singleScope bool
		liveSync    bool
	}{
		{typ: backends.TypeQuantify, agentName: "Quantify", singleScope: true, liveSync: true},
		{typ: backends.TypeQCoDeS, agentName: "QCoDeS", singleScope: true, liveSync: true},
		{typ: backends.TypeCoreTools, agentName: "core-tools", singleScope: false, liveSync: true},
		{typ: backends.TypeFileBase, agentName: "FileBaseGeneric", singleScope: true, liveSync: false},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			t.Parallel()
			factory, err := SyncFor(tt.typ)
			require.NoError(t, err)

			source := factory()
			assert.Equal(t, tt.agentName, source.AgentName())
			assert.Equal(t, tt.singleScope, source.SingleScope())
			assert.Equal(t, tt.liveSync, source.LiveSync())
		})
	}
}
