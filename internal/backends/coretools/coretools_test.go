package coretools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qharbor/sync-agent/internal/backends"
)

func TestConfigSourceType(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	assert.Equal(t, backends.TypeCoreTools, cfg.SourceType())
}

func TestConfigValidateDefaults(t *testing.T) {
	t.Parallel()
	cfg := Config{DBName: "measurements", User: "qh", Password: "secret"}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 5432, cfg.Port)
}

func TestConfigValidateErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "missing dbname", cfg: Config{User: "qh"}, wantErr: "dbname"},
		{name: "missing user", cfg: Config{DBName: "measurements"}, wantErr: "user"},
		{
			name:    "invalid port",
			cfg:     Config{DBName: "measurements", User: "qh", Port: 70000},
			wantErr: "invalid port",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorContains(t, tt.cfg.Validate(), tt.wantErr)
		})
	}
}
