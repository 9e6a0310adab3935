package filebase

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/qharbor/sync-agent/internal/backends"
)

func TestConfigSourceType(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	assert.Equal(t, backends.TypeFileBase, cfg.SourceType())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{RootDirectory: dir, ServerFolder: true}},
		{name: "empty directory", cfg: Config{}, wantErr: "required"},
		{
			name:    "missing directory",
			cfg:     Config{RootDirectory: filepath.Join(dir, "absent")},
			wantErr: "does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
