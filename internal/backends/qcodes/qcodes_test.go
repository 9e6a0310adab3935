package qcodes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qharbor/sync-agent/internal/backends"
)

func TestConfigSourceType(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	assert.Equal(t, backends.TypeQCoDeS, cfg.SourceType())
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	db := filepath.Join(dir, "experiments.db")
	require.NoError(t, os.WriteFile(db, []byte("sqlite"), 0600))
	txt := filepath.Join(dir, "experiments.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0600))

	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "valid", cfg: Config{DatabasePath: db, Setup: "fridge-1"}},
		{name: "empty path", cfg: Config{}, wantErr: "required"},
		{
			name:    "missing file",
			cfg:     Config{DatabasePath: filepath.Join(dir, "absent.db")},
			wantErr: "does not exist",
		},
		{name: "directory", cfg: Config{DatabasePath: dir}, wantErr: "not a file"},
		{name: "wrong extension", cfg: Config{DatabasePath: txt}, wantErr: ".db"},
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
