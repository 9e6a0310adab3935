// Package qcodes provides the source identity and configuration for the
// QCoDeS sqlite database backend.
package qcodes

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qharbor/sync-agent/internal/backends"
)

// Sync identifies the QCoDeS synchronization implementation.
type Sync struct{}

var _ backends.SyncSource = (*Sync)(nil)

// NewSync creates the QCoDeS sync source identity.
func NewSync() *Sync { return &Sync{} }

// AgentName returns the name of the sync implementation.
func (*Sync) AgentName() string { return "QCoDeS" }

// SingleScope reports that QCoDeS sources map to a single scope.
func (*Sync) SingleScope() bool { return true }

// LiveSync reports that live synchronization is implemented.
func (*Sync) LiveSync() bool { return true }

// Config is the configuration for a QCoDeS data source.
type Config struct {
	// DatabasePath is the path of the QCoDeS sqlite database file.
	DatabasePath string `yaml:"databasePath" json:"database_path"`

	// Setup is the measurement set-up name datasets are attributed to.
	Setup string `yaml:"setup" json:"set_up"`

	// StaticAttributes are attributes attached to every synced dataset.
	StaticAttributes map[string]string `yaml:"staticAttributes,omitempty" json:"static_attributes,omitempty"`
}

var _ backends.SourceConfig = (*Config)(nil)

// SourceType returns the backend type of this configuration.
func (*Config) SourceType() backends.Type { return backends.TypeQCoDeS }

// Validate checks that the configured database path points to an existing
// file with a .db extension. Whether the file is a readable sqlite database
// is checked by the sync implementation on first connect.
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("database path is required")
	}
	info, err := os.Stat(c.DatabasePath)
	if err != nil {
		return fmt.Errorf("the specified database file does not exist: %s", c.DatabasePath)
	}
	if info.IsDir() {
		return fmt.Errorf("the specified path is not a file: %s", c.DatabasePath)
	}
	if filepath.Ext(c.DatabasePath) != ".db" {
		return fmt.Errorf("the specified file is not a .db file: %s", c.DatabasePath)
	}
	return nil
}
