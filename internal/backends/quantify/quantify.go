// Package quantify provides the source identity and configuration for the
// Quantify data directory backend.
package quantify

import (
	"fmt"
	"os"

	"github.com/qharbor/sync-agent/internal/backends"
)

// Sync identifies the Quantify synchronization implementation.
type Sync struct{}

var _ backends.SyncSource = (*Sync)(nil)

// NewSync creates the Quantify sync source identity.
func NewSync() *Sync { return &Sync{} }

// AgentName returns the name of the sync implementation.
func (*Sync) AgentName() string { return "Quantify" }

// SingleScope reports that Quantify sources map to a single scope.
func (*Sync) SingleScope() bool { return true }

// LiveSync reports that live synchronization is implemented.
func (*Sync) LiveSync() bool { return true }

// Config is the configuration for a Quantify data source.
type Config struct {
	// QuantifyDirectory is the Quantify data directory to watch.
	QuantifyDirectory string `yaml:"quantifyDirectory" json:"quantify_directory"`

	// Setup is the measurement set-up name datasets are attributed to.
	Setup string `yaml:"setup" json:"set_up"`
}

var _ backends.SourceConfig = (*Config)(nil)

// SourceType returns the backend type of this configuration.
func (*Config) SourceType() backends.Type { return backends.TypeQuantify }

// Validate checks that the configured Quantify directory exists and is a
// directory.
func (c *Config) Validate() error {
	if c.QuantifyDirectory == "" {
		return fmt.Errorf("quantify directory is required")
	}
	info, err := os.Stat(c.QuantifyDirectory)
	if err != nil {
		return fmt.Errorf("the specified Quantify directory does not exist: %s", c.QuantifyDirectory)
	}
	if !info.IsDir() {
		return fmt.Errorf("the specified path is not a directory: %s", c.QuantifyDirectory)
	}
	return nil
}
