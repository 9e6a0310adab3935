// Package filebase provides the source identity and configuration for the
// generic file/folder tree backend.
package filebase

import (
	"fmt"
	"os"

	"github.com/qharbor/sync-agent/internal/backends"
)

// Sync identifies the file base synchronization implementation.
type Sync struct{}

var _ backends.SyncSource = (*Sync)(nil)

// NewSync creates the file base sync source identity.
func NewSync() *Sync { return &Sync{} }

// AgentName returns the name of the sync implementation.
func (*Sync) AgentName() string { return "FileBaseGeneric" }

// SingleScope reports that file base sources map to a single scope.
func (*Sync) SingleScope() bool { return true }

// LiveSync reports that live synchronization is not implemented.
func (*Sync) LiveSync() bool { return false }

// Config is the configuration for a file base data source.
type Config struct {
	// RootDirectory is the directory tree scanned for datasets.
	RootDirectory string `yaml:"rootDirectory" json:"root_directory"`

	// ServerFolder indicates the root directory lives on a shared server
	// mount rather than a local disk.
	ServerFolder bool `yaml:"serverFolder" json:"server_folder"`
}

var _ backends.SourceConfig = (*Config)(nil)

// SourceType returns the backend type of this configuration.
func (*Config) SourceType() backends.Type { return backends.TypeFileBase }

// Validate checks that the configured root directory exists and is a
// directory.
func (c *Config) Validate() error {
	if c.RootDirectory == "" {
		return fmt.Errorf("root directory is required")
	}
	info, err := os.Stat(c.RootDirectory)
	if err != nil {
		return fmt.Errorf("the specified root directory does not exist: %s", c.RootDirectory)
	}
	if !info.IsDir() {
		return fmt.Errorf("the specified path is not a directory: %s", c.RootDirectory)
	}
	return nil
}
