// Package coretools provides the source identity and configuration for the
// core-tools PostgreSQL backend.
package coretools

import (
	"fmt"

	"github.com/qharbor/sync-agent/internal/backends"
)

// Sync identifies the core-tools synchronization implementation.
type Sync struct{}

var _ backends.SyncSource = (*Sync)(nil)

// NewSync creates the core-tools sync source identity.
func NewSync() *Sync { return &Sync{} }

// AgentName returns the name of the sync implementation.
func (*Sync) AgentName() string { return "core-tools" }

// SingleScope reports that core-tools sources span multiple scopes.
func (*Sync) SingleScope() bool { return false }

// LiveSync reports that live synchronization is implemented.
func (*Sync) LiveSync() bool { return true }

// Config is the connection configuration for a core-tools measurement
// database.
type Config struct {
	DBName   string `yaml:"dbname" json:"dbname"`
	User     string `yaml:"user" json:"user"`
	Password string `yaml:"password" json:"password"`
	Host     string `yaml:"host,omitempty" json:"host,omitempty"`
	Port     int    `yaml:"port,omitempty" json:"port,omitempty"`
}

var _ backends.SourceConfig = (*Config)(nil)

// SourceType returns the backend type of this configuration.
func (*Config) SourceType() backends.Type { return backends.TypeCoreTools }

// Validate checks the connection details for completeness and applies the
// default host and port. Reachability of the database is checked by the
// sync implementation on first connect.
func (c *Config) Validate() error {
	if c.DBName == "" {
		return fmt.Errorf("dbname is required")
	}
	if c.User == "" {
		return fmt.Errorf("user is required")
	}
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 5432
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	return nil
}
