// Package config provides configuration loading and management for the sync
// agent.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/qharbor/sync-agent/internal/backends"
	"github.com/qharbor/sync-agent/internal/backends/coretools"
	"github.com/qharbor/sync-agent/internal/backends/filebase"
	"github.com/qharbor/sync-agent/internal/backends/qcodes"
	"github.com/qharbor/sync-agent/internal/backends/quantify"
)

// EnvPrefix is the prefix of the agent's environment variables.
const EnvPrefix = "QH_SYNC"

// Option defines the interface for configuration options
type Option func(*loaderConfig) error

// loaderConfig defines the configuration for loading a configuration
type loaderConfig struct {
	path string
}

// WithConfigPath loads configuration from a YAML file
func WithConfigPath(path string) Option {
	return func(cfg *loaderConfig) error {
		if path == "" {
			return fmt.Errorf("path is required")
		}

		// Resolve symlinks to prevent symlink attacks.
		// Note that this calls filepath.Clean internally.
		realPath, err := filepath.EvalSymlinks(path)
		if err != nil {
			return fmt.Errorf("failed to evaluate symlinks: %w", err)
		}

		if !filepath.IsAbs(realPath) {
			if !filepath.IsLocal(realPath) {
				return fmt.Errorf("path is not local or contains invalid traversal: %s", path)
			}
		}

		cfg.path = realPath
		return nil
	}
}

// Config represents the root configuration structure
type Config struct {
	// AgentName is the name/identifier of this agent instance.
	// Defaults to "default" if not specified
	AgentName string `yaml:"agentName,omitempty"`

	// StatePath is the directory where per-source state is persisted
	StatePath string `yaml:"statePath,omitempty"`

	// Sources lists the configured data sources
	Sources []SourceEntry `yaml:"sources"`
}

// SourceEntry defines a single data source configuration
type SourceEntry struct {
	// Name is the identifier for this source
	Name string `yaml:"name"`

	// Type is the backend type of the source
	Type backends.Type `yaml:"type"`

	// Backend-specific configurations (only one should be set, matching Type)
	Quantify  *quantify.Config  `yaml:"quantify,omitempty"`
	QCoDeS    *qcodes.Config    `yaml:"qcodes,omitempty"`
	CoreTools *coretools.Config `yaml:"coretools,omitempty"`
	FileBase  *filebase.Config  `yaml:"filebase,omitempty"`
}

// BackendConfig returns the backend-specific configuration block of the
// entry. The block must match the entry's declared type; validate enforces
// that before this is used.
func (s *SourceEntry) BackendConfig() backends.SourceConfig {
	switch {
	case s.Quantify != nil:
		return s.Quantify
	case s.QCoDeS != nil:
		return s.QCoDeS
	case s.CoreTools != nil:
		return s.CoreTools
	case s.FileBase != nil:
		return s.FileBase
	default:
		return nil
	}
}

// LoadConfig loads and parses configuration from a YAML file
func LoadConfig(opts ...Option) (*Config, error) {
	loaderCfg := &loaderConfig{}
	for _, opt := range opts {
		if err := opt(loaderCfg); err != nil {
			return nil, err
		}
	}

	if loaderCfg.path == "" {
		return nil, fmt.Errorf("path is required")
	}

	data, err := os.ReadFile(loaderCfg.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// GetAgentName returns the agent name, using "default" if not specified
func (c *Config) GetAgentName() string {
	if c.AgentName == "" {
		return "default"
	}
	return c.AgentName
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if c == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one source must be configured")
	}

	sourceNames := make(map[string]bool)
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("source[%d]: name is required", i)
		}

		if sourceNames[src.Name] {
			return fmt.Errorf("source[%d]: duplicate source name '%s'", i, src.Name)
		}
		sourceNames[src.Name] = true

		if err := validateSourceEntry(&src, i); err != nil {
			return err
		}
	}

	return nil
}

// validateSourceEntry validates a single source configuration
func validateSourceEntry(src *SourceEntry, index int) error {
	prefix := fmt.Sprintf("source[%d] (%s)", index, src.Name)

	if !src.Type.Valid() {
		return fmt.Errorf("%s: unknown source type '%s'", prefix, src.Type)
	}

	if err := validateBackendBlockCount(src, prefix); err != nil {
		return err
	}

	cfg := src.BackendConfig()
	if cfg.SourceType() != src.Type {
		return fmt.Errorf("%s: configuration block does not match source type '%s'", prefix, src.Type)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", prefix, err)
	}

	return nil
}

// validateBackendBlockCount ensures exactly one backend block is configured
func validateBackendBlockCount(src *SourceEntry, prefix string) error {
	configCount := 0
	if src.Quantify != nil {
		configCount++
	}
	if src.QCoDeS != nil {
		configCount++
	}
	if src.CoreTools != nil {
		configCount++
	}
	if src.FileBase != nil {
		configCount++
	}

	if configCount == 0 {
		return fmt.Errorf("%s: one of quantify, qcodes, coretools, or filebase configuration must be specified", prefix)
	}
	if configCount > 1 {
		return fmt.Errorf("%s: only one of quantify, qcodes, coretools, or filebase configuration may be specified", prefix)
	}

	return nil
}
