package status

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// StateFileName is the name of the per-source state file
	StateFileName = "state.json"
)

// Persistence defines the interface for source state persistence.
type Persistence interface {
	// SaveState saves the state snapshot of a specific source
	SaveState(ctx context.Context, sourceName string, state *SourceState) error

	// LoadState loads the state snapshot of a specific source.
	// Returns an empty SourceState if no state was persisted yet (first run)
	LoadState(ctx context.Context, sourceName string) (*SourceState, error)

	// LoadAllStates loads the state snapshots of all known sources
	LoadAllStates(ctx context.Context) (map[string]*SourceState, error)
}

// filePersistence implements Persistence using the local filesystem.
type filePersistence struct {
	basePath string
}

// NewFilePersistence creates a new file-based state persistence.
// basePath is the base directory where per-source state files are stored.
func NewFilePersistence(basePath string) Persistence {
	return &filePersistence{
		basePath: basePath,
	}
}

// SaveState saves the state snapshot to a JSON file in a source-specific
// directory.
func (f *filePersistence) SaveState(_ context.Context, sourceName string, state *SourceState) error {
	sourceDir := filepath.Join(f.basePath, sourceName)
	if err := os.MkdirAll(sourceDir, 0750); err != nil {
		return fmt.Errorf("failed to create state directory for source '%s': %w", sourceName, err)
	}

	filePath := filepath.Join(sourceDir, StateFileName)

	// Pretty printed for readability
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state data for source '%s': %w", sourceName, err)
	}

	// Write to temporary file first for atomic operation
	tempPath := filePath + ".tmp"
	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary state file for source '%s': %w", sourceName, err)
	}

	if err := os.Rename(tempPath, filePath); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename state file for source '%s': %w", sourceName, err)
	}

	return nil
}

// LoadState loads the state snapshot from the JSON file of a specific
// source. Returns an empty SourceState if the file doesn't exist.
func (f *filePersistence) LoadState(_ context.Context, sourceName string) (*SourceState, error) {
	filePath := filepath.Join(f.basePath, sourceName, StateFileName)

	// #nosec G304 -- filePath is constructed from the configured base path
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			// First run for this source
			return &SourceState{Name: sourceName}, nil
		}
		return nil, fmt.Errorf("failed to read state file for source '%s': %w", sourceName, err)
	}

	var state SourceState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal state data for source '%s': %w", sourceName, err)
	}

	return &state, nil
}

// LoadAllStates loads state snapshots for all sources that have one.
func (f *filePersistence) LoadAllStates(ctx context.Context) (map[string]*SourceState, error) {
	result := make(map[string]*SourceState)

	entries, err := os.ReadDir(f.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return result, nil
		}
		return nil, fmt.Errorf("failed to read state directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		sourceName := entry.Name()
		state, err := f.LoadState(ctx, sourceName)
		if err != nil {
			// Skip unreadable entries so one bad source does not hide the rest
			continue
		}

		result[sourceName] = state
	}

	return result, nil
}
