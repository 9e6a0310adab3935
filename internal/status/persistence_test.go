package status

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qharbor/sync-agent/internal/backends"
)

func TestSaveAndLoadState(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	persistence := NewFilePersistence(t.TempDir())

	state := &SourceState{
		Name:        "fridge-1",
		Type:        backends.TypeQuantify,
		Status:      SourceSynchronized,
		LastSync:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		ItemsSynced: 42,
		ItemsFailed: 1,
	}
	require.NoError(t, persistence.SaveState(ctx, "fridge-1", state))

	loaded, err := persistence.LoadState(ctx, "fridge-1")
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestLoadStateFirstRun(t *testing.T) {
	t.Parallel()
	persistence := NewFilePersistence(t.TempDir())

	state, err := persistence.LoadState(context.Background(), "new-source")
	require.NoError(t, err)
	assert.Equal(t, "new-source", state.Name)
	assert.Empty(t, state.Status)
	assert.Zero(t, state.ItemsSynced)
}

func TestLoadStateCorruptFile(t *testing.T) {
	t.Parallel()
	base := t.TempDir()
	sourceDir := filepath.Join(base, "broken")
	require.NoError(t, os.MkdirAll(sourceDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(sourceDir, StateFileName), []byte("{bad"), 0600))

	_, err := NewFilePersistence(base).LoadState(context.Background(), "broken")
	assert.ErrorContains(t, err, "failed to unmarshal state data")
}

func TestLoadAllStates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := t.TempDir()
	persistence := NewFilePersistence(base)

	require.NoError(t, persistence.SaveState(ctx, "fridge-1", &SourceState{
		Name: "fridge-1", Type: backends.TypeQuantify, Status: SourceSynchronized,
	}))
	require.NoError(t, persistence.SaveState(ctx, "fridge-2", &SourceState{
		Name: "fridge-2", Type: backends.TypeQCoDeS, Status: SourceError, LastError: "offline",
	}))

	// a corrupt entry is skipped, the rest still load
	brokenDir := filepath.Join(base, "broken")
	require.NoError(t, os.MkdirAll(brokenDir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(brokenDir, StateFileName), []byte("{bad"), 0600))

	states, err := persistence.LoadAllStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, SourceSynchronized, states["fridge-1"].Status)
	assert.Equal(t, "offline", states["fridge-2"].LastError)
}

func TestLoadAllStatesMissingBaseDir(t *testing.T) {
	t.Parallel()
	persistence := NewFilePersistence(filepath.Join(t.TempDir(), "absent"))

	states, err := persistence.LoadAllStates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, states)
}

func TestSaveStateAtomicReplace(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	base := t.TempDir()
	persistence := NewFilePersistence(base)

	require.NoError(t, persistence.SaveState(ctx, "src", &SourceState{Name: "src", Status: SourceSynchronizing}))
	require.NoError(t, persistence.SaveState(ctx, "src", &SourceState{Name: "src", Status: SourceSynchronized}))

	loaded, err := persistence.LoadState(ctx, "src")
	require.NoError(t, err)
	assert.Equal(t, SourceSynchronized, loaded.Status)

	// no temp file left behind
	assert.NoFileExists(t, filepath.Join(base, "src", StateFileName+".tmp"))
}
