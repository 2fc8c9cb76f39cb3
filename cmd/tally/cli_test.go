package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyworks/tally/internal/paths"
	"github.com/tallyworks/tally/pkg/types"
)

// setupCLI points the CLI at isolated config and data directories and
// returns the data directory.
func setupCLI(t *testing.T) string {
	t.Helper()
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	dataDir := t.TempDir()
	t.Setenv(paths.EnvDataDir, dataDir)
	return dataDir
}

func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// loadRecords reads the store file directly, bypassing the CLI.
func loadRecords(t *testing.T, dataDir string) []types.Record {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dataDir, "records.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	require.NoError(t, err)
	var records []types.Record
	require.NoError(t, json.Unmarshal(data, &records))
	return records
}

func TestCLILifecycle(t *testing.T) {
	dataDir := setupCLI(t)

	require.NoError(t, runCLI(t, "add", "Buy milk"))
	records := loadRecords(t, dataDir)
	require.Len(t, records, 1)
	assert.EqualValues(t, 1, records[0].ID)
	assert.Equal(t, "Buy milk", records[0].Description)
	assert.Equal(t, types.StatusTodo, records[0].Status)

	require.NoError(t, runCLI(t, "mark-done", "1"))
	records = loadRecords(t, dataDir)
	require.Len(t, records, 1)
	assert.Equal(t, types.StatusDone, records[0].Status)

	require.NoError(t, runCLI(t, "list", "done"))

	require.NoError(t, runCLI(t, "delete", "1"))
	assert.Empty(t, loadRecords(t, dataDir))

	err := runCLI(t, "update", "99", "x")
	require.ErrorIs(t, err, types.ErrNotFound)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestCLIInit(t *testing.T) {
	dataDir := setupCLI(t)

	require.NoError(t, runCLI(t, "init"))

	data, err := os.ReadFile(filepath.Join(dataDir, "records.json"))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestCLIRejectsMalformedID(t *testing.T) {
	setupCLI(t)

	err := runCLI(t, "delete", "abc")
	require.ErrorIs(t, err, types.ErrInvalidID)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestCLIRejectsUnknownStatusFilter(t *testing.T) {
	setupCLI(t)

	err := runCLI(t, "list", "archived")
	require.ErrorIs(t, err, types.ErrInvalidStatus)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "not found is a user error", err: fmt.Errorf("update: %w", types.ErrNotFound), want: exitUserError},
		{name: "invalid status is a user error", err: types.ErrInvalidStatus, want: exitUserError},
		{name: "usage error defaults to user error", err: errors.New("unknown command"), want: exitUserError},
		{name: "corrupt store is a system error", err: fmt.Errorf("load: %w", types.ErrStoreCorrupt), want: exitSysError},
		{name: "path error is a system error", err: &fs.PathError{Op: "open", Path: "records.json", Err: fs.ErrPermission}, want: exitSysError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
