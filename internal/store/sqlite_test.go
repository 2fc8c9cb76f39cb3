package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyworks/tally/pkg/types"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := types.Config{Backend: types.BackendSQLite, DataDir: dir}

	st, err := Open(cfg)
	require.NoError(t, err)

	want := []types.Record{
		testRecord(1, "Buy groceries", types.StatusTodo),
		testRecord(2, "Review PR", types.StatusInProgress),
	}
	want[0].Category = "errands"

	require.NoError(t, st.Save(want))
	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// The record set survives a close and reopen.
	require.NoError(t, st.Close())
	st, err = Open(cfg)
	require.NoError(t, err)
	defer st.Close()

	got, err = st.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSQLiteStoreSaveReplacesSet(t *testing.T) {
	st, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, st.Save([]types.Record{
		testRecord(1, "one", types.StatusTodo),
		testRecord(2, "two", types.StatusTodo),
	}))
	require.NoError(t, st.Save([]types.Record{
		testRecord(2, "two", types.StatusDone),
	}))

	got, err := st.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.EqualValues(t, 2, got[0].ID)
	assert.Equal(t, types.StatusDone, got[0].Status)
}

func TestSQLiteStoreEmpty(t *testing.T) {
	st, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	defer st.Close()

	got, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}
