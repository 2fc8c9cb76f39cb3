package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() Record {
	now := Now()
	return Record{
		ID:          1,
		Description: "Buy groceries",
		Status:      StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestRecordSetStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  string
		wantErr error
	}{
		{name: "todo is valid", status: StatusTodo},
		{name: "in-progress is valid", status: StatusInProgress},
		{name: "done is valid", status: StatusDone},
		{name: "unknown status rejected", status: "finished", wantErr: ErrInvalidStatus},
		{name: "empty status rejected", status: "", wantErr: ErrInvalidStatus},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRecord()
			prior := r.UpdatedAt

			err := r.SetStatus(tt.status)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, StatusTodo, r.Status, "status must not change on error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.status, r.Status)
			assert.False(t, r.UpdatedAt.Before(prior.Time), "UpdatedAt must not go backwards")
		})
	}
}

func TestRecordSetDescription(t *testing.T) {
	r := validRecord()
	created := r.CreatedAt

	require.NoError(t, r.SetDescription("Buy groceries and milk"))
	assert.Equal(t, "Buy groceries and milk", r.Description)
	assert.Equal(t, created, r.CreatedAt, "CreatedAt is immutable")

	require.ErrorIs(t, r.SetDescription("   "), ErrInvalidDescription)
	assert.Equal(t, "Buy groceries and milk", r.Description)
}

func TestRecordValidate(t *testing.T) {
	t.Run("valid record passes", func(t *testing.T) {
		require.NoError(t, validRecord().Validate())
	})

	t.Run("zero id rejected", func(t *testing.T) {
		r := validRecord()
		r.ID = 0
		require.ErrorIs(t, r.Validate(), ErrInvalidData)
	})

	t.Run("empty description rejected", func(t *testing.T) {
		r := validRecord()
		r.Description = ""
		require.ErrorIs(t, r.Validate(), ErrInvalidData)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		r := validRecord()
		r.Status = "archived"
		require.ErrorIs(t, r.Validate(), ErrInvalidData)
	})

	t.Run("missing timestamps rejected", func(t *testing.T) {
		r := validRecord()
		r.CreatedAt = Timestamp{}
		r.UpdatedAt = Timestamp{}
		require.ErrorIs(t, r.Validate(), ErrInvalidData)
	})

	t.Run("updatedAt before createdAt rejected", func(t *testing.T) {
		r := validRecord()
		r.UpdatedAt = Timestamp{r.CreatedAt.Add(-time.Hour)}
		require.ErrorIs(t, r.Validate(), ErrInvalidData)
	})
}

func TestRecordJSONShape(t *testing.T) {
	r := validRecord()
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "id")
	assert.Contains(t, fields, "description")
	assert.Contains(t, fields, "status")
	assert.Contains(t, fields, "createdAt")
	assert.Contains(t, fields, "updatedAt")
	assert.NotContains(t, fields, "category", "empty category is omitted")
}
