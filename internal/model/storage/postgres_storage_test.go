package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

func Test_OnUpsertQuery_ShouldUseDollarPlaceholders(t *testing.T) {
	rec := expense.Record{
		ID:          3,
		Amount:      amount("12.30"),
		Description: "Bus",
		Category:    expense.Transportation,
		Date:        expense.NewDate(2024, time.March, 5),
		Timestamp:   time.Date(2024, time.March, 5, 9, 0, 0, 0, time.UTC),
	}

	query, args, err := upsertQuery(rec).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO expenses")
	assert.Contains(t, query, "$6")
	assert.NotContains(t, query, "?")
	assert.Contains(t, query, "ON CONFLICT(id) DO UPDATE SET")
	require.Len(t, args, 6)
	assert.Equal(t, int64(3), args[0])
	assert.Equal(t, "Transportation", args[3])
	assert.Equal(t, rec.Date.Time(), args[4])
}

func Test_OnDeleteStaleQuery_ShouldKeepExportedIDs(t *testing.T) {
	records := []expense.Record{{ID: 1}, {ID: 4}}

	query, args, err := deleteStaleQuery(records).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "DELETE FROM expenses WHERE id NOT IN ($1,$2)")
	assert.Equal(t, []interface{}{int64(1), int64(4)}, args)
}

func Test_OnDeleteStaleQuery_EmptyStore_ShouldClearTable(t *testing.T) {
	query, args, err := deleteStaleQuery(nil).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM expenses", query)
	assert.Empty(t, args)
}
