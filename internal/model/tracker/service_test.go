package tracker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
	reportsmock "max.ks1230/expense-tracker/internal/model/reports/mock"
	"max.ks1230/expense-tracker/internal/model/storage"
	"max.ks1230/expense-tracker/internal/model/tracker/mock"
)

type testConfig struct {
	path string
}

func (c testConfig) DataFile() string         { return c.path }
func (c testConfig) Location() *time.Location { return time.UTC }

func newStore(t *testing.T) *storage.JSONStorage {
	t.Helper()
	s, err := storage.NewJSONStorage(testConfig{path: filepath.Join(t.TempDir(), "expenses.json")})
	require.NoError(t, err)
	return s
}

func newRecord(am, category, date string) expense.NewRecord {
	return expense.NewRecord{
		Amount:      decimal.RequireFromString(am),
		Description: "test",
		Category:    category,
		Date:        date,
	}
}

func scopedKeys(store *storage.JSONStorage, periods ...string) []string {
	keys := make([]string, 0, len(periods))
	for _, p := range periods {
		keys = append(keys, "summary:"+store.CacheScope()+":"+p)
	}
	return keys
}

func Test_OnAdd_ShouldInvalidateMonthAndYear(t *testing.T) {
	store := newStore(t)
	m := minimock.NewController(t)
	cache := reportsmock.NewSummaryCacheMock(m)
	cache.InvalidateSummariesMock.
		Expect(scopedKeys(store, "2024-03", "2024")).
		Return(nil)

	s := NewService(store, reports.NewGenerator(store).WithCache(cache, store.CacheScope()))

	rec, err := s.Add(context.Background(), newRecord("50", "Food", "2024-03-05"))
	assert.NoError(m, err)
	assert.Equal(m, int64(1), rec.ID)
}

func Test_OnAdd_Invalid_ShouldNotTouchCache(t *testing.T) {
	m := minimock.NewController(t)
	cache := reportsmock.NewSummaryCacheMock(m)

	store := newStore(t)
	s := NewService(store, reports.NewGenerator(store).WithCache(cache, store.CacheScope()))

	_, err := s.Add(context.Background(), newRecord("-1", "Food", "2024-03-05"))
	assert.True(m, errors.Is(err, expense.ErrInvalidAmount))
	assert.Empty(m, s.Expenses(context.Background()))
}

func Test_OnEdit_ShouldInvalidateOldAndNewDates(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	m := minimock.NewController(t)
	cache := reportsmock.NewSummaryCacheMock(m)
	cache.InvalidateSummariesMock.
		When(scopedKeys(store, "2024-03", "2024")).
		Then(nil)
	cache.InvalidateSummariesMock.
		When(scopedKeys(store, "2024-03", "2024", "2023-12", "2023")).
		Then(nil)

	s := NewService(store, reports.NewGenerator(store).WithCache(cache, store.CacheScope()))

	rec, err := s.Add(ctx, newRecord("50", "Food", "2024-03-05"))
	require.NoError(m, err)

	newDate := "2023-12-31"
	edited, err := s.Edit(ctx, rec.ID, expense.Changes{Date: &newDate})
	assert.NoError(m, err)
	assert.Equal(m, newDate, edited.Date.String())
}

func Test_OnEdit_UnknownID_ShouldFailWithoutInvalidation(t *testing.T) {
	m := minimock.NewController(t)
	cache := reportsmock.NewSummaryCacheMock(m)

	store := newStore(t)
	s := NewService(store, reports.NewGenerator(store).WithCache(cache, store.CacheScope()))

	desc := "dinner"
	_, err := s.Edit(context.Background(), 42, expense.Changes{Description: &desc})
	assert.True(m, errors.Is(err, expense.ErrNotFound))
}

func Test_OnDelete_ShouldDropRecordFromReports(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	s := NewService(store, reports.NewGenerator(store))

	first, err := s.Add(ctx, newRecord("30", "Food", "2024-03-01"))
	require.NoError(t, err)
	second, err := s.Add(ctx, newRecord("20", "Food", "2024-03-15"))
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, first.ID))

	food, err := s.ByCategory(ctx, "Food")
	require.NoError(t, err)
	require.Len(t, food, 1)
	assert.Equal(t, second.ID, food[0].ID)

	inRange, err := s.ByDateRange(ctx, "2024-03-01", "2024-03-31")
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, second.ID, inRange[0].ID)

	month, err := s.MonthlySummary(ctx, 2024, 3)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20").Equal(month.Total))
	assert.Equal(t, 1, month.Count)

	year, err := s.AnnualSummary(ctx, 2024)
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("20").Equal(year.Total))

	err = s.Delete(ctx, first.ID)
	assert.True(t, errors.Is(err, expense.ErrNotFound))
}

func Test_OnExport_WithoutExporter_ShouldFail(t *testing.T) {
	store := newStore(t)
	s := NewService(store, reports.NewGenerator(store))

	n, err := s.Export(context.Background())
	assert.True(t, errors.Is(err, ErrExportDisabled))
	assert.Zero(t, n)
}

func Test_OnExport_ShouldSendEveryRecord(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	exporter := mock.NewExpensesExporterMock(m)

	store := newStore(t)
	s := NewService(store, reports.NewGenerator(store)).WithExporter(exporter)

	_, err := s.Add(ctx, newRecord("30", "Food", "2024-03-01"))
	require.NoError(m, err)
	_, err = s.Add(ctx, newRecord("12.5", "Utilities", "2024-04-02"))
	require.NoError(m, err)

	exporter.ExportExpensesMock.
		Inspect(func(_ context.Context, records []expense.Record) {
			require.Len(m, records, 2)
			assert.Equal(m, int64(1), records[0].ID)
			assert.Equal(m, expense.Utilities, records[1].Category)
		}).
		Return(nil)

	n, err := s.Export(ctx)
	assert.NoError(m, err)
	assert.Equal(m, 2, n)
}

func Test_OnExport_ExporterFailure_ShouldPropagate(t *testing.T) {
	m := minimock.NewController(t)
	exporter := mock.NewExpensesExporterMock(m)
	exporter.ExportExpensesMock.Return(errors.New("connection refused"))

	store := newStore(t)
	s := NewService(store, reports.NewGenerator(store)).WithExporter(exporter)

	n, err := s.Export(context.Background())
	assert.Error(m, err)
	assert.Zero(m, n)
}
