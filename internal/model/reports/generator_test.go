package reports

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports/mock"
)

type staticStorage []expense.Record

func (s staticStorage) Expenses(context.Context) []expense.Record {
	out := make([]expense.Record, len(s))
	copy(out, s)
	return out
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func record(id int64, am string, c expense.Category, date string) expense.Record {
	d, err := expense.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return expense.Record{ID: id, Amount: dec(am), Description: "test", Category: c, Date: d}
}

func ids(records []expense.Record) []int64 {
	res := make([]int64, 0, len(records))
	for _, rec := range records {
		res = append(res, rec.ID)
	}
	return res
}

func sampleStorage() staticStorage {
	return staticStorage{
		record(1, "30", expense.Food, "2024-03-01"),
		record(2, "20", expense.Food, "2024-03-15"),
		record(3, "10", expense.Food, "2024-03-31"),
		record(4, "100.50", expense.Housing, "2024-03-10"),
		record(5, "7.25", expense.Transportation, "2024-02-29"),
		record(6, "42", expense.Entertainment, "2024-04-01"),
		record(7, "15", expense.Food, "2023-03-05"),
		record(8, "60", expense.Utilities, "2024-12-31"),
	}
}

func Test_OnMonthlySummary_SingleExpense_ShouldMatchScenario(t *testing.T) {
	g := NewGenerator(staticStorage{record(1, "50.00", expense.Food, "2024-03-05")})

	summary, err := g.MonthlySummary(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.True(t, dec("50").Equal(summary.Total))
	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, "March", summary.MonthName)
	require.Len(t, summary.CategoryBreakdown, 1)
	assert.True(t, dec("50").Equal(summary.CategoryBreakdown[expense.Food]))
}

func Test_OnMonthlySummary_ShouldSumOnlyThatMonth(t *testing.T) {
	g := NewGenerator(sampleStorage())

	summary, err := g.MonthlySummary(context.Background(), 2024, 3)
	require.NoError(t, err)

	assert.True(t, dec("160.50").Equal(summary.Total))
	assert.Equal(t, 4, summary.Count)
	assert.True(t, dec("60").Equal(summary.CategoryBreakdown[expense.Food]))
	assert.True(t, dec("100.50").Equal(summary.CategoryBreakdown[expense.Housing]))
	assert.NotContains(t, summary.CategoryBreakdown, expense.Transportation)
	assert.Equal(t, []int64{3, 2, 4, 1}, ids(summary.Expenses))
}

func Test_OnMonthlySummary_ShouldHandleMonthLength(t *testing.T) {
	g := NewGenerator(sampleStorage())

	feb, err := g.MonthlySummary(context.Background(), 2024, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{5}, ids(feb.Expenses))

	dec2024, err := g.MonthlySummary(context.Background(), 2024, 12)
	require.NoError(t, err)
	assert.Equal(t, []int64{8}, ids(dec2024.Expenses))
}

func Test_OnMonthlySummary_InvalidPeriod_ShouldFail(t *testing.T) {
	g := NewGenerator(sampleStorage())

	_, err := g.MonthlySummary(context.Background(), 2024, 13)
	assert.True(t, errors.Is(err, ErrInvalidMonth))
	_, err = g.MonthlySummary(context.Background(), 2024, 0)
	assert.True(t, errors.Is(err, ErrInvalidMonth))
	_, err = g.MonthlySummary(context.Background(), 0, 1)
	assert.True(t, errors.Is(err, ErrInvalidYear))
}

func Test_OnMonthlySummary_EmptyMonth_ShouldBeZero(t *testing.T) {
	g := NewGenerator(sampleStorage())

	summary, err := g.MonthlySummary(context.Background(), 2024, 7)
	require.NoError(t, err)

	assert.True(t, summary.Total.IsZero())
	assert.Equal(t, 0, summary.Count)
	assert.Empty(t, summary.CategoryBreakdown)
	assert.Empty(t, summary.Expenses)
}

func Test_OnAnnualSummary_TotalShouldEqualSumOfMonths(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(sampleStorage())

	summary, err := g.AnnualSummary(ctx, 2024)
	require.NoError(t, err)

	assert.True(t, dec("269.75").Equal(summary.Total))
	assert.Equal(t, 7, summary.Count)
	require.Len(t, summary.MonthlyBreakdown, 12)

	monthsTotal := decimal.Zero
	for m := time.January; m <= time.December; m++ {
		ms, err := g.MonthlySummary(ctx, 2024, int(m))
		require.NoError(t, err)
		assert.True(t, ms.Total.Equal(summary.MonthlyBreakdown[m.String()]), m.String())
		monthsTotal = monthsTotal.Add(summary.MonthlyBreakdown[m.String()])
	}
	assert.True(t, summary.Total.Equal(monthsTotal))
	assert.True(t, summary.MonthlyBreakdown["July"].IsZero())
	assert.True(t, dec("60").Equal(summary.CategoryBreakdown[expense.Food]))
	assert.True(t, dec("60").Equal(summary.CategoryBreakdown[expense.Utilities]))
}

func Test_OnByCategory_ShouldFilterAndRejectUnknown(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(sampleStorage())

	food, err := g.ByCategory(ctx, "Food")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1, 7}, ids(food))

	none, err := g.ByCategory(ctx, "Healthcare")
	require.NoError(t, err)
	assert.Empty(t, none)

	res, err := g.ByCategory(ctx, "Groceries")
	assert.True(t, errors.Is(err, expense.ErrUnknownCategory))
	assert.Empty(t, res)
}

func Test_OnByDateRange_ShouldIncludeBounds(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(sampleStorage())

	res, err := g.ByDateRange(ctx, "2024-02-29", "2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 1, 5}, ids(res))

	res, err = g.ByDateRange(ctx, "2024-04-01", "2024-03-01")
	require.NoError(t, err)
	assert.Empty(t, res)
}

func Test_OnByDateRange_UnparsableBounds_ShouldFail(t *testing.T) {
	ctx := context.Background()
	g := NewGenerator(sampleStorage())

	res, err := g.ByDateRange(ctx, "March", "2024-03-10")
	assert.True(t, errors.Is(err, expense.ErrInvalidDate))
	assert.Empty(t, res)

	_, err = g.ByDateRange(ctx, "2024-03-01", "2024-03-32")
	assert.True(t, errors.Is(err, expense.ErrInvalidDate))
}

func Test_OnShare_ShouldBeZeroForZeroTotal(t *testing.T) {
	assert.True(t, dec("25").Equal(Share(dec("15"), dec("60"))))
	assert.True(t, Share(dec("15"), decimal.Zero).IsZero())
}

func Test_OnSortedBreakdown_ShouldOrderByAmount(t *testing.T) {
	res := SortedBreakdown(map[expense.Category]decimal.Decimal{
		expense.Other:   dec("10"),
		expense.Food:    dec("60"),
		expense.Housing: dec("10"),
	})

	require.Len(t, res, 3)
	assert.Equal(t, expense.Food, res[0].Category)
	assert.Equal(t, expense.Housing, res[1].Category)
	assert.Equal(t, expense.Other, res[2].Category)
}

func Test_OnMonthlySummary_CacheMiss_ShouldComputeAndStore(t *testing.T) {
	m := minimock.NewController(t)
	cache := mock.NewSummaryCacheMock(m)

	cache.GetSummaryMock.
		Expect("summary:2024-03").
		Return(nil, errors.New("cache miss")).
		CacheSummaryMock.
		Inspect(func(key string, data []byte) {
			assert.Equal(m, "summary:2024-03", key)
			var cached MonthlySummary
			assert.NoError(m, json.Unmarshal(data, &cached))
			assert.True(m, dec("160.50").Equal(cached.Total))
		}).
		Return(nil)

	g := NewGenerator(sampleStorage()).WithCache(cache, "")
	summary, err := g.MonthlySummary(context.Background(), 2024, 3)

	assert.NoError(m, err)
	assert.Equal(m, 4, summary.Count)
}

func Test_OnMonthlySummary_CacheHit_ShouldSkipStorage(t *testing.T) {
	m := minimock.NewController(t)
	cache := mock.NewSummaryCacheMock(m)

	cached, err := json.Marshal(MonthlySummary{
		Year:              2024,
		Month:             time.March,
		MonthName:         "March",
		Total:             dec("1"),
		Count:             1,
		CategoryBreakdown: map[expense.Category]decimal.Decimal{expense.Other: dec("1")},
	})
	require.NoError(t, err)
	cache.GetSummaryMock.Expect("summary:2024-03").Return(cached, nil)

	g := NewGenerator(staticStorage(nil)).WithCache(cache, "")
	summary, err := g.MonthlySummary(context.Background(), 2024, 3)

	assert.NoError(m, err)
	assert.True(m, dec("1").Equal(summary.Total))
	assert.True(m, dec("1").Equal(summary.CategoryBreakdown[expense.Other]))
}

func Test_OnInvalidate_ShouldDropMonthAndYearKeys(t *testing.T) {
	m := minimock.NewController(t)
	cache := mock.NewSummaryCacheMock(m)

	cache.InvalidateSummariesMock.
		Expect([]string{"summary:2024-03", "summary:2024", "summary:2023-12", "summary:2023"}).
		Return(nil)

	g := NewGenerator(staticStorage(nil)).WithCache(cache, "")
	g.Invalidate(
		expense.NewDate(2024, time.March, 5),
		expense.NewDate(2024, time.March, 20),
		expense.NewDate(2023, time.December, 31),
	)
}

func Test_OnInvalidate_WithoutCache_ShouldDoNothing(t *testing.T) {
	g := NewGenerator(staticStorage(nil))

	assert.NotPanics(t, func() {
		g.Invalidate(expense.NewDate(2024, time.March, 5))
	})
}

func Test_OnAll_ShouldListNewestFirst(t *testing.T) {
	g := NewGenerator(sampleStorage())

	assert.Equal(t, []int64{8, 6, 3, 2, 4, 1, 5, 7}, ids(g.All(context.Background())))
}

func Test_OnMonthlySummary_StoresSharingCache_ShouldNotSeeEachOther(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	cache := mock.NewSummaryCacheMock(m)

	cached := map[string][]byte{}
	cache.GetSummaryMock.Set(func(key string) ([]byte, error) {
		data, ok := cached[key]
		if !ok {
			return nil, errors.New("cache miss")
		}
		return data, nil
	})
	cache.CacheSummaryMock.Set(func(key string, data []byte) error {
		cached[key] = data
		return nil
	})

	first := NewGenerator(staticStorage{record(1, "50", expense.Food, "2024-03-05")}).WithCache(cache, "first")
	second := NewGenerator(staticStorage{record(1, "7", expense.Other, "2024-03-06")}).WithCache(cache, "second")

	summary, err := first.MonthlySummary(ctx, 2024, 3)
	require.NoError(m, err)
	assert.True(m, dec("50").Equal(summary.Total))

	summary, err = second.MonthlySummary(ctx, 2024, 3)
	require.NoError(m, err)
	assert.True(m, dec("7").Equal(summary.Total))
	assert.Contains(m, summary.CategoryBreakdown, expense.Other)

	assert.Contains(m, cached, "summary:first:2024-03")
	assert.Contains(m, cached, "summary:second:2024-03")
}
