package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

//go:generate minimock -i summaryCache -o ./mock/summary_cache_mock.go -n SummaryCacheMock

var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("year must be between 1 and 9999")
)

type expensesStorage interface {
	Expenses(ctx context.Context) []expense.Record
}

type summaryCache interface {
	GetSummary(key string) ([]byte, error)
	CacheSummary(key string, data []byte) error
	InvalidateSummaries(keys []string) error
}

// Generator filters the store's records and folds them into summaries.
// It never mutates the store.
type Generator struct {
	storage expensesStorage
	cache   summaryCache
	scope   string
}

func NewGenerator(storage expensesStorage) *Generator {
	return &Generator{storage: storage}
}

// WithCache makes summaries go through cache. Keys are namespaced by scope,
// which must differ between stores sharing one cache. Mutations must be
// reported with Invalidate to keep it coherent.
func (g *Generator) WithCache(cache summaryCache, scope string) *Generator {
	g.cache = cache
	g.scope = scope
	return g
}

// All returns every expense, newest first.
func (g *Generator) All(ctx context.Context) []expense.Record {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reports.All")
	defer span.Finish()

	return sortByDate(g.storage.Expenses(ctx))
}

func (g *Generator) ByCategory(ctx context.Context, category string) ([]expense.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reports.ByCategory")
	defer span.Finish()

	c, err := expense.ParseCategory(category)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrapf(err, "filter by category %q", category)
	}

	res := make([]expense.Record, 0)
	for _, rec := range g.storage.Expenses(ctx) {
		if rec.Category == c {
			res = append(res, rec)
		}
	}
	return sortByDate(res), nil
}

// ByDateRange returns records dated within [start, end], bounds inclusive.
func (g *Generator) ByDateRange(ctx context.Context, start, end string) ([]expense.Record, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reports.ByDateRange")
	defer span.Finish()

	from, err := expense.ParseDate(start)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "filter by date range: start")
	}
	to, err := expense.ParseDate(end)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(err, "filter by date range: end")
	}
	return sortByDate(filterByDate(g.storage.Expenses(ctx), from, to)), nil
}

func (g *Generator) MonthlySummary(ctx context.Context, year, month int) (summary MonthlySummary, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reports.MonthlySummary")
	defer span.Finish()
	span.SetTag("period", fmt.Sprintf("%04d-%02d", year, month))

	if err = validateYear(year); err != nil {
		ext.Error.Set(span, true)
		return MonthlySummary{}, errors.Wrap(err, "monthly summary")
	}
	if month < 1 || month > 12 {
		ext.Error.Set(span, true)
		return MonthlySummary{}, errors.Wrapf(ErrInvalidMonth, "monthly summary: got %d", month)
	}

	key := g.monthKey(year, time.Month(month))
	if g.fromCache(key, &summary) {
		return summary, nil
	}

	start, end := monthBounds(year, time.Month(month))
	records := sortByDate(filterByDate(g.storage.Expenses(ctx), start, end))

	summary = MonthlySummary{
		Year:              year,
		Month:             time.Month(month),
		MonthName:         time.Month(month).String(),
		Total:             sumAmounts(records),
		Count:             len(records),
		CategoryBreakdown: groupByCategory(records),
		Expenses:          records,
	}
	g.toCache(key, summary)
	return summary, nil
}

func (g *Generator) AnnualSummary(ctx context.Context, year int) (summary AnnualSummary, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "reports.AnnualSummary")
	defer span.Finish()
	span.SetTag("period", fmt.Sprintf("%04d", year))

	if err = validateYear(year); err != nil {
		ext.Error.Set(span, true)
		return AnnualSummary{}, errors.Wrap(err, "annual summary")
	}

	key := g.yearKey(year)
	if g.fromCache(key, &summary) {
		return summary, nil
	}

	start, end := yearBounds(year)
	records := filterByDate(g.storage.Expenses(ctx), start, end)

	monthly := make(map[string]decimal.Decimal, 12)
	for m := time.January; m <= time.December; m++ {
		ms, err := g.MonthlySummary(ctx, year, int(m))
		if err != nil {
			ext.Error.Set(span, true)
			return AnnualSummary{}, errors.Wrap(err, "annual summary")
		}
		monthly[m.String()] = ms.Total
	}

	summary = AnnualSummary{
		Year:              year,
		Total:             sumAmounts(records),
		Count:             len(records),
		MonthlyBreakdown:  monthly,
		CategoryBreakdown: groupByCategory(records),
	}
	g.toCache(key, summary)
	return summary, nil
}

// Invalidate drops cached summaries covering any of the given dates.
func (g *Generator) Invalidate(dates ...expense.Date) {
	if g.cache == nil || len(dates) == 0 {
		return
	}

	seen := make(map[string]struct{}, 2*len(dates))
	keys := make([]string, 0, 2*len(dates))
	for _, d := range dates {
		for _, key := range []string{g.monthKey(d.Year(), d.Month()), g.yearKey(d.Year())} {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}
	}

	if err := g.cache.InvalidateSummaries(keys); err != nil {
		logger.Warn("cannot invalidate summaries", zap.Strings("keys", keys), zap.Error(err))
	}
}

func (g *Generator) fromCache(key string, dst any) bool {
	if g.cache == nil {
		return false
	}
	data, err := g.cache.GetSummary(key)
	if err != nil {
		logger.Debug("summary cache miss", zap.String("key", key), zap.Error(err))
		return false
	}
	if err = json.Unmarshal(data, dst); err != nil {
		logger.Warn("dropping undecodable cached summary", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (g *Generator) toCache(key string, summary any) {
	if g.cache == nil {
		return
	}
	data, err := json.Marshal(summary)
	if err != nil {
		logger.Warn("cannot encode summary", zap.String("key", key), zap.Error(err))
		return
	}
	if err = g.cache.CacheSummary(key, data); err != nil {
		logger.Warn("cannot cache summary", zap.String("key", key), zap.Error(err))
	}
}

func validateYear(year int) error {
	if year < 1 || year > 9999 {
		return errors.Wrapf(ErrInvalidYear, "got %d", year)
	}
	return nil
}

func (g *Generator) monthKey(year int, month time.Month) string {
	return g.cacheKey(fmt.Sprintf("%04d-%02d", year, int(month)))
}

func (g *Generator) yearKey(year int) string {
	return g.cacheKey(fmt.Sprintf("%04d", year))
}

func (g *Generator) cacheKey(period string) string {
	if g.scope == "" {
		return "summary:" + period
	}
	return "summary:" + g.scope + ":" + period
}

func monthBounds(year int, month time.Month) (expense.Date, expense.Date) {
	n := now.With(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
	return expense.DateOf(n.BeginningOfMonth()), expense.DateOf(n.EndOfMonth())
}

func yearBounds(year int) (expense.Date, expense.Date) {
	n := now.With(time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC))
	return expense.DateOf(n.BeginningOfYear()), expense.DateOf(n.EndOfYear())
}

func filterByDate(records []expense.Record, start, end expense.Date) []expense.Record {
	res := make([]expense.Record, 0)
	for _, rec := range records {
		if rec.Date.Within(start, end) {
			res = append(res, rec)
		}
	}
	return res
}

// sortByDate puts the newest expenses first; same-day expenses keep id order.
func sortByDate(records []expense.Record) []expense.Record {
	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].ID < records[j].ID
	})
	return records
}
