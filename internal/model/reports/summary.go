package reports

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/expense"
)

var hundred = decimal.NewFromInt(100)

type MonthlySummary struct {
	Year      int             `json:"year"`
	Month     time.Month      `json:"month"`
	MonthName string          `json:"month_name"`
	Total     decimal.Decimal `json:"total_expenses"`
	Count     int             `json:"num_expenses"`
	// CategoryBreakdown holds only categories with a non-zero subtotal.
	CategoryBreakdown map[expense.Category]decimal.Decimal `json:"category_breakdown"`
	Expenses          []expense.Record                     `json:"expenses"`
}

type AnnualSummary struct {
	Year  int             `json:"year"`
	Total decimal.Decimal `json:"total_expenses"`
	Count int             `json:"num_expenses"`
	// MonthlyBreakdown is keyed by month name and always has all twelve months.
	MonthlyBreakdown  map[string]decimal.Decimal           `json:"monthly_breakdown"`
	CategoryBreakdown map[expense.Category]decimal.Decimal `json:"category_breakdown"`
}

type CategoryAmount struct {
	Category expense.Category
	Amount   decimal.Decimal
}

// Share is subtotal as a percentage of total, or zero when total is zero.
func Share(subtotal, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return subtotal.Div(total).Mul(hundred)
}

// SortedBreakdown orders a category breakdown by amount, largest first.
// Equal amounts keep the order of expense.Categories.
func SortedBreakdown(breakdown map[expense.Category]decimal.Decimal) []CategoryAmount {
	res := make([]CategoryAmount, 0, len(breakdown))
	for _, c := range expense.Categories {
		if am, ok := breakdown[c]; ok {
			res = append(res, CategoryAmount{Category: c, Amount: am})
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Amount.GreaterThan(res[j].Amount)
	})
	return res
}

func sumAmounts(records []expense.Record) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		total = total.Add(rec.Amount)
	}
	return total
}

func groupByCategory(records []expense.Record) map[expense.Category]decimal.Decimal {
	m := make(map[expense.Category]decimal.Decimal)
	for _, rec := range records {
		m[rec.Category] = m[rec.Category].Add(rec.Amount)
	}
	for c, am := range m {
		if am.IsZero() {
			delete(m, c)
		}
	}
	return m
}
