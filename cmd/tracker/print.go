package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func printRecords(w io.Writer, records []expense.Record) {
	if len(records) == 0 {
		fmt.Fprintln(w, "no expenses")
		return
	}
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tDATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, rec := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.Date, rec.Category, rec.Amount.StringFixed(2), rec.Description)
	}
	_ = tw.Flush()
}

func printBreakdown(w io.Writer, breakdown map[expense.Category]decimal.Decimal, total decimal.Decimal) {
	tw := newTable(w)
	fmt.Fprintln(tw, "CATEGORY\tAMOUNT\tSHARE")
	for _, row := range reports.SortedBreakdown(breakdown) {
		fmt.Fprintf(tw, "%s\t%s\t%s%%\n",
			row.Category, row.Amount.StringFixed(2), reports.Share(row.Amount, total).StringFixed(2))
	}
	_ = tw.Flush()
}

func printMonthlySummary(w io.Writer, s reports.MonthlySummary) {
	fmt.Fprintf(w, "%s %d\n", s.MonthName, s.Year)
	fmt.Fprintf(w, "total: %s (%d expenses)\n", s.Total.StringFixed(2), s.Count)
	if s.Count == 0 {
		return
	}
	fmt.Fprintln(w)
	printBreakdown(w, s.CategoryBreakdown, s.Total)
	fmt.Fprintln(w)
	printRecords(w, s.Expenses)
}

func printAnnualSummary(w io.Writer, s reports.AnnualSummary) {
	fmt.Fprintf(w, "%d\n", s.Year)
	fmt.Fprintf(w, "total: %s (%d expenses)\n", s.Total.StringFixed(2), s.Count)
	fmt.Fprintln(w)

	if s.Count == 0 {
		return
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "MONTH\tAMOUNT\tSHARE")
	for m := time.January; m <= time.December; m++ {
		am := s.MonthlyBreakdown[m.String()]
		if am.IsZero() {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s%%\n", m, am.StringFixed(2), reports.Share(am, s.Total).StringFixed(2))
	}
	_ = tw.Flush()

	fmt.Fprintln(w)
	printBreakdown(w, s.CategoryBreakdown, s.Total)
}
