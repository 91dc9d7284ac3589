package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
	"max.ks1230/expense-tracker/internal/model/tracker"
)

var errUsage = errors.New("bad arguments")

type expenseService interface {
	Add(ctx context.Context, in expense.NewRecord) (expense.Record, error)
	Edit(ctx context.Context, id int64, changes expense.Changes) (expense.Record, error)
	Delete(ctx context.Context, id int64) error
	Expenses(ctx context.Context) []expense.Record
	ByCategory(ctx context.Context, category string) ([]expense.Record, error)
	ByDateRange(ctx context.Context, start, end string) ([]expense.Record, error)
	MonthlySummary(ctx context.Context, year, month int) (reports.MonthlySummary, error)
	AnnualSummary(ctx context.Context, year int) (reports.AnnualSummary, error)
	Export(ctx context.Context) (int, error)
}

type app struct {
	service expenseService
	out     io.Writer
}

type command struct {
	name  string
	usage string
	run   func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"add", "add -amount N -category C [-desc TEXT] [-date YYYY-MM-DD]", runAdd},
	{"list", "list", runList},
	{"category", "category NAME", runCategory},
	{"range", "range START END", runRange},
	{"edit", "edit -id N [-amount N] [-category C] [-desc TEXT] [-date YYYY-MM-DD]", runEdit},
	{"delete", "delete ID", runDelete},
	{"month", "month YEAR MONTH", runMonth},
	{"year", "year YEAR", runYear},
	{"export", "export", runExport},
	{"sync", "sync [-every DURATION]", runSync},
}

func lookupCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: tracker [-config FILE] COMMAND [ARGS]")
	fmt.Fprintln(w, "commands:")
	for _, cmd := range commands {
		fmt.Fprintln(w, "  "+cmd.usage)
	}
	fmt.Fprintln(w, "categories: "+strings.Join(expense.CategoryNames(), ", "))
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func expectArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return errors.Wrapf(errUsage, "usage: %s", usage)
	}
	return nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	am, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, errors.Wrapf(expense.ErrInvalidAmount, "%q", raw)
	}
	return am, nil
}

func parseInt(raw, what string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(errUsage, "%s must be a number, got %q", what, raw)
	}
	return n, nil
}

func runAdd(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("add")
	rawAmount := fs.String("amount", "", "amount spent")
	category := fs.String("category", "", "expense category")
	desc := fs.String("desc", "", "description")
	date := fs.String("date", "", "date, today when empty")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	am, err := parseAmount(*rawAmount)
	if err != nil {
		return err
	}
	rec, err := a.service.Add(ctx, expense.NewRecord{
		Amount:      am,
		Description: *desc,
		Category:    *category,
		Date:        *date,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added expense %d\n", rec.ID)
	return nil
}

func runList(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 0, "list"); err != nil {
		return err
	}
	printRecords(a.out, a.service.Expenses(ctx))
	return nil
}

func runCategory(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 1, "category NAME"); err != nil {
		return err
	}
	records, err := a.service.ByCategory(ctx, args[0])
	if err != nil {
		return err
	}
	printRecords(a.out, records)
	return nil
}

func runRange(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 2, "range START END"); err != nil {
		return err
	}
	records, err := a.service.ByDateRange(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	printRecords(a.out, records)
	return nil
}

func runEdit(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("edit")
	id := fs.Int64("id", 0, "expense id")
	rawAmount := fs.String("amount", "", "new amount")
	category := fs.String("category", "", "new category")
	desc := fs.String("desc", "", "new description")
	date := fs.String("date", "", "new date")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	var changes expense.Changes
	var err error
	idSet := false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "id":
			idSet = true
		case "amount":
			var am decimal.Decimal
			if am, err = parseAmount(*rawAmount); err == nil {
				changes.Amount = &am
			}
		case "category":
			changes.Category = category
		case "desc":
			changes.Description = desc
		case "date":
			changes.Date = date
		}
	})
	if !idSet {
		return errors.Wrap(errUsage, "-id is required")
	}
	if err != nil {
		return err
	}
	if changes.Empty() {
		return errors.Wrap(errUsage, "nothing to change")
	}

	rec, err := a.service.Edit(ctx, *id, changes)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "updated expense %d\n", rec.ID)
	return nil
}

func runDelete(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 1, "delete ID"); err != nil {
		return err
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return errors.Wrapf(errUsage, "id must be a number, got %q", args[0])
	}
	if err = a.service.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted expense %d\n", id)
	return nil
}

func runMonth(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 2, "month YEAR MONTH"); err != nil {
		return err
	}
	year, err := parseInt(args[0], "year")
	if err != nil {
		return err
	}
	month, err := parseInt(args[1], "month")
	if err != nil {
		return err
	}
	summary, err := a.service.MonthlySummary(ctx, year, month)
	if err != nil {
		return err
	}
	printMonthlySummary(a.out, summary)
	return nil
}

func runYear(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 1, "year YEAR"); err != nil {
		return err
	}
	year, err := parseInt(args[0], "year")
	if err != nil {
		return err
	}
	summary, err := a.service.AnnualSummary(ctx, year)
	if err != nil {
		return err
	}
	printAnnualSummary(a.out, summary)
	return nil
}

func runExport(ctx context.Context, a *app, args []string) error {
	if err := expectArgs(args, 0, "export"); err != nil {
		return err
	}
	n, err := a.service.Export(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "exported %d expenses\n", n)
	return nil
}

func runSync(ctx context.Context, a *app, args []string) error {
	fs := newFlagSet("sync")
	every := fs.Duration("every", 15*time.Minute, "export interval")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(errUsage, err.Error())
	}

	syncer, err := tracker.NewSyncer(a.service, *every)
	if err != nil {
		return err
	}
	syncer.Run(ctx)
	return nil
}
