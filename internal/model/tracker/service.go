package tracker

import (
	"context"

	"github.com/pkg/errors"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/reports"
)

//go:generate minimock -i expensesExporter -o ./mock/expenses_exporter_mock.go -n ExpensesExporterMock

var ErrExportDisabled = errors.New("postgres export is not configured")

type recordStore interface {
	Add(ctx context.Context, in expense.NewRecord) (expense.Record, error)
	Edit(ctx context.Context, id int64, changes expense.Changes) (expense.Record, error)
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (expense.Record, error)
	Expenses(ctx context.Context) []expense.Record
}

type reportGenerator interface {
	All(ctx context.Context) []expense.Record
	ByCategory(ctx context.Context, category string) ([]expense.Record, error)
	ByDateRange(ctx context.Context, start, end string) ([]expense.Record, error)
	MonthlySummary(ctx context.Context, year, month int) (reports.MonthlySummary, error)
	AnnualSummary(ctx context.Context, year int) (reports.AnnualSummary, error)
	Invalidate(dates ...expense.Date)
}

type expensesExporter interface {
	ExportExpenses(ctx context.Context, records []expense.Record) error
}

// Service is what the command line talks to. Every mutation goes to the
// store first and then drops the summaries it made stale.
type Service struct {
	store    recordStore
	reports  reportGenerator
	exporter expensesExporter
}

func NewService(store recordStore, reports reportGenerator) *Service {
	return &Service{
		store:   store,
		reports: reports,
	}
}

func (s *Service) WithExporter(exporter expensesExporter) *Service {
	s.exporter = exporter
	return s
}

func (s *Service) Add(ctx context.Context, in expense.NewRecord) (expense.Record, error) {
	rec, err := s.store.Add(ctx, in)
	if err != nil {
		return expense.Record{}, err
	}
	s.reports.Invalidate(rec.Date)
	return rec, nil
}

func (s *Service) Edit(ctx context.Context, id int64, changes expense.Changes) (expense.Record, error) {
	before, err := s.store.Get(ctx, id)
	if err != nil {
		return expense.Record{}, errors.Wrapf(err, "edit expense %d", id)
	}
	rec, err := s.store.Edit(ctx, id, changes)
	if err != nil {
		return expense.Record{}, err
	}
	s.reports.Invalidate(before.Date, rec.Date)
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	before, err := s.store.Get(ctx, id)
	if err != nil {
		return errors.Wrapf(err, "delete expense %d", id)
	}
	if err = s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.reports.Invalidate(before.Date)
	return nil
}

func (s *Service) Get(ctx context.Context, id int64) (expense.Record, error) {
	return s.store.Get(ctx, id)
}

// Expenses lists every record, newest first.
func (s *Service) Expenses(ctx context.Context) []expense.Record {
	return s.reports.All(ctx)
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]expense.Record, error) {
	return s.reports.ByCategory(ctx, category)
}

func (s *Service) ByDateRange(ctx context.Context, start, end string) ([]expense.Record, error) {
	return s.reports.ByDateRange(ctx, start, end)
}

func (s *Service) MonthlySummary(ctx context.Context, year, month int) (reports.MonthlySummary, error) {
	return s.reports.MonthlySummary(ctx, year, month)
}

func (s *Service) AnnualSummary(ctx context.Context, year int) (reports.AnnualSummary, error) {
	return s.reports.AnnualSummary(ctx, year)
}

// Export pushes a snapshot of every record to postgres.
func (s *Service) Export(ctx context.Context) (int, error) {
	if s.exporter == nil {
		return 0, ErrExportDisabled
	}
	records := s.store.Expenses(ctx)
	if err := s.exporter.ExportExpenses(ctx, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
