package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	// postgres driver
	_ "github.com/lib/pq"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
)

const dsnTemplate = "user=%s password=%s host=%s dbname=%s sslmode=%s"

const expensesTable = "expenses"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresConfig interface {
	Host() string
	Username() string
	Password() string
	Database() string
	SSLMode() string
}

// PostgresExporter mirrors the JSON store into a postgres table. The JSON
// document stays the source of truth; rows are overwritten on every export.
type PostgresExporter struct {
	db *sql.DB
}

func NewPostgresExporter(config postgresConfig) (*PostgresExporter, error) {
	db, err := sql.Open("postgres", fmt.Sprintf(dsnTemplate,
		config.Username(),
		config.Password(),
		config.Host(),
		config.Database(),
		config.SSLMode()))
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	return &PostgresExporter{db}, nil
}

func (e *PostgresExporter) Close() {
	if err := e.db.Close(); err != nil {
		logger.Error("failed to close postgres connection", zap.Error(err))
	}
}

// ExportExpenses replaces the table contents with records in one transaction.
func (e *PostgresExporter) ExportExpenses(ctx context.Context, records []expense.Record) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "storage.ExportExpenses")
	defer func() {
		finishSpan(span, err)
		observeOperation("export", err)
	}()

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "export expenses")
	}
	defer func() {
		if err == nil {
			return
		}
		if txErr := tx.Rollback(); txErr != nil {
			logger.Error("error when transaction rollback", zap.Error(txErr))
		}
	}()

	_, err = deleteStaleQuery(records).RunWith(tx).ExecContext(ctx)
	if err != nil {
		return errors.Wrap(err, "export expenses: delete stale rows")
	}

	for _, rec := range records {
		_, err = upsertQuery(rec).RunWith(tx).ExecContext(ctx)
		if err != nil {
			return errors.Wrapf(err, "export expenses: upsert %d", rec.ID)
		}
	}

	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "export expenses")
	}
	logger.Info("expenses exported", zap.Int("count", len(records)))
	return nil
}

func deleteStaleQuery(records []expense.Record) sq.DeleteBuilder {
	query := psql.Delete(expensesTable)
	if len(records) == 0 {
		return query
	}
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	return query.Where(sq.NotEq{"id": ids})
}

func upsertQuery(rec expense.Record) sq.InsertBuilder {
	return psql.Insert(expensesTable).
		Columns("id", "amount", "description", "category", "spent_on", "updated_at").
		Values(rec.ID, rec.Amount, rec.Description, string(rec.Category), rec.Date.Time(), rec.Timestamp).
		Suffix("ON CONFLICT(id) DO UPDATE SET " +
			"amount = EXCLUDED.amount, description = EXCLUDED.description, " +
			"category = EXCLUDED.category, spent_on = EXCLUDED.spent_on, " +
			"updated_at = EXCLUDED.updated_at")
}
