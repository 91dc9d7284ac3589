package tracker

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

var ErrInvalidInterval = errors.New("sync interval must be positive")

type snapshotExporter interface {
	Export(ctx context.Context) (int, error)
}

// Syncer keeps the postgres mirror fresh by exporting on a fixed interval
// until its context is cancelled.
type Syncer struct {
	exporter snapshotExporter
	interval time.Duration
}

func NewSyncer(exporter snapshotExporter, interval time.Duration) (*Syncer, error) {
	if interval <= 0 {
		return nil, errors.Wrapf(ErrInvalidInterval, "got %s", interval)
	}
	return &Syncer{
		exporter: exporter,
		interval: interval,
	}, nil
}

func (s *Syncer) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start syncing expenses", zap.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop syncing expenses")
			return
		// fake first tick to export immediately
		case <-firstTick:
			s.syncOnce(ctx)
		case <-ticker.C:
			s.syncOnce(ctx)
		}
	}
}

func (s *Syncer) syncOnce(ctx context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "syncExpenses")
	defer span.Finish()

	n, err := s.exporter.Export(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Error("cannot sync expenses", zap.Error(err))
		return
	}
	logger.Info("expenses synced", zap.Int("count", n))
}
