package tracker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingExporter struct {
	calls atomic.Int32
	err   error
}

func (e *countingExporter) Export(context.Context) (int, error) {
	e.calls.Add(1)
	return 3, e.err
}

func Test_OnNewSyncer_NonPositiveInterval_ShouldFail(t *testing.T) {
	_, err := NewSyncer(&countingExporter{}, 0)
	assert.True(t, errors.Is(err, ErrInvalidInterval))
}

func Test_OnRun_ShouldExportImmediatelyAndStopOnCancel(t *testing.T) {
	exporter := &countingExporter{}
	s, err := NewSyncer(exporter, time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return exporter.calls.Load() == 1 }, time.Second, 10*time.Millisecond)
	cancel()
	assert.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func Test_OnRun_ExportFailure_ShouldKeepGoing(t *testing.T) {
	exporter := &countingExporter{err: errors.New("connection refused")}
	s, err := NewSyncer(exporter, 5*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	assert.Eventually(t, func() bool { return exporter.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}
