package storage

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

var (
	operationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expenses",
			Subsystem: "storage",
			Name:      "operations_total",
			Help:      "Record store operations by outcome.",
		},
		[]string{"operation", "status"},
	)

	histogramPersistTime = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "expenses",
			Subsystem: "storage",
			Name:      "persist_duration_seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	recordsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "expenses",
			Subsystem: "storage",
			Name:      "records",
			Help:      "Records currently held by the store.",
		},
	)
)

func observeOperation(operation string, err error) {
	status := statusOK
	if err != nil {
		status = statusError
	}
	operationsTotal.WithLabelValues(operation, status).Inc()
}

func observePersist(elapsed time.Duration) {
	histogramPersistTime.Observe(elapsed.Seconds())
}
