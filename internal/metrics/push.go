package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"

	"max.ks1230/expense-tracker/internal/logger"
)

type config interface {
	Enabled() bool
	Pushgateway() string
	Job() string
}

// Push sends everything registered in gatherer to the configured
// Pushgateway. It does nothing when no gateway is set.
func Push(config config, gatherer prometheus.Gatherer) error {
	if !config.Enabled() {
		return nil
	}
	err := push.New(config.Pushgateway(), config.Job()).
		Gatherer(gatherer).
		Push()
	if err != nil {
		return errors.Wrap(err, "push metrics")
	}
	logger.Debug("metrics pushed", zap.String("gateway", config.Pushgateway()))
	return nil
}
