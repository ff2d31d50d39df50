package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-dashboard-service/internal/metrics"
)

// metricsBundle carries the service-level collectors through the container.
type metricsBundle struct {
	RateLimitExceededTotal prometheus.Counter
	AssistantRetriesTotal  prometheus.Counter
	EntityCounts           *prometheus.GaugeVec
}

// provideMetrics registers the collectors, reusing already-registered ones
// so repeated container builds in tests do not fail.
func provideMetrics() (metricsBundle, error) {
	rl, err := registerCollector(metrics.NewRateLimitExceededTotal())
	if err != nil {
		return metricsBundle{}, fmt.Errorf("register rate_limit_exceeded_total: %w", err)
	}
	ar, err := registerCollector(metrics.NewAssistantRetriesTotal())
	if err != nil {
		return metricsBundle{}, fmt.Errorf("register assistant_retries_total: %w", err)
	}
	ec, err := registerCollector(metrics.NewEntityCountGauge())
	if err != nil {
		return metricsBundle{}, fmt.Errorf("register store_entities: %w", err)
	}
	return metricsBundle{
		RateLimitExceededTotal: rl,
		AssistantRetriesTotal:  ar,
		EntityCounts:           ec,
	}, nil
}

func registerCollector[T prometheus.Collector](c T) (T, error) {
	if err := prometheus.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}
