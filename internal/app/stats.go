package app

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"logistics-dashboard-service/internal/logx"
)

// entityCounter is the slice of the store the sampler needs.
type entityCounter interface {
	Counts() map[string]int
}

// StatsWorker periodically publishes live record counts per entity type as
// prometheus gauges. It only reads; it never mutates records or derives
// statuses.
type StatsWorker struct {
	store    entityCounter
	gauge    *prometheus.GaugeVec
	logger   logx.Logger
	interval time.Duration
}

// NewStatsWorker creates a sampler. Returns nil if store or gauge is nil.
func NewStatsWorker(store entityCounter, gauge *prometheus.GaugeVec, logger logx.Logger, interval time.Duration) *StatsWorker {
	if store == nil || gauge == nil {
		return nil
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &StatsWorker{store: store, gauge: gauge, logger: logger, interval: interval}
}

// Run samples once immediately and then on every tick until ctx is done.
func (w *StatsWorker) Run(ctx context.Context) error {
	w.sample()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("stats worker stopped")
			return ctx.Err()
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *StatsWorker) sample() {
	for entity, n := range w.store.Counts() {
		w.gauge.WithLabelValues(entity).Set(float64(n))
	}
}
