package app

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"logistics-dashboard-service/internal/logx"
	"logistics-dashboard-service/internal/metrics"
	"logistics-dashboard-service/internal/storage"
)

func TestStatsWorker_SamplesOnStart(t *testing.T) {
	t.Parallel()

	s := storage.New()
	storage.SeedDemoData(s)
	gauge := metrics.NewEntityCountGauge()

	w := NewStatsWorker(s, gauge, logx.Nop(), time.Hour)
	require.NotNil(t, w)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := w.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)

	require.Equal(t, float64(2), testutil.ToFloat64(gauge.WithLabelValues("users")))
	require.Equal(t, float64(2), testutil.ToFloat64(gauge.WithLabelValues("trucks")))
	require.Equal(t, float64(3), testutil.ToFloat64(gauge.WithLabelValues("inventory")))
	require.Equal(t, float64(1), testutil.ToFloat64(gauge.WithLabelValues("routes")))
}

func TestNewStatsWorker_NilDeps(t *testing.T) {
	t.Parallel()

	require.Nil(t, NewStatsWorker(nil, metrics.NewEntityCountGauge(), logx.Nop(), time.Second))
	require.Nil(t, NewStatsWorker(storage.New(), nil, logx.Nop(), time.Second))
}
