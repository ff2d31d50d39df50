// Package metrics declares the Prometheus collectors used by the service.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a counter for HTTP requests rejected by
// the rate limiter.
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewAssistantRetriesTotal returns a counter for retry attempts against the
// assistant API.
func NewAssistantRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assistant_retries_total",
		Help: "Total number of retry attempts performed against the assistant API",
	})
}

// NewEntityCountGauge returns a gauge vector tracking how many records of
// each entity kind the store currently holds. Labelled by entity name
// (users, packages, trucks, inventory, routes, events).
func NewEntityCountGauge() *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "store_entities",
		Help: "Number of records per entity kind in the in-memory store",
	}, []string{"entity"})
}
