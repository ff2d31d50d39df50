package config

import "time"

const defaultPort = 8080

var defaultAssistant = Assistant{
	BaseURL:     "https://generativelanguage.googleapis.com/v1beta",
	Model:       "gemini-2.0-flash",
	Timeout:     20 * time.Second,
	MaxAttempts: 3,
	BaseDelay:   200 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Limit:      50,
	Window:     time.Second,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultStats = Stats{
	Interval: 15 * time.Second,
}

var defaultPprof = Pprof{
	Addr: "127.0.0.1:6060",
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultAssistant returns the default assistant gateway settings.
func DefaultAssistant() Assistant {
	return defaultAssistant
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultStats returns the default stats sampler settings.
func DefaultStats() Stats {
	return defaultStats
}

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() Pprof {
	return defaultPprof
}
