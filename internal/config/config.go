// Package config loads service settings in order: .env file (if present),
// then environment variables, then command-line flags.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Assistant stores the generative-assistant gateway settings.
type Assistant struct {
	BaseURL     string
	APIKey      string
	Model       string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RateLimit stores the per-IP request budget.
type RateLimit struct {
	Enabled    bool
	Limit      int
	Window     time.Duration
	TTL        time.Duration
	MaxBuckets int
}

// Stats stores the background sampler settings.
type Stats struct {
	Interval time.Duration
}

// Pprof stores the optional debug server settings.
type Pprof struct {
	Enabled bool
	Addr    string
	User    string
	Pass    string
}

// Config stores all service settings.
type Config struct {
	Port      int
	SeedDemo  bool
	Assistant Assistant
	RateLimit RateLimit
	Stats     Stats
	Pprof     Pprof
}

// Load reads configuration. Malformed values fail loading instead of being
// silently replaced with defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      DefaultPort(),
		Assistant: DefaultAssistant(),
		RateLimit: DefaultRateLimit(),
		Stats:     DefaultStats(),
		Pprof:     DefaultPprof(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.SeedDemo, err = envBool("SEED_DEMO_DATA", cfg.SeedDemo); err != nil {
		return nil, err
	}

	cfg.Assistant.BaseURL = envStr("ASSISTANT_BASE_URL", cfg.Assistant.BaseURL)
	cfg.Assistant.APIKey = envStr("ASSISTANT_API_KEY", cfg.Assistant.APIKey)
	cfg.Assistant.Model = envStr("ASSISTANT_MODEL", cfg.Assistant.Model)
	if cfg.Assistant.Timeout, err = envDuration("ASSISTANT_TIMEOUT", cfg.Assistant.Timeout); err != nil {
		return nil, err
	}
	if cfg.Assistant.MaxAttempts, err = envInt("ASSISTANT_MAX_ATTEMPTS", cfg.Assistant.MaxAttempts); err != nil {
		return nil, err
	}
	if cfg.Assistant.BaseDelay, err = envDuration("ASSISTANT_BASE_DELAY", cfg.Assistant.BaseDelay); err != nil {
		return nil, err
	}
	if cfg.Assistant.MaxDelay, err = envDuration("ASSISTANT_MAX_DELAY", cfg.Assistant.MaxDelay); err != nil {
		return nil, err
	}

	if cfg.RateLimit.Enabled, err = envBool("RATE_LIMIT_ENABLED", cfg.RateLimit.Enabled); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Limit, err = envInt("RATE_LIMIT_LIMIT", cfg.RateLimit.Limit); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Window, err = envDuration("RATE_LIMIT_WINDOW", cfg.RateLimit.Window); err != nil {
		return nil, err
	}
	if cfg.RateLimit.TTL, err = envDuration("RATE_LIMIT_TTL", cfg.RateLimit.TTL); err != nil {
		return nil, err
	}
	if cfg.RateLimit.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", cfg.RateLimit.MaxBuckets); err != nil {
		return nil, err
	}

	if cfg.Stats.Interval, err = envDuration("STATS_INTERVAL", cfg.Stats.Interval); err != nil {
		return nil, err
	}

	if cfg.Pprof.Enabled, err = envBool("PPROF_ENABLED", cfg.Pprof.Enabled); err != nil {
		return nil, err
	}
	cfg.Pprof.Addr = envStr("PPROF_ADDR", cfg.Pprof.Addr)
	cfg.Pprof.User = envStr("PPROF_USER", cfg.Pprof.User)
	cfg.Pprof.Pass = envStr("PPROF_PASS", cfg.Pprof.Pass)

	fs := pflag.CommandLine
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.BoolVar(&cfg.SeedDemo, "seed-demo", cfg.SeedDemo, "seed the store with demo data")
	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Assistant.MaxAttempts <= 0 {
		return nil, fmt.Errorf("invalid assistant max attempts: %d", cfg.Assistant.MaxAttempts)
	}
	if cfg.RateLimit.Enabled && cfg.RateLimit.Limit <= 0 {
		return nil, fmt.Errorf("invalid rate limit: %d", cfg.RateLimit.Limit)
	}
	if cfg.Stats.Interval <= 0 {
		return nil, fmt.Errorf("invalid stats interval: %s", cfg.Stats.Interval)
	}
	return cfg, nil
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, v)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, v)
	}
	return d, nil
}
