package config_test

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"logistics-dashboard-service/internal/config"
)

func resetFlags(t *testing.T) {
	t.Helper()
	old := pflag.CommandLine
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ContinueOnError)
	t.Cleanup(func() {
		pflag.CommandLine = old
	})
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "SEED_DEMO_DATA",
		"ASSISTANT_BASE_URL", "ASSISTANT_API_KEY", "ASSISTANT_MODEL",
		"ASSISTANT_TIMEOUT", "ASSISTANT_MAX_ATTEMPTS",
		"ASSISTANT_BASE_DELAY", "ASSISTANT_MAX_DELAY",
		"RATE_LIMIT_ENABLED", "RATE_LIMIT_LIMIT", "RATE_LIMIT_WINDOW",
		"RATE_LIMIT_TTL", "RATE_LIMIT_MAX_BUCKETS",
		"STATS_INTERVAL",
		"PPROF_ENABLED", "PPROF_ADDR", "PPROF_USER", "PPROF_PASS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 8080, cfg.Port)
	require.False(t, cfg.SeedDemo)

	require.Equal(t, "https://generativelanguage.googleapis.com/v1beta", cfg.Assistant.BaseURL)
	require.Equal(t, "gemini-2.0-flash", cfg.Assistant.Model)
	require.Equal(t, 20*time.Second, cfg.Assistant.Timeout)
	require.Equal(t, 3, cfg.Assistant.MaxAttempts)

	require.True(t, cfg.RateLimit.Enabled)
	require.Equal(t, 50, cfg.RateLimit.Limit)
	require.Equal(t, time.Second, cfg.RateLimit.Window)

	require.Equal(t, 15*time.Second, cfg.Stats.Interval)
	require.False(t, cfg.Pprof.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "9090")
	t.Setenv("SEED_DEMO_DATA", "true")
	t.Setenv("ASSISTANT_BASE_URL", "http://assistant.internal/v1")
	t.Setenv("ASSISTANT_API_KEY", "key-123")
	t.Setenv("ASSISTANT_MODEL", "test-model")
	t.Setenv("ASSISTANT_TIMEOUT", "5s")
	t.Setenv("ASSISTANT_MAX_ATTEMPTS", "5")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("STATS_INTERVAL", "30s")
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "127.0.0.1:7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	require.Equal(t, 9090, cfg.Port)
	require.True(t, cfg.SeedDemo)
	require.Equal(t, "http://assistant.internal/v1", cfg.Assistant.BaseURL)
	require.Equal(t, "key-123", cfg.Assistant.APIKey)
	require.Equal(t, "test-model", cfg.Assistant.Model)
	require.Equal(t, 5*time.Second, cfg.Assistant.Timeout)
	require.Equal(t, 5, cfg.Assistant.MaxAttempts)
	require.False(t, cfg.RateLimit.Enabled)
	require.Equal(t, 30*time.Second, cfg.Stats.Interval)
	require.True(t, cfg.Pprof.Enabled)
	require.Equal(t, "127.0.0.1:7070", cfg.Pprof.Addr)
}

func TestLoad_InvalidPort(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("PORT", "70000")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_MalformedDuration(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("ASSISTANT_TIMEOUT", "very-long")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_MalformedBool(t *testing.T) {
	resetFlags(t)
	clearEnv(t)

	t.Setenv("SEED_DEMO_DATA", "yep")

	cfg, err := config.Load()
	require.Error(t, err)
	require.Nil(t, cfg)
}

func TestLoad_FlagsParseError(t *testing.T) {
	oldArgs := os.Args
	oldCommandLine := pflag.CommandLine

	defer func() {
		os.Args = oldArgs
		pflag.CommandLine = oldCommandLine
	}()

	clearEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	pflag.CommandLine = fs
	os.Args = []string{"cmd", "--port=not-a-number"}

	cfg, err := config.Load()

	require.Error(t, err)
	require.Nil(t, cfg)
	require.Contains(t, err.Error(), "parse flags")
}
