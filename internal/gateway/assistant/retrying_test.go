package assistant

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"logistics-dashboard-service/internal/apperr"
	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/testutil/testlog"
)

type stubGateway struct {
	optimizeCalls int
	organizeCalls int
	failures      int
	err           error
	suggestions   []domain.RouteSuggestion
	organized     []domain.OrganizedEmail
}

func (s *stubGateway) OptimizeRoutes(_ context.Context, _ []domain.Route) ([]domain.RouteSuggestion, error) {
	s.optimizeCalls++
	if s.optimizeCalls <= s.failures {
		return nil, s.err
	}
	return s.suggestions, nil
}

func (s *stubGateway) OrganizeEmails(_ context.Context, _ []domain.Email) ([]domain.OrganizedEmail, error) {
	s.organizeCalls++
	if s.organizeCalls <= s.failures {
		return nil, s.err
	}
	return s.organized, nil
}

type countingCounter struct{ n int }

func (c *countingCounter) Inc() { c.n++ }

func retryCfg() RetryConfig {
	return RetryConfig{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestRetrying_SucceedsAfterTransientFailures(t *testing.T) {
	t.Parallel()

	stub := &stubGateway{
		failures:    2,
		err:         &StatusError{Code: http.StatusServiceUnavailable},
		suggestions: []domain.RouteSuggestion{{RouteID: "ROUTE-001", Position: 1}},
	}
	retries := &countingCounter{}
	rec := testlog.NewRecorder()
	g := NewRetrying(stub, rec, retries, retryCfg())

	out, err := g.OptimizeRoutes(context.Background(), []domain.Route{{RouteID: "ROUTE-001"}})
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, 3, stub.optimizeCalls)
	require.Equal(t, 2, retries.n)

	entries := rec.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "warn", entries[0].Level)
	require.Equal(t, "assistant gateway retry", entries[0].Msg)
}

func TestRetrying_GivesUpAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	stub := &stubGateway{
		failures: 10,
		err:      &StatusError{Code: http.StatusTooManyRequests},
	}
	g := NewRetrying(stub, testlog.NewRecorder(), nil, retryCfg())

	_, err := g.OrganizeEmails(context.Background(), []domain.Email{{Subject: "hi"}})
	require.Error(t, err)
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 3, stub.organizeCalls)
}

func TestRetrying_GarbledOutputIsNotRetried(t *testing.T) {
	t.Parallel()

	stub := &stubGateway{failures: 10, err: apperr.ErrUnavailable}
	g := NewRetrying(stub, testlog.NewRecorder(), nil, retryCfg())

	_, err := g.OptimizeRoutes(context.Background(), nil)
	require.ErrorIs(t, err, apperr.ErrUnavailable)
	require.Equal(t, 1, stub.optimizeCalls)
}

func TestRetrying_ClientErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	stub := &stubGateway{failures: 10, err: &StatusError{Code: http.StatusBadRequest}}
	g := NewRetrying(stub, testlog.NewRecorder(), nil, retryCfg())

	_, err := g.OptimizeRoutes(context.Background(), nil)
	require.Error(t, err)
	require.Equal(t, 1, stub.optimizeCalls)
}

func TestRetrying_StopsWhenContextCancelled(t *testing.T) {
	t.Parallel()

	stub := &stubGateway{failures: 10, err: &StatusError{Code: http.StatusBadGateway}}
	g := NewRetrying(stub, testlog.NewRecorder(), nil, retryCfg())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := g.OrganizeEmails(ctx, nil)
	require.Error(t, err)
	require.Equal(t, 1, stub.organizeCalls)
}

func TestNewRetrying_NilNext(t *testing.T) {
	t.Parallel()
	require.Nil(t, NewRetrying(nil, testlog.NewRecorder(), nil, retryCfg()))
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	require.Equal(t, 100*time.Millisecond, backoff(100*time.Millisecond, time.Second, 1))
	require.Equal(t, 400*time.Millisecond, backoff(100*time.Millisecond, time.Second, 3))
	require.Equal(t, time.Second, backoff(100*time.Millisecond, time.Second, 10))
	require.Equal(t, 100*time.Millisecond, backoff(0, 0, 1))
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	require.False(t, isRetryable(apperr.ErrUnavailable))
	require.False(t, isRetryable(&StatusError{Code: http.StatusNotFound}))
	require.True(t, isRetryable(&StatusError{Code: http.StatusInternalServerError}))
	require.True(t, isRetryable(&StatusError{Code: http.StatusTooManyRequests}))
	require.True(t, isRetryable(context.DeadlineExceeded))
	require.True(t, isRetryable(&net.DNSError{IsTimeout: true}))
	require.False(t, isRetryable(errors.New("boom")))
}

func TestClient_GenerateRoundTrip(t *testing.T) {
	t.Parallel()

	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-goog-api-key")
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1beta/models/demo-model:generateContent", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":
			"[{\"routeId\":\"ROUTE-001\",\"position\":1,\"notes\":\"only route\"}]"}]}}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{
		BaseURL: srv.URL + "/v1beta",
		APIKey:  "test-key",
		Model:   "demo-model",
		Timeout: time.Second,
	}, testlog.NewRecorder())

	out, err := c.OptimizeRoutes(context.Background(), []domain.Route{{RouteID: "ROUTE-001"}})
	require.NoError(t, err)
	require.Equal(t, "test-key", gotKey)
	require.Len(t, out, 1)
	require.Equal(t, 1, out[0].Position)
}

func TestClient_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "demo-model", Timeout: time.Second},
		testlog.NewRecorder())

	_, err := c.OrganizeEmails(context.Background(), []domain.Email{{Subject: "s"}})
	var se *StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusTooManyRequests, se.Code)
	require.True(t, se.Temporary())
}
