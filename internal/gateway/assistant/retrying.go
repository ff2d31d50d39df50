package assistant

import (
	"context"
	"errors"
	"net"
	"time"

	"logistics-dashboard-service/internal/apperr"
	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/logx"
)

type counter interface {
	Inc()
}

// RetryConfig describes the Retrying gateway behaviour.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Retrying decorates a Gateway with bounded exponential backoff. Only
// transient failures (timeouts, 429/5xx answers, network errors) are
// retried; a validated-but-garbled answer is permanent.
type Retrying struct {
	next    Gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetrying wraps next with retry behaviour. Returns nil if next is nil.
func NewRetrying(next Gateway, logger logx.Logger, retries counter, cfg RetryConfig) *Retrying {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &Retrying{next: next, logger: logger, retries: retries, cfg: cfg}
}

// OptimizeRoutes delegates to the wrapped gateway with retries.
func (g *Retrying) OptimizeRoutes(ctx context.Context, routes []domain.Route) ([]domain.RouteSuggestion, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		out, err := g.next.OptimizeRoutes(ctx, routes)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		g.backoffWait(ctx, "OptimizeRoutes", attempt, err)
	}
	return nil, lastErr
}

// OrganizeEmails delegates to the wrapped gateway with retries.
func (g *Retrying) OrganizeEmails(ctx context.Context, emails []domain.Email) ([]domain.OrganizedEmail, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		out, err := g.next.OrganizeEmails(ctx, emails)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}
		g.backoffWait(ctx, "OrganizeEmails", attempt, err)
	}
	return nil, lastErr
}

func (g *Retrying) backoffWait(ctx context.Context, method string, attempt int, err error) {
	delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
	if g.retries != nil {
		g.retries.Inc()
	}
	g.logger.Warn("assistant gateway retry",
		logx.String("method", method),
		logx.Int("attempt", attempt),
		logx.Duration("delay", delay),
		logx.Err(err),
	)
	sleepWithContext(ctx, delay)
}

func isRetryable(err error) bool {
	if errors.Is(err, apperr.ErrUnavailable) {
		// Garbled output; asking again with the same prompt is hopeless.
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	var ne net.Error
	if errors.As(err, &ne) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	if base <= 0 {
		base = 100 * time.Millisecond
	}
	d := base << (attempt - 1)
	if max > 0 && d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

var _ Gateway = (*Retrying)(nil)
