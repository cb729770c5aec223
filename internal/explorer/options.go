package explorer

import (
	"context"
	"time"

	"github.com/dbsmedya/autoprobe/internal/config"
	"github.com/dbsmedya/autoprobe/internal/logger"
)

// Option configures an Explorer.
type Option func(*Explorer)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logger.Logger) Option {
	return func(e *Explorer) {
		e.log = l
	}
}

// WithMaxAttempts bounds the attempts per query, counting rate-limited ones.
func WithMaxAttempts(n int) Option {
	return func(e *Explorer) {
		e.maxAttempts = n
	}
}

// WithRateLimitWait sets the pause after a 429 response.
func WithRateLimitWait(d time.Duration) Option {
	return func(e *Explorer) {
		e.rateLimitWait = d
	}
}

// WithRequestDelay sets the pause after each prefix query.
func WithRequestDelay(d time.Duration) Option {
	return func(e *Explorer) {
		e.requestDelay = d
	}
}

// WithSleeper replaces the pause implementation.
func WithSleeper(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Explorer) {
		e.sleep = fn
	}
}

// OptionsFromConfig translates probe settings into options.
func OptionsFromConfig(p config.ProbeConfig) []Option {
	return []Option{
		WithMaxAttempts(p.MaxAttempts),
		WithRateLimitWait(p.RateLimitWait()),
		WithRequestDelay(p.RequestDelay()),
	}
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
