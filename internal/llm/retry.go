package llm

import (
	"context"
	"fmt"
	"time"
)

// Retry policy defaults. Transient call failures are retried with exponential
// backoff before the caller falls back to its degraded-output path.
const (
	DefaultRetryAttempts = 3
	DefaultRetryBase     = 500 * time.Millisecond
)

// retryClient decorates a Client with a bounded retry policy. Kept orthogonal
// to stage logic: stages see a plain Client.
type retryClient struct {
	inner    Client
	attempts int
	base     time.Duration
}

// WithRetry wraps a client so every Complete call is attempted up to
// `attempts` times with exponential backoff. Context cancellation stops the
// retries immediately.
func WithRetry(inner Client, attempts int, base time.Duration) Client {
	if attempts < 1 {
		attempts = 1
	}
	if base <= 0 {
		base = DefaultRetryBase
	}
	return &retryClient{inner: inner, attempts: attempts, base: base}
}

func (r *retryClient) Complete(ctx context.Context, systemPrompt, userPrompt string, tier ModelTier) (string, error) {
	var lastErr error
	delay := r.base
	for attempt := 0; attempt < r.attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}

		text, err := r.inner.Complete(ctx, systemPrompt, userPrompt, tier)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
	}
	return "", fmt.Errorf("llm call failed after %d attempts: %w", r.attempts, lastErr)
}

func (r *retryClient) Close() error {
	return r.inner.Close()
}
