package bank

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cardnest/payment-gateway/internal/application"
	"github.com/cardnest/payment-gateway/internal/config"
)

// RetryBankClient decorates a BankClient with a bounded retry policy.
// Only the transient-unavailable signal is retried; rejected requests and
// declined payments are surfaced immediately. The retry configuration is
// read-only after construction.
type RetryBankClient struct {
	inner      application.BankClient
	baseDelay  time.Duration
	maxRetries int
	logger     *slog.Logger
}

func NewRetryBankClient(inner application.BankClient, cfg config.RetryConfig, logger *slog.Logger) application.BankClient {
	return &RetryBankClient{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// Authorize attempts the call once plus up to maxRetries additional
// times, waiting baseDelay * 2^n before retry n. The waits honor ctx so
// cancellation aborts the loop promptly.
func (r *RetryBankClient) Authorize(ctx context.Context, req application.BankAuthorizationRequest) (*application.BankAuthorizationResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := r.inner.Authorize(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries {
			delay := r.backoff(attempt)
			r.logger.Warn("bank unavailable, retrying",
				"attempt", attempt+1,
				"max_retries", r.maxRetries,
				"delay", delay,
			)
			if err := sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

func isRetryable(err error) bool {
	if bankErr, ok := application.IsBankError(err); ok {
		return bankErr.IsRetryable()
	}
	return false
}

// backoff returns baseDelay * 2^(attempt+1): 200ms, 400ms, 800ms at the
// default 100ms base. No jitter.
func (r *RetryBankClient) backoff(attempt int) time.Duration {
	return r.baseDelay * time.Duration(1<<(attempt+1))
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
