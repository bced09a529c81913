package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/smarthub/restaurant-backend/pkg/logging"
)

// RetryClient wraps a Client with bounded exponential backoff for the
// provider's transient overload condition. Every other failure is final.
type RetryClient struct {
	inner      Client
	logger     *logging.Logger
	maxRetries int
	baseDelay  time.Duration

	// sleep waits between attempts; swapped out in tests.
	sleep   func(ctx context.Context, d time.Duration) error
	onRetry func(attempt int, delay time.Duration)
}

// NewRetryClient wraps inner with the default retry budget (3 retries,
// 1s base delay, doubling).
func NewRetryClient(inner Client, logger *logging.Logger) *RetryClient {
	if logger == nil {
		logger = logging.Default()
	}
	return &RetryClient{
		inner:      inner,
		logger:     logger,
		maxRetries: 3,
		baseDelay:  time.Second,
		sleep:      sleepContext,
	}
}

func (c *RetryClient) WithMaxRetries(n int) *RetryClient {
	if n >= 0 {
		c.maxRetries = n
	}
	return c
}

func (c *RetryClient) WithBaseDelay(d time.Duration) *RetryClient {
	if d > 0 {
		c.baseDelay = d
	}
	return c
}

// WithRetryHook registers a callback invoked before each backoff wait.
func (c *RetryClient) WithRetryHook(hook func(attempt int, delay time.Duration)) *RetryClient {
	c.onRetry = hook
	return c
}

// Complete calls the inner client, retrying overload failures with the
// delay doubling each attempt. A response without text is fatal and is
// never retried.
func (c *RetryClient) Complete(ctx context.Context, req Request) (Response, error) {
	delay := c.baseDelay
	for attempt := 0; ; attempt++ {
		resp, err := c.inner.Complete(ctx, req)
		if err == nil {
			if strings.TrimSpace(resp.Text) == "" {
				return Response{}, ErrInvalidResponse
			}
			return resp, nil
		}

		if !IsOverloaded(err) {
			return Response{}, err
		}
		if attempt >= c.maxRetries {
			return Response{}, fmt.Errorf("%w after %d attempts: %w", ErrExhausted, attempt+1, err)
		}

		c.logger.Warn("llm overloaded, backing off",
			"attempt", attempt+1,
			"delay", delay.String(),
			"retries_left", c.maxRetries-attempt,
		)
		if c.onRetry != nil {
			c.onRetry(attempt+1, delay)
		}
		if err := c.sleep(ctx, delay); err != nil {
			return Response{}, fmt.Errorf("llm: retry cancelled: %w", err)
		}
		delay *= 2
	}
}

// sleepContext waits for d, releasing the timer if ctx ends first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
