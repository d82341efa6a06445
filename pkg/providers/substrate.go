// Package providers holds the external service clients used by stage
// executors: text generation, speech synthesis, and the two async video
// providers. All clients share one retry substrate and report usage so jobs
// can account cost.
package providers

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/services"
)

// Usage is what a provider call consumed: the billing units of the provider
// (tokens, characters, credits, seconds), the estimated cost, and the HTTP
// effort behind the call. Executors sum these into the job's cost_usd and
// tokens_used; clients also fold every call into a cumulative per-instance
// counter readable via TotalUsage.
type Usage struct {
	UnitsUsed    float64
	UnitType     string
	CostUSD      float64
	InputTokens  int
	OutputTokens int
	Requests     int
	LatencyMS    int64
}

// Tokens returns the total token count.
func (u Usage) Tokens() int { return u.InputTokens + u.OutputTokens }

// Add accumulates another call's usage. UnitType is carried over when unset;
// mixed-unit sums keep the first unit and the combined cost.
func (u *Usage) Add(other Usage) {
	u.UnitsUsed += other.UnitsUsed
	if u.UnitType == "" {
		u.UnitType = other.UnitType
	}
	u.CostUSD += other.CostUSD
	u.InputTokens += other.InputTokens
	u.OutputTokens += other.OutputTokens
	u.Requests += other.Requests
	u.LatencyMS += other.LatencyMS
}

// usageCounter is the cumulative per-client usage total. The retry loop feeds
// it request counts and latencies; clients feed it units and cost per call.
type usageCounter struct {
	mu    sync.Mutex
	total Usage
}

func (c *usageCounter) record(u Usage) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.total.Add(u)
}

func (c *usageCounter) observe(latency time.Duration) {
	c.record(Usage{Requests: 1, LatencyMS: latency.Milliseconds()})
}

// Total returns a copy of the accumulated usage.
func (c *usageCounter) Total() Usage {
	if c == nil {
		return Usage{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// doRetry executes an HTTP request with bounded retries. 429 and 5xx are
// retried with exponential backoff; a Retry-After header overrides the
// computed delay. Other 4xx fail immediately. build is called per attempt so
// request bodies are fresh. Every attempt is metered on the counter.
func doRetry(ctx context.Context, client *http.Client, retry config.RetrySettings, usage *usageCounter, build func() (*http.Request, error)) (*http.Response, error) {
	var lastErr error
	for attempt := 0; attempt <= retry.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := backoffDelay(retry, attempt-1)
			if ra, ok := retryAfterFrom(lastErr); ok {
				delay = ra
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		req, err := build()
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		start := time.Now()
		resp, err := client.Do(req)
		usage.observe(time.Since(start))
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = services.E(services.KindExternalService, "request failed: %v", err)
			continue
		}

		switch {
		case resp.StatusCode < 400:
			return resp, nil
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = rateLimitError(resp)
		case resp.StatusCode >= 500:
			lastErr = statusError(resp)
		default:
			return nil, statusError(resp)
		}
	}
	return nil, lastErr
}

// backoffDelay computes min(base*2^attempt, max) scaled by a jitter factor in
// [1.1, 1.3].
func backoffDelay(retry config.RetrySettings, attempt int) time.Duration {
	delay := retry.BackoffBase << uint(attempt)
	if delay > retry.BackoffMax || delay <= 0 {
		delay = retry.BackoffMax
	}
	jitter := 1.1 + 0.2*rand.Float64()
	return time.Duration(float64(delay) * jitter)
}

// rateLimitedError carries the server's Retry-After hint through the retry
// loop.
type rateLimitedError struct {
	err        error
	retryAfter time.Duration
}

func (e *rateLimitedError) Error() string { return e.err.Error() }
func (e *rateLimitedError) Unwrap() error { return e.err }

func rateLimitError(resp *http.Response) error {
	err := statusError(resp)
	if secs, convErr := strconv.Atoi(resp.Header.Get("Retry-After")); convErr == nil && secs > 0 {
		return &rateLimitedError{err: err, retryAfter: time.Duration(secs) * time.Second}
	}
	return &rateLimitedError{err: err}
}

func retryAfterFrom(err error) (time.Duration, bool) {
	if rl, ok := err.(*rateLimitedError); ok && rl.retryAfter > 0 {
		return rl.retryAfter, true
	}
	return 0, false
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	_ = resp.Body.Close()

	kind := services.KindExternalService
	if resp.StatusCode == http.StatusTooManyRequests {
		kind = services.KindRateLimited
	}
	return services.E(kind, "%s %s returned %d: %s",
		resp.Request.Method, resp.Request.URL.Path, resp.StatusCode, string(body))
}

// pollUntilDone polls check at the given interval until it reports done,
// fails, or the poll budget runs out.
func pollUntilDone(ctx context.Context, poll config.PollSettings, check func(context.Context) (bool, error)) error {
	deadline := time.Now().Add(poll.MaxPollTime)
	ticker := time.NewTicker(poll.Interval)
	defer ticker.Stop()

	for {
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
		if time.Now().After(deadline) {
			return services.E(services.KindExternalService,
				"provider task did not finish within %s", poll.MaxPollTime)
		}
		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
