package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/showforge/showforge/pkg/config"
	"github.com/showforge/showforge/pkg/services"
)

func fastRetry(maxRetries int) config.RetrySettings {
	return config.RetrySettings{
		MaxRetries:  maxRetries,
		BackoffBase: time.Millisecond,
		BackoffMax:  5 * time.Millisecond,
	}
}

func buildGet(t *testing.T, url string) func() (*http.Request, error) {
	t.Helper()
	return func() (*http.Request, error) {
		return http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	}
}

func TestDoRetry_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	resp, err := doRetry(context.Background(), srv.Client(), fastRetry(3), nil, buildGet(t, srv.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int32(3), calls.Load())
}

func TestDoRetry_ClientErrorFailsFast(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	_, err := doRetry(context.Background(), srv.Client(), fastRetry(3), nil, buildGet(t, srv.URL))
	require.Error(t, err)

	assert.Equal(t, int32(1), calls.Load(), "4xx must not be retried")
	assert.Equal(t, services.KindExternalService, services.KindOf(err))
}

func TestDoRetry_RateLimitExhaustion(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := doRetry(context.Background(), srv.Client(), fastRetry(2), nil, buildGet(t, srv.URL))
	require.Error(t, err)

	assert.Equal(t, int32(3), calls.Load(), "initial attempt plus two retries")
	assert.Equal(t, services.KindRateLimited, services.KindOf(err))
	assert.True(t, services.Retryable(err))
}

func TestDoRetry_RetryAfterOverridesBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	start := time.Now()
	resp, err := doRetry(context.Background(), srv.Client(), fastRetry(1), nil, buildGet(t, srv.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	// The hinted one-second wait dwarfs the millisecond backoff.
	assert.GreaterOrEqual(t, time.Since(start), time.Second)
	assert.Equal(t, int32(2), calls.Load())
}

func TestDoRetry_ContextCancelledDuringBackoff(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := doRetry(ctx, srv.Client(), fastRetry(2), nil, buildGet(t, srv.URL))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBackoffDelay_CappedWithJitter(t *testing.T) {
	retry := config.RetrySettings{BackoffBase: time.Second, BackoffMax: 4 * time.Second}

	for attempt := 0; attempt < 10; attempt++ {
		d := backoffDelay(retry, attempt)
		assert.GreaterOrEqual(t, d, time.Duration(1.1*float64(time.Second)))
		assert.LessOrEqual(t, d, time.Duration(1.3*float64(4*time.Second)))
	}
}

func TestPollUntilDone(t *testing.T) {
	poll := config.PollSettings{Interval: 5 * time.Millisecond, MaxPollTime: time.Second}

	t.Run("finishes", func(t *testing.T) {
		n := 0
		err := pollUntilDone(context.Background(), poll, func(context.Context) (bool, error) {
			n++
			return n >= 3, nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("check error stops polling", func(t *testing.T) {
		wantErr := services.E(services.KindExternalService, "task failed")
		err := pollUntilDone(context.Background(), poll, func(context.Context) (bool, error) {
			return false, wantErr
		})
		assert.Equal(t, wantErr, err)
	})

	t.Run("budget exhausted", func(t *testing.T) {
		short := config.PollSettings{Interval: 5 * time.Millisecond, MaxPollTime: 20 * time.Millisecond}
		err := pollUntilDone(context.Background(), short, func(context.Context) (bool, error) {
			return false, nil
		})
		require.Error(t, err)
		assert.Equal(t, services.KindExternalService, services.KindOf(err))
	})

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := pollUntilDone(ctx, poll, func(context.Context) (bool, error) {
			return false, nil
		})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestUsage_Accumulation(t *testing.T) {
	var u Usage
	u.Add(Usage{CostUSD: 0.5, InputTokens: 100, OutputTokens: 50, UnitsUsed: 150, UnitType: "tokens"})
	u.Add(Usage{CostUSD: 0.25, InputTokens: 10, OutputTokens: 5, UnitsUsed: 15, Requests: 2, LatencyMS: 40})

	assert.InDelta(t, 0.75, u.CostUSD, 0.0001)
	assert.Equal(t, 165, u.Tokens())
	assert.InDelta(t, 165, u.UnitsUsed, 0.0001)
	assert.Equal(t, "tokens", u.UnitType)
	assert.Equal(t, 2, u.Requests)
	assert.EqualValues(t, 40, u.LatencyMS)
}

func TestDoRetry_MetersEveryAttempt(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var counter usageCounter
	resp, err := doRetry(context.Background(), srv.Client(), fastRetry(3), &counter, buildGet(t, srv.URL))
	require.NoError(t, err)
	defer resp.Body.Close()

	total := counter.Total()
	assert.Equal(t, 3, total.Requests, "retried attempts count individually")
	assert.GreaterOrEqual(t, total.LatencyMS, int64(0))
}
