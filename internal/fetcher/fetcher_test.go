package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedSleeps struct {
	waits []time.Duration
}

func (r *recordedSleeps) sleep(_ context.Context, d time.Duration) error {
	r.waits = append(r.waits, d)
	return nil
}

func TestGetRetriesThenSucceeds(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[1,2,3]`))
	}))
	defer srv.Close()

	rec := &recordedSleeps{}
	f := New(Options{Sleep: rec.sleep})
	body, err := f.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, `[1,2,3]`, string(body))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, rec.waits)
}

func TestGetExhausted(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	rec := &recordedSleeps{}
	f := New(Options{MaxRetries: 3, Sleep: rec.sleep})
	body, err := f.Get(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Nil(t, body)
	assert.True(t, errors.Is(err, ErrExhausted))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	// no wait after the final attempt
	assert.Len(t, rec.waits, 2)
}

func TestGetConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL
	srv.Close()

	rec := &recordedSleeps{}
	f := New(Options{MaxRetries: 2, Sleep: rec.sleep})
	_, err := f.Get(context.Background(), url)
	assert.ErrorIs(t, err, ErrExhausted)
	assert.Equal(t, []time.Duration{time.Second}, rec.waits)
}

func TestGetSuccessFirstTryDoesNotSleep(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	rec := &recordedSleeps{}
	f := New(Options{Sleep: rec.sleep})
	_, err := f.Get(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Empty(t, rec.waits)
}

func TestBackoffDoubles(t *testing.T) {
	f := New(Options{BaseDelay: 10 * time.Millisecond})
	assert.Equal(t, 10*time.Millisecond, f.Backoff(0))
	assert.Equal(t, 20*time.Millisecond, f.Backoff(1))
	assert.Equal(t, 40*time.Millisecond, f.Backoff(2))
}

func TestBackoffIsCapped(t *testing.T) {
	f := New(Options{BaseDelay: time.Second})
	for _, attempt := range []int{9, 34, 63, 64, 200} {
		assert.Equal(t, MaxBackoff, f.Backoff(attempt), "attempt %d", attempt)
	}
	assert.Equal(t, 256*time.Second, f.Backoff(8))
}

func TestGetStopsOnCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	f := New(Options{BaseDelay: time.Hour, Sleep: func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}})
	_, err := f.Get(ctx, srv.URL)
	assert.ErrorIs(t, err, context.Canceled)
}
