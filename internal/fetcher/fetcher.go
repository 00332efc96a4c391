// Package fetcher performs HTTP GETs with bounded retries and exponential backoff.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ErrExhausted is wrapped by the error returned once every attempt failed.
var ErrExhausted = errors.New("fetcher: retries exhausted")

const (
	DefaultMaxRetries = 3
	DefaultTimeout    = 10 * time.Second
	DefaultBaseDelay  = time.Second
	// MaxBackoff caps a single wait between attempts.
	MaxBackoff = 5 * time.Minute
)

// Options configures a Fetcher. Zero values fall back to the defaults.
type Options struct {
	MaxRetries int
	Timeout    time.Duration
	BaseDelay  time.Duration
	HTTPClient *http.Client
	// Sleep waits between attempts; tests replace it to avoid real delays.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Fetcher is the single point of I/O fallibility for the pipeline.
type Fetcher struct {
	maxRetries int
	baseDelay  time.Duration
	client     *http.Client
	sleep      func(ctx context.Context, d time.Duration) error
}

func New(opts Options) *Fetcher {
	if opts.MaxRetries <= 0 {
		opts.MaxRetries = DefaultMaxRetries
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.BaseDelay <= 0 {
		opts.BaseDelay = DefaultBaseDelay
	}
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepCtx
	}
	return &Fetcher{
		maxRetries: opts.MaxRetries,
		baseDelay:  opts.BaseDelay,
		client:     client,
		sleep:      sleep,
	}
}

// Backoff returns the wait after the attempt with the given zero-based index,
// capped at MaxBackoff.
func (f *Fetcher) Backoff(attempt int) time.Duration {
	d := f.baseDelay
	for i := 0; i < attempt; i++ {
		if d >= MaxBackoff/2 {
			return MaxBackoff
		}
		d *= 2
	}
	return min(d, MaxBackoff)
}

// Get fetches url and returns the response body. Transport errors and non-2xx
// statuses are retried; after the last attempt the error wraps ErrExhausted.
func (f *Fetcher) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < f.maxRetries; attempt++ {
		slog.Debug("fetcher: requesting", "url", url, "attempt", attempt+1)
		body, err := f.once(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		slog.Warn("fetcher: attempt failed", "url", url, "attempt", attempt+1, "max", f.maxRetries, "error", err)
		if attempt == f.maxRetries-1 {
			break
		}
		wait := f.Backoff(attempt)
		slog.Info("fetcher: backing off", "url", url, "wait", wait)
		if err := f.sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("fetcher: %s: %w", url, err)
		}
	}
	slog.Error("fetcher: all attempts failed", "url", url, "attempts", f.maxRetries)
	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrExhausted, url, f.maxRetries, lastErr)
}

func (f *Fetcher) once(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
