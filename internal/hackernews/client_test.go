package hackernews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ainews-journalist/internal/fetcher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSleep(context.Context, time.Duration) error { return nil }

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/v0/", fetcher.New(fetcher.Options{MaxRetries: 2, Sleep: noSleep}))
}

func TestTopStoryIDsTruncatesToWindow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/topstories.json", r.URL.Path)
		ids := make([]string, 35)
		for i := range ids {
			ids[i] = fmt.Sprint(1000 + i)
		}
		fmt.Fprintf(w, "[%s]", strings.Join(ids, ","))
	})
	ids, err := c.TopStoryIDs(context.Background())
	require.NoError(t, err)
	require.Len(t, ids, CandidateWindow)
	assert.Equal(t, 1000, ids[0])
	assert.Equal(t, 1019, ids[19])
}

func TestTopStoryIDsMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	})
	ids, err := c.TopStoryIDs(context.Background())
	assert.Error(t, err)
	assert.Empty(t, ids)
}

func TestTopStoryIDsUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	_, err := c.TopStoryIDs(context.Background())
	assert.True(t, errors.Is(err, fetcher.ErrExhausted))
}

func TestItemDefaultsMissingFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/item/42.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":42,"type":"story","title":"Show HN: a transformer in 100 lines"}`))
	})
	it, err := c.Item(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, it.IsStory())
	assert.Equal(t, "", it.Text)
	assert.Equal(t, "", it.By)
	assert.Equal(t, 0, it.Score)
	assert.Equal(t, "https://news.ycombinator.com/item?id=42", it.Permalink(42))
}

func TestItemNullBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})
	it, err := c.Item(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, it.IsStory())
}

func TestItemMalformed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})
	_, err := c.Item(context.Background(), 7)
	assert.Error(t, err)
}

func TestPlainText(t *testing.T) {
	it := Item{Text: `I built a <i>neural network</i> &amp; trained it.<p>See <a href="https://x.y">here</a>.`}
	assert.Equal(t, "I built a neural network & trained it.\nSee here.", it.PlainText())
	assert.Equal(t, "https://x.y/z", Item{URL: " https://x.y/z "}.Permalink(1))
}
