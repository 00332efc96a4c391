package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"log/slog"
	"regexp"
	"strings"
)

const (
	DefaultBaseAPI = "https://hacker-news.firebaseio.com/v0"
	// CandidateWindow is how many top story ids are considered per run.
	CandidateWindow = 20
	itemPermalink   = "https://news.ycombinator.com/item?id="
)

// Getter performs a GET and returns the body. *fetcher.Fetcher implements it.
type Getter interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// Client is a minimal Hacker News API client.
// Docs: https://github.com/HackerNews/API
type Client struct {
	baseAPI string
	getter  Getter
}

// NewClient creates a new Hacker News client. baseAPI should be something like
// "https://hacker-news.firebaseio.com/v0". If empty, it defaults to the v0 endpoint.
func NewClient(baseAPI string, getter Getter) *Client {
	if strings.TrimSpace(baseAPI) == "" {
		baseAPI = DefaultBaseAPI
	}
	return &Client{
		baseAPI: strings.TrimRight(baseAPI, "/"),
		getter:  getter,
	}
}

// Item mirrors the subset of HN item fields we care about. Missing fields
// decode to their zero values.
type Item struct {
	ID    int    `json:"id"`
	Type  string `json:"type"` // story, job, comment, poll, pollopt
	By    string `json:"by"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
	Time  int64  `json:"time"`
	Score int    `json:"score"`
}

// IsStory reports whether the item is a story.
func (it Item) IsStory() bool {
	return strings.EqualFold(strings.TrimSpace(it.Type), "story")
}

// Permalink returns the item's own url, or its news.ycombinator.com page.
func (it Item) Permalink(id int) string {
	if u := strings.TrimSpace(it.URL); u != "" {
		return u
	}
	return fmt.Sprintf("%s%d", itemPermalink, id)
}

// PlainText returns Text with HTML markup removed.
func (it Item) PlainText() string {
	return stripHTML(it.Text)
}

// TopStoryIDs returns the first CandidateWindow ids of the top stories list.
func (c *Client) TopStoryIDs(ctx context.Context) ([]int, error) {
	body, err := c.getter.Get(ctx, c.baseAPI+"/topstories.json")
	if err != nil {
		return nil, err
	}
	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, fmt.Errorf("hackernews: decode topstories: %w", err)
	}
	if len(ids) > CandidateWindow {
		ids = ids[:CandidateWindow]
	}
	slog.Info("hackernews: fetched top stories", "count", len(ids))
	return ids, nil
}

// Item fetches a single HN item by ID. A "null" body yields the zero Item.
func (c *Client) Item(ctx context.Context, id int) (Item, error) {
	var zero Item
	body, err := c.getter.Get(ctx, fmt.Sprintf("%s/item/%d.json", c.baseAPI, id))
	if err != nil {
		return zero, err
	}
	var it Item
	if err := json.Unmarshal(body, &it); err != nil {
		return zero, fmt.Errorf("hackernews: decode item %d: %w", id, err)
	}
	return it, nil
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`) // best-effort removal

// stripHTML turns HN's simple HTML into plain text.
func stripHTML(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "<p>", "\n")
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.TrimSpace(html.UnescapeString(s))
}
