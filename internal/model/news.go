package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// Source tells downstream consumers which path produced a document.
type Source string

const (
	SourceHackerNews     Source = "hn_news"
	SourceLocalBackup    Source = "local_backup"
	SourceLocalEmergency Source = "local_backup_emergency"
)

// Item types.
const (
	ItemTypeHackerNews = "hn_news"
	ItemTypeLocal      = "local_news"
)

// UpdateTimeLayout formats NewsDocument.UpdateTime (local time).
const UpdateTimeLayout = "2006-01-02 15:04"

// DefaultFileName is the file name downstream sites expect.
const DefaultFileName = "ai_news_data.json"

var ErrInvalidDocument = errors.New("invalid news document")

// NewsItem is one entry of the published document. Field order is the
// serialized key order and must stay stable.
type NewsItem struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Score    int    `json:"score"`
	Time     int64  `json:"time"`
	By       string `json:"by"`
	Type     string `json:"type"`
	Category string `json:"category"`
}

// NewsDocument is the artifact handed to the persistence sinks.
type NewsDocument struct {
	UpdateTime string     `json:"update_time"`
	TotalNews  int        `json:"total_news"`
	Source     Source     `json:"source"`
	News       []NewsItem `json:"news"`
}

// NewDocument wraps items with the local update time and their count.
func NewDocument(source Source, items []NewsItem, now time.Time) NewsDocument {
	if items == nil {
		items = []NewsItem{}
	}
	return NewsDocument{
		UpdateTime: now.Local().Format(UpdateTimeLayout),
		TotalNews:  len(items),
		Source:     source,
		News:       items,
	}
}

// Validate checks the structural invariants downstream renderers rely on.
func (d NewsDocument) Validate() error {
	if d.TotalNews != len(d.News) {
		return fmt.Errorf("%w: total_news=%d but %d items", ErrInvalidDocument, d.TotalNews, len(d.News))
	}
	seen := make(map[string]struct{}, len(d.News))
	for i, it := range d.News {
		if strings.TrimSpace(it.Title) == "" {
			return fmt.Errorf("%w: item %d has empty title", ErrInvalidDocument, i)
		}
		if strings.TrimSpace(it.Summary) == "" {
			return fmt.Errorf("%w: item %d has empty summary", ErrInvalidDocument, i)
		}
		if _, dup := seen[it.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidDocument, it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return nil
}

// Preview returns at most n leading items.
func (d NewsDocument) Preview(n int) []NewsItem {
	if n < 0 || n > len(d.News) {
		n = len(d.News)
	}
	return d.News[:n]
}

// Encode writes doc as indented JSON. Non-ASCII text is kept literal.
func Encode(w io.Writer, doc NewsDocument) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Decode reads a document previously written by Encode.
func Decode(r io.Reader) (NewsDocument, error) {
	var doc NewsDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return NewsDocument{}, err
	}
	return doc, nil
}
