// Package pipeline turns the Hacker News top list into a NewsDocument,
// substituting synthetic items whenever live retrieval comes up empty.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"ainews-journalist/internal/hackernews"
	"ainews-journalist/internal/model"
	"ainews-journalist/internal/synthetic"
	"ainews-journalist/internal/topic"

	"github.com/google/uuid"
)

const (
	// MaxItems caps the number of relevant stories in a document.
	MaxItems = 5
	// FallbackCount is the number of synthetic items used on fallback.
	FallbackCount = 5
)

// StorySource lists candidate ids and resolves them to items.
// *hackernews.Client implements it.
type StorySource interface {
	TopStoryIDs(ctx context.Context) ([]int, error)
	Item(ctx context.Context, id int) (hackernews.Item, error)
}

// Summarizer optionally rewrites a story into a short description.
// *ai.OpenAIClient implements it.
type Summarizer interface {
	SummarizeItem(ctx context.Context, title, content, language string) (string, error)
}

// Builder runs one retrieval and produces a document.
type Builder struct {
	Source     StorySource
	Summarizer Summarizer // optional
	Language   string     // passed to Summarizer
	Tables     *synthetic.Tables
	Rand       *rand.Rand       // nil uses the global source
	Now        func() time.Time // nil uses time.Now
}

func (b *Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b *Builder) tables() *synthetic.Tables {
	if b.Tables != nil {
		return b.Tables
	}
	return synthetic.DefaultTables
}

// Build returns a document, degrading to an emergency synthetic document if
// Collect fails. The error is non-nil only when synthetic generation fails.
func (b *Builder) Build(ctx context.Context) (model.NewsDocument, error) {
	log := slog.With("run_id", uuid.NewString())
	doc, err := b.collect(ctx, log)
	if err == nil {
		return doc, nil
	}
	log.Error("pipeline: collection failed, using emergency fallback", "error", err)
	doc, err = b.Emergency()
	if err != nil {
		log.Error("pipeline: emergency fallback failed", "error", err)
		return model.NewsDocument{}, err
	}
	return doc, nil
}

// Collect fetches live stories, or synthetic ones with source local_backup when
// none qualify. Unexpected failures are returned rather than recovered here.
func (b *Builder) Collect(ctx context.Context) (model.NewsDocument, error) {
	return b.collect(ctx, slog.Default())
}

// Emergency builds a synthetic-only document with source local_backup_emergency.
func (b *Builder) Emergency() (model.NewsDocument, error) {
	now := b.now()
	items, err := synthetic.Generate(b.tables(), FallbackCount, b.Rand, now)
	if err != nil {
		return model.NewsDocument{}, err
	}
	return model.NewDocument(model.SourceLocalEmergency, items, now), nil
}

func (b *Builder) collect(ctx context.Context, log *slog.Logger) (doc model.NewsDocument, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pipeline: panic during collection: %v", r)
		}
	}()
	if b.Source == nil {
		return model.NewsDocument{}, fmt.Errorf("pipeline: no story source")
	}

	items, err := b.relevantStories(ctx, log)
	if err != nil {
		return model.NewsDocument{}, err
	}
	now := b.now()
	source := model.SourceHackerNews
	if len(items) == 0 {
		log.Warn("pipeline: no relevant stories, using local backup", "count", FallbackCount)
		items, err = synthetic.Generate(b.tables(), FallbackCount, b.Rand, now)
		if err != nil {
			return model.NewsDocument{}, err
		}
		source = model.SourceLocalBackup
	} else {
		log.Info("pipeline: collected relevant stories", "count", len(items))
	}

	doc = model.NewDocument(source, items, now)
	if err := doc.Validate(); err != nil {
		return model.NewsDocument{}, err
	}
	return doc, nil
}

// relevantStories scans candidates in order and stops after MaxItems hits.
// Fetch and decode failures only skip the affected candidate.
func (b *Builder) relevantStories(ctx context.Context, log *slog.Logger) ([]model.NewsItem, error) {
	ids, err := b.Source.TopStoryIDs(ctx)
	if err != nil {
		log.Warn("pipeline: top stories unavailable", "error", err)
	}
	if len(ids) == 0 {
		return nil, ctx.Err()
	}

	out := make([]model.NewsItem, 0, MaxItems)
	seen := make(map[string]struct{}, MaxItems)
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		it, err := b.Source.Item(ctx, id)
		if err != nil {
			log.Warn("pipeline: skipping story", "id", id, "error", err)
			continue
		}
		if !it.IsStory() {
			continue
		}
		title := strings.TrimSpace(it.Title)
		if title == "" {
			log.Debug("pipeline: skipping untitled story", "id", id)
			continue
		}
		body := it.PlainText()
		if !topic.IsRelevant(title, body) {
			continue
		}
		key := strconv.Itoa(id)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, b.newsItem(ctx, log, id, it, title, body))
		if len(out) >= MaxItems {
			break
		}
	}
	return out, nil
}

func (b *Builder) newsItem(ctx context.Context, log *slog.Logger, id int, it hackernews.Item, title, body string) model.NewsItem {
	by := strings.TrimSpace(it.By)
	if by == "" {
		by = "unknown"
	}
	return model.NewsItem{
		ID:       strconv.Itoa(id),
		Title:    title,
		Summary:  b.summary(ctx, log, title, body),
		URL:      it.Permalink(id),
		Score:    it.Score,
		Time:     it.Time,
		By:       by,
		Type:     model.ItemTypeHackerNews,
		Category: topic.CategorizeByTitle(title),
	}
}

func (b *Builder) summary(ctx context.Context, log *slog.Logger, title, body string) string {
	if b.Summarizer != nil {
		s, err := b.Summarizer.SummarizeItem(ctx, title, body, b.Language)
		if err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		if err != nil {
			log.Warn("pipeline: ai summary failed, using excerpt", "title", title, "error", err)
		}
	}
	return topic.Summarize(title, body)
}
