package cmd

import (
	"log/slog"
	"strings"

	"ainews-journalist/internal/ai"
	"ainews-journalist/internal/config"
	"ainews-journalist/internal/fetcher"
	"ainews-journalist/internal/hackernews"
	"ainews-journalist/internal/newsletter"
	"ainews-journalist/internal/pipeline"
	"ainews-journalist/internal/storage"

	"github.com/redis/go-redis/v9"
)

// newBuilder wires the fetcher, HN client and optional AI summarizer. A
// summarizer that cannot be built is skipped; only bad durations fail.
func newBuilder(cfg config.Config) (*pipeline.Builder, error) {
	timeout, backoff, err := cfg.HackerNews.Durations()
	if err != nil {
		return nil, err
	}
	f := fetcher.New(fetcher.Options{
		MaxRetries: cfg.HackerNews.MaxRetries,
		Timeout:    timeout,
		BaseDelay:  backoff,
	})
	b := &pipeline.Builder{
		Source:   hackernews.NewClient(cfg.HackerNews.BaseAPI, f),
		Language: cfg.OpenAI.Language,
	}
	if strings.TrimSpace(cfg.OpenAI.APIKey) != "" {
		s, err := ai.NewOpenAI(ai.Config{APIKey: cfg.OpenAI.APIKey, Model: cfg.OpenAI.Model, BaseURL: cfg.OpenAI.BaseURL})
		if err != nil {
			slog.Warn("ai summaries disabled", "error", err)
		} else {
			slog.Info("ai summaries enabled", "model", cfg.OpenAI.Model)
			b.Summarizer = s
		}
	}
	return b, nil
}

// secondarySinks are the optional outputs besides the JSON file. The returned
// redis client is nil unless redis is enabled; callers close it.
func secondarySinks(cfg config.Config) ([]storage.Sink, *redis.Client) {
	var sinks []storage.Sink
	if p := strings.TrimSpace(cfg.Output.MarkdownPath); p != "" {
		sinks = append(sinks, &newsletter.FileStore{Path: p, Title: cfg.Output.Title})
	}
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = storage.NewRedisClient(cfg.Redis)
		sinks = append(sinks, storage.NewRedisStore(rdb, cfg.Redis.Key))
	}
	return sinks, rdb
}
