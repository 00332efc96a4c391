package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"
)

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level"`  // debug, info, warn, error
	LogFormat string `mapstructure:"log_format"` // text or json
}

// HackerNewsConfig controls the upstream story API.
type HackerNewsConfig struct {
	BaseAPI     string `mapstructure:"base_api"`
	MaxRetries  int    `mapstructure:"max_retries"`
	Timeout     string `mapstructure:"timeout"`      // per attempt, e.g. "10s"
	BackoffBase string `mapstructure:"backoff_base"` // first retry wait, doubled per attempt
}

// OutputConfig controls where the document is written.
type OutputConfig struct {
	Path         string `mapstructure:"path"`
	MarkdownPath string `mapstructure:"markdown_path"` // empty disables the digest
	Title        string `mapstructure:"title"`         // digest title, supports {.CurrentDate}
}

// RedisConfig holds redis connection settings.
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Key      string `mapstructure:"key"`
}

// OpenAIConfig enables AI summaries when APIKey is set.
type OpenAIConfig struct {
	APIKey   string `mapstructure:"api_key"`
	Model    string `mapstructure:"model"`
	BaseURL  string `mapstructure:"base_url"`
	Language string `mapstructure:"language"`
}

// ServerConfig is used by the serve command.
type ServerConfig struct {
	Addr            string `mapstructure:"addr"`
	RefreshInterval string `mapstructure:"refresh_interval"`
}

// Config is the top-level configuration structure.
type Config struct {
	App        AppConfig        `mapstructure:"app"`
	HackerNews HackerNewsConfig `mapstructure:"hackernews"`
	Output     OutputConfig     `mapstructure:"output"`
	Redis      RedisConfig      `mapstructure:"redis"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Server     ServerConfig     `mapstructure:"server"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.LogFormat == "" {
		c.App.LogFormat = "text"
	}
	if c.HackerNews.BaseAPI == "" {
		c.HackerNews.BaseAPI = "https://hacker-news.firebaseio.com/v0"
	}
	if c.HackerNews.MaxRetries <= 0 {
		c.HackerNews.MaxRetries = 3
	}
	if c.HackerNews.Timeout == "" {
		c.HackerNews.Timeout = "10s"
	}
	if c.HackerNews.BackoffBase == "" {
		c.HackerNews.BackoffBase = "1s"
	}
	if c.Output.Path == "" {
		c.Output.Path = "ai_news_data.json"
	}
	if c.Output.Title == "" {
		c.Output.Title = "AI 前沿资讯 {.CurrentDate}"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.Key == "" {
		c.Redis.Key = "news:document:latest"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.Language == "" {
		c.OpenAI.Language = "Chinese"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.RefreshInterval == "" {
		c.Server.RefreshInterval = "1h"
	}
}

// Durations parses the duration strings of the HackerNews section.
func (h HackerNewsConfig) Durations() (timeout, backoff time.Duration, err error) {
	if timeout, err = time.ParseDuration(h.Timeout); err != nil {
		return 0, 0, fmt.Errorf("invalid hackernews.timeout: %w", err)
	}
	if backoff, err = time.ParseDuration(h.BackoffBase); err != nil {
		return 0, 0, fmt.Errorf("invalid hackernews.backoff_base: %w", err)
	}
	return timeout, backoff, nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(a.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
