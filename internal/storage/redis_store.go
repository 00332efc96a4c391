package storage

import (
	"bytes"
	"context"
	"errors"

	"ainews-journalist/internal/config"
	"ainews-journalist/internal/model"

	"github.com/redis/go-redis/v9"
)

const DefaultDocumentKey = "news:document:latest"

// NewRedisClient creates a Redis client from configuration.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisStore keeps the latest document under a single key so that other
// processes (the serve API, a site builder) can read it.
type RedisStore struct {
	rdb *redis.Client
	key string
}

func NewRedisStore(rdb *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultDocumentKey
	}
	return &RedisStore{rdb: rdb, key: key}
}

// Save overwrites the stored document with the same bytes FileStore writes.
// No expiry: the key always holds the last successful run.
func (s *RedisStore) Save(ctx context.Context, doc model.NewsDocument) error {
	var buf bytes.Buffer
	if err := model.Encode(&buf, doc); err != nil {
		return err
	}
	return s.rdb.Set(ctx, s.key, buf.Bytes(), 0).Err()
}

func (s *RedisStore) LatestDocument(ctx context.Context) (model.NewsDocument, error) {
	b, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewsDocument{}, ErrNotFound
	}
	if err != nil {
		return model.NewsDocument{}, err
	}
	return model.Decode(bytes.NewReader(b))
}
