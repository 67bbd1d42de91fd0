package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bernhaaard/mental-math-trainer-sub000/internal/domain"
	"github.com/bernhaaard/mental-math-trainer-sub000/internal/ports"
)

var _ ports.IRankingCache = (*Cache)(nil)

// Cache реализует ports.IRankingCache через Redis. Ключ — пара чисел с ограничениями, значение — ранжирование в JSON.
type Cache struct {
	cli    *Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewCache возвращает кэш ранжирований. Префикс и TTL берутся из конфига.
func NewCache(cli *Client, cfg *Config, log *slog.Logger) *Cache {
	c := &Cache{cli: cli, log: log}
	if cfg != nil {
		c.prefix = cfg.KeyPrefix
		c.ttl = cfg.TTL
	}
	return c
}

// Get возвращает ранжирование по ключу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, key string) (*domain.MethodRanking, bool, error) {
	b, err := c.cli.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) { // ключа нет
			return nil, false, nil
		}
		c.log.Debug("cache get failed", "key", key, "error", err)
		return nil, false, err
	}
	var ranking domain.MethodRanking
	if err := json.Unmarshal(b, &ranking); err != nil {
		c.log.Debug("cache decode failed", "key", key, "error", err)
		return nil, false, fmt.Errorf("cache decode value: %w", err)
	}
	return &ranking, true, nil
}

// Set сохраняет ранжирование по ключу. Ключи уникальны, дубликаты перезаписываются.
func (c *Cache) Set(ctx context.Context, key string, ranking *domain.MethodRanking) error {
	b, err := json.Marshal(ranking)
	if err != nil {
		return fmt.Errorf("cache encode value: %w", err)
	}
	if err := c.cli.Set(ctx, c.prefix+key, b, c.ttl).Err(); err != nil {
		c.log.Debug("cache set failed", "key", key, "error", err)
		return err
	}
	return nil
}
