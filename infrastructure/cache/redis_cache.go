package cache

import (
	"context"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
	"github.com/vfg2006/vendorhub-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type RedisSummaryCache struct {
	client *redis.Client
}

func NewRedisSummaryCache(addr string, password string, db int) *RedisSummaryCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	return &RedisSummaryCache{client: client}
}

func (c *RedisSummaryCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisSummaryCache) Close() error {
	return c.client.Close()
}

func (c *RedisSummaryCache) Get(ctx context.Context, vendorID string) (*domain.SalesSummary, bool, error) {
	val, err := c.client.Get(ctx, SummaryKey(vendorID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "erro ao ler resumo do cache")
	}

	var summary domain.SalesSummary
	if err := json.Unmarshal(val, &summary); err != nil {
		return nil, false, errors.Wrap(err, "erro ao decodificar resumo do cache")
	}
	return &summary, true, nil
}

func (c *RedisSummaryCache) Set(ctx context.Context, vendorID string, summary *domain.SalesSummary, ttl time.Duration) error {
	if summary == nil || ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(summary)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar resumo")
	}
	return c.client.Set(ctx, SummaryKey(vendorID), payload, ttl).Err()
}

func (c *RedisSummaryCache) Delete(ctx context.Context, vendorID string) error {
	return c.client.Del(ctx, SummaryKey(vendorID)).Err()
}
