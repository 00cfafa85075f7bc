package redisdb

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client envolve a conexão Redis usada pelo rate limiting dos endpoints
// públicos. Opcional: sem REDIS_URL configurada, Setup retorna nil e o rate
// limiting fica desativado.
type Client struct {
	rdb *redis.Client
}

func Setup() (*Client, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Client{rdb: rdb}, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Incr incrementa o contador da chave e retorna o novo valor.
func (c *Client) Incr(ctx context.Context, key string) (int64, error) {
	return c.rdb.Incr(ctx, key).Result()
}

// Expire define o TTL da chave.
func (c *Client) Expire(ctx context.Context, key string, ttl time.Duration) error {
	return c.rdb.Expire(ctx, key, ttl).Err()
}
