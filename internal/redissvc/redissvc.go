package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisService owns the client handed to collaborators that buffer
// best-effort data in Redis.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

// Connect dials addr and verifies the connection.
func Connect(addr string) (*RedisService, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisService{rdb: rdb, ctx: ctx}, nil
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
