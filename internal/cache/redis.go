package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// redisClient lists the methods NewRedisClient needs; tests override
// redisNewClient to return a fake.
type redisClient interface {
	Cache
	Ping(ctx context.Context) *redis.StatusCmd
}

var redisNewClient = func(opt *redis.Options) redisClient {
	return redis.NewClient(opt)
}

// NewRedisClient builds a redis client, pings it once and returns it as a
// Cache. password may be empty.
func NewRedisClient(addr string, password string, db int) (Cache, error) {
	client := redisNewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
