package redis

import (
	"github.com/redis/go-redis/v9"

	"getsbiplay.ru/store/api/pkg/global"
)

// NewClient builds the single Redis handle the process reuses. The caller
// owns it and closes it on shutdown.
func NewClient() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     global.GetEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
		Password: global.GetEnvOrDefault("REDIS_PASSWORD", ""),
		DB:       0,
		Protocol: 2,
	})
}
