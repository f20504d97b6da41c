package db

import (
	"context"

	"github.com/samko5sam/webapps/utils/log"

	"github.com/go-redis/redis/v8"
)

// RedisConfig is connection config for redis.
type RedisConfig struct {
	Address  string // redis address
	Password string // redis password
	DB       int    // redis db
}

var redisClient *redis.Client

// NewRedis create new redis connection, exit when facing any error.
func NewRedis(ctx context.Context, conf *RedisConfig) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     conf.Address,
		Password: conf.Password,
		DB:       conf.DB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.NewEntry(err).Fatal("Redis connect error")
	}
}

// GetRedis returns redis connection, exit when not connected.
func GetRedis() *redis.Client {
	if redisClient == nil {
		log.New().Fatal("Redis not init")
	}
	return redisClient
}
