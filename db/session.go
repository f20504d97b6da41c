package db

import (
	"context"

	"github.com/samko5sam/webapps/utils/log"

	"github.com/go-redis/redis/v8"
	"github.com/rbcervilla/redisstore/v8"
)

// SessionConfig is connection config for session.
type SessionConfig struct {
	RedisClient *redis.Client // redis client for session
	Prefix      string        // session prefix in redis
}

var sessionClient *redisstore.RedisStore

// NewSession create new session store, exit when facing any error.
func NewSession(ctx context.Context, conf *SessionConfig) {
	var err error
	sessionClient, err = redisstore.NewRedisStore(ctx, conf.RedisClient)
	if err != nil {
		log.NewEntry(err).Fatal("Redis store error")
	}
	sessionClient.KeyPrefix(conf.Prefix)
}

// GetSession returns session store, exit when not connected.
func GetSession() *redisstore.RedisStore {
	if sessionClient == nil {
		log.New().Fatal("Session not init")
	}
	return sessionClient
}
