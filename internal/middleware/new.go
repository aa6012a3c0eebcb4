package middleware

import (
	"lungtracker-srv/config"
	"lungtracker-srv/pkg/log"
	"lungtracker-srv/pkg/redis"
	"lungtracker-srv/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	redis      redis.IRedis
	config     *config.Config
}

// New creates the middleware set. redisClient may be nil; rate limiting is
// then disabled.
func New(l log.Logger, jwtManager scope.Manager, redisClient redis.IRedis, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		redis:      redisClient,
		config:     cfg,
	}
}
