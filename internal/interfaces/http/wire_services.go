package http

import (
	"context"
	"time"

	"github.com/civicdesk/civicdesk/internal/infrastructure/ratelimit"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
)

const redisConnectTimeout = 5 * time.Second

// initInfrastructure connects Redis when enabled and builds the repositories.
func (c *Container) initInfrastructure(ctx context.Context) error {
	c.repos = newRepositories(c.db, c.log)

	if !c.cfg.Redis.Enabled {
		c.log.Infow("redis disabled, write rate limiting is off")
		return nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()

	client, err := ratelimit.NewRedisClient(connectCtx, &c.cfg.Redis)
	if err != nil {
		return err
	}
	c.redis = client
	c.log.Infow("Redis connection established successfully", "addr", c.cfg.Redis.GetAddr())

	limiter, err := ratelimit.NewRedisLimiter(client, c.cfg.RateLimit.Requests, c.cfg.RateLimit.Window())
	if err != nil {
		return err
	}
	c.rateLimiter = middleware.NewRateLimiter(limiter, c.log)
	return nil
}
