package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/middleware"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, wires them together and releases them in Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares; rateLimiter is nil when Redis is disabled
	rateLimiter *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(ctx); err != nil {
		return nil, err
	}
	c.ucs = newUseCases(c.repos, c.db, c.cfg, c.log)

	hdlrs, err := newHandlers(c.ucs, c.db, c.cfg, c.log)
	if err != nil {
		c.Shutdown()
		return nil, err
	}
	c.hdlrs = hdlrs

	return c, nil
}

// Shutdown releases connections owned by the container. The database is
// owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
		c.redis = nil
	}
}

func (c *Container) writeLimit() gin.HandlerFunc {
	if c.rateLimiter == nil {
		return nil
	}
	return c.rateLimiter.Limit()
}
