package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	auditApp "zelo/internal/application/audit"
	"zelo/internal/infrastructure/auth"
	"zelo/internal/infrastructure/config"
	"zelo/internal/infrastructure/email"
	"zelo/internal/infrastructure/ratelimit"
	"zelo/internal/infrastructure/storage"
	"zelo/internal/interfaces/http/middleware"
	"zelo/internal/shared/db"
	"zelo/internal/shared/logger"
)

// Container wires repositories, use cases, handlers and middleware together
// and owns the resources that need closing on shutdown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	jwtSvc         *auth.JWTService
	emailSvc       *email.SMTPEmailService
	photoStore     storage.PhotoStore
	limiter        *ratelimit.PolicyLimiter
}

func NewContainer(ctx context.Context, cfg *config.Config, gdb *gorm.DB, log logger.Interface) (*Container, error) {
	c := &Container{
		db:  gdb,
		cfg: cfg,
		log: log,
	}

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, log)

	c.emailSvc = email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		PortalURL:   cfg.SupplierPortal.BaseURL,
	})

	photoStore, err := storage.NewS3PhotoStore(ctx, storage.S3Config{
		Bucket:    cfg.Storage.Bucket,
		KeyPrefix: cfg.Storage.KeyPrefix,
		Region:    cfg.Storage.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize photo store: %w", err)
	}
	c.photoStore = photoStore

	c.limiter = c.buildRateLimiter()

	c.repos = buildRepositories(gdb)

	auditor := auditApp.NewSecurityAuditor(c.repos.auditEvents, log)
	txManager := db.NewTransactionManager(gdb)

	c.ucs = buildUseCases(c.repos, auditor, c.limiter, c.emailSvc, c.photoStore, txManager, log)
	c.hdlrs = buildHandlers(c.ucs, log)

	return c, nil
}

// buildRateLimiter selects the limiter backend. Redis keeps counters shared
// across replicas; the in-memory limiter is enough for a single instance.
func (c *Container) buildRateLimiter() *ratelimit.PolicyLimiter {
	policy := ratelimit.Config{
		Limit:  c.cfg.SupplierPortal.RateLimit,
		Window: time.Duration(c.cfg.SupplierPortal.RateWindowSeconds) * time.Second,
	}

	if c.cfg.SupplierPortal.RateLimiterBackend == "redis" {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		return ratelimit.NewPolicyLimiter(ratelimit.NewRedisRateLimiter(c.redis), policy)
	}

	return ratelimit.NewPolicyLimiter(ratelimit.NewMemoryRateLimiter(), policy)
}

// Engine returns the configured gin engine. SetupRoutes must have run first.
func (c *Container) Engine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources held by the container.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
