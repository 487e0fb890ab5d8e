package container

import (
	"context"
	"fmt"
	"time"

	"bookshelf-backend/internal/config"
	infraCache "bookshelf-backend/internal/infrastructure/cache"
	"bookshelf-backend/internal/infrastructure/database"
	"bookshelf-backend/internal/sessions"
	"bookshelf-backend/pkg/cache"
	"bookshelf-backend/pkg/logger"
	"bookshelf-backend/pkg/sessiontoken"

	"bookshelf-backend/internal/domains/account"
	accountHandler "bookshelf-backend/internal/domains/account/handler"
	accountRepo "bookshelf-backend/internal/domains/account/repository"
	accountService "bookshelf-backend/internal/domains/account/service"

	"bookshelf-backend/internal/domains/catalog"
	catalogHandler "bookshelf-backend/internal/domains/catalog/handler"
	catalogRepo "bookshelf-backend/internal/domains/catalog/repository"
	catalogService "bookshelf-backend/internal/domains/catalog/service"
)

// Container chứa toàn bộ dependencies của application
// Root của dependency graph, init theo thứ tự:
// config -> infrastructure -> repositories -> services -> handlers
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	Config       *config.Config
	DB           *database.PostgresDB
	Cache        cache.Cache
	TokenManager *sessiontoken.Manager
	SessionStore sessions.Store

	// ========================================
	// REPOSITORY LAYER
	// ========================================
	AccountRepo account.Repository
	CatalogRepo catalog.Repository

	// ========================================
	// SERVICE LAYER
	// ========================================
	AccountService account.Service
	CatalogService catalog.Service

	// ========================================
	// HANDLER LAYER
	// ========================================
	AccountHandler *accountHandler.AccountHandler
	CatalogHandler *catalogHandler.CatalogHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
func NewContainer() (*Container, error) {
	c := &Container{}

	// STEP 1: CONFIGURATION
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// STEP 2: DATABASE
	c.DB = database.NewPostgresDB(&database.DBConfig{
		Host:           cfg.Database.Host,
		Port:           cfg.Database.Port,
		Username:       cfg.Database.User,
		Password:       cfg.Database.Password,
		DBName:         cfg.Database.Database,
		SSLMode:        cfg.Database.SSLMode,
		MaxConns:       int32(cfg.Database.MaxConns),
		MinConns:       int32(cfg.Database.MinConns),
		MaxRetries:     5,
		RetryDelay:     time.Second,
		ConnectTimeout: 10 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// STEP 3: REDIS (cache + session store dùng chung connection)
	redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect redis: %w", err)
	}
	c.Cache = redisCache

	c.TokenManager = sessiontoken.NewManager(cfg.Session.Secret)
	if rc, ok := redisCache.(*infraCache.RedisCache); ok {
		c.SessionStore = sessions.NewRedisStore(rc.Client(), c.TokenManager, cfg.Session.TTL)
	} else {
		return nil, fmt.Errorf("unexpected cache implementation")
	}

	// STEP 4: REPOSITORIES
	c.AccountRepo = accountRepo.NewPostgresRepository(c.DB.Pool)
	c.CatalogRepo = catalogRepo.NewPostgresRepository(c.DB.Pool, c.Cache)

	// STEP 5: SERVICES
	c.AccountService = accountService.NewAccountService(c.AccountRepo, c.SessionStore)
	c.CatalogService = catalogService.NewCatalogService(c.CatalogRepo)

	// STEP 6: HANDLERS
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.CatalogHandler = catalogHandler.NewCatalogHandler(c.CatalogService)

	logger.Info("container initialized", map[string]interface{}{
		"environment": cfg.App.Environment,
	})

	return c, nil
}

// Cleanup đóng các connections khi shutdown
func (c *Container) Cleanup() {
	if c.DB != nil {
		c.DB.Close()
	}
	if rc, ok := c.Cache.(*infraCache.RedisCache); ok {
		if err := rc.Close(); err != nil {
			logger.Error("close redis", err)
		}
	}
}
