package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"giftcard-backend/internal/config"
	infraCache "giftcard-backend/internal/infrastructure/cache"
	"giftcard-backend/internal/infrastructure/database"
	"giftcard-backend/pkg/cache"

	adminHandler "giftcard-backend/internal/domains/admin/handler"
	adminService "giftcard-backend/internal/domains/admin/service"
	giftcardHandler "giftcard-backend/internal/domains/giftcard/handler"
	giftcardModel "giftcard-backend/internal/domains/giftcard/model"
	giftcardRepo "giftcard-backend/internal/domains/giftcard/repository"
	giftcardService "giftcard-backend/internal/domains/giftcard/service"
	rateHandler "giftcard-backend/internal/domains/rate/handler"
	rateModel "giftcard-backend/internal/domains/rate/model"
	rateRepo "giftcard-backend/internal/domains/rate/repository"
	rateService "giftcard-backend/internal/domains/rate/service"
	systemHandler "giftcard-backend/internal/domains/system/handler"
	tradeHandler "giftcard-backend/internal/domains/trade/handler"
	tradeModel "giftcard-backend/internal/domains/trade/model"
	tradeRepo "giftcard-backend/internal/domains/trade/repository"
	tradeService "giftcard-backend/internal/domains/trade/service"
	userModel "giftcard-backend/internal/domains/user/model"
	userRepo "giftcard-backend/internal/domains/user/repository"
	userService "giftcard-backend/internal/domains/user/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the API process.
type Container struct {
	// Infrastructure
	Config *config.Config
	DB     *database.MongoDB
	Cache  cache.Cache
	redis  *infraCache.RedisCache

	// Repositories
	UserRepo     userRepo.RepositoryInterface
	GiftcardRepo giftcardRepo.RepositoryInterface
	RateRepo     rateRepo.RepositoryInterface
	TradeRepo    tradeRepo.RepositoryInterface

	// Services
	UserService     userService.ServiceInterface
	GiftcardService giftcardService.ServiceInterface
	RateService     rateService.ServiceInterface
	TradeService    tradeService.ServiceInterface
	AdminService    adminService.ServiceInterface

	// Handlers
	GiftcardHandler *giftcardHandler.GiftcardHandler
	RateHandler     *rateHandler.RateHandler
	TradeHandler    *tradeHandler.TradeHandler
	AdminHandler    *adminHandler.AdminHandler
	SystemHandler   *systemHandler.SystemHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainer builds the dependency graph in order:
// config, infrastructure, repositories, services, handlers.
//
// A database that cannot be reached does not stop the process: storage
// endpoints answer 500 and GET /test reports the state.
func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI Container...")

	// STEP 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	log.Info().Str("env", cfg.App.Environment).Msg("Config loaded")

	// STEP 2: database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewMongoDB(dbConfig)
	if err := db.Connect(context.Background()); err != nil {
		log.Error().Err(err).Msg("MongoDB unavailable, continuing without storage")
	}

	// STEP 3: cache
	appCache, redis := newCache(cfg.Redis)

	// STEP 4: repositories, services, handlers
	c := Build(cfg, db, appCache)
	c.redis = redis

	log.Info().Msg("DI Container initialized successfully")
	return c, nil
}

// Build wires repositories, services and handlers over infrastructure that
// is already open. db may be unconnected.
func Build(cfg *config.Config, db *database.MongoDB, appCache cache.Cache) *Container {
	c := &Container{
		Config: cfg,
		DB:     db,
		Cache:  appCache,
	}

	c.initRepositories()
	c.initServices()
	c.initHandlers()
	return c
}

func newCache(cfg config.RedisConfig) (cache.Cache, *infraCache.RedisCache) {
	if !cfg.Enabled() {
		log.Info().Msg("REDIS_HOST not set, caching disabled")
		return cache.NewNop(), nil
	}

	redis := infraCache.NewRedisCache(cfg.Host, cfg.Password, cfg.DB)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redis.Connect(ctx); err != nil {
		log.Warn().Err(err).Str("host", cfg.Host).Msg("Redis unreachable, cache reads will miss until it recovers")
	}
	return redis, redis
}

func (c *Container) initRepositories() {
	db := c.DB.DB

	c.UserRepo = userRepo.NewMongoRepository(
		database.NewCollection[userModel.User](db, database.CollectionUsers))
	c.GiftcardRepo = giftcardRepo.NewMongoRepository(
		database.NewCollection[giftcardModel.Giftcard](db, database.CollectionGiftcards))
	c.RateRepo = rateRepo.NewMongoRepository(
		database.NewCollection[rateModel.Rate](db, database.CollectionRates))
	c.TradeRepo = tradeRepo.NewMongoRepository(
		database.NewCollection[tradeModel.Trade](db, database.CollectionTrades))
}

func (c *Container) initServices() {
	ttl := c.Config.Redis.TTL

	c.UserService = userService.NewUserService(c.UserRepo)
	c.GiftcardService = giftcardService.NewGiftcardService(c.GiftcardRepo, c.Cache, ttl)
	c.RateService = rateService.NewRateService(c.RateRepo, c.Cache, ttl)
	c.TradeService = tradeService.NewTradeService(c.TradeRepo)
	c.AdminService = adminService.NewAdminService(c.UserService, c.GiftcardService, c.RateService, c.TradeService)
}

func (c *Container) initHandlers() {
	c.GiftcardHandler = giftcardHandler.NewGiftcardHandler(c.GiftcardService)
	c.RateHandler = rateHandler.NewRateHandler(c.RateService)
	c.TradeHandler = tradeHandler.NewTradeHandler(c.TradeService)
	c.AdminHandler = adminHandler.NewAdminHandler(c.AdminService)
	c.SystemHandler = systemHandler.NewSystemHandler(c.DB, c.Cache, c.DB.Config.URI != "", Schemas())
}

// Schemas returns the entity declarations served by GET /schema.
func Schemas() map[string]string {
	return map[string]string{
		"User":     userModel.Schema(),
		"Giftcard": giftcardModel.Schema(),
		"Rate":     rateModel.Schema(),
		"Trade":    tradeModel.Schema(),
	}
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases connections; call once on shutdown.
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up resources...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if c.DB != nil {
		if err := c.DB.Close(ctx); err != nil {
			log.Error().Err(err).Msg("Error closing MongoDB")
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing Redis")
		}
	}

	log.Info().Msg("Cleanup completed")
}
