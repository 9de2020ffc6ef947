package main

import (
	"context"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/charcuterie-certains/storefront-api/internal/auth"
	"github.com/charcuterie-certains/storefront-api/internal/cart"
	"github.com/charcuterie-certains/storefront-api/internal/config"
	"github.com/charcuterie-certains/storefront-api/internal/db"
	api "github.com/charcuterie-certains/storefront-api/internal/http"
	"github.com/charcuterie-certains/storefront-api/internal/http/ban"
	"github.com/charcuterie-certains/storefront-api/internal/http/handlers"
	rl "github.com/charcuterie-certains/storefront-api/internal/http/rate_limiter"
	"github.com/charcuterie-certains/storefront-api/internal/logger"
	"github.com/charcuterie-certains/storefront-api/internal/models"
	"github.com/charcuterie-certains/storefront-api/internal/repo"
	"github.com/charcuterie-certains/storefront-api/internal/whatsapp"
)

// @title Storefront API
// @version 1.0
// @description REST API for the charcuterie storefront: product catalog, session carts, accounts and WhatsApp order links.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("storefront-api", "info", "json")
		fallback.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New("storefront-api", cfg.LogLevel, cfg.LogFormat)

	var products []models.Product
	if cfg.ProductsFile != "" {
		products, err = repo.LoadProductsFile(cfg.ProductsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.ProductsFile).Msg("could not load catalog seed")
		}
	} else {
		products = repo.DefaultProducts()
	}
	catalog, err := repo.NewInMemoryProductRepository(products)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid catalog seed")
	}
	log.Info().Int("products", len(products)).Msg("catalog loaded")

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatal().Err(err).Msg("could not connect to redis")
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to database")
	}
	defer database.Close()

	carts := cart.NewManager(cfg.Cart.IdleTTL)
	go carts.StartCleanupLoop(cfg.Cart.CleanupInterval)

	limiter := rl.NewLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go limiter.StartCleanupLoop()

	bans := ban.New(rdb, log, cfg.RateLimit.StrikeThreshold, cfg.RateLimit.StrikeWindow, cfg.RateLimit.BanTTL)
	go bans.StartDailySummary(24 * time.Hour)

	tokens := auth.NewTokens(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	h := handlers.New(handlers.Deps{
		Products:   catalog,
		Users:      repo.NewPostgresUserRepository(database),
		Carts:      carts,
		Tokens:     tokens,
		Refresh:    auth.NewRedisRefreshStore(rdb),
		RefreshTTL: cfg.JWT.RefreshTTL,
		WhatsApp:   whatsapp.NewLinkBuilder(cfg.WhatsAppPhone),
		Log:        log,
	})

	r := api.NewRouter(h, tokens, limiter, bans, log)
	log.Info().Str("addr", cfg.Addr).Msg("server running")
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
