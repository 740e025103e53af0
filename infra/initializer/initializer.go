// Package initializer wires the storefront's infrastructure: logger,
// Redis, the rate cache, and the session store.
package initializer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	infracache "github.com/brioches/storefront/infra/cache"
	"github.com/brioches/storefront/infra/storage"
	"github.com/brioches/storefront/pkg/app"
	"github.com/brioches/storefront/pkg/cart"
	"github.com/brioches/storefront/pkg/config"
	"github.com/brioches/storefront/pkg/rates"
)

// InitializeDependencies builds the application dependencies from
// configuration. When Redis is unreachable or unconfigured the service
// still comes up with in-memory carts and an unpersisted rate cache.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	deps := &app.Deps{}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	client, err := connectRedis(cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	slot := infracache.NewSlot(
		cfg.Rates.CacheTTL, client, cfg.Rates.CacheKey, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	slot.Load(ctx)

	deps.RateService = rates.New(cfg.Rates, slot, logger)

	var store cart.Store
	if client != nil {
		store = storage.NewRedisStore(
			client, cfg.Cart.KeyPrefix, cfg.Cart.CustomerKeyPrefix, logger)
	} else {
		logger.Warn("no durable storage; carts are in-memory only")
		store = storage.NewMemoryStore()
	}
	deps.CartStore = store

	return deps, nil
}

// connectRedis dials Redis when a URL is configured. A reachable URL is
// required once set; a blank URL means run without durable storage.
func connectRedis(cfg *config.Redis, logger *slog.Logger) (*redis.Client, error) {
	if cfg.URL == "" {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.PoolSize = cfg.PoolSize
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DialTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable, continuing without durable storage",
			"addr", opt.Addr, "error", err)
		_ = client.Close()
		return nil, nil
	}

	logger.Info("connected to redis", "addr", opt.Addr)
	return client, nil
}
