// Package app assembles the storefront services from their wired
// dependencies.
package app

import (
	"log/slog"

	"github.com/brioches/storefront/pkg/cart"
	"github.com/brioches/storefront/pkg/config"
	"github.com/brioches/storefront/pkg/pricing"
	"github.com/brioches/storefront/pkg/rates"
)

// Deps contains the infrastructure the services are built on.
type Deps struct {
	RateService *rates.Service
	CartStore   cart.Store
	Logger      *slog.Logger
}

type App struct {
	Deps           *Deps
	Config         *config.App
	RateService    *rates.Service
	PricingService *pricing.Service
	CartService    *cart.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:           deps,
		Config:         cfg,
		RateService:    deps.RateService,
		PricingService: pricing.New(deps.RateService),
		CartService:    cart.NewService(deps.CartStore, cfg.WhatsApp.Number, deps.Logger),
	}
}
