// Package di provides dependency injection configuration for the Otakuverse client.
package di

import (
	"github.com/samber/do/v2"

	"github.com/otakuverse/otakuverse-client/internal/config"
	"github.com/otakuverse/otakuverse-client/internal/di/providers"
	"github.com/otakuverse/otakuverse-client/internal/enrich"
	"github.com/otakuverse/otakuverse-client/internal/logger"
	"github.com/otakuverse/otakuverse-client/internal/recommend"
	"github.com/otakuverse/otakuverse-client/internal/session"
	"github.com/otakuverse/otakuverse-client/internal/validation"
)

// NewContainer creates and configures the DI container with all providers.
func NewContainer() *do.RootScope {
	injector := do.New()

	// Core infrastructure
	do.Provide(injector, providers.ProvideConfig)
	do.Provide(injector, providers.ProvideLogger)
	do.Provide(injector, providers.ProvideValidator)

	// Storage layer
	do.Provide(injector, providers.ProvideStore)

	// Provider clients
	do.Provide(injector, providers.ProvideOMDBClient)
	do.Provide(injector, providers.ProvideJikanClient)

	// Business services
	do.Provide(injector, providers.ProvideEnrichService)
	do.Provide(injector, providers.ProvideSessionService)
	do.Provide(injector, providers.ProvideRecommendClient)

	return injector
}

// Bootstrap initializes all services and returns handles for lifecycle management.
// This triggers lazy initialization of all core services.
func Bootstrap(injector *do.RootScope) error {
	_ = do.MustInvoke[*config.Config](injector)
	_ = do.MustInvoke[*logger.Logger](injector)
	_ = do.MustInvoke[*validation.Validator](injector)
	_ = do.MustInvoke[*providers.StoreHandle](injector)
	_ = do.MustInvoke[*providers.OMDBClientHandle](injector)
	_ = do.MustInvoke[*providers.JikanClientHandle](injector)
	_ = do.MustInvoke[*enrich.Service](injector)
	_ = do.MustInvoke[*session.Service](injector)
	_ = do.MustInvoke[*recommend.Client](injector)

	return nil
}
