package router

import (
	"github.com/oksasatya/go-catalog-admin/internal/application/category"
	"github.com/oksasatya/go-catalog-admin/internal/application/genre"
	"github.com/oksasatya/go-catalog-admin/internal/container"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/events"
	pginfra "github.com/oksasatya/go-catalog-admin/internal/infrastructure/postgres"
	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-catalog-admin/internal/interface/http"
	"github.com/oksasatya/go-catalog-admin/internal/router/modules"
)

type CatalogDeps struct {
	Categories      gateway.CategoryGateway
	Genres          gateway.GenreGateway
	CategoryHandler *handlers.CategoryHandler
	GenreHandler    *handlers.GenreHandler
}

// buildGateways returns the Postgres gateways, wrapped with event publishing
// when events are enabled and a publisher is available.
func buildGateways() (gateway.CategoryGateway, gateway.GenreGateway) {
	pool := container.GetPGPool()
	var (
		categories gateway.CategoryGateway = pginfra.NewCategoryGateway(pool)
		genres     gateway.GenreGateway    = pginfra.NewGenreGateway(pool)
	)

	cfg := container.GetConfig()
	if pub := container.GetRabbitPub(); cfg.EventsEnabled && pub != nil {
		categories = events.NewCategoryGateway(categories, pub, container.GetLogger())
		genres = events.NewGenreGateway(genres, pub, container.GetLogger())
	}
	return categories, genres
}

func buildCatalogDeps() CatalogDeps {
	categories, genres := buildGateways()
	logger := container.GetLogger()

	categoryHandler := handlers.NewCategoryHandler(
		category.NewCreateUseCase(categories, logger),
		category.NewUpdateUseCase(categories, logger),
		category.NewGetUseCase(categories),
		category.NewDeleteUseCase(categories),
		category.NewListUseCase(categories),
		logger,
	)

	genreHandler := handlers.NewGenreHandler(
		genre.NewCreateUseCase(genres, categories, logger),
		genre.NewUpdateUseCase(genres, categories, logger),
		genre.NewGetUseCase(genres),
		genre.NewDeleteUseCase(genres),
		genre.NewListUseCase(genres),
		logger,
	)

	return CatalogDeps{
		Categories:      categories,
		Genres:          genres,
		CategoryHandler: categoryHandler,
		GenreHandler:    genreHandler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	jwt := container.GetJWT()
	if !cfg.AuthEnabled {
		jwt = nil
	}

	deps := buildCatalogDeps()
	r.Add(modules.NewCatalogModule(deps.CategoryHandler, deps.GenreHandler, jwt, cfg.RateLimitPerMinute))

	if es := container.GetES(); cfg.SearchEnabled && es != nil {
		indexer := search.NewIndexer(es, cfg.ESCategoriesIndex, cfg.ESGenresIndex, container.GetLogger())
		r.Add(modules.NewSearchModule(handlers.NewSearchHandler(indexer, container.GetLogger()), jwt))
	}

	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
