package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-catalog-admin/internal/container"
	handlers "github.com/oksasatya/go-catalog-admin/internal/interface/http"
	"github.com/oksasatya/go-catalog-admin/internal/interface/middleware"
	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
)

// CatalogModule wires the category and genre admin routes.
// Routes: /api/categories[/:id], /api/genres[/:id]
// A nil JWT manager leaves the routes open.
type CatalogModule struct {
	Categories    *handlers.CategoryHandler
	Genres        *handlers.GenreHandler
	JWT           *helpers.JWTManager
	RatePerMinute int
}

func NewCatalogModule(categories *handlers.CategoryHandler, genres *handlers.GenreHandler, jwt *helpers.JWTManager, ratePerMinute int) *CatalogModule {
	return &CatalogModule{Categories: categories, Genres: genres, JWT: jwt, RatePerMinute: ratePerMinute}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/")
	admin.Use(
		middleware.Auth(m.JWT),
		middleware.RateLimit(container.GetRedis(), m.RatePerMinute, time.Minute, middleware.KeyBySubject(), nil),
	)

	categories := admin.Group("/categories")
	{
		categories.POST("", m.Categories.Create)
		categories.GET("", m.Categories.List)
		categories.GET("/:id", m.Categories.Get)
		categories.PUT("/:id", m.Categories.Update)
		categories.DELETE("/:id", m.Categories.Delete)
	}

	genres := admin.Group("/genres")
	{
		genres.POST("", m.Genres.Create)
		genres.GET("", m.Genres.List)
		genres.GET("/:id", m.Genres.Get)
		genres.PUT("/:id", m.Genres.Update)
		genres.DELETE("/:id", m.Genres.Delete)
	}
}
