package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-catalog-admin/internal/container"
	handlers "github.com/oksasatya/go-catalog-admin/internal/interface/http"
	"github.com/oksasatya/go-catalog-admin/internal/interface/middleware"
	"github.com/oksasatya/go-catalog-admin/pkg/helpers"
)

// SearchModule exposes GET /api/search over the Elasticsearch projection.
type SearchModule struct {
	Handler *handlers.SearchHandler
	JWT     *helpers.JWTManager
}

func NewSearchModule(h *handlers.SearchHandler, jwt *helpers.JWTManager) *SearchModule {
	return &SearchModule{Handler: h, JWT: jwt}
}

func (m *SearchModule) Register(rg *gin.RouterGroup) {
	rl := middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.GET("/search", middleware.Auth(m.JWT), rl, m.Handler.Search)
}
