package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/infrastructure/search"
)

// Searcher is implemented by *search.Indexer.
type Searcher interface {
	Search(ctx context.Context, q string, size int) ([]search.Hit, error)
}

type SearchHandler struct {
	base
	searcher Searcher
}

func NewSearchHandler(searcher Searcher, logger logrus.FieldLogger) *SearchHandler {
	return &SearchHandler{base: base{aggregate: "search", logger: logger}, searcher: searcher}
}

type searchQuery struct {
	Q    string `form:"q" binding:"required,max=200"`
	Size int    `form:"size,default=10" binding:"gte=1,lte=50"`
}

func (h *SearchHandler) Search(c *gin.Context) {
	var q searchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "query", err)
		return
	}
	hits, err := h.searcher.Search(c.Request.Context(), q.Q, q.Size)
	if err != nil {
		h.fail(c, "query", err)
		return
	}
	h.ok(c, "query", http.StatusOK, hits, "search results")
}
