package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/genre"
)

type GenreHandler struct {
	base
	create genre.CreateUseCase
	update genre.UpdateUseCase
	get    genre.GetUseCase
	delete genre.DeleteUseCase
	list   genre.ListUseCase
}

func NewGenreHandler(
	create genre.CreateUseCase,
	update genre.UpdateUseCase,
	get genre.GetUseCase,
	del genre.DeleteUseCase,
	list genre.ListUseCase,
	logger logrus.FieldLogger,
) *GenreHandler {
	return &GenreHandler{
		base:   base{aggregate: "genre", logger: logger},
		create: create,
		update: update,
		get:    get,
		delete: del,
		list:   list,
	}
}

type genreRequest struct {
	Name       *string  `json:"name"`
	IsActive   *bool    `json:"is_active"`
	Categories []string `json:"categories_id"`
}

func (h *GenreHandler) Create(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "create", err)
		return
	}

	cmd := genre.NewCreateCommand(req.Name, boolOr(req.IsActive, true), req.Categories)
	settle(h.base, c, "create", h.create.Execute(c.Request.Context(), cmd), func(out genre.CreateOutput) {
		c.Header("Location", "/genres/"+out.ID)
		h.ok(c, "create", http.StatusCreated, out, "genre created")
	})
}

func (h *GenreHandler) List(c *gin.Context) {
	var q listQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.badRequest(c, "list", err)
		return
	}
	query, err := q.toSearchQuery()
	if err != nil {
		h.badQuery(c, "list", err)
		return
	}

	page, err := h.list.Execute(c.Request.Context(), query)
	if err != nil {
		h.fail(c, "list", err)
		return
	}
	h.ok(c, "list", http.StatusOK, page, "genres listed")
}

func (h *GenreHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	h.ok(c, "get", http.StatusOK, out, "genre found")
}

func (h *GenreHandler) Update(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "update", err)
		return
	}

	cmd := genre.NewUpdateCommand(c.Param("id"), req.Name, boolOr(req.IsActive, true), req.Categories)
	result, err := h.update.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	settle(h.base, c, "update", result, func(out genre.UpdateOutput) {
		h.ok(c, "update", http.StatusOK, out, "genre updated")
	})
}

func (h *GenreHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	count(h.aggregate, "delete", "ok")
	c.Status(http.StatusNoContent)
}
