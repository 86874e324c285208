package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/category"
)

type CategoryHandler struct {
	base
	create category.CreateUseCase
	update category.UpdateUseCase
	get    category.GetUseCase
	delete category.DeleteUseCase
	list   category.ListUseCase
}

func NewCategoryHandler(
	create category.CreateUseCase,
	update category.UpdateUseCase,
	get category.GetUseCase,
	del category.DeleteUseCase,
	list category.ListUseCase,
	logger logrus.FieldLogger,
) *CategoryHandler {
	return &CategoryHandler{
		base:   base{aggregate: "category", logger: logger},
		create: create,
		update: update,
		get:    get,
		delete: del,
		list:   list,
	}
}

// name stays a pointer so a missing field reaches validation as null.
type categoryRequest struct {
	Name        *string `json:"name"`
	Description string  `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "create", err)
		return
	}

	cmd := category.NewCreateCommand(req.Name, req.Description, boolOr(req.IsActive, true))
	settle(h.base, c, "create", h.create.Execute(c.Request.Context(), cmd), func(out category.CreateOutput) {
		c.Header("Location", "/categories/"+out.ID)
		h.ok(c, "create", http.StatusCreated, out, "category created")
	})
}

func (h *CategoryHandler) List(c *gin.Context) {
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
	h.ok(c, "list", http.StatusOK, page, "categories listed")
}

func (h *CategoryHandler) Get(c *gin.Context) {
	out, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, "get", err)
		return
	}
	h.ok(c, "get", http.StatusOK, out, "category found")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, "update", err)
		return
	}

	cmd := category.NewUpdateCommand(c.Param("id"), req.Name, req.Description, boolOr(req.IsActive, true))
	result, err := h.update.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.fail(c, "update", err)
		return
	}
	settle(h.base, c, "update", result, func(out category.UpdateOutput) {
		h.ok(c, "update", http.StatusOK, out, "category updated")
	})
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, "delete", err)
		return
	}
	count(h.aggregate, "delete", "ok")
	c.Status(http.StatusNoContent)
}

