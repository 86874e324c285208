package handlers

import (
	"errors"
	"expvar"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
	"github.com/oksasatya/go-catalog-admin/pkg/response"
	reqvalidation "github.com/oksasatya/go-catalog-admin/pkg/validation"
)

// outcomes counts handler results by "<aggregate>.<operation>.<outcome>",
// published on /debug/vars.
var outcomes = expvar.NewMap("catalog_outcomes")

func count(aggregate, operation, outcome string) {
	outcomes.Add(aggregate+"."+operation+"."+outcome, 1)
}

// base carries what every catalog handler needs to report failures.
type base struct {
	aggregate string
	logger    logrus.FieldLogger
}

func (b base) ok(c *gin.Context, operation string, status int, data any, message string) {
	count(b.aggregate, operation, "ok")
	response.Send(c, response.Success(c, status, data, message, nil))
}

func (b base) badRequest(c *gin.Context, operation string, err error) {
	count(b.aggregate, operation, "bad_request")
	response.Send(c, response.Error[any](c, http.StatusBadRequest, "invalid payload", reqvalidation.ToDetails(err)))
}

// badQuery rejects paging parameters that bound but do not form a query.
func (b base) badQuery(c *gin.Context, operation string, err error) {
	count(b.aggregate, operation, "bad_request")
	response.Send(c, response.Error[any](c, http.StatusBadRequest, err.Error(), nil))
}

// invalid answers 422 with every violation the notification collected.
func (b base) invalid(c *gin.Context, operation string, n *validation.Notification) {
	count(b.aggregate, operation, "invalid")
	message := "validation failed"
	if first, ok := n.First(); ok {
		message = first.Message
	}
	response.Send(c, response.Invalid(c, message, n.Errors()))
}

// settle writes a use-case Result: 422 with the notification on failure,
// onSuccess otherwise.
func settle[T any](b base, c *gin.Context, operation string, r usecase.Result[T], onSuccess func(T)) {
	usecase.Fold(r,
		func(n *validation.Notification) struct{} {
			b.invalid(c, operation, n)
			return struct{}{}
		},
		func(out T) struct{} {
			onSuccess(out)
			return struct{}{}
		},
	)
}

// fail maps hard errors returned by use cases to HTTP statuses.
func (b base) fail(c *gin.Context, operation string, err error) {
	switch {
	case validation.IsNotFound(err):
		count(b.aggregate, operation, "not_found")
		response.Send(c, response.Error[any](c, http.StatusNotFound, err.Error(), nil))
	case errors.Is(err, entity.ErrInvalidIdentifier), errors.Is(err, pagination.ErrInvalidPaging):
		count(b.aggregate, operation, "bad_request")
		response.Send(c, response.Error[any](c, http.StatusBadRequest, err.Error(), nil))
	default:
		count(b.aggregate, operation, "error")
		b.logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"aggregate":  b.aggregate,
			"operation":  operation,
		}).WithError(err).Error("request failed")
		response.Send(c, response.Error[any](c, http.StatusInternalServerError, "internal server error", nil))
	}
}

type listQuery struct {
	Search  string `form:"search"`
	Page    int    `form:"page" binding:"page"`
	PerPage int    `form:"perPage,default=10" binding:"perpage"`
	Sort    string `form:"sort,default=name"`
	Dir     string `form:"dir,default=asc" binding:"sortdir"`
}

func (q listQuery) toSearchQuery() (pagination.SearchQuery, error) {
	dir, err := pagination.ParseDirection(q.Dir)
	if err != nil {
		return pagination.SearchQuery{}, err
	}
	return pagination.NewSearchQuery(q.Page, q.PerPage, q.Search, q.Sort, dir)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
