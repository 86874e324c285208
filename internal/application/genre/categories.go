package genre

import (
	"context"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

const (
	missingCategoriesMessage = "Some categories could not be found: "
	emptyCategoryIDMessage   = "'categories_id' should not contain empty identifiers"
)

// categoryChecker verifies that every related category exists. It needs a
// gateway round trip, so it lives here rather than in the genre validator.
type categoryChecker struct {
	gateway gateway.CategoryGateway
	logger  logrus.FieldLogger
}

// parse converts raw ids, reporting empty ones on h. Duplicates are dropped,
// first occurrence wins.
func (c categoryChecker) parse(raw []string, h validation.Handler) ([]entity.CategoryID, error) {
	ids := make([]entity.CategoryID, 0, len(raw))
	sawEmpty := false
	for _, r := range raw {
		id, err := entity.CategoryIDFrom(r)
		if err != nil {
			sawEmpty = true
			continue
		}
		ids = append(ids, id)
	}
	if sawEmpty {
		if err := h.Append(validation.NewError(emptyCategoryIDMessage)); err != nil {
			return nil, err
		}
	}
	return lo.Uniq(ids), nil
}

// validate reports, as one error, every id the category gateway does not
// know, in input order. No ids means no gateway call.
func (c categoryChecker) validate(ctx context.Context, ids []entity.CategoryID, h validation.Handler) error {
	if len(ids) == 0 {
		return nil
	}

	fields := logrus.Fields{"aggregate": entity.CategoryAggregate, "operation": "exists_by_ids"}
	found := usecase.Guarded(c.logger, fields, func() ([]entity.CategoryID, error) {
		return c.gateway.ExistsByIDs(ctx, ids)
	})
	if found.IsFailure() {
		return h.Merge(found.Notification())
	}

	missing := lo.Without(ids, found.Value()...)
	if len(missing) == 0 {
		return nil
	}
	names := lo.Map(missing, func(id entity.CategoryID, _ int) string { return id.String() })
	return h.Append(validation.NewError(missingCategoriesMessage + strings.Join(names, ", ")))
}
