//go:generate go run go.uber.org/mock/mockgen -source=category_gateway.go -destination=../../mocks/mock_category_gateway.go -package=mocks
package gateway

import (
	"context"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
)

// CategoryGateway is the persistence port for categories.
type CategoryGateway interface {
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) (*entity.Category, error)
	// FindByID returns ErrNotFound when the id is unknown.
	FindByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error)
	// DeleteByID succeeds for unknown ids.
	DeleteByID(ctx context.Context, id entity.CategoryID) error
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[*entity.Category], error)
	// ExistsByIDs returns the subset of ids that exist.
	ExistsByIDs(ctx context.Context, ids []entity.CategoryID) ([]entity.CategoryID, error)
}
