//go:generate go run go.uber.org/mock/mockgen -source=genre_gateway.go -destination=../../mocks/mock_genre_gateway.go -package=mocks
package gateway

import (
	"context"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
)

// GenreGateway is the persistence port for genres.
type GenreGateway interface {
	Create(ctx context.Context, genre *entity.Genre) (*entity.Genre, error)
	Update(ctx context.Context, genre *entity.Genre) (*entity.Genre, error)
	FindByID(ctx context.Context, id entity.GenreID) (*entity.Genre, error)
	DeleteByID(ctx context.Context, id entity.GenreID) error
	FindAll(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[*entity.Genre], error)
}
