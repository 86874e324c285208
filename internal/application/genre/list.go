package genre

import (
	"context"
	"fmt"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
)

type ListUseCase = usecase.UseCase[pagination.SearchQuery, pagination.Pagination[ListOutput]]

type DefaultListUseCase struct {
	genres gateway.GenreGateway
}

func NewListUseCase(genres gateway.GenreGateway) *DefaultListUseCase {
	return &DefaultListUseCase{genres: genres}
}

func (uc *DefaultListUseCase) Execute(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[ListOutput], error) {
	page, err := uc.genres.FindAll(ctx, query)
	if err != nil {
		return pagination.Pagination[ListOutput]{}, fmt.Errorf("list genres: %w", err)
	}
	return pagination.Map(page, ListOutputFrom), nil
}

var _ ListUseCase = (*DefaultListUseCase)(nil)
