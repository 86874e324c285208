package category

import (
	"context"
	"fmt"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
)

type ListUseCase = usecase.UseCase[pagination.SearchQuery, pagination.Pagination[ListOutput]]

type DefaultListUseCase struct {
	gateway gateway.CategoryGateway
}

func NewListUseCase(gw gateway.CategoryGateway) *DefaultListUseCase {
	return &DefaultListUseCase{gateway: gw}
}

func (uc *DefaultListUseCase) Execute(ctx context.Context, query pagination.SearchQuery) (pagination.Pagination[ListOutput], error) {
	page, err := uc.gateway.FindAll(ctx, query)
	if err != nil {
		return pagination.Pagination[ListOutput]{}, fmt.Errorf("list categories: %w", err)
	}
	return pagination.Map(page, ListOutputFrom), nil
}

var _ ListUseCase = (*DefaultListUseCase)(nil)
