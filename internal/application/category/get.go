package category

import (
	"context"
	"errors"
	"fmt"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

type GetUseCase = usecase.UseCase[string, Output]

type DefaultGetUseCase struct {
	gateway gateway.CategoryGateway
}

func NewGetUseCase(gw gateway.CategoryGateway) *DefaultGetUseCase {
	return &DefaultGetUseCase{gateway: gw}
}

func (uc *DefaultGetUseCase) Execute(ctx context.Context, rawID string) (Output, error) {
	id, err := entity.CategoryIDFrom(rawID)
	if err != nil {
		return Output{}, err
	}

	c, err := uc.gateway.FindByID(ctx, id)
	if errors.Is(err, gateway.ErrNotFound) || (err == nil && c == nil) {
		return Output{}, validation.NotFound(entity.CategoryAggregate, id.String())
	}
	if err != nil {
		return Output{}, fmt.Errorf("find category %s: %w", id, err)
	}
	return OutputFrom(c), nil
}

var _ GetUseCase = (*DefaultGetUseCase)(nil)
