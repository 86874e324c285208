package category

import (
	"context"
	"fmt"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
)

type DeleteUseCase = usecase.UnitUseCase[string]

// DefaultDeleteUseCase deletes unconditionally; unknown ids are not an error.
type DefaultDeleteUseCase struct {
	gateway gateway.CategoryGateway
}

func NewDeleteUseCase(gw gateway.CategoryGateway) *DefaultDeleteUseCase {
	return &DefaultDeleteUseCase{gateway: gw}
}

func (uc *DefaultDeleteUseCase) Execute(ctx context.Context, rawID string) error {
	id, err := entity.CategoryIDFrom(rawID)
	if err != nil {
		return err
	}
	if err := uc.gateway.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

var _ DeleteUseCase = (*DefaultDeleteUseCase)(nil)
