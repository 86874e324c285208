package genre

import (
	"context"
	"fmt"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
)

type DeleteUseCase = usecase.UnitUseCase[string]

type DefaultDeleteUseCase struct {
	genres gateway.GenreGateway
}

func NewDeleteUseCase(genres gateway.GenreGateway) *DefaultDeleteUseCase {
	return &DefaultDeleteUseCase{genres: genres}
}

func (uc *DefaultDeleteUseCase) Execute(ctx context.Context, rawID string) error {
	id, err := entity.GenreIDFrom(rawID)
	if err != nil {
		return err
	}
	if err := uc.genres.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete genre %s: %w", id, err)
	}
	return nil
}

var _ DeleteUseCase = (*DefaultDeleteUseCase)(nil)
