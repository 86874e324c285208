package genre

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
	genres gateway.GenreGateway
}

func NewGetUseCase(genres gateway.GenreGateway) *DefaultGetUseCase {
	return &DefaultGetUseCase{genres: genres}
}

func (uc *DefaultGetUseCase) Execute(ctx context.Context, rawID string) (Output, error) {
	id, err := entity.GenreIDFrom(rawID)
	if err != nil {
		return Output{}, err
	}

	g, err := uc.genres.FindByID(ctx, id)
	if errors.Is(err, gateway.ErrNotFound) || (err == nil && g == nil) {
		return Output{}, validation.NotFound(entity.GenreAggregate, id.String())
	}
	if err != nil {
		return Output{}, fmt.Errorf("find genre %s: %w", id, err)
	}
	return OutputFrom(g), nil
}

var _ GetUseCase = (*DefaultGetUseCase)(nil)
