package genre

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

type UpdateCommand struct {
	ID         string
	Name       *string
	Active     bool
	Categories []string
}

func NewUpdateCommand(id string, name *string, active bool, categories []string) UpdateCommand {
	return UpdateCommand{ID: id, Name: name, Active: active, Categories: categories}
}

type UpdateUseCase interface {
	Execute(ctx context.Context, cmd UpdateCommand) (usecase.Result[UpdateOutput], error)
}

type DefaultUpdateUseCase struct {
	genres  gateway.GenreGateway
	checker categoryChecker
	logger  logrus.FieldLogger
}

func NewUpdateUseCase(genres gateway.GenreGateway, categories gateway.CategoryGateway, logger logrus.FieldLogger) *DefaultUpdateUseCase {
	return &DefaultUpdateUseCase{
		genres:  genres,
		checker: categoryChecker{gateway: categories, logger: logger},
		logger:  logger,
	}
}

func (uc *DefaultUpdateUseCase) Execute(ctx context.Context, cmd UpdateCommand) (usecase.Result[UpdateOutput], error) {
	id, err := entity.GenreIDFrom(cmd.ID)
	if err != nil {
		return usecase.Result[UpdateOutput]{}, err
	}

	loaded, err := uc.genres.FindByID(ctx, id)
	switch {
	case errors.Is(err, gateway.ErrNotFound), err == nil && loaded == nil:
		return usecase.Result[UpdateOutput]{}, validation.NotFound(entity.GenreAggregate, id.String())
	case err != nil:
		if uc.logger != nil {
			uc.logger.WithError(err).WithField("id", id.String()).Warn("find genre failed")
		}
		return usecase.Failure[UpdateOutput](validation.NotificationOf(err)), nil
	}

	notification := validation.NewNotification()
	categories, _ := uc.checker.parse(cmd.Categories, notification)
	_ = uc.checker.validate(ctx, categories, notification)

	genre := entity.CopyGenre(loaded)
	_ = genre.Update(cmd.Name, cmd.Active, categories).Validate(notification)

	if notification.HasErrors() {
		return usecase.Failure[UpdateOutput](notification), nil
	}
	return uc.update(ctx, genre), nil
}

func (uc *DefaultUpdateUseCase) update(ctx context.Context, genre *entity.Genre) usecase.Result[UpdateOutput] {
	fields := logrus.Fields{"aggregate": entity.GenreAggregate, "operation": "update", "id": genre.ID().String()}
	persisted := usecase.Guarded(uc.logger, fields, func() (*entity.Genre, error) {
		out, err := uc.genres.Update(ctx, genre)
		if err == nil && out == nil {
			out = genre
		}
		return out, err
	})
	return usecase.Map(persisted, updateOutputFrom)
}

var _ UpdateUseCase = (*DefaultUpdateUseCase)(nil)
