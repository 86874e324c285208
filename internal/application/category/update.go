package category

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
	ID          string
	Name        *string
	Description string
	Active      bool
}

func NewUpdateCommand(id string, name *string, description string, active bool) UpdateCommand {
	return UpdateCommand{ID: id, Name: name, Description: description, Active: active}
}

// UpdateUseCase returns a *validation.NotFoundError when the category does not
// exist; every other problem is reported through the Result.
type UpdateUseCase interface {
	Execute(ctx context.Context, cmd UpdateCommand) (usecase.Result[UpdateOutput], error)
}

type DefaultUpdateUseCase struct {
	gateway gateway.CategoryGateway
	logger  logrus.FieldLogger
}

func NewUpdateUseCase(gw gateway.CategoryGateway, logger logrus.FieldLogger) *DefaultUpdateUseCase {
	return &DefaultUpdateUseCase{gateway: gw, logger: logger}
}

func (uc *DefaultUpdateUseCase) Execute(ctx context.Context, cmd UpdateCommand) (usecase.Result[UpdateOutput], error) {
	id, err := entity.CategoryIDFrom(cmd.ID)
	if err != nil {
		return usecase.Result[UpdateOutput]{}, err
	}

	loaded, err := uc.gateway.FindByID(ctx, id)
	switch {
	case errors.Is(err, gateway.ErrNotFound), err == nil && loaded == nil:
		return usecase.Result[UpdateOutput]{}, validation.NotFound(entity.CategoryAggregate, id.String())
	case err != nil:
		if uc.logger != nil {
			uc.logger.WithError(err).WithField("id", id.String()).Warn("find category failed")
		}
		return usecase.Failure[UpdateOutput](validation.NotificationOf(err)), nil
	}

	// Mutate a copy so a failed validation leaves the loaded state untouched.
	category := entity.CopyCategory(loaded)
	notification := validation.NewNotification()
	_ = category.Update(cmd.Name, cmd.Description, cmd.Active).Validate(notification)

	if notification.HasErrors() {
		return usecase.Failure[UpdateOutput](notification), nil
	}
	return uc.update(ctx, category), nil
}

func (uc *DefaultUpdateUseCase) update(ctx context.Context, category *entity.Category) usecase.Result[UpdateOutput] {
	fields := logrus.Fields{"aggregate": entity.CategoryAggregate, "operation": "update", "id": category.ID().String()}
	persisted := usecase.Guarded(uc.logger, fields, func() (*entity.Category, error) {
		out, err := uc.gateway.Update(ctx, category)
		if err == nil && out == nil {
			out = category
		}
		return out, err
	})
	return usecase.Map(persisted, updateOutputFrom)
}

var _ UpdateUseCase = (*DefaultUpdateUseCase)(nil)
