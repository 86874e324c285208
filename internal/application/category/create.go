package category

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

type CreateCommand struct {
	Name        *string
	Description string
	Active      bool
}

func NewCreateCommand(name *string, description string, active bool) CreateCommand {
	return CreateCommand{Name: name, Description: description, Active: active}
}

type CreateUseCase interface {
	Execute(ctx context.Context, cmd CreateCommand) usecase.Result[CreateOutput]
}

type DefaultCreateUseCase struct {
	gateway gateway.CategoryGateway
	logger  logrus.FieldLogger
}

func NewCreateUseCase(gw gateway.CategoryGateway, logger logrus.FieldLogger) *DefaultCreateUseCase {
	return &DefaultCreateUseCase{gateway: gw, logger: logger}
}

// Execute validates the new category and persists it only when every rule
// passed.
func (uc *DefaultCreateUseCase) Execute(ctx context.Context, cmd CreateCommand) usecase.Result[CreateOutput] {
	notification := validation.NewNotification()
	category := entity.NewCategory(cmd.Name, cmd.Description, cmd.Active)
	_ = category.Validate(notification)

	if notification.HasErrors() {
		return usecase.Failure[CreateOutput](notification)
	}
	return uc.create(ctx, category)
}

func (uc *DefaultCreateUseCase) create(ctx context.Context, category *entity.Category) usecase.Result[CreateOutput] {
	fields := logrus.Fields{"aggregate": entity.CategoryAggregate, "operation": "create", "id": category.ID().String()}
	persisted := usecase.Guarded(uc.logger, fields, func() (*entity.Category, error) {
		out, err := uc.gateway.Create(ctx, category)
		if err == nil && out == nil {
			out = category
		}
		return out, err
	})
	return usecase.Map(persisted, createOutputFrom)
}

var _ CreateUseCase = (*DefaultCreateUseCase)(nil)
