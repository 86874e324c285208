package genre

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/application/usecase"
	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

type CreateCommand struct {
	Name       *string
	Active     bool
	Categories []string
}

func NewCreateCommand(name *string, active bool, categories []string) CreateCommand {
	return CreateCommand{Name: name, Active: active, Categories: categories}
}

type CreateUseCase interface {
	Execute(ctx context.Context, cmd CreateCommand) usecase.Result[CreateOutput]
}

type DefaultCreateUseCase struct {
	genres  gateway.GenreGateway
	checker categoryChecker
	logger  logrus.FieldLogger
}

func NewCreateUseCase(genres gateway.GenreGateway, categories gateway.CategoryGateway, logger logrus.FieldLogger) *DefaultCreateUseCase {
	return &DefaultCreateUseCase{
		genres:  genres,
		checker: categoryChecker{gateway: categories, logger: logger},
		logger:  logger,
	}
}

// Execute reports category problems before name problems, all in one
// notification, and persists nothing unless both checks pass.
func (uc *DefaultCreateUseCase) Execute(ctx context.Context, cmd CreateCommand) usecase.Result[CreateOutput] {
	notification := validation.NewNotification()

	categories, _ := uc.checker.parse(cmd.Categories, notification)
	_ = uc.checker.validate(ctx, categories, notification)

	genre := entity.NewGenre(cmd.Name, cmd.Active, categories...)
	_ = genre.Validate(notification)

	if notification.HasErrors() {
		return usecase.Failure[CreateOutput](notification)
	}
	return uc.create(ctx, genre)
}

func (uc *DefaultCreateUseCase) create(ctx context.Context, genre *entity.Genre) usecase.Result[CreateOutput] {
	fields := logrus.Fields{"aggregate": entity.GenreAggregate, "operation": "create", "id": genre.ID().String()}
	persisted := usecase.Guarded(uc.logger, fields, func() (*entity.Genre, error) {
		out, err := uc.genres.Create(ctx, genre)
		if err == nil && out == nil {
			out = genre
		}
		return out, err
	})
	return usecase.Map(persisted, createOutputFrom)
}

var _ CreateUseCase = (*DefaultCreateUseCase)(nil)
