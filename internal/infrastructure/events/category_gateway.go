package events

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
)

// CategoryGateway decorates a gateway.CategoryGateway, publishing a
// CatalogEvent after every successful write. Reads pass straight through.
type CategoryGateway struct {
	gateway.CategoryGateway
	notifier notifier
}

func NewCategoryGateway(inner gateway.CategoryGateway, publisher Publisher, logger logrus.FieldLogger) *CategoryGateway {
	return &CategoryGateway{
		CategoryGateway: inner,
		notifier:        notifier{publisher: publisher, logger: logger},
	}
}

func (g *CategoryGateway) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	out, err := g.CategoryGateway.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	g.notifier.publish(ctx, Created, entity.CategoryAggregate, c.ID().String(), categoryPayload(c))
	return out, nil
}

func (g *CategoryGateway) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	out, err := g.CategoryGateway.Update(ctx, c)
	if err != nil {
		return nil, err
	}
	g.notifier.publish(ctx, Updated, entity.CategoryAggregate, c.ID().String(), categoryPayload(c))
	return out, nil
}

func (g *CategoryGateway) DeleteByID(ctx context.Context, id entity.CategoryID) error {
	if err := g.CategoryGateway.DeleteByID(ctx, id); err != nil {
		return err
	}
	g.notifier.publish(ctx, Deleted, entity.CategoryAggregate, id.String(), nil)
	return nil
}

var _ gateway.CategoryGateway = (*CategoryGateway)(nil)
