package events

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
)

// GenreGateway is the genre counterpart of CategoryGateway.
type GenreGateway struct {
	gateway.GenreGateway
	notifier notifier
}

func NewGenreGateway(inner gateway.GenreGateway, publisher Publisher, logger logrus.FieldLogger) *GenreGateway {
	return &GenreGateway{
		GenreGateway: inner,
		notifier:     notifier{publisher: publisher, logger: logger},
	}
}

func (g *GenreGateway) Create(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	out, err := g.GenreGateway.Create(ctx, genre)
	if err != nil {
		return nil, err
	}
	g.notifier.publish(ctx, Created, entity.GenreAggregate, genre.ID().String(), genrePayload(genre))
	return out, nil
}

func (g *GenreGateway) Update(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	out, err := g.GenreGateway.Update(ctx, genre)
	if err != nil {
		return nil, err
	}
	g.notifier.publish(ctx, Updated, entity.GenreAggregate, genre.ID().String(), genrePayload(genre))
	return out, nil
}

func (g *GenreGateway) DeleteByID(ctx context.Context, id entity.GenreID) error {
	if err := g.GenreGateway.DeleteByID(ctx, id); err != nil {
		return err
	}
	g.notifier.publish(ctx, Deleted, entity.GenreAggregate, id.String(), nil)
	return nil
}

var _ gateway.GenreGateway = (*GenreGateway)(nil)
