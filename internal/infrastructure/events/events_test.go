package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/mocks"
)

func TestCategoryGateway(t *testing.T) {
	ctx := context.Background()

	t.Run("should publish after a successful create", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCategoryGateway(ctrl)
		publisher := mocks.NewMockPublisher(ctrl)
		logger, _ := test.NewNullLogger()
		gw := NewCategoryGateway(inner, publisher, logger)
		c := entity.NewCategory(lo.ToPtr("Movies"), "desc", true)

		inner.EXPECT().Create(gomock.Any(), c).Return(c, nil)
		publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body any) error {
				ev, ok := body.(CatalogEvent)
				req.True(ok)
				req.Equal(Created, ev.Type)
				req.Equal(entity.CategoryAggregate, ev.Aggregate)
				req.Equal(c.ID().String(), ev.ID)

				var payload CategoryPayload
				req.NoError(json.Unmarshal(ev.Payload, &payload))
				req.Equal("Movies", payload.Name)
				req.True(payload.Active)
				return nil
			})

		out, err := gw.Create(ctx, c)

		req.NoError(err)
		req.Same(c, out)
	})

	t.Run("should not publish when the write fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCategoryGateway(ctrl)
		publisher := mocks.NewMockPublisher(ctrl)
		gw := NewCategoryGateway(inner, publisher, logrus.New())
		boom := errors.New("duplicate key")

		inner.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, boom)
		publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any()).Times(0)

		_, err := gw.Update(ctx, entity.NewCategory(lo.ToPtr("Movies"), "", true))

		req.ErrorIs(err, boom)
	})

	t.Run("should only log a publish failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCategoryGateway(ctrl)
		publisher := mocks.NewMockPublisher(ctrl)
		logger, hook := test.NewNullLogger()
		gw := NewCategoryGateway(inner, publisher, logger)
		id, _ := entity.CategoryIDFrom("c-1")

		inner.EXPECT().DeleteByID(gomock.Any(), id).Return(nil)
		publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, body any) error {
				ev := body.(CatalogEvent)
				req.Equal(Deleted, ev.Type)
				req.Empty(ev.Payload)
				return errors.New("channel closed")
			})

		req.NoError(gw.DeleteByID(ctx, id))
		req.Equal(logrus.WarnLevel, hook.LastEntry().Level)
		req.Equal("c-1", hook.LastEntry().Data["id"])
	})

	t.Run("should pass reads through", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		inner := mocks.NewMockCategoryGateway(ctrl)
		publisher := mocks.NewMockPublisher(ctrl)
		gw := NewCategoryGateway(inner, publisher, logrus.New())
		id, _ := entity.CategoryIDFrom("c-1")

		inner.EXPECT().ExistsByIDs(gomock.Any(), []entity.CategoryID{id}).Return([]entity.CategoryID{id}, nil)
		publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any()).Times(0)

		found, err := gw.ExistsByIDs(ctx, []entity.CategoryID{id})

		req.NoError(err)
		req.Equal([]entity.CategoryID{id}, found)
	})
}

func TestGenreGateway(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	inner := mocks.NewMockGenreGateway(ctrl)
	publisher := mocks.NewMockPublisher(ctrl)
	gw := NewGenreGateway(inner, publisher, logrus.New())
	cid, _ := entity.CategoryIDFrom("c-1")
	g := entity.NewGenre(lo.ToPtr("Action"), false, cid)

	inner.EXPECT().Update(gomock.Any(), g).Return(g, nil)
	publisher.EXPECT().PublishJSON(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, body any) error {
			ev := body.(CatalogEvent)
			var payload GenrePayload
			req.NoError(json.Unmarshal(ev.Payload, &payload))
			req.Equal(Updated, ev.Type)
			req.Equal([]string{"c-1"}, payload.Categories)
			req.False(payload.Active)
			req.NotNil(payload.DeletedAt)
			return nil
		})

	_, err := gw.Update(context.Background(), g)

	req.NoError(err)
}
