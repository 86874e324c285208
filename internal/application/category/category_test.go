package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
	"github.com/oksasatya/go-catalog-admin/internal/mocks"
)

func TestCreateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a valid category", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(gw, nil)

		var sent *entity.Category
		gw.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, c *entity.Category) (*entity.Category, error) {
				sent = c
				return c, nil
			}).
			Times(1)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Movies"), "The most watched", true))

		req.True(r.IsSuccess())
		req.Equal(sent.ID().String(), r.Value().ID)
		req.Equal("Movies", sent.Name())
		req.Equal("The most watched", sent.Description())
		req.True(sent.IsActive())
		req.Nil(sent.DeletedAt())
	})

	t.Run("should create an inactive category", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(gw, nil)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *entity.Category) (*entity.Category, error) {
				req.False(c.IsActive())
				req.NotNil(c.DeletedAt())
				return c, nil
			})

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Movies"), "", false))

		req.True(r.IsSuccess())
	})

	t.Run("should fall back to the sent category when the gateway returns nothing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(gw, nil)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, nil)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Movies"), "", true))

		req.True(r.IsSuccess())
		req.NotEmpty(r.Value().ID)
	})

	t.Run("should not persist a category with a null name", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(gw, nil)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		r := uc.Execute(ctx, NewCreateCommand(nil, "desc", true))

		req.True(r.IsFailure())
		req.Equal([]string{"'name' should not be null"}, r.Notification().Messages())
	})

	t.Run("should report a gateway failure as a single error", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		logger, hook := test.NewNullLogger()
		uc := NewCreateUseCase(gw, logger)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("Gateway error")).Times(1)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Movies"), "", true))

		req.True(r.IsFailure())
		req.Equal([]string{"Gateway error"}, r.Notification().Messages())
		req.Len(hook.AllEntries(), 1)
		req.Equal(entity.CategoryAggregate, hook.LastEntry().Data["aggregate"])
	})

	t.Run("should report a gateway panic as a single error", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(gw, nil)

		gw.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(context.Context, *entity.Category) (*entity.Category, error) {
				panic("pool closed")
			})

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Movies"), "", true))

		req.True(r.IsFailure())
		req.Equal([]string{"pool closed"}, r.Notification().Messages())
	})
}

func TestUpdateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should update an existing category", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(gw, nil)
		stored := entity.NewCategory(lo.ToPtr("Film"), "old", true)

		gw.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		gw.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *entity.Category) (*entity.Category, error) {
				req.Equal(stored.ID(), c.ID())
				req.Equal("Movies", c.Name())
				req.Equal("new", c.Description())
				req.False(c.IsActive())
				req.NotNil(c.DeletedAt())
				req.Equal(stored.CreatedAt(), c.CreatedAt())
				req.True(c.UpdatedAt().After(stored.UpdatedAt()))
				return c, nil
			})

		r, err := uc.Execute(ctx, NewUpdateCommand(stored.ID().String(), lo.ToPtr("Movies"), "new", false))

		req.NoError(err)
		req.True(r.IsSuccess())
		req.Equal(stored.ID().String(), r.Value().ID)
	})

	t.Run("should return not found for an unknown id", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(gw, nil)

		gw.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrNotFound)
		gw.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		_, err := uc.Execute(ctx, NewUpdateCommand("123", lo.ToPtr("Movies"), "", true))

		req.True(validation.IsNotFound(err))
		req.EqualError(err, "Category with id 123 not found")
	})

	t.Run("should reject an empty id", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		uc := NewUpdateUseCase(mocks.NewMockCategoryGateway(ctrl), nil)

		_, err := uc.Execute(ctx, NewUpdateCommand("", lo.ToPtr("Movies"), "", true))

		req.ErrorIs(err, entity.ErrInvalidIdentifier)
	})

	t.Run("should leave the loaded category untouched when invalid", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(gw, nil)
		stored := entity.NewCategory(lo.ToPtr("Film"), "old", true)
		updatedAt := stored.UpdatedAt()

		gw.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		gw.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		r, err := uc.Execute(ctx, NewUpdateCommand(stored.ID().String(), lo.ToPtr(" "), "", false))

		req.NoError(err)
		req.Equal([]string{"'name' should not be blank"}, r.Notification().Messages())
		req.Equal("Film", stored.Name())
		req.True(stored.IsActive())
		req.Equal(updatedAt, stored.UpdatedAt())
	})

	t.Run("should report a gateway failure on update", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(gw, nil)
		stored := entity.NewCategory(lo.ToPtr("Film"), "", true)

		gw.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		gw.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil, errors.New("Gateway error"))

		r, err := uc.Execute(ctx, NewUpdateCommand(stored.ID().String(), lo.ToPtr("Movies"), "", true))

		req.NoError(err)
		req.Equal([]string{"Gateway error"}, r.Notification().Messages())
	})

	t.Run("should report a lookup failure through the result", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(gw, nil)

		gw.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

		r, err := uc.Execute(ctx, NewUpdateCommand("abc", lo.ToPtr("Movies"), "", true))

		req.NoError(err)
		req.Equal([]string{"timeout"}, r.Notification().Messages())
	})
}

func TestGetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the full output", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		stored := entity.NewCategory(lo.ToPtr("Movies"), "desc", false)

		gw.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		out, err := NewGetUseCase(gw).Execute(ctx, stored.ID().String())

		req.NoError(err)
		req.Equal(stored.ID().String(), out.ID)
		req.Equal("Movies", out.Name)
		req.Equal("desc", out.Description)
		req.False(out.Active)
		req.Equal(stored.CreatedAt(), out.CreatedAt)
		req.Equal(stored.UpdatedAt(), out.UpdatedAt)
		req.NotNil(out.DeletedAt)
	})

	t.Run("should return not found", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)

		gw.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrNotFound)

		_, err := NewGetUseCase(gw).Execute(ctx, "missing")

		var nf *validation.NotFoundError
		req.ErrorAs(err, &nf)
		req.Equal("missing", nf.ID)
	})

	t.Run("should wrap other gateway errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		boom := errors.New("boom")

		gw.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := NewGetUseCase(gw).Execute(ctx, "abc")

		req.ErrorIs(err, boom)
		req.False(validation.IsNotFound(err))
	})
}

func TestDeleteUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete by id", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		id, _ := entity.CategoryIDFrom("123")

		gw.EXPECT().DeleteByID(gomock.Any(), id).Return(nil).Times(1)

		req.NoError(NewDeleteUseCase(gw).Execute(ctx, "123"))
	})

	t.Run("should propagate gateway errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		boom := errors.New("Gateway error")

		gw.EXPECT().DeleteByID(gomock.Any(), gomock.Any()).Return(boom)

		req.ErrorIs(NewDeleteUseCase(gw).Execute(ctx, "123"), boom)
	})
}

func TestListUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should map the page", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		query, _ := pagination.NewSearchQuery(0, 10, "", "createdAt", pagination.Asc)
		items := []*entity.Category{
			entity.NewCategory(lo.ToPtr("Movies"), "", true),
			entity.NewCategory(lo.ToPtr("Series"), "", true),
		}

		gw.EXPECT().FindAll(gomock.Any(), query).Return(pagination.New(0, 10, 2, items), nil)

		page, err := NewListUseCase(gw).Execute(ctx, query)

		req.NoError(err)
		req.Equal(int64(2), page.Total)
		req.Len(page.Items, 2)
		req.Equal(items[0].ID().String(), page.Items[0].ID)
		req.Equal("Series", page.Items[1].Name)
	})

	t.Run("should return an empty page", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		query, _ := pagination.NewSearchQuery(3, 10, "zzz", "", "")

		gw.EXPECT().FindAll(gomock.Any(), query).Return(pagination.New(3, 10, 0, []*entity.Category{}), nil)

		page, err := NewListUseCase(gw).Execute(ctx, query)

		req.NoError(err)
		req.Empty(page.Items)
		req.Equal(3, page.CurrentPage)
	})

	t.Run("should propagate gateway errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		gw := mocks.NewMockCategoryGateway(ctrl)
		boom := errors.New("Gateway error")

		gw.EXPECT().FindAll(gomock.Any(), gomock.Any()).Return(pagination.Pagination[*entity.Category]{}, boom)

		_, err := NewListUseCase(gw).Execute(ctx, pagination.SearchQuery{})

		req.ErrorIs(err, boom)
	})
}

func TestOutputFrom_Timestamps(t *testing.T) {
	req := require.New(t)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	id, _ := entity.CategoryIDFrom("c-1")
	c, err := entity.RestoreCategory(id, "Movies", "", true, now, now, nil)
	req.NoError(err)

	out := ListOutputFrom(c)

	req.Equal("c-1", out.ID)
	req.Equal(now, out.CreatedAt)
	req.Nil(out.DeletedAt)
}
