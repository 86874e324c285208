package genre

import (
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
	"github.com/oksasatya/go-catalog-admin/internal/mocks"
)

func categoryIDs(raw ...string) []entity.CategoryID {
	return lo.Map(raw, func(r string, _ int) entity.CategoryID {
		id, _ := entity.CategoryIDFrom(r)
		return id
	})
}

func TestCreateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should create a genre without categories and skip the category lookup", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(genres, categories, nil)

		categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any()).Times(0)
		genres.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *entity.Genre) (*entity.Genre, error) {
				req.Equal("Action", g.Name())
				req.True(g.IsActive())
				req.Empty(g.Categories())
				return g, nil
			})

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Action"), true, nil))

		req.True(r.IsSuccess())
		req.NotEmpty(r.Value().ID)
	})

	t.Run("should create a genre with existing categories", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(genres, categories, nil)
		ids := categoryIDs("a", "b")

		categories.EXPECT().ExistsByIDs(gomock.Any(), ids).Return(ids, nil)
		genres.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *entity.Genre) (*entity.Genre, error) {
				req.ElementsMatch(ids, g.Categories())
				return g, nil
			})

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Action"), false, []string{"a", "b", "a"}))

		req.True(r.IsSuccess())
	})

	t.Run("should report missing categories in input order", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(genres, categories, nil)

		categories.EXPECT().ExistsByIDs(gomock.Any(), categoryIDs("A", "B", "C")).Return(categoryIDs("B"), nil)
		genres.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Action"), true, []string{"A", "B", "C"}))

		req.True(r.IsFailure())
		req.Equal([]string{"Some categories could not be found: A, C"}, r.Notification().Messages())
	})

	t.Run("should report categories before name errors", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(genres, categories, nil)

		categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any()).Return([]entity.CategoryID{}, nil)
		genres.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr(" "), true, []string{"x"}))

		req.Equal([]string{
			"Some categories could not be found: x",
			"'name' should not be blank",
		}, r.Notification().Messages())
	})

	t.Run("should report a category gateway failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(genres, categories, nil)

		categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		genres.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Action"), true, []string{"x"}))

		req.Equal([]string{"db down"}, r.Notification().Messages())
	})

	t.Run("should reject empty category ids", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewCreateUseCase(genres, categories, nil)

		genres.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Action"), true, []string{""}))

		req.Equal([]string{"'categories_id' should not contain empty identifiers"}, r.Notification().Messages())
	})

	t.Run("should report a genre gateway failure", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		uc := NewCreateUseCase(genres, mocks.NewMockCategoryGateway(ctrl), nil)

		genres.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("Gateway error"))

		r := uc.Execute(ctx, NewCreateCommand(lo.ToPtr("Action"), true, nil))

		req.Equal([]string{"Gateway error"}, r.Notification().Messages())
	})
}

func TestUpdateUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should replace name, state and categories", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(genres, categories, nil)
		stored := entity.NewGenre(lo.ToPtr("Acton"), true, categoryIDs("old")...)

		genres.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		categories.EXPECT().ExistsByIDs(gomock.Any(), categoryIDs("new")).Return(categoryIDs("new"), nil)
		genres.EXPECT().Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, g *entity.Genre) (*entity.Genre, error) {
				req.Equal("Action", g.Name())
				req.False(g.IsActive())
				req.Equal(categoryIDs("new"), g.Categories())
				return g, nil
			})

		r, err := uc.Execute(ctx, NewUpdateCommand(stored.ID().String(), lo.ToPtr("Action"), false, []string{"new"}))

		req.NoError(err)
		req.Equal(stored.ID().String(), r.Value().ID)
		req.Equal(categoryIDs("old"), stored.Categories())
	})

	t.Run("should return not found", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		uc := NewUpdateUseCase(genres, mocks.NewMockCategoryGateway(ctrl), nil)

		genres.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrNotFound)

		_, err := uc.Execute(ctx, NewUpdateCommand("123", lo.ToPtr("Action"), true, nil))

		req.EqualError(err, "Genre with id 123 not found")
	})

	t.Run("should not persist when categories are missing", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		categories := mocks.NewMockCategoryGateway(ctrl)
		uc := NewUpdateUseCase(genres, categories, nil)
		stored := entity.NewGenre(lo.ToPtr("Action"), true)

		genres.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)
		categories.EXPECT().ExistsByIDs(gomock.Any(), gomock.Any()).Return(nil, nil)
		genres.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

		r, err := uc.Execute(ctx, NewUpdateCommand(stored.ID().String(), nil, true, []string{"c1", "c2"}))

		req.NoError(err)
		req.Equal([]string{
			"Some categories could not be found: c1, c2",
			"'name' should not be null",
		}, r.Notification().Messages())
	})
}

func TestGetUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("should return the genre with its categories", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)
		stored := entity.NewGenre(lo.ToPtr("Action"), true, categoryIDs("c1", "c2")...)

		genres.EXPECT().FindByID(gomock.Any(), stored.ID()).Return(stored, nil)

		out, err := NewGetUseCase(genres).Execute(ctx, stored.ID().String())

		req.NoError(err)
		req.Equal("Action", out.Name)
		req.Equal([]string{"c1", "c2"}, out.Categories)
		req.True(out.Active)
	})

	t.Run("should return not found", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		genres := mocks.NewMockGenreGateway(ctrl)

		genres.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, gateway.ErrNotFound)

		_, err := NewGetUseCase(genres).Execute(ctx, "123")

		req.True(validation.IsNotFound(err))
	})
}

func TestDeleteUseCase(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	genres := mocks.NewMockGenreGateway(ctrl)
	id, _ := entity.GenreIDFrom("123")

	genres.EXPECT().DeleteByID(gomock.Any(), id).Return(nil)

	req.NoError(NewDeleteUseCase(genres).Execute(context.Background(), "123"))
	req.ErrorIs(NewDeleteUseCase(genres).Execute(context.Background(), ""), entity.ErrInvalidIdentifier)
}

func TestListUseCase(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	genres := mocks.NewMockGenreGateway(ctrl)
	query, _ := pagination.NewSearchQuery(1, 1, "act", "name", pagination.Desc)
	stored := entity.NewGenre(lo.ToPtr("Action"), true, categoryIDs("c1")...)

	genres.EXPECT().FindAll(gomock.Any(), query).Return(pagination.New(1, 1, 3, []*entity.Genre{stored}), nil)

	page, err := NewListUseCase(genres).Execute(context.Background(), query)

	req.NoError(err)
	req.Equal(int64(3), page.Total)
	req.Equal([]string{"c1"}, page.Items[0].Categories)
}
