package genre

import (
	"time"

	"github.com/samber/lo"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
)

type CreateOutput struct {
	ID string `json:"id"`
}

func createOutputFrom(g *entity.Genre) CreateOutput {
	return CreateOutput{ID: g.ID().String()}
}

type UpdateOutput struct {
	ID string `json:"id"`
}

func updateOutputFrom(g *entity.Genre) UpdateOutput {
	return UpdateOutput{ID: g.ID().String()}
}

type Output struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Active     bool       `json:"is_active"`
	Categories []string   `json:"categories_id"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

func OutputFrom(g *entity.Genre) Output {
	return Output{
		ID:         g.ID().String(),
		Name:       g.Name(),
		Active:     g.IsActive(),
		Categories: categoryStrings(g.Categories()),
		CreatedAt:  g.CreatedAt(),
		UpdatedAt:  g.UpdatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}

type ListOutput struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Active     bool       `json:"is_active"`
	Categories []string   `json:"categories_id"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
}

func ListOutputFrom(g *entity.Genre) ListOutput {
	return ListOutput{
		ID:         g.ID().String(),
		Name:       g.Name(),
		Active:     g.IsActive(),
		Categories: categoryStrings(g.Categories()),
		CreatedAt:  g.CreatedAt(),
		DeletedAt:  g.DeletedAt(),
	}
}

func categoryStrings(ids []entity.CategoryID) []string {
	return lo.Map(ids, func(id entity.CategoryID, _ int) string { return id.String() })
}
