package category

import (
	"time"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
)

type CreateOutput struct {
	ID string `json:"id"`
}

func createOutputFrom(c *entity.Category) CreateOutput {
	return CreateOutput{ID: c.ID().String()}
}

type UpdateOutput struct {
	ID string `json:"id"`
}

func updateOutputFrom(c *entity.Category) UpdateOutput {
	return UpdateOutput{ID: c.ID().String()}
}

// Output is the full view of one category.
type Output struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func OutputFrom(c *entity.Category) Output {
	return Output{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}

// ListOutput is the row shape used by list responses.
type ListOutput struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Active      bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
}

func ListOutputFrom(c *entity.Category) ListOutput {
	return ListOutput{
		ID:          c.ID().String(),
		Name:        c.Name(),
		Description: c.Description(),
		Active:      c.IsActive(),
		CreatedAt:   c.CreatedAt(),
		DeletedAt:   c.DeletedAt(),
	}
}
