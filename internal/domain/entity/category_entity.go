package entity

import (
	"time"

	"github.com/samber/lo"

	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

const CategoryAggregate = "Category"

// Category is the aggregate root for catalog categories.
// A nil name is kept as-is so validation can tell "missing" from "blank".
type Category struct {
	Lifecycle

	id          CategoryID
	name        *string
	description string
	active      bool
}

// NewCategory stamps a fresh identity and timestamps. It never fails: invalid
// input produces a Category that fails Validate.
func NewCategory(name *string, description string, active bool) *Category {
	return &Category{
		Lifecycle:   newLifecycle(active),
		id:          NewCategoryID(),
		name:        cloneName(name),
		description: description,
		active:      active,
	}
}

// RestoreCategory rebuilds a Category read from storage. Stored rows were
// valid when written, so any violation aborts with a *validation.DomainError.
func RestoreCategory(
	id CategoryID,
	name string,
	description string,
	active bool,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Category, error) {
	c := &Category{
		Lifecycle:   restoreLifecycle(createdAt, updatedAt, deletedAt),
		id:          id,
		name:        lo.ToPtr(name),
		description: description,
		active:      active,
	}
	if err := c.Validate(validation.Throws{}); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyCategory returns an independent copy, so a use case can mutate and
// validate without touching the instance it loaded.
func CopyCategory(c *Category) *Category {
	cp := *c
	cp.name = cloneName(c.name)
	cp.Lifecycle = restoreLifecycle(c.createdAt, c.updatedAt, c.deletedAt)
	return &cp
}

func (c *Category) ID() CategoryID {
	return c.id
}

// Name returns the name, or "" when it was never supplied.
func (c *Category) Name() string {
	return lo.FromPtr(c.name)
}

func (c *Category) Description() string {
	return c.description
}

func (c *Category) IsActive() bool {
	return c.active
}

func (c *Category) Validate(h validation.Handler) error {
	return categoryValidator{category: c, handler: h}.validate()
}

func (c *Category) Activate() *Category {
	c.active = true
	c.markActive()
	return c
}

func (c *Category) Deactivate() *Category {
	c.active = false
	c.markInactive()
	return c
}

// Update replaces the business fields; active and deletedAt are re-derived.
func (c *Category) Update(name *string, description string, active bool) *Category {
	c.name = cloneName(name)
	c.description = description
	if active {
		return c.Activate()
	}
	return c.Deactivate()
}

func cloneName(name *string) *string {
	if name == nil {
		return nil
	}
	return lo.ToPtr(*name)
}
