package entity

import (
	"slices"
	"time"

	"github.com/samber/lo"

	"github.com/oksasatya/go-catalog-admin/internal/domain/validation"
)

const GenreAggregate = "Genre"

// Genre groups categories. The category set is unordered and deduplicated.
type Genre struct {
	Lifecycle

	id         GenreID
	name       *string
	active     bool
	categories []CategoryID
}

// NewGenre stamps a fresh identity and timestamps; like NewCategory it never
// fails.
func NewGenre(name *string, active bool, categories ...CategoryID) *Genre {
	return &Genre{
		Lifecycle:  newLifecycle(active),
		id:         NewGenreID(),
		name:       cloneName(name),
		active:     active,
		categories: uniqueCategories(categories),
	}
}

// RestoreGenre rebuilds a Genre read from storage, failing fast on any
// violation.
func RestoreGenre(
	id GenreID,
	name string,
	active bool,
	categories []CategoryID,
	createdAt, updatedAt time.Time,
	deletedAt *time.Time,
) (*Genre, error) {
	g := &Genre{
		Lifecycle:  restoreLifecycle(createdAt, updatedAt, deletedAt),
		id:         id,
		name:       lo.ToPtr(name),
		active:     active,
		categories: uniqueCategories(categories),
	}
	if err := g.Validate(validation.Throws{}); err != nil {
		return nil, err
	}
	return g, nil
}

func CopyGenre(g *Genre) *Genre {
	cp := *g
	cp.name = cloneName(g.name)
	cp.categories = slices.Clone(g.categories)
	cp.Lifecycle = restoreLifecycle(g.createdAt, g.updatedAt, g.deletedAt)
	return &cp
}

func (g *Genre) ID() GenreID {
	return g.id
}

func (g *Genre) Name() string {
	return lo.FromPtr(g.name)
}

func (g *Genre) IsActive() bool {
	return g.active
}

// Categories returns a copy of the related category ids.
func (g *Genre) Categories() []CategoryID {
	return slices.Clone(g.categories)
}

func (g *Genre) Validate(h validation.Handler) error {
	return genreValidator{genre: g, handler: h}.validate()
}

func (g *Genre) Activate() *Genre {
	g.active = true
	g.markActive()
	return g
}

func (g *Genre) Deactivate() *Genre {
	g.active = false
	g.markInactive()
	return g
}

func (g *Genre) Update(name *string, active bool, categories []CategoryID) *Genre {
	g.name = cloneName(name)
	g.categories = uniqueCategories(categories)
	if active {
		return g.Activate()
	}
	return g.Deactivate()
}

func (g *Genre) AddCategory(id CategoryID) *Genre {
	if id.IsZero() || slices.Contains(g.categories, id) {
		return g
	}
	g.categories = append(g.categories, id)
	g.touch()
	return g
}

func (g *Genre) AddCategories(ids []CategoryID) *Genre {
	for _, id := range ids {
		g.AddCategory(id)
	}
	return g
}

func (g *Genre) RemoveCategory(id CategoryID) *Genre {
	if !slices.Contains(g.categories, id) {
		return g
	}
	g.categories = lo.Without(g.categories, id)
	g.touch()
	return g
}

func uniqueCategories(ids []CategoryID) []CategoryID {
	if len(ids) == 0 {
		return []CategoryID{}
	}
	return lo.Uniq(lo.Filter(ids, func(id CategoryID, _ int) bool { return !id.IsZero() }))
}
