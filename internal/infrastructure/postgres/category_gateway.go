package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/samber/lo"

	"github.com/oksasatya/go-catalog-admin/internal/domain/entity"
	"github.com/oksasatya/go-catalog-admin/internal/domain/gateway"
	"github.com/oksasatya/go-catalog-admin/internal/domain/pagination"
)

type categoryRow struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Active      bool       `db:"active"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (r categoryRow) toEntity() (*entity.Category, error) {
	id, err := entity.CategoryIDFrom(r.ID)
	if err != nil {
		return nil, err
	}
	return entity.RestoreCategory(id, r.Name, r.Description, r.Active,
		r.CreatedAt.UTC(), r.UpdatedAt.UTC(), utcPtr(r.DeletedAt))
}

const categoryColumns = `id, name, description, active, created_at, updated_at, deleted_at`

type CategoryGateway struct {
	db DB
}

func NewCategoryGateway(db DB) *CategoryGateway {
	return &CategoryGateway{db: db}
}

func (g *CategoryGateway) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	_, err := g.db.Exec(ctx, `
		INSERT INTO categories (id, name, description, active, created_at, updated_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, c.ID().String(), c.Name(), c.Description(), c.IsActive(), c.CreatedAt(), c.UpdatedAt(), c.DeletedAt())
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (g *CategoryGateway) Update(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	res, err := g.db.Exec(ctx, `
		UPDATE categories
		SET name = $1, description = $2, active = $3, updated_at = $4, deleted_at = $5
		WHERE id = $6
	`, c.Name(), c.Description(), c.IsActive(), c.UpdatedAt(), c.DeletedAt(), c.ID().String())
	if err != nil {
		return nil, fmt.Errorf("update category: %w", err)
	}
	if res.RowsAffected() == 0 {
		return nil, gateway.ErrNotFound
	}
	return c, nil
}

func (g *CategoryGateway) FindByID(ctx context.Context, id entity.CategoryID) (*entity.Category, error) {
	rows, err := g.db.Query(ctx, `SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[categoryRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, gateway.ErrNotFound
		}
		return nil, err
	}
	return row.toEntity()
}

// DeleteByID is idempotent; deleting an unknown id succeeds.
func (g *CategoryGateway) DeleteByID(ctx context.Context, id entity.CategoryID) error {
	_, err := g.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id.String())
	return err
}

// FindAll filters by name or description, case-insensitively.
func (g *CategoryGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*entity.Category], error) {
	where, args := "", []any{}
	if pattern := likePattern(q.Terms); pattern != "" {
		where = ` WHERE name ILIKE $1 OR description ILIKE $1`
		args = append(args, pattern)
	}

	var total int64
	if err := g.db.QueryRow(ctx, `SELECT COUNT(*) FROM categories`+where, args...).Scan(&total); err != nil {
		return pagination.Pagination[*entity.Category]{}, fmt.Errorf("count categories: %w", err)
	}

	sql := fmt.Sprintf(`SELECT %s FROM categories%s%s LIMIT $%d OFFSET $%d`,
		categoryColumns, where, categorySort.orderBy(q), len(args)+1, len(args)+2)
	rows, err := g.db.Query(ctx, sql, append(args, q.PerPage, q.Offset())...)
	if err != nil {
		return pagination.Pagination[*entity.Category]{}, fmt.Errorf("list categories: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[categoryRow])
	if err != nil {
		return pagination.Pagination[*entity.Category]{}, fmt.Errorf("scan categories: %w", err)
	}

	items := make([]*entity.Category, 0, len(found))
	for _, r := range found {
		c, err := r.toEntity()
		if err != nil {
			return pagination.Pagination[*entity.Category]{}, err
		}
		items = append(items, c)
	}
	return pagination.New(q.Page, q.PerPage, total, items), nil
}

func (g *CategoryGateway) ExistsByIDs(ctx context.Context, ids []entity.CategoryID) ([]entity.CategoryID, error) {
	if len(ids) == 0 {
		return []entity.CategoryID{}, nil
	}
	raw := lo.Map(ids, func(id entity.CategoryID, _ int) string { return id.String() })
	rows, err := g.db.Query(ctx, `SELECT id FROM categories WHERE id = ANY($1)`, raw)
	if err != nil {
		return nil, fmt.Errorf("check categories: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	return lo.FilterMap(found, func(s string, _ int) (entity.CategoryID, bool) {
		id, err := entity.CategoryIDFrom(s)
		return id, err == nil
	}), nil
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

var _ gateway.CategoryGateway = (*CategoryGateway)(nil)
