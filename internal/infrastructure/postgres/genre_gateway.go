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

type genreRow struct {
	ID        string     `db:"id"`
	Name      string     `db:"name"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

func (r genreRow) toEntity(categories []string) (*entity.Genre, error) {
	id, err := entity.GenreIDFrom(r.ID)
	if err != nil {
		return nil, err
	}
	ids := lo.FilterMap(categories, func(s string, _ int) (entity.CategoryID, bool) {
		cid, err := entity.CategoryIDFrom(s)
		return cid, err == nil
	})
	return entity.RestoreGenre(id, r.Name, r.Active, ids,
		r.CreatedAt.UTC(), r.UpdatedAt.UTC(), utcPtr(r.DeletedAt))
}

type genreCategoryRow struct {
	GenreID    string `db:"genre_id"`
	CategoryID string `db:"category_id"`
}

const genreColumns = `id, name, active, created_at, updated_at, deleted_at`

// GenreGateway stores genres and their category links. Writes touching both
// tables run in one transaction.
type GenreGateway struct {
	db DB
}

func NewGenreGateway(db DB) *GenreGateway {
	return &GenreGateway{db: db}
}

func (g *GenreGateway) Create(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	err := pgx.BeginFunc(ctx, g.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO genres (id, name, active, created_at, updated_at, deleted_at)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, genre.ID().String(), genre.Name(), genre.IsActive(), genre.CreatedAt(), genre.UpdatedAt(), genre.DeletedAt())
		if err != nil {
			return fmt.Errorf("insert genre: %w", err)
		}
		return insertLinks(ctx, tx, genre)
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

func (g *GenreGateway) Update(ctx context.Context, genre *entity.Genre) (*entity.Genre, error) {
	err := pgx.BeginFunc(ctx, g.db, func(tx pgx.Tx) error {
		res, err := tx.Exec(ctx, `
			UPDATE genres
			SET name = $1, active = $2, updated_at = $3, deleted_at = $4
			WHERE id = $5
		`, genre.Name(), genre.IsActive(), genre.UpdatedAt(), genre.DeletedAt(), genre.ID().String())
		if err != nil {
			return fmt.Errorf("update genre: %w", err)
		}
		if res.RowsAffected() == 0 {
			return gateway.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM genres_categories WHERE genre_id = $1`, genre.ID().String()); err != nil {
			return fmt.Errorf("clear genre categories: %w", err)
		}
		return insertLinks(ctx, tx, genre)
	})
	if err != nil {
		return nil, err
	}
	return genre, nil
}

func insertLinks(ctx context.Context, tx pgx.Tx, genre *entity.Genre) error {
	categories := genre.Categories()
	if len(categories) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, id := range categories {
		batch.Queue(`INSERT INTO genres_categories (genre_id, category_id) VALUES ($1, $2)`,
			genre.ID().String(), id.String())
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("link genre categories: %w", err)
	}
	return nil
}

func (g *GenreGateway) FindByID(ctx context.Context, id entity.GenreID) (*entity.Genre, error) {
	rows, err := g.db.Query(ctx, `SELECT `+genreColumns+` FROM genres WHERE id = $1`, id.String())
	if err != nil {
		return nil, err
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[genreRow])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, gateway.ErrNotFound
		}
		return nil, err
	}
	links, err := g.categoriesOf(ctx, []string{row.ID})
	if err != nil {
		return nil, err
	}
	return row.toEntity(links[row.ID])
}

// DeleteByID is idempotent; links go with the genre through ON DELETE CASCADE.
func (g *GenreGateway) DeleteByID(ctx context.Context, id entity.GenreID) error {
	_, err := g.db.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id.String())
	return err
}

func (g *GenreGateway) FindAll(ctx context.Context, q pagination.SearchQuery) (pagination.Pagination[*entity.Genre], error) {
	where, args := "", []any{}
	if pattern := likePattern(q.Terms); pattern != "" {
		where = ` WHERE name ILIKE $1`
		args = append(args, pattern)
	}

	var total int64
	if err := g.db.QueryRow(ctx, `SELECT COUNT(*) FROM genres`+where, args...).Scan(&total); err != nil {
		return pagination.Pagination[*entity.Genre]{}, fmt.Errorf("count genres: %w", err)
	}

	sql := fmt.Sprintf(`SELECT %s FROM genres%s%s LIMIT $%d OFFSET $%d`,
		genreColumns, where, genreSort.orderBy(q), len(args)+1, len(args)+2)
	rows, err := g.db.Query(ctx, sql, append(args, q.PerPage, q.Offset())...)
	if err != nil {
		return pagination.Pagination[*entity.Genre]{}, fmt.Errorf("list genres: %w", err)
	}
	found, err := pgx.CollectRows(rows, pgx.RowToStructByName[genreRow])
	if err != nil {
		return pagination.Pagination[*entity.Genre]{}, fmt.Errorf("scan genres: %w", err)
	}

	links, err := g.categoriesOf(ctx, lo.Map(found, func(r genreRow, _ int) string { return r.ID }))
	if err != nil {
		return pagination.Pagination[*entity.Genre]{}, err
	}
	items := make([]*entity.Genre, 0, len(found))
	for _, r := range found {
		genre, err := r.toEntity(links[r.ID])
		if err != nil {
			return pagination.Pagination[*entity.Genre]{}, err
		}
		items = append(items, genre)
	}
	return pagination.New(q.Page, q.PerPage, total, items), nil
}

// categoriesOf loads the category ids linked to each genre in one query.
func (g *GenreGateway) categoriesOf(ctx context.Context, genreIDs []string) (map[string][]string, error) {
	if len(genreIDs) == 0 {
		return map[string][]string{}, nil
	}
	rows, err := g.db.Query(ctx, `
		SELECT genre_id, category_id FROM genres_categories
		WHERE genre_id = ANY($1)
		ORDER BY genre_id, category_id
	`, genreIDs)
	if err != nil {
		return nil, fmt.Errorf("load genre categories: %w", err)
	}
	links, err := pgx.CollectRows(rows, pgx.RowToStructByName[genreCategoryRow])
	if err != nil {
		return nil, err
	}
	grouped := lo.GroupBy(links, func(l genreCategoryRow) string { return l.GenreID })
	return lo.MapValues(grouped, func(ls []genreCategoryRow, _ string) []string {
		return lo.Map(ls, func(l genreCategoryRow, _ int) string { return l.CategoryID })
	}), nil
}

var _ gateway.GenreGateway = (*GenreGateway)(nil)
