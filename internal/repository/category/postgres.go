package category

import (
	"context"
	"errors"

	"interviewdock/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const categoryColumns = `id::text, name, slug, COALESCE(description, ''), sort_order, created_at, updated_at`

func (r *postgresRepo) List(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT ` + categoryColumns + `
FROM categories
ORDER BY sort_order ASC, name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Order, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachTechnologies(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	const q = `
SELECT ` + categoryColumns + `
FROM categories
WHERE id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const q = `
SELECT ` + categoryColumns + `
FROM categories
WHERE slug = $1
`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) getOne(ctx context.Context, q string, arg string) (*domain.Category, error) {
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, arg).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	list := []domain.Category{c}
	if err := r.attachTechnologies(ctx, list); err != nil {
		return nil, err
	}
	return &list[0], nil
}

// attachTechnologies loads the technologies owned by each category in
// display order and fills the Technologies slices in place.
func (r *postgresRepo) attachTechnologies(ctx context.Context, categories []domain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	ids := make([]string, 0, len(categories))
	byID := make(map[string]*domain.Category, len(categories))
	for i := range categories {
		ids = append(ids, categories[i].ID)
		byID[categories[i].ID] = &categories[i]
	}

	const q = `
SELECT id::text, name, slug, COALESCE(description, ''), COALESCE(icon, ''), sort_order, category_id::text, created_at, updated_at
FROM technologies
WHERE category_id = ANY($1)
ORDER BY sort_order ASC, name ASC
`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Description, &t.Icon, &t.Order, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return err
		}
		if c, ok := byID[t.CategoryID]; ok {
			c.Technologies = append(c.Technologies, t)
		}
	}
	return rows.Err()
}
