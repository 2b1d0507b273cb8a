package technology

import (
	"context"
	"errors"
	"io"
	"log"

	"interviewdock/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const columns = `
t.id::text, t.name, t.slug, COALESCE(t.description, ''), COALESCE(t.icon, ''), t.sort_order, t.category_id::text, t.created_at, t.updated_at,
c.id::text, c.name, c.slug, COALESCE(c.description, ''), c.sort_order, c.created_at, c.updated_at`

func (r *postgresRepo) List(ctx context.Context, categoryID string) ([]domain.Technology, error) {
	q := `
SELECT ` + columns + `
FROM technologies t
JOIN categories c ON c.id = t.category_id
`
	var args []any
	if categoryID != "" {
		q += "WHERE t.category_id = $1\n"
		args = append(args, categoryID)
	}
	q += "ORDER BY t.sort_order ASC, t.name ASC"

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("technology repo: list category_id=%s error=%v", categoryID, err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Technology{}
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *t)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("technology repo: list rows category_id=%s error=%v", categoryID, err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Technology, error) {
	q := `
SELECT ` + columns + `
FROM technologies t
JOIN categories c ON c.id = t.category_id
WHERE t.id = $1
`
	return r.getOne(ctx, q, id)
}

func (r *postgresRepo) GetBySlug(ctx context.Context, slug string) (*domain.Technology, error) {
	q := `
SELECT ` + columns + `
FROM technologies t
JOIN categories c ON c.id = t.category_id
WHERE t.slug = $1
`
	return r.getOne(ctx, q, slug)
}

func (r *postgresRepo) getOne(ctx context.Context, q, arg string) (*domain.Technology, error) {
	t, err := scanTechnology(r.pool.QueryRow(ctx, q, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("technology repo: get %s error=%v", arg, err)
		return nil, err
	}
	return t, nil
}

func (r *postgresRepo) Create(ctx context.Context, t domain.Technology) (*domain.Technology, error) {
	const q = `
INSERT INTO technologies (id, name, slug, description, icon, sort_order, category_id)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
RETURNING created_at, updated_at
`
	t.ID = uuid.NewString()
	err := r.pool.QueryRow(ctx, q, t.ID, t.Name, t.Slug, t.Description, t.Icon, t.Order, t.CategoryID).
		Scan(&t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		r.logger.Printf("technology repo: create slug=%s error=%v", t.Slug, err)
		return nil, err
	}
	r.logger.Printf("technology repo: created id=%s slug=%s", t.ID, t.Slug)
	return &t, nil
}

func scanTechnology(row pgx.Row) (*domain.Technology, error) {
	var t domain.Technology
	var c domain.Category
	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.Icon, &t.Order, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Category = &c
	return &t, nil
}
