package tag

import (
	"context"

	"interviewdock/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) FindOrCreate(ctx context.Context, name, slug string) (*domain.Tag, error) {
	// The no-op DO UPDATE makes RETURNING yield the existing row on
	// conflict instead of zero rows.
	const q = `
INSERT INTO tags (id, name, slug)
VALUES ($1, $2, $3)
ON CONFLICT (slug) DO UPDATE SET name = tags.name
RETURNING id::text, name, slug, created_at, updated_at
`
	var t domain.Tag
	err := r.pool.QueryRow(ctx, q, uuid.NewString(), name, slug).
		Scan(&t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) ListByQuestionIDs(ctx context.Context, questionIDs []string) (map[string][]domain.Tag, error) {
	if len(questionIDs) == 0 {
		return map[string][]domain.Tag{}, nil
	}
	const q = `
SELECT qt.question_id::text, t.id::text, t.name, t.slug, t.created_at, t.updated_at
FROM question_tags qt
JOIN tags t ON t.id = qt.tag_id
WHERE qt.question_id = ANY($1)
`
	rows, err := r.pool.Query(ctx, q, questionIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string][]domain.Tag, len(questionIDs))
	for rows.Next() {
		var questionID string
		var t domain.Tag
		if err := rows.Scan(&questionID, &t.ID, &t.Name, &t.Slug, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		result[questionID] = append(result[questionID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
