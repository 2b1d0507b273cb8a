package question

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

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

const questionColumns = `
q.id::text, q.title, q.answer, COALESCE(q.code_snippet, ''), COALESCE(q.code_language, ''), q.difficulty, q.technology_id::text, q.created_at, q.updated_at,
t.id::text, t.name, t.slug, COALESCE(t.description, ''), COALESCE(t.icon, ''), t.sort_order, t.category_id::text, t.created_at, t.updated_at,
c.id::text, c.name, c.slug, COALESCE(c.description, ''), c.sort_order, c.created_at, c.updated_at`

// buildWhere composes the AND of every supplied filter into a WHERE
// clause over the questions alias q. Absent fields add nothing.
func buildWhere(f Filter) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if f.TechnologyID != "" {
		add("q.technology_id = $%d", f.TechnologyID)
	}
	if f.Difficulty != "" {
		add("q.difficulty = $%d", string(f.Difficulty))
	}
	if f.Tag != "" {
		add(`EXISTS (
    SELECT 1 FROM question_tags qt
    JOIN tags tg ON tg.id = qt.tag_id
    WHERE qt.question_id = q.id AND tg.slug = $%d
)`, f.Tag)
	}
	if f.Search != "" {
		add("q.title ILIKE '%%' || $%d || '%%'", f.Search)
	}

	if len(clauses) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(clauses, "\nAND "), args
}

func (r *postgresRepo) Count(ctx context.Context, f Filter) (int, error) {
	where, args := buildWhere(f)
	q := "SELECT COUNT(*) FROM questions q\n" + where

	var total int
	if err := r.pool.QueryRow(ctx, q, args...).Scan(&total); err != nil {
		r.logger.Printf("question repo: count error=%v", err)
		return 0, err
	}
	return total, nil
}

func (r *postgresRepo) List(ctx context.Context, f Filter, limit, offset int) ([]domain.Question, error) {
	where, args := buildWhere(f)
	// Creation time alone is the contract; id breaks ties so equal
	// timestamps still order deterministically.
	q := `
SELECT ` + questionColumns + `
FROM questions q
JOIN technologies t ON t.id = q.technology_id
JOIN categories c ON c.id = t.category_id
` + where + fmt.Sprintf(`
ORDER BY q.created_at DESC, q.id DESC
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("question repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Question{}
	for rows.Next() {
		item, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *item)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("question repo: list rows error=%v", err)
		return nil, err
	}
	r.logger.Printf("question repo: list count=%d limit=%d offset=%d", len(result), limit, offset)
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Question, error) {
	q := `
SELECT ` + questionColumns + `
FROM questions q
JOIN technologies t ON t.id = q.technology_id
JOIN categories c ON c.id = t.category_id
WHERE q.id = $1
`
	item, err := scanQuestion(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("question repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return item, nil
}

func (r *postgresRepo) ListByTechnology(ctx context.Context, technologyID string) ([]domain.Question, error) {
	return r.List(ctx, Filter{TechnologyID: technologyID}, allRowsLimit, 0)
}

// allRowsLimit bounds the unpaginated per-technology listing; a single
// technology never approaches this.
const allRowsLimit = 10000

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Question, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertQuestion = `
INSERT INTO questions (id, title, answer, code_snippet, code_language, difficulty, technology_id)
VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7)
RETURNING created_at, updated_at
`
	id := uuid.NewString()
	var createdAt, updatedAt time.Time
	if err := tx.QueryRow(ctx, insertQuestion,
		id, in.Title, in.Answer, in.CodeSnippet, in.CodeLanguage, string(in.Difficulty), in.TechnologyID,
	).Scan(&createdAt, &updatedAt); err != nil {
		r.logger.Printf("question repo: create title=%q error=%v", in.Title, err)
		return nil, err
	}

	const insertLink = `
INSERT INTO question_tags (question_id, tag_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING
`
	for _, tagID := range in.TagIDs {
		if _, err := tx.Exec(ctx, insertLink, id, tagID); err != nil {
			r.logger.Printf("question repo: link tag question_id=%s tag_id=%s error=%v", id, tagID, err)
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	r.logger.Printf("question repo: created id=%s tags=%d", id, len(in.TagIDs))

	return r.GetByID(ctx, id)
}

func scanQuestion(row pgx.Row) (*domain.Question, error) {
	var (
		item domain.Question
		t    domain.Technology
		c    domain.Category
	)
	err := row.Scan(
		&item.ID, &item.Title, &item.Answer, &item.CodeSnippet, &item.CodeLanguage, &item.Difficulty, &item.TechnologyID, &item.CreatedAt, &item.UpdatedAt,
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.Icon, &t.Order, &t.CategoryID, &t.CreatedAt, &t.UpdatedAt,
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Order, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	t.Category = &c
	item.Technology = &t
	return &item, nil
}
