package question

import (
	"context"

	"interviewdock/internal/domain"
)

// Filter narrows the question listing. Zero-value fields impose no
// constraint; supplied fields combine with logical AND.
type Filter struct {
	TechnologyID string
	Difficulty   domain.Difficulty
	Tag          string // slug of any attached tag
	Search       string // case-insensitive substring of the title
}

// CreateInput carries the resolved fields for a new question. Tag
// resolution happens before this point; TagIDs reference existing rows.
type CreateInput struct {
	Title        string
	Answer       string
	CodeSnippet  string
	CodeLanguage string
	Difficulty   domain.Difficulty
	TechnologyID string
	TagIDs       []string
}

type Repository interface {
	// Count returns the number of questions matching f across all pages.
	Count(ctx context.Context, f Filter) (int, error)
	// List returns the page of matching questions, newest first, each
	// joined with its technology and that technology's category. Tags
	// are attached by the service layer.
	List(ctx context.Context, f Filter, limit, offset int) ([]domain.Question, error)
	GetByID(ctx context.Context, id string) (*domain.Question, error)
	ListByTechnology(ctx context.Context, technologyID string) ([]domain.Question, error)
	Create(ctx context.Context, in CreateInput) (*domain.Question, error)
}
