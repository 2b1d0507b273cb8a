package technology

import (
	"context"

	"interviewdock/internal/domain"
)

type Repository interface {
	// List returns technologies joined with their category, ordered for
	// display. categoryID narrows the list when non-empty.
	List(ctx context.Context, categoryID string) ([]domain.Technology, error)
	GetByID(ctx context.Context, id string) (*domain.Technology, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Technology, error)
	Create(ctx context.Context, t domain.Technology) (*domain.Technology, error)
}
