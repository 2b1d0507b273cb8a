package technology

import (
	"context"

	"interviewdock/internal/domain"
	technologyrepo "interviewdock/internal/repository/technology"
)

type Service struct {
	repo technologyrepo.Repository
}

func New(repo technologyrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, categoryID string) ([]domain.Technology, error) {
	return s.repo.List(ctx, categoryID)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Technology, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*domain.Technology, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// CreateInput holds the fields accepted for a new technology. Order is
// optional and defaults to zero.
type CreateInput struct {
	Name        string
	Slug        string
	Description string
	Icon        string
	CategoryID  string
	Order       int
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Technology, error) {
	return s.repo.Create(ctx, domain.Technology{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Icon:        in.Icon,
		Order:       in.Order,
		CategoryID:  in.CategoryID,
	})
}
