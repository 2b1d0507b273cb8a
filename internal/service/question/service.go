// Package question implements the filtered, paginated view over the
// question catalog: predicate composition, pre-pagination counting,
// page slicing and relation attachment.
package question

import (
	"context"

	"interviewdock/internal/domain"
	"interviewdock/internal/pagination"
	questionrepo "interviewdock/internal/repository/question"
	tagrepo "interviewdock/internal/repository/tag"
	technologyrepo "interviewdock/internal/repository/technology"
)

type Service struct {
	questions    questionrepo.Repository
	tags         tagrepo.Repository
	technologies technologyrepo.Repository
}

func New(questions questionrepo.Repository, tags tagrepo.Repository, technologies technologyrepo.Repository) *Service {
	return &Service{questions: questions, tags: tags, technologies: technologies}
}

// Result is one page of questions plus the metadata describing the full
// matching set.
type Result struct {
	Data       []domain.Question
	Pagination pagination.Meta
}

// List produces the page of questions matching every supplied filter,
// newest first. Total is counted before pagination, so a page past the
// end yields empty data with intact metadata.
func (s *Service) List(ctx context.Context, f questionrepo.Filter, p pagination.Params) (*Result, error) {
	total, err := s.questions.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Data:       []domain.Question{},
		Pagination: pagination.NewMeta(total, p),
	}
	if total == 0 || p.Offset() >= total {
		return result, nil
	}

	items, err := s.questions.List(ctx, f, p.Limit, p.Offset())
	if err != nil {
		return nil, err
	}
	if err := s.attachTags(ctx, items); err != nil {
		return nil, err
	}

	result.Data = items
	return result, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Question, error) {
	item, err := s.questions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	single := []domain.Question{*item}
	if err := s.attachTags(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

// ListByTechnology returns every question under one technology, newest
// first, with tags attached.
func (s *Service) ListByTechnology(ctx context.Context, technologyID string) ([]domain.Question, error) {
	items, err := s.questions.ListByTechnology(ctx, technologyID)
	if err != nil {
		return nil, err
	}
	if err := s.attachTags(ctx, items); err != nil {
		return nil, err
	}
	return items, nil
}

// CreateInput holds the fields accepted for a new question. TagNames
// are free-form; each resolves to an existing tag by normalized slug or
// creates one.
type CreateInput struct {
	Title        string
	Answer       string
	CodeSnippet  string
	CodeLanguage string
	Difficulty   domain.Difficulty
	TechnologyID string
	TagNames     []string
}

// Create persists a new question. The referenced technology must exist;
// domain.ErrNotFound is returned when it does not.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Question, error) {
	if _, err := s.technologies.GetByID(ctx, in.TechnologyID); err != nil {
		return nil, err
	}

	tagIDs := make([]string, 0, len(in.TagNames))
	seen := make(map[string]bool, len(in.TagNames))
	for _, name := range in.TagNames {
		slug := domain.Slugify(name)
		if slug == "" || seen[slug] {
			continue
		}
		seen[slug] = true
		t, err := s.tags.FindOrCreate(ctx, name, slug)
		if err != nil {
			return nil, err
		}
		tagIDs = append(tagIDs, t.ID)
	}

	created, err := s.questions.Create(ctx, questionrepo.CreateInput{
		Title:        in.Title,
		Answer:       in.Answer,
		CodeSnippet:  in.CodeSnippet,
		CodeLanguage: in.CodeLanguage,
		Difficulty:   in.Difficulty,
		TechnologyID: in.TechnologyID,
		TagIDs:       tagIDs,
	})
	if err != nil {
		return nil, err
	}
	single := []domain.Question{*created}
	if err := s.attachTags(ctx, single); err != nil {
		return nil, err
	}
	return &single[0], nil
}

func (s *Service) attachTags(ctx context.Context, items []domain.Question) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	byQuestion, err := s.tags.ListByQuestionIDs(ctx, ids)
	if err != nil {
		return err
	}
	for i := range items {
		tags := byQuestion[items[i].ID]
		if tags == nil {
			tags = []domain.Tag{}
		}
		items[i].Tags = tags
	}
	return nil
}
