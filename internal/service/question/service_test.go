package question

import (
	"context"
	"errors"
	"testing"
	"time"

	"interviewdock/internal/domain"
	"interviewdock/internal/pagination"
	questionrepo "interviewdock/internal/repository/question"
)

type stubQuestionRepo struct {
	countTotal   int
	countErr     error
	lastCountF   questionrepo.Filter
	listItems    []domain.Question
	listErr      error
	listCalls    int
	lastListF    questionrepo.Filter
	lastLimit    int
	lastOffset   int
	created      *domain.Question
	createErr    error
	lastCreate   questionrepo.CreateInput
	byTechnology []domain.Question
}

func (s *stubQuestionRepo) Count(_ context.Context, f questionrepo.Filter) (int, error) {
	s.lastCountF = f
	return s.countTotal, s.countErr
}

func (s *stubQuestionRepo) List(_ context.Context, f questionrepo.Filter, limit, offset int) ([]domain.Question, error) {
	s.listCalls++
	s.lastListF = f
	s.lastLimit = limit
	s.lastOffset = offset
	return s.listItems, s.listErr
}

func (s *stubQuestionRepo) GetByID(_ context.Context, id string) (*domain.Question, error) {
	for i := range s.listItems {
		if s.listItems[i].ID == id {
			return &s.listItems[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubQuestionRepo) ListByTechnology(_ context.Context, _ string) ([]domain.Question, error) {
	return s.byTechnology, nil
}

func (s *stubQuestionRepo) Create(_ context.Context, in questionrepo.CreateInput) (*domain.Question, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

type stubTagRepo struct {
	tags        map[string]domain.Tag // keyed by slug
	createdArgs [][2]string           // name, slug pairs passed in
	byQuestion  map[string][]domain.Tag
}

func (s *stubTagRepo) FindOrCreate(_ context.Context, name, slug string) (*domain.Tag, error) {
	s.createdArgs = append(s.createdArgs, [2]string{name, slug})
	if t, ok := s.tags[slug]; ok {
		return &t, nil
	}
	t := domain.Tag{ID: "tag-" + slug, Name: name, Slug: slug}
	if s.tags == nil {
		s.tags = map[string]domain.Tag{}
	}
	s.tags[slug] = t
	return &t, nil
}

func (s *stubTagRepo) ListByQuestionIDs(_ context.Context, _ []string) (map[string][]domain.Tag, error) {
	if s.byQuestion == nil {
		return map[string][]domain.Tag{}, nil
	}
	return s.byQuestion, nil
}

type stubTechnologyRepo struct {
	technology *domain.Technology
	err        error
}

func (s *stubTechnologyRepo) List(_ context.Context, _ string) ([]domain.Technology, error) {
	return nil, nil
}

func (s *stubTechnologyRepo) GetByID(_ context.Context, _ string) (*domain.Technology, error) {
	return s.technology, s.err
}

func (s *stubTechnologyRepo) GetBySlug(_ context.Context, _ string) (*domain.Technology, error) {
	return s.technology, s.err
}

func (s *stubTechnologyRepo) Create(_ context.Context, _ domain.Technology) (*domain.Technology, error) {
	return nil, errors.New("not implemented")
}

func TestList_PassesFiltersAndPageWindow(t *testing.T) {
	repo := &stubQuestionRepo{
		countTotal: 45,
		listItems:  []domain.Question{{ID: "q1"}, {ID: "q2"}},
	}
	svc := New(repo, &stubTagRepo{}, &stubTechnologyRepo{})

	f := questionrepo.Filter{TechnologyID: "tech-1", Difficulty: domain.DifficultyEasy, Tag: "hooks", Search: "dom"}
	res, err := svc.List(context.Background(), f, pagination.Params{Page: 2, Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	if repo.lastCountF != f || repo.lastListF != f {
		t.Fatalf("filter not passed through: count=%+v list=%+v", repo.lastCountF, repo.lastListF)
	}
	if repo.lastLimit != 20 || repo.lastOffset != 20 {
		t.Fatalf("expected limit=20 offset=20, got limit=%d offset=%d", repo.lastLimit, repo.lastOffset)
	}
	if len(res.Data) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Data))
	}
	if res.Pagination.Total != 45 || res.Pagination.TotalPages != 3 {
		t.Fatalf("unexpected pagination %+v", res.Pagination)
	}
	if !res.Pagination.HasNext || !res.Pagination.HasPrev {
		t.Fatalf("expected hasNext and hasPrev, got %+v", res.Pagination)
	}
}

func TestList_TotalCountedBeforePagination(t *testing.T) {
	repo := &stubQuestionRepo{countTotal: 3, listItems: []domain.Question{{ID: "q1"}, {ID: "q2"}}}
	svc := New(repo, &stubTagRepo{}, &stubTechnologyRepo{})

	res, err := svc.List(context.Background(), questionrepo.Filter{}, pagination.Params{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Pagination.Total != 3 || res.Pagination.TotalPages != 2 {
		t.Fatalf("expected total=3 totalPages=2, got %+v", res.Pagination)
	}
	if !res.Pagination.HasNext || res.Pagination.HasPrev {
		t.Fatalf("unexpected page flags %+v", res.Pagination)
	}
}

func TestList_PagePastTheEndSkipsStorage(t *testing.T) {
	repo := &stubQuestionRepo{countTotal: 10}
	svc := New(repo, &stubTagRepo{}, &stubTechnologyRepo{})

	res, err := svc.List(context.Background(), questionrepo.Filter{}, pagination.Params{Page: 5, Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Data) != 0 {
		t.Fatalf("expected empty data, got %d items", len(res.Data))
	}
	if res.Data == nil {
		t.Fatalf("data must be an empty slice, not nil")
	}
	if repo.listCalls != 0 {
		t.Fatalf("expected no list call past the end, got %d", repo.listCalls)
	}
	if res.Pagination.Total != 10 || res.Pagination.TotalPages != 1 {
		t.Fatalf("metadata must stay correct, got %+v", res.Pagination)
	}
}

func TestList_EmptyResult(t *testing.T) {
	svc := New(&stubQuestionRepo{countTotal: 0}, &stubTagRepo{}, &stubTechnologyRepo{})

	res, err := svc.List(context.Background(), questionrepo.Filter{Search: "nothing"}, pagination.Params{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Data) != 0 || res.Pagination.Total != 0 || res.Pagination.TotalPages != 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestList_AttachesTags(t *testing.T) {
	repo := &stubQuestionRepo{
		countTotal: 2,
		listItems:  []domain.Question{{ID: "q1"}, {ID: "q2"}},
	}
	tags := &stubTagRepo{byQuestion: map[string][]domain.Tag{
		"q1": {{ID: "t1", Name: "Hooks", Slug: "hooks"}},
	}}
	svc := New(repo, tags, &stubTechnologyRepo{})

	res, err := svc.List(context.Background(), questionrepo.Filter{}, pagination.Params{Page: 1, Limit: 20})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(res.Data[0].Tags) != 1 || res.Data[0].Tags[0].Slug != "hooks" {
		t.Fatalf("expected tags attached to q1, got %+v", res.Data[0].Tags)
	}
	if res.Data[1].Tags == nil || len(res.Data[1].Tags) != 0 {
		t.Fatalf("untagged question must carry an empty slice, got %+v", res.Data[1].Tags)
	}
}

func TestList_CountErrorSurfaces(t *testing.T) {
	wantErr := errors.New("db down")
	svc := New(&stubQuestionRepo{countErr: wantErr}, &stubTagRepo{}, &stubTechnologyRepo{})

	_, err := svc.List(context.Background(), questionrepo.Filter{}, pagination.Params{Page: 1, Limit: 20})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected count error, got %v", err)
	}
}

func TestCreate_ResolvesNewTags(t *testing.T) {
	repo := &stubQuestionRepo{created: &domain.Question{ID: "q-new", Title: "T"}}
	tags := &stubTagRepo{}
	svc := New(repo, tags, &stubTechnologyRepo{technology: &domain.Technology{ID: "tech-1"}})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:        "T",
		Answer:       "A",
		Difficulty:   domain.DifficultyEasy,
		TechnologyID: "tech-1",
		TagNames:     []string{"New Tag"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(tags.createdArgs) != 1 || tags.createdArgs[0] != [2]string{"New Tag", "new-tag"} {
		t.Fatalf("expected one resolve with normalized slug, got %+v", tags.createdArgs)
	}
	if len(repo.lastCreate.TagIDs) != 1 || repo.lastCreate.TagIDs[0] != "tag-new-tag" {
		t.Fatalf("expected resolved tag id, got %+v", repo.lastCreate.TagIDs)
	}
}

func TestCreate_ReusesExistingTagBySlug(t *testing.T) {
	repo := &stubQuestionRepo{created: &domain.Question{ID: "q-new"}}
	tags := &stubTagRepo{tags: map[string]domain.Tag{
		"state-management": {ID: "existing-id", Name: "State Management", Slug: "state-management"},
	}}
	svc := New(repo, tags, &stubTechnologyRepo{technology: &domain.Technology{ID: "tech-1"}})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:        "T",
		Answer:       "A",
		Difficulty:   domain.DifficultyMedium,
		TechnologyID: "tech-1",
		TagNames:     []string{"STATE   management"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(repo.lastCreate.TagIDs) != 1 || repo.lastCreate.TagIDs[0] != "existing-id" {
		t.Fatalf("expected existing tag reused, got %+v", repo.lastCreate.TagIDs)
	}
}

func TestCreate_DeduplicatesTagNames(t *testing.T) {
	repo := &stubQuestionRepo{created: &domain.Question{ID: "q-new"}}
	tags := &stubTagRepo{}
	svc := New(repo, tags, &stubTechnologyRepo{technology: &domain.Technology{ID: "tech-1"}})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:        "T",
		Answer:       "A",
		Difficulty:   domain.DifficultyHard,
		TechnologyID: "tech-1",
		TagNames:     []string{"Hooks", "hooks", "  HOOKS  "},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(repo.lastCreate.TagIDs) != 1 {
		t.Fatalf("expected one tag after dedup, got %+v", repo.lastCreate.TagIDs)
	}
}

func TestCreate_UnknownTechnology(t *testing.T) {
	svc := New(&stubQuestionRepo{}, &stubTagRepo{}, &stubTechnologyRepo{err: domain.ErrNotFound})

	_, err := svc.Create(context.Background(), CreateInput{
		Title:        "T",
		Answer:       "A",
		Difficulty:   domain.DifficultyEasy,
		TechnologyID: "missing",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_AttachesTags(t *testing.T) {
	now := time.Now()
	repo := &stubQuestionRepo{listItems: []domain.Question{{ID: "q1", Title: "T", CreatedAt: now}}}
	tags := &stubTagRepo{byQuestion: map[string][]domain.Tag{"q1": {{ID: "t1", Slug: "hooks"}}}}
	svc := New(repo, tags, &stubTechnologyRepo{})

	got, err := svc.Get(context.Background(), "q1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Tags) != 1 || got.Tags[0].Slug != "hooks" {
		t.Fatalf("expected tags attached, got %+v", got.Tags)
	}
}
