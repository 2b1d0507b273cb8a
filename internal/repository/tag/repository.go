package tag

import (
	"context"

	"interviewdock/internal/domain"
)

type Repository interface {
	// FindOrCreate resolves a tag by its slug, inserting it when absent.
	// The lookup and insert are a single upsert so concurrent callers
	// resolving the same new name cannot create duplicates.
	FindOrCreate(ctx context.Context, name, slug string) (*domain.Tag, error)
	// ListByQuestionIDs returns the tags attached to each of the given
	// questions, keyed by question id.
	ListByQuestionIDs(ctx context.Context, questionIDs []string) (map[string][]domain.Tag, error)
}
