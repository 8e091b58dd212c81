package usecase

import (
	"context"

	"legalsite/internal/domain/entity"
)

// Outcome is the result of one search invocation.
type Outcome struct {
	Query    string                 `json:"query"`
	Language entity.Language        `json:"language"`
	State    entity.SearchState     `json:"state"`
	Results  entity.SearchResultSet `json:"results"`
}

// SearchUsecase aggregates team, service and blog search.
type SearchUsecase interface {
	// Search never fails. A blank query yields an idle outcome without any
	// lookups; failed lookups are replaced by bundled matches and mark the
	// outcome degraded.
	Search(ctx context.Context, query string, lang entity.Language) Outcome
}
