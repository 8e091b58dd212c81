package repository

import (
	"context"

	"legalsite/internal/domain/entity"
)

// SearchRepository defines case-insensitive substring search per entity type.
// Results keep the source's natural order.
type SearchRepository interface {
	// SearchTeam matches team members by name or role.
	SearchTeam(ctx context.Context, query string) ([]entity.TeamMember, error)

	// SearchServices matches services by title or description in either language.
	SearchServices(ctx context.Context, query string) ([]entity.Service, error)

	// SearchBlog matches blog posts by title or content in either language.
	SearchBlog(ctx context.Context, query string) ([]entity.BlogPost, error)
}
