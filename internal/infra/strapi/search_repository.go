package strapi

import (
	"context"
	"strings"

	"legalsite/internal/domain/entity"
	"legalsite/internal/domain/repository"
)

// Fields matched by each entity search.
var (
	//nolint:gochecknoglobals
	teamSearchFields = []string{"name", "role"}
	//nolint:gochecknoglobals
	serviceSearchFields = []string{"title_en", "title_ar", "description_en", "description_ar"}
	//nolint:gochecknoglobals
	blogSearchFields = []string{"title_en", "title_ar", "content_en", "content_ar"}
)

type searchRepository struct {
	client  Fetcher
	baseURL string
}

// NewSearchRepository creates a search repository backed by the content service.
func NewSearchRepository(client *Client) repository.SearchRepository {
	return newSearchRepository(client, client.BaseURL())
}

func newSearchRepository(client Fetcher, baseURL string) *searchRepository {
	return &searchRepository{client: client, baseURL: baseURL}
}

func (r *searchRepository) SearchTeam(ctx context.Context, query string) ([]entity.TeamMember, error) {
	path := NewQuery().
		Populate("image").
		ContainsAny(strings.TrimSpace(query), teamSearchFields...).
		Path(pathTeamMembers)

	items, err := fetchItems[teamMemberDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, func(d teamMemberDTO) entity.TeamMember { return d.toEntity(r.baseURL) }), nil
}

func (r *searchRepository) SearchServices(ctx context.Context, query string) ([]entity.Service, error) {
	path := NewQuery().
		Populate("image").
		ContainsAny(strings.TrimSpace(query), serviceSearchFields...).
		Path(pathServices)

	items, err := fetchItems[serviceDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, func(d serviceDTO) entity.Service { return d.toEntity(r.baseURL) }), nil
}

func (r *searchRepository) SearchBlog(ctx context.Context, query string) ([]entity.BlogPost, error) {
	path := NewQuery().
		Populate("cover_image").
		ContainsAny(strings.TrimSpace(query), blogSearchFields...).
		Path(pathBlogs)

	items, err := fetchItems[blogDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, func(d blogDTO) entity.BlogPost { return d.toEntity(r.baseURL) }), nil
}
