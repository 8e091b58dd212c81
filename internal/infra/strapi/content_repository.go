package strapi

import (
	"context"

	"legalsite/internal/domain/entity"
	"legalsite/internal/domain/repository"
)

// API collection paths.
const (
	pathPages       = "/api/pages"
	pathServices    = "/api/services"
	pathTeamMembers = "/api/team-members"
	pathClients     = "/api/clients"
	pathBlogs       = "/api/blogs"
	pathSubscribers = "/api/subscribers"

	homePageSlug = "home"
)

type contentRepository struct {
	client  Fetcher
	baseURL string
}

// NewContentRepository creates a content repository backed by the content service.
func NewContentRepository(client *Client) repository.ContentRepository {
	return newContentRepository(client, client.BaseURL())
}

func newContentRepository(client Fetcher, baseURL string) *contentRepository {
	return &contentRepository{client: client, baseURL: baseURL}
}

func (r *contentRepository) GetHeroSlides(ctx context.Context) ([]entity.HeroSlide, error) {
	path := NewQuery().
		Eq("slug", homePageSlug).
		Set("populate[hero_slides][populate]", "image").
		Path(pathPages)

	pages, err := fetchItems[pageDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return []entity.HeroSlide{}, nil
	}

	slides := make([]entity.HeroSlide, 0, len(pages[0].HeroSlides))
	for _, s := range pages[0].HeroSlides {
		slides = append(slides, s.toEntity(r.baseURL))
	}

	return slides, nil
}

func (r *contentRepository) GetServices(ctx context.Context) ([]entity.Service, error) {
	path := NewQuery().Populate("features", "image", "approach_image").Path(pathServices)

	items, err := fetchItems[serviceDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, func(d serviceDTO) entity.Service { return d.toEntity(r.baseURL) }), nil
}

func (r *contentRepository) GetServiceNav(ctx context.Context) ([]entity.ServiceLink, error) {
	path := NewQuery().Fields("slug", "title_en", "title_ar").Path(pathServices)

	items, err := fetchItems[serviceNavDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, serviceNavDTO.toEntity), nil
}

func (r *contentRepository) GetServiceBySlug(ctx context.Context, slug string) (*entity.Service, error) {
	path := NewQuery().
		Eq("slug", slug).
		Populate("features", "image", "approach_image").
		Path(pathServices)

	items, err := fetchItems[serviceDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	service := items[0].toEntity(r.baseURL)

	return &service, nil
}

func (r *contentRepository) GetTeamMembers(ctx context.Context) ([]entity.TeamMember, error) {
	path := NewQuery().Populate("*").Path(pathTeamMembers)

	items, err := fetchItems[teamMemberDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, func(d teamMemberDTO) entity.TeamMember { return d.toEntity(r.baseURL) }), nil
}

func (r *contentRepository) GetClientTestimonials(ctx context.Context) ([]entity.ClientTestimonial, error) {
	path := NewQuery().Populate("logo").Path(pathClients)

	items, err := fetchItems[clientDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}

	return mapItems(items, func(d clientDTO) entity.ClientTestimonial { return d.toEntity(r.baseURL) }), nil
}

func (r *contentRepository) GetBlogPosts(ctx context.Context, page, pageSize int) (*entity.BlogPage, error) {
	path := NewQuery().
		Populate("cover_image").
		Paginate(page, pageSize).
		Path(pathBlogs)

	env, err := r.client.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	items, err := decodeItems[blogDTO](env, path)
	if err != nil {
		return nil, err
	}

	result := &entity.BlogPage{
		Posts: mapItems(items, func(d blogDTO) entity.BlogPost { return d.toEntity(r.baseURL) }),
		Pagination: entity.Pagination{
			Page:      page,
			PageSize:  pageSize,
			PageCount: 1,
			Total:     len(items),
		},
	}
	if env.Meta != nil && env.Meta.Pagination != nil {
		result.Pagination = *env.Meta.Pagination
	}

	return result, nil
}

func (r *contentRepository) GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error) {
	path := NewQuery().Eq("slug", slug).Populate("cover_image").Path(pathBlogs)

	items, err := fetchItems[blogDTO](ctx, r.client, path)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}

	post := items[0].toEntity(r.baseURL)

	return &post, nil
}

func fetchItems[T any](ctx context.Context, client Fetcher, path string) ([]T, error) {
	env, err := client.Fetch(ctx, path)
	if err != nil {
		return nil, err
	}

	return decodeItems[T](env, path)
}

func mapItems[D, E any](items []D, fn func(D) E) []E {
	out := make([]E, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}

	return out
}
