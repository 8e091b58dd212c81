// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"legalsite/config"
	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/domain/repository"
	"legalsite/internal/errors"
	"legalsite/internal/infra/fallback"
	"legalsite/internal/usecase"

	"golang.org/x/sync/errgroup"
)

const (
	defaultBlogPage     = 1
	defaultBlogPageSize = 10
	defaultMaxPageSize  = 50
)

// contentService implements the ContentUsecase interface.
type contentService struct {
	contentRepo repository.ContentRepository
	store       *fallback.Store
	maxPageSize int
	logger      *slog.Logger
}

// NewContentService is the constructor for contentService.
func NewContentService(
	contentRepo repository.ContentRepository,
	store *fallback.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ContentUsecase {
	maxPageSize := defaultMaxPageSize
	if cfg != nil && cfg.Content != nil && cfg.Content.MaxPageSize > 0 {
		maxPageSize = cfg.Content.MaxPageSize
	}

	return &contentService{
		contentRepo: contentRepo,
		store:       store,
		maxPageSize: maxPageSize,
		logger:      logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *contentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// HomePage fetches the four home page sections concurrently. Each section
// degrades on its own.
func (srv *contentService) HomePage(ctx context.Context) usecase.HomePage {
	var (
		page usecase.HomePage
		g    errgroup.Group
	)

	g.Go(func() error {
		page.Hero = srv.HeroSlides(ctx)
		return nil
	})
	g.Go(func() error {
		page.Services = srv.Services(ctx)
		return nil
	})
	g.Go(func() error {
		page.Team = srv.Team(ctx)
		return nil
	})
	g.Go(func() error {
		page.Testimonials = srv.Testimonials(ctx)
		return nil
	})
	_ = g.Wait()

	return page
}

func (srv *contentService) HeroSlides(ctx context.Context) usecase.Result[[]entity.HeroSlide] {
	return collection(ctx, srv.log(ctx), "hero_slides", srv.contentRepo.GetHeroSlides, srv.store.HeroSlides)
}

func (srv *contentService) Services(ctx context.Context) usecase.Result[[]entity.Service] {
	return collection(ctx, srv.log(ctx), "services", srv.contentRepo.GetServices, srv.store.Services)
}

func (srv *contentService) ServiceNav(ctx context.Context) usecase.Result[[]entity.ServiceLink] {
	return collection(ctx, srv.log(ctx), "service_nav", srv.contentRepo.GetServiceNav, srv.store.ServiceNav)
}

func (srv *contentService) Team(ctx context.Context) usecase.Result[[]entity.TeamMember] {
	return collection(ctx, srv.log(ctx), "team_members", srv.contentRepo.GetTeamMembers, srv.store.TeamMembers)
}

func (srv *contentService) Testimonials(ctx context.Context) usecase.Result[[]entity.ClientTestimonial] {
	return collection(ctx, srv.log(ctx), "clients", srv.contentRepo.GetClientTestimonials, srv.store.ClientTestimonials)
}

// ServiceDetail looks the slug up remotely first, then in the bundled services.
func (srv *contentService) ServiceDetail(ctx context.Context, slug string) (usecase.Result[entity.Service], error) {
	logger := srv.log(ctx).With(slog.String("slug", slug))
	if slug == "" {
		return usecase.Result[entity.Service]{}, errors.WithStack(domainerrors.ErrServiceNotFound)
	}

	remote, err := srv.contentRepo.GetServiceBySlug(ctx, slug)
	if err == nil && remote != nil {
		return usecase.Ok(*remote), nil
	}

	cause := err
	if cause == nil {
		cause = domainerrors.ErrServiceNotFound.WithDetails("not in content service: " + slug)
	}

	if local := srv.store.ServiceBySlug(slug); local != nil {
		logger.Warn("serving fallback service", slog.Any("error", cause))

		return usecase.Degraded(*local, cause), nil
	}

	logger.Info("service not found", slog.Any("error", cause))

	return usecase.Result[entity.Service]{}, errors.WithStack(domainerrors.ErrServiceNotFound.WithDetails(slug))
}

// BlogPage returns one page of posts. No blog content is bundled, so an
// empty remote page is a valid answer and only a failure degrades.
func (srv *contentService) BlogPage(ctx context.Context, page, pageSize int) usecase.Result[entity.BlogPage] {
	page, pageSize = srv.clampPage(page, pageSize)

	remote, err := srv.contentRepo.GetBlogPosts(ctx, page, pageSize)
	if err == nil && remote != nil {
		if remote.Posts == nil {
			remote.Posts = []entity.BlogPost{}
		}

		return usecase.Ok(*remote)
	}
	if err == nil {
		err = domainerrors.ErrEmptyContent.WithDetails("blogs")
	}

	srv.log(ctx).Warn("serving fallback blog page",
		slog.Int("page", page),
		slog.Int("page_size", pageSize),
		slog.Any("error", err),
	)

	return usecase.Degraded(*srv.store.BlogPosts(page, pageSize), err)
}

func (srv *contentService) BlogPost(ctx context.Context, slug string) (usecase.Result[entity.BlogPost], error) {
	if slug == "" {
		return usecase.Result[entity.BlogPost]{}, errors.WithStack(domainerrors.ErrBlogPostNotFound)
	}

	remote, err := srv.contentRepo.GetBlogPostBySlug(ctx, slug)
	if err == nil && remote != nil {
		return usecase.Ok(*remote), nil
	}
	if err != nil {
		srv.log(ctx).Warn("blog post lookup failed", slog.String("slug", slug), slog.Any("error", err))
	}

	if local := srv.store.BlogPostBySlug(slug); local != nil {
		return usecase.Degraded(*local, err), nil
	}

	return usecase.Result[entity.BlogPost]{}, errors.WithStack(domainerrors.ErrBlogPostNotFound.WithDetails(slug))
}

func (srv *contentService) clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = defaultBlogPage
	}
	if pageSize < 1 {
		pageSize = defaultBlogPageSize
	}
	if pageSize > srv.maxPageSize {
		pageSize = srv.maxPageSize
	}

	return page, pageSize
}

// collection fetches a list remotely and substitutes the bundled list when the
// fetch fails or comes back empty.
func collection[T any](
	ctx context.Context,
	logger *slog.Logger,
	section string,
	fetch func(context.Context) ([]T, error),
	local func() []T,
) usecase.Result[[]T] {
	items, err := fetch(ctx)
	if err == nil && len(items) > 0 {
		return usecase.Ok(items)
	}
	if err == nil {
		err = domainerrors.ErrEmptyContent.WithDetails(section)
	}

	logger.Warn("serving fallback content", slog.String("section", section), slog.Any("error", err))

	return usecase.Degraded(local(), err)
}
