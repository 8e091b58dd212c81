package impl

import (
	"context"
	"log/slog"
	"strings"

	"legalsite/config"
	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	"legalsite/internal/domain/repository"
	"legalsite/internal/infra/fallback"
	"legalsite/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// searchService implements the SearchUsecase interface.
type searchService struct {
	searchRepo repository.SearchRepository
	store      *fallback.Store
	join       string
	logger     *slog.Logger
}

// NewSearchService is the constructor for searchService.
func NewSearchService(
	searchRepo repository.SearchRepository,
	store *fallback.Store,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SearchUsecase {
	join := config.SearchJoinPartial
	if cfg != nil && cfg.Content != nil && cfg.Content.SearchJoin != "" {
		join = cfg.Content.SearchJoin
	}

	return &searchService{
		searchRepo: searchRepo,
		store:      store,
		join:       join,
		logger:     logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *searchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// Search queries team, services and blog in parallel. With the partial join
// every failed sub-query is replaced by its own bundled matches; with the all
// join a single failure replaces every collection.
func (srv *searchService) Search(ctx context.Context, query string, lang entity.Language) usecase.Outcome {
	query = strings.TrimSpace(query)
	outcome := usecase.Outcome{
		Query:    query,
		Language: lang,
		State:    entity.SearchIdle,
		Results:  entity.EmptySearchResultSet(),
	}
	if query == "" {
		return outcome
	}

	outcome.State = entity.SearchQuerying
	logger := srv.log(ctx).With(slog.String("query", query), slog.String("join", srv.join))

	var (
		team        []entity.TeamMember
		services    []entity.Service
		blog        []entity.BlogPost
		teamErr     error
		servicesErr error
		blogErr     error
	)

	g, gctx := srv.group(ctx)
	g.Go(func() error {
		team, teamErr = srv.searchRepo.SearchTeam(gctx, query)
		return srv.joinError(teamErr)
	})
	g.Go(func() error {
		services, servicesErr = srv.searchRepo.SearchServices(gctx, query)
		return srv.joinError(servicesErr)
	})
	g.Go(func() error {
		blog, blogErr = srv.searchRepo.SearchBlog(gctx, query)
		return srv.joinError(blogErr)
	})

	if err := g.Wait(); err != nil {
		logger.Warn("search failed, using bundled content", slog.Any("error", err))

		outcome.State = entity.SearchDegraded
		outcome.Results = srv.localResults(query)

		return outcome
	}

	degraded := false
	if teamErr != nil {
		logger.Warn("team search failed, using bundled team", slog.Any("error", teamErr))
		team, degraded = srv.store.SearchTeam(query), true
	}
	if servicesErr != nil {
		logger.Warn("service search failed, using bundled services", slog.Any("error", servicesErr))
		services, degraded = srv.store.SearchServices(query), true
	}
	if blogErr != nil {
		logger.Warn("blog search failed", slog.Any("error", blogErr))
		blog, degraded = srv.store.SearchBlog(query), true
	}

	outcome.Results = entity.SearchResultSet{
		Team:     nonNil(team),
		Services: nonNil(services),
		Blog:     nonNil(blog),
	}
	outcome.State = entity.SearchSucceeded
	if degraded {
		outcome.State = entity.SearchDegraded
	}

	logger.Debug("search completed",
		slog.String("state", string(outcome.State)),
		slog.Int("hits", outcome.Results.Total()),
	)

	return outcome
}

// group returns a plain group for the partial join. The all join cancels the
// remaining sub-queries as soon as one fails.
func (srv *searchService) group(ctx context.Context) (*errgroup.Group, context.Context) {
	if srv.join == config.SearchJoinAll {
		return errgroup.WithContext(ctx)
	}

	return &errgroup.Group{}, ctx
}

func (srv *searchService) joinError(err error) error {
	if srv.join == config.SearchJoinAll {
		return err
	}

	return nil
}

func (srv *searchService) localResults(query string) entity.SearchResultSet {
	return entity.SearchResultSet{
		Team:     nonNil(srv.store.SearchTeam(query)),
		Services: nonNil(srv.store.SearchServices(query)),
		Blog:     nonNil(srv.store.SearchBlog(query)),
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
