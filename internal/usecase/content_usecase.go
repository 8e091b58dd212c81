package usecase

import (
	"context"

	"legalsite/internal/domain/entity"
)

// HomePage bundles the independently degradable sections of the home page.
type HomePage struct {
	Hero         Result[[]entity.HeroSlide]
	Services     Result[[]entity.Service]
	Team         Result[[]entity.TeamMember]
	Testimonials Result[[]entity.ClientTestimonial]
}

// IsDegraded reports whether any section fell back to bundled content.
func (h HomePage) IsDegraded() bool {
	return h.Hero.IsDegraded() || h.Services.IsDegraded() || h.Team.IsDegraded() || h.Testimonials.IsDegraded()
}

// ContentUsecase serves page content. Fetch failures and empty collections
// are replaced by bundled content and reported as Degraded, never as errors.
type ContentUsecase interface {
	// HomePage fetches every home page section concurrently.
	HomePage(ctx context.Context) HomePage

	// HeroSlides returns the hero carousel.
	HeroSlides(ctx context.Context) Result[[]entity.HeroSlide]

	// Services returns every service.
	Services(ctx context.Context) Result[[]entity.Service]

	// ServiceNav returns the header navigation entries.
	ServiceNav(ctx context.Context) Result[[]entity.ServiceLink]

	// ServiceDetail returns one service, or ErrServiceNotFound when neither the
	// content service nor the bundled content has it.
	ServiceDetail(ctx context.Context, slug string) (Result[entity.Service], error)

	// Team returns the team roster.
	Team(ctx context.Context) Result[[]entity.TeamMember]

	// Testimonials returns the client testimonials.
	Testimonials(ctx context.Context) Result[[]entity.ClientTestimonial]

	// BlogPage returns one page of posts. page defaults to 1 and pageSize to 10.
	BlogPage(ctx context.Context, page, pageSize int) Result[entity.BlogPage]

	// BlogPost returns one post or ErrBlogPostNotFound.
	BlogPost(ctx context.Context, slug string) (Result[entity.BlogPost], error)
}
