// Package repository defines the interfaces for the content access layer.
package repository

import (
	"context"

	"legalsite/internal/domain/entity"
)

// ContentRepository defines read access to the structured site content.
// Point lookups return nil without an error when nothing matches.
type ContentRepository interface {
	// GetHeroSlides retrieves the home page hero slides in display order.
	GetHeroSlides(ctx context.Context) ([]entity.HeroSlide, error)

	// GetServices retrieves every service with its features and images.
	GetServices(ctx context.Context) ([]entity.Service, error)

	// GetServiceNav retrieves the slug and title of every service.
	GetServiceNav(ctx context.Context) ([]entity.ServiceLink, error)

	// GetServiceBySlug retrieves a single service.
	GetServiceBySlug(ctx context.Context, slug string) (*entity.Service, error)

	// GetTeamMembers retrieves the team roster.
	GetTeamMembers(ctx context.Context) ([]entity.TeamMember, error)

	// GetClientTestimonials retrieves client testimonials.
	GetClientTestimonials(ctx context.Context) ([]entity.ClientTestimonial, error)

	// GetBlogPosts retrieves one page of blog posts.
	GetBlogPosts(ctx context.Context, page, pageSize int) (*entity.BlogPage, error)

	// GetBlogPostBySlug retrieves a single blog post.
	GetBlogPostBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
}
