// Package fallback holds the bundled site content used when the content
// service is unreachable or returns nothing. Every accessor returns copies.
package fallback

import (
	"strings"

	"legalsite/internal/domain/entity"
)

// Store serves the bundled content. The zero value is ready to use.
type Store struct{}

// NewStore creates a fallback store.
func NewStore() *Store {
	return &Store{}
}

// HeroSlides returns the bundled hero carousel.
func (s *Store) HeroSlides() []entity.HeroSlide {
	return cloneAll(heroSlides, entity.HeroSlide.Clone)
}

// Services returns every bundled service.
func (s *Store) Services() []entity.Service {
	return cloneAll(services, entity.Service.Clone)
}

// ServiceNav returns the header navigation entries for the bundled services.
func (s *Store) ServiceNav() []entity.ServiceLink {
	links := make([]entity.ServiceLink, 0, len(services))
	for _, svc := range services {
		links = append(links, svc.Link())
	}

	return links
}

// ServiceBySlug returns the bundled service with slug, or nil.
func (s *Store) ServiceBySlug(slug string) *entity.Service {
	for _, svc := range services {
		if svc.Slug == slug {
			c := svc.Clone()

			return &c
		}
	}

	return nil
}

// TeamMembers returns the bundled team roster.
func (s *Store) TeamMembers() []entity.TeamMember {
	return cloneAll(team, entity.TeamMember.Clone)
}

// ClientTestimonials returns the bundled testimonials.
func (s *Store) ClientTestimonials() []entity.ClientTestimonial {
	return cloneAll(testimonials, entity.ClientTestimonial.Clone)
}

// BlogPosts returns an empty page; no blog content is bundled.
func (s *Store) BlogPosts(page, pageSize int) *entity.BlogPage {
	return &entity.BlogPage{
		Posts:      []entity.BlogPost{},
		Pagination: entity.Pagination{Page: page, PageSize: pageSize},
	}
}

// BlogPostBySlug always returns nil.
func (s *Store) BlogPostBySlug(string) *entity.BlogPost {
	return nil
}

// SearchTeam returns members whose name or role contains query, ignoring case.
func (s *Store) SearchTeam(query string) []entity.TeamMember {
	needle := normalize(query)
	out := []entity.TeamMember{}
	if needle == "" {
		return out
	}

	for _, m := range team {
		if strings.Contains(strings.ToLower(m.Name), needle) || strings.Contains(strings.ToLower(m.Role), needle) {
			out = append(out, m.Clone())
		}
	}

	return out
}

// SearchServices returns services whose title or description contains query
// in either language, ignoring case.
func (s *Store) SearchServices(query string) []entity.Service {
	needle := normalize(query)
	out := []entity.Service{}
	if needle == "" {
		return out
	}

	for _, svc := range services {
		if svc.Title.ContainsFold(needle) || svc.Description.ContainsFold(needle) {
			out = append(out, svc.Clone())
		}
	}

	return out
}

// SearchBlog always returns an empty slice.
func (s *Store) SearchBlog(string) []entity.BlogPost {
	return []entity.BlogPost{}
}

func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, clone(item))
	}

	return out
}
