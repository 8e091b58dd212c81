package view

import (
	"html/template"
	"net/url"

	"legalsite/internal/domain/entity"
	"legalsite/internal/locale"
	"legalsite/internal/usecase"
)

// Template names.
const (
	PageHome     = "home"
	PageService  = "service"
	PageSearch   = "search"
	PageBlog     = "blog"
	PageBlogPost = "blog_post"
	PageNotFound = "not_found"
	PageError    = "error"
)

// Page is the data every template receives.
type Page struct {
	Locale    locale.Context
	Path      string
	ToggleURL string
	Title     string
	Nav       []entity.ServiceLink
	Query     string
	Subscribe SubscribeForm

	// Degraded marks pages built at least partly from bundled content.
	Degraded bool

	Body any
}

// SubscribeForm is the footer newsletter form state.
type SubscribeForm struct {
	Email   string
	Error   string
	Success bool
}

// TeamCard is a team member with contact links resolved. Empty links are
// not rendered.
type TeamCard struct {
	Member   entity.TeamMember
	WhatsApp template.URL
	Tel      template.URL
	Mailto   template.URL
}

// HomeBody feeds the home template.
type HomeBody struct {
	Hero         []entity.HeroSlide
	Services     []entity.Service
	Team         []TeamCard
	Testimonials []entity.ClientTestimonial
}

// ServiceBody feeds the service detail template.
type ServiceBody struct {
	Service entity.Service
}

// SearchBody feeds the search results template.
type SearchBody struct {
	Outcome usecase.Outcome
	Team    []TeamCard
}

// BlogBody feeds the blog listing template.
type BlogBody struct {
	Page entity.BlogPage
}

// BlogPostBody feeds the blog post template.
type BlogPostBody struct {
	Post entity.BlogPost
}

// ErrorBody feeds the not-found and error templates.
type ErrorBody struct {
	Status int
}

// NewPage returns the layout data shared by every page. requestURI is the
// current path with its query; the language toggle returns to it.
func NewPage(lc locale.Context, requestURI string, nav []entity.ServiceLink) Page {
	return Page{
		Locale:    lc,
		Path:      requestURI,
		ToggleURL: "/" + lc.Lang() + "/toggle?path=" + url.QueryEscape(requestURI),
		Nav:       nav,
	}
}
