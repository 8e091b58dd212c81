package fallback

import (
	"testing"

	"legalsite/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func slugs(services []entity.Service) []string {
	out := make([]string, 0, len(services))
	for _, s := range services {
		out = append(out, s.Slug)
	}

	return out
}

func TestStore_Collections(t *testing.T) {
	store := NewStore()

	assert.Equal(t,
		[]string{"corporate-legal-services", "dispute-resolution", "real-estate-law", "employment-law"},
		slugs(store.Services()),
	)
	for _, svc := range store.Services() {
		assert.Len(t, svc.Features, 3, svc.Slug)
		assert.NotEmpty(t, svc.Title.AR, svc.Slug)
	}

	assert.Len(t, store.TeamMembers(), 4)
	assert.Len(t, store.ClientTestimonials(), 2)
	assert.Len(t, store.ServiceNav(), 4)

	slides := store.HeroSlides()
	require.Len(t, slides, 2)
	assert.Equal(t, entity.SlideKindImage, slides[0].Kind)
	assert.Equal(t, entity.SlideKindVideo, slides[1].Kind)
	assert.NotEmpty(t, slides[1].VideoURL)
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := NewStore()

	first := store.Services()
	first[0].Title.EN = "mutated"
	first[0].Features[0].Title.EN = "mutated"
	first[0].Image.URL = "mutated"

	again := store.Services()
	assert.Equal(t, "Corporate Legal Services", again[0].Title.EN)
	assert.Equal(t, "Company Formation", again[0].Features[0].Title.EN)
	assert.Equal(t, "/placeholder.svg", again[0].Image.URL)

	member := store.TeamMembers()[0]
	member.Image.URL = "mutated"
	assert.Equal(t, "/man.png", store.TeamMembers()[0].Image.URL)
}

func TestStore_ServiceBySlug(t *testing.T) {
	store := NewStore()

	svc := store.ServiceBySlug("employment-law")
	require.NotNil(t, svc)
	assert.Equal(t, "Employment Law", svc.Title.Get(entity.LanguageEnglish))
	assert.Equal(t, "قانون العمل", svc.Title.Get(entity.LanguageArabic))
	assert.Contains(t, svc.Description.Get(entity.LanguageArabic), "employment law services")

	assert.Nil(t, store.ServiceBySlug("tax-law"))
}

func TestStore_SearchServices(t *testing.T) {
	store := NewStore()

	assert.Equal(t, []string{"real-estate-law", "employment-law"}, slugs(store.SearchServices("contract")))
	assert.Equal(t, []string{"real-estate-law", "employment-law"}, slugs(store.SearchServices("  CONTRACT ")))
	assert.Equal(t, []string{"employment-law"}, slugs(store.SearchServices("العمل")))
	assert.Empty(t, store.SearchServices("zzz-nothing"))
	assert.NotNil(t, store.SearchServices("   "))
}

func TestStore_SearchTeam(t *testing.T) {
	store := NewStore()

	advisors := store.SearchTeam("legal advisor")
	require.Len(t, advisors, 3)
	assert.Equal(t, "Ayesha Khan", advisors[0].Name)

	assert.Len(t, store.SearchTeam("HAMZA"), 1)
	assert.Empty(t, store.SearchTeam("contract"))
}

func TestStore_Blog(t *testing.T) {
	store := NewStore()

	page := store.BlogPosts(2, 10)
	assert.NotNil(t, page.Posts)
	assert.Empty(t, page.Posts)
	assert.Equal(t, 2, page.Pagination.Page)

	assert.Nil(t, store.BlogPostBySlug("anything"))
	assert.Empty(t, store.SearchBlog("contract"))
}
