package strapi

import (
	"context"
	"io"
	"net/http"
	"sync"
	"testing"
	"time"

	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCMS serves canned bodies keyed by request path.
type fakeCMS struct {
	mu       sync.Mutex
	bodies   map[string]string
	status   map[string]int
	requests []*http.Request
}

func (f *fakeCMS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.requests = append(f.requests, r.Clone(context.Background()))

	if status, ok := f.status[r.URL.Path]; ok {
		w.WriteHeader(status)

		return
	}

	body, ok := f.bodies[r.URL.Path]
	if !ok {
		w.WriteHeader(http.StatusNotFound)

		return
	}
	_, _ = io.WriteString(w, body)
}

func (f *fakeCMS) set(path, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.bodies[path] = body
}

func (f *fakeCMS) last() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[len(f.requests)-1]
}

func newFakeCMS(t *testing.T, bodies map[string]string) (*fakeCMS, *Client) {
	t.Helper()

	cms := &fakeCMS{bodies: bodies, status: map[string]int{}}
	client, _ := newTestClient(t, cms.ServeHTTP)

	return cms, client
}

const flatServices = `{"data":[
  {"id":1,"slug":"employment-law","title_en":"Employment Law","title_ar":"قانون العمل",
   "description_en":"<p>Workplace matters</p>","image":{"url":"/uploads/emp.png","alternativeText":"desk"},
   "approach_image":null,
   "features":[{"title_en":"Contracts","title_ar":"العقود","description_en":"<p>Drafting</p>"}]},
  {"id":2,"slug":"real-estate-law","title_en":"Real Estate Law","image":{"url":"https://cdn.example/re.png"}}
]}`

const attributeServices = `{"data":[
  {"id":4,"attributes":{"slug":"dispute-resolution","title_en":"Dispute Resolution","title_ar":"حل النزاعات",
   "image":{"data":{"id":9,"attributes":{"url":"/uploads/dr.png","mime":"image/png"}}},
   "features":{"data":[{"id":1,"attributes":{"title_en":"Arbitration"}}]}}}
]}`

func TestContentRepository_GetServices_FlatShape(t *testing.T) {
	cms, client := newFakeCMS(t, map[string]string{pathServices: flatServices})
	repo := NewContentRepository(client)

	services, err := repo.GetServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 2)

	emp := services[0]
	assert.Equal(t, "employment-law", emp.Slug)
	assert.Equal(t, "قانون العمل", emp.Title.Get(entity.LanguageArabic))
	require.NotNil(t, emp.Image)
	assert.Equal(t, client.BaseURL()+"/uploads/emp.png", emp.Image.URL)
	assert.Equal(t, "desk", emp.Image.AlternativeText)
	assert.Nil(t, emp.ApproachImage)
	require.Len(t, emp.Features, 1)
	assert.Equal(t, "Contracts", emp.Features[0].Title.EN)

	assert.Equal(t, "https://cdn.example/re.png", services[1].Image.URL)
	assert.Equal(t, "Real Estate Law", services[1].Title.Get(entity.LanguageArabic))

	assert.Equal(t, "features,image,approach_image", cms.last().URL.Query().Get("populate"))
}

func TestContentRepository_GetServices_AttributesShape(t *testing.T) {
	_, client := newFakeCMS(t, map[string]string{pathServices: attributeServices})
	repo := NewContentRepository(client)

	services, err := repo.GetServices(context.Background())
	require.NoError(t, err)
	require.Len(t, services, 1)

	assert.Equal(t, 4, services[0].ID)
	assert.Equal(t, "dispute-resolution", services[0].Slug)
	require.NotNil(t, services[0].Image)
	assert.Equal(t, client.BaseURL()+"/uploads/dr.png", services[0].Image.URL)
	assert.Equal(t, "image/png", services[0].Image.Mime)
	require.Len(t, services[0].Features, 1)
	assert.Equal(t, "Arbitration", services[0].Features[0].Title.EN)
}

func TestContentRepository_MalformedPayloadIsRemoteUnavailable(t *testing.T) {
	tests := map[string]string{
		"missing slug":      `{"data":[{"id":1,"title_en":"No slug"}]}`,
		"bad slug":          `{"data":[{"id":1,"slug":"Has Spaces","title_en":"x"}]}`,
		"data not an array": `{"data":{"id":1}}`,
		"null item":         `{"data":[null]}`,
		"bad feature":       `{"data":[{"id":1,"slug":"a","title_en":"x","features":[{"description_en":"no title"}]}]}`,
	}

	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, client := newFakeCMS(t, map[string]string{pathServices: body})

			_, err := NewContentRepository(client).GetServices(context.Background())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
		})
	}
}

func TestContentRepository_GetServiceBySlug(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		cms, client := newFakeCMS(t, map[string]string{pathServices: flatServices})

		svc, err := NewContentRepository(client).GetServiceBySlug(context.Background(), "employment-law")
		require.NoError(t, err)
		require.NotNil(t, svc)
		assert.Equal(t, 1, svc.ID)
		assert.Equal(t, "employment-law", cms.last().URL.Query().Get("filters[slug][$eq]"))
	})

	t.Run("absent is nil without error", func(t *testing.T) {
		_, client := newFakeCMS(t, map[string]string{pathServices: `{"data":[]}`})

		svc, err := NewContentRepository(client).GetServiceBySlug(context.Background(), "tax-law")
		require.NoError(t, err)
		assert.Nil(t, svc)
	})
}

func TestContentRepository_GetServiceNav(t *testing.T) {
	cms, client := newFakeCMS(t, map[string]string{
		pathServices: `{"data":[{"id":1,"slug":"employment-law","title_en":"Employment Law","title_ar":"قانون العمل"}]}`,
	})

	links, err := NewContentRepository(client).GetServiceNav(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []entity.ServiceLink{{
		Slug:  "employment-law",
		Title: entity.NewLocalizedText("Employment Law", "قانون العمل"),
	}}, links)

	query := cms.last().URL.Query()
	assert.Equal(t, "slug", query.Get("fields[0]"))
	assert.Equal(t, "title_en", query.Get("fields[1]"))
}

func TestContentRepository_GetHeroSlides(t *testing.T) {
	t.Run("image and video slides", func(t *testing.T) {
		cms, client := newFakeCMS(t, map[string]string{pathPages: `{"data":[{"id":1,"slug":"home","hero_slides":[
			{"id":1,"title_en":"Your Success","media_type":"image","image":{"url":"/uploads/hero.jpg"}},
			{"id":2,"title_en":"Your Justice","media_type":"video","video_url":"https://videos.example/v.mp4"}
		]}]}`})

		slides, err := NewContentRepository(client).GetHeroSlides(context.Background())
		require.NoError(t, err)
		require.Len(t, slides, 2)

		assert.Equal(t, entity.SlideKindImage, slides[0].Kind)
		assert.Equal(t, client.BaseURL()+"/uploads/hero.jpg", slides[0].Image.URL)
		assert.Equal(t, entity.SlideKindVideo, slides[1].Kind)
		assert.Equal(t, "https://videos.example/v.mp4", slides[1].VideoURL)
		assert.Nil(t, slides[1].Image)

		query := cms.last().URL.Query()
		assert.Equal(t, "home", query.Get("filters[slug][$eq]"))
		assert.Equal(t, "image", query.Get("populate[hero_slides][populate]"))
	})

	t.Run("uploaded video url is resolved against the base url", func(t *testing.T) {
		_, client := newFakeCMS(t, map[string]string{pathPages: `{"data":[{"id":1,"slug":"home","hero_slides":[
			{"id":1,"title_en":"Your Success","media_type":"image","image":{"url":"/uploads/hero.jpg"}},
			{"id":2,"title_en":"Your Justice","media_type":"video","video_url":"/uploads/hero.mp4"}
		]}]}`})

		slides, err := NewContentRepository(client).GetHeroSlides(context.Background())
		require.NoError(t, err)
		require.Len(t, slides, 2)
		assert.Equal(t, entity.SlideKindVideo, slides[1].Kind)
		assert.Equal(t, client.BaseURL()+"/uploads/hero.mp4", slides[1].VideoURL)
	})

	t.Run("video slide without url is malformed", func(t *testing.T) {
		_, client := newFakeCMS(t, map[string]string{pathPages: `{"data":[{"id":1,"hero_slides":[
			{"id":2,"title_en":"Your Justice","media_type":"video"}
		]}]}`})

		_, err := NewContentRepository(client).GetHeroSlides(context.Background())
		assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
	})

	t.Run("missing home page yields no slides", func(t *testing.T) {
		_, client := newFakeCMS(t, map[string]string{pathPages: `{"data":[]}`})

		slides, err := NewContentRepository(client).GetHeroSlides(context.Background())
		require.NoError(t, err)
		assert.Empty(t, slides)
	})
}

func TestContentRepository_GetTeamMembers(t *testing.T) {
	_, client := newFakeCMS(t, map[string]string{pathTeamMembers: `{"data":[
		{"id":1,"name":"Ayesha Khan","role":"Legal Advisor","image":[{"url":"/uploads/a.png"}],
		 "social":{"email":"ayesha@example.com","phone":"03001234567"}},
		{"id":2,"name":"Martin","role":"Legal Advisor","social":null}
	]}`})

	members, err := NewContentRepository(client).GetTeamMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, client.BaseURL()+"/uploads/a.png", members[0].Image.URL)
	assert.Equal(t, "ayesha@example.com", members[0].Social.Email)
	assert.Empty(t, members[0].Social.WhatsApp)
	assert.Equal(t, entity.Social{}, members[1].Social)
}

func TestContentRepository_GetTeamMembers_InvalidEmail(t *testing.T) {
	_, client := newFakeCMS(t, map[string]string{pathTeamMembers: `{"data":[
		{"id":1,"name":"Ayesha Khan","social":{"email":"not-an-email"}}
	]}`})

	_, err := NewContentRepository(client).GetTeamMembers(context.Background())
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
}

func TestContentRepository_GetClientTestimonials(t *testing.T) {
	_, client := newFakeCMS(t, map[string]string{pathClients: `{"data":[
		{"id":1,"attributes":{"name_en":"Mohammed Saif","name_ar":"محمد سيف","position_en":"CEO/Company",
		 "testimonial_en":"Great service","logo":{"data":{"id":3,"attributes":{"url":"/uploads/logo.png"}}}}}
	]}`})

	clients, err := NewContentRepository(client).GetClientTestimonials(context.Background())
	require.NoError(t, err)
	require.Len(t, clients, 1)

	assert.Equal(t, "محمد سيف", clients[0].Name.Get(entity.LanguageArabic))
	assert.Equal(t, "Great service", clients[0].Testimonial.Get(entity.LanguageArabic))
	assert.Equal(t, client.BaseURL()+"/uploads/logo.png", clients[0].Image.URL)
}

func TestContentRepository_GetBlogPosts(t *testing.T) {
	cms, client := newFakeCMS(t, map[string]string{pathBlogs: `{"data":[
		{"id":3,"slug":"new-labour-rules","title_en":"New labour rules","publishedAt":"2025-03-01T10:00:00.000Z",
		 "cover_image":{"url":"/uploads/c.png"}}
	],"meta":{"pagination":{"page":2,"pageSize":1,"pageCount":4,"total":4}}}`})

	page, err := NewContentRepository(client).GetBlogPosts(context.Background(), 2, 1)
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)

	assert.Equal(t, entity.Pagination{Page: 2, PageSize: 1, PageCount: 4, Total: 4}, page.Pagination)
	assert.True(t, page.Pagination.HasNext())
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), page.Posts[0].PublishedAt.UTC())

	query := cms.last().URL.Query()
	assert.Equal(t, "2", query.Get("pagination[page]"))
	assert.Equal(t, "1", query.Get("pagination[pageSize]"))
}

func TestContentRepository_GetBlogPostBySlug_Absent(t *testing.T) {
	_, client := newFakeCMS(t, map[string]string{pathBlogs: `{"data":[]}`})

	post, err := NewContentRepository(client).GetBlogPostBySlug(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestSearchRepository_BuildsOrFilters(t *testing.T) {
	cms, client := newFakeCMS(t, map[string]string{
		pathTeamMembers: `{"data":[{"id":1,"name":"Ayesha Khan","role":"Legal Advisor"}]}`,
		pathServices:    `{"data":[]}`,
		pathBlogs:       `{"data":[]}`,
	})
	repo := NewSearchRepository(client)

	team, err := repo.SearchTeam(context.Background(), "  ayesha ")
	require.NoError(t, err)
	require.Len(t, team, 1)

	query := cms.last().URL.Query()
	assert.Equal(t, "image", query.Get("populate"))
	assert.Equal(t, "ayesha", query.Get("filters[$or][0][name][$containsi]"))
	assert.Equal(t, "ayesha", query.Get("filters[$or][1][role][$containsi]"))
	assert.Empty(t, query.Get("filters[$or][2][role][$containsi]"))

	services, err := repo.SearchServices(context.Background(), "contract")
	require.NoError(t, err)
	assert.Empty(t, services)
	assert.Equal(t, "contract", cms.last().URL.Query().Get("filters[$or][3][description_ar][$containsi]"))

	_, err = repo.SearchBlog(context.Background(), "contract")
	require.NoError(t, err)
	assert.Equal(t, "cover_image", cms.last().URL.Query().Get("populate"))
}

func TestSearchRepository_Failure(t *testing.T) {
	cms, client := newFakeCMS(t, map[string]string{})
	cms.status[pathBlogs] = http.StatusBadGateway

	_, err := NewSearchRepository(client).SearchBlog(context.Background(), "x")
	assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
}

func TestSubscriberRepository(t *testing.T) {
	cms, client := newFakeCMS(t, map[string]string{
		pathSubscribers: `{"data":{"id":12,"attributes":{"email":"client@example.com","createdAt":"2025-01-02T03:04:05Z"}}}`,
	})
	repo := NewSubscriberRepository(client)

	sub, err := repo.AddSubscriber(context.Background(), "client@example.com")
	require.NoError(t, err)
	assert.Equal(t, 12, sub.ID)
	assert.Equal(t, "client@example.com", sub.Email)
	assert.Equal(t, http.MethodPost, cms.last().Method)

	cms.set(pathSubscribers, `{"data":[{"id":12,"email":"client@example.com"}]}`)
	exists, err := repo.SubscriberExists(context.Background(), "client@example.com")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "client@example.com", cms.last().URL.Query().Get("filters[email][$eq]"))

	cms.set(pathSubscribers, `{"data":[]}`)
	exists, err = repo.SubscriberExists(context.Background(), "new@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
