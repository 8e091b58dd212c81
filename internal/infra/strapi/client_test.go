package strapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "legalsite/internal/delivery/context"
	"legalsite/internal/domain/entity"
	domainerrors "legalsite/internal/domain/errors"
	"legalsite/internal/errors"
	logs "legalsite/internal/infra/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(srv.Client(), srv.URL, "", time.Second, logs.Discard()), srv
}

func TestClient_Fetch_SendsHeadersAndDecodesEnvelope(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_, _ = io.WriteString(w, `{"data":[{"id":1}],"meta":{"pagination":{"page":2,"pageSize":5,"pageCount":3,"total":11}}}`)
	}))
	defer srv.Close()

	client := NewClient(srv.Client(), srv.URL+"/", "secret-token", time.Second, logs.Discard())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	env, err := client.Fetch(ctx, "/api/blogs")
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "/api/blogs", got.URL.Path)
	assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
	assert.Equal(t, "Bearer secret-token", got.Header.Get("Authorization"))
	assert.Equal(t, "req-42", got.Header.Get(deliverycontext.HeaderXRequestID))

	assert.JSONEq(t, `[{"id":1}]`, string(env.Data))
	require.NotNil(t, env.Meta)
	assert.Equal(t, entity.Pagination{Page: 2, PageSize: 5, PageCount: 3, Total: 11}, *env.Meta.Pagination)
}

func TestClient_Fetch_PostsJSONBody(t *testing.T) {
	var method, body string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		raw, _ := io.ReadAll(r.Body)
		body = string(raw)
		_, _ = io.WriteString(w, `{"data":{"id":7}}`)
	})

	_, err := client.Fetch(context.Background(), "/api/subscribers",
		WithMethod(http.MethodPost),
		WithJSONBody(map[string]any{"data": map[string]string{"email": "a@b.co"}}),
	)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.JSONEq(t, `{"data":{"email":"a@b.co"}}`, body)
}

func TestClient_Fetch_Failures(t *testing.T) {
	t.Run("non-2xx status", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, "boom")
		})

		_, err := client.Fetch(context.Background(), "/api/services")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
		assert.Contains(t, err.Error(), "500")
		assert.Contains(t, err.Error(), "/api/services")
	})

	t.Run("undecodable body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = io.WriteString(w, "<html>not json</html>")
		})

		_, err := client.Fetch(context.Background(), "/api/services")
		assert.True(t, errors.Is(err, domainerrors.ErrRemoteUnavailable))
	})

	t.Run("unreachable host", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()

		client := NewClient(nil, url, "", time.Second, logs.Discard())
		_, err := client.Fetch(context.Background(), "/api/services")
		require.Error(t, err)

		appErr, ok := errors.AsType[domainerrors.AppError](err)
		require.True(t, ok)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	})
}

func TestResolveMediaURL(t *testing.T) {
	const base = "http://localhost:1337"

	tests := []struct {
		name   string
		asset  *entity.MediaAsset
		want   string
		wantOK bool
	}{
		{"nil asset", nil, "", false},
		{"empty url", &entity.MediaAsset{}, "", false},
		{"relative path", &entity.MediaAsset{URL: "/x.png"}, "http://localhost:1337/x.png", true},
		{"uploads path", &entity.MediaAsset{URL: "/uploads/hero_1.jpg"}, "http://localhost:1337/uploads/hero_1.jpg", true},
		{"absolute https", &entity.MediaAsset{URL: "https://cdn.example/x.png"}, "https://cdn.example/x.png", true},
		{"absolute http", &entity.MediaAsset{URL: "http://cdn.example/x.png"}, "http://cdn.example/x.png", true},
		{"protocol relative", &entity.MediaAsset{URL: "//cdn.example/x.png"}, "//cdn.example/x.png", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveMediaURL(base, tt.asset)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	got, ok := ResolveMediaURL(base+"/", &entity.MediaAsset{URL: "/x.png"})
	assert.True(t, ok)
	assert.Equal(t, "http://localhost:1337/x.png", got)
}

func TestQuery(t *testing.T) {
	q := NewQuery().
		Populate("image").
		ContainsAny("family law", "name", "role")

	assert.Equal(t,
		"populate=image&filters[$or][0][name][$containsi]=family+law&filters[$or][1][role][$containsi]=family+law",
		q.Encode(),
	)
	assert.Equal(t, "/api/team-members?"+q.Encode(), q.Path("/api/team-members"))

	assert.Equal(t, "/api/services?fields[0]=slug&fields[1]=title_en",
		NewQuery().Fields("slug", "title_en").Path("/api/services"))
	assert.Equal(t, "/api/blogs?pagination[page]=2&pagination[pageSize]=10",
		NewQuery().Paginate(2, 10).Path("/api/blogs"))
	assert.Equal(t, "/api/pages", NewQuery().Path("/api/pages"))
	assert.Equal(t, "filters[email][$eq]=a%2Bb%40example.com", NewQuery().Eq("email", "a+b@example.com").Encode())
}
