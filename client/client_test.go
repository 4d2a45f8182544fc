package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobtracker/api-gateway/internal/filters"
	"jobtracker/api-gateway/internal/query"
	"jobtracker/api-gateway/models"
)

// fakeAPI counts hits per method and path and answers with canned JSON.
type fakeAPI struct {
	mu     sync.Mutex
	hits   map[string]int
	tokens []string
	routes map[string]func(w http.ResponseWriter, r *http.Request)
}

func newFakeAPI(t *testing.T) (*fakeAPI, *Client) {
	t.Helper()
	f := &fakeAPI{hits: map[string]int{}, routes: map[string]func(http.ResponseWriter, *http.Request){}}
	srv := httptest.NewServer(f)
	t.Cleanup(srv.Close)
	return f, New(srv.URL, WithToken("tok"))
}

func (f *fakeAPI) handle(method, path string, status int, body interface{}) {
	f.routes[method+" "+path] = func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(body)
	}
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	f.mu.Lock()
	f.hits[key]++
	f.tokens = append(f.tokens, r.Header.Get("Authorization"))
	route := f.routes[key]
	f.mu.Unlock()
	if route == nil {
		http.NotFound(w, r)
		return
	}
	route(w, r)
}

func (f *fakeAPI) count(method, path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[method+" "+path]
}

func page(companies ...string) map[string]interface{} {
	data := []map[string]interface{}{}
	for _, c := range companies {
		data = append(data, map[string]interface{}{"company_name": c, "status": "Applied"})
	}
	return map[string]interface{}{"status": "success", "data": data, "count": len(data), "page": 1, "limit": 10, "total_pages": 1}
}

func TestCacheKeyIsCanonical(t *testing.T) {
	a := url.Values{"status": {"Applied"}, "page": {"1"}}
	b := url.Values{"page": {"1"}, "status": {"Applied"}}
	assert.Equal(t, CacheKey("/api/v1/applications", a), CacheKey("/api/v1/applications", b))
	assert.Equal(t, "/api/v1/applications?page=1&status=Applied", CacheKey("/api/v1/applications", a))
	assert.Equal(t, "/api/v1/activity-log", CacheKey("/api/v1/activity-log", nil))
}

func TestReadsAreCachedUntilAMutation(t *testing.T) {
	api, c := newFakeAPI(t)
	api.handle(http.MethodGet, "/api/v1/applications", http.StatusOK, page("Acme"))
	api.handle(http.MethodGet, "/api/v1/dashboard/stats", http.StatusOK, map[string]interface{}{"data": map[string]int{"total_applications": 1}})
	api.handle(http.MethodPost, "/api/v1/applications", http.StatusCreated, map[string]interface{}{"data": map[string]string{"company_name": "Globex"}})
	ctx := context.Background()
	params := query.ParseListParams(url.Values{"status": {"Applied"}})

	p, err := c.ListApplications(ctx, params)
	require.NoError(t, err)
	require.Len(t, p.Data, 1)
	_, err = c.ListApplications(ctx, params)
	require.NoError(t, err)
	_, err = c.DashboardStats(ctx, filters.DateWindow{})
	require.NoError(t, err)
	_, err = c.DashboardStats(ctx, filters.DateWindow{})
	require.NoError(t, err)

	assert.Equal(t, 1, api.count(http.MethodGet, "/api/v1/applications"))
	assert.Equal(t, 1, api.count(http.MethodGet, "/api/v1/dashboard/stats"))

	created, err := c.CreateApplication(ctx, ApplicationInput{CompanyName: "Globex", PositionTitle: "SRE"})
	require.NoError(t, err)
	assert.Equal(t, "Globex", created.CompanyName)

	_, err = c.ListApplications(ctx, params)
	require.NoError(t, err)
	_, err = c.DashboardStats(ctx, filters.DateWindow{})
	require.NoError(t, err)
	assert.Equal(t, 2, api.count(http.MethodGet, "/api/v1/applications"))
	assert.Equal(t, 2, api.count(http.MethodGet, "/api/v1/dashboard/stats"))

	for _, tok := range api.tokens {
		assert.Equal(t, "Bearer tok", tok)
	}
}

func TestInterviewMutationInvalidatesInterviews(t *testing.T) {
	api, c := newFakeAPI(t)
	api.handle(http.MethodGet, "/api/v1/interviews", http.StatusOK, map[string]interface{}{"data": []interface{}{}})
	api.handle(http.MethodPost, "/api/v1/interviews", http.StatusCreated, map[string]interface{}{"data": map[string]string{"status": "Scheduled"}})
	ctx := context.Background()

	_, err := c.ListInterviews(ctx, query.InterviewParams{UpcomingOnly: true})
	require.NoError(t, err)
	_, err = c.ListInterviews(ctx, query.InterviewParams{UpcomingOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, api.count(http.MethodGet, "/api/v1/interviews"))

	_, err = c.CreateInterview(ctx, InterviewInput{JobApplicationID: "x", InterviewType: models.InterviewPhone, ScheduledDate: time.Now()})
	require.NoError(t, err)
	_, err = c.ListInterviews(ctx, query.InterviewParams{UpcomingOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 2, api.count(http.MethodGet, "/api/v1/interviews"))
}

func TestFailedMutationKeepsCache(t *testing.T) {
	api, c := newFakeAPI(t)
	api.handle(http.MethodGet, "/api/v1/applications", http.StatusOK, page("Acme"))
	api.handle(http.MethodDelete, "/api/v1/applications/bulk", http.StatusBadRequest, map[string]string{"status": "error", "message": "ids must be a non-empty array"})
	ctx := context.Background()

	_, err := c.ListApplications(ctx, query.ListParams{})
	require.NoError(t, err)

	_, err = c.BulkDelete(ctx, nil)
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "ids must be a non-empty array", apiErr.Message)

	_, err = c.ListApplications(ctx, query.ListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, api.count(http.MethodGet, "/api/v1/applications"))
}

func TestErrorsAreNotCached(t *testing.T) {
	api, c := newFakeAPI(t)
	api.handle(http.MethodGet, "/api/v1/applications/abc", http.StatusNotFound, map[string]string{"status": "error", "message": "Job application not found"})

	for i := 0; i < 2; i++ {
		_, err := c.GetApplication(context.Background(), "abc")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	}
	assert.Equal(t, 2, api.count(http.MethodGet, "/api/v1/applications/abc"))
}

func TestAllApplicationsWalksPages(t *testing.T) {
	api, c := newFakeAPI(t)
	api.routes["GET /api/v1/applications"] = func(w http.ResponseWriter, r *http.Request) {
		p := r.URL.Query().Get("page")
		body := page("A", "B")
		body["total_pages"] = 2
		if p == "2" {
			body = page("C")
			body["total_pages"] = 2
		}
		_ = json.NewEncoder(w).Encode(body)
	}

	apps, err := c.AllApplications(context.Background(), query.ListParams{})
	require.NoError(t, err)
	require.Len(t, apps, 3)
	assert.Equal(t, "C", apps[2].CompanyName)
	assert.Equal(t, 2, api.count(http.MethodGet, "/api/v1/applications"))
}

func TestMemoryCacheDeletePrefix(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryCache()
	require.NoError(t, m.Set(ctx, "/api/v1/applications?page=1", []byte("1")))
	require.NoError(t, m.Set(ctx, "/api/v1/applications/x/activity", []byte("2")))
	require.NoError(t, m.Set(ctx, "/api/v1/interviews", []byte("3")))

	require.NoError(t, m.DeletePrefix(ctx, PrefixApplications))
	assert.Equal(t, 1, m.Len())
	_, ok, _ := m.Get(ctx, "/api/v1/interviews")
	assert.True(t, ok)
}

func TestEscapeGlob(t *testing.T) {
	assert.Equal(t, `jt:/a\?b\*\[c\]`, escapeGlob("jt:/a?b*[c]"))
}

// TestRedisCache runs against a real server when REDIS_ADDR is set.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	cache := NewRedisCache(rdb, "jobtracker-test-"+time.Now().Format("150405.000"), time.Minute)

	require.NoError(t, cache.Set(ctx, "/api/v1/applications?page=1", []byte("a")))
	require.NoError(t, cache.Set(ctx, "/api/v1/interviews", []byte("b")))

	v, ok, err := cache.Get(ctx, "/api/v1/applications?page=1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("a"), v)

	require.NoError(t, cache.DeletePrefix(ctx, PrefixApplications))
	_, ok, err = cache.Get(ctx, "/api/v1/applications?page=1")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = cache.Get(ctx, "/api/v1/interviews")
	require.NoError(t, err)
	assert.True(t, ok)
}
