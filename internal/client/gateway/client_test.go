package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTokens is a minimal in-memory TokenStore for tests
type memTokens struct {
	mu    sync.Mutex
	token string
}

func (m *memTokens) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *memTokens) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

type categoryFixture struct {
	ID   string `json:"id"`
	Name Text   `json:"name"`
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": status >= 200 && status < 300,
		"data":    data,
	})
}

func newTestGateway(t *testing.T, handler http.Handler, token string) (*Gateway, *memTokens, *Cache) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	tokens := &memTokens{token: token}
	cache := NewCache()
	client := NewClient(Config{BaseURL: srv.URL}, tokens, cache)
	return New(client), tokens, cache
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"categories": []categoryFixture{}})
	}), "tok-123")

	_, err := gw.Categories.List(context.Background(), ListOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_MissingTokenProceedsUnauthenticated(t *testing.T) {
	var gotAuth string
	var sawHeader bool
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, sawHeader = r.Header["Authorization"]
		writeEnvelope(w, http.StatusOK, map[string]interface{}{"categories": []categoryFixture{}})
	}), "")

	_, err := gw.Categories.List(context.Background(), ListOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.False(t, sawHeader, "no Authorization header at all when signed out")
}

func TestClient_AuthFailureClearsCredential(t *testing.T) {
	gw, tokens, cache := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil)
	}), "stale-token")

	cache.Put("warm", []byte("x"))

	expired := 0
	gw.Client().OnSessionExpired(func() { expired++ })

	_, err := gw.Categories.List(context.Background(), ListOptions{Page: 1})
	require.Error(t, err)
	assert.True(t, IsAuthError(err))

	assert.Empty(t, tokens.Token(), "rejected credential must be cleared")
	assert.Equal(t, 0, cache.Len(), "cache is dropped with the session")
	assert.Equal(t, 1, expired)
}

func TestClient_AuthFailureWithoutTokenDoesNotSignalExpiry(t *testing.T) {
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, nil)
	}), "")

	expired := 0
	gw.Client().OnSessionExpired(func() { expired++ })

	_, err := gw.Categories.List(context.Background(), ListOptions{Page: 1})
	require.Error(t, err)
	assert.Equal(t, 0, expired, "an unauthenticated rejection is not a session expiry")
}

func TestClient_NormalizesUnderscoreID(t *testing.T) {
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Mongo-style payload: _id at both levels
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"page": 1, "lastPage": 1, "limit": 10, "total": 2,
			"categories": []map[string]interface{}{
				{"_id": "cat-1", "name": map[string]string{"en": "Mains"}},
				{"id": "cat-2", "_id": "ignored", "name": map[string]string{"en": "Drinks"}},
			},
		})
	}), "tok")

	page, err := gw.Categories.List(context.Background(), ListOptions{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "cat-1", page.Items[0].ID)
	// When both keys arrive, the plain id wins
	assert.Equal(t, "cat-2", page.Items[1].ID)
}

func TestClient_DecodesListEnvelope(t *testing.T) {
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"page": 2, "lastPage": 7, "limit": 10, "total": 65,
			"categories": []categoryFixture{{ID: "c1", Name: Text{En: "Mains"}}},
		})
	}), "tok")

	page, err := gw.Categories.List(context.Background(), ListOptions{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 7, page.LastPage)
	assert.Equal(t, 65, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Mains", page.Items[0].Name.En)
}

// A created category must appear in the next list read without any
// manual refetch: the create invalidates the collection tag, so the
// list misses the cache and goes back to the server.
func TestClient_CacheInvalidationRoundTrip(t *testing.T) {
	var mu sync.Mutex
	categories := []categoryFixture{{ID: "c1", Name: Text{En: "Mains"}}}
	listCalls := 0

	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.Method == http.MethodGet:
			listCalls++
			writeEnvelope(w, http.StatusOK, map[string]interface{}{
				"page": 1, "lastPage": 1, "limit": 10, "total": len(categories),
				"categories": categories,
			})
		case r.Method == http.MethodPost:
			created := categoryFixture{ID: "c2", Name: Text{En: "Desserts"}}
			categories = append(categories, created)
			writeEnvelope(w, http.StatusCreated, created)
		}
	}), "tok")

	ctx := context.Background()
	opts := ListOptions{Page: 1, Limit: 10}

	first, err := gw.Categories.List(ctx, opts)
	require.NoError(t, err)
	require.Len(t, first.Items, 1)

	// A repeated read is served from cache
	_, err = gw.Categories.List(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 1, listCalls)

	created, err := gw.Categories.Create(ctx, map[string]interface{}{"name": map[string]string{"en": "Desserts", "am": "ጣፋጭ"}})
	require.NoError(t, err)
	assert.Equal(t, "c2", created.ID)

	// The next read reflects the mutation
	after, err := gw.Categories.List(ctx, opts)
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls, "create must invalidate the cached list")
	require.Len(t, after.Items, 2)
	assert.Equal(t, "Desserts", after.Items[1].Name.En)
}

func TestClient_UpdateInvalidatesEntityAndLists(t *testing.T) {
	detailCalls := 0
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			detailCalls++
			writeEnvelope(w, http.StatusOK, categoryFixture{ID: "c1", Name: Text{En: "Mains"}})
		case http.MethodPut:
			writeEnvelope(w, http.StatusOK, categoryFixture{ID: "c1", Name: Text{En: "Renamed"}})
		}
	}), "tok")

	ctx := context.Background()
	_, err := gw.Categories.Get(ctx, "c1")
	require.NoError(t, err)
	_, err = gw.Categories.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, detailCalls)

	_, err = gw.Categories.Update(ctx, "c1", map[string]interface{}{"name": map[string]string{"en": "Renamed"}})
	require.NoError(t, err)

	_, err = gw.Categories.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, detailCalls, "update must invalidate the cached detail")
}

func TestClient_ErrorEnvelope(t *testing.T) {
	gw, _, _ := newTestGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "category not found",
		})
	}), "tok")

	_, err := gw.Categories.Get(context.Background(), "nope")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "category not found", apiErr.Message)
}

func TestCache_TagMatching(t *testing.T) {
	cache := NewCache()
	cache.Put("list", []byte("a"), CollectionTag(TagCategory))
	cache.Put("detail-1", []byte("b"), EntityTag(TagCategory, "1"))
	cache.Put("detail-2", []byte("c"), EntityTag(TagCategory, "2"))
	cache.Put("other", []byte("d"), CollectionTag(TagMenuItem))

	// Invalidating one entity drops it plus collection entries of the
	// same type, leaving siblings and other types alone.
	cache.Invalidate(EntityTag(TagCategory, "1"))

	_, ok := cache.Get("detail-1")
	assert.False(t, ok)
	_, ok = cache.Get("list")
	assert.False(t, ok)
	_, ok = cache.Get("detail-2")
	assert.True(t, ok)
	_, ok = cache.Get("other")
	assert.True(t, ok)
}
