package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yameogo/gestock/internal/common"
)

// authBackend is a fake backend whose protected endpoints return 401
// until the refresh endpoint has been called; the refresh endpoint
// rotates the access cookie.
type authBackend struct {
	mu           sync.Mutex
	accessValid  bool
	refreshCalls atomic.Int64
	productHits  atomic.Int64
	refreshDelay time.Duration
	refreshFails bool
}

func (b *authBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /jwt/refresh/", func(w http.ResponseWriter, r *http.Request) {
		b.refreshCalls.Add(1)
		if b.refreshDelay > 0 {
			time.Sleep(b.refreshDelay)
		}
		if b.refreshFails {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "access", Value: "fresh", Path: "/"})
		b.mu.Lock()
		b.accessValid = true
		b.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	})

	mux.HandleFunc("GET /products/", func(w http.ResponseWriter, r *http.Request) {
		b.productHits.Add(1)
		ck, err := r.Cookie("access")
		b.mu.Lock()
		valid := b.accessValid
		b.mu.Unlock()
		if err != nil || !valid || ck.Value != "fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"token expired"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"count":1,"next":null,"previous":null,"results":[{"id":1,"name":"Cahier"}]}`))
	})

	return mux
}

type productRow struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type productList struct {
	Count   int          `json:"count"`
	Results []productRow `json:"results"`
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()
	c, err := New(srv.URL)
	require.NoError(t, err)
	return c
}

func TestRefreshRace_SingleRefreshForConcurrent401s(t *testing.T) {
	backend := &authBackend{refreshDelay: 50 * time.Millisecond}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv)

	const n = 3
	var wg sync.WaitGroup
	errs := make([]error, n)
	payloads := make([]productList, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = c.Get(context.Background(), "products/", nil, &payloads[i])
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		require.NoError(t, errs[i])
		require.Len(t, payloads[i].Results, 1)
		assert.Equal(t, "Cahier", payloads[i].Results[0].Name)
	}

	assert.Equal(t, int64(1), backend.refreshCalls.Load(),
		"N concurrent 401s must trigger exactly one refresh exchange")
	// Each request is issued twice: the original and one retry.
	assert.Equal(t, int64(2*n), backend.productHits.Load())
}

func TestNoDoubleRetry_SecondUnauthorizedIsPermanent(t *testing.T) {
	backend := &authBackend{refreshFails: true}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv)

	var out productList
	err := c.Get(context.Background(), "products/", nil, &out)

	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, int64(2), backend.productHits.Load(),
		"a request is never issued a third time")
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
}

func TestRefreshFailureIsAbsorbed_RequestStillRetriedOnce(t *testing.T) {
	backend := &authBackend{refreshFails: true}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv)

	err := c.Get(context.Background(), "products/", nil, nil)

	// The refresh failure itself is not surfaced; the retried request's
	// own 401 is.
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestTransportError_BypassesRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	c, err := New(srv.URL)
	require.NoError(t, err)

	getErr := c.Get(context.Background(), "products/", nil, nil)
	require.Error(t, getErr)
	assert.ErrorIs(t, getErr, common.ErrUnavailable)
	assert.NotErrorIs(t, getErr, common.ErrUnauthorized)
}

func TestSequentialRequestAfterRefresh_ShortCircuits(t *testing.T) {
	backend := &authBackend{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv)

	require.NoError(t, c.Get(context.Background(), "products/", nil, nil))
	require.NoError(t, c.Get(context.Background(), "products/", nil, nil))

	// The second request carries the fresh cookie and needs no refresh.
	assert.Equal(t, int64(1), backend.refreshCalls.Load())
	assert.Equal(t, int64(3), backend.productHits.Load())
}

func TestValidationErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"name":["obligatoire"],"unit":["choix invalide"]}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	err := c.Post(context.Background(), "products/", map[string]string{}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsValidation())
	assert.Equal(t, []string{"obligatoire"}, apiErr.Fields["name"])
	assert.Equal(t, []string{"choix invalide"}, apiErr.Fields["unit"])
}

func TestServerErrorMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"boom"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv)

	err := c.Get(context.Background(), "products/", nil, nil)
	assert.ErrorIs(t, err, common.ErrUnavailable)
}

func TestDelete_NoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	assert.NoError(t, c.Delete(context.Background(), "products/7/"))
}

func TestDownload_ReturnsRawBytes(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	data, err := c.Download(context.Background(), "invoices/3/download-pdf/")
	require.NoError(t, err)
	assert.Equal(t, pdf, data)
}

func TestCookie_ReadsJar(t *testing.T) {
	backend := &authBackend{}
	srv := httptest.NewServer(backend.handler())
	defer srv.Close()

	c := newTestClient(t, srv)
	require.NoError(t, c.Get(context.Background(), "products/", nil, nil))

	ck, ok := c.Cookie("access")
	require.True(t, ok)
	assert.Equal(t, "fresh", ck.Value)

	_, ok = c.Cookie("missing")
	assert.False(t, ok)
}

func TestNew_RejectsInvalidURL(t *testing.T) {
	_, err := New("://nope")
	assert.Error(t, err)
}
