package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/common"
	"github.com/yameogo/gestock/internal/models"
)

// recorderNotifier captures notifications for assertions.
type recorderNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
	fields    []map[string][]string
}

func (r *recorderNotifier) Success(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.successes = append(r.successes, msg)
}

func (r *recorderNotifier) Error(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errors = append(r.errors, msg)
}

func (r *recorderNotifier) FieldErrors(fields map[string][]string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fields = append(r.fields, fields)
}

// productBackend is a fake catalog API. Behavior of the mutation
// endpoints is driven by the exported fields.
type productBackend struct {
	mux *http.ServeMux

	listHits    atomic.Int64
	listFailRem atomic.Int64 // remaining list calls to fail with 500

	createStatus int    // 0 means success
	createBody   string // error body when createStatus != 0

	deleteStatus int // 0 means success
}

func newProductBackend() *productBackend {
	b := &productBackend{mux: http.NewServeMux(), createStatus: 0}

	b.mux.HandleFunc("GET /products/", func(w http.ResponseWriter, r *http.Request) {
		b.listHits.Add(1)
		if b.listFailRem.Load() > 0 {
			b.listFailRem.Add(-1)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"count":    2,
			"next":     nil,
			"previous": nil,
			"results": []models.Product{
				{ID: 1, Reference: "REF-001", Name: "Savon", Unit: "piece", IsActive: true},
				{ID: 2, Reference: "REF-002", Name: "Huile", Unit: "litre", IsActive: true},
			},
		})
	})

	b.mux.HandleFunc("POST /products/", func(w http.ResponseWriter, r *http.Request) {
		if b.createStatus != 0 {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(b.createStatus)
			w.Write([]byte(b.createBody))
			return
		}
		var form models.ProductForm
		json.NewDecoder(r.Body).Decode(&form)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Product{
			ID: 77, Reference: form.Reference, Name: form.Name,
			Unit: form.Unit, IsActive: true,
		})
	})

	b.mux.HandleFunc("DELETE /products/{id}/", func(w http.ResponseWriter, r *http.Request) {
		if b.deleteStatus != 0 {
			w.WriteHeader(b.deleteStatus)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	return b
}

func newTestService(t *testing.T, backend *productBackend) (*ProductService, *recorderNotifier) {
	t.Helper()
	srv := httptest.NewServer(backend.mux)
	t.Cleanup(srv.Close)

	client, err := api.New(srv.URL)
	require.NoError(t, err)

	notify := &recorderNotifier{}
	svc := NewProductService(Deps{Client: client, Notify: notify, Retries: 2})
	return svc, notify
}

func TestList_SecondCallServedFromCache(t *testing.T) {
	backend := newProductBackend()
	svc, _ := newTestService(t, backend)
	ctx := context.Background()

	page1, err := svc.List(ctx, api.ListParams{})
	require.NoError(t, err)
	page2, err := svc.List(ctx, api.ListParams{})
	require.NoError(t, err)

	assert.Equal(t, page1, page2)
	assert.Equal(t, int64(1), backend.listHits.Load())
}

func TestList_RetriesTransientFailures(t *testing.T) {
	backend := newProductBackend()
	backend.listFailRem.Store(2)
	svc, _ := newTestService(t, backend)

	page, err := svc.List(context.Background(), api.ListParams{})
	require.NoError(t, err)
	assert.Len(t, page.Results, 2)
	assert.Equal(t, int64(3), backend.listHits.Load())
}

func TestList_GivesUpAfterRetryBudget(t *testing.T) {
	backend := newProductBackend()
	backend.listFailRem.Store(10)
	svc, _ := newTestService(t, backend)

	_, err := svc.List(context.Background(), api.ListParams{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	// one initial attempt plus two retries
	assert.Equal(t, int64(3), backend.listHits.Load())
}

func TestCreate_ValidationFailureRollsBackAndReportsFields(t *testing.T) {
	backend := newProductBackend()
	backend.createStatus = http.StatusBadRequest
	backend.createBody = `{"name":["obligatoire"]}`
	svc, notify := newTestService(t, backend)
	ctx := context.Background()

	before, err := svc.List(ctx, api.ListParams{})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.ProductForm{Reference: "REF-003", Unit: "piece"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)

	after, ok := svc.res.cache.GetPage(api.ListParams{}.Key())
	require.True(t, ok)
	assert.Equal(t, before, after)

	require.Len(t, notify.fields, 1)
	assert.Equal(t, []string{"obligatoire"}, notify.fields[0]["name"])
	assert.Empty(t, notify.errors)
}

func TestCreate_SuccessReplacesPlaceholderInPlace(t *testing.T) {
	backend := newProductBackend()
	svc, notify := newTestService(t, backend)
	ctx := context.Background()

	_, err := svc.List(ctx, api.ListParams{})
	require.NoError(t, err)

	created, err := svc.Create(ctx, models.ProductForm{Reference: "REF-003", Name: "Sucre", Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)

	page, ok := svc.res.cache.GetPage(api.ListParams{}.Key())
	require.True(t, ok)
	require.Len(t, page.Results, 3)
	// server record sits where the placeholder was inserted, at the head
	assert.Equal(t, created, page.Results[0])
	assert.Equal(t, int64(1), page.Results[1].ID)
	assert.Equal(t, 3, page.Count)
	assert.False(t, cache.IsProvisional(page.Results[0].ID))

	require.Len(t, notify.successes, 1)
	assert.Equal(t, "Produit créé avec succès", notify.successes[0])
}

func TestDelete_ServerErrorRestoresSnapshot(t *testing.T) {
	backend := newProductBackend()
	backend.deleteStatus = http.StatusInternalServerError
	svc, notify := newTestService(t, backend)
	ctx := context.Background()

	before, err := svc.List(ctx, api.ListParams{})
	require.NoError(t, err)

	err = svc.Delete(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)

	after, ok := svc.res.cache.GetPage(api.ListParams{}.Key())
	require.True(t, ok)
	assert.Equal(t, before, after)

	require.Len(t, notify.errors, 1)
	assert.Equal(t, "Une erreur est survenue.", notify.errors[0])
	assert.Empty(t, notify.successes)
}

func TestDelete_SuccessRemovesRowAndAdjustsCount(t *testing.T) {
	backend := newProductBackend()
	svc, _ := newTestService(t, backend)
	ctx := context.Background()

	_, err := svc.List(ctx, api.ListParams{})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, 1))

	page, ok := svc.res.cache.GetPage(api.ListParams{}.Key())
	require.True(t, ok)
	require.Len(t, page.Results, 1)
	assert.Equal(t, int64(2), page.Results[0].ID)
	assert.Equal(t, 1, page.Count)
}

func TestCreate_WithoutCachedPagesStillSucceeds(t *testing.T) {
	backend := newProductBackend()
	svc, _ := newTestService(t, backend)

	created, err := svc.Create(context.Background(), models.ProductForm{Reference: "REF-003", Name: "Sucre", Unit: "kg"})
	require.NoError(t, err)
	assert.Equal(t, int64(77), created.ID)

	got, err := svc.Get(context.Background(), 77)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}
