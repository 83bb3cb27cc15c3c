package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/yameogo/gestock/internal/api"
	"github.com/yameogo/gestock/internal/cache"
	"github.com/yameogo/gestock/internal/common"
	"github.com/yameogo/gestock/internal/logging"
	"github.com/yameogo/gestock/internal/models"
)

// retryBase is the first backoff interval for transient list-fetch
// failures; subsequent intervals grow exponentially.
const retryBase = 500 * time.Millisecond

// Deps bundles what every service needs. Constructed once at startup
// and passed explicitly; there is no package-level client or cache.
type Deps struct {
	Client  *api.Client
	Log     logging.Logger
	Notify  Notifier
	Retries int
}

func (d Deps) logger() logging.Logger {
	if d.Log == nil {
		return logging.NopLogger{}
	}
	return d.Log
}

func (d Deps) notifier() Notifier {
	if d.Notify == nil {
		return NopNotifier{}
	}
	return d.Notify
}

// resource is the shared CRUD core behind every entity service. T is
// the entity, F its create-form payload. Mutations follow the
// optimistic protocol: patch the cache synchronously, call the backend,
// then commit or roll back.
type resource[T models.Entity, F any] struct {
	deps  Deps
	path  string
	cache *cache.Cache[T]

	// placeholder builds the provisional record inserted before the
	// server confirms a create. Fields the server assigns (numbers,
	// timestamps, denormalized names) carry placeholder values.
	placeholder func(form F, id int64) T
}

func newResource[T models.Entity, F any](deps Deps, path string, placeholder func(F, int64) T) *resource[T, F] {
	return &resource[T, F]{
		deps:        deps,
		path:        path,
		cache:       cache.New[T](),
		placeholder: placeholder,
	}
}

func (r *resource[T, F]) itemPath(id int64) string {
	return fmt.Sprintf("%s%d/", r.path, id)
}

// List returns one page of the collection, served from cache when the
// cached copy is not stale. Transient fetch failures are retried with
// exponential backoff.
func (r *resource[T, F]) List(ctx context.Context, p api.ListParams) (cache.Page[T], error) {
	key := p.Key()
	if page, ok := r.cache.GetPage(key); ok && !r.cache.Stale(key) {
		return page, nil
	}

	var page cache.Page[T]
	backoff := retry.WithMaxRetries(uint64(r.deps.Retries), retry.NewExponential(retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := r.deps.Client.Get(ctx, r.path, p.Values(), &page); err != nil {
			if errors.Is(err, common.ErrUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return cache.Page[T]{}, err
	}

	r.cache.PutPage(key, page)
	return page, nil
}

// Get returns the detail record, from cache when available.
func (r *resource[T, F]) Get(ctx context.Context, id int64) (T, error) {
	if t, ok := r.cache.GetDetail(id); ok {
		return t, nil
	}
	var t T
	if err := r.deps.Client.Get(ctx, r.itemPath(id), nil, &t); err != nil {
		return t, err
	}
	r.cache.PutDetail(t)
	return t, nil
}

// Create inserts a provisional record at the head of every cached page,
// posts the draft, and reconciles: the server entity replaces the
// placeholder in place on success, the pre-mutation snapshot is
// restored on failure.
func (r *resource[T, F]) Create(ctx context.Context, form F) (T, error) {
	m := r.cache.Begin()
	m.InsertHead(r.placeholder(form, cache.NextProvisionalID()))

	var created T
	if err := r.deps.Client.Post(ctx, r.path, form, &created); err != nil {
		m.Rollback()
		r.report(ctx, err)
		var zero T
		return zero, err
	}

	m.Commit(created)
	return created, nil
}

// Update patches the record server-side. No optimistic change is made:
// on success the authoritative entity overwrites the detail entry and
// any matching list rows in place.
func (r *resource[T, F]) Update(ctx context.Context, id int64, patch any) (T, error) {
	var updated T
	if err := r.deps.Client.Patch(ctx, r.itemPath(id), patch, &updated); err != nil {
		r.report(ctx, err)
		return updated, err
	}
	r.cache.Replace(updated)
	r.cache.MarkAllStale()
	return updated, nil
}

// Delete removes the record from every cached page before the call; a
// failed delete restores the snapshot exactly.
func (r *resource[T, F]) Delete(ctx context.Context, id int64) error {
	m := r.cache.Begin()
	m.Remove(id)

	if err := r.deps.Client.Delete(ctx, r.itemPath(id)); err != nil {
		m.Rollback()
		r.report(ctx, err)
		return err
	}

	m.CommitDelete()
	r.cache.DropDetail(id)
	return nil
}

// rows fetches an uncached ad-hoc listing (search endpoints, filtered
// sub-collections). The backend answers either with the usual list
// envelope or with a bare array.
func (r *resource[T, F]) rows(ctx context.Context, path string, query url.Values) ([]T, error) {
	var raw json.RawMessage
	if err := r.deps.Client.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}
	return decodeRows[T](raw)
}

// Search queries the collection's search endpoint.
func (r *resource[T, F]) Search(ctx context.Context, query string, limit int) ([]T, error) {
	v := url.Values{"search": {query}}
	if limit > 0 {
		v.Set("limit", strconv.Itoa(limit))
	}
	return r.rows(ctx, r.path+"search/", v)
}

// report translates a mutation failure into user-facing notifications:
// validation errors field by field, everything else generically.
func (r *resource[T, F]) report(ctx context.Context, err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.IsValidation() {
		r.deps.notifier().FieldErrors(apiErr.Fields)
		return
	}
	r.deps.logger().Error(ctx, "mutation failed", "path", r.path, "error", err)
	r.deps.notifier().Error("Une erreur est survenue.")
}

func decodeRows[T any](raw json.RawMessage) ([]T, error) {
	var envelope struct {
		Results []T `json:"results"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Results != nil {
		return envelope.Results, nil
	}
	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("decoding rows: %w", err)
	}
	return rows, nil
}
