// Package cache holds client-side copies of paginated entity collections
// and implements the optimistic mutation protocol used by every
// create/update/delete operation: apply a tentative local change
// synchronously, issue the remote call, then commit or roll back.
package cache

import (
	"sync"

	"github.com/yameogo/gestock/internal/models"
)

// Page is one cached page of a collection, in the backend's list
// envelope shape.
type Page[T models.Entity] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// clone copies the page with a fresh results slice. Rows are value
// types and are never mutated in place, so copying the slice is enough
// to make the snapshot independent.
func (p Page[T]) clone() Page[T] {
	out := p
	out.Results = make([]T, len(p.Results))
	copy(out.Results, p.Results)
	return out
}

// Cache maps query keys to pages of one entity collection, plus a
// detail entry per ID. A single mutex guards all state: every cache
// patch is atomic with respect to other mutations.
type Cache[T models.Entity] struct {
	mu      sync.Mutex
	pages   map[string]Page[T]
	details map[int64]T
	stale   map[string]struct{}
}

// New creates an empty collection cache.
func New[T models.Entity]() *Cache[T] {
	return &Cache[T]{
		pages:   make(map[string]Page[T]),
		details: make(map[int64]T),
		stale:   make(map[string]struct{}),
	}
}

// GetPage returns a copy of the cached page for the key, if present.
func (c *Cache[T]) GetPage(key string) (Page[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.pages[key]
	if !ok {
		return Page[T]{}, false
	}
	return p.clone(), true
}

// PutPage stores an authoritative page and clears its stale mark.
func (c *Cache[T]) PutPage(key string, p Page[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pages[key] = p.clone()
	delete(c.stale, key)
}

// Stale reports whether the key has been marked for refetch.
func (c *Cache[T]) Stale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.stale[key]
	return ok
}

// MarkAllStale flags every cached page of the collection as eligible
// for a background refetch. Called after every settled mutation so
// provisional data never outlives one round trip.
func (c *Cache[T]) MarkAllStale() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.pages {
		c.stale[key] = struct{}{}
	}
}

// GetDetail returns the cached detail record for an ID, if present.
func (c *Cache[T]) GetDetail(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	t, ok := c.details[id]
	return t, ok
}

// PutDetail overwrites the detail entry with an authoritative record.
func (c *Cache[T]) PutDetail(t T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.details[t.EntityID()] = t
}

// DropDetail removes the detail entry for an ID.
func (c *Cache[T]) DropDetail(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.details, id)
}

// Replace swaps the record with the same ID in every cached page
// (keeping its position) and overwrites the detail entry. Used after a
// successful update: no optimistic change preceded it, so there is
// nothing to roll back.
func (c *Cache[T]) Replace(t T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := t.EntityID()
	for key, page := range c.pages {
		for i, row := range page.Results {
			if row.EntityID() == id {
				updated := page.clone()
				updated.Results[i] = t
				c.pages[key] = updated
				break
			}
		}
	}
	c.details[id] = t
}

// Len reports how many pages are cached. Intended for diagnostics.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pages)
}
